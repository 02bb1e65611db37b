package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelens/venturelens/internal/config"
	"github.com/venturelens/venturelens/internal/model"
	"github.com/venturelens/venturelens/internal/pipeline"
	"github.com/venturelens/venturelens/internal/store"
	"github.com/venturelens/venturelens/internal/tools"
)

type stubLLM struct{ response string }

func (s *stubLLM) Generate(context.Context, string, string) (string, error) {
	return s.response, nil
}

type stubTool struct {
	name   string
	output string
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return s.name }
func (s *stubTool) Call(context.Context, map[string]any) (string, error) {
	return s.output, nil
}

const stubViabilityJSON = `{"viability_score": 6, "risk_assessment": "Medium"}`

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := tools.NewRegistry()
	reg.Register(&stubTool{
		name:   "search",
		output: `{"results": [{"position": 1, "title": "Acme - coffee startup", "link": "https://acme.example", "snippet": "robot baristas"}]}`,
	})
	wf := pipeline.New(&stubLLM{response: stubViabilityJSON}, reg, config.Prompts{},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	archive, err := store.Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { archive.Close() })

	srv := New(wf, archive, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return srv, srv.SetupRouter()
}

func TestAnalyzeEndpoint(t *testing.T) {
	_, router := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"idea": "robot barista"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rep model.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "robot barista", rep.Idea)
	assert.Equal(t, 6, rep.Viability.Score)
}

func TestAnalyzeRejectsEmptyIdea(t *testing.T) {
	_, router := newTestServer(t)

	for _, body := range []string{`{}`, `{"idea": ""}`, `not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestReportArchiveEndpoints(t *testing.T) {
	srv, router := newTestServer(t)

	// Analyze once so the archive holds a report.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"idea": "robot barista"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var rep model.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))

	list, err := srv.Archive.List(10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), rep.ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/"+rep.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/"+rep.ID+"/text", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "STARTUP IDEA ANALYSIS REPORT")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArchiveDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	wf := pipeline.New(&stubLLM{response: stubViabilityJSON}, tools.NewRegistry(),
		config.Prompts{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := New(wf, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := srv.SetupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	_, router := newTestServer(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
