package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSerpServer(t *testing.T, handler http.HandlerFunc) *SerpClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	old := serpBaseURL
	serpBaseURL = srv.URL
	t.Cleanup(func() { serpBaseURL = old })

	return &SerpClient{APIKey: "test-key", Location: "United States", HTTP: srv.Client()}
}

func TestSearchReturnsOrganicResults(t *testing.T) {
	var gotQuery string
	client := newSerpServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "google", r.URL.Query().Get("engine"))
		w.Write([]byte(`{
			"organic_results": [
				{"position": 1, "title": "First", "link": "https://a.example", "snippet": "aaa", "displayed_link": "a.example"},
				{"position": 2, "title": "Second", "link": "https://b.example", "snippet": "bbb"}
			]
		}`))
	})

	resp, err := client.Search(context.Background(), "robot barista", 10)
	require.NoError(t, err)
	assert.Equal(t, "robot barista", gotQuery)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 1, resp.Results[0].Position)
	assert.Equal(t, "First", resp.Results[0].Title)
	assert.Equal(t, "a.example", resp.Results[0].DisplayedLink)
}

func TestSearchPrependsAnswerBox(t *testing.T) {
	client := newSerpServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"answer_box": {"title": "Answer", "link": "https://ans.example", "snippet": "direct answer"},
			"organic_results": [{"position": 1, "title": "First", "link": "https://a.example", "snippet": "aaa"}]
		}`))
	})

	resp, err := client.Search(context.Background(), "robot barista", 10)
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 0, resp.Results[0].Position)
	assert.Equal(t, "Answer", resp.Results[0].Title)
	assert.Equal(t, 1, resp.Results[1].Position)
}

func TestSearchCapsResultCount(t *testing.T) {
	var gotNum string
	client := newSerpServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotNum = r.URL.Query().Get("num")
		w.Write([]byte(`{"organic_results": []}`))
	})

	_, err := client.Search(context.Background(), "q", 50)
	require.NoError(t, err)
	assert.Equal(t, "20", gotNum)

	_, err = client.Search(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Equal(t, "10", gotNum)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	client := &SerpClient{APIKey: "k", HTTP: http.DefaultClient}
	_, err := client.Search(context.Background(), "", 5)
	assert.Error(t, err)
}

func TestSearchHTTPError(t *testing.T) {
	client := newSerpServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Search(context.Background(), "q", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSearchNews(t *testing.T) {
	client := newSerpServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "nws", r.URL.Query().Get("tbm"))
		assert.Equal(t, "qdr:w", r.URL.Query().Get("tbs"))
		w.Write([]byte(`{
			"news_results": [
				{"position": 1, "title": "Robots brew coffee", "link": "https://news.example", "snippet": "...", "date": "2 days ago", "source": "TechNews"}
			]
		}`))
	})

	resp, err := client.SearchNews(context.Background(), "robot barista", 5, "week")
	require.NoError(t, err)
	require.Len(t, resp.NewsResults, 1)
	assert.Equal(t, "Robots brew coffee", resp.NewsResults[0].Title)
	assert.Equal(t, "TechNews", resp.NewsResults[0].Source)
}

func TestSearchToolMarshalsResponse(t *testing.T) {
	client := newSerpServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"organic_results": [{"position": 1, "title": "First", "link": "https://a.example", "snippet": "aaa"}]}`))
	})
	tool := &SearchTool{Client: client}

	out, err := tool.Call(context.Background(), map[string]any{"query": "q", "num_results": 3})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, out, `"title":"First"`)
}
