// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/venturelens/venturelens/internal/model"
	"github.com/venturelens/venturelens/internal/pipeline"
	"github.com/venturelens/venturelens/internal/report"
	"github.com/venturelens/venturelens/internal/store"
)

// Server runs the web interface. Each analyze request is an independent
// pipeline run; the only shared state is the optional archive.
type Server struct {
	Workflow *pipeline.Workflow
	Archive  *store.Store // nil when archiving is disabled
	Logger   *slog.Logger
}

func New(wf *pipeline.Workflow, archive *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{Workflow: wf, Archive: archive, Logger: logger}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.POST("/analyze", s.Analyze)
	r.GET("/reports", s.ListReports)
	r.GET("/reports/:id", s.GetReport)
	r.GET("/reports/:id/text", s.GetReportText)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type AnalyzeRequest struct {
	Idea string `json:"idea"`
}

func (s *Server) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Idea == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idea must not be empty"})
		return
	}

	rep, err := s.Workflow.Run(c.Request.Context(), req.Idea)
	if err != nil {
		s.Logger.Error("analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	// Archiving failures never fail the request; the report was produced.
	if s.Archive != nil {
		if err := s.Archive.Save(rep); err != nil {
			s.Logger.Warn("failed to archive report", "id", rep.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, rep)
}

func (s *Server) ListReports(c *gin.Context) {
	if s.Archive == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "archive disabled"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	list, err := s.Archive.List(limit)
	if err != nil {
		s.Logger.Error("failed to list reports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
		return
	}
	if list == nil {
		list = []store.Summary{}
	}
	c.JSON(http.StatusOK, gin.H{"reports": list})
}

func (s *Server) GetReport(c *gin.Context) {
	rep, ok := s.loadReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) GetReportText(c *gin.Context) {
	rep, ok := s.loadReport(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, report.Text(rep))
}

func (s *Server) loadReport(c *gin.Context) (*model.Report, bool) {
	if s.Archive == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "archive disabled"})
		return nil, false
	}
	rep, err := s.Archive.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return nil, false
	}
	if err != nil {
		s.Logger.Error("failed to load report", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report"})
		return nil, false
	}
	return rep, true
}
