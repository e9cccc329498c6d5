// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"baitcheck/internal/analyze"
	"baitcheck/internal/models"
	"baitcheck/internal/monitoring"
	"baitcheck/internal/youtube"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultRequestTimeout bounds one full analysis pipeline, including every
// outbound call. The upstream APIs define no timeouts of their own.
const DefaultRequestTimeout = 90 * time.Second

// Analyzer runs the full pipeline for one URL.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (*models.AnalysisResult, error)
}

// Previewer performs the credential-free oEmbed lookup.
type Previewer interface {
	Lookup(ctx context.Context, videoID string) (*models.VideoPreview, error)
}

// Server routes HTTP requests into the pipeline.
type Server struct {
	router    *gin.Engine
	analyzer  Analyzer
	previewer Previewer
	monitor   *monitoring.Monitor
	timeout   time.Duration
}

// Options tunes the server. Zero values fall back to defaults.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewServer(analyzer Analyzer, previewer Previewer, monitor *monitoring.Monitor, opts Options) *Server {
	router := gin.Default()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	server := &Server{
		router:    router,
		analyzer:  analyzer,
		previewer: previewer,
		monitor:   monitor,
		timeout:   timeout,
	}
	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.router.POST("/api/analyze", s.handleAnalyze)
	s.router.GET("/api/preview", s.handlePreview)

	s.router.GET("/health", func(c *gin.Context) {
		if s.monitor.IsHealthy() {
			c.String(http.StatusOK, "OK - %s", s.monitor.GetStatusSummary())
			return
		}
		c.String(http.StatusServiceUnavailable, "Service unhealthy - %s", s.monitor.GetStatusSummary())
	})
	s.router.GET("/status", func(c *gin.Context) {
		c.String(http.StatusOK, "%s", s.monitor.GetStatusSummary())
	})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		s.monitor.RecordClientError()
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.analyzer.Analyze(ctx, req.URL)
	switch {
	case err == nil:
		s.monitor.RecordSuccess(time.Since(start))
		c.JSON(http.StatusOK, result)
	case errors.Is(err, analyze.ErrInvalidURL):
		s.monitor.RecordClientError()
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a valid YouTube URL"})
	case errors.Is(err, analyze.ErrVideoUnavailable):
		s.monitor.RecordClientError()
		message := "could not retrieve video information"
		if errors.Is(err, youtube.ErrVideoNotFound) {
			message = "video not found"
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
	default:
		// Root cause stays server-side; the caller gets a generic message.
		log.Printf("Analysis failed for %q: %v", req.URL, err)
		s.monitor.RecordServerError()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
	}
}

func (s *Server) handlePreview(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	videoID, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a valid YouTube URL"})
		return
	}

	preview, err := s.previewer.Lookup(c.Request.Context(), videoID)
	if err != nil {
		log.Printf("Preview lookup failed for %s: %v", videoID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not retrieve video information"})
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Start runs the server on the given port.
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
