// Package server exposes the Question Source over HTTP: the same
// daily-trivia wire contract the game client consumes, backed by an
// LLM provider and a per-date batch cache.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/deepdish/chicagotrail/internal/config"
	"github.com/deepdish/chicagotrail/internal/llm"
	"github.com/deepdish/chicagotrail/internal/mission"
	"github.com/deepdish/chicagotrail/internal/trivia"
)

// Server serves the daily-trivia API.
type Server struct {
	cfg    config.Config
	source trivia.Source
	cache  *batchCache
	engine *gin.Engine
}

type questionsRequest struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// New builds a Server around the given question source.
func New(cfg config.Config, source trivia.Source) *Server {
	s := &Server{
		cfg:    cfg,
		source: source,
		cache:  newBatchCache(config.Duration(cfg.Cache.TTL, 24*time.Hour)),
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	engine.Use(cors.New(corsConfig))

	engine.GET("/health", s.handleHealth)
	api := engine.Group("/api")
	{
		api.POST("/daily-trivia", s.handleDailyTrivia)
		api.GET("/mission", s.handleMission)
	}

	s.engine = engine
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the server on the configured address and blocks until the
// context is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.engine,
		ReadTimeout:  config.Duration(s.cfg.Server.ReadTimeout, 30*time.Second),
		WriteTimeout: config.Duration(s.cfg.Server.WriteTimeout, 90*time.Second),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "chicagotrail"})
}

// handleDailyTrivia returns the day's question batch. Missing fields
// default to today and a full batch, matching the original wire
// contract where both were optional.
func (s *Server) handleDailyTrivia(c *gin.Context) {
	var req questionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}
	if req.Date == "" {
		req.Date = mission.TodayKey()
	}
	if req.Count == 0 {
		req.Count = trivia.QuestionsPerDay
	}
	if req.Count != trivia.QuestionsPerDay {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported question count."})
		return
	}

	if cached, ok := s.cache.get(req.Date); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	questions, err := s.source.Questions(c.Request.Context(), req.Date, req.Count)
	if err != nil {
		status, msg := classifyError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	s.cache.put(req.Date, questions)
	c.JSON(http.StatusOK, questions)
}

// handleMission returns the deterministic mission for a date. Purely
// informational: clients generate the same mission locally.
func (s *Server) handleMission(c *gin.Context) {
	dateKey := c.Query("date")
	if dateKey == "" {
		dateKey = mission.TodayKey()
	}
	c.JSON(http.StatusOK, mission.Generate(dateKey))
}

// classifyError maps a question-source failure to the wire contract:
// 429 for rate limits, 402 for exhausted credits, 500 otherwise.
func classifyError(err error) (int, string) {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return http.StatusTooManyRequests, "Rate limited — try again shortly."
	}
	var quota *llm.ErrQuotaExhausted
	if errors.As(err, &quota) {
		return http.StatusPaymentRequired, "AI credits depleted."
	}
	return http.StatusInternalServerError, "Question generation failed."
}
