// Package server exposes the payoff engine over JSON HTTP for a browser
// chart front-end. It holds a single in-memory session strategy; nothing
// survives a restart.
package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/kshitizgarg19/payoff-builder/internal/config"
	"github.com/kshitizgarg19/payoff-builder/internal/strategy"
)

// Server is the HTTP API for the payoff builder.
type Server struct {
	cfg    *config.Config
	logger zerolog.Logger

	mu      sync.Mutex
	session *strategy.Builder
}

// New creates a server with an empty session strategy.
func New(cfg *config.Config, logger zerolog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		logger:  logger,
		session: strategy.NewBuilder(),
	}
}

// Handler builds the full HTTP handler: gin routes wrapped in CORS for
// the browser front-end.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(s.requestLogger())
	router.Use(s.recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/payoff", s.computePayoff)

		api.GET("/strategy/legs", s.listLegs)
		api.POST("/strategy/legs", s.addLeg)
		api.PATCH("/strategy/legs/:index", s.updateLeg)
		api.DELETE("/strategy/legs/:index", s.removeLeg)
		api.DELETE("/strategy", s.clearStrategy)
		api.GET("/strategy/payoff", s.sessionPayoff)
	}

	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.logger.Info().Str("addr", addr).Msg("starting payoff API server")

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}
