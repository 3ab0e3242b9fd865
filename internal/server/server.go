// Package server wires the HTTP front-end: router, middleware stack and
// the versioned API routes.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	v1 "github.com/gosuda/tasklist/internal/api/v1"
	"github.com/gosuda/tasklist/internal/config"
	"github.com/gosuda/tasklist/internal/server/middleware"
)

// Server is the HTTP server that exposes the task list REST surface.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	cfg        *config.Config
}

// New creates a Server with all routes wired. The service must already be
// safe for concurrent use (see tasklist.Locked); the store itself is not.
func New(ctx context.Context, cfg *config.Config, svc v1.Service) *Server {
	router := chi.NewRouter()

	// Global middleware stack.
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}).Handler)
	router.Use(middleware.RateLimitByIP(ctx, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	s := &Server{
		router: router,
		cfg:    cfg,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	// The REST surface lives at the root: /projects and friends.
	apiConfig := huma.DefaultConfig("TaskList API", "1.0.0")
	api := humachi.New(router, apiConfig)
	v1.RegisterProjectRoutes(api, svc)

	// Health check.
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests.
func (s *Server) Start(_ context.Context) error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Start: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}
