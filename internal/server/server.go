// Package server exposes the personalization pipeline and the CRUD surface
// over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fluidcontent/internal/artifacts"
	"fluidcontent/internal/config"
	"fluidcontent/internal/interactive"
	"fluidcontent/internal/logger"
	"fluidcontent/internal/personalize"
	"fluidcontent/internal/store"
	"fluidcontent/internal/tags"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps bundles the pipeline components the server serves. Each is built
// against the LLM client interface of its own package, so tests can wire
// fakes without a live API key.
type Deps struct {
	Adapter   *personalize.Adapter
	Tagger    *tags.Extractor
	Generator *interactive.Generator
	Writer    *artifacts.Writer
}

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	store      *store.Store
	config     config.Server
	log        *slog.Logger
	deps       Deps
}

// New creates a new HTTP server instance
func New(st *store.Store, cfg config.Server, deps Deps) *Server {
	s := &Server{
		router: chi.NewRouter(),
		store:  st,
		config: cfg,
		log:    logger.Get(),
		deps:   deps,
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	// Generation requests can take a while on large content
	s.router.Use(middleware.Timeout(120 * time.Second))

	if s.config.CORS.Enabled {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.config.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
}

// setupRoutes configures routes for the server
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.Get("/health", s.handleHealth)

	// Status endpoint
	s.router.Get("/api/status", s.handleStatus)

	// Personalization pipeline
	s.router.Post("/api/process-content", s.handleProcessContent)
	s.router.Post("/api/extract-tags", s.handleExtractTags)
	s.router.Post("/api/interactive-html", s.handleInteractiveHTML)
	s.router.Post("/api/voice-selection", s.handleVoiceSelection)

	// CRUD surface
	s.router.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.handleListUsers)
			r.Post("/", s.handleCreateUser)
			r.Get("/{id}", s.handleGetUser)
			r.Put("/{id}", s.handleUpdateUser)
			r.Delete("/{id}", s.handleDeleteUser)
			r.Get("/{id}/achievements", s.handleUserAchievements)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", s.handleListArticles)
			r.Post("/", s.handleCreateArticle)
			r.Get("/{id}", s.handleGetArticle)
			r.Delete("/{id}", s.handleDeleteArticle)
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", s.handleListAchievements)
			r.Post("/", s.handleCreateAchievement)
		})

		r.Get("/leaderboard", s.handleLeaderboard)

		r.Route("/configurations", func(r chi.Router) {
			r.Get("/", s.handleListConfigurations)
			r.Get("/{key}", s.handleGetConfiguration)
			r.Put("/{key}", s.handleSetConfiguration)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server",
		"addr", s.httpServer.Addr,
		"read_timeout", s.config.ReadTimeout,
		"write_timeout", s.config.WriteTimeout,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing)
func (s *Server) Router() *chi.Mux {
	return s.router
}
