// Package api provides the HTTP API server and handlers for the submission service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aibandlist/submission-server/internal/auth"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	services    *Services
	credentials auth.CredentialChecker
	router      *chi.Mux
	api         huma.API
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, credentials auth.CredentialChecker, corsOrigins []string, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	s := &Server{
		services:    services,
		credentials: credentials,
		router:      router,
		logger:      logger,
	}

	s.setupMiddleware(corsOrigins)

	humaConfig := huma.DefaultConfig("AI Band Submissions API", "1.0.0")
	// No schema link transformer: clients expect the exact payload shapes
	// without an injected "$schema" key or Link header.
	humaConfig.CreateHooks = nil
	humaConfig.Info.Description = "Crowd-sourced submissions of AI-generated music artists and the published catalog."
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:   "http",
			Scheme: "bearer",
		},
	}

	s.api = humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s.registerRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API returns the huma API for route inspection and tests.
func (s *Server) API() huma.API {
	return s.api
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware(corsOrigins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

// registerRoutes registers all huma operations.
func (s *Server) registerRoutes() {
	s.registerHealthRoutes()
	s.registerCatalogRoutes()
	s.registerSubmissionRoutes()
	s.registerAdminRoutes()
}
