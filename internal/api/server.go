// Package api provides the HTTP API server and handlers for the stat card service.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/listenupapp/statcard/internal/card"
	"github.com/listenupapp/statcard/internal/domain"
	"github.com/listenupapp/statcard/internal/validation"
)

// PlayerSource looks players up on the hiscores.
type PlayerSource interface {
	Fetcher(edition domain.Edition, player string) func(context.Context) (*domain.StatSnapshot, error)
	RawDataURL(edition domain.Edition, player string) string
}

// Options holds server settings that are not dependencies.
type Options struct {
	DefaultEdition domain.Edition
	// RequestsPerMinute limits card renders per client IP. Zero disables limiting.
	RequestsPerMinute int
	Burst             int
	AllowedOrigins    []string
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	compositor *card.Compositor
	players    PlayerSource
	validator  *validation.Validator
	opts       Options
	limiter    *RateLimiter
	router     *chi.Mux
	api        huma.API
	logger     *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// players may be nil when no hiscores service is configured; player lookups
// then fail as unsupported.
func NewServer(compositor *card.Compositor, players PlayerSource, v *validation.Validator, opts Options, logger *slog.Logger) *Server {
	if opts.DefaultEdition == "" {
		opts.DefaultEdition = domain.EditionOldSchool
	}

	router := chi.NewRouter()
	s := &Server{
		compositor: compositor,
		players:    players,
		validator:  v,
		opts:       opts,
		router:     router,
		logger:     logger,
	}
	if opts.RequestsPerMinute > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = NewRateLimiter(opts.RequestsPerMinute, time.Minute, burst)
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("Stat Card API", "1.0.0")
	s.api = humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerCardRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{
			headerCardID,
			headerBlurHash,
			headerRawDataURL,
			headerCardWidth,
			headerCardHeight,
		},
		MaxAge: 300,
	}))

	if s.limiter != nil {
		s.router.Use(RateLimitMiddleware(s.limiter, s.logger, "/health"))
	}
}
