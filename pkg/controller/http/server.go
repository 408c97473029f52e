package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/ctxlog"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router   chi.Router
	reportUC interfaces.Report
	validate *validator.Validate
	defaults *model.QueryProfile
}

type serverConfig struct {
	allowedOrigins []string
	metrics        http.Handler
	slackCommand   http.HandlerFunc
	defaults       *model.QueryProfile
}

// ServerOption configures the HTTP server
type ServerOption func(*serverConfig)

// WithAllowedOrigins enables CORS for browser clients served from origins
func WithAllowedOrigins(origins []string) ServerOption {
	return func(c *serverConfig) {
		c.allowedOrigins = origins
	}
}

// WithMetricsHandler serves h at /metrics
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(c *serverConfig) {
		c.metrics = h
	}
}

// WithSlackCommandHandler serves h at POST /hooks/slack/command
func WithSlackCommandHandler(h http.HandlerFunc) ServerOption {
	return func(c *serverConfig) {
		c.slackCommand = h
	}
}

// WithQueryDefaults sets the term and document types used when a request omits them
func WithQueryDefaults(profile *model.QueryProfile) ServerOption {
	return func(c *serverConfig) {
		c.defaults = profile
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, reportUC interfaces.Report, opts ...ServerOption) *Server {
	cfg := serverConfig{
		defaults: &model.QueryProfile{Term: model.DefaultSearchTerm},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	router := chi.NewRouter()
	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:   router,
		reportUC: reportUC,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		defaults: cfg.defaults,
	}

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if len(cfg.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", handleHealth)
	if cfg.metrics != nil {
		router.Handle("/metrics", cfg.metrics)
	}
	if cfg.slackCommand != nil {
		router.Post("/hooks/slack/command", cfg.slackCommand)
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/series", s.handleSeries)
		r.Route("/pulls", func(r chi.Router) {
			r.Get("/", s.handleListPulls)
			r.Get("/{id}", s.handleGetPull)
		})
	})

	return s
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "frtally",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
