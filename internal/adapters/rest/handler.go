// Package rest is the HTTP interface consumed by the presentation layer.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wavelength-labs/tastemaker/internal/core/services"
	"github.com/wavelength-labs/tastemaker/internal/telemetry"
)

// Options tunes the request surface.
type Options struct {
	// DefaultLimit applies when the caller omits the limit field.
	DefaultLimit int
	// MaxLimit caps the requested result count.
	MaxLimit int
}

// Handler manages the HTTP interface for the recommendation engine.
type Handler struct {
	svc      *services.Recommender
	router   chi.Router
	validate *validator.Validate
	logger   zerolog.Logger
	opts     Options
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Recommender, logger zerolog.Logger, opts Options) *Handler {
	if opts.DefaultLimit < 1 {
		opts.DefaultLimit = 10
	}
	if opts.MaxLimit < opts.DefaultLimit {
		opts.MaxLimit = 100
	}

	h := &Handler{
		svc:      svc,
		router:   chi.NewRouter(),
		validate: validator.New(),
		logger:   logger,
		opts:     opts,
	}
	h.routes()
	return h
}

// ServeHTTP satisfies http.Handler by delegating to the internal router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Use(h.requestLogger)

	h.router.Get("/health", h.HealthCheck)
	h.router.Handle("/metrics", telemetry.Handler())
	h.router.Post("/v1/recommendations", h.Recommend)
}

// HealthCheck reports process liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger tags every request with an id and logs its completion.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		logger := h.logger.With().Str("request_id", requestID).Logger()
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))

		logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request handled")
	})
}
