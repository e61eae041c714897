package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"trip_aggregator/internal/obs"
)

func NewRouter(h *Handler, metrics *obs.Metrics, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(MetricsMiddleware(metrics))
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/v1/flights", h.Flights)
	r.Get("/v1/hotels", h.Hotels)
	r.Get("/v1/events", h.Events)
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}
