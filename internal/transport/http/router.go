package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apierrors "aimdash/internal/errors"
)

// RouterConfig carries the dependencies of the API router
type RouterConfig struct {
	Service      ReportServiceInterface
	Logger       *slog.Logger
	ErrorHandler *apierrors.ErrorHandler
	Version      string
}

// NewRouter assembles the full API router: reporting endpoints, health,
// and the Prometheus metrics endpoint.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cfg.ErrorHandler.Middleware)

	r.NotFound(cfg.ErrorHandler.NotFound)
	r.MethodNotAllowed(cfg.ErrorHandler.MethodNotAllowed)

	reportHandler := NewReportHandler(cfg.Service, cfg.Logger, cfg.ErrorHandler)
	healthHandler := NewHealthHandler(cfg.Version)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/reports", reportHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
