package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"aimdash/internal/config"
	"aimdash/internal/errors"
	"aimdash/internal/infrastructure"
	"aimdash/internal/services"
	handlers "aimdash/internal/transport/http"
	"aimdash/pkg/contracts"
)

const (
	Version = contracts.Version
	AppName = "AIM Dash - Trucking Profitability Dashboard"
)

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Paths         *config.Paths
	Router        chi.Router
	Server        *http.Server
	ReportService *services.ReportService
	Logger        *slog.Logger
}

// NewApplication creates a new application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get paths: %w", err)
	}

	return newApplication(cfg, paths, logger)
}

// newApplication assembles the container from resolved dependencies.
// Tests call this directly with a temp-dir path layout.
func newApplication(cfg *config.Config, paths *config.Paths, logger *slog.Logger) (*Application, error) {
	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}
	paths.LogPathResolution()

	if !config.FileExists(paths.RegistryFile) {
		logger.Warn("OTR registry workbook not found",
			slog.String("path", paths.RegistryFile),
			slog.String("action", "loads will be classified as local drayage"))
	}

	metrics := services.NewIngestMetrics(prometheus.DefaultRegisterer)
	reportService := services.NewReportService(paths, logger, metrics)

	errorHandler := errors.NewErrorHandler(logger, cfg.Logging.Development)

	router := handlers.NewRouter(handlers.RouterConfig{
		Service:      reportService,
		Logger:       logger,
		ErrorHandler: errorHandler,
		Version:      Version,
	})

	app := &Application{
		Config:        cfg,
		Paths:         paths,
		Router:        router,
		ReportService: reportService,
		Logger:        logger,
	}
	app.createServer()

	return app, nil
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Start ingests the input data and starts the HTTP server
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "Starting application",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.Int("port", a.Config.Server.Port),
		slog.String("level", a.Config.Logging.Level))

	// Serve stale-free data from the first request on
	if err := a.ReportService.Ingest(ctx); err != nil {
		a.Logger.WarnContext(ctx, "initial ingest failed, API will report no data",
			slog.String("error", err.Error()))
	}

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "Application started successfully",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))

	return nil
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	infrastructure.CloseLogFile()

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run runs the application until interrupted
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
