package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"aimdash/internal/config"
	"aimdash/internal/exporter"
	"aimdash/internal/infrastructure"
	"aimdash/internal/services"
	"aimdash/pkg/contracts/domain"
)

const dateFlagFormat = "2006-01-02"

func main() {
	dataDir := flag.String("data", "", "base directory holding data/ (defaults to the executable directory)")
	startDate := flag.String("start", "", "optional filter start date, YYYY-MM-DD")
	endDate := flag.String("end", "", "optional filter end date, YYYY-MM-DD")
	flag.Parse()

	paths, err := resolvePaths(*dataDir)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "both",
		FilePath: paths.GetLogPath("processor.log"),
	})
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	dateRange, err := parseDateRange(*startDate, *endDate)
	if err != nil {
		logger.Error("Invalid date filter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Starting report processing",
		slog.String("data_dir", paths.DataDir),
		slog.String("reports_dir", paths.ReportsDir),
		slog.Bool("date_filtered", dateRange != nil))

	ctx := infrastructure.EnsureTraceID(context.Background())

	metrics := services.NewIngestMetrics(prometheus.NewRegistry())
	service := services.NewReportService(paths, logger, metrics)

	start := time.Now()
	if err := service.Ingest(ctx); err != nil {
		logger.Error("Ingest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := writeReports(ctx, service, paths, dateRange, logger); err != nil {
		logger.Error("Report generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Processing complete",
		slog.Duration("elapsed", time.Since(start)))
}

// resolvePaths picks the flag-supplied base directory over the
// executable-relative default.
func resolvePaths(dataDir string) (*config.Paths, error) {
	if dataDir != "" {
		return config.PathsFrom(dataDir), nil
	}
	return config.GetPaths()
}

func parseDateRange(start, end string) (*domain.DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("both -start and -end are required for a date filter")
	}

	startTime, err := time.Parse(dateFlagFormat, start)
	if err != nil {
		return nil, fmt.Errorf("invalid -start date %q: %w", start, err)
	}
	endTime, err := time.Parse(dateFlagFormat, end)
	if err != nil {
		return nil, fmt.Errorf("invalid -end date %q: %w", end, err)
	}
	if endTime.Before(startTime) {
		return nil, fmt.Errorf("-end must not be before -start")
	}

	return &domain.DateRange{Start: startTime, End: endTime}, nil
}

// writeReports emits every report file: the load CSV, the unmatched registry
// diagnostic, the dashboard JSON and the P&L outputs.
func writeReports(ctx context.Context, service *services.ReportService, paths *config.Paths, dateRange *domain.DateRange, logger *slog.Logger) error {
	loadExporter := exporter.NewLoadExporter(paths)
	reportExporter := exporter.NewReportExporter(paths)

	loads, err := service.Loads(ctx)
	if err != nil {
		return fmt.Errorf("loads unavailable: %w", err)
	}
	if err := loadExporter.ExportLoads(loads, paths.LoadsCSV); err != nil {
		return err
	}

	unmatched, err := service.UnmatchedOTR(ctx)
	if err != nil {
		return fmt.Errorf("registry reconciliation unavailable: %w", err)
	}
	if len(unmatched) > 0 {
		logger.Warn("registry loads never matched an export",
			slog.Int("count", len(unmatched)))
	}
	if err := loadExporter.ExportUnmatchedOTR(unmatched, paths.UnmatchedOTRCSV); err != nil {
		return err
	}

	dashboard, err := service.Dashboard(ctx, dateRange)
	if err != nil {
		return fmt.Errorf("dashboard unavailable: %w", err)
	}
	if err := reportExporter.ExportDashboardJSON(dashboard, paths.DashboardJSON); err != nil {
		return err
	}

	summary, err := service.PLSummary(ctx, dateRange)
	if err != nil {
		return fmt.Errorf("P&L summary unavailable: %w", err)
	}
	if err := reportExporter.ExportPLSummaryJSON(summary, paths.PLSummaryJSON); err != nil {
		return err
	}
	if err := reportExporter.ExportQuarterlyPLCSV(summary.QuarterlyMetrics, paths.QuarterlyPLCSV); err != nil {
		return err
	}

	logger.Info("reports written",
		slog.Int("loads", len(loads)),
		slog.Int("unmatched_otr", len(unmatched)),
		slog.Int("quarters", len(summary.Quarters)))

	return nil
}
