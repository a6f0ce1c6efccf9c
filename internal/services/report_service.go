package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"aimdash/internal/config"
	"aimdash/internal/dataprocessing"
	"aimdash/internal/errors"
	"aimdash/internal/files"
	"aimdash/internal/plparser"
	"aimdash/pkg/contracts/domain"
)

// statementWorkers bounds how many quarterly statements parse concurrently
const statementWorkers = 4

// ReportService orchestrates the ingest pipeline and serves the assembled
// dashboard and P&L reports. Ingest replaces the in-memory state atomically;
// readers always observe the last completed ingest.
type ReportService struct {
	paths     *config.Paths
	logger    *slog.Logger
	discovery *files.Discovery
	metrics   *IngestMetrics

	mu       sync.RWMutex
	loads    []domain.LoadRecord
	quarters []domain.QuarterSummary
	registry dataprocessing.JoinIndex
	ingested bool
}

// NewReportService creates a new report service
func NewReportService(paths *config.Paths, logger *slog.Logger, metrics *IngestMetrics) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("ReportService initialized",
		slog.String("exports_dir", paths.ExportsDir),
		slog.String("statements_dir", paths.StatementsDir),
		slog.String("registry_file", paths.RegistryFile))

	return &ReportService{
		paths:     paths,
		logger:    logger,
		discovery: files.NewDiscovery(paths.DataDir),
		metrics:   metrics,
	}
}

// Ingest runs the full pipeline: the OTR registry workbook, every per-load
// export and every quarterly statement. Individual file failures are logged
// and skipped; Ingest fails only when an input directory cannot be read.
func (s *ReportService) Ingest(ctx context.Context) error {
	start := time.Now()

	registry := s.loadRegistry(ctx)

	loads, err := s.ingestLoads(ctx, registry)
	if err != nil {
		return err
	}

	quarters, err := s.ingestStatements(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.loads = loads
	s.quarters = quarters
	s.registry = registry
	s.ingested = true
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.IngestDuration.Observe(time.Since(start).Seconds())
	}

	s.logger.InfoContext(ctx, "ingest complete",
		slog.Int("loads", len(loads)),
		slog.Int("quarters", len(quarters)),
		slog.Int("registry_entries", len(registry)),
		slog.Duration("elapsed", time.Since(start)))

	return nil
}

// loadRegistry reads the OTR registry workbook. A missing or unreadable
// registry degrades to an empty index: every load is then local drayage.
func (s *ReportService) loadRegistry(ctx context.Context) dataprocessing.JoinIndex {
	rows, err := files.ReadRows(s.paths.RegistryFile)
	if err != nil {
		s.logger.WarnContext(ctx, "OTR registry unavailable, continuing without it",
			slog.String("path", s.paths.RegistryFile),
			slog.String("error", err.Error()))
		return dataprocessing.JoinIndex{}
	}

	index := dataprocessing.BuildJoinIndex(rows, "AIM REFENCE NUMBER")
	s.logger.DebugContext(ctx, "OTR registry loaded",
		slog.Int("entries", len(index)))
	return index
}

// ingestLoads parses every per-load export sequentially, preserving the
// sorted file order so record order stays deterministic.
func (s *ReportService) ingestLoads(ctx context.Context, registry dataprocessing.JoinIndex) ([]domain.LoadRecord, error) {
	exports, err := s.discovery.FindExports(s.paths.ExportsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to discover load exports: %w", err)
	}

	parser := dataprocessing.NewLoadParser(s.logger)

	var loads []domain.LoadRecord
	for _, file := range exports {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := files.ReadRows(file.Path)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping unreadable load export",
				slog.String("file", file.Name),
				slog.String("error", err.Error()))
			s.countFailure("loads")
			continue
		}

		records := parser.Parse(rows, registry)
		loads = append(loads, records...)

		s.countFile("loads")
		if s.metrics != nil {
			s.metrics.LoadsIngested.Add(float64(len(records)))
		}

		s.logger.DebugContext(ctx, "load export parsed",
			slog.String("file", file.Name),
			slog.Int("records", len(records)))
	}

	return loads, nil
}

// ingestStatements parses the quarterly statements in parallel. Results keep
// the discovery order regardless of which worker finished first.
func (s *ReportService) ingestStatements(ctx context.Context) ([]domain.QuarterSummary, error) {
	statements, err := s.discovery.FindStatements(s.paths.StatementsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to discover statements: %w", err)
	}

	parser := plparser.NewParser(s.logger)
	results := make([]*domain.QuarterSummary, len(statements))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statementWorkers)

	for i, file := range statements {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rows, err := files.ReadRows(file.Path)
			if err != nil {
				s.logger.WarnContext(gctx, "skipping unreadable statement",
					slog.String("file", file.Name),
					slog.String("error", err.Error()))
				s.countFailure("statements")
				return nil
			}

			results[i] = parser.Parse(rows, file.Name)
			s.countFile("statements")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var quarters []domain.QuarterSummary
	for _, summary := range results {
		if summary == nil {
			continue
		}
		quarters = append(quarters, *summary)
		if s.metrics != nil {
			s.metrics.QuartersParsed.Inc()
		}
	}

	return quarters, nil
}

// Dashboard returns the load-level metrics, optionally filtered to loads
// whose date falls inside dateRange.
func (s *ReportService) Dashboard(ctx context.Context, dateRange *domain.DateRange) (*domain.DashboardMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ingested {
		return nil, errors.NewNotFoundError("dashboard data")
	}

	records := s.loads
	if dateRange != nil {
		records = dataprocessing.FilterByDateRange(records, *dateRange, s.logger)
	}

	return dataprocessing.CalculateDashboardMetrics(records), nil
}

// PLSummary returns the statement-pipeline output, optionally filtered to
// quarters that overlap dateRange.
func (s *ReportService) PLSummary(ctx context.Context, dateRange *domain.DateRange) (*domain.PLSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ingested {
		return nil, errors.NewNotFoundError("P&L data")
	}

	return plparser.BuildSummary(s.quarters, dateRange), nil
}

// Loads returns a copy of the ingested load records in parse order.
func (s *ReportService) Loads(ctx context.Context) ([]domain.LoadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ingested {
		return nil, errors.NewNotFoundError("load data")
	}

	out := make([]domain.LoadRecord, len(s.loads))
	copy(out, s.loads)
	return out, nil
}

// UnmatchedOTR returns registry load IDs that never matched an export row,
// sorted for stable output.
func (s *ReportService) UnmatchedOTR(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ingested {
		return nil, errors.NewNotFoundError("registry data")
	}

	return dataprocessing.UnmatchedRegistryIDs(s.loads, s.registry), nil
}

func (s *ReportService) countFile(kind string) {
	if s.metrics != nil {
		s.metrics.FilesProcessed.WithLabelValues(kind).Inc()
	}
}

func (s *ReportService) countFailure(kind string) {
	if s.metrics != nil {
		s.metrics.ParseFailures.WithLabelValues(kind).Inc()
	}
}
