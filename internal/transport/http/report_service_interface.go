package http

import (
	"context"

	"aimdash/pkg/contracts/domain"
)

// ReportServiceInterface defines the reporting operations the handlers need.
// The concrete implementation lives in internal/services.
type ReportServiceInterface interface {
	Dashboard(ctx context.Context, dateRange *domain.DateRange) (*domain.DashboardMetrics, error)
	PLSummary(ctx context.Context, dateRange *domain.DateRange) (*domain.PLSummary, error)
	Loads(ctx context.Context) ([]domain.LoadRecord, error)
	UnmatchedOTR(ctx context.Context) ([]string, error)
}
