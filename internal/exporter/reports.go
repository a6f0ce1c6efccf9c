package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"aimdash/internal/config"
	"aimdash/pkg/contracts/domain"
)

// ReportExporter writes dashboard metrics and profit-and-loss summaries to
// JSON and CSV report files.
type ReportExporter struct {
	paths     *config.Paths
	csvWriter *CSVWriter
}

// NewReportExporter creates a new report exporter
func NewReportExporter(paths *config.Paths) *ReportExporter {
	return &ReportExporter{
		paths:     paths,
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportDashboardJSON writes the full dashboard metrics to a JSON file
func (e *ReportExporter) ExportDashboardJSON(metrics *domain.DashboardMetrics, outputPath string) error {
	return e.writeJSON(metrics, outputPath)
}

// ExportPLSummaryJSON writes the complete statement-pipeline output to a JSON file
func (e *ReportExporter) ExportPLSummaryJSON(summary *domain.PLSummary, outputPath string) error {
	return e.writeJSON(summary, outputPath)
}

// ExportQuarterlyPLCSV writes the chronological quarterly series as CSV
func (e *ReportExporter) ExportQuarterlyPLCSV(metrics []domain.QuarterlyPLMetric, outputPath string) error {
	csvRecords := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		csvRecords = append(csvRecords, []string{
			m.Period,
			formatFloat(m.TotalRevenue),
			formatFloat(m.TotalExpenses),
			formatFloat(m.TotalRevenue - m.TotalExpenses),
		})
	}

	headers := []string{"Period", "Revenue", "Expenses", "Net"}
	if err := e.csvWriter.WriteSimpleCSV(outputPath, headers, csvRecords); err != nil {
		return fmt.Errorf("failed to write quarterly P&L report: %w", err)
	}
	return nil
}

// writeJSON marshals v with indentation and writes it under the reports
// directory unless the path is absolute.
func (e *ReportExporter) writeJSON(v any, outputPath string) error {
	fullPath := outputPath
	if !filepath.IsAbs(fullPath) {
		fullPath = e.paths.GetReportPath(fullPath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", fullPath, err)
	}
	return nil
}
