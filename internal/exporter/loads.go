package exporter

import (
	"fmt"
	"strings"

	"aimdash/internal/config"
	"aimdash/pkg/contracts/domain"
)

// LoadExporter writes processed load records to CSV reports.
type LoadExporter struct {
	csvWriter *CSVWriter
}

// NewLoadExporter creates a new load record exporter
func NewLoadExporter(paths *config.Paths) *LoadExporter {
	return &LoadExporter{
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportLoads writes all load records to a single CSV file, preserving the
// order they were parsed in.
func (e *LoadExporter) ExportLoads(records []domain.LoadRecord, outputPath string) error {
	csvRecords := make([][]string, 0, len(records))
	for _, record := range records {
		csvRecords = append(csvRecords, e.recordToCSVRow(record))
	}

	if err := e.csvWriter.WriteSimpleCSV(outputPath, e.getHeaders(), csvRecords); err != nil {
		return fmt.Errorf("failed to write loads report: %w", err)
	}
	return nil
}

// ExportUnmatchedOTR writes registry load IDs that never appeared in any
// export, one per row. The file is a reconciliation aid for operations.
func (e *LoadExporter) ExportUnmatchedOTR(loadIDs []string, outputPath string) error {
	csvRecords := make([][]string, 0, len(loadIDs))
	for _, id := range loadIDs {
		csvRecords = append(csvRecords, []string{id})
	}

	if err := e.csvWriter.WriteSimpleCSV(outputPath, []string{"Load ID"}, csvRecords); err != nil {
		return fmt.Errorf("failed to write unmatched OTR report: %w", err)
	}
	return nil
}

// getHeaders returns the CSV headers for load records
func (e *LoadExporter) getHeaders() []string {
	return []string{
		"Load #", "Container #", "Customer", "Date", "Driver", "Charges Type",
		"Total Charges", "Driver Pay Total", "Expense Total", "Profit",
		"Profit Margin", "OTR",
	}
}

// recordToCSVRow converts a load record to a CSV row
func (e *LoadExporter) recordToCSVRow(record domain.LoadRecord) []string {
	return []string{
		record.LoadNumber,
		record.ContainerNumber,
		record.Customer,
		record.Date,
		record.Driver,
		strings.Join(record.ChargesType, "; "),
		formatFloat(record.TotalCharges),
		formatFloat(record.DriverPayTotal),
		formatFloat(record.ExpenseTotal),
		formatFloat(record.Profit),
		formatFloat(record.ProfitMargin),
		formatBool(record.IsOTR),
	}
}
