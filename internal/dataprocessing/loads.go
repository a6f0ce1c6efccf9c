package dataprocessing

import (
	"log/slog"
	"sort"
	"strings"

	"aimdash/pkg/contracts/domain"
)

// Column names of the per-load profitability export. Lookup is
// trim-insensitive, matching the registry join behavior.
const (
	colLoadNumber   = "Load #"
	colContainer    = "Container #"
	colCustomer     = "Customer"
	colDate         = "Date"
	colDriver       = "Driver"
	colChargesType  = "Charges Type"
	colTotalCharges = "Total Charges"
	colDriverPay    = "Driver Pay Total"
	colExpenseTotal = "Expense Total"
	colProfit       = "Profit"
	colProfitMargin = "Profit Margin"
)

// LoadParser ingests per-load profitability rows and tags each record with
// OTR membership via the registry join index.
type LoadParser struct {
	logger *slog.Logger
}

// NewLoadParser creates a load parser. A nil logger falls back to
// slog.Default().
func NewLoadParser(logger *slog.Logger) *LoadParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadParser{logger: logger.With(slog.String("component", "load_parser"))}
}

// Parse converts header-rowed export rows into LoadRecords, preserving input
// row order. Rows with an empty Load # are dropped; any other malformed cell
// degrades to zero/empty and the row is still emitted. A single bad row
// never aborts the batch.
func (p *LoadParser) Parse(rows [][]string, otrIndex JoinIndex) []domain.LoadRecord {
	if len(rows) == 0 {
		return nil
	}

	columns := mapColumns(rows[0])
	records := make([]domain.LoadRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		loadNumber := cell(colLoadNumber)
		if loadNumber == "" {
			continue
		}

		records = append(records, domain.LoadRecord{
			LoadNumber:      loadNumber,
			ContainerNumber: cell(colContainer),
			Customer:        cell(colCustomer),
			Date:            cell(colDate),
			Driver:          cell(colDriver),
			ChargesType:     splitChargeTypes(cell(colChargesType)),
			TotalCharges:    ParseAmount(cell(colTotalCharges)),
			DriverPayTotal:  ParseAmount(cell(colDriverPay)),
			ExpenseTotal:    ParseAmount(cell(colExpenseTotal)),
			Profit:          ParseAmount(cell(colProfit)),
			ProfitMargin:    ParsePercent(cell(colProfitMargin)),
			IsOTR:           otrIndex.Has(ExtractLoadID(loadNumber)),
		})
	}

	p.logger.Info("parsed load records",
		slog.Int("row_count", len(rows)-1),
		slog.Int("record_count", len(records)))

	return records
}

// mapColumns maps trimmed header names to their column positions.
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// splitChargeTypes splits the comma-joined charge-category field, trimming
// entries and dropping empties.
func splitChargeTypes(field string) []string {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	types := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			types = append(types, trimmed)
		}
	}
	if len(types) == 0 {
		return nil
	}
	return types
}

// UnmatchedRegistryIDs returns the registry identifiers that match no
// ingested load, sorted for stable diagnostics output.
func UnmatchedRegistryIDs(records []domain.LoadRecord, registry JoinIndex) []string {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if id := ExtractLoadID(r.LoadNumber); id != "" {
			seen[id] = struct{}{}
		}
	}

	var unmatched []string
	for id := range registry {
		if _, ok := seen[id]; !ok {
			unmatched = append(unmatched, id)
		}
	}
	sort.Strings(unmatched)
	return unmatched
}
