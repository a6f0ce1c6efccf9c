package plparser

import (
	"log/slog"
	"strings"

	"aimdash/internal/dataprocessing"
	"aimdash/pkg/contracts/domain"
)

// section is the parser state while walking statement rows.
type section int

const (
	sectionOutside section = iota
	sectionIncome
	sectionExpense
)

// dateRangeRow is the fixed row index carrying the statement's date-range
// label, e.g. "January 1-March 31, 2023".
const dateRangeRow = 2

// Parser turns one statement export into a QuarterSummary.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a statement parser. A nil logger falls back to
// slog.Default().
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger.With(slog.String("component", "pl_parser"))}
}

// Parse walks the ordered rows of one statement export and returns its
// quarter summary. The quarter and year come from the filename's encoded
// file number. Parse never fails: a statement missing its declared totals
// still yields a summary with zero totals and a populated itemized
// breakdown.
func (p *Parser) Parse(rows [][]string, filename string) *domain.QuarterSummary {
	year, quarter := QuarterForFile(filename)

	summary := &domain.QuarterSummary{
		Quarter: quarter,
		Year:    year,
	}
	if len(rows) > dateRangeRow && len(rows[dateRangeRow]) > 0 {
		summary.DateRange = strings.TrimSpace(rows[dateRangeRow][0])
	}

	state := sectionOutside
	replaced := make(replacedCategories)

	for _, row := range rows {
		var label, value string
		if len(row) > 0 {
			label = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			value = strings.TrimSpace(row[1])
		}

		// Section transitions and declared totals.
		switch {
		case label == "Income":
			state = sectionIncome
			continue
		case label == "Expenses":
			state = sectionExpense
			continue
		case strings.HasPrefix(label, "Total for Income"):
			summary.TotalIncome = dataprocessing.ParseAmount(value)
			state = sectionOutside
			continue
		case strings.HasPrefix(label, "Total for Expenses"):
			summary.TotalExpenses = dataprocessing.ParseAmount(value)
			state = sectionOutside
			continue
		case strings.HasPrefix(label, "Net Operating Income"):
			// Guards against trailing income rows after the total line.
			if state == sectionIncome {
				state = sectionOutside
			}
		}

		switch state {
		case sectionIncome:
			p.parseIncomeRow(summary, label, value)
		case sectionExpense:
			p.parseExpenseRow(summary, replaced, label, value)
		}
	}

	p.logger.Debug("parsed statement",
		slog.String("filename", filename),
		slog.String("period", summary.Period()),
		slog.Float64("total_income", summary.TotalIncome),
		slog.Float64("total_expenses", summary.TotalExpenses))

	return summary
}

func (p *Parser) parseIncomeRow(summary *domain.QuarterSummary, label, value string) {
	amount := dataprocessing.ParseAmount(value)
	if yardStorageIncomeLabels[label] {
		summary.YardStorageIncome += amount
	}
	if target, ok := passThroughIncomeLabels[label]; ok {
		*target(&summary.PassThroughIncome) += amount
	}
}

func (p *Parser) parseExpenseRow(summary *domain.QuarterSummary, replaced replacedCategories, label, value string) {
	amount := dataprocessing.ParseAmount(value)

	classifyExpense(&summary.Expenses, replaced, label, amount)

	// Facility categories also capture their latest flat per-quarter value
	// for the yard-storage summary, separate from the accumulated breakdown.
	switch label {
	case "Rent Expense":
		summary.RentExpense = amount
	case "Utilities":
		summary.Utilities = amount
	case "Repairs and Maintenance":
		summary.RepairsAndMaintenance = amount
	case "Equipment Rental Expense":
		summary.EquipmentRental = amount
	}

	// A row can contribute to both the main classification and the
	// pass-through side ledger.
	if target, ok := passThroughExpenseLabels[label]; ok {
		*target(&summary.PassThroughExpenses) += amount
	}
}
