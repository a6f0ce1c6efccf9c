package plparser

import (
	"sort"

	"aimdash/pkg/contracts/domain"
)

// startupCostRule is one entry of the yard-storage startup-cost
// amortization schedule. The facility opened December 2024 and ramped
// through May 2025, so specific quarters contribute a fraction of their
// repairs (one month ≈ one third of a quarter) and Q1 2025 additionally
// carries the full equipment rental. This is domain configuration tied to a
// known timeline, not a general rule.
type startupCostRule struct {
	Year            int
	Quarter         string
	RepairsFraction float64
	EquipmentRental bool
}

var startupCostSchedule = []startupCostRule{
	{Year: 2024, Quarter: "Q4", RepairsFraction: 1.0 / 3.0},                       // Dec only
	{Year: 2025, Quarter: "Q1", RepairsFraction: 1, EquipmentRental: true},        // Jan-Mar
	{Year: 2025, Quarter: "Q2", RepairsFraction: 2.0 / 3.0},                       // Apr-May
}

var quarterOrder = map[string]int{"Q1": 1, "Q2": 2, "Q3": 3, "Q4": 4}

// FilterQuarters retains the quarter summaries whose resolved date range
// overlaps the filter. Quarters whose date-range label does not resolve are
// always kept. A nil filter keeps everything.
func FilterQuarters(quarters []domain.QuarterSummary, dateRange *domain.DateRange) []domain.QuarterSummary {
	if dateRange == nil {
		return quarters
	}
	filtered := make([]domain.QuarterSummary, 0, len(quarters))
	for _, q := range quarters {
		if QuarterInRange(q.DateRange, *dateRange) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// BuildSummary folds parsed quarter summaries into the complete P&L view:
// the chronological quarterly series, the four-row cross-year comparison,
// the yard-storage rollup with its startup-cost schedule, and the overall
// P&L totals. An optional date range filters quarters first (overlap test,
// partial-overlap quarters kept in full).
func BuildSummary(quarters []domain.QuarterSummary, dateRange *domain.DateRange) *domain.PLSummary {
	quarters = FilterQuarters(quarters, dateRange)

	return &domain.PLSummary{
		Quarters:            quarters,
		QuarterlyMetrics:    quarterlyMetrics(quarters),
		QuarterlyComparison: quarterlyComparison(quarters),
		YardStorage:         yardStorageSummary(quarters),
		OverallPL:           overallPL(quarters),
	}
}

// quarterlyMetrics produces the chart series sorted by year, then quarter.
func quarterlyMetrics(quarters []domain.QuarterSummary) []domain.QuarterlyPLMetric {
	ordered := make([]domain.QuarterSummary, len(quarters))
	copy(ordered, quarters)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Year != ordered[j].Year {
			return ordered[i].Year < ordered[j].Year
		}
		return quarterOrder[ordered[i].Quarter] < quarterOrder[ordered[j].Quarter]
	})

	metrics := make([]domain.QuarterlyPLMetric, 0, len(ordered))
	for _, q := range ordered {
		metrics = append(metrics, domain.QuarterlyPLMetric{
			Period:        q.Period(),
			TotalRevenue:  q.TotalIncome,
			TotalExpenses: q.TotalExpenses,
		})
	}
	return metrics
}

// quarterlyComparison always yields exactly four rows (Q1..Q4), each
// carrying one revenue/expense pair per observed year. The sparse wide
// shape the chart renders comes from QuarterComparison.Flatten at the
// presentation boundary.
func quarterlyComparison(quarters []domain.QuarterSummary) []domain.QuarterComparison {
	rows := []domain.QuarterComparison{
		{Quarter: "Q1", Years: map[int]domain.YearlyPL{}},
		{Quarter: "Q2", Years: map[int]domain.YearlyPL{}},
		{Quarter: "Q3", Years: map[int]domain.YearlyPL{}},
		{Quarter: "Q4", Years: map[int]domain.YearlyPL{}},
	}
	index := map[string]int{"Q1": 0, "Q2": 1, "Q3": 2, "Q4": 3}

	for _, q := range quarters {
		i, ok := index[q.Quarter]
		if !ok {
			continue
		}
		rows[i].Years[q.Year] = domain.YearlyPL{
			Revenue:  q.TotalIncome,
			Expenses: q.TotalExpenses,
		}
	}
	return rows
}

// yardStorageSummary sums yard-storage income against rent and utilities,
// then applies the startup-cost amortization schedule.
func yardStorageSummary(quarters []domain.QuarterSummary) domain.YardStorageSummary {
	var summary domain.YardStorageSummary

	for _, q := range quarters {
		summary.TotalIncome += q.YardStorageIncome
		summary.TotalExpenses += q.RentExpense + q.Utilities

		for _, rule := range startupCostSchedule {
			if q.Year != rule.Year || q.Quarter != rule.Quarter {
				continue
			}
			summary.StartupCosts += q.RepairsAndMaintenance * rule.RepairsFraction
			if rule.EquipmentRental {
				summary.StartupCosts += q.EquipmentRental
			}
		}
	}

	summary.NetProfit = summary.TotalIncome - summary.TotalExpenses - summary.StartupCosts
	return summary
}

// overallPL sums every quarter into company-wide totals. Operating profit
// excludes overhead: income minus driver pay, fuel and pass-through.
func overallPL(quarters []domain.QuarterSummary) domain.OverallPL {
	var pl domain.OverallPL

	for _, q := range quarters {
		pl.TotalIncome += q.TotalIncome
		pl.TotalExpenses += q.TotalExpenses
		pl.ExpenseBreakdown.Add(q.Expenses)
	}

	pl.NetProfit = pl.TotalIncome - pl.TotalExpenses
	pl.OperatingProfit = pl.TotalIncome -
		pl.ExpenseBreakdown.DriverPay -
		pl.ExpenseBreakdown.Fuel -
		pl.ExpenseBreakdown.PassThrough
	pl.OverheadExpenses = pl.ExpenseBreakdown.Overhead()

	return pl
}
