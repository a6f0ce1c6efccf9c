package plparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aimdash/pkg/contracts/domain"
)

func quarter(year int, q string, income, expenses float64) domain.QuarterSummary {
	return domain.QuarterSummary{
		Quarter:       q,
		Year:          year,
		TotalIncome:   income,
		TotalExpenses: expenses,
	}
}

func TestBuildSummary_QuarterlyMetricsChronological(t *testing.T) {
	quarters := []domain.QuarterSummary{
		quarter(2024, "Q1", 300, 200),
		quarter(2023, "Q4", 250, 180),
		quarter(2023, "Q1", 100, 90),
	}

	summary := BuildSummary(quarters, nil)

	require.Len(t, summary.QuarterlyMetrics, 3)
	assert.Equal(t, "Q1 2023", summary.QuarterlyMetrics[0].Period)
	assert.Equal(t, "Q4 2023", summary.QuarterlyMetrics[1].Period)
	assert.Equal(t, "Q1 2024", summary.QuarterlyMetrics[2].Period)
}

func TestBuildSummary_ComparisonAlwaysFourRows(t *testing.T) {
	tests := []struct {
		name     string
		quarters []domain.QuarterSummary
	}{
		{name: "no quarters"},
		{name: "single quarter", quarters: []domain.QuarterSummary{quarter(2023, "Q2", 10, 5)}},
		{name: "three years", quarters: []domain.QuarterSummary{
			quarter(2023, "Q1", 1, 1), quarter(2024, "Q1", 2, 2), quarter(2025, "Q1", 3, 3),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := BuildSummary(tt.quarters, nil)
			require.Len(t, summary.QuarterlyComparison, 4)
			assert.Equal(t, "Q1", summary.QuarterlyComparison[0].Quarter)
			assert.Equal(t, "Q4", summary.QuarterlyComparison[3].Quarter)
		})
	}
}

func TestBuildSummary_ComparisonYears(t *testing.T) {
	quarters := []domain.QuarterSummary{
		quarter(2023, "Q1", 100, 80),
		quarter(2024, "Q1", 150, 90),
		quarter(2024, "Q3", 200, 120),
	}

	summary := BuildSummary(quarters, nil)

	q1 := summary.QuarterlyComparison[0]
	assert.Equal(t, domain.YearlyPL{Revenue: 100, Expenses: 80}, q1.Years[2023])
	assert.Equal(t, domain.YearlyPL{Revenue: 150, Expenses: 90}, q1.Years[2024])

	flat := q1.Flatten()
	assert.Equal(t, "Q1", flat["quarter"])
	assert.Equal(t, 100.0, flat["revenue2023"])
	assert.Equal(t, 90.0, flat["expenses2024"])

	q3 := summary.QuarterlyComparison[2]
	assert.Len(t, q3.Years, 1)
	assert.Empty(t, summary.QuarterlyComparison[1].Years)
}

func TestBuildSummary_YardStorageStartupSchedule(t *testing.T) {
	q42024 := quarter(2024, "Q4", 0, 0)
	q42024.YardStorageIncome = 3000
	q42024.RentExpense = 1000
	q42024.Utilities = 200
	q42024.RepairsAndMaintenance = 900 // one third amortized

	q12025 := quarter(2025, "Q1", 0, 0)
	q12025.RepairsAndMaintenance = 600 // full
	q12025.EquipmentRental = 150       // included for this quarter only

	q22025 := quarter(2025, "Q2", 0, 0)
	q22025.RepairsAndMaintenance = 300 // two thirds
	q22025.EquipmentRental = 999      // not part of the schedule here

	q32023 := quarter(2023, "Q3", 0, 0)
	q32023.RepairsAndMaintenance = 5000 // outside the schedule entirely

	summary := BuildSummary([]domain.QuarterSummary{q42024, q12025, q22025, q32023}, nil)

	ys := summary.YardStorage
	assert.Equal(t, 3000.0, ys.TotalIncome)
	assert.Equal(t, 1200.0, ys.TotalExpenses)
	assert.InDelta(t, 900.0/3+600+150+300*2/3, ys.StartupCosts, 1e-9)
	assert.InDelta(t, ys.TotalIncome-ys.TotalExpenses-ys.StartupCosts, ys.NetProfit, 1e-9)
}

func TestBuildSummary_OverallPL(t *testing.T) {
	q1 := quarter(2023, "Q1", 1000, 700)
	q1.Expenses = domain.ExpenseBreakdown{DriverPay: 300, Fuel: 100, PassThrough: 50, PayrollExpenses: 120, OtherExpenses: 30}
	q2 := quarter(2023, "Q2", 500, 400)
	q2.Expenses = domain.ExpenseBreakdown{DriverPay: 150, RentExpense: 80}

	summary := BuildSummary([]domain.QuarterSummary{q1, q2}, nil)

	pl := summary.OverallPL
	assert.Equal(t, 1500.0, pl.TotalIncome)
	assert.Equal(t, 1100.0, pl.TotalExpenses)
	assert.Equal(t, 400.0, pl.NetProfit)
	// Operating profit excludes overhead: 1500 - 450 driver pay - 100 fuel - 50 pass-through.
	assert.Equal(t, 900.0, pl.OperatingProfit)
	// Overhead is everything else: 120 payroll + 30 other + 80 rent.
	assert.Equal(t, 230.0, pl.OverheadExpenses)
	assert.Equal(t, 450.0, pl.ExpenseBreakdown.DriverPay)
}

func TestBuildSummary_DateRangeFilter(t *testing.T) {
	q1 := quarter(2023, "Q1", 100, 50)
	q1.DateRange = "January 1-March 31, 2023"
	q2 := quarter(2023, "Q2", 200, 80)
	q2.DateRange = "April 1-June 30, 2023"
	unresolvable := quarter(2024, "Q1", 300, 120)
	unresolvable.DateRange = "whole year maybe"

	filter := &domain.DateRange{
		Start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
	}

	summary := BuildSummary([]domain.QuarterSummary{q1, q2, unresolvable}, filter)

	require.Len(t, summary.Quarters, 2)
	assert.Equal(t, "Q1", summary.Quarters[0].Quarter)
	assert.Equal(t, 2024, summary.Quarters[1].Year, "unresolvable labels err toward inclusion")
	assert.Equal(t, 400.0, summary.OverallPL.TotalIncome)
}
