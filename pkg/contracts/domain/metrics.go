package domain

import (
	"fmt"
	"sort"
	"time"
)

// ServiceTypeMetric accumulates revenue, profit and load count for one
// charge-category label. Revenue and profit are split evenly across a load's
// categories before accumulation.
type ServiceTypeMetric struct {
	ServiceType string  `json:"service_type"`
	Revenue     float64 `json:"revenue"`
	Profit      float64 `json:"profit"`
	Loads       int     `json:"loads"`
	Margin      float64 `json:"margin"`
}

// CustomerMetric accumulates per-customer totals.
type CustomerMetric struct {
	Customer string  `json:"customer"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
	Loads    int     `json:"loads"`
	Margin   float64 `json:"margin"`
}

// MonthlyMetric accumulates per-month totals, keyed by "Jan 2006" labels.
type MonthlyMetric struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	Loads     int     `json:"loads"`
	Margin    float64 `json:"margin"`
	DriverPay float64 `json:"driver_pay"`
	Expenses  float64 `json:"expenses"`
}

// DriverMetric accumulates per-driver totals.
type DriverMetric struct {
	Driver   string  `json:"driver"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
	Loads    int     `json:"loads"`
	Margin   float64 `json:"margin"`
	TotalPay float64 `json:"total_pay"`
}

// BusinessLineMetrics carries the top-line figures for one business line
// (OTR or local drayage).
type BusinessLineMetrics struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalProfit   float64 `json:"total_profit"`
	TotalLoads    int     `json:"total_loads"`
	AverageMargin float64 `json:"average_margin"`
}

// DashboardMetrics is the full set of load-level aggregations consumed by
// the reporting layer.
type DashboardMetrics struct {
	TotalRevenue          float64 `json:"total_revenue"`
	TotalProfit           float64 `json:"total_profit"`
	TotalLoads            int     `json:"total_loads"`
	AverageRevenuePerLoad float64 `json:"average_revenue_per_load"`
	AverageProfitPerLoad  float64 `json:"average_profit_per_load"`
	AverageMargin         float64 `json:"average_margin"`
	TotalDriverPay        float64 `json:"total_driver_pay"`
	TotalExpenses         float64 `json:"total_expenses"`

	OTRMetrics          BusinessLineMetrics `json:"otr_metrics"`
	LocalDrayageMetrics BusinessLineMetrics `json:"local_drayage_metrics"`

	ServiceTypeBreakdown []ServiceTypeMetric `json:"service_type_breakdown"`
	CustomerBreakdown    []CustomerMetric    `json:"customer_breakdown"`
	MonthlyBreakdown     []MonthlyMetric     `json:"monthly_breakdown"`
	DriverPerformance    []DriverMetric      `json:"driver_performance"`
}

// QuarterlyPLMetric is one chart row of the chronological P&L series.
type QuarterlyPLMetric struct {
	Period        string  `json:"period"` // e.g. "Q1 2023"
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
}

// YearlyPL holds one year's revenue/expense pair inside a quarter
// comparison row.
type YearlyPL struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// QuarterComparison is one of exactly four rows (Q1..Q4) comparing the same
// quarter across every observed year. Years is the normalized form; the
// Flatten method produces the wide, year-suffixed shape the chart layer
// renders one series per key from.
type QuarterComparison struct {
	Quarter string           `json:"quarter"`
	Years   map[int]YearlyPL `json:"years"`
}

// Flatten converts the comparison row to the wide presentation shape,
// e.g. {"quarter": "Q1", "revenue2023": ..., "expenses2023": ...}.
func (c QuarterComparison) Flatten() map[string]any {
	row := map[string]any{"quarter": c.Quarter}
	years := make([]int, 0, len(c.Years))
	for y := range c.Years {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, y := range years {
		pl := c.Years[y]
		row[fmt.Sprintf("revenue%d", y)] = pl.Revenue
		row[fmt.Sprintf("expenses%d", y)] = pl.Expenses
	}
	return row
}

// YardStorageSummary rolls up the yard-storage side business across
// quarters. StartupCosts follows a fixed amortization schedule tied to the
// facility-opening timeline.
type YardStorageSummary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	StartupCosts  float64 `json:"startup_costs"`
	NetProfit     float64 `json:"net_profit"`
}

// OverallPL is the company-wide rollup of every (optionally date-filtered)
// quarter summary.
type OverallPL struct {
	TotalIncome      float64          `json:"total_income"`
	TotalExpenses    float64          `json:"total_expenses"`
	NetProfit        float64          `json:"net_profit"`
	OperatingProfit  float64          `json:"operating_profit"`
	OverheadExpenses float64          `json:"overhead_expenses"`
	ExpenseBreakdown ExpenseBreakdown `json:"expense_breakdown"`
}

// PLSummary is the complete statement-pipeline output.
type PLSummary struct {
	Quarters            []QuarterSummary    `json:"quarters"`
	QuarterlyMetrics    []QuarterlyPLMetric `json:"quarterly_metrics"`
	QuarterlyComparison []QuarterComparison `json:"quarterly_comparison"`
	YardStorage         YardStorageSummary  `json:"yard_storage"`
	OverallPL           OverallPL           `json:"overall_pl"`
}

// DateRange is an inclusive start/end pair used to filter load records and
// quarter summaries.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Overlaps reports whether the two ranges share at least one day. A quarter
// that only partially overlaps the filter is kept in full.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.End.Before(other.Start) && !r.Start.After(other.End)
}
