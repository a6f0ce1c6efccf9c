package dataprocessing

import (
	"log/slog"
	"sort"
	"time"

	"aimdash/pkg/contracts/domain"
)

// loadDateFormat is the M/d/yy-style date carried by the load export.
const loadDateFormat = "1/2/06"

// monthKeyFormat is the bucket label for the monthly breakdown.
const monthKeyFormat = "Jan 2006"

// passThroughChargeTypes are the load-level charge labels excluded from the
// service-type breakdown. This list intentionally differs from the
// statement-side pass-through labels: the two filter different entities and
// are kept independently configurable.
var passThroughChargeTypes = map[string]bool{
	"transload": true,
	"Unloading": true,
	"unloading": true,
}

// ParseLoadDate parses the occurrence date of a load record.
func ParseLoadDate(value string) (time.Time, error) {
	return time.Parse(loadDateFormat, value)
}

// FilterByDateRange retains records whose occurrence date falls within the
// inclusive range. Records with unparsable dates are dropped from the
// date-sensitive view with a warning, never propagated as an error.
func FilterByDateRange(records []domain.LoadRecord, dateRange domain.DateRange, logger *slog.Logger) []domain.LoadRecord {
	if logger == nil {
		logger = slog.Default()
	}

	filtered := make([]domain.LoadRecord, 0, len(records))
	for _, record := range records {
		date, err := ParseLoadDate(record.Date)
		if err != nil {
			logger.Warn("dropping record with unparsable date",
				slog.String("load_number", record.LoadNumber),
				slog.String("date", record.Date))
			continue
		}
		if dateRange.Contains(date) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// CalculateDashboardMetrics reduces load records into the dimensional
// breakdowns and top-line metrics of the dashboard. Margins are computed
// after accumulation; a dimension with zero revenue has margin exactly 0.
func CalculateDashboardMetrics(records []domain.LoadRecord) *domain.DashboardMetrics {
	metrics := &domain.DashboardMetrics{TotalLoads: len(records)}

	for _, r := range records {
		metrics.TotalRevenue += r.TotalCharges
		metrics.TotalProfit += r.Profit
		metrics.TotalDriverPay += r.DriverPayTotal
		metrics.TotalExpenses += r.ExpenseTotal

		line := &metrics.LocalDrayageMetrics
		if r.IsOTR {
			line = &metrics.OTRMetrics
		}
		line.TotalRevenue += r.TotalCharges
		line.TotalProfit += r.Profit
		line.TotalLoads++
	}

	if metrics.TotalLoads > 0 {
		metrics.AverageRevenuePerLoad = metrics.TotalRevenue / float64(metrics.TotalLoads)
		metrics.AverageProfitPerLoad = metrics.TotalProfit / float64(metrics.TotalLoads)
	}
	metrics.AverageMargin = margin(metrics.TotalProfit, metrics.TotalRevenue)
	metrics.OTRMetrics.AverageMargin = margin(metrics.OTRMetrics.TotalProfit, metrics.OTRMetrics.TotalRevenue)
	metrics.LocalDrayageMetrics.AverageMargin = margin(metrics.LocalDrayageMetrics.TotalProfit, metrics.LocalDrayageMetrics.TotalRevenue)

	metrics.ServiceTypeBreakdown = serviceTypeBreakdown(records)
	metrics.CustomerBreakdown = customerBreakdown(records)
	metrics.MonthlyBreakdown = monthlyBreakdown(records)
	metrics.DriverPerformance = driverPerformance(records)

	return metrics
}

// serviceTypeBreakdown splits each load's revenue and profit evenly across
// its charge categories before accumulating, since one row can carry several
// comma-joined service labels. Pass-through categories are skipped entirely;
// a record with no qualifying category is dropped from this breakdown only.
func serviceTypeBreakdown(records []domain.LoadRecord) []domain.ServiceTypeMetric {
	index := make(map[string]int)
	var breakdown []domain.ServiceTypeMetric

	for _, r := range records {
		if len(r.ChargesType) == 0 {
			continue
		}
		share := 1.0 / float64(len(r.ChargesType))
		for _, service := range r.ChargesType {
			if passThroughChargeTypes[service] {
				continue
			}
			i, ok := index[service]
			if !ok {
				i = len(breakdown)
				index[service] = i
				breakdown = append(breakdown, domain.ServiceTypeMetric{ServiceType: service})
			}
			breakdown[i].Revenue += r.TotalCharges * share
			breakdown[i].Profit += r.Profit * share
			breakdown[i].Loads++
		}
	}

	for i := range breakdown {
		breakdown[i].Margin = margin(breakdown[i].Profit, breakdown[i].Revenue)
	}
	sortByRevenueDesc(breakdown, func(m domain.ServiceTypeMetric) float64 { return m.Revenue })
	return breakdown
}

func customerBreakdown(records []domain.LoadRecord) []domain.CustomerMetric {
	index := make(map[string]int)
	var breakdown []domain.CustomerMetric

	for _, r := range records {
		i, ok := index[r.Customer]
		if !ok {
			i = len(breakdown)
			index[r.Customer] = i
			breakdown = append(breakdown, domain.CustomerMetric{Customer: r.Customer})
		}
		breakdown[i].Revenue += r.TotalCharges
		breakdown[i].Profit += r.Profit
		breakdown[i].Loads++
	}

	for i := range breakdown {
		breakdown[i].Margin = margin(breakdown[i].Profit, breakdown[i].Revenue)
	}
	sortByRevenueDesc(breakdown, func(m domain.CustomerMetric) float64 { return m.Revenue })
	return breakdown
}

// monthlyBreakdown groups records by parsed month/year. Records whose date
// does not parse are skipped from this view. The final order is
// chronological, recovered by re-parsing the month label.
func monthlyBreakdown(records []domain.LoadRecord) []domain.MonthlyMetric {
	index := make(map[string]int)
	var breakdown []domain.MonthlyMetric

	for _, r := range records {
		date, err := ParseLoadDate(r.Date)
		if err != nil {
			continue
		}
		key := date.Format(monthKeyFormat)
		i, ok := index[key]
		if !ok {
			i = len(breakdown)
			index[key] = i
			breakdown = append(breakdown, domain.MonthlyMetric{Month: key})
		}
		breakdown[i].Revenue += r.TotalCharges
		breakdown[i].Profit += r.Profit
		breakdown[i].Loads++
		breakdown[i].DriverPay += r.DriverPayTotal
		breakdown[i].Expenses += r.ExpenseTotal
	}

	for i := range breakdown {
		breakdown[i].Margin = margin(breakdown[i].Profit, breakdown[i].Revenue)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		a, errA := time.Parse(monthKeyFormat, breakdown[i].Month)
		b, errB := time.Parse(monthKeyFormat, breakdown[j].Month)
		if errA != nil || errB != nil {
			return false
		}
		return a.Before(b)
	})
	return breakdown
}

func driverPerformance(records []domain.LoadRecord) []domain.DriverMetric {
	index := make(map[string]int)
	var breakdown []domain.DriverMetric

	for _, r := range records {
		if r.Driver == "" {
			continue
		}
		i, ok := index[r.Driver]
		if !ok {
			i = len(breakdown)
			index[r.Driver] = i
			breakdown = append(breakdown, domain.DriverMetric{Driver: r.Driver})
		}
		breakdown[i].Revenue += r.TotalCharges
		breakdown[i].Profit += r.Profit
		breakdown[i].Loads++
		breakdown[i].TotalPay += r.DriverPayTotal
	}

	for i := range breakdown {
		breakdown[i].Margin = margin(breakdown[i].Profit, breakdown[i].Revenue)
	}
	sortByRevenueDesc(breakdown, func(m domain.DriverMetric) float64 { return m.Revenue })
	return breakdown
}

// margin computes profit/revenue as a percentage, exactly 0 when revenue
// is zero.
func margin(profit, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return profit / revenue * 100
}

// sortByRevenueDesc sorts a breakdown by descending revenue; the stable sort
// breaks ties by original insertion order.
func sortByRevenueDesc[T any](items []T, revenue func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return revenue(items[i]) > revenue(items[j])
	})
}
