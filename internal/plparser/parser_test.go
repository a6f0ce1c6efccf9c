package plparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statementRows wraps body rows with the header/date-range preamble every
// statement export carries.
func statementRows(body ...[]string) [][]string {
	rows := [][]string{
		{"Aim Trucking Services, Inc."},
		{"Profit and Loss"},
		{"January 1-March 31, 2023"},
	}
	return append(rows, body...)
}

func TestParse_SectionsAndTotals(t *testing.T) {
	rows := statementRows(
		[]string{"Income"},
		[]string{"Drayage Income", "$90,000.00"},
		[]string{"Total for Income", "$100,000.00"},
		[]string{"Expenses"},
		[]string{"Base Price", "$40,000.00"},
		[]string{"Fuel", "$5,000.00"},
		[]string{"Total for Expenses", "$60,000.00"},
	)

	summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")

	assert.Equal(t, "Q1", summary.Quarter)
	assert.Equal(t, 2023, summary.Year)
	assert.Equal(t, "January 1-March 31, 2023", summary.DateRange)
	assert.Equal(t, 100000.0, summary.TotalIncome)
	assert.Equal(t, 60000.0, summary.TotalExpenses)
	assert.Equal(t, 40000.0, summary.Expenses.DriverPay)
	assert.Equal(t, 5000.0, summary.Expenses.Fuel)
}

func TestParse_ReplaceOverAccumulate(t *testing.T) {
	tests := []struct {
		name string
		body [][]string
		want float64
	}{
		{
			name: "total after itemized lines",
			body: [][]string{
				{"Insurance - Commercial", "$500.00"},
				{"Total for Insurance", "$450.00"},
			},
			want: 450,
		},
		{
			name: "total before itemized lines",
			body: [][]string{
				{"Total for Insurance", "$450.00"},
				{"Insurance - Commercial", "$500.00"},
			},
			want: 450,
		},
		{
			name: "itemized only",
			body: [][]string{
				{"Insurance - Commercial", "$500.00"},
				{"Driver Insurance Deduction", "$50.00"},
			},
			want: 550,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := statementRows(append([][]string{{"Expenses"}}, tt.body...)...)
			summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")
			assert.Equal(t, tt.want, summary.Expenses.CommercialInsurance)
		})
	}
}

func TestParse_HealthInsuranceSubtotalWins(t *testing.T) {
	rows := statementRows(
		[]string{"Expenses"},
		[]string{"HRA Employee Benefit", "$300.00"},
		[]string{"Total for Health Insurance", "$1,200.00"},
	)

	summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")
	assert.Equal(t, 1200.0, summary.Expenses.HealthInsurance, "subtotal already includes HRA")
}

func TestParse_ChassisRentalSubtotalWins(t *testing.T) {
	rows := statementRows(
		[]string{"Expenses"},
		[]string{"Chassis Rental", "$800.00"},
		[]string{"Repairs - Chassis", "$200.00"},
		[]string{"Total for Chassis Rental", "$950.00"},
	)

	summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")
	assert.Equal(t, 950.0, summary.Expenses.ChassisRental)
}

func TestParse_CatchAllOtherExpenses(t *testing.T) {
	rows := statementRows(
		[]string{"Expenses"},
		[]string{"Office Snacks", "$120.00"},
		[]string{"Total for Misc Group", "$999.00"}, // subtotal of unmodeled group, skipped
		[]string{"Zero Line", ""},
	)

	summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")
	assert.Equal(t, 120.0, summary.Expenses.OtherExpenses)
}

func TestParse_PassThroughSideLedger(t *testing.T) {
	rows := statementRows(
		[]string{"Expenses"},
		// Classified as pass-through AND captured by the side ledger
		[]string{"Transloading", "$400.00"},
		[]string{"WAREHOUSE STORAGE", "$100.00"},
		// Side-ledger only (falls into otherExpenses in the main table)
		[]string{"UNLOADING EXPENSE", "$60.00"},
		[]string{"SSL DETENTION", "$30.00"},
	)

	summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")

	assert.Equal(t, 500.0, summary.Expenses.PassThrough)
	assert.Equal(t, 400.0, summary.PassThroughExpenses.Transload)
	assert.Equal(t, 100.0, summary.PassThroughExpenses.WarehouseStorage)
	assert.Equal(t, 60.0, summary.PassThroughExpenses.Unloading)
	assert.Equal(t, 30.0, summary.PassThroughExpenses.SSLDetention)
	assert.Equal(t, 90.0, summary.Expenses.OtherExpenses,
		"unloading and detention are unmodeled in the main table")
}

func TestParse_IncomeSection(t *testing.T) {
	rows := statementRows(
		[]string{"Income"},
		[]string{"AIM YARD STORAGE 1", "$2,000.00"},
		[]string{"YARD STORAGE 1", "$500.00"},
		[]string{"PALLETIZATION", "$300.00"},
		[]string{"UNLOADING 1", "$200.00"},
		[]string{"Transload", "$150.00"},
		[]string{"WAREHOUSE STORAGE INCOME", "$120.00"},
		[]string{"SSL DETENTION", "$80.00"},
		[]string{"Total for Income", "$10,000.00"},
	)

	summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")

	assert.Equal(t, 2500.0, summary.YardStorageIncome)
	assert.Equal(t, 300.0, summary.PassThroughIncome.Palletization)
	assert.Equal(t, 200.0, summary.PassThroughIncome.Unloading)
	assert.Equal(t, 150.0, summary.PassThroughIncome.Transload)
	assert.Equal(t, 120.0, summary.PassThroughIncome.WarehouseStorage)
	assert.Equal(t, 80.0, summary.PassThroughIncome.SSLDetention)
	assert.Equal(t, 10000.0, summary.TotalIncome)
}

func TestParse_NetOperatingIncomeExitsIncome(t *testing.T) {
	rows := statementRows(
		[]string{"Income"},
		[]string{"Net Operating Income", "$5,000.00"},
		// Trailing row must not be counted as income anymore.
		[]string{"AIM YARD STORAGE 1", "$9,999.00"},
	)

	summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")
	assert.Zero(t, summary.YardStorageIncome)
}

func TestParse_FacilityFlatCapture(t *testing.T) {
	rows := statementRows(
		[]string{"Expenses"},
		[]string{"Rent Expense", "$3,000.00"},
		[]string{"Utilities", "$400.00"},
		[]string{"Repairs and Maintenance", "$900.00"},
		[]string{"Equipment Rental Expense", "$250.00"},
		// A second rent line: accumulated in the breakdown, latest value in
		// the flat field.
		[]string{"Rent Expense", "$3,100.00"},
	)

	summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")

	assert.Equal(t, 6100.0, summary.Expenses.RentExpense)
	assert.Equal(t, 3100.0, summary.RentExpense, "flat field keeps the latest value")
	assert.Equal(t, 400.0, summary.Utilities)
	assert.Equal(t, 900.0, summary.RepairsAndMaintenance)
	assert.Equal(t, 250.0, summary.EquipmentRental)
}

func TestParse_MissingDeclaredTotals(t *testing.T) {
	rows := statementRows(
		[]string{"Expenses"},
		[]string{"Fuel", "$1,000.00"},
	)

	summary := NewParser(nil).Parse(rows, "Profit and Loss (10).csv")

	require.NotNil(t, summary, "parser never fails")
	assert.Zero(t, summary.TotalExpenses)
	assert.Equal(t, 1000.0, summary.Expenses.Fuel, "itemized breakdown still populated")
}

func TestParse_EmptyAndShortRows(t *testing.T) {
	summary := NewParser(nil).Parse(nil, "unknown.csv")
	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.Year)
	assert.Equal(t, "Q1", summary.Quarter)

	summary = NewParser(nil).Parse([][]string{{}, nil, {"Expenses"}, {"Fuel"}}, "unknown.csv")
	require.NotNil(t, summary)
	assert.Zero(t, summary.Expenses.Fuel, "missing value column parses as zero")
}
