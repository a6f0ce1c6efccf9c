package domain

import "fmt"

// ExpenseBreakdown is the fixed expense taxonomy one quarterly statement is
// classified into. Category sums need not reconcile exactly with the
// statement's declared total; unclassified lines land in OtherExpenses.
type ExpenseBreakdown struct {
	// Driver and operations costs
	DriverPay float64 `json:"driver_pay"`
	Fuel      float64 `json:"fuel"`

	// Pass-through expenses, expected to net against matching income
	PassThrough float64 `json:"pass_through"`

	// Overhead - payroll and benefits
	PayrollExpenses float64 `json:"payroll_expenses"`
	HealthInsurance float64 `json:"health_insurance"`

	// Overhead - insurance
	CommercialInsurance float64 `json:"commercial_insurance"`

	// Overhead - facility and equipment
	RentExpense           float64 `json:"rent_expense"`
	Utilities             float64 `json:"utilities"`
	RepairsAndMaintenance float64 `json:"repairs_and_maintenance"`
	ChassisRental         float64 `json:"chassis_rental"`
	EquipmentRental       float64 `json:"equipment_rental"`

	// Overhead - administrative
	AccountingServices  float64 `json:"accounting_services"`
	ComputerAndInternet float64 `json:"computer_and_internet"`
	BankCharges         float64 `json:"bank_charges"`
	BusinessLicenses    float64 `json:"business_licenses"`
	Advertising         float64 `json:"advertising"`

	// Everything the taxonomy does not model explicitly
	OtherExpenses float64 `json:"other_expenses"`
}

// Add accumulates another breakdown into the receiver, category by category.
func (b *ExpenseBreakdown) Add(other ExpenseBreakdown) {
	b.DriverPay += other.DriverPay
	b.Fuel += other.Fuel
	b.PassThrough += other.PassThrough
	b.PayrollExpenses += other.PayrollExpenses
	b.HealthInsurance += other.HealthInsurance
	b.CommercialInsurance += other.CommercialInsurance
	b.RentExpense += other.RentExpense
	b.Utilities += other.Utilities
	b.RepairsAndMaintenance += other.RepairsAndMaintenance
	b.ChassisRental += other.ChassisRental
	b.EquipmentRental += other.EquipmentRental
	b.AccountingServices += other.AccountingServices
	b.ComputerAndInternet += other.ComputerAndInternet
	b.BankCharges += other.BankCharges
	b.BusinessLicenses += other.BusinessLicenses
	b.Advertising += other.Advertising
	b.OtherExpenses += other.OtherExpenses
}

// Overhead returns the sum of every category outside direct operating costs
// (driver pay, fuel, pass-through).
func (b ExpenseBreakdown) Overhead() float64 {
	return b.PayrollExpenses +
		b.HealthInsurance +
		b.CommercialInsurance +
		b.RentExpense +
		b.Utilities +
		b.RepairsAndMaintenance +
		b.ChassisRental +
		b.EquipmentRental +
		b.AccountingServices +
		b.ComputerAndInternet +
		b.BankCharges +
		b.BusinessLicenses +
		b.Advertising +
		b.OtherExpenses
}

// PassThroughBreakdown tracks the five pass-through charge buckets that
// appear on both the income and the expense side of a statement.
type PassThroughBreakdown struct {
	Palletization    float64 `json:"palletization"`
	SSLDetention     float64 `json:"ssl_detention"`
	Unloading        float64 `json:"unloading"`
	Transload        float64 `json:"transload"`
	WarehouseStorage float64 `json:"warehouse_storage"`
}

// QuarterSummary is the parsed result of one quarterly accounting statement
// export. TotalIncome and TotalExpenses come from the statement's own
// declared total lines and are authoritative over the itemized breakdown.
type QuarterSummary struct {
	Quarter   string `json:"quarter" validate:"oneof=Q1 Q2 Q3 Q4"`
	Year      int    `json:"year"`
	DateRange string `json:"date_range"` // raw label, e.g. "January 1-March 31, 2023"

	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`

	Expenses ExpenseBreakdown `json:"expenses"`

	// Yard storage view: income plus the latest flat value seen per quarter
	// for the facility categories, kept apart from the accumulated breakdown.
	YardStorageIncome     float64 `json:"yard_storage_income"`
	RentExpense           float64 `json:"rent_expense"`
	Utilities             float64 `json:"utilities"`
	RepairsAndMaintenance float64 `json:"repairs_and_maintenance"`
	EquipmentRental       float64 `json:"equipment_rental"`

	PassThroughIncome   PassThroughBreakdown `json:"pass_through_income"`
	PassThroughExpenses PassThroughBreakdown `json:"pass_through_expenses"`
}

// Period returns the display label for the quarter, e.g. "Q1 2023".
func (q QuarterSummary) Period() string {
	return fmt.Sprintf("%s %d", q.Quarter, q.Year)
}
