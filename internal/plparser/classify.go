package plparser

import (
	"strings"

	"aimdash/pkg/contracts/domain"
)

// accumMode controls how a classified amount lands in its category.
type accumMode int

const (
	// modeAccumulate adds the amount to the category.
	modeAccumulate accumMode = iota
	// modeReplace overwrites the category with the amount. Used for
	// "Total for X" subtotal lines, which are authoritative over itemized
	// lines regardless of whether the subtotal appears before or after them.
	modeReplace
)

// expenseRule routes one expense label to a category field. Rules are
// evaluated top to bottom; the first match wins.
type expenseRule struct {
	match  func(label string) bool
	target func(b *domain.ExpenseBreakdown) *float64
	mode   accumMode
}

func exact(labels ...string) func(string) bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return func(label string) bool { return set[label] }
}

func prefix(p string) func(string) bool {
	return func(label string) bool { return strings.HasPrefix(label, p) }
}

// expenseRules is the statement classification table. Ordering is load
// bearing: subtotal (replace) rules must be tried before their itemized
// siblings so that "Total for Insurance" never falls into the itemized
// accumulation, and itemized lines processed after a subtotal must not win
// back the category.
var expenseRules = []expenseRule{
	// Driver and operations costs; "DRAYAGE -CA EXPENSE" is a drayage alias.
	{exact("Base Price", "Drayage", "DRAYAGE -CA EXPENSE"), func(b *domain.ExpenseBreakdown) *float64 { return &b.DriverPay }, modeAccumulate},
	{exact("Fuel"), func(b *domain.ExpenseBreakdown) *float64 { return &b.Fuel }, modeAccumulate},

	// Pass-through expense items
	{exact("Transloading", "WAREHOUSE STORAGE", "A-B PALLET", "Shrink Wrap", "PALLETIZATION"),
		func(b *domain.ExpenseBreakdown) *float64 { return &b.PassThrough }, modeAccumulate},

	// Payroll and benefits
	{exact("Payroll Expenses"), func(b *domain.ExpenseBreakdown) *float64 { return &b.PayrollExpenses }, modeAccumulate},
	{exact("HRA Employee Benefit"), func(b *domain.ExpenseBreakdown) *float64 { return &b.HealthInsurance }, modeAccumulate},
	{prefix("Total for Health Insurance"), func(b *domain.ExpenseBreakdown) *float64 { return &b.HealthInsurance }, modeReplace},

	// Insurance: the declared total wins over itemized lines
	{prefix("Total for Insurance"), func(b *domain.ExpenseBreakdown) *float64 { return &b.CommercialInsurance }, modeReplace},
	{exact("Insurance - Commercial", "Driver Insurance Deduction"),
		func(b *domain.ExpenseBreakdown) *float64 { return &b.CommercialInsurance }, modeAccumulate},

	// Facility and equipment
	{exact("Rent Expense"), func(b *domain.ExpenseBreakdown) *float64 { return &b.RentExpense }, modeAccumulate},
	{exact("Utilities"), func(b *domain.ExpenseBreakdown) *float64 { return &b.Utilities }, modeAccumulate},
	{exact("Repairs and Maintenance"), func(b *domain.ExpenseBreakdown) *float64 { return &b.RepairsAndMaintenance }, modeAccumulate},
	{prefix("Total for Chassis Rental"), func(b *domain.ExpenseBreakdown) *float64 { return &b.ChassisRental }, modeReplace},
	{exact("Chassis Rental", "Repairs - Chassis"), func(b *domain.ExpenseBreakdown) *float64 { return &b.ChassisRental }, modeAccumulate},
	{exact("Equipment Rental Expense"), func(b *domain.ExpenseBreakdown) *float64 { return &b.EquipmentRental }, modeAccumulate},

	// Administrative
	{exact("ACCOUNTING SERVICES EXPENSE", "CPA Services"), func(b *domain.ExpenseBreakdown) *float64 { return &b.AccountingServices }, modeAccumulate},
	{exact("Computer and Internet Expenses"), func(b *domain.ExpenseBreakdown) *float64 { return &b.ComputerAndInternet }, modeAccumulate},
	{exact("Bank Service Charges"), func(b *domain.ExpenseBreakdown) *float64 { return &b.BankCharges }, modeAccumulate},
	{exact("Business Licenses and Permits"), func(b *domain.ExpenseBreakdown) *float64 { return &b.BusinessLicenses }, modeAccumulate},
	{exact("Advertising"), func(b *domain.ExpenseBreakdown) *float64 { return &b.Advertising }, modeAccumulate},
}

// replacedCategories tracks which replace-capable fields have already seen
// their authoritative subtotal within one statement, so an itemized line
// appearing after the subtotal cannot re-accumulate on top of it.
type replacedCategories map[*float64]bool

// classifyExpense routes one expense row into the breakdown. Rows that match
// no rule and carry a non-zero amount fall into OtherExpenses unless they
// are a "Total for" subtotal of an unmodeled group.
func classifyExpense(b *domain.ExpenseBreakdown, replaced replacedCategories, label string, amount float64) {
	for _, rule := range expenseRules {
		if !rule.match(label) {
			continue
		}
		field := rule.target(b)
		switch rule.mode {
		case modeReplace:
			*field = amount
			replaced[field] = true
		case modeAccumulate:
			if !replaced[field] {
				*field += amount
			}
		}
		return
	}
	if amount != 0 && !strings.HasPrefix(label, "Total for") {
		b.OtherExpenses += amount
	}
}

// passThroughTarget maps a label to its bucket in a pass-through breakdown,
// or nil. The income and expense sides use different label sets.
type passThroughTarget func(p *domain.PassThroughBreakdown) *float64

var passThroughIncomeLabels = map[string]passThroughTarget{
	"PALLETIZATION":            func(p *domain.PassThroughBreakdown) *float64 { return &p.Palletization },
	"SSL DETENTION":            func(p *domain.PassThroughBreakdown) *float64 { return &p.SSLDetention },
	"UNLOADING 1":              func(p *domain.PassThroughBreakdown) *float64 { return &p.Unloading },
	"Transload":                func(p *domain.PassThroughBreakdown) *float64 { return &p.Transload },
	"WAREHOUSE STORAGE INCOME": func(p *domain.PassThroughBreakdown) *float64 { return &p.WarehouseStorage },
}

var passThroughExpenseLabels = map[string]passThroughTarget{
	"A-B PALLET":        func(p *domain.PassThroughBreakdown) *float64 { return &p.Palletization },
	"SSL DETENTION":     func(p *domain.PassThroughBreakdown) *float64 { return &p.SSLDetention },
	"SSL Detention":     func(p *domain.PassThroughBreakdown) *float64 { return &p.SSLDetention },
	"UNLOADING EXPENSE": func(p *domain.PassThroughBreakdown) *float64 { return &p.Unloading },
	"Transloading":      func(p *domain.PassThroughBreakdown) *float64 { return &p.Transload },
	"WAREHOUSE STORAGE": func(p *domain.PassThroughBreakdown) *float64 { return &p.WarehouseStorage },
}

// yardStorageIncomeLabels are the income lines credited to the yard-storage
// side business.
var yardStorageIncomeLabels = map[string]bool{
	"AIM YARD STORAGE 1": true,
	"YARD STORAGE 1":     true,
}
