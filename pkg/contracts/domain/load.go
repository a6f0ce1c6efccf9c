package domain

// LoadRecord represents one trucking job parsed from the per-load
// profitability export. Profit and ProfitMargin are carried as reported by
// the upstream export; the engine does not recompute them from the other
// fields because the export's own arithmetic is treated as authoritative.
type LoadRecord struct {
	LoadNumber      string   `json:"load_number" validate:"required"`
	ContainerNumber string   `json:"container_number,omitempty"`
	Customer        string   `json:"customer"`
	Date            string   `json:"date"` // raw M/d/yy text from the export
	Driver          string   `json:"driver,omitempty"`
	ChargesType     []string `json:"charges_type"`
	TotalCharges    float64  `json:"total_charges"`
	DriverPayTotal  float64  `json:"driver_pay_total"`
	ExpenseTotal    float64  `json:"expense_total"`
	Profit          float64  `json:"profit"`
	ProfitMargin    float64  `json:"profit_margin"`
	IsOTR           bool     `json:"is_otr"`
}
