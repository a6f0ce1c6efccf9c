package dataprocessing

import (
	"strconv"
	"strings"
)

// amountReplacer strips the decorations QuickBooks-style exports wrap
// around numbers: quotes, currency symbols and thousands separators.
var amountReplacer = strings.NewReplacer("\"", "", "$", "", ",", "")

// ParseAmount converts a free-text currency string to a float64. Malformed
// cells are common in hand-edited exports, so any input that does not parse
// degrades to 0 rather than aborting the batch. A minus sign surviving the
// symbol strip yields a negative amount.
func ParseAmount(value string) float64 {
	cleaned := strings.TrimSpace(amountReplacer.Replace(value))
	if cleaned == "" {
		return 0
	}
	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return num
}

// ParsePercent converts a free-text percentage string (with or without a
// trailing %) to a float64, with the same zero-on-failure contract as
// ParseAmount.
func ParsePercent(value string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, "%", ""))
	if cleaned == "" {
		return 0
	}
	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return num
}
