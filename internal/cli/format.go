// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount the way the ledger displays money:
// two decimal places, comma decimal separator.
// e.g. 1234.5 -> "R$ 1234,50", -3 -> "R$ -3,00"
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// FormatAmountCell renders an editable amount field for a table cell.
// Blank stays blank; valid input is shown with the comma separator and
// no currency prefix; anything else passes through as typed.
func FormatAmountCell(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return s
	}
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
