package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Status is the derived payment state of an expense row. The values are
// the wire strings the remote API stores.
type Status string

const (
	StatusPending Status = "PENDENTE"
	StatusPaid    Status = "PAGO"
)

// DetermineStatus derives an expense row's status from its amount and
// paid amount, both in their editable string form. A row is PAGO only
// when the amount is a positive number and the paid amount equals it
// exactly; every other combination (blank, unparseable, zero, negative,
// partial payment, overpayment) is PENDENTE.
func DetermineStatus(amount, paid string) Status {
	val, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || !val.IsPositive() {
		return StatusPending
	}
	pag, err := decimal.NewFromString(strings.TrimSpace(paid))
	if err != nil || pag.IsNegative() {
		return StatusPending
	}
	if val.Equal(pag) {
		return StatusPaid
	}
	return StatusPending
}
