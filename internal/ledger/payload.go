package ledger

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"grana/internal/api"
)

// Validation failures surfaced before any request is sent. The message
// text is shown to the user as-is.
var (
	ErrDueDayRequired    = errors.New("due day is required")
	ErrDueDayRange       = errors.New("due day must be a whole number between 1 and 31")
	ErrExpenseAmount     = errors.New("expense amount is required and must be greater than zero")
	ErrPaidAmount        = errors.New("paid amount must be a number or blank")
	ErrIncomeDescription = errors.New("income description is required")
	ErrIncomeAmount      = errors.New("income amount is required and must be greater than zero")
)

// Payload validates the row and builds its submission body. The status
// sent to the server is recomputed from the final amount pair, never
// copied from the row. Drafts are stamped with the cursor's month and
// year so the server files them under the window being viewed.
func (r ExpenseRow) Payload(cur MonthCursor) (api.ExpensePayload, error) {
	var p api.ExpensePayload

	due := strings.TrimSpace(r.DueDay)
	if due == "" {
		return p, ErrDueDayRequired
	}
	day, err := strconv.Atoi(due)
	if err != nil || day <= 0 || day > 31 {
		return p, ErrDueDayRange
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil || !amount.IsPositive() {
		return p, ErrExpenseAmount
	}

	// Blank paid means "no payment recorded" and travels as null.
	var paid *float64
	paidStr := strings.TrimSpace(r.AmountPaid)
	if paidStr != "" {
		d, err := decimal.NewFromString(paidStr)
		if err != nil {
			return p, ErrPaidAmount
		}
		f := d.InexactFloat64()
		paid = &f
	}

	p = api.ExpensePayload{
		DueDay:       day,
		Description:  r.Description,
		Amount:       amount.InexactFloat64(),
		AmountPaid:   paid,
		Installments: strings.TrimSpace(r.Installments),
		Status:       string(DetermineStatus(amount.String(), paidStr)),
	}
	if r.IsDraft() {
		p.Month = cur.APIMonth()
		p.Year = cur.Year
	}
	return p, nil
}

// Payload validates an income row and builds its submission body.
// Status is user-owned free text, sent trimmed and otherwise verbatim.
func (r IncomeRow) Payload(cur MonthCursor) (api.IncomePayload, error) {
	var p api.IncomePayload

	desc := strings.TrimSpace(r.Description)
	if desc == "" {
		return p, ErrIncomeDescription
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil || !amount.IsPositive() {
		return p, ErrIncomeAmount
	}

	p = api.IncomePayload{
		Description: desc,
		Amount:      amount.InexactFloat64(),
		Status:      strings.TrimSpace(r.Status),
	}
	if r.IsDraft() {
		p.Month = cur.APIMonth()
		p.Year = cur.Year
	}
	return p, nil
}
