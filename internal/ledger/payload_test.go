package ledger

import (
	"errors"
	"testing"
)

var testCursor = MonthCursor{Year: 2026, MonthIndex: 4}

func TestExpensePayload_ValidationOrder(t *testing.T) {
	tests := []struct {
		name string
		row  ExpenseRow
		want error
	}{
		{"missing due day", ExpenseRow{Amount: "100"}, ErrDueDayRequired},
		{"due day not a number", ExpenseRow{DueDay: "abc", Amount: "100"}, ErrDueDayRange},
		{"due day zero", ExpenseRow{DueDay: "0", Amount: "100"}, ErrDueDayRange},
		{"due day too large", ExpenseRow{DueDay: "32", Amount: "100"}, ErrDueDayRange},
		{"missing amount", ExpenseRow{DueDay: "5"}, ErrExpenseAmount},
		{"zero amount", ExpenseRow{DueDay: "5", Amount: "0"}, ErrExpenseAmount},
		{"negative amount", ExpenseRow{DueDay: "5", Amount: "-10"}, ErrExpenseAmount},
		{"garbage paid", ExpenseRow{DueDay: "5", Amount: "100", AmountPaid: "abc"}, ErrPaidAmount},
		// Due day is checked before the amount.
		{"both missing reports due day", ExpenseRow{}, ErrDueDayRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.row.Payload(testCursor)
			if !errors.Is(err, tt.want) {
				t.Errorf("Payload() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExpensePayload_Draft(t *testing.T) {
	row := ExpenseRow{
		LocalKey:     "abc-123",
		DueDay:       " 12 ",
		Description:  "INTERNET",
		Amount:       "99.90",
		AmountPaid:   "99.90",
		Installments: " 1/12 ",
	}

	p, err := row.Payload(testCursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DueDay != 12 {
		t.Errorf("DueDay = %d, want 12", p.DueDay)
	}
	if p.Amount != 99.9 {
		t.Errorf("Amount = %v, want 99.9", p.Amount)
	}
	if p.AmountPaid == nil || *p.AmountPaid != 99.9 {
		t.Errorf("AmountPaid = %v, want 99.9", p.AmountPaid)
	}
	if p.Installments != "1/12" {
		t.Errorf("Installments = %q, want trimmed %q", p.Installments, "1/12")
	}
	if p.Status != string(StatusPaid) {
		t.Errorf("Status = %q, want %q", p.Status, StatusPaid)
	}
	// Drafts are filed under the month being viewed.
	if p.Month != 5 || p.Year != 2026 {
		t.Errorf("Month/Year = %d/%d, want 5/2026", p.Month, p.Year)
	}
}

func TestExpensePayload_BlankPaidTravelsAsNull(t *testing.T) {
	row := ExpenseRow{ServerID: 7, DueDay: "5", Amount: "100"}

	p, err := row.Payload(testCursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AmountPaid != nil {
		t.Errorf("AmountPaid = %v, want nil", *p.AmountPaid)
	}
	if p.Status != string(StatusPending) {
		t.Errorf("Status = %q, want %q", p.Status, StatusPending)
	}
	// Persisted rows keep their original filing month.
	if p.Month != 0 || p.Year != 0 {
		t.Errorf("Month/Year = %d/%d, want both zero on update", p.Month, p.Year)
	}
}

func TestExpensePayload_StatusRecomputedNotCopied(t *testing.T) {
	// The row claims PAGO but only half is paid.
	row := ExpenseRow{DueDay: "5", Amount: "100", AmountPaid: "50", Status: StatusPaid}

	p, err := row.Payload(testCursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != string(StatusPending) {
		t.Errorf("Status = %q, want recomputed %q", p.Status, StatusPending)
	}
}

func TestIncomePayload_Validation(t *testing.T) {
	tests := []struct {
		name string
		row  IncomeRow
		want error
	}{
		{"missing description", IncomeRow{Amount: "100"}, ErrIncomeDescription},
		{"whitespace description", IncomeRow{Description: "  ", Amount: "100"}, ErrIncomeDescription},
		{"missing amount", IncomeRow{Description: "SALARY"}, ErrIncomeAmount},
		{"zero amount", IncomeRow{Description: "SALARY", Amount: "0"}, ErrIncomeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.row.Payload(testCursor)
			if !errors.Is(err, tt.want) {
				t.Errorf("Payload() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIncomePayload_Draft(t *testing.T) {
	row := IncomeRow{Description: "SALARY", Amount: "5000", Status: " recebido "}

	p, err := row.Payload(testCursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Description != "SALARY" || p.Amount != 5000 || p.Status != "recebido" {
		t.Errorf("payload = %+v", p)
	}
	if p.Month != 5 || p.Year != 2026 {
		t.Errorf("Month/Year = %d/%d, want 5/2026", p.Month, p.Year)
	}
}
