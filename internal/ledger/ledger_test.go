package ledger

import (
	"reflect"
	"testing"

	"grana/internal/api"

	"github.com/shopspring/decimal"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestBlank_FullCapacityDrafts(t *testing.T) {
	l := Blank(2026, 0)

	if len(l.Expenses) != ExpenseCapacity {
		t.Fatalf("len(Expenses) = %d, want %d", len(l.Expenses), ExpenseCapacity)
	}
	if len(l.Incomes) != IncomeCapacity {
		t.Fatalf("len(Incomes) = %d, want %d", len(l.Incomes), IncomeCapacity)
	}

	seen := map[string]bool{}
	for _, r := range l.Expenses {
		if !r.IsDraft() {
			t.Error("blank ledger contains a persisted expense row")
		}
		if r.LocalKey == "" || seen[r.LocalKey] {
			t.Errorf("expense local key %q empty or duplicated", r.LocalKey)
		}
		seen[r.LocalKey] = true
		if r.Status != StatusPending {
			t.Errorf("blank expense status = %s, want %s", r.Status, StatusPending)
		}
	}
}

func TestFromRecords_PadsToCapacity(t *testing.T) {
	expenses := []api.ExpenseRecord{
		{ID: 1, DueDay: i(5), Description: "RENT", Amount: f(1200), AmountPaid: f(1200), Installments: "UNICA"},
		{ID: 2, DueDay: i(10), Description: "POWER", Amount: f(150.75)},
	}
	incomes := []api.IncomeRecord{
		{ID: 9, Description: "SALARY", Amount: f(5000), Status: "RECEBIDO"},
	}

	l := FromRecords(2026, 2, expenses, incomes)

	if len(l.Expenses) != ExpenseCapacity {
		t.Fatalf("len(Expenses) = %d, want %d", len(l.Expenses), ExpenseCapacity)
	}
	if len(l.Incomes) != IncomeCapacity {
		t.Fatalf("len(Incomes) = %d, want %d", len(l.Incomes), IncomeCapacity)
	}

	if l.Expenses[0].ServerID != 1 || l.Expenses[1].ServerID != 2 {
		t.Error("persisted rows not placed at the head of the section")
	}
	for idx, r := range l.Expenses[2:] {
		if !r.IsDraft() {
			t.Fatalf("row %d past the records should be a draft", idx+2)
		}
	}
	if l.Incomes[0].ServerID != 9 {
		t.Errorf("Incomes[0].ServerID = %d, want 9", l.Incomes[0].ServerID)
	}
}

func TestFromRecords_NormalizesFields(t *testing.T) {
	l := FromRecords(2026, 0, []api.ExpenseRecord{
		{ID: 3, DueDay: i(7), Description: "GYM", Amount: f(89.9), AmountPaid: f(89.9), Status: "PENDENTE"},
		{ID: 4, Description: "DRAFTISH"},
	}, nil)

	got := l.Expenses[0]
	if got.LocalKey != "3" {
		t.Errorf("LocalKey = %q, want %q", got.LocalKey, "3")
	}
	if got.DueDay != "7" {
		t.Errorf("DueDay = %q, want %q", got.DueDay, "7")
	}
	if got.Amount != "89.9" || got.AmountPaid != "89.9" {
		t.Errorf("amounts = %q/%q, want 89.9/89.9", got.Amount, got.AmountPaid)
	}
	// The server said PENDENTE; the amounts say otherwise. Local
	// derivation wins.
	if got.Status != StatusPaid {
		t.Errorf("Status = %s, want %s", got.Status, StatusPaid)
	}

	// Null numerics become blank editable cells, not zeros.
	if l.Expenses[1].DueDay != "" || l.Expenses[1].Amount != "" || l.Expenses[1].AmountPaid != "" {
		t.Errorf("null fields should be blank, got %q/%q/%q",
			l.Expenses[1].DueDay, l.Expenses[1].Amount, l.Expenses[1].AmountPaid)
	}
}

func TestFromRecords_Idempotent(t *testing.T) {
	expenses := []api.ExpenseRecord{
		{ID: 1, DueDay: i(5), Description: "RENT", Amount: f(1200), AmountPaid: f(1200)},
		{ID: 2, DueDay: i(10), Description: "POWER", Amount: f(150.75)},
	}
	incomes := []api.IncomeRecord{
		{ID: 9, Description: "SALARY", Amount: f(5000), Status: "RECEBIDO"},
	}

	first := FromRecords(2026, 4, expenses, incomes)
	second := FromRecords(2026, 4, expenses, incomes)

	if !reflect.DeepEqual(first, second) {
		for idx := range first.Expenses {
			if first.Expenses[idx] != second.Expenses[idx] {
				t.Fatalf("two loads of the same month differ at expense %d:\n%+v\n%+v",
					idx, first.Expenses[idx], second.Expenses[idx])
			}
		}
		for idx := range first.Incomes {
			if first.Incomes[idx] != second.Incomes[idx] {
				t.Fatalf("two loads of the same month differ at income %d:\n%+v\n%+v",
					idx, first.Incomes[idx], second.Incomes[idx])
			}
		}
		t.Fatal("two loads of the same month differ")
	}
}

func TestFromRecords_IncomeStatusVerbatim(t *testing.T) {
	l := FromRecords(2026, 0, nil, []api.IncomeRecord{
		{ID: 1, Description: "FREELANCE", Amount: f(300), Status: "aguardando"},
	})
	if l.Incomes[0].Status != "aguardando" {
		t.Errorf("income status = %q, want it untouched", l.Incomes[0].Status)
	}
}

func TestFromRecords_TruncatesOverCapacity(t *testing.T) {
	expenses := make([]api.ExpenseRecord, ExpenseCapacity+5)
	for idx := range expenses {
		expenses[idx] = api.ExpenseRecord{ID: int64(idx + 1)}
	}

	l := FromRecords(2026, 0, expenses, nil)
	if len(l.Expenses) != ExpenseCapacity {
		t.Fatalf("len(Expenses) = %d, want %d", len(l.Expenses), ExpenseCapacity)
	}
	if l.Expenses[ExpenseCapacity-1].ServerID != int64(ExpenseCapacity) {
		t.Errorf("last row ServerID = %d, want %d",
			l.Expenses[ExpenseCapacity-1].ServerID, ExpenseCapacity)
	}
}

func TestSetExpenseField(t *testing.T) {
	l := Blank(2026, 0)
	key := l.Expenses[0].LocalKey

	if !l.SetExpenseField(key, FieldDescription, "internet") {
		t.Fatal("SetExpenseField returned false for a live key")
	}
	if got := l.Expenses[0].Description; got != "INTERNET" {
		t.Errorf("Description = %q, want %q", got, "INTERNET")
	}

	l.SetExpenseField(key, FieldAmount, " 120.50 ")
	if got := l.Expenses[0].Amount; got != "120.5" {
		t.Errorf("Amount = %q, want %q", got, "120.5")
	}
	if l.Expenses[0].Status != StatusPending {
		t.Errorf("Status = %s, want %s", l.Expenses[0].Status, StatusPending)
	}

	l.SetExpenseField(key, FieldAmountPaid, "120.50")
	if l.Expenses[0].Status != StatusPaid {
		t.Errorf("Status after matching paid = %s, want %s", l.Expenses[0].Status, StatusPaid)
	}

	// Garbage amounts drop to blank and flip the status back.
	l.SetExpenseField(key, FieldAmount, "12x")
	if got := l.Expenses[0].Amount; got != "" {
		t.Errorf("Amount after garbage = %q, want blank", got)
	}
	if l.Expenses[0].Status != StatusPending {
		t.Errorf("Status after garbage = %s, want %s", l.Expenses[0].Status, StatusPending)
	}

	// Status on expenses is derived; a direct write is a no-op.
	l.SetExpenseField(key, FieldStatus, "PAGO")
	if l.Expenses[0].Status != StatusPending {
		t.Error("expense status must not be directly settable")
	}

	if l.SetExpenseField("no-such-key", FieldAmount, "1") {
		t.Error("SetExpenseField returned true for an unknown key")
	}
}

func TestSetIncomeField(t *testing.T) {
	l := Blank(2026, 0)
	key := l.Incomes[0].LocalKey

	l.SetIncomeField(key, FieldDescription, "salary")
	if got := l.Incomes[0].Description; got != "SALARY" {
		t.Errorf("Description = %q, want %q", got, "SALARY")
	}

	// Income status is free text, stored as typed.
	l.SetIncomeField(key, FieldStatus, "recebido")
	if got := l.Incomes[0].Status; got != "recebido" {
		t.Errorf("Status = %q, want %q", got, "recebido")
	}
}

func TestResetExpense_PreservesLocalKey(t *testing.T) {
	l := Blank(2026, 0)
	key := l.Expenses[1].LocalKey
	sibling := l.Expenses[0].LocalKey

	l.SetExpenseField(key, FieldDescription, "market")
	l.SetExpenseField(key, FieldAmount, "300")
	l.SetExpenseField(sibling, FieldDescription, "rent")

	if !l.ResetExpense(key) {
		t.Fatal("ResetExpense returned false for a live key")
	}
	got := l.Expenses[1]
	if got.LocalKey != key {
		t.Errorf("LocalKey changed on reset: %q -> %q", key, got.LocalKey)
	}
	if got.Description != "" || got.Amount != "" || got.Status != StatusPending {
		t.Errorf("row not blank after reset: %+v", got)
	}
	if l.Expenses[0].Description != "RENT" {
		t.Error("reset touched a sibling row")
	}
}

func TestReadyToSave(t *testing.T) {
	l := Blank(2026, 0)
	key := l.Expenses[0].LocalKey

	if l.Expenses[0].ReadyToSave() {
		t.Error("blank draft should not be ready to save")
	}

	l.SetExpenseField(key, FieldDescription, "water")
	if l.Expenses[0].ReadyToSave() {
		t.Error("draft with no amount should not be ready to save")
	}

	l.SetExpenseField(key, FieldAmount, "45")
	if !l.Expenses[0].ReadyToSave() {
		t.Error("draft with description and amount should be ready to save")
	}

	persisted := ExpenseRow{ServerID: 12, LocalKey: "12"}
	if !persisted.ReadyToSave() {
		t.Error("persisted rows are always ready to save")
	}
}

func TestTotals(t *testing.T) {
	l := FromRecords(2026, 0,
		[]api.ExpenseRecord{
			{ID: 1, Amount: f(100)},
			{ID: 2},
			{ID: 3, Amount: f(50.5)},
		},
		[]api.IncomeRecord{
			{ID: 4, Amount: f(500)},
			{ID: 5},
		})

	got := l.Totals()
	if want := decimal.NewFromFloat(150.5); !got.Expense.Equal(want) {
		t.Errorf("Expense total = %s, want %s", got.Expense, want)
	}
	if want := decimal.NewFromInt(500); !got.Income.Equal(want) {
		t.Errorf("Income total = %s, want %s", got.Income, want)
	}
	if want := decimal.NewFromFloat(349.5); !got.Balance.Equal(want) {
		t.Errorf("Balance = %s, want %s", got.Balance, want)
	}
}

func TestTotals_BlankLedgerIsZero(t *testing.T) {
	got := Blank(2026, 0).Totals()
	if !got.Income.IsZero() || !got.Expense.IsZero() || !got.Balance.IsZero() {
		t.Errorf("blank ledger totals = %s/%s/%s, want all zero",
			got.Income, got.Expense, got.Balance)
	}
}
