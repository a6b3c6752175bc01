// Package ledger implements the in-memory view-model for one month of
// the budget grid: normalized rows loaded from the remote API, padded to
// a fixed display capacity with blank drafts, mutated by field edits,
// and summed into totals on demand. Everything here is pure state
// manipulation; network traffic belongs to the api package and the
// screens that drive it.
package ledger

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"grana/internal/api"
)

// Section capacities. Server rows beyond capacity are dropped.
const (
	ExpenseCapacity = 50
	IncomeCapacity  = 20
)

// Section identifies which grid a row belongs to.
type Section int

const (
	SectionExpenses Section = iota
	SectionIncomes
)

func (s Section) String() string {
	if s == SectionIncomes {
		return "income"
	}
	return "expense"
}

// Field names an editable cell within a row.
type Field string

const (
	FieldDueDay       Field = "dueDay"
	FieldDescription  Field = "description"
	FieldCard         Field = "card"
	FieldAmount       Field = "amount"
	FieldAmountPaid   Field = "amountPaid"
	FieldInstallments Field = "installments"
	FieldStatus       Field = "status"
)

// ExpenseRow is one editable line of the expense grid. All editable
// fields are kept in string form so a half-filled row renders exactly
// as typed. ServerID is zero until the row has been persisted; LocalKey
// is assigned once and never changes, and is the only stable handle for
// a row that has no server identity yet.
type ExpenseRow struct {
	ServerID     int64
	LocalKey     string
	DueDay       string
	Description  string
	Card         string
	Amount       string
	AmountPaid   string
	Installments string
	Status       Status
}

// IsDraft reports whether the row has never been persisted.
func (r ExpenseRow) IsDraft() bool { return r.ServerID == 0 }

// ReadyToSave reports whether a blur should attempt a save. Draft rows
// with no description or no positive amount are still being typed into
// and must not create empty records.
func (r ExpenseRow) ReadyToSave() bool {
	if !r.IsDraft() {
		return true
	}
	return strings.TrimSpace(r.Description) != "" && !amountOrZero(r.Amount).IsZero()
}

// IncomeRow is one editable line of the income grid. Status is free
// text owned by the user, never derived.
type IncomeRow struct {
	ServerID    int64
	LocalKey    string
	Description string
	Amount      string
	Status      string
}

func (r IncomeRow) IsDraft() bool { return r.ServerID == 0 }

func (r IncomeRow) ReadyToSave() bool {
	if !r.IsDraft() {
		return true
	}
	return strings.TrimSpace(r.Description) != "" && !amountOrZero(r.Amount).IsZero()
}

// Draft rows are keyed by their slot, so loading the same month twice
// yields an identical ledger. Server ids are numeric, so the prefix
// cannot collide with a persisted row's key.
func draftExpenseKey(slot int) string { return "draft-expense-" + strconv.Itoa(slot) }

func draftIncomeKey(slot int) string { return "draft-income-" + strconv.Itoa(slot) }

func blankExpense(localKey string) ExpenseRow {
	return ExpenseRow{
		LocalKey: localKey,
		Status:   DetermineStatus("", ""),
	}
}

func blankIncome(localKey string) IncomeRow {
	return IncomeRow{LocalKey: localKey}
}

// Ledger holds the grid state for one (year, month) window. Exactly one
// instance is live per view; month navigation replaces it wholesale via
// a fresh fetch.
type Ledger struct {
	Year       int
	MonthIndex int // 0-based, 0=January
	Expenses   []ExpenseRow
	Incomes    []IncomeRow
}

// Blank returns an all-draft ledger at full capacity. Used on first
// render and to reset the view after a failed load.
func Blank(year, monthIndex int) *Ledger {
	l := &Ledger{
		Year:       year,
		MonthIndex: monthIndex,
		Expenses:   make([]ExpenseRow, ExpenseCapacity),
		Incomes:    make([]IncomeRow, IncomeCapacity),
	}
	for i := range l.Expenses {
		l.Expenses[i] = blankExpense(draftExpenseKey(i))
	}
	for i := range l.Incomes {
		l.Incomes[i] = blankIncome(draftIncomeKey(i))
	}
	return l
}

// FromRecords normalizes the server's month into a full-capacity ledger:
// numeric fields become editable strings (empty for null), LocalKey is
// the server id, expense status is recomputed locally, income status is
// taken verbatim, and the remainder of each section is filled with
// blank drafts.
func FromRecords(year, monthIndex int, expenses []api.ExpenseRecord, incomes []api.IncomeRecord) *Ledger {
	l := Blank(year, monthIndex)

	if len(expenses) > ExpenseCapacity {
		expenses = expenses[:ExpenseCapacity]
	}
	for i, rec := range expenses {
		amount := floatField(rec.Amount)
		paid := floatField(rec.AmountPaid)
		l.Expenses[i] = ExpenseRow{
			ServerID:     rec.ID,
			LocalKey:     serverKey(rec.ID),
			DueDay:       intField(rec.DueDay),
			Description:  rec.Description,
			Card:         "",
			Amount:       amount,
			AmountPaid:   paid,
			Installments: rec.Installments,
			Status:       DetermineStatus(amount, paid),
		}
	}

	if len(incomes) > IncomeCapacity {
		incomes = incomes[:IncomeCapacity]
	}
	for i, rec := range incomes {
		l.Incomes[i] = IncomeRow{
			ServerID:    rec.ID,
			LocalKey:    serverKey(rec.ID),
			Description: rec.Description,
			Amount:      floatField(rec.Amount),
			Status:      rec.Status,
		}
	}

	return l
}

// Expense returns the expense row with the given local key, or nil.
func (l *Ledger) Expense(localKey string) *ExpenseRow {
	for i := range l.Expenses {
		if l.Expenses[i].LocalKey == localKey {
			return &l.Expenses[i]
		}
	}
	return nil
}

// Income returns the income row with the given local key, or nil.
func (l *Ledger) Income(localKey string) *IncomeRow {
	for i := range l.Incomes {
		if l.Incomes[i].LocalKey == localKey {
			return &l.Incomes[i]
		}
	}
	return nil
}

// SetExpenseField applies a field edit to the row with the given local
// key. Descriptions are upper-cased, amounts are normalized to a
// decimal string (or emptied when unparseable), everything else is
// stored verbatim. Editing either amount recomputes the derived status.
// Returns false when no row matches.
func (l *Ledger) SetExpenseField(localKey string, field Field, raw string) bool {
	row := l.Expense(localKey)
	if row == nil {
		return false
	}

	switch field {
	case FieldDueDay:
		row.DueDay = raw
	case FieldDescription:
		row.Description = strings.ToUpper(raw)
	case FieldCard:
		row.Card = raw
	case FieldAmount:
		row.Amount = normalizeAmount(raw)
	case FieldAmountPaid:
		row.AmountPaid = normalizeAmount(raw)
	case FieldInstallments:
		row.Installments = raw
	case FieldStatus:
		// Derived; never user-settable on expenses.
		return true
	default:
		return false
	}

	if field == FieldAmount || field == FieldAmountPaid {
		row.Status = DetermineStatus(row.Amount, row.AmountPaid)
	}
	return true
}

// SetIncomeField applies a field edit to an income row. Status is free
// text here and stored as typed.
func (l *Ledger) SetIncomeField(localKey string, field Field, raw string) bool {
	row := l.Income(localKey)
	if row == nil {
		return false
	}

	switch field {
	case FieldDescription:
		row.Description = strings.ToUpper(raw)
	case FieldAmount:
		row.Amount = normalizeAmount(raw)
	case FieldStatus:
		row.Status = raw
	default:
		return false
	}
	return true
}

// ResetExpense returns the row to its blank template, preserving its
// local key so later edits target the same slot. This is the whole of
// deleting a draft row; persisted rows go through the API instead.
func (l *Ledger) ResetExpense(localKey string) bool {
	row := l.Expense(localKey)
	if row == nil {
		return false
	}
	*row = blankExpense(localKey)
	return true
}

// ResetIncome is ResetExpense for the income section.
func (l *Ledger) ResetIncome(localKey string) bool {
	row := l.Income(localKey)
	if row == nil {
		return false
	}
	*row = blankIncome(localKey)
	return true
}

// Totals is the derived summary of the ledger. Always recomputed from
// current row state; blank or unparseable amounts count as zero.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Totals sums the grids. Cheap for 70 rows, so no caching.
func (l *Ledger) Totals() Totals {
	income := decimal.Zero
	for _, r := range l.Incomes {
		income = income.Add(amountOrZero(r.Amount))
	}
	expense := decimal.Zero
	for _, r := range l.Expenses {
		expense = expense.Add(amountOrZero(r.Amount))
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// normalizeAmount parses a raw amount edit: blank stays blank, invalid
// input is dropped to blank, valid input is kept in canonical decimal
// form.
func normalizeAmount(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return ""
	}
	return d.String()
}

func amountOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return decimal.NewFromFloat(*v).String()
}

func intField(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func serverKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
