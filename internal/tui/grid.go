package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"grana/internal/cli"
	"grana/internal/ledger"
	"grana/internal/tui/components"
	"grana/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column layouts per section. The description column flexes; the rest
// are fixed. Widths include no padding; the renderer adds a space gap.
type gridColumn struct {
	title    string
	width    int // 0 = flex
	field    ledger.Field
	editable bool
	amount   bool // render with decimal comma
}

var expenseColumns = []gridColumn{
	{title: "Day", width: 5, field: ledger.FieldDueDay, editable: true},
	{title: "Description", width: 0, field: ledger.FieldDescription, editable: true},
	{title: "Card", width: 10, field: ledger.FieldCard, editable: true},
	{title: "Amount", width: 12, field: ledger.FieldAmount, editable: true, amount: true},
	{title: "Paid", width: 12, field: ledger.FieldAmountPaid, editable: true, amount: true},
	{title: "Inst.", width: 7, field: ledger.FieldInstallments, editable: true},
	{title: "Status", width: 10, field: ledger.FieldStatus},
}

var incomeColumns = []gridColumn{
	{title: "Description", width: 0, field: ledger.FieldDescription, editable: true},
	{title: "Amount", width: 14, field: ledger.FieldAmount, editable: true, amount: true},
	{title: "Status", width: 12, field: ledger.FieldStatus, editable: true},
}

// gridState is the cursor over the two editable grids. Row and column
// indices always refer to the active section.
type gridState struct {
	section ledger.Section
	row     int
	col     int
	offset  int

	editing bool
	input   textinput.Model
}

func (g *gridState) reset() {
	g.section = ledger.SectionExpenses
	g.row = 0
	g.col = 0
	g.offset = 0
	g.editing = false
}

func (g *gridState) columns() []gridColumn {
	if g.section == ledger.SectionIncomes {
		return incomeColumns
	}
	return expenseColumns
}

func (g *gridState) rowCount() int {
	if g.section == ledger.SectionIncomes {
		return ledger.IncomeCapacity
	}
	return ledger.ExpenseCapacity
}

// clampTo keeps the cursor valid after the ledger is replaced.
func (g *gridState) clampTo(l *ledger.Ledger) {
	if n := g.rowCount(); g.row >= n {
		g.row = n - 1
	}
	if cols := g.columns(); g.col >= len(cols) {
		g.col = len(cols) - 1
	}
	if g.offset > g.row {
		g.offset = g.row
	}
	g.editing = false
}

func (g *gridState) toggleSection() {
	if g.section == ledger.SectionExpenses {
		g.section = ledger.SectionIncomes
	} else {
		g.section = ledger.SectionExpenses
	}
	g.row = 0
	g.col = 0
	g.offset = 0
}

// localKeyAt returns the stable handle of the cursor's row.
func (a App) localKeyAt() string {
	if a.grid.section == ledger.SectionIncomes {
		return a.led.Incomes[a.grid.row].LocalKey
	}
	return a.led.Expenses[a.grid.row].LocalKey
}

func (a App) updateLedgerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			a.showHelp = false
		}
		return a, nil
	}

	if a.grid.editing {
		return a.updateCellEdit(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
		return a, nil
	case "L":
		return a.logout()
	case "r":
		cmd := a.reload()
		return a, cmd
	case "[", "H":
		cmd := a.navigate(a.cursor.Prev())
		return a, cmd
	case "]", "J":
		cmd := a.navigate(a.cursor.Next())
		return a, cmd
	case "tab":
		a.grid.toggleSection()
		return a, nil
	case "up", "k":
		if a.grid.row > 0 {
			a.grid.row--
			if a.grid.row < a.grid.offset {
				a.grid.offset = a.grid.row
			}
		}
		return a, nil
	case "down", "j":
		if a.grid.row < a.grid.rowCount()-1 {
			a.grid.row++
			if vis := a.visibleRows(); a.grid.row >= a.grid.offset+vis {
				a.grid.offset = a.grid.row - vis + 1
			}
		}
		return a, nil
	case "left", "h":
		if a.grid.col > 0 {
			a.grid.col--
		}
		return a, nil
	case "right", "l":
		if a.grid.col < len(a.grid.columns())-1 {
			a.grid.col++
		}
		return a, nil
	case "g":
		a.grid.row = 0
		a.grid.offset = 0
		return a, nil
	case "G":
		a.grid.row = a.grid.rowCount() - 1
		if vis := a.visibleRows(); a.grid.row >= a.grid.offset+vis {
			a.grid.offset = a.grid.row - vis + 1
		}
		return a, nil
	case "d", "delete":
		return a.deleteCurrentRow()
	case "enter", "i":
		return a.startCellEdit()
	case "esc":
		a.errMsg = ""
		return a, nil
	}
	return a, nil
}

// startCellEdit opens an inline input over the cursor's cell. The
// expense status cell is derived, never typed into.
func (a App) startCellEdit() (tea.Model, tea.Cmd) {
	if a.loading {
		return a, nil
	}
	col := a.grid.columns()[a.grid.col]
	if !col.editable {
		return a, nil
	}
	if a.busy[a.localKeyAt()] {
		// A write for this row is still in flight.
		return a, nil
	}

	in := textinput.New()
	in.CharLimit = 64
	in.Prompt = ""
	in.SetValue(a.cellValue(a.grid.row, a.grid.col))
	in.CursorEnd()
	in.Focus()
	a.grid.input = in
	a.grid.editing = true
	return a, in.Cursor.BlinkCmd()
}

// updateCellEdit handles keys while a cell input is open. Enter commits
// the value and blurs the cell, which is what triggers a save attempt.
func (a App) updateCellEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.grid.editing = false
		return a, nil
	case "enter":
		a.grid.editing = false
		return a.commitCell(a.grid.input.Value())
	}
	var cmd tea.Cmd
	a.grid.input, cmd = a.grid.input.Update(msg)
	return a, cmd
}

// commitCell writes the edited value into the row and, when the row is
// worth persisting, fires the save.
func (a App) commitCell(raw string) (tea.Model, tea.Cmd) {
	key := a.localKeyAt()
	field := a.grid.columns()[a.grid.col].field

	if a.grid.section == ledger.SectionIncomes {
		a.led.SetIncomeField(key, field, raw)
		row := a.led.Income(key)
		if row == nil || !row.ReadyToSave() {
			return a, nil
		}
		return a.saveIncome(*row)
	}

	a.led.SetExpenseField(key, field, raw)
	row := a.led.Expense(key)
	if row == nil || !row.ReadyToSave() {
		return a, nil
	}
	return a.saveExpense(*row)
}

// saveExpense validates locally first; only a valid row costs a network
// round trip.
func (a App) saveExpense(row ledger.ExpenseRow) (tea.Model, tea.Cmd) {
	payload, err := row.Payload(a.cursor)
	if err != nil {
		a.errMsg = saveFailureMessage(ledger.SectionExpenses, err)
		return a, nil
	}
	a.errMsg = ""
	a.busy[row.LocalKey] = true

	client := a.client
	userID := a.sess.UserID
	generation := a.generation
	key := row.LocalKey
	serverID := row.ServerID
	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		if serverID == 0 {
			err = client.CreateExpense(ctx, userID, payload)
		} else {
			err = client.UpdateExpense(ctx, userID, serverID, payload)
		}
		return rowSavedMsg{generation: generation, section: ledger.SectionExpenses, localKey: key, err: err}
	}
}

func (a App) saveIncome(row ledger.IncomeRow) (tea.Model, tea.Cmd) {
	payload, err := row.Payload(a.cursor)
	if err != nil {
		a.errMsg = saveFailureMessage(ledger.SectionIncomes, err)
		return a, nil
	}
	a.errMsg = ""
	a.busy[row.LocalKey] = true

	client := a.client
	userID := a.sess.UserID
	generation := a.generation
	key := row.LocalKey
	serverID := row.ServerID
	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		if serverID == 0 {
			err = client.CreateIncome(ctx, userID, payload)
		} else {
			err = client.UpdateIncome(ctx, userID, serverID, payload)
		}
		return rowSavedMsg{generation: generation, section: ledger.SectionIncomes, localKey: key, err: err}
	}
}

// deleteCurrentRow wipes a draft locally; a persisted row goes through
// the API and the month is refetched on success.
func (a App) deleteCurrentRow() (tea.Model, tea.Cmd) {
	if a.loading {
		return a, nil
	}
	key := a.localKeyAt()
	if a.busy[key] {
		return a, nil
	}

	var serverID int64
	if a.grid.section == ledger.SectionIncomes {
		row := a.led.Income(key)
		if row == nil {
			return a, nil
		}
		serverID = row.ServerID
		if serverID == 0 {
			a.led.ResetIncome(key)
			return a, nil
		}
	} else {
		row := a.led.Expense(key)
		if row == nil {
			return a, nil
		}
		serverID = row.ServerID
		if serverID == 0 {
			a.led.ResetExpense(key)
			return a, nil
		}
	}

	a.errMsg = ""
	a.busy[key] = true
	client := a.client
	userID := a.sess.UserID
	generation := a.generation
	section := a.grid.section
	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		if section == ledger.SectionIncomes {
			err = client.DeleteIncome(ctx, userID, serverID)
		} else {
			err = client.DeleteExpense(ctx, userID, serverID)
		}
		return rowDeletedMsg{generation: generation, section: section, localKey: key, err: err}
	}
}

func (a App) cellValue(rowIdx, colIdx int) string {
	col := a.grid.columns()[colIdx]
	if a.grid.section == ledger.SectionIncomes {
		row := a.led.Incomes[rowIdx]
		switch col.field {
		case ledger.FieldDescription:
			return row.Description
		case ledger.FieldAmount:
			return row.Amount
		default:
			return row.Status
		}
	}

	row := a.led.Expenses[rowIdx]
	switch col.field {
	case ledger.FieldDueDay:
		return row.DueDay
	case ledger.FieldDescription:
		return row.Description
	case ledger.FieldCard:
		return row.Card
	case ledger.FieldAmount:
		return row.Amount
	case ledger.FieldAmountPaid:
		return row.AmountPaid
	case ledger.FieldInstallments:
		return row.Installments
	default:
		return string(row.Status)
	}
}

// visibleRows is how many grid lines fit under the fixed chrome
// (header, cards, section bar, card frame, status bar).
func (a App) visibleRows() int {
	rows := a.height - 14
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (a App) viewLedger() string {
	t := theme.Active
	cw := a.contentWidth()

	var b strings.Builder
	b.WriteString(components.RenderHeaderBar(cw, a.cursor.Label()))
	b.WriteString("\n")

	totals := a.led.Totals()
	balanceColor := t.Green
	if totals.Balance.IsNegative() {
		balanceColor = t.Red
	}
	cards := []components.SummaryCard{
		{Label: "Income", Value: cli.FormatBRL(totals.Income), Color: t.Green},
		{Label: "Expenses", Value: cli.FormatBRL(totals.Expense), Color: t.Red},
		{Label: "Balance", Value: cli.FormatBRL(totals.Balance), Color: balanceColor},
	}
	b.WriteString(components.SummaryCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.RenderSectionBar(int(a.grid.section)))
	b.WriteString("\n")

	title := "Expenses"
	if a.grid.section == ledger.SectionIncomes {
		title = "Income"
	}
	if a.loading {
		body := "\n  " + a.spinner.View() + " loading " + a.cursor.Label() + "…\n"
		b.WriteString(components.ContentCard(title, body, cw))
	} else {
		b.WriteString(components.ContentCard(title, a.renderGrid(components.CardInnerWidth(cw)), cw))
	}
	b.WriteString("\n")

	if a.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(t.Red).Width(cw).Padding(0, 1)
		b.WriteString(errStyle.Render(a.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(components.RenderStatusBar(cw, a.sess.Name, len(a.busy)))
	return b.String()
}

func (a App) renderGrid(width int) string {
	t := theme.Active
	cols := a.grid.columns()

	// Distribute widths: fixed columns keep theirs, flex takes the rest.
	gaps := len(cols) - 1
	flexIdx := -1
	used := 0
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = c.width
		if c.width == 0 {
			flexIdx = i
		} else {
			used += c.width
		}
	}
	// The leading space on every line counts against the width too.
	if flexIdx >= 0 {
		widths[flexIdx] = width - used - gaps - 1
		if widths[flexIdx] < 10 {
			widths[flexIdx] = 10
		}
	}

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	cellStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true)
	paidStyle := lipgloss.NewStyle().Foreground(t.Green)
	pendingStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var b strings.Builder
	head := make([]string, len(cols))
	for i, c := range cols {
		head[i] = headStyle.Render(pad(c.title, widths[i]))
	}
	b.WriteString(" " + strings.Join(head, " ") + "\n")

	visible := a.visibleRows()
	end := a.grid.offset + visible
	if n := a.grid.rowCount(); end > n {
		end = n
	}
	for r := a.grid.offset; r < end; r++ {
		line := make([]string, len(cols))
		rowBusy := a.busy[a.rowKeyAt(r)]
		for c := range cols {
			val := a.cellValue(r, c)
			if cols[c].amount {
				val = cli.FormatAmountCell(val)
			}
			selected := r == a.grid.row && c == a.grid.col

			if selected && a.grid.editing {
				a.grid.input.Width = widths[c]
				line[c] = a.grid.input.View()
				if w := lipgloss.Width(line[c]); w < widths[c] {
					line[c] += strings.Repeat(" ", widths[c]-w)
				}
				continue
			}

			cell := pad(val, widths[c])
			switch {
			case selected:
				line[c] = selStyle.Render(cell)
			case rowBusy:
				line[c] = dimStyle.Render(cell)
			case cols[c].field == ledger.FieldStatus && a.grid.section == ledger.SectionExpenses:
				if val == string(ledger.StatusPaid) {
					line[c] = paidStyle.Render(cell)
				} else {
					line[c] = pendingStyle.Render(cell)
				}
			case val == "":
				line[c] = dimStyle.Render(cell)
			default:
				line[c] = cellStyle.Render(cell)
			}
		}
		b.WriteString(" " + strings.Join(line, " ") + "\n")
	}

	if n := a.grid.rowCount(); end < n || a.grid.offset > 0 {
		b.WriteString(dimStyle.Render(
			" " + pad("rows "+itoa(a.grid.offset+1)+"-"+itoa(end)+" of "+itoa(n), width)))
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) rowKeyAt(rowIdx int) string {
	if a.grid.section == ledger.SectionIncomes {
		return a.led.Incomes[rowIdx].LocalKey
	}
	return a.led.Expenses[rowIdx].LocalKey
}

func (a App) viewHelp() string {
	t := theme.Active
	cw := a.contentWidth()

	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	txt := lipgloss.NewStyle().Foreground(t.TextPrimary)

	rows := [][2]string{
		{"↑/k ↓/j", "move between rows"},
		{"←/h →/l", "move between columns"},
		{"g / G", "jump to first / last row"},
		{"tab", "switch between expenses and income"},
		{"enter / i", "edit the selected cell"},
		{"enter", "(while editing) commit and save the row"},
		{"esc", "(while editing) discard the edit"},
		{"d", "delete the selected row"},
		{"[ / ]", "previous / next month"},
		{"r", "refetch the current month"},
		{"L", "log out"},
		{"q", "quit"},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString("  " + key.Render(pad(r[0], 12)) + txt.Render(r[1]) + "\n")
	}
	b.WriteString("\n  " + lipgloss.NewStyle().Foreground(t.TextDim).Render("press ? to close"))
	return components.ContentCard("Keys", b.String(), cw)
}

func (a App) viewTooNarrow() string {
	style := lipgloss.NewStyle().
		Foreground(theme.Active.Orange).
		Padding(1, 2)
	return style.Render("Terminal too narrow. Please resize to at least 80 columns.")
}

func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	if width <= 1 {
		return "…"
	}
	runes := []rune(s)
	out := ""
	for _, r := range runes {
		if lipgloss.Width(out)+1 >= width {
			return out + "…"
		}
		out += string(r)
	}
	return out
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
