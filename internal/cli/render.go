package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Static palette for non-TUI output, matching the manager-dark theme.
var (
	ColorText      = lipgloss.Color("#F5F7F5")
	ColorTextMuted = lipgloss.Color("#8A928A")
	ColorTextDim   = lipgloss.Color("#565D56")
	ColorAccent    = lipgloss.Color("#9ACD32")
	ColorGreen     = lipgloss.Color("#28A745")
	ColorRed       = lipgloss.Color("#DC3545")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	footerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
	goodStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	badStyle    = lipgloss.NewStyle().Foreground(ColorRed)
)

// PaintGood renders a positive money value.
func PaintGood(s string) string { return goodStyle.Render(s) }

// PaintBad renders a negative money value or an error fragment.
func PaintBad(s string) string { return badStyle.Render(s) }

// Table is a bordered text table with optional bold footer rows for
// section totals.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footers [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTextDim).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders the table. Column widths fit the widest cell,
// measured with lipgloss.Width so pre-styled cells don't inflate their
// column. The first column is left-aligned, the rest right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	measure := func(rows [][]string) {
		for _, row := range rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}
	measure(t.Rows)
	measure(t.Footers)

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeRow := func(row []string, style lipgloss.Style) {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if i == 0 {
				b.WriteString(" " + style.Render(cell) + strings.Repeat(" ", pad) + " ")
			} else {
				b.WriteString(" " + strings.Repeat(" ", pad) + style.Render(cell) + " ")
			}
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	writeRow(t.Headers, headerStyle)
	rule("├", "┼", "┤")
	for _, row := range t.Rows {
		writeRow(row, valueStyle)
	}
	if len(t.Footers) > 0 {
		rule("├", "┼", "┤")
		for _, row := range t.Footers {
			writeRow(row, footerStyle)
		}
	}
	rule("╰", "┴", "╯")

	return b.String()
}

// RenderSummaryLine renders a one-line labeled money figure for the
// cards above the table, e.g. "Total income   R$ 1500,00".
func RenderSummaryLine(label, value string) string {
	return fmt.Sprintf("  %s %s", headerStyle.Render(fmt.Sprintf("%-16s", label)), value)
}
