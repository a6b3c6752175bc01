package components

import (
	"grana/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderHeaderBar renders the top bar: brand on the left, the month
// selector in the middle, logout hint on the right.
func RenderHeaderBar(width int, monthLabel string) string {
	t := theme.Active

	brandStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	brandAltStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	monthStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	brand := " " + brandStyle.Render("Finance") + brandAltStyle.Render("Manager")
	month := hintStyle.Render("[") + monthStyle.Render(" ‹ "+monthLabel+" › ") + hintStyle.Render("]")
	hint := hintStyle.Render("[L]ogout ")

	gap1 := (width-lipgloss.Width(brand)-lipgloss.Width(month))/2 - 1
	if gap1 < 1 {
		gap1 = 1
	}
	gap2 := width - lipgloss.Width(brand) - gap1 - lipgloss.Width(month) - lipgloss.Width(hint)
	if gap2 < 1 {
		gap2 = 1
	}

	return brand + spaces(gap1) + month + spaces(gap2) + hint
}

// RenderSectionBar renders the expense/income section switcher.
func RenderSectionBar(active int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	names := []string{"Expenses", "Income"}
	out := " "
	for i, name := range names {
		if i == active {
			out += activeStyle.Render("▪ " + name)
		} else {
			out += inactiveStyle.Render("  " + name)
		}
		if i < len(names)-1 {
			out += dimStyle.Render("  │  ")
		}
	}
	return out
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
