package components

import (
	"fmt"

	"grana/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the
// left, session identity and pending-write count on the right.
func RenderStatusBar(width int, userName string, pendingWrites int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if pendingWrites > 0 {
		right = fmt.Sprintf("saving %d… ", pendingWrites)
	}
	if userName != "" {
		right += userName + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
