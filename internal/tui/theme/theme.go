// Package theme defines color themes for the grana TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceBright lipgloss.Color // Highlighted surface (selected cell, busy row)
	Border        lipgloss.Color // Subtle borders
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, placeholders)
	TextMuted     lipgloss.Color // Secondary text (labels, headers)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Brand accent (titles, active section)
	AccentBright  lipgloss.Color
	Green         lipgloss.Color // Paid status, income amounts, positive balance
	Red           lipgloss.Color // Pending status, expense amounts, errors
	Orange        lipgloss.Color // Warnings (save failures kept editable)
	Blue          lipgloss.Color // Month selector, info
	Yellow        lipgloss.Color
}

// Active is the currently selected theme.
var Active = ManagerDark

// ManagerDark is the default theme, carrying the Finance Manager web
// palette (yellow-green brand, bootstrap-ish status colors) onto a
// dark surface.
var ManagerDark = Theme{
	Name:          "manager-dark",
	Background:    lipgloss.Color("#121412"),
	Surface:       lipgloss.Color("#1C1F1C"),
	SurfaceBright: lipgloss.Color("#2A2E2A"),
	Border:        lipgloss.Color("#3A403A"),
	BorderAccent:  lipgloss.Color("#9ACD32"),
	TextDim:       lipgloss.Color("#565D56"),
	TextMuted:     lipgloss.Color("#8A928A"),
	TextPrimary:   lipgloss.Color("#F5F7F5"),
	Accent:        lipgloss.Color("#9ACD32"),
	AccentBright:  lipgloss.Color("#B8E356"),
	Green:         lipgloss.Color("#28A745"),
	Red:           lipgloss.Color("#DC3545"),
	Orange:        lipgloss.Color("#E08B2C"),
	Blue:          lipgloss.Color("#007BFF"),
	Yellow:        lipgloss.Color("#D0A215"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("2"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("10"),
	AccentBright:  lipgloss.Color("10"),
	Green:         lipgloss.Color("2"),
	Red:           lipgloss.Color("1"),
	Orange:        lipgloss.Color("3"),
	Blue:          lipgloss.Color("4"),
	Yellow:        lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{ManagerDark, Terminal}

// ByName returns a theme by its name, defaulting to ManagerDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return ManagerDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
