package render

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorTitle  = lipgloss.Color("#7C3AED") // purple
	ColorAccent = lipgloss.Color("#22D3EE") // cyan
	ColorGood   = lipgloss.Color("#10B981") // green
	ColorWarn   = lipgloss.Color("#F59E0B") // yellow
	ColorBad    = lipgloss.Color("#EF4444") // red
	ColorMuted  = lipgloss.Color("#6B7280") // gray
	ColorText   = lipgloss.Color("#F9FAFB") // almost white
)

// Styles
var (
	Title = lipgloss.NewStyle().
		Foreground(ColorTitle).
		Bold(true)

	Accent = lipgloss.NewStyle().
		Foreground(ColorAccent)

	AccentBold = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	Good = lipgloss.NewStyle().
		Foreground(ColorGood)

	GoodBold = lipgloss.NewStyle().
			Foreground(ColorGood).
			Bold(true)

	Warn = lipgloss.NewStyle().
		Foreground(ColorWarn)

	Bad = lipgloss.NewStyle().
		Foreground(ColorBad)

	BadBold = lipgloss.NewStyle().
		Foreground(ColorBad).
		Bold(true)

	Dim = lipgloss.NewStyle().
		Faint(true)

	Bold = lipgloss.NewStyle().
		Bold(true)
)
