package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/WanderingAstronomer/Hashing/internal/render"
)

var (
	// Banner above the lesson list
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(render.ColorAccent).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(render.ColorAccent).
			Padding(1, 8).
			Align(lipgloss.Center)

	// Menu items
	selectedStyle = lipgloss.NewStyle().
			Foreground(render.ColorTitle).
			Bold(true)

	unselectedStyle = lipgloss.NewStyle().
			Foreground(render.ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(render.ColorMuted)

	doneStyle = lipgloss.NewStyle().
			Foreground(render.ColorGood)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(render.ColorMuted).
			MarginTop(1)

	// Danger/warning text
	dangerStyle = lipgloss.NewStyle().
			Foreground(render.ColorBad).
			Bold(true).
			MarginTop(1)
)
