package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/WanderingAstronomer/Hashing/internal/lesson"
	"github.com/WanderingAstronomer/Hashing/internal/progress"
)

// Menu handles the lesson selection screen.
type Menu struct {
	lessons  []lesson.Lesson
	progress *progress.Store

	cursor       int
	confirmReset bool
	width        int
	height       int
}

// NewMenu creates a lesson selection view.
func NewMenu(lessons []lesson.Lesson, prog *progress.Store) Menu {
	return Menu{
		lessons:  lessons,
		progress: prog,
	}
}

// selectedLesson is a message sent when a lesson is selected.
type selectedLesson struct {
	lesson lesson.Lesson
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.confirmReset {
			switch msg.String() {
			case "y", "Y":
				_ = m.progress.Reset()
			}
			// Any other key cancels the reset prompt.
			m.confirmReset = false
			return m, tea.ClearScreen
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			m.cursor = min(m.cursor+1, len(m.lessons)-1)
		case "ctrl+r":
			m.confirmReset = true
			return m, nil
		case "enter", "l":
			if m.cursor < len(m.lessons) {
				picked := m.lessons[m.cursor]
				return m, func() tea.Msg { return selectedLesson{lesson: picked} }
			}
		case "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder

	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}

	headerLines := []string{
		bannerStyle.Render("HASHING  CONCEPTS  LAB\nInteractive Teaching Demo"),
	}
	if progressText := overallProgressText(m.progress, m.lessons); progressText != "" {
		headerLines = append(headerLines, mutedStyle.MaxWidth(width).Render(progressText))
	}
	headerLines = append(headerLines, mutedStyle.MaxWidth(width).Render("Each lesson builds on the last. Recommended order: 1 → 5"))
	header := strings.Join(headerLines, "\n")

	var lines []string
	cursorLine := 0
	for i, l := range m.lessons {
		prefix := "  "
		style := unselectedStyle
		if i == m.cursor {
			prefix = "> "
			style = selectedStyle
			cursorLine = len(lines)
		}

		mark := "  "
		if m.progress != nil && m.progress.Completed(l.ID) {
			mark = doneStyle.Render("✓") + " "
		}
		lines = append(lines, fmt.Sprintf("%s%s  %s", prefix, style.Render(fmt.Sprintf("%d. %s", i+1, l.Title)), mark))
		lines = append(lines, "      "+mutedStyle.Render(l.Subtitle))
	}

	helpLine := "  j/k: navigate  enter: select  q: quit  Ctrl+R: reset progress"
	footer := helpStyle.MaxWidth(width).Render(helpLine)
	if m.confirmReset {
		footer = footer + "\n" + dangerStyle.MaxWidth(width).Render("Reset all progress? [y]es / [n]o")
	}

	available := height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if available < 1 {
		available = 1
	}
	visible := windowLines(lines, cursorLine, available)

	b.WriteString(header)
	b.WriteString("\n\n")
	for i, line := range visible {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fitWidth(line, width))
	}
	b.WriteString("\n\n")
	b.WriteString(footer)

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func windowLines(lines []string, cursor, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(lines) {
		cursor = len(lines) - 1
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func fitWidth(line string, width int) string {
	if width <= 0 {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
