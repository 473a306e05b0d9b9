// Package render draws the lab's console furniture: bordered boxes,
// bucket tables, colored diff lines, and the timed progress bar.
// Renderers take text.Text lines so styling never skews the geometry.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WanderingAstronomer/Hashing/internal/text"
)

// Box renders lines inside a single-line border, auto-sized to the
// widest visible line plus two columns.
func Box(border lipgloss.Style, lines ...text.Text) string {
	return BoxWidth(border, autoWidth(lines), lines...)
}

// BoxWidth renders lines inside a border of the given inner width.
// Narrow lines are padded with spaces; lines wider than the box are
// left intact and overflow past the right border.
func BoxWidth(border lipgloss.Style, width int, lines ...text.Text) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(border.Render(boxTL + strings.Repeat(boxH, width) + boxTR))
	b.WriteString("\n")
	for _, line := range lines {
		pad := width - line.Width()
		if pad < 0 {
			pad = 0
		}
		b.WriteString(indent)
		b.WriteString(border.Render(boxV))
		b.WriteString(line.String())
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(border.Render(boxV))
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString(border.Render(boxBL + strings.Repeat(boxH, width) + boxBR))
	return b.String()
}

func autoWidth(lines []text.Text) int {
	w := 0
	for _, line := range lines {
		if lw := line.Width(); lw > w {
			w = lw
		}
	}
	return w + 2
}
