package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/WanderingAstronomer/Hashing/internal/text"
)

// Highlight selects the color of a row's index cell.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightInserted
	HighlightCollided
)

// Row is one bucket: its index, the items that landed there, and the
// highlight for the index cell. The renderer only reads rows; callers
// own the item lists and mutate them between draws.
type Row struct {
	Index     int
	Items     []string
	Highlight Highlight
}

// Table renders rows as an index column and a content column divided
// by separator lines. Index cells are centered and colored by their
// highlight; empty buckets show a dimmed placeholder.
func Table(rows []Row, indexWidth, contentWidth int) string {
	border := Accent
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(border.Render(boxTL + strings.Repeat(boxH, indexWidth) + boxTT + strings.Repeat(boxH, contentWidth) + boxTR))
	b.WriteString("\n")
	for i, row := range rows {
		idx := highlightStyle(row.Highlight).Render(center(strconv.Itoa(row.Index), indexWidth))

		var cell text.Text
		if len(row.Items) > 0 {
			cell = text.Plain(" " + strings.Join(row.Items, ", "))
		} else {
			cell = text.Join(text.Plain(" "), text.Styled(Dim, "empty"))
		}
		pad := contentWidth - cell.Width()
		if pad < 0 {
			pad = 0
		}

		b.WriteString(indent)
		b.WriteString(border.Render(boxV))
		b.WriteString(idx)
		b.WriteString(border.Render(boxV))
		b.WriteString(cell.String())
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(border.Render(boxV))
		b.WriteString("\n")

		if i < len(rows)-1 {
			b.WriteString(indent)
			b.WriteString(border.Render(boxLT + strings.Repeat(boxH, indexWidth) + boxX + strings.Repeat(boxH, contentWidth) + boxRT))
			b.WriteString("\n")
		}
	}
	b.WriteString(indent)
	b.WriteString(border.Render(boxBL + strings.Repeat(boxH, indexWidth) + boxBT + strings.Repeat(boxH, contentWidth) + boxBR))
	return b.String()
}

func highlightStyle(h Highlight) lipgloss.Style {
	switch h {
	case HighlightInserted:
		return GoodBold
	case HighlightCollided:
		return BadBold
	default:
		return AccentBold
	}
}

// center pads s on both sides, leaning left when the space is odd.
func center(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
