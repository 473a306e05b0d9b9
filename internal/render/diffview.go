package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/WanderingAstronomer/Hashing/internal/diff"
	"github.com/WanderingAstronomer/Hashing/internal/text"
)

// DiffView renders a comparison as three aligned lines: the two inputs
// with mismatched symbols recolored, and a marker line of dots and
// carets. Group inserts a space after every Group symbols; Display
// caps how many positions are rendered (zero renders all of them).
// The cap is purely visual, counts always come from the full Result.
type DiffView struct {
	Group   int
	Display int
}

// Lines renders a, b, and the marker line for res, which must be the
// result of comparing a with b. Matching symbols are dimmed, a's
// mismatches take the accent color, b's the alert color. Markers
// cover only positions both inputs share; a longer input's tail keeps
// its side's mismatch color with no marker underneath.
func (v DiffView) Lines(a, b string, res diff.Result) (lineA, lineB, markers text.Text) {
	ra, rb := []rune(a), []rune(b)
	overlap := len(res.Match)

	limit := max(len(ra), len(rb))
	if v.Display > 0 && v.Display < limit {
		limit = v.Display
	}
	shownA := min(len(ra), limit)
	shownB := min(len(rb), limit)
	shownM := min(overlap, limit)

	partsA := make([]text.Text, 0, shownA*2)
	partsB := make([]text.Text, 0, shownB*2)
	partsM := make([]text.Text, 0, shownM*2)
	for i := 0; i < limit; i++ {
		matched := i < overlap && res.Match[i]
		if i < len(ra) {
			partsA = append(partsA, symbol(string(ra[i]), matched, AccentBold))
		}
		if i < len(rb) {
			partsB = append(partsB, symbol(string(rb[i]), matched, BadBold))
		}
		if i < overlap {
			if matched {
				partsM = append(partsM, text.Styled(Dim, matchDot))
			} else {
				partsM = append(partsM, text.Styled(Bad, mismatchCaret))
			}
		}
		if v.Group > 0 && (i+1)%v.Group == 0 {
			gap := text.Plain(" ")
			if i+1 < shownA {
				partsA = append(partsA, gap)
			}
			if i+1 < shownB {
				partsB = append(partsB, gap)
			}
			if i+1 < shownM {
				partsM = append(partsM, gap)
			}
		}
	}
	return text.Join(partsA...), text.Join(partsB...), text.Join(partsM...)
}

func symbol(s string, matched bool, mismatch lipgloss.Style) text.Text {
	if matched {
		return text.Styled(Dim, s)
	}
	return text.Styled(mismatch, s)
}
