package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const progressCells = 30

// ProgressBar redraws an elapsed-time bar in place until target has
// passed, then finishes the line with a newline. It blocks the caller
// for the full duration. A zero or negative target completes with a
// single redraw at 100% and never sleeps. Only that final state is
// deterministic; intermediate redraws depend on wall-clock timing.
func ProgressBar(w io.Writer, style lipgloss.Style, label string, target, poll time.Duration) {
	if target <= 0 {
		drawBar(w, style, label, 1)
		fmt.Fprintln(w)
		return
	}
	start := time.Now()
	for {
		frac := float64(time.Since(start)) / float64(target)
		if frac > 1 {
			frac = 1
		}
		drawBar(w, style, label, frac)
		if frac >= 1 {
			break
		}
		time.Sleep(poll)
	}
	fmt.Fprintln(w)
}

func drawBar(w io.Writer, style lipgloss.Style, label string, frac float64) {
	filled := int(progressCells * frac)
	bar := strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, progressCells-filled)
	fmt.Fprintf(w, "\r%s%s", indent, style.Render(fmt.Sprintf("%s [%s] %3.0f%%", label, bar, frac*100)))
}
