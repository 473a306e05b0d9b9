// Package lesson holds the five narrated modules of the lab, in their
// recommended teaching order.
package lesson

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/WanderingAstronomer/Hashing/internal/console"
	"github.com/WanderingAstronomer/Hashing/internal/render"
)

// ErrAbandoned reports that the learner backed out of a lesson before
// reaching its takeaway. Runs that end this way are not recorded as
// completed.
var ErrAbandoned = errors.New("lesson abandoned")

// Lesson is one interactive module.
type Lesson struct {
	ID       string
	Title    string
	Subtitle string
	Run      func(*console.Console) error
}

// All returns the lessons in order. Each one builds on the last.
func All() []Lesson {
	return []Lesson{
		ToyHash(),
		Collisions(),
		Avalanche(),
		Password(),
		Rainbow(),
	}
}

// Bucket table geometry shared by the first two lessons.
const (
	bucketIndexWidth   = 5
	bucketContentWidth = 44
)

func bucketRows(buckets [][]string, highlight int, collided bool) []render.Row {
	rows := make([]render.Row, len(buckets))
	for i, items := range buckets {
		h := render.HighlightNone
		if i == highlight {
			if collided {
				h = render.HighlightCollided
			} else {
				h = render.HighlightInserted
			}
		}
		rows[i] = render.Row{Index: i, Items: items, Highlight: h}
	}
	return rows
}

var grouped = message.NewPrinter(language.English)

// humanCount renders n with thousands separators.
func humanCount(n int) string {
	return grouped.Sprintf("%d", n)
}
