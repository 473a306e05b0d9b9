// Package text models a line of terminal output as visible spans plus
// zero-width style markers, so width math never has to recognize any
// escape-sequence grammar.
package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Text is an immutable run of display characters with styling kept
// structurally apart from the characters themselves. A segment is
// either a visible span (optionally rendered through a lipgloss style)
// or a marker: an opaque token re-emitted verbatim that occupies no
// screen columns. The zero value is an empty line.
type Text struct {
	segs []segment
}

type segment struct {
	content string
	style   lipgloss.Style
	styled  bool
	marker  bool
}

// Plain returns a Text holding a single unstyled span.
func Plain(s string) Text {
	return Text{segs: []segment{{content: s}}}
}

// Plainf is Plain with formatting.
func Plainf(format string, args ...any) Text {
	return Plain(fmt.Sprintf(format, args...))
}

// Styled returns a Text holding one span rendered through st.
func Styled(st lipgloss.Style, s string) Text {
	return Text{segs: []segment{{content: s, style: st, styled: true}}}
}

// Styledf is Styled with formatting.
func Styledf(st lipgloss.Style, format string, args ...any) Text {
	return Styled(st, fmt.Sprintf(format, args...))
}

// Marker returns a Text holding one zero-width token. The token is
// written to output verbatim and never measured.
func Marker(tok string) Text {
	return Text{segs: []segment{{content: tok, marker: true}}}
}

// Join concatenates parts into a single Text, preserving order.
func Join(parts ...Text) Text {
	n := 0
	for _, p := range parts {
		n += len(p.segs)
	}
	segs := make([]segment, 0, n)
	for _, p := range parts {
		segs = append(segs, p.segs...)
	}
	return Text{segs: segs}
}

// Width reports the number of terminal columns the visible spans
// occupy. Markers contribute nothing.
func (t Text) Width() int {
	w := 0
	for _, seg := range t.segs {
		if seg.marker {
			continue
		}
		w += runewidth.StringWidth(seg.content)
	}
	return w
}

// Visible returns the plain content: every visible span concatenated
// in order, markers omitted.
func (t Text) Visible() string {
	var b strings.Builder
	for _, seg := range t.segs {
		if seg.marker {
			continue
		}
		b.WriteString(seg.content)
	}
	return b.String()
}

// String renders the line for the terminal: markers verbatim, spans
// through their styles.
func (t Text) String() string {
	var b strings.Builder
	for _, seg := range t.segs {
		if seg.styled {
			b.WriteString(seg.style.Render(seg.content))
			continue
		}
		b.WriteString(seg.content)
	}
	return b.String()
}
