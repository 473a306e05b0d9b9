package text

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		text Text
		want int
	}{
		{"empty", Text{}, 0},
		{"plain ascii", Plain("hello"), 5},
		{"marker only", Marker("\x1b[96m"), 0},
		{"marker between spans", Join(Plain("ab"), Marker("\x1b[1m"), Plain("cd")), 4},
		{"styled span", Styled(lipgloss.NewStyle().Bold(true), "bold"), 4},
		{"wide runes", Plain("日本"), 4},
		{"mixed widths", Join(Plain("a"), Plain("漢"), Marker("\x1b[0m")), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Width(); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWidthIgnoresMarkers(t *testing.T) {
	base := Join(Plain("pass"), Plain("word"))
	marked := Join(Marker("\x1b[92m"), Plain("pass"), Marker("\x1b[0m"), Plain("word"), Marker("\x1b[0m"))
	if base.Width() != marked.Width() {
		t.Errorf("marker insertion changed width: %d vs %d", base.Width(), marked.Width())
	}
}

func TestVisible(t *testing.T) {
	line := Join(
		Marker("\x1b[96m"),
		Plain("a: "),
		Styled(lipgloss.NewStyle().Bold(true), "value"),
		Marker("\x1b[0m"),
	)
	if got, want := line.Visible(), "a: value"; got != want {
		t.Errorf("Visible() = %q, want %q", got, want)
	}
}

func TestStringEmitsMarkersVerbatim(t *testing.T) {
	line := Join(Marker("\x1b[96m"), Plain("x"), Marker("\x1b[0m"))
	got := line.String()
	if !strings.Contains(got, "\x1b[96m") || !strings.Contains(got, "\x1b[0m") {
		t.Errorf("String() = %q, markers not emitted verbatim", got)
	}
	if line.Width() != 1 {
		t.Errorf("Width() = %d, want 1", line.Width())
	}
}

func TestStringMatchesVisibleOnceStripped(t *testing.T) {
	st := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	line := Join(Plain("n = "), Styled(st, "280"), Plain(" words"))
	if got, want := stripANSI(line.String()), line.Visible(); got != want {
		t.Errorf("stripped String() = %q, want %q", got, want)
	}
}

func TestJoinPreservesOrder(t *testing.T) {
	line := Join(Plain("1"), Plain("2"), Join(Plain("3"), Plain("4")))
	if got, want := line.Visible(), "1234"; got != want {
		t.Errorf("Visible() = %q, want %q", got, want)
	}
}

func TestPlainf(t *testing.T) {
	if got, want := Plainf("%d %% %d = %d", 280, 8, 0).Visible(), "280 % 8 = 0"; got != want {
		t.Errorf("Plainf = %q, want %q", got, want)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		if r == 0x1b {
			inEscape = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
