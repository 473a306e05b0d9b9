package lesson

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/WanderingAstronomer/Hashing/internal/console"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

// script runs a lesson over buffered streams, feeding it the given
// input lines, and returns everything it printed with the color codes
// stripped.
func script(t *testing.T, l Lesson, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := l.Run(console.NewWith(strings.NewReader(input), &out))
	return stripANSI(out.String()), err
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

func TestAll(t *testing.T) {
	lessons := All()
	wantIDs := []string{"toy-hash", "collisions", "avalanche", "password", "rainbow"}
	if len(lessons) != len(wantIDs) {
		t.Fatalf("len(All()) = %d, want %d", len(lessons), len(wantIDs))
	}
	for i, l := range lessons {
		if l.ID != wantIDs[i] {
			t.Errorf("lesson %d ID = %q, want %q", i, l.ID, wantIDs[i])
		}
		if l.Title == "" || l.Subtitle == "" {
			t.Errorf("lesson %q missing title or subtitle", l.ID)
		}
		if l.Run == nil {
			t.Errorf("lesson %q has no Run", l.ID)
		}
	}
}

func TestToyHashQuitStillTeaches(t *testing.T) {
	out, err := script(t, ToyHash(), "\nq\n\n")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(out, "What this means") {
		t.Error("takeaway missing after quitting the loop")
	}
	if !strings.Contains(out, "empty") {
		t.Error("bucket table placeholder missing")
	}
}

func TestToyHashInsertAndCollide(t *testing.T) {
	out, err := script(t, ToyHash(), "\nCat\n\nAct\n\nq\n\n")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	for _, want := range []string{
		"'C'=67 + 'a'=97 + 't'=116",
		"Sum = ",
		"280 % 8 = ",
		"COLLISION",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestToyHashEOF(t *testing.T) {
	_, err := script(t, ToyHash(), "")
	if !errors.Is(err, io.EOF) {
		t.Errorf("error = %v, want io.EOF", err)
	}
}

func TestCollisionsAnagramsCollide(t *testing.T) {
	out, err := script(t, Collisions(), "\nCat\n\nAct\n\n")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	for _, want := range []string{
		"Words entered: 0",
		"COLLISION in bucket",
		"2 word(s)",
		"What this means",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCollisionsAbandoned(t *testing.T) {
	out, err := script(t, Collisions(), "\nq\n")
	if !errors.Is(err, ErrAbandoned) {
		t.Fatalf("error = %v, want ErrAbandoned", err)
	}
	if strings.Contains(out, "What this means") {
		t.Error("abandoned run still printed its takeaway")
	}
}

func TestAvalancheDefaults(t *testing.T) {
	out, err := script(t, Avalanche(), "\n\n\n\n\n\n")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	for _, want := range []string{
		"The inputs differ by 1 character(s).",
		"·······^",
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		"of 64 hex characters are different",
		"of 256 total bits flipped",
		"The ideal is 50% (128 bits)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPasswordDefaults(t *testing.T) {
	out, err := script(t, Password(), "\n\n\n\n\n\n")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	for _, want := range []string{
		"hunter2",
		"600,000",
		"100%",
		"FAST (SHA-256)",
		"SLOW (PBKDF2)",
		"What this means",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRainbowCracksDefaultVictim(t *testing.T) {
	out, err := script(t, Rainbow(), "\n\n\n\n\n\n")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	for _, want := range []string{
		"CRACKED!",
		"dragon",
		"What this means",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, "NOT FOUND ✓"); got != 2 {
		t.Errorf("salted lookups reported NOT FOUND %d times, want 2", got)
	}
}

func TestRainbowUnknownVictim(t *testing.T) {
	out, err := script(t, Rainbow(), "\ncorrect horse battery staple\n\n\n\n\n")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if strings.Contains(out, "CRACKED!") {
		t.Error("an uncommon password should not crack")
	}
	if !strings.Contains(out, "Not in this 25-entry demo table.") {
		t.Error("missing the not-found verdict")
	}
}
