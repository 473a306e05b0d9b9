package render

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestProgressBarZeroTarget(t *testing.T) {
	var buf bytes.Buffer
	start := time.Now()
	ProgressBar(&buf, Good, "Hashing", 0, 50*time.Millisecond)
	if elapsed := time.Since(start); elapsed > 20*time.Millisecond {
		t.Errorf("zero target slept for %v", elapsed)
	}

	out := stripANSI(buf.String())
	if got := strings.Count(out, "\r"); got != 1 {
		t.Errorf("redraw count = %d, want 1", got)
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("final state missing 100%%: %q", out)
	}
	if got := strings.Count(out, barFilled); got != 30 {
		t.Errorf("filled cells = %d, want 30", got)
	}
	if strings.Contains(out, barEmpty) {
		t.Error("full bar still shows empty cells")
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("bar did not finish its line")
	}
}

func TestProgressBarNegativeTarget(t *testing.T) {
	var buf bytes.Buffer
	ProgressBar(&buf, Good, "Hashing", -time.Second, 50*time.Millisecond)
	out := stripANSI(buf.String())
	if got := strings.Count(out, "\r"); got != 1 {
		t.Errorf("redraw count = %d, want 1", got)
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("final state missing 100%%: %q", out)
	}
}

func TestProgressBarBlocksUntilTarget(t *testing.T) {
	var buf bytes.Buffer
	target := 80 * time.Millisecond
	start := time.Now()
	ProgressBar(&buf, Good, "Hashing", target, 10*time.Millisecond)
	if elapsed := time.Since(start); elapsed < target {
		t.Errorf("returned after %v, before the %v target", elapsed, target)
	}

	out := stripANSI(buf.String())
	if got := strings.Count(out, "\r"); got < 2 {
		t.Errorf("redraw count = %d, want several", got)
	}
	last := out[strings.LastIndex(out, "\r")+1:]
	if !strings.Contains(last, "100%") {
		t.Errorf("last redraw = %q, want 100%%", last)
	}
	if !strings.Contains(last, strings.Repeat(barFilled, 30)) {
		t.Errorf("last redraw bar not full: %q", last)
	}
}

func TestProgressBarLabel(t *testing.T) {
	var buf bytes.Buffer
	ProgressBar(&buf, Good, "Hashing", 0, time.Millisecond)
	if !strings.Contains(stripANSI(buf.String()), "Hashing [") {
		t.Errorf("label missing: %q", stripANSI(buf.String()))
	}
}
