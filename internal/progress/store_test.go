package progress

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewAt(dir)
	if err != nil {
		t.Fatalf("NewAt error: %v", err)
	}
	if s.Completed("toy-hash") {
		t.Fatal("fresh store already shows a completion")
	}

	s.MarkCompleted("toy-hash")
	s.MarkCompleted("toy-hash")
	s.MarkCompleted("rainbow")
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	reloaded, err := NewAt(dir)
	if err != nil {
		t.Fatalf("NewAt error: %v", err)
	}
	if !reloaded.Completed("toy-hash") || !reloaded.Completed("rainbow") {
		t.Error("completions lost across reload")
	}
	if got := reloaded.Results["toy-hash"].Runs; got != 2 {
		t.Errorf("Runs = %d, want 2", got)
	}
	if reloaded.Completed("collisions") {
		t.Error("unvisited lesson reported complete")
	}
}

func TestStoreOverall(t *testing.T) {
	ids := []string{"toy-hash", "collisions", "avalanche", "password", "rainbow"}

	s, err := NewAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewAt error: %v", err)
	}

	done, total, percent := s.Overall(ids)
	if done != 0 || total != 5 || percent != 0 {
		t.Errorf("Overall = %d/%d (%d%%), want 0/5 (0%%)", done, total, percent)
	}

	s.MarkCompleted("toy-hash")
	s.MarkCompleted("avalanche")
	done, total, percent = s.Overall(ids)
	if done != 2 || total != 5 || percent != 40 {
		t.Errorf("Overall = %d/%d (%d%%), want 2/5 (40%%)", done, total, percent)
	}

	if d, tot, pct := s.Overall(nil); d != 0 || tot != 0 || pct != 0 {
		t.Errorf("Overall(nil) = %d/%d (%d%%), want zeros", d, tot, pct)
	}
}

func TestStoreReset(t *testing.T) {
	dir := t.TempDir()

	s, err := NewAt(dir)
	if err != nil {
		t.Fatalf("NewAt error: %v", err)
	}
	s.MarkCompleted("password")
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	if s.Completed("password") {
		t.Error("Reset left a completion behind")
	}

	reloaded, err := NewAt(dir)
	if err != nil {
		t.Fatalf("NewAt error: %v", err)
	}
	if reloaded.Completed("password") {
		t.Error("Reset did not persist")
	}
}

func TestStoreToleratesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, progressFile), []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	s, err := NewAt(dir)
	if err != nil {
		t.Fatalf("NewAt error: %v", err)
	}
	if s.Completed("toy-hash") {
		t.Error("corrupt file produced phantom progress")
	}
}
