package progress

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

const progressFile = "progress.json"

// LessonResult records how a lesson has gone so far.
type LessonResult struct {
	Completed bool `json:"completed"`
	Runs      int  `json:"runs"`
}

// Store manages progress persistence.
type Store struct {
	dir     string
	Results map[string]LessonResult `json:"results"` // keyed by lesson ID
}

// New creates a progress store under the user's home directory.
func New() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home dir: %w", err)
	}
	return NewAt(filepath.Join(home, ".hashlab"))
}

// NewAt creates a progress store rooted at dir.
func NewAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating hashlab dir: %w", err)
	}

	s := &Store{
		dir:     dir,
		Results: make(map[string]LessonResult),
	}

	// Load existing progress if available
	s.Load()

	return s, nil
}

// Load reads progress from disk.
func (s *Store) Load() error {
	path := filepath.Join(s.dir, progressFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading progress: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing progress: %w", err)
	}
	if s.Results == nil {
		s.Results = make(map[string]LessonResult)
	}
	return nil
}

// Save writes progress to disk.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling progress: %w", err)
	}

	path := filepath.Join(s.dir, progressFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing progress: %w", err)
	}
	return nil
}

// Reset clears all progress and persists the empty state.
func (s *Store) Reset() error {
	s.Results = make(map[string]LessonResult)
	return s.Save()
}

// MarkCompleted records one finished run of a lesson.
func (s *Store) MarkCompleted(lessonID string) {
	r := s.Results[lessonID]
	r.Completed = true
	r.Runs++
	s.Results[lessonID] = r
}

// Completed reports whether a lesson has ever been finished.
func (s *Store) Completed(lessonID string) bool {
	return s.Results[lessonID].Completed
}

// Overall returns completed count, total lessons, and percent complete.
func (s *Store) Overall(lessonIDs []string) (int, int, int) {
	total := len(lessonIDs)
	if total == 0 {
		return 0, 0, 0
	}

	done := 0
	for _, id := range lessonIDs {
		if s.Completed(id) {
			done++
		}
	}

	percent := int(math.Round(float64(done) * 100 / float64(total)))
	return done, total, percent
}
