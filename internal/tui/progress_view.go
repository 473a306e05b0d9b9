package tui

import (
	"fmt"

	"github.com/WanderingAstronomer/Hashing/internal/lesson"
	"github.com/WanderingAstronomer/Hashing/internal/progress"
)

func overallProgressText(prog *progress.Store, lessons []lesson.Lesson) string {
	if prog == nil || len(lessons) == 0 {
		return ""
	}

	ids := make([]string, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	done, total, percent := prog.Overall(ids)
	if done == 0 {
		return ""
	}
	return fmt.Sprintf("Progress: %d/%d (%d%%)", done, total, percent)
}
