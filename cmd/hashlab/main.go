package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/WanderingAstronomer/Hashing/internal/console"
	"github.com/WanderingAstronomer/Hashing/internal/lesson"
	"github.com/WanderingAstronomer/Hashing/internal/progress"
	"github.com/WanderingAstronomer/Hashing/internal/render"
	"github.com/WanderingAstronomer/Hashing/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hashlab:", err)
		os.Exit(1)
	}
}

func run() error {
	store, err := progress.New()
	if err != nil {
		return fmt.Errorf("opening progress store: %w", err)
	}
	lessons := lesson.All()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		<-interrupted
		fmt.Printf("\n\n  %s\n\n", render.Dim.Render("Interrupted. Goodbye!"))
		os.Exit(130)
	}()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return runInteractive(lessons, store)
	}
	return runPlain(lessons, store)
}

// runInteractive alternates between the full-screen menu and lessons
// on the plain terminal.
func runInteractive(lessons []lesson.Lesson, store *progress.Store) error {
	for {
		choice, err := tui.Run(lessons, store)
		if err != nil {
			return err
		}
		if choice.Quit {
			printFarewell()
			return nil
		}
		done, err := runLesson(choice.Lesson, console.New(), store)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// runPlain drives the same lessons over a line-based menu for pipes
// and dumb terminals.
func runPlain(lessons []lesson.Lesson, store *progress.Store) error {
	c := console.New()
	for {
		printMenu(c, lessons, store)
		choice, err := c.Prompt("Select a lesson  (1-5, q = quit)")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if strings.EqualFold(choice, "q") {
			printFarewell()
			return nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(lessons) {
			c.Warn(fmt.Sprintf("Enter a number from 1 to %d, or q.", len(lessons)))
			continue
		}
		done, err := runLesson(lessons[n-1], c, store)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// runLesson executes one lesson and records its completion. It
// reports whether the input stream ran out.
func runLesson(l lesson.Lesson, c *console.Console, store *progress.Store) (bool, error) {
	err := l.Run(c)
	switch {
	case err == nil:
		store.MarkCompleted(l.ID)
		if err := store.Save(); err != nil {
			return false, fmt.Errorf("saving progress: %w", err)
		}
		return false, nil
	case errors.Is(err, lesson.ErrAbandoned), errors.Is(err, console.ErrInterrupted):
		return false, nil
	case errors.Is(err, io.EOF):
		return true, nil
	default:
		return false, fmt.Errorf("running lesson %s: %w", l.ID, err)
	}
}

func printMenu(c *console.Console, lessons []lesson.Lesson, store *progress.Store) {
	c.Printf("\n  %s\n", render.AccentBold.Render("HASHING CONCEPTS LAB"))
	ids := make([]string, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	done, total, percent := store.Overall(ids)
	c.Printf("  %s\n\n", render.Dim.Render(fmt.Sprintf("Progress: %d/%d (%d%%)", done, total, percent)))
	for i, l := range lessons {
		mark := " "
		if store.Completed(l.ID) {
			mark = "✓"
		}
		c.Printf("  %s %s\n", render.Good.Render(mark), render.Bold.Render(fmt.Sprintf("%d. %s", i+1, l.Title)))
		c.Printf("       %s\n", render.Dim.Render(l.Subtitle))
	}
	c.Println()
}

func printFarewell() {
	fmt.Printf("\n  %s\n\n", render.GoodBold.Render("Thanks for attending! 🔐"))
}
