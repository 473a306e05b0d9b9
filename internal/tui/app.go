package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/WanderingAstronomer/Hashing/internal/lesson"
	"github.com/WanderingAstronomer/Hashing/internal/progress"
)

// Choice is the outcome of one menu session: a lesson to run, or a
// request to quit the lab.
type Choice struct {
	Lesson lesson.Lesson
	Quit   bool
}

// App is the menu's Bubble Tea model. Lessons themselves run outside
// the program, on the plain terminal, because they block on input and
// own the screen while they teach.
type App struct {
	menu   Menu
	choice Choice
}

// NewApp creates the menu application model.
func NewApp(lessons []lesson.Lesson, prog *progress.Store) (*App, error) {
	if len(lessons) == 0 {
		return nil, fmt.Errorf("no lessons found")
	}

	return &App{
		menu:   NewMenu(lessons, prog),
		choice: Choice{Quit: true},
	}, nil
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case selectedLesson:
		a.choice = Choice{Lesson: msg.lesson}
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a App) View() string {
	return a.menu.View()
}

// Run shows the menu and blocks until the presenter picks a lesson or
// quits.
func Run(lessons []lesson.Lesson, prog *progress.Store) (Choice, error) {
	app, err := NewApp(lessons, prog)
	if err != nil {
		return Choice{}, err
	}

	final, err := tea.NewProgram(*app, tea.WithAltScreen()).Run()
	if err != nil {
		return Choice{}, fmt.Errorf("running menu: %w", err)
	}
	if a, ok := final.(App); ok {
		return a.choice, nil
	}
	return Choice{Quit: true}, nil
}
