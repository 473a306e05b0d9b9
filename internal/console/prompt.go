package console

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/WanderingAstronomer/Hashing/internal/render"
)

// promptModel is the one-shot line editor behind interactive prompts.
type promptModel struct {
	input    textinput.Model
	done     bool
	canceled bool
}

func newPromptModel(label, placeholder string) promptModel {
	ti := textinput.New()
	ti.Prompt = "  " + render.Warn.Render("▸ "+label+": ")
	ti.Placeholder = placeholder
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return m.input.View()
}

func (c *Console) promptInteractive(label, fallback string) (string, error) {
	p := tea.NewProgram(newPromptModel(label, fallback), tea.WithOutput(c.out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}
	m, ok := final.(promptModel)
	if !ok || m.canceled {
		return "", ErrInterrupted
	}
	val := m.input.Value()
	if val == "" {
		val = fallback
	}
	// The inline program erases itself on exit; keep the answered
	// prompt in the transcript.
	fmt.Fprintf(c.out, "  %s%s\n", render.Warn.Render("▸ "+label+": "), val)
	return val, nil
}
