// Package console is the narrated teaching surface: colored block
// output plus paced input. Lessons talk only to a Console, so a whole
// run can be scripted over plain buffers in tests.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/WanderingAstronomer/Hashing/internal/render"
)

// ErrInterrupted reports that the presenter canceled an interactive
// prompt instead of answering it.
var ErrInterrupted = errors.New("prompt interrupted")

const headerMinWidth = 48

// Console pairs an input stream with styled output. Interactive
// niceties (screen clearing, the line-edited prompt, suspense pauses)
// switch off when input is not a terminal.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New returns a Console over stdin and stdout.
func New() *Console {
	return &Console{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewWith returns a non-interactive Console over the given streams.
func NewWith(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Interactive reports whether input comes from a terminal.
func (c *Console) Interactive() bool { return c.interactive }

// Out exposes the output stream for renderers that redraw in place.
func (c *Console) Out() io.Writer { return c.out }

// Clear wipes the screen on interactive sessions.
func (c *Console) Clear() {
	if !c.interactive {
		return
	}
	o := termenv.NewOutput(c.out)
	o.ClearScreen()
	o.MoveCursor(1, 1)
}

// Header clears the screen and prints the lesson banner.
func (c *Console) Header(title string) {
	c.Clear()
	width := runewidth.StringWidth(title) + 6
	if width < headerMinWidth {
		width = headerMinWidth
	}
	rule := "  " + strings.Repeat("━", width)
	fmt.Fprintf(c.out, "\n%s\n", render.Title.Render(rule))
	fmt.Fprintln(c.out, render.Title.Render("  ┃  "+strings.ToUpper(title)))
	fmt.Fprintf(c.out, "%s\n\n", render.Title.Render(rule))
}

// Setup prints the what-we-are-about-to-see block that opens a lesson.
func (c *Console) Setup(body string) {
	fmt.Fprintln(c.out, "  "+render.AccentBold.Render("▸ What we are about to see"))
	for _, line := range bodyLines(body) {
		fmt.Fprintln(c.out, indent+render.Accent.Render(line))
	}
	fmt.Fprintln(c.out)
}

// Takeaway prints the what-this-means block that closes a lesson.
func (c *Console) Takeaway(body string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "  "+render.GoodBold.Render("✓ What this means"))
	for _, line := range bodyLines(body) {
		fmt.Fprintln(c.out, indent+render.Good.Render(line))
	}
}

// Label prints a bold step heading.
func (c *Console) Label(s string) {
	fmt.Fprintf(c.out, "\n  %s\n", render.Bold.Render(s))
}

// Info prints a dim supporting line.
func (c *Console) Info(s string) { c.line(render.Dim, s) }

// Warn prints a yellow line.
func (c *Console) Warn(s string) { c.line(render.Warn, s) }

// Good prints a green line.
func (c *Console) Good(s string) { c.line(render.Good, s) }

// Bad prints a red line.
func (c *Console) Bad(s string) { c.line(render.Bad, s) }

// Printf writes formatted output with no styling applied.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes its arguments the way fmt.Println does.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Pause blocks until the presenter presses Enter.
func (c *Console) Pause(action string) error {
	fmt.Fprintf(c.out, "\n  %s", render.Dim.Render(fmt.Sprintf("↵  Press Enter to %s...", action)))
	if _, err := c.readLine(); err != nil {
		return fmt.Errorf("waiting for enter: %w", err)
	}
	if !c.interactive {
		fmt.Fprintln(c.out)
	}
	return nil
}

// Prompt asks for one line of input and returns it trimmed.
func (c *Console) Prompt(label string) (string, error) {
	return c.PromptDefault(label, "")
}

// PromptDefault is Prompt with a fallback used when the answer is
// empty. Interactive sessions get a line editor with the fallback as
// placeholder text.
func (c *Console) PromptDefault(label, fallback string) (string, error) {
	if c.interactive {
		return c.promptInteractive(label, fallback)
	}
	hint := ""
	if fallback != "" {
		hint = fmt.Sprintf("  (Enter for '%s')", fallback)
	}
	fmt.Fprintf(c.out, "  %s", render.Warn.Render("▸ "+label+hint+": "))
	line, err := c.readLine()
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	fmt.Fprintln(c.out)
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

// Dots prints n suspense dots, pausing between them on interactive
// sessions.
func (c *Console) Dots(n int) {
	for i := 0; i < n; i++ {
		if c.interactive {
			time.Sleep(300 * time.Millisecond)
		}
		fmt.Fprint(c.out, ".")
	}
}

func (c *Console) line(style lipgloss.Style, s string) {
	fmt.Fprintln(c.out, indent+style.Render(s))
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// bodyLines splits a block into trimmed lines so callers can indent
// multi-line narration with raw strings.
func bodyLines(body string) []string {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

const indent = "    "
