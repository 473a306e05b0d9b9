package lesson

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/WanderingAstronomer/Hashing/internal/console"
	"github.com/WanderingAstronomer/Hashing/internal/digest"
	"github.com/WanderingAstronomer/Hashing/internal/render"
	"github.com/WanderingAstronomer/Hashing/internal/text"
)

const (
	pbkdf2Iterations = 600_000
	passwordSaltLen  = 16
	progressPoll     = 50 * time.Millisecond
)

// Password is the fourth lesson: why password storage wants a slow
// hash, not a fast one.
func Password() Lesson {
	return Lesson{
		ID:       "password",
		Title:    "Password Hashing",
		Subtitle: "See why websites don't store your actual password",
		Run:      runPassword,
	}
}

func runPassword(c *console.Console) error {
	c.Header("Lesson 4 — Password Hashing: Fast vs. Slow")
	c.Setup(`
		SHA-256 is built for speed, and for stored passwords speed is
		a weakness: attackers guess billions of candidates per second.
		We will hash one password twice, once with plain SHA-256 and
		once with PBKDF2, and time both.
	`)
	if err := c.Pause("start the demo"); err != nil {
		return err
	}

	pwd, err := c.PromptDefault("Enter a password to hash", "hunter2")
	if err != nil {
		return err
	}

	c.Label("Round 1 — The Fast Way  (plain SHA-256)")
	c.Info("One pass over the input and done.")
	if err := c.Pause("compute the fast hash"); err != nil {
		return err
	}

	start := time.Now()
	fast := digest.SHA256Hex([]byte(pwd))
	elapsedFast := time.Since(start)

	c.Println()
	c.Printf("    Password : %s\n", render.Bold.Render(pwd))
	c.Printf("    Hash     : %s\n", render.Accent.Render(fast))
	c.Printf("    Time     : %s\n", render.BadBold.Render("< 0.001 seconds  ⚡"))
	c.Println()
	c.Bad("At this speed a single modern GPU tries roughly")
	c.Bad("10 billion SHA-256 guesses per second.")
	if err := c.Pause("see the slow way"); err != nil {
		return err
	}

	c.Label(fmt.Sprintf("Round 2 — The Slow Way  (PBKDF2, ×%s iterations)", humanCount(pbkdf2Iterations)))
	c.Info("PBKDF2 feeds the hash back into itself hundreds of")
	c.Info("thousands of times and mixes in a random salt.")
	if err := c.Pause("compute the slow hash  (watch the progress bar)"); err != nil {
		return err
	}

	salt, err := digest.Salt(passwordSaltLen)
	if err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}

	start = time.Now()
	slow := digest.PBKDF2Hex([]byte(pwd), salt, pbkdf2Iterations)
	elapsedSlow := time.Since(start)

	c.Println()
	replay := elapsedSlow
	if !c.Interactive() {
		replay = 0
	}
	render.ProgressBar(c.Out(), render.Good, "Hashing", replay, progressPoll)

	c.Println()
	c.Printf("    Password : %s\n", render.Bold.Render(pwd))
	c.Printf("    Salt     : %s\n", render.Dim.Render(hex.EncodeToString(salt)))
	c.Printf("    Hash     : %s\n", render.Good.Render(slow))
	c.Printf("    Time     : %s\n", render.GoodBold.Render(fmt.Sprintf("%.2f seconds  🐢", elapsedSlow.Seconds())))

	c.Label("Side by Side")
	c.Println(render.Box(render.Accent,
		text.Plain(compareRow("", "FAST (SHA-256)", "SLOW (PBKDF2)")),
		text.Plain(compareRow("Speed", "< 0.001 s", fmt.Sprintf("%.2f s", elapsedSlow.Seconds()))),
		text.Plain(compareRow("Iterations", "1", humanCount(pbkdf2Iterations))),
		text.Plain(compareRow("Has Salt", "No", "Yes")),
		text.Plain(compareRow("Attacker cost", "Trivial", "Enormous")),
		text.Plain(compareRow("Good for", "Files, data", "Passwords")),
	))

	ratio := elapsedSlow.Seconds() / max(elapsedFast.Seconds(), 1e-7)
	years := elapsedSlow.Seconds() * 1e9 / 3.154e7
	c.Takeaway(fmt.Sprintf(`
		The slow hash cost this machine about %s× more work per guess.
		A billion guesses that fly past in seconds against plain
		SHA-256 would take roughly %.0f years against PBKDF2.
		For stored passwords, slow is not a flaw. Slow is the point.
	`, humanCount(int(ratio)), years))
	return c.Pause("return to the menu")
}

func compareRow(label, fast, slow string) string {
	return fmt.Sprintf("  %14s%22s  %22s  ", label, fast, slow)
}
