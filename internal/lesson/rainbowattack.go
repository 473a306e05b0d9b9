package lesson

import (
	"fmt"

	"github.com/WanderingAstronomer/Hashing/internal/console"
	"github.com/WanderingAstronomer/Hashing/internal/digest"
	"github.com/WanderingAstronomer/Hashing/internal/rainbow"
	"github.com/WanderingAstronomer/Hashing/internal/render"
	"github.com/WanderingAstronomer/Hashing/internal/text"
)

const (
	rainbowShown   = 10
	rainbowSaltLen = 12
)

// Rainbow is the closing lesson: crack an unsalted hash with a
// precomputed table, then watch a salt break the attack.
func Rainbow() Lesson {
	return Lesson{
		ID:       "rainbow",
		Title:    "Rainbow Table Attack",
		Subtitle: "Crack a stolen password instantly, then learn the defense",
		Run:      runRainbow,
	}
}

func runRainbow(c *console.Console) error {
	c.Header("Lesson 5 — Rainbow Table Attack")
	c.Setup(`
		Hashes cannot be reversed, but they can be guessed in advance.
		An attacker hashes millions of popular passwords once, stores
		the results, and from then on cracks any stolen hash with a
		single lookup. Then we will see how a salt ruins the trick.
	`)
	if err := c.Pause("see the rainbow table"); err != nil {
		return err
	}

	table := rainbow.Build(rainbow.CommonPasswords)

	c.Label(fmt.Sprintf("The Attacker's Rainbow Table  (showing %d of %d entries)", rainbowShown, len(rainbow.CommonPasswords)))
	c.Info("Each row pairs a popular password with its SHA-256 hash,")
	c.Info("computed long before any attack.")
	c.Println()
	rows := make([]text.Text, 0, rainbowShown)
	for _, pw := range rainbow.CommonPasswords[:rainbowShown] {
		h := digest.SHA256Hex([]byte(pw))
		rows = append(rows, text.Join(
			text.Plainf("  %-14s %s  ", pw, render.Arrow),
			text.Styled(render.Dim, h[:32]+"…"),
		))
	}
	c.Println(render.Box(render.Bad, rows...))
	c.Println()
	c.Info("Real rainbow tables hold billions of entries, fill terabytes,")
	c.Info("and are freely downloadable.")
	if err := c.Pause("simulate the attack"); err != nil {
		return err
	}

	c.Label("Attack Simulation")
	c.Info("A company stored its passwords as bare SHA-256 hashes,")
	c.Info("and the attacker has stolen the database.")
	c.Println()
	victim, err := c.PromptDefault("Pick a victim password", "dragon")
	if err != nil {
		return err
	}

	stolen := digest.SHA256Hex([]byte(victim))
	c.Printf("\n    Stolen hash : %s\n", render.Accent.Render(stolen))
	c.Printf("    Searching rainbow table")
	c.Dots(3)
	if plain, ok := table.Lookup(stolen); ok {
		c.Printf("\n\n    %s\n", render.BadBold.Render("CRACKED!"))
		c.Printf("    The password is: %s\n", render.BadBold.Render(plain))
		c.Println()
		c.Bad("No brute force, no waiting. One lookup, and every account")
		c.Bad("using this password is compromised.")
	} else {
		c.Printf("\n\n    %s\n", render.Good.Render(fmt.Sprintf("Not in this %d-entry demo table.", len(rainbow.CommonPasswords))))
		c.Info("A real table with billions of entries might still hold it.")
	}
	if err := c.Pause("see how a salt defeats this"); err != nil {
		return err
	}

	c.Label("Defense — Adding a Salt")
	c.Info("A salt is a random value stored next to the hash and mixed")
	c.Info("into it: hash(salt + password). Every user gets their own.")
	c.Println()
	saltA, err := digest.Salt(rainbowSaltLen)
	if err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}
	saltB, err := digest.Salt(rainbowSaltLen)
	if err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}
	hashA := digest.SaltedSHA256Hex(saltA, []byte(victim))
	hashB := digest.SaltedSHA256Hex(saltB, []byte(victim))

	c.Printf("    Password   : %s  (both users)\n", render.Bold.Render(victim))
	c.Printf("    User A     : salt=%x  hash=%s\n", saltA, render.Dim.Render(hashA[:24]+"…"))
	c.Printf("    User B     : salt=%x  hash=%s\n", saltB, render.Dim.Render(hashB[:24]+"…"))
	c.Println()
	c.Info("Same password, completely different hashes.")
	if err := c.Pause("retry the rainbow lookup on the salted hashes"); err != nil {
		return err
	}

	c.Println()
	c.Printf("    Rainbow lookup for User A")
	c.Dots(3)
	lookupVerdict(c, table, hashA)
	c.Printf("    Rainbow lookup for User B")
	c.Dots(3)
	lookupVerdict(c, table, hashB)
	c.Println()
	c.Info("The precomputed table is useless: it would have to be rebuilt")
	c.Info("from scratch for every single salt.")

	c.Takeaway(`
		Unsalted hashes fall to precomputation: hash the popular
		passwords once, crack them everywhere forever.
		A random salt makes every hash unique, so the attacker's
		up-front work buys nothing. A 12-byte salt alone multiplies
		the table an attacker would need by 2^96.
		Salting plus a slow hash is why modern password storage
		survives database leaks.
	`)
	return c.Pause("return to the menu")
}

func lookupVerdict(c *console.Console, table rainbow.Table, saltedHash string) {
	if _, ok := table.Lookup(saltedHash); !ok {
		c.Printf(" %s\n", render.GoodBold.Render("NOT FOUND ✓"))
		return
	}
	c.Printf(" %s\n", render.BadBold.Render("FOUND"))
}
