package lesson

import (
	"fmt"

	"github.com/WanderingAstronomer/Hashing/internal/console"
	"github.com/WanderingAstronomer/Hashing/internal/diff"
	"github.com/WanderingAstronomer/Hashing/internal/digest"
	"github.com/WanderingAstronomer/Hashing/internal/render"
)

// shownBits caps the binary view at its first 64 positions; the flip
// counts always cover all 256.
const shownBits = 64

// Avalanche is the third lesson: one changed character scrambles the
// whole digest.
func Avalanche() Lesson {
	return Lesson{
		ID:       "avalanche",
		Title:    "Avalanche Effect",
		Subtitle: "Change one character and watch the entire output scramble",
		Run:      runAvalanche,
	}
}

func runAvalanche(c *console.Console) error {
	c.Header("Lesson 3 — The Avalanche Effect")
	c.Setup(`
		A good hash function is paranoid: change the input by one
		character and the output should look completely unrelated.
		We will hash two nearly identical strings with SHA-256 and
		compare the results character by character, then bit by bit.
	`)
	if err := c.Pause("start the demo"); err != nil {
		return err
	}

	inA, err := c.PromptDefault("String 1", "password")
	if err != nil {
		return err
	}
	inB, err := c.PromptDefault("String 2", "passwore")
	if err != nil {
		return err
	}

	hexA := digest.SHA256Hex([]byte(inA))
	hexB := digest.SHA256Hex([]byte(inB))
	bitsA, err := digest.Bits(hexA)
	if err != nil {
		return fmt.Errorf("expanding digest: %w", err)
	}
	bitsB, err := digest.Bits(hexB)
	if err != nil {
		return fmt.Errorf("expanding digest: %w", err)
	}

	c.Label("The Inputs")
	chars := diff.Characters(inA, inB)
	lineA, lineB, markers := render.DiffView{}.Lines(inA, inB, chars)
	c.Printf("    A: %s\n", lineA)
	c.Printf("    B: %s\n", lineB)
	c.Printf("       %s\n", markers)
	c.Println()
	c.Info(fmt.Sprintf("The inputs differ by %d character(s).", chars.Mismatches))
	c.Info("Each '^' marks a position that changed.")
	if err := c.Pause("hash both strings"); err != nil {
		return err
	}

	c.Label("SHA-256 Output — Hexadecimal  (64 characters)")
	c.Info("Hex spells numbers with 16 symbols, 0-9 and a-f, so every")
	c.Info("character stands for 4 bits: 64 characters × 4 = 256 bits.")
	c.Println()
	hexd := diff.HexDigits(hexA, hexB)
	lineA, lineB, markers = render.DiffView{}.Lines(hexA, hexB, hexd)
	c.Printf("    A: %s\n", lineA)
	c.Printf("    B: %s\n", lineB)
	c.Printf("       %s\n", markers)
	c.Println()
	hexPct := percent(hexd.Mismatches, hexd.Total)
	c.Info(fmt.Sprintf("%d of %d hex characters are different (%.0f%%).", hexd.Mismatches, hexd.Total, hexPct))
	c.Info("A '·' marks a position that stayed the same, a '^' one that changed.")
	if err := c.Pause("zoom in to the bit level"); err != nil {
		return err
	}

	bits := diff.Bits(bitsA, bitsB)
	c.Label(fmt.Sprintf("Binary View — first %d of %d bits", shownBits, bits.Total))
	c.Info("Bits are the actual 0s and 1s the machine stores,")
	c.Info("grouped here into bytes of 8.")
	c.Println()
	lineA, lineB, markers = render.DiffView{Group: 8, Display: shownBits}.Lines(bitsA, bitsB, bits)
	c.Printf("    A: %s\n", lineA)
	c.Printf("    B: %s\n", lineB)
	c.Printf("       %s\n", markers)
	c.Println()
	bitPct := percent(bits.Mismatches, bits.Total)
	c.Info(fmt.Sprintf("%d of %d total bits flipped (%.0f%%).", bits.Mismatches, bits.Total, bitPct))
	c.Info("The ideal is 50% (128 bits), the signature of thorough mixing.")
	if bitPct > 40 {
		c.Good("That is avalanche at work: SHA-256 is scrambling properly.")
	}

	c.Takeaway(fmt.Sprintf(`
		%d changed character(s) in the input flipped %d of %d output
		bits (%.0f%%). Nothing about the two digests hints that their
		inputs were nearly identical.
		This is why hashes work as fingerprints: the tiniest corruption
		of a file produces a wildly different digest.
	`, chars.Mismatches, bits.Mismatches, bits.Total, bitPct))
	return c.Pause("return to the menu")
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
