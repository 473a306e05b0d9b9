package lesson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/WanderingAstronomer/Hashing/internal/console"
	"github.com/WanderingAstronomer/Hashing/internal/digest"
	"github.com/WanderingAstronomer/Hashing/internal/render"
)

const toyBuckets = 8

// ToyHash is the opening lesson: a sum-and-modulo hash small enough to
// compute by hand.
func ToyHash() Lesson {
	return Lesson{
		ID:       "toy-hash",
		Title:    "Toy Hash Mapping",
		Subtitle: "See how text maps to numbered buckets and discover collisions",
		Run:      runToyHash,
	}
}

func runToyHash(c *console.Console) error {
	buckets := make([][]string, toyBuckets)

	c.Header("Lesson 1 — Toy Hash Mapping")
	c.Setup(`
		A hash function is a machine: data goes in, a fixed-size number comes out.
		Ours is the simplest one possible: add up the character codes,
		then keep the remainder after dividing by 8.
		Every word you type lands in one of eight buckets.
	`)
	if err := c.Pause("start the demo"); err != nil {
		return err
	}

	lastIdx, lastCollided := -1, false
	for {
		c.Header("Lesson 1 — Toy Hash Mapping")
		c.Println(render.Table(bucketRows(buckets, lastIdx, lastCollided), bucketIndexWidth, bucketContentWidth))
		c.Println()

		word, err := c.Prompt("Type a word to hash  (q = back to menu)")
		if err != nil {
			return err
		}
		if word == "" || strings.EqualFold(word, "q") {
			break
		}

		parts := make([]string, 0, len(word))
		sum := 0
		for _, r := range word {
			sum += int(r)
			parts = append(parts, fmt.Sprintf("'%c'=%d", r, r))
		}

		c.Label("Step 1 — Convert each character to its code")
		c.Info("Every character has a number: 'A' = 65, 'a' = 97, '0' = 48.")
		c.Printf("    %s\n", strings.Join(parts, " + "))
		c.Printf("    Sum = %s\n", render.Bold.Render(strconv.Itoa(sum)))

		idx := digest.Toy(word, toyBuckets)
		c.Label(fmt.Sprintf("Step 2 — Modulo  (fit the sum into %d buckets)", toyBuckets))
		c.Info("Modulo divides and keeps only the remainder, so the result")
		c.Info(fmt.Sprintf("is always a bucket number from 0 to %d.", toyBuckets-1))
		c.Printf("    %d %% %d = %s\n", sum, toyBuckets, render.AccentBold.Render(strconv.Itoa(idx)))

		collided := len(buckets[idx]) > 0
		if collided {
			c.Label("Result — COLLISION!")
			c.Bad(fmt.Sprintf("Bucket %d already holds: %s", idx, strings.Join(buckets[idx], ", ")))
			c.Info(fmt.Sprintf("'%s' lands in the same slot. Two different inputs,", word))
			c.Info("one bucket. That is a hash collision, and with only")
			c.Info("8 buckets they happen fast.")
		} else {
			c.Label("Result")
			c.Good(fmt.Sprintf("Bucket %d is empty. '%s' goes in.", idx, word))
		}
		buckets[idx] = append(buckets[idx], word)
		lastIdx, lastCollided = idx, collided

		if err := c.Pause("hash another word"); err != nil {
			return err
		}
	}

	c.Takeaway(`
		A hash function turns any input into a fixed-range number.
		The same input always produces the same number, and different
		inputs sometimes share one. Real hash functions work exactly
		like this toy, except the range is astronomically larger:
		SHA-256 has 2^256 possible outputs instead of 8.
	`)
	return c.Pause("return to the menu")
}
