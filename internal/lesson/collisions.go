package lesson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/WanderingAstronomer/Hashing/internal/console"
	"github.com/WanderingAstronomer/Hashing/internal/digest"
	"github.com/WanderingAstronomer/Hashing/internal/render"
)

const collisionBuckets = 5

// Collisions is the second lesson: force two words into one bucket and
// learn why that was inevitable.
func Collisions() Lesson {
	return Lesson{
		ID:       "collisions",
		Title:    "Collision Challenge",
		Subtitle: "Force two words into the same bucket and learn why it always works",
		Run:      runCollisions,
	}
}

func runCollisions(c *console.Console) error {
	c.Header("Lesson 2 — Collision Challenge")
	c.Setup(`
		Now the hash has only 5 buckets, and you are the attacker.
		The pigeonhole principle promises that with more words than
		buckets, two of them must eventually share a slot.
		Your challenge: cause a collision in as few words as you can.
	`)
	if err := c.Pause("start the challenge"); err != nil {
		return err
	}

	buckets := make([][]string, collisionBuckets)
	attempts := 0
	for {
		c.Header("Lesson 2 — Collision Challenge")
		c.Printf("    %s\n\n", render.Dim.Render(fmt.Sprintf("Buckets: %d   │   Words entered: %d", collisionBuckets, attempts)))
		c.Println(render.Table(bucketRows(buckets, -1, false), bucketIndexWidth, bucketContentWidth))
		c.Println()

		word, err := c.Prompt("Enter a word  (q = back to menu)")
		if err != nil {
			return err
		}
		if word == "" || strings.EqualFold(word, "q") {
			return ErrAbandoned
		}

		attempts++
		sum := digest.ToySum(word)
		idx := digest.Toy(word, collisionBuckets)
		c.Printf("\n    hash('%s') = %d mod %d = %s\n", word, sum, collisionBuckets, render.Bold.Render(strconv.Itoa(idx)))

		if len(buckets[idx]) > 0 {
			c.Bad(fmt.Sprintf("COLLISION in bucket %d!  '%s' crashed into %s.", idx, word, strings.Join(buckets[idx], ", ")))
			buckets[idx] = append(buckets[idx], word)
			c.Println()
			c.Println(render.Table(bucketRows(buckets, idx, true), bucketIndexWidth, bucketContentWidth))
			c.Takeaway(fmt.Sprintf(`
				It took %d word(s) to cause a collision. With 5 buckets it
				was never going to take long: the pigeonhole principle made
				it certain, and the birthday paradox made it fast. Roughly
				the square root of the bucket count is all the attempts a
				collision needs on average.
				Real hash functions fight back with scale alone. SHA-256 has
				2^256 outputs, so nobody has ever found two inputs that
				share one.
			`, attempts))
			return c.Pause("return to the menu")
		}

		c.Good(fmt.Sprintf("No collision yet. '%s' settled into bucket %d.", word, idx))
		buckets[idx] = append(buckets[idx], word)
		if err := c.Pause("try another word"); err != nil {
			return err
		}
	}
}
