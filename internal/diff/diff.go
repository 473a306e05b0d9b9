// Package diff compares two symbol sequences position by position and
// reports which positions match. It knows nothing about color or
// layout; rendering the result is someone else's job.
package diff

// Result is the outcome of comparing two sequences. Match holds one
// entry per shared position, first position first. Mismatches counts
// the differing shared positions plus any excess length; Total is the
// length of the longer input.
type Result struct {
	Match      []bool
	Mismatches int
	Total      int
}

// Characters compares two strings symbol by symbol. The inputs may
// differ in length: Match covers only the shared prefix, and the
// excess length counts as extra mismatches with no Match entries.
func Characters(a, b string) Result {
	return compare(a, b)
}

// HexDigits compares two hex digests digit by digit. Digests of one
// fixed-size hash always share a length.
func HexDigits(a, b string) Result {
	return compare(a, b)
}

// Bits compares two bit strings bit by bit.
func Bits(a, b string) Result {
	return compare(a, b)
}

func compare(a, b string) Result {
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))
	res := Result{
		Match: make([]bool, n),
		Total: max(len(ra), len(rb)),
	}
	for i := 0; i < n; i++ {
		if ra[i] == rb[i] {
			res.Match[i] = true
		} else {
			res.Mismatches++
		}
	}
	res.Mismatches += res.Total - n
	return res
}
