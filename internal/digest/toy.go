package digest

// ToySum is the raw codepoint sum the toy hash reduces.
func ToySum(text string) int {
	sum := 0
	for _, r := range text {
		sum += int(r)
	}
	return sum
}

// Toy maps text into one of buckets slots: sum every character's
// codepoint, keep the remainder. Fewer than one bucket collapses to
// slot 0.
//
//	Toy("Cat", 8)
//	→ 67 + 97 + 116 = 280
//	→ 280 % 8 = 0
func Toy(text string, buckets int) int {
	if buckets < 1 {
		return 0
	}
	return ToySum(text) % buckets
}
