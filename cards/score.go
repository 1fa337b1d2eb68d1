package cards

// HandTotal sums the scoring values of a hand. Jokers contribute nothing;
// a hand containing one settles on the joker rule, not the total.
func HandTotal(hand []Card) int {
	total := 0
	for _, c := range hand {
		total += c.Value()
	}
	return total
}

// HasJoker returns true if any card in the hand is a joker
func HasJoker(hand []Card) bool {
	for _, c := range hand {
		if c.IsJoker() {
			return true
		}
	}
	return false
}
