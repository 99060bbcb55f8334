package deck

// universe is the fixed 52-card table, indexed by Card.Index()
var universe [52]Card

func init() {
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			c := Card{Rank: rank, Suit: suit}
			universe[c.Index()] = c
		}
	}
}

// All returns the 52 cards of a standard deck in table order
func All() Hand {
	cards := make(Hand, len(universe))
	copy(cards, universe[:])
	return cards
}

// FromIndex returns the card stored at the given table index
func FromIndex(i int) (Card, bool) {
	if i < 0 || i >= len(universe) {
		return Card{}, false
	}

	return universe[i], true
}
