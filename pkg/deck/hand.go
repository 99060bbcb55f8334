package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if h[i].Suit != h[j].Suit {
		return h[i].Suit < h[j].Suit
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// HasDuplicates returns true if any card appears more than once
func (h Hand) HasDuplicates() bool {
	var seen [52]bool
	for _, c := range h {
		i := c.Index()
		if i < 0 || i >= len(seen) {
			continue
		}

		if seen[i] {
			return true
		}
		seen[i] = true
	}

	return false
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Format renders every card in the requested format, separated by commas
func (h Hand) Format(f Format) string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.Format(f)
	}

	return strings.Join(s, ",")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
