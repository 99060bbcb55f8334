package poker

import (
	"fmt"

	"pokersim/pkg/deck"
)

// ScoredHand is the best five cards a player can make
type ScoredHand struct {
	// Seat is the player's position at the table, zero when scored outside of a table
	Seat int `json:"seat"`

	// Hole are the player's private cards, kept for reporting
	Hole deck.Hand `json:"hole,omitempty"`

	// Cards are the five cards selected, highest rank first
	Cards deck.Hand `json:"cards"`
	Score int       `json:"score"`
}

// Category returns the category of the selected cards
func (s *ScoredHand) Category() Category {
	return CategoryOf(s.Score)
}

func (s *ScoredHand) String() string {
	return fmt.Sprintf("%s (%s)", s.Cards.Format(deck.FormatShort), s.Category())
}
