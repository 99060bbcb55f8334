package simulation

import (
	"fmt"

	"pokersim/pkg/deck"
	"pokersim/pkg/poker"
)

// Trial is the outcome of one simulated hand
type Trial struct {
	Index    int                 `json:"index"`
	Seed     int64               `json:"seed"`
	DeckHash string              `json:"deckHash"`
	Deal     *Deal               `json:"deal"`
	Winners  []*poker.ScoredHand `json:"winners"`

	// Ranking holds every player's best hand, strongest tier first
	Ranking [][]*poker.ScoredHand `json:"-"`
}

// IsSplitPot returns true if more than one player won
func (t *Trial) IsSplitPot() bool {
	return len(t.Winners) > 1
}

// RunTrial shuffles a fresh deck with seed, deals and resolves the showdown
func RunTrial(index int, seed int64, players int) (*Trial, error) {
	d := deck.New()
	d.Shuffle(seed)
	hash := d.HashCode()

	deal, err := DealHoldem(d, players)
	if err != nil {
		return nil, fmt.Errorf("trial %d: %w", index, err)
	}

	ranking, err := poker.Rank(deal.Holes, deal.Community)
	if err != nil {
		return nil, fmt.Errorf("trial %d: %w", index, err)
	}

	return &Trial{
		Index:    index,
		Seed:     seed,
		DeckHash: hash,
		Deal:     deal,
		Winners:  ranking[0],
		Ranking:  ranking,
	}, nil
}
