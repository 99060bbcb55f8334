package poker

import (
	"fmt"

	"pokersim/pkg/deck"
)

// ResolveWinners returns the best hand of every player tied for the strongest hand at the table
// Each player's hole cards are combined with the community cards. Winners are in seat order.
func ResolveWinners(players []deck.Hand, community deck.Hand) ([]*ScoredHand, error) {
	tiers, err := Rank(players, community)
	if err != nil {
		return nil, err
	}

	return tiers[0], nil
}

// Rank returns every player's best hand grouped into tiers of equal strength, strongest first
func Rank(players []deck.Hand, community deck.Hand) ([][]*ScoredHand, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	wm := NewWinManager()
	for seat, hole := range players {
		sh, err := bestHandForSeat(seat, hole, community)
		if err != nil {
			return nil, err
		}

		wm.AddHand(sh)
	}

	return wm.GetSortedTiers(), nil
}

func bestHandForSeat(seat int, hole, community deck.Hand) (*ScoredHand, error) {
	cards := make(deck.Hand, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)

	sh, err := BestHand(cards)
	if err != nil {
		return nil, fmt.Errorf("seat %d: %w", seat, err)
	}

	sh.Seat = seat
	sh.Hole = hole.Clone()
	return sh, nil
}
