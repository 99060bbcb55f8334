package simulation

import (
	"pokersim/pkg/deck"
)

// Deal is one hand of Texas hold'em dealt to showdown
type Deal struct {
	Holes     []deck.Hand `json:"holes"`
	Community deck.Hand   `json:"community"`
	Burned    deck.Hand   `json:"burned"`
}

// DealHoldem deals two hole cards to every player, one at a time in seat order,
// then burns and deals the flop, burns and deals the turn, burns and deals the river
func DealHoldem(d *deck.Deck, players int) (*Deal, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, PlayerCountError{Min: MinPlayers, Max: MaxPlayers, Got: players}
	}

	deal := &Deal{
		Holes:     make([]deck.Hand, players),
		Community: make(deck.Hand, 0, 5),
		Burned:    make(deck.Hand, 0, 3),
	}

	for i := 0; i < 2; i++ {
		for seat := range deal.Holes {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}

			deal.Holes[seat].AddCard(card)
		}
	}

	// flop, turn, river
	for _, n := range []int{3, 1, 1} {
		burn, err := d.Draw()
		if err != nil {
			return nil, err
		}
		deal.Burned.AddCard(burn)

		cards, err := d.DrawN(n)
		if err != nil {
			return nil, err
		}
		deal.Community = append(deal.Community, cards...)
	}

	return deal, nil
}
