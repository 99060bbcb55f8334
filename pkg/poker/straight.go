package poker

import "pokersim/pkg/deck"

// used to keep track of the straight progress
type straightTracker struct {
	startRank deck.Rank
	prevRank  deck.Rank
	streak    int
}

// checkStraight will check for a straight
// Cards must be fed from the highest rank down. If one has been found, then the
// highest card in the straight will be assigned to "val"
func (st *straightTracker) checkStraight(card deck.Card, aceValue deck.Rank, val *deck.Rank) {
	cardRank := card.Rank
	if card.Rank == deck.Ace && aceValue == deck.LowAce {
		cardRank = deck.LowAce
	}

	inStraight := false
	if cardRank+1 == st.prevRank {
		inStraight = true
		st.streak++
	} else if cardRank == st.prevRank {
		inStraight = true
	}

	if st.streak >= HandSize {
		*val = st.startRank
	}

	if !inStraight {
		st.streak = 1
		st.startRank = cardRank
	}

	st.prevRank = cardRank
}
