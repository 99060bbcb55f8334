package poker

import (
	"pokersim/pkg/deck"
)

// BestHand scores every five-card combination of cards and returns the strongest
// When several combinations share the best score, the first one in index order is returned.
func BestHand(cards deck.Hand) (*ScoredHand, error) {
	if len(cards) < HandSize {
		return nil, &CardCountError{Err: ErrInsufficientCards, Want: HandSize, Got: len(cards), AtLeast: true}
	}

	if err := validateCards(cards); err != nil {
		return nil, err
	}

	var best *HandAnalyzer
	hand := make(deck.Hand, HandSize)
	forEachCombination(len(cards), HandSize, func(indexes []int) {
		for i, idx := range indexes {
			hand[i] = cards[idx]
		}

		h := newHandAnalyzer(hand)
		if best == nil || h.GetScore() > best.GetScore() {
			best = h
		}
	})

	return &ScoredHand{
		Cards: best.GetCards(),
		Score: best.GetScore(),
	}, nil
}

// forEachCombination calls fn with every k-sized combination of the indexes 0..n-1 in lexicographic order
// The slice passed to fn is reused between calls.
func forEachCombination(n, k int, fn func(indexes []int)) {
	if k > n || k <= 0 {
		return
	}

	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		fn(indexes)

		// find the right-most index that can still move forward
		i := k - 1
		for i >= 0 && indexes[i] == i+n-k {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}
