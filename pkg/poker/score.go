package poker

import "pokersim/pkg/deck"

// Score returns the strength of exactly five cards
// Scores are comparable across categories: a higher score beats a lower one and equal scores tie.
func Score(hand deck.Hand) (int, error) {
	h, err := NewHandAnalyzer(hand)
	if err != nil {
		return 0, err
	}

	return h.GetScore(), nil
}
