package poker

import (
	"sort"
)

type tier struct {
	strength int
	hands    []*ScoredHand
}

// WinManager groups scored hands into tiers of equal strength
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddHand places the hand in the tier matching its score
// Hands within a tier keep the order they were added in.
func (w WinManager) AddHand(hand *ScoredHand) {
	t, ok := w[hand.Score]
	if !ok {
		t = &tier{
			strength: hand.Score,
			hands:    make([]*ScoredHand, 0, 1),
		}
	}

	t.hands = append(t.hands, hand)
	w[hand.Score] = t
}

// GetSortedTiers returns the tiers, strongest first
func (w WinManager) GetSortedTiers() [][]*ScoredHand {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredHands := make([][]*ScoredHand, len(tiers))
	for i, t := range tiers {
		tieredHands[i] = t.hands
	}

	return tieredHands
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
