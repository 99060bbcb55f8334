package poker

import "pokersim/pkg/deck"

type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	if s[i].Rank != s[j].Rank {
		return s[i].Rank < s[j].Rank
	}

	// keep equal ranks in a stable suit order so analyzers report the same cards
	return s[i].Suit > s[j].Suit
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
