package poker

import (
	"fmt"
	"sort"

	"pokersim/pkg/deck"
)

// HandSize is the number of cards in a scored poker hand
const HandSize = 5

// weight is the positional base used to encode ranks inside a category
const weight = 14

// HandAnalyzer can analyze a five-card hand
type HandAnalyzer struct {
	cards    deck.Hand
	quads    []deck.Rank
	trips    []deck.Rank
	pairs    []deck.Rank
	singles  []deck.Rank
	flush    bool
	straight deck.Rank

	category Category
	score    int
}

// NewHandAnalyzer validates the hand and returns a new HandAnalyzer instance
// The hand must contain exactly five distinct, valid cards.
func NewHandAnalyzer(hand deck.Hand) (*HandAnalyzer, error) {
	if len(hand) != HandSize {
		return nil, &CardCountError{Err: ErrMalformedHand, Want: HandSize, Got: len(hand)}
	}

	if err := validateCards(hand); err != nil {
		return nil, err
	}

	return newHandAnalyzer(hand), nil
}

// newHandAnalyzer skips validation; callers must pass five valid, distinct cards
func newHandAnalyzer(hand deck.Hand) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := hand.Clone()
	sort.Sort(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{
		cards: sortedCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

func validateCards(cards deck.Hand) error {
	for _, c := range cards {
		if !c.Suit.Valid() {
			return fmt.Errorf("%w: %d", deck.ErrInvalidSuit, int(c.Suit))
		}

		if !c.Rank.Valid() {
			return fmt.Errorf("%w: %d", deck.ErrInvalidRank, int(c.Rank))
		}
	}

	if cards.HasDuplicates() {
		return fmt.Errorf("%w in %s", ErrDuplicateCard, cards.String())
	}

	return nil
}

// analyzeHand will loop through the hand and record the rank groups, the flush and the straight
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.flush = true
	sTracker := straightTracker{}

	nCards := len(h.cards)
	numOfRank := 1
	for i, card := range h.cards {
		if card.Suit != h.cards[0].Suit {
			h.flush = false
		}

		if h.straight == 0 {
			sTracker.checkStraight(card, deck.HighAce, &h.straight)
		}

		// a group of equal ranks ends when the next card differs or we run out of cards
		if i+1 < nCards && h.cards[i+1].Rank == card.Rank {
			numOfRank++
			continue
		}

		switch numOfRank {
		case 4:
			h.quads = append(h.quads, card.Rank)
		case 3:
			h.trips = append(h.trips, card.Rank)
		case 2:
			h.pairs = append(h.pairs, card.Rank)
		default:
			h.singles = append(h.singles, card.Rank)
		}

		numOfRank = 1
	}

	// check for a wheel with a low-ace
	for _, card := range h.cards {
		if card.Rank != deck.Ace || h.straight != 0 {
			break
		}

		sTracker.checkStraight(card, deck.LowAce, &h.straight)
	}
}

// GetCards returns the analyzed cards, highest rank first
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.cards.Clone()
}

// GetCategory will return the category of the hand
func (h *HandAnalyzer) GetCategory() Category {
	return h.category
}

// GetScore returns the score of the hand
// A higher score is a stronger hand and equal scores tie.
func (h *HandAnalyzer) GetScore() int {
	return h.score
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	sf, ok := h.GetStraightFlush()
	return ok && sf == deck.Ace
}

// GetStraightFlush will return the high card of the straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (deck.Rank, bool) {
	if h.flush && h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the four of a kind and its kicker, if possible
func (h *HandAnalyzer) GetFourOfAKind() ([]deck.Rank, bool) {
	if len(h.quads) > 0 {
		return append([]deck.Rank{h.quads[0]}, h.singles...), true
	}

	return nil, false
}

// GetFullHouse will return the trips and the pair, if possible
func (h *HandAnalyzer) GetFullHouse() ([]deck.Rank, bool) {
	if len(h.trips) > 0 && len(h.pairs) > 0 {
		return []deck.Rank{h.trips[0], h.pairs[0]}, true
	}

	return nil, false
}

// GetFlush will return the ranks of the flush, if possible
func (h *HandAnalyzer) GetFlush() ([]deck.Rank, bool) {
	if h.flush {
		return h.ranks(), true
	}

	return nil, false
}

// GetStraight will return the high card of the straight, if possible
// The wheel (A-2-3-4-5) is a five-high straight.
func (h *HandAnalyzer) GetStraight() (deck.Rank, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the trips followed by the kickers, if possible
func (h *HandAnalyzer) GetThreeOfAKind() ([]deck.Rank, bool) {
	if len(h.trips) > 0 && len(h.pairs) == 0 {
		return append([]deck.Rank{h.trips[0]}, h.singles...), true
	}

	return nil, false
}

// GetTwoPair will return the high pair, the low pair and the kicker, if possible
func (h *HandAnalyzer) GetTwoPair() ([]deck.Rank, bool) {
	if len(h.pairs) >= 2 {
		return append([]deck.Rank{h.pairs[0], h.pairs[1]}, h.singles...), true
	}

	return nil, false
}

// GetPair will return the pair followed by the kickers, if possible
func (h *HandAnalyzer) GetPair() ([]deck.Rank, bool) {
	if len(h.pairs) == 1 && len(h.trips) == 0 {
		return append([]deck.Rank{h.pairs[0]}, h.singles...), true
	}

	return nil, false
}

// GetHighCard will return every rank, highest first
func (h *HandAnalyzer) GetHighCard() ([]deck.Rank, bool) {
	return h.ranks(), true
}

func (h *HandAnalyzer) ranks() []deck.Rank {
	ranks := make([]deck.Rank, len(h.cards))
	for i, c := range h.cards {
		ranks[i] = c.Rank
	}

	return ranks
}

// encode packs ranks into one integer, most significant first
func encode(ranks ...deck.Rank) int {
	v := 0
	for _, r := range ranks {
		v = v*weight + int(r)
	}

	return v
}

// pairScore scores the hand from its rank groups alone
func (h *HandAnalyzer) pairScore() (Category, int) {
	if r, ok := h.GetFourOfAKind(); ok {
		return FourOfAKind, FourOfAKind.Base() + encode(r...)
	} else if r, ok := h.GetFullHouse(); ok {
		return FullHouse, FullHouse.Base() + encode(r...)
	} else if r, ok := h.GetThreeOfAKind(); ok {
		return ThreeOfAKind, ThreeOfAKind.Base() + encode(r...)
	} else if r, ok := h.GetTwoPair(); ok {
		return TwoPair, TwoPair.Base() + encode(r...)
	} else if r, ok := h.GetPair(); ok {
		return OnePair, OnePair.Base() + encode(r...)
	}

	r, _ := h.GetHighCard()
	return HighCard, HighCard.Base() + encode(r...)
}

// calculateHand will determine the category and score
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	h.category, h.score = h.pairScore()

	if sf, ok := h.GetStraightFlush(); ok {
		if h.GetRoyalFlush() {
			h.category, h.score = RoyalFlush, RoyalFlush.Base()
		} else {
			h.category, h.score = StraightFlush, StraightFlush.Base()+int(sf)
		}

		return
	}

	if f, ok := h.GetFlush(); ok {
		if s := Flush.Base() + encode(f...); s > h.score {
			h.category, h.score = Flush, s
		}
	} else if high, ok := h.GetStraight(); ok {
		if s := Straight.Base() + int(high); s > h.score {
			h.category, h.score = Straight, s
		}
	}
}
