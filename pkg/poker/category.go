package poker

import "fmt"

// Category is a poker hand category, i.e., royal flush
type Category int

// Constants for category
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// tierSize is the distance between two category base scores
// No payload reaches it; the largest is an ace-high high card, below 600k.
const tierSize = 1000000

// Categories lists every category from weakest to strongest
var Categories = []Category{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Base returns the score offset of the category
func (c Category) Base() int {
	return int(c) * tierSize
}

// CategoryOf returns the category a score belongs to
func CategoryOf(score int) Category {
	c := Category(score / tierSize)
	if c < HighCard {
		return HighCard
	}

	if c > RoyalFlush {
		return RoyalFlush
	}

	return c
}
