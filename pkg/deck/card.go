package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidSuit is returned when a card is built with an unknown suit
var ErrInvalidSuit = errors.New("invalid suit")

// ErrInvalidRank is returned when a card is built with a rank outside of 2–14
var ErrInvalidRank = errors.New("invalid rank")

// Suit represents a card suit
type Suit int

// suit constants
const (
	Spades Suit = iota
	Clubs
	Hearts
	Diamonds
)

// Suits lists every suit in table order
var Suits = []Suit{Spades, Clubs, Hearts, Diamonds}

// Valid returns true if the suit is one of the four known suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Diamonds
}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		panic(fmt.Sprintf("unknown suit: %d", int(s)))
	}
}

// Name returns the long name of the suit, i.e., "spades"
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Clubs:
		return "clubs"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	default:
		panic(fmt.Sprintf("unknown suit: %d", int(s)))
	}
}

func (s Suit) letter() string {
	switch s {
	case Spades:
		return "s"
	case Clubs:
		return "c"
	case Hearts:
		return "h"
	default:
		return "d"
	}
}

// Rank is the value of a card, 2 through 14
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace

	HighAce = Ace
	// LowAce is the value of an ace when it plays as the bottom of a wheel (A-2-3-4-5)
	LowAce Rank = 1
)

// Valid returns true if the rank is between Two and Ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the short rank, i.e., "T" or "7"
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

var rankNames = [...]string{"two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "jack", "queen", "king", "ace"}

// Name returns the long rank name, i.e., "queen"
func (r Rank) Name() string {
	if !r.Valid() {
		panic(fmt.Sprintf("unknown rank: %d", int(r)))
	}

	return rankNames[r-Two]
}

// Format determines how a card is rendered for display
type Format int

// format constants
const (
	FormatShort Format = iota // A♠
	FormatLong                // ace of spades
)

// Card is an individual playing card
// Cards are values; two cards are equal if their rank and suit match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card after validating the suit and rank
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, int(suit))
	}

	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, int(rank))
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// Index returns the position of the card in the 52-card table (suit*13 + rank offset)
func (c Card) Index() int {
	return int(c.Suit)*13 + int(c.Rank-Two)
}

// Less orders cards by rank only
func (c Card) Less(other Card) bool {
	return c.Rank < other.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() Rank {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

func (c Card) String() string {
	return c.Format(FormatShort)
}

// Format renders the card in the requested display format
func (c Card) Format(f Format) string {
	if f == FormatLong {
		return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
	}

	return c.Rank.String() + c.Suit.String()
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[tjqka])([cdhs])\z`)

// ParseCard parses a card in the format of <rank><suit>
// Rank is 2–14 or one of T, J, Q, K, A and suit is one of c, d, h, s.
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	var rank Rank
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("could not parse card %q: %w", s, err)
		}
		rank = Rank(n)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return NewCard(suit, rank)
}

// ParseCards parses a slice of card strings
func ParseCards(s []string) (Hand, error) {
	cards := make(Hand, len(s))
	for i, str := range s {
		card, err := ParseCard(str)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString returns a Card from the string.
// It panics if the card cannot be parsed, so it is meant for literals and tests.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will returns a slice of cards from a comma separated list
func CardsFromString(s string) Hand {
	if s == "" {
		return Hand{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	return fmt.Sprintf("%d%s", int(card.Rank), card.Suit.letter())
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
