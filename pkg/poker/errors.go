package poker

import (
	"errors"
	"fmt"
)

// ErrMalformedHand is returned when a hand to score does not have exactly five cards
var ErrMalformedHand = errors.New("malformed hand")

// ErrInsufficientCards is returned when fewer than five cards are available to build a hand
var ErrInsufficientCards = errors.New("insufficient cards")

// ErrDuplicateCard is returned when the same card appears twice in one set of cards
var ErrDuplicateCard = errors.New("duplicate card")

// ErrNoPlayers is returned when winners are requested for an empty table
var ErrNoPlayers = errors.New("no players")

// CardCountError is an error on the number of cards supplied
type CardCountError struct {
	Err     error
	Want    int
	Got     int
	AtLeast bool
}

func (c *CardCountError) Error() string {
	if c.AtLeast {
		return fmt.Sprintf("%v: expected at least %d cards, got %d", c.Err, c.Want, c.Got)
	}

	return fmt.Sprintf("%v: expected %d cards, got %d", c.Err, c.Want, c.Got)
}

// Unwrap returns the sentinel error
func (c *CardCountError) Unwrap() error {
	return c.Err
}
