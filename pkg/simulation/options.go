package simulation

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// MinPlayers and MaxPlayers bound the table size
// Two hole cards each, three burns and five community cards must fit in one deck.
const (
	MinPlayers = 2
	MaxPlayers = 22
)

// ErrNoTrials is returned when a simulation is asked to run zero trials
var ErrNoTrials = errors.New("trials must be greater than zero")

// ErrSeedOutOfRange is returned when the seed is negative or when seed+trial would overflow
var ErrSeedOutOfRange = errors.New("seed out of range")

// PlayerCountError is an error on the number of players at the table
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}

// Options configures a simulation run
type Options struct {
	Players int   // Default: 9
	Trials  int   // Default: 1000
	Workers int   // Default: GOMAXPROCS
	Seed    int64 // 0 draws a random seed for every trial
}

// DefaultOptions returns the default options for a simulation
func DefaultOptions() Options {
	return Options{
		Players: 9,
		Trials:  1000,
		Workers: runtime.GOMAXPROCS(0),
		Seed:    0,
	}
}

// Validate checks the options can be run
func (o Options) Validate() error {
	if o.Players < MinPlayers || o.Players > MaxPlayers {
		return PlayerCountError{Min: MinPlayers, Max: MaxPlayers, Got: o.Players}
	}

	if o.Trials <= 0 {
		return ErrNoTrials
	}

	// every trial is shuffled with Seed+index
	if o.Seed < 0 || o.Seed > math.MaxInt64-int64(o.Trials-1) {
		return fmt.Errorf("%w: must be between 0 and %d", ErrSeedOutOfRange, int64(math.MaxInt64)-int64(o.Trials-1))
	}

	return nil
}
