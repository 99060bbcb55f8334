package simulation

import (
	"pokersim/pkg/poker"
)

// Tally aggregates trial outcomes
// Adding trials in any order produces the same tally.
type Tally struct {
	Trials    int                    `json:"trials"`
	SplitPots int                    `json:"splitPots"`
	SeatWins  []int                  `json:"seatWins"`
	Winning   map[poker.Category]int `json:"winning"`
}

// NewTally returns an empty tally for a table of the given size
func NewTally(players int) *Tally {
	return &Tally{
		SeatWins: make([]int, players),
		Winning:  make(map[poker.Category]int),
	}
}

// Add records the trial
// Every seat sharing a split pot is credited with a win.
func (t *Tally) Add(trial *Trial) {
	t.Trials++
	if trial.IsSplitPot() {
		t.SplitPots++
	}

	for _, w := range trial.Winners {
		if w.Seat >= 0 && w.Seat < len(t.SeatWins) {
			t.SeatWins[w.Seat]++
		}
	}

	if len(trial.Winners) > 0 {
		t.Winning[trial.Winners[0].Category()]++
	}
}
