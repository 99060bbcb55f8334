package report

import (
	"fmt"
	"strings"

	"pokersim/pkg/deck"
	"pokersim/pkg/poker"
	"pokersim/pkg/simulation"
)

// Writer records finished trials
type Writer interface {
	Write(trial *simulation.Trial) error
	Flush() error
}

// SeatName returns the display name of a seat, i.e., "P1" for seat 0
func SeatName(seat int) string {
	return fmt.Sprintf("P%d", seat+1)
}

func winnerNames(winners []*poker.ScoredHand) string {
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = SeatName(w.Seat)
	}

	return strings.Join(names, ";")
}

func formatCards(cards deck.Hand, f deck.Format, sep string) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.Format(f)
	}

	return strings.Join(s, sep)
}
