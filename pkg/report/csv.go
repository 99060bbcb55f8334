package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"pokersim/pkg/deck"
	"pokersim/pkg/simulation"
)

// CSVWriter writes one row per trial
// The columns are the winning seats, the winning score and category, the community
// cards and then the hole cards of every player.
type CSVWriter struct {
	w           *csv.Writer
	format      deck.Format
	wroteHeader bool
}

var _ Writer = (*CSVWriter)(nil)

// NewCSVWriter returns a CSVWriter that renders cards in the given format
func NewCSVWriter(w io.Writer, f deck.Format) *CSVWriter {
	return &CSVWriter{
		w:      csv.NewWriter(w),
		format: f,
	}
}

func (c *CSVWriter) header(players int) []string {
	row := []string{"winners", "score", "category", "community"}
	for seat := 0; seat < players; seat++ {
		row = append(row, SeatName(seat))
	}

	return row
}

// Write writes the trial, preceded by the header on the first call
func (c *CSVWriter) Write(trial *simulation.Trial) error {
	if !c.wroteHeader {
		if err := c.w.Write(c.header(len(trial.Deal.Holes))); err != nil {
			return err
		}
		c.wroteHeader = true
	}

	row := make([]string, 0, 4+len(trial.Deal.Holes))
	score, category := "", ""
	if len(trial.Winners) > 0 {
		score = strconv.Itoa(trial.Winners[0].Score)
		category = trial.Winners[0].Category().String()
	}

	row = append(row,
		winnerNames(trial.Winners),
		score,
		category,
		formatCards(trial.Deal.Community, c.format, ","),
	)

	for _, hole := range trial.Deal.Holes {
		row = append(row, formatCards(hole, c.format, ","))
	}

	return c.w.Write(row)
}

// Flush flushes buffered rows to the underlying writer
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
