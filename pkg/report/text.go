package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"pokersim/pkg/deck"
	"pokersim/pkg/simulation"
)

// TextWriter writes a human readable line per trial
type TextWriter struct {
	w      *bufio.Writer
	format deck.Format
}

var _ Writer = (*TextWriter)(nil)

// NewTextWriter returns a TextWriter
func NewTextWriter(w io.Writer, f deck.Format) *TextWriter {
	return &TextWriter{
		w:      bufio.NewWriter(w),
		format: f,
	}
}

// Write writes the trial as "[community] - [(h1, h2), ...] => winners (category)"
func (t *TextWriter) Write(trial *simulation.Trial) error {
	holes := make([]string, len(trial.Deal.Holes))
	for i, hole := range trial.Deal.Holes {
		holes[i] = "(" + formatCards(hole, t.format, ", ") + ")"
	}

	line := fmt.Sprintf("[%s] - [%s]",
		formatCards(trial.Deal.Community, t.format, ", "),
		strings.Join(holes, ", "))

	if len(trial.Winners) > 0 {
		line += fmt.Sprintf(" => %s (%s)",
			strings.ReplaceAll(winnerNames(trial.Winners), ";", ", "),
			trial.Winners[0].Category())
	}

	_, err := fmt.Fprintln(t.w, line)
	return err
}

// Flush flushes buffered lines to the underlying writer
func (t *TextWriter) Flush() error {
	return t.w.Flush()
}
