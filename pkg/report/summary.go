package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"golang.org/x/term"
	"pokersim/pkg/poker"
	"pokersim/pkg/simulation"
)

// UseColor enables styled output only when f is a terminal
func UseColor(f *os.File) bool {
	if term.IsTerminal(int(f.Fd())) {
		pterm.EnableColor()
		return true
	}

	pterm.DisableColor()
	return false
}

func share(n, total int) string {
	if total == 0 {
		return "0.00%"
	}

	return fmt.Sprintf("%.2f%%", 100*float64(n)/float64(total))
}

// RenderSummary renders the tally as a run overview followed by the category and seat tables
func RenderSummary(runID string, tally *simulation.Tally) (string, error) {
	overview := pterm.DefaultBox.WithTitle("Simulation").Sprintf(
		"run:        %s\ntrials:     %d\nsplit pots: %d (%s)",
		runID, tally.Trials, tally.SplitPots, share(tally.SplitPots, tally.Trials))

	categories := pterm.TableData{{"Category", "Wins", "Share"}}
	for i := len(poker.Categories) - 1; i >= 0; i-- {
		c := poker.Categories[i]
		n := tally.Winning[c]
		categories = append(categories, []string{c.String(), strconv.Itoa(n), share(n, tally.Trials)})
	}

	categoryTable, err := pterm.DefaultTable.WithHasHeader().WithData(categories).Srender()
	if err != nil {
		return "", err
	}

	seats := pterm.TableData{{"Seat", "Wins", "Share"}}
	for seat, n := range tally.SeatWins {
		seats = append(seats, []string{SeatName(seat), strconv.Itoa(n), share(n, tally.Trials)})
	}

	seatTable, err := pterm.DefaultTable.WithHasHeader().WithData(seats).Srender()
	if err != nil {
		return "", err
	}

	return overview + "\n\n" + categoryTable + "\n\n" + seatTable + "\n", nil
}

// WriteSummary renders the tally to w
func WriteSummary(w io.Writer, runID string, tally *simulation.Tally) error {
	s, err := RenderSummary(runID, tally)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, s)
	return err
}
