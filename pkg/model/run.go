package model

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"pokersim/pkg/db"
	"pokersim/pkg/poker"
	"pokersim/pkg/simulation"
)

const runColumns = `
runs.run_id,
runs.players,
runs.trials,
runs.seed,
runs.split_pots,
runs.seat_wins,
runs.created`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrDuplicateRun happens if a run with the same ID was already saved
var ErrDuplicateRun = errors.New("run already saved")

// Run is a record in the `runs` table
type Run struct {
	RunID     string         `json:"runId"`
	Players   int            `json:"players"`
	Trials    int            `json:"trials"`
	Seed      int64          `json:"seed"`
	SplitPots int            `json:"splitPots"`
	SeatWins  []int64        `json:"seatWins"`
	Winning   map[string]int `json:"winning"`
	Created   time.Time      `json:"created"`
}

// NewRun builds the record of a finished simulation
// Winning is keyed by category name and includes categories that never won.
func NewRun(runID string, opts simulation.Options, tally *simulation.Tally) *Run {
	r := &Run{
		RunID:     runID,
		Players:   opts.Players,
		Trials:    tally.Trials,
		Seed:      opts.Seed,
		SplitPots: tally.SplitPots,
		SeatWins:  make([]int64, len(tally.SeatWins)),
		Winning:   make(map[string]int, len(poker.Categories)),
	}

	for i, n := range tally.SeatWins {
		r.SeatWins[i] = int64(n)
	}

	for _, c := range poker.Categories {
		r.Winning[c.String()] = tally.Winning[c]
	}

	return r
}

// Save inserts the run and its category counts
func (r *Run) Save(ctx context.Context) error {
	tx, err := db.Instance().BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO runs (run_id, players, trials, seed, split_pots, seat_wins)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created`

	row := tx.QueryRowContext(ctx, query, r.RunID, r.Players, r.Trials, r.Seed, r.SplitPots, pq.Array(r.SeatWins))
	if err := row.Scan(&r.Created); err != nil {
		db.Rollback(tx)
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return ErrDuplicateRun
		}

		return err
	}

	const query2 = `
INSERT INTO runs_categories (run_id, category, wins)
VALUES ($1, $2, $3)`
	for category, wins := range r.Winning {
		if _, err := tx.ExecContext(ctx, query2, r.RunID, category, wins); err != nil {
			db.Rollback(tx)
			return err
		}
	}

	return tx.Commit()
}

func getRunByRow(row db.Scanner) (*Run, error) {
	var r Run
	if err := row.Scan(&r.RunID, &r.Players, &r.Trials, &r.Seed, &r.SplitPots, pq.Array(&r.SeatWins), &r.Created); err != nil {
		return nil, err
	}

	return &r, nil
}

// GetRunByRunID returns a run by its ID
// sql.ErrNoRows is returned if the run was never saved.
func GetRunByRunID(ctx context.Context, runID string) (*Run, error) {
	const query = `
SELECT ` + runColumns + `
FROM runs
WHERE run_id = $1`

	r, err := getRunByRow(db.Instance().QueryRowContext(ctx, query, runID))
	if err != nil {
		return nil, err
	}

	if err := r.loadWinning(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

// GetRuns returns saved runs, newest first
func GetRuns(ctx context.Context, offset int64, limit int) ([]*Run, error) {
	const query = `
SELECT ` + runColumns + `
FROM runs
ORDER BY created DESC, run_id
OFFSET $1
LIMIT $2`

	rows, err := db.Instance().QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*Run, 0)
	for rows.Next() {
		r, err := getRunByRow(rows)
		if err != nil {
			return nil, err
		}

		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, r := range runs {
		if err := r.loadWinning(ctx); err != nil {
			return nil, err
		}
	}

	return runs, nil
}

func (r *Run) loadWinning(ctx context.Context) error {
	const query = `
SELECT category, wins
FROM runs_categories
WHERE run_id = $1`

	rows, err := db.Instance().QueryContext(ctx, query, r.RunID)
	if err != nil {
		return err
	}
	defer rows.Close()

	r.Winning = make(map[string]int)
	for rows.Next() {
		var category string
		var wins int
		if err := rows.Scan(&category, &wins); err != nil {
			return err
		}

		r.Winning[category] = wins
	}

	return rows.Err()
}
