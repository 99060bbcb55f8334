package simulation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"pokersim/internal/rng"
)

// EmitFunc receives each finished trial, in trial order
type EmitFunc func(trial *Trial) error

// Simulator runs independent hold'em trials across a pool of workers
type Simulator struct {
	logger  logrus.FieldLogger
	options Options
	seeds   rng.Generator
	runID   string
}

// New returns a new simulator
func New(logger logrus.FieldLogger, opts Options) (*Simulator, error) {
	if opts.Workers <= 0 {
		opts.Workers = DefaultOptions().Workers
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	return &Simulator{
		logger:  logger.WithField("runId", runID),
		options: opts,
		seeds:   rng.Crypto{},
		runID:   runID,
	}, nil
}

// RunID returns the unique identifier of this simulator's run
func (s *Simulator) RunID() string {
	return s.runID
}

// Options returns the options the simulator was built with
func (s *Simulator) Options() Options {
	return s.options
}

// seedFor returns the deck seed for the trial
// A configured seed makes every trial reproducible; otherwise seeds are drawn at random.
func (s *Simulator) seedFor(index int) int64 {
	if s.options.Seed > 0 {
		return s.options.Seed + int64(index)
	}

	return rng.Seed(s.seeds)
}

// Run plays every trial and returns the tally
// Trials run concurrently but emit is called from a single goroutine in trial order.
// If ctx is cancelled no further trials are started; the trials already started are
// emitted and the partial tally is returned alongside the context error.
func (s *Simulator) Run(ctx context.Context, emit EmitFunc) (*Tally, error) {
	start := time.Now()
	s.logger.WithFields(logrus.Fields{
		"players": s.options.Players,
		"trials":  s.options.Trials,
		"workers": s.options.Workers,
		"seed":    s.options.Seed,
	}).Info("starting simulation")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.options.Workers)

	results := make(chan *Trial, s.options.Workers)
	tally := NewTally(s.options.Players)
	collected := make(chan error, 1)
	go func() {
		collected <- s.collect(results, emit, tally, cancel)
	}()

	for i := 0; i < s.options.Trials; i++ {
		if gctx.Err() != nil {
			break
		}

		index, seed := i, s.seedFor(i)
		g.Go(func() error {
			trial, err := RunTrial(index, seed, s.options.Players)
			if err != nil {
				return err
			}

			s.logger.WithFields(logrus.Fields{
				"trial":    trial.Index,
				"seed":     trial.Seed,
				"deckHash": trial.DeckHash,
			}).Debug("trial finished")

			results <- trial
			return nil
		})
	}

	err := g.Wait()
	close(results)
	if emitErr := <-collected; emitErr != nil {
		err = emitErr
	}

	if err == nil {
		err = ctx.Err()
	}

	logger := s.logger.WithFields(logrus.Fields{
		"trials":    tally.Trials,
		"splitPots": tally.SplitPots,
		"duration":  time.Since(start).String(),
	})
	if err != nil {
		logger.WithError(err).Warn("simulation stopped early")
		return tally, err
	}

	logger.Info("simulation finished")
	return tally, nil
}

// collect re-serializes trials by index before handing them to emit
// After emit fails the remaining trials are drained so workers never block.
func (s *Simulator) collect(results <-chan *Trial, emit EmitFunc, tally *Tally, cancel context.CancelFunc) error {
	pending := make(map[int]*Trial)
	next := 0
	var emitErr error

	for trial := range results {
		if emitErr != nil {
			continue
		}

		pending[trial.Index] = trial
		for {
			t, ok := pending[next]
			if !ok {
				break
			}

			delete(pending, next)
			next++

			tally.Add(t)
			if emit == nil {
				continue
			}

			if err := emit(t); err != nil {
				emitErr = err
				cancel()
				break
			}
		}
	}

	return emitErr
}
