package mux

import (
	"context"
	"fmt"
	"net/http"

	"pokersim/pkg/model"
	"pokersim/pkg/simulation"
)

type simulateRequest struct {
	Players int   `json:"players"`
	Trials  int   `json:"trials"`
	Seed    int64 `json:"seed"`
}

func defaultSimulateRequest() simulateRequest {
	opts := simulation.DefaultOptions()
	return simulateRequest{
		Players: opts.Players,
		Trials:  opts.Trials,
	}
}

// newSimulator validates the request and returns a simulator for it
// On failure the error response has been written and false is returned.
func (m *Mux) newSimulator(w http.ResponseWriter, req simulateRequest) (*simulation.Simulator, bool) {
	if req.Trials > m.config.maxTrials {
		writeJSONError(w, http.StatusBadRequest, fmt.Errorf("trials cannot be greater than %d", m.config.maxTrials))
		return nil, false
	}

	sim, err := simulation.New(m.logger, simulation.Options{
		Players: req.Players,
		Trials:  req.Trials,
		Seed:    req.Seed,
	})
	if err != nil {
		writeMaybeBadRequestError(w, err)
		return nil, false
	}

	return sim, true
}

func (m *Mux) postSimulate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := defaultSimulateRequest()
		if !decodeRequest(w, r, &req) {
			return
		}

		sim, ok := m.newSimulator(w, req)
		if !ok {
			return
		}

		tally, err := sim.Run(r.Context(), nil)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		run, err := m.saveRun(r.Context(), sim, tally)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, run)
	}
}

// saveRun builds the run record, saving it when history is enabled
func (m *Mux) saveRun(ctx context.Context, sim *simulation.Simulator, tally *simulation.Tally) (*model.Run, error) {
	run := model.NewRun(sim.RunID(), sim.Options(), tally)
	if !m.config.history {
		return run, nil
	}

	if err := run.Save(ctx); err != nil {
		return nil, err
	}

	return run, nil
}
