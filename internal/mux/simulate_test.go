package mux

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokersim/pkg/model"
)

func TestMux_postSimulate(t *testing.T) {
	a := assert.New(t)

	m := NewMux("")
	m.config.maxTrials = 100

	ts := httptest.NewServer(m)
	defer ts.Close()

	var resp model.Run
	assertPost(t, ts, "/simulate", simulateRequest{Players: 4, Trials: 50, Seed: 9}, &resp, http.StatusOK)
	a.Len(resp.RunID, 36)
	a.Equal(50, resp.Trials)
	a.Len(resp.SeatWins, 4)

	total := 0
	for _, n := range resp.Winning {
		total += n
	}
	a.Equal(50, total)

	// same seed, same outcome
	var again model.Run
	assertPost(t, ts, "/simulate", simulateRequest{Players: 4, Trials: 50, Seed: 9}, &again, http.StatusOK)
	a.Equal(resp.SeatWins, again.SeatWins)
	a.Equal(resp.Winning, again.Winning)
	a.NotEqual(resp.RunID, again.RunID)

	var errObj errorResponse
	assertPost(t, ts, "/simulate", simulateRequest{Players: 4, Trials: 101}, &errObj, http.StatusBadRequest)
	a.Equal("trials cannot be greater than 100", errObj.Message)

	assertPost(t, ts, "/simulate", simulateRequest{Players: 1, Trials: 10}, &errObj, http.StatusBadRequest)
	a.Equal("expected 2–22 players, got 1", errObj.Message)

	assertPost(t, ts, "/simulate", simulateRequest{Players: 3, Trials: 10, Seed: -1}, &errObj, http.StatusBadRequest)
	a.Equal("seed out of range: must be between 0 and 9223372036854775798", errObj.Message)

	// seed+index would overflow on the second trial
	assertPost(t, ts, "/simulate", simulateRequest{Players: 2, Trials: 2, Seed: math.MaxInt64}, &errObj, http.StatusBadRequest)
	a.Equal("seed out of range: must be between 0 and 9223372036854775806", errObj.Message)

	resp = model.Run{}
	assertPost(t, ts, "/simulate", simulateRequest{Players: 2, Trials: 2, Seed: math.MaxInt64 - 1}, &resp, http.StatusOK)
	a.Equal(2, resp.Trials)

	// omitted fields use the defaults
	resp = model.Run{}
	assertPost(t, ts, "/simulate", `{"trials": 5}`, &resp, http.StatusOK)
	a.Equal(5, resp.Trials)
	a.Len(resp.SeatWins, 9)
}
