package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"pokersim/pkg/db"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  config
	version string
	logger  logrus.FieldLogger
}

type config struct {
	// maxTrials caps the number of trials a single simulate request can run
	maxTrials int

	// maxCards caps the cards a player can hold when searching for the best hand
	maxCards int

	// history saves every simulate request and serves the /run endpoints
	history bool
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		logger:  logrus.StandardLogger(),
		config: config{
			maxTrials: 10000,
			maxCards:  9,
			history:   db.Enabled(),
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/score").Handler(this.postScore())
	r.Methods(http.MethodPost).Path("/best-hand").Handler(this.postBestHand())
	r.Methods(http.MethodPost).Path("/winners").Handler(this.postWinners())
	r.Methods(http.MethodPost).Path("/simulate").Handler(this.postSimulate())
	r.Methods(http.MethodGet).Path("/simulate/ws").Handler(this.getSimulateWS())

	// run history, only when a database is configured
	if this.config.history {
		r.Methods(http.MethodGet).Path("/run").Handler(this.getRun())
		r.Methods(http.MethodGet).Path("/run/{runId:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Handler(this.getRunID())
	}

	return this
}
