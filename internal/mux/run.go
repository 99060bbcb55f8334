package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"pokersim/pkg/model"
)

func (m *Mux) getRun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		runs, err := model.GetRuns(r.Context(), start, rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, runs)
	}
}

func (m *Mux) getRunID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, err := model.GetRunByRunID(r.Context(), gmux.Vars(r)["runId"])
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, run)
	}
}
