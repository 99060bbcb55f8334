package mux

import (
	"fmt"
	"net/http"

	"pokersim/pkg/deck"
	"pokersim/pkg/poker"
)

type cardsRequest struct {
	Cards []string `json:"cards"`
}

type scoreResponse struct {
	Score    int    `json:"score"`
	Category string `json:"category"`
}

type handResponse struct {
	Seat     int      `json:"seat"`
	Hole     []string `json:"hole,omitempty"`
	Cards    []string `json:"cards"`
	Score    int      `json:"score"`
	Category string   `json:"category"`
}

func newHandResponse(h *poker.ScoredHand) handResponse {
	resp := handResponse{
		Seat:     h.Seat,
		Cards:    cardStrings(h.Cards),
		Score:    h.Score,
		Category: h.Category().String(),
	}

	if len(h.Hole) > 0 {
		resp.Hole = cardStrings(h.Hole)
	}

	return resp
}

func cardStrings(cards deck.Hand) []string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = deck.CardToString(c)
	}

	return s
}

func (m *Mux) postScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cardsRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		cards, err := deck.ParseCards(req.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		score, err := poker.Score(cards)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, scoreResponse{
			Score:    score,
			Category: poker.CategoryOf(score).String(),
		})
	}
}

func (m *Mux) postBestHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cardsRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if len(req.Cards) > m.config.maxCards {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("cards cannot be greater than %d", m.config.maxCards))
			return
		}

		cards, err := deck.ParseCards(req.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		best, err := poker.BestHand(cards)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newHandResponse(best))
	}
}

type winnersRequest struct {
	Players   [][]string `json:"players"`
	Community []string   `json:"community"`
}

type winnersResponse struct {
	Winners []handResponse `json:"winners"`
}

func (m *Mux) postWinners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req winnersRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		players := make([]deck.Hand, len(req.Players))
		for i, hole := range req.Players {
			if len(hole)+len(req.Community) > m.config.maxCards {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("seat %d: cards cannot be greater than %d", i, m.config.maxCards))
				return
			}

			cards, err := deck.ParseCards(hole)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("seat %d: %w", i, err))
				return
			}

			players[i] = cards
		}

		community, err := deck.ParseCards(req.Community)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		winners, err := poker.ResolveWinners(players, community)
		if err != nil {
			writeMaybeBadRequestError(w, err)
			return
		}

		resp := winnersResponse{Winners: make([]handResponse, len(winners))}
		for i, winner := range winners {
			resp.Winners[i] = newHandResponse(winner)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
