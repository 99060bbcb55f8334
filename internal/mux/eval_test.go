package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokersim/pkg/deck"
)

func TestMux_postScore(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	tests := []struct {
		cards    []string
		score    int
		category string
	}{
		{[]string{"14s", "13s", "12s", "11s", "10s"}, 9000000, "Royal flush"},
		{[]string{"As", "9d", "Tc", "8c", "Qh"}, 572846, "High card"},
		{[]string{"Kh", "3h", "2h", "Td", "Tc"}, 1030032, "Pair"},
		{[]string{"5c", "4d", "3h", "2s", "Ah"}, 4000005, "Straight"},
	}

	for _, test := range tests {
		var resp scoreResponse
		assertPost(t, ts, "/score", cardsRequest{Cards: test.cards}, &resp, http.StatusOK)
		assert.Equal(t, test.score, resp.Score, test.cards)
		assert.Equal(t, test.category, resp.Category, test.cards)
	}

	var errObj errorResponse
	assertPost(t, ts, "/score", cardsRequest{Cards: []string{"14s", "13s", "12s", "11s"}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, "malformed hand: expected 5 cards, got 4", errObj.Message)

	assertPost(t, ts, "/score", cardsRequest{Cards: []string{"14s", "14s", "12s", "11s", "10s"}}, &errObj, http.StatusBadRequest)
	assert.Contains(t, errObj.Message, "duplicate card")

	assertPost(t, ts, "/score", cardsRequest{Cards: []string{"1x", "14s", "12s", "11s", "10s"}}, &errObj, http.StatusBadRequest)
	assert.Equal(t, `could not parse card: "1x"`, errObj.Message)
}

func TestMux_postBestHand(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp handResponse
	assertPost(t, ts, "/best-hand", cardsRequest{Cards: []string{"2c", "Ts", "3d", "As", "Qs", "Ks", "Js"}}, &resp, http.StatusOK)
	a.Equal([]string{"14s", "13s", "12s", "11s", "10s"}, resp.Cards)
	a.Equal(9000000, resp.Score)
	a.Equal("Royal flush", resp.Category)
	a.Nil(resp.Hole)

	var errObj errorResponse
	assertPost(t, ts, "/best-hand", cardsRequest{Cards: []string{"2c", "3c"}}, &errObj, http.StatusBadRequest)
	a.Equal("insufficient cards: expected at least 5 cards, got 2", errObj.Message)

	allCards := make([]string, 0, 52)
	for _, c := range deck.All() {
		allCards = append(allCards, deck.CardToString(c))
	}

	assertPost(t, ts, "/best-hand", cardsRequest{Cards: allCards}, &errObj, http.StatusBadRequest)
	a.Equal("cards cannot be greater than 9", errObj.Message)

	// nine cards is the largest search allowed
	resp = handResponse{}
	assertPost(t, ts, "/best-hand", cardsRequest{Cards: allCards[:9]}, &resp, http.StatusOK)
	a.Equal("Straight flush", resp.Category)
}

func TestMux_postWinners(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	// the board plays for both players
	var resp winnersResponse
	assertPost(t, ts, "/winners", winnersRequest{
		Players:   [][]string{{"2c", "3d"}, {"Ah", "Kh"}, {"4c", "5d"}},
		Community: []string{"Ts", "Js", "Qs", "Ks", "As"},
	}, &resp, http.StatusOK)

	if a.Len(resp.Winners, 3) {
		for i, w := range resp.Winners {
			a.Equal(i, w.Seat)
			a.Equal(9000000, w.Score)
			a.Equal("Royal flush", w.Category)
		}
		a.Equal([]string{"14h", "13h"}, resp.Winners[1].Hole)
	}

	resp = winnersResponse{}
	assertPost(t, ts, "/winners", winnersRequest{
		Players:   [][]string{{"2c", "3d"}, {"Ah", "Ad"}},
		Community: []string{"Ts", "4h", "9c", "Ks", "As"},
	}, &resp, http.StatusOK)

	if a.Len(resp.Winners, 1) {
		a.Equal(1, resp.Winners[0].Seat)
		a.Equal("Three of a kind", resp.Winners[0].Category)
	}

	var errObj errorResponse
	assertPost(t, ts, "/winners", winnersRequest{Community: []string{"Ts", "4h", "9c"}}, &errObj, http.StatusBadRequest)
	a.Equal("no players", errObj.Message)

	assertPost(t, ts, "/winners", winnersRequest{
		Players:   [][]string{{"2c", "3d"}, {"4c"}},
		Community: []string{"Ts", "4h", "9c"},
	}, &errObj, http.StatusBadRequest)
	a.Equal("seat 1: insufficient cards: expected at least 5 cards, got 4", errObj.Message)

	assertPost(t, ts, "/winners", winnersRequest{
		Players:   [][]string{{"2c", "3d"}, {"4c", "5c", "6c", "7c", "8c"}},
		Community: []string{"Ts", "4h", "9c", "Ks", "As"},
	}, &errObj, http.StatusBadRequest)
	a.Equal("seat 1: cards cannot be greater than 9", errObj.Message)

	assertPost(t, ts, "/winners", winnersRequest{
		Players:   [][]string{{"2c", "zz"}},
		Community: []string{"Ts", "4h", "9c"},
	}, &errObj, http.StatusBadRequest)
	a.Equal(`seat 0: could not parse card: "zz"`, errObj.Message)
}
