package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func dialStream(t *testing.T, ts *httptest.Server, query string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/simulate/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not dial %s: %v", url, err)
	}

	return conn
}

func TestMux_getSimulateWS(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	conn := dialStream(t, ts, "?players=5&trials=20&seed=11")
	defer conn.Close()

	trials := make([]*trialResponse, 0)
	var summary streamMessage
	for {
		var msg streamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			a.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), err.Error())
			break
		}

		switch msg.Type {
		case streamMessageTrial:
			trials = append(trials, msg.Trial)
		case streamMessageSummary:
			summary = msg
		default:
			t.Fatalf("unexpected message type %q", msg.Type)
		}
	}

	if a.Len(trials, 20) {
		for i, trial := range trials {
			a.Equal(i, trial.Index)
			a.Equal(int64(11+i), trial.Seed)
			a.Len(trial.Holes, 5)
			a.Len(trial.Community, 5)
			a.NotEmpty(trial.Winners)
		}
	}

	if a.NotNil(summary.Run) {
		a.Equal(20, summary.Run.Trials)
		a.Len(summary.Run.SeatWins, 5)
	}
}

func TestMux_getSimulateWS_BadRequest(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/simulate/ws?players=abc", &errObj, http.StatusBadRequest)
	assert.Equal(t, `strconv.Atoi: parsing "abc": invalid syntax`, errObj.Message)

	assertGet(t, ts, "/simulate/ws?players=50", &errObj, http.StatusBadRequest)
	assert.Equal(t, "expected 2–22 players, got 50", errObj.Message)

	assertGet(t, ts, "/simulate/ws?trials=1000000", &errObj, http.StatusBadRequest)
	assert.Equal(t, "trials cannot be greater than 10000", errObj.Message)

	assertGet(t, ts, "/simulate/ws?players=2&trials=2&seed=9223372036854775807", &errObj, http.StatusBadRequest)
	assert.Equal(t, "seed out of range: must be between 0 and 9223372036854775806", errObj.Message)
}

func TestMux_getSimulateWS_Disconnect(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	conn := dialStream(t, ts, "?players=9&trials=10000")

	var msg streamMessage
	assert.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, streamMessageTrial, msg.Type)
	assert.NoError(t, conn.Close())
}
