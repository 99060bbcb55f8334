package mux

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"pokersim/pkg/model"
	"pokersim/pkg/simulation"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// close reasons must fit in a control frame
const maxCloseReason = 123

const (
	streamMessageTrial   = "trial"
	streamMessageSummary = "summary"
)

type streamMessage struct {
	Type  string         `json:"type"`
	Trial *trialResponse `json:"trial,omitempty"`
	Run   *model.Run     `json:"run,omitempty"`
}

type trialResponse struct {
	Index     int            `json:"index"`
	Seed      int64          `json:"seed"`
	DeckHash  string         `json:"deckHash"`
	Community []string       `json:"community"`
	Holes     [][]string     `json:"holes"`
	Winners   []handResponse `json:"winners"`
}

func newTrialResponse(t *simulation.Trial) *trialResponse {
	resp := &trialResponse{
		Index:     t.Index,
		Seed:      t.Seed,
		DeckHash:  t.DeckHash,
		Community: cardStrings(t.Deal.Community),
		Holes:     make([][]string, len(t.Deal.Holes)),
		Winners:   make([]handResponse, len(t.Winners)),
	}

	for i, hole := range t.Deal.Holes {
		resp.Holes[i] = cardStrings(hole)
	}

	for i, w := range t.Winners {
		resp.Winners[i] = newHandResponse(w)
	}

	return resp
}

func parseSimulateQuery(r *http.Request) (simulateRequest, error) {
	req := defaultSimulateRequest()

	if s := r.FormValue("players"); s != "" {
		val, err := strconv.Atoi(s)
		if err != nil {
			return req, err
		}
		req.Players = val
	}

	if s := r.FormValue("trials"); s != "" {
		val, err := strconv.Atoi(s)
		if err != nil {
			return req, err
		}
		req.Trials = val
	}

	if s := r.FormValue("seed"); s != "" {
		val, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return req, err
		}
		req.Seed = val
	}

	return req, nil
}

// getSimulateWS streams every trial as it finishes, then the run summary, then closes
// Disconnecting stops the simulation.
func (m *Mux) getSimulateWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseSimulateQuery(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sim, ok := m.newSimulator(w, req)
		if !ok {
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		// a hijacked connection does not cancel the request context
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		client := newStreamClient(conn)
		writeDone := make(chan struct{})
		go func() {
			m.webSocketWriteLoop(client)
			close(writeDone)
		}()
		go func() {
			m.webSocketReadLoop(client)
			cancel()
		}()

		tally, err := sim.Run(ctx, func(trial *simulation.Trial) error {
			return client.Send(ctx, streamMessage{Type: streamMessageTrial, Trial: newTrialResponse(trial)})
		})

		if err == nil {
			var run *model.Run
			if run, err = m.saveRun(ctx, sim, tally); err == nil {
				err = client.Send(ctx, streamMessage{Type: streamMessageSummary, Run: run})
			}
		}

		reason := "simulation finished"
		if err != nil {
			reason = err.Error()
			if len(reason) > maxCloseReason {
				reason = reason[:maxCloseReason]
			}
		}

		client.Close(reason)
		<-writeDone
	}
}

func (m *Mux) webSocketWriteLoop(client *streamClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case reason := <-client.close:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))

			// wait for the close frame
			select {
			case <-client.gone:
			case <-time.After(time.Second):
			}
			return
		case msg := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

// webSocketReadLoop discards client messages until the connection ends
func (m *Mux) webSocketReadLoop(client *streamClient) {
	defer close(client.gone)

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Warn("stream client closed unexpectedly")
			}

			return
		}
	}
}
