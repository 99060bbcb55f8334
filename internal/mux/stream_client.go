package mux

import (
	"context"
	"errors"

	"github.com/gorilla/websocket"
)

var errClientGone = errors.New("client disconnected")

// streamClient is a client connected to the trial stream via websockets
type streamClient struct {
	// conn is the underlying websocket connection
	conn *websocket.Conn

	// send hands messages to the write loop
	// It is unbuffered so a message is written before a later close is seen.
	send chan interface{}

	// close asks the write loop to send a close frame with the reason
	close chan string

	// gone is closed by the read loop once the connection is finished
	gone chan struct{}
}

func newStreamClient(conn *websocket.Conn) *streamClient {
	return &streamClient{
		conn:  conn,
		send:  make(chan interface{}),
		close: make(chan string),
		gone:  make(chan struct{}),
	}
}

// Send blocks until the write loop takes msg
func (c *streamClient) Send(ctx context.Context, msg interface{}) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.gone:
		return errClientGone
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close asks the write loop to end the stream
func (c *streamClient) Close(reason string) {
	select {
	case c.close <- reason:
	case <-c.gone:
	}
}
