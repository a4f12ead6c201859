// Package feed streams live display values from a websocket source.
package feed

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Update is one message from the feed.
type Update struct {
	Value string `json:"value"`
}

// Client subscribes to a websocket feed and forwards each value in
// arrival order. The stream ends when the peer closes or errors; the
// Updates channel closes with it.
type Client struct {
	conn    *websocket.Conn
	updates chan string
	done    chan struct{}
}

// Dial connects to url and starts the read pump.
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: dial %s: %w", url, err)
	}
	c := &Client{
		conn:    conn,
		updates: make(chan string, 8),
		done:    make(chan struct{}),
	}
	go c.readPump()
	return c, nil
}

func (c *Client) readPump() {
	defer close(c.updates)
	for {
		var u Update
		if err := c.conn.ReadJSON(&u); err != nil {
			return
		}
		select {
		case c.updates <- u.Value:
		case <-c.done:
			return
		}
	}
}

// Updates returns the stream of received values.
func (c *Client) Updates() <-chan string { return c.updates }

// Close tears down the connection; the Updates channel closes shortly
// after.
func (c *Client) Close() error {
	close(c.done)
	return c.conn.Close()
}
