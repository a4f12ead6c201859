package link

import "periph.io/x/conn/v3"

// Conn adapts a periph conn.Conn to a Channel, for signs hung off a bus
// periph already drives. Tx is synchronous, so Flush has nothing to wait
// for.
type Conn struct {
	c conn.Conn
}

// NewConn wraps c. Close is a no-op; the underlying port stays owned by
// the caller.
func NewConn(c conn.Conn) *Conn { return &Conn{c: c} }

func (c *Conn) Write(p []byte) (int, error) {
	if err := c.c.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *Conn) Flush() error { return nil }

func (c *Conn) Close() error { return nil }
