package netpool

import (
	"io"
	"log"
	"net"
	"sync/atomic"
	"time"
)

type conn struct {
	conn     net.Conn
	isClosed atomic.Bool
	lastIdle time.Time
}

func (c *conn) available() bool {
	return !c.isClosed.Load()
}

// Write poisons the connection on any error so a later Release cannot
// recycle a half-broken stream.
func (c *conn) Write(p []byte) (n int, err error) {
	n, err = c.conn.Write(p)
	if err != nil {
		if err != io.EOF {
			log.Printf("netpool: error on write. %v\n", err)
		}
		c.close()
	}
	return
}

func (c *conn) Read(p []byte) (n int, err error) {
	nb, err := c.conn.Read(p)
	if err != nil {
		if err != io.EOF {
			log.Printf("netpool: error on read. %v\n", err)
		}
		c.close()
	}
	return nb, err
}

func (c *conn) close() error {
	c.isClosed.Store(true)
	return c.conn.Close()
}
