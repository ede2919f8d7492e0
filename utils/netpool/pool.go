package netpool

import (
	"context"
	"io"
	"net"
	"sync"
	"time"

	"github.com/frankli0324/go-httpc/utils/nettools"
)

// Conn is a pooled connection. Release parks it for reuse by a later
// Connect on the same pool; Close discards it for good. Exactly one of
// the two takes effect, whichever is called first, and either returns the
// per-pool connection ticket.
type Conn interface {
	io.ReadWriteCloser
	Release()
	Raw() net.Conn
}

type Pool struct {
	mu         sync.Mutex
	connTicket chan struct{}
	idle       []*conn

	maxIdle         uint
	maxIdleDuration time.Duration
}

func NewPool(maxIdle, maxConn uint) *Pool {
	return &Pool{
		connTicket: make(chan struct{}, maxConn),
		maxIdle:    maxIdle,
	}
}

// Connect hands out an idle connection when a live one is parked, else
// dials a fresh one. It blocks while the pool is at capacity until a
// ticket frees up or ctx is cancelled.
func (p *Pool) Connect(ctx context.Context, dial func(ctx context.Context) (net.Conn, error)) (Conn, error) {
	select {
	case p.connTicket <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	for {
		c := p.popIdle()
		if c == nil {
			break
		}
		if p.maxIdleDuration != 0 && time.Since(c.lastIdle) > p.maxIdleDuration {
			c.close()
			continue
		}
		if !c.available() || !nettools.IsIdleAlive(c.conn) {
			c.close()
			continue
		}
		return &pooled{conn: c, p: p, reused: true}, nil
	}
	raw, err := dial(ctx)
	if err != nil {
		<-p.connTicket
		return nil, err
	}
	return &pooled{conn: &conn{conn: raw}, p: p}, nil
}

func (p *Pool) popIdle() *conn {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.idle) == 0 {
		return nil
	}
	c := p.idle[0]
	p.idle = p.idle[1:]
	return c
}

func (p *Pool) put(c *conn) {
	<-p.connTicket
	if !c.available() {
		return
	}
	c.lastIdle = time.Now()
	p.mu.Lock()
	if uint(len(p.idle)) < p.maxIdle {
		p.idle = append(p.idle, c)
		c = nil
	}
	p.mu.Unlock()
	if c != nil {
		c.close()
	}
}

func (p *Pool) drop(c *conn) {
	<-p.connTicket
	c.close()
}

// CloseIdle closes every parked connection. Connections currently handed
// out are unaffected; they hold the tickets, parked ones don't.
func (p *Pool) CloseIdle() {
	p.mu.Lock()
	idle := p.idle
	p.idle = nil
	p.mu.Unlock()
	for _, c := range idle {
		c.close()
	}
}

type pooled struct {
	*conn
	p      *Pool
	done   sync.Once
	reused bool
}

// Reused reports whether the connection already served an exchange before
// this checkout. Callers use it to tell a stale keep-alive teardown from a
// server that never answered.
func (c *pooled) Reused() bool {
	return c.reused
}

func (c *pooled) Release() {
	c.done.Do(func() { c.p.put(c.conn) })
}

func (c *pooled) Close() error {
	c.done.Do(func() { c.p.drop(c.conn) })
	return nil
}

func (c *pooled) Raw() net.Conn {
	return c.conn.conn
}
