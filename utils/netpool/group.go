package netpool

import (
	"context"
	"net"
	"sync"
)

// PoolGroup keys independent pools by connection target so connections to
// different hosts (or through different proxies) never mix.
type PoolGroup struct {
	sync.RWMutex
	pools map[interface{}]*Pool

	maxConnsPerHost, maxIdlePerHost uint
}

func NewGroup(maxConnsPerHost, maxIdlePerHost uint) *PoolGroup {
	return &PoolGroup{
		pools:           make(map[interface{}]*Pool),
		maxConnsPerHost: maxConnsPerHost,
		maxIdlePerHost:  maxIdlePerHost,
	}
}

// NewEmpty returns a fresh group with the same limits and none of the
// pooled connections.
func (g *PoolGroup) NewEmpty() *PoolGroup {
	if g == nil {
		return nil
	}
	return NewGroup(g.maxConnsPerHost, g.maxIdlePerHost)
}

// CloseIdle closes the parked connections of every keyed pool.
func (g *PoolGroup) CloseIdle() {
	g.RLock()
	defer g.RUnlock()
	for _, p := range g.pools {
		p.CloseIdle()
	}
}

func (g *PoolGroup) Connect(ctx context.Context, key interface{}, dial func(ctx context.Context) (net.Conn, error)) (Conn, error) {
	return g.pool(key).Connect(ctx, dial)
}

// pool returns the pool serving key, creating it on first use.
func (g *PoolGroup) pool(key interface{}) *Pool {
	g.RLock()
	p, ok := g.pools[key]
	g.RUnlock()
	if ok {
		return p
	}
	g.Lock()
	defer g.Unlock()
	if p, ok := g.pools[key]; ok {
		return p
	}
	p = NewPool(g.maxIdlePerHost, g.maxConnsPerHost)
	g.pools[key] = p
	return p
}
