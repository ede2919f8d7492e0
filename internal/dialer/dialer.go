package dialer

import (
	"context"
	"crypto/tls"
	"io"

	"github.com/frankli0324/go-httpc/internal/http"
	"github.com/frankli0324/go-httpc/utils/netpool"
)

// Dialers own everything between a prepared request and a byte stream:
// name resolution, proxy tunneling, TLS, and connection reuse.
type Dialer interface {
	// Dial returns a stream ready for one request/response exchange.
	// What backs the stream (pooled conn, tunnel, TLS session) is the
	// implementation's business.
	Dial(ctx context.Context, r *http.PreparedRequest) (io.ReadWriteCloser, error)
	// Unwrap exposes the next dialer down when implementations layer, so
	// callers can reach configuration on an inner dialer.
	Unwrap() Dialer
}

type CoreDialer struct {
	ResolveConfig *ResolveConfig

	TLSConfig *tls.Config // template for https handshakes, cloned per connection

	ConnPool    *netpool.PoolGroup
	ProxyConfig *ProxyConfig
}

func (d *CoreDialer) Clone() *CoreDialer {
	return &CoreDialer{
		ResolveConfig: d.ResolveConfig.Clone(),
		TLSConfig:     d.TLSConfig.Clone(),
		ConnPool:      d.ConnPool.NewEmpty(),
		ProxyConfig:   d.ProxyConfig.Clone(),
	}
}

func (d *CoreDialer) Unwrap() Dialer {
	return nil
}

// CloseIdleConnections closes connections parked for reuse in this
// dialer's pool. Connections serving in-flight requests are left alone.
func (d *CoreDialer) CloseIdleConnections() {
	d.pool().CloseIdle()
}

var defaultPool = netpool.NewGroup(100, 80)

func (d *CoreDialer) pool() *netpool.PoolGroup {
	if d.ConnPool != nil {
		return d.ConnPool
	}
	return defaultPool
}
