package dialer

import (
	"context"
	"crypto/tls"
	"io"
	"net"

	"github.com/frankli0324/go-httpc/internal/http"
)

var schemes = map[string]string{
	"http": "80", "https": "443",
}

var zeroDialer net.Dialer
var resolvingDialer = net.Dialer{
	Resolver: &customResolver,
}

// Dial hands out a pooled connection to the request's target, dialing a
// fresh one when no live idle connection exists. Connections are keyed by
// target and proxy so exchanges through different proxies never share a
// tunnel. The returned stream is TLS-wrapped and tunnel-ready.
func (d *CoreDialer) Dial(ctx context.Context, r *http.PreparedRequest) (io.ReadWriteCloser, error) {
	addr, port := r.U.Host, schemes[r.U.Scheme]
	if add, prt, err := net.SplitHostPort(addr); err == nil {
		addr, port = add, prt
	}
	hp := net.JoinHostPort(addr, port)
	key := hp
	if r.Proxy != "" {
		key = r.Proxy + "|" + hp
	}
	return d.pool().Connect(ctx, key, func(ctx context.Context) (conn net.Conn, err error) {
		conn, err = d.dialProxy(ctx, r)
		if err != nil {
			return nil, err
		}
		if conn == nil {
			// direct dial: net.Dialer resolves for us, steered by the config
			network, dialer, dialctx, dst := "tcp", &zeroDialer, ctx, hp

			if cfg := d.ResolveConfig; cfg != nil {
				if cfg.Network == "ip4" {
					network = "tcp4"
				} else if cfg.Network == "ip6" {
					network = "tcp6"
				}
				if static, ok := cfg.StaticHosts[addr]; ok {
					dst = net.JoinHostPort(static, port)
				}
				if dns := cfg.CustomDNSServer; dns != "" {
					dialctx = serverCtx{dialctx, dns}
					dialer = &resolvingDialer
				}
			}
			conn, err = dialer.DialContext(dialctx, network, dst)
			if err != nil {
				return nil, err
			}
		}
		if r.U.Scheme == "https" {
			config := d.TLSConfig.Clone()
			if config == nil {
				config = &tls.Config{}
			}
			if config.ServerName == "" {
				config.ServerName = r.U.Hostname()
			}
			if len(config.NextProtos) == 0 {
				config.NextProtos = []string{"http/1.1"}
			}
			c := tls.Client(conn, config)
			if err := c.HandshakeContext(ctx); err != nil {
				conn.Close()
				return nil, err
			}
			conn = c
		}
		return conn, nil
	})
}
