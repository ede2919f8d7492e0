package dialer

import (
	"context"
	"net"
)

// ResolveConfig steers name resolution for the dialer carrying it.
// The zero value resolves through the system defaults.
type ResolveConfig struct {
	CustomDNSServer string            // "host:port" to query instead of the system resolver
	Network         string            // "ip4" or "ip6" pins the address family, default "ip"
	StaticHosts     map[string]string // fixed answers consulted before DNS, like /etc/hosts
}

func (c *ResolveConfig) Clone() *ResolveConfig {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// Merge fills the zero fields of c from other, returning a new config.
func (c *ResolveConfig) Merge(other *ResolveConfig) *ResolveConfig {
	if c == nil {
		return other.Clone()
	}
	merged := c.Clone()
	if other == nil {
		return merged
	}
	if merged.CustomDNSServer == "" {
		merged.CustomDNSServer = other.CustomDNSServer
	}
	if merged.Network == "" {
		merged.Network = other.Network
	}
	if merged.StaticHosts == nil {
		merged.StaticHosts = other.StaticHosts
	}
	return merged
}

// serverCtx carries the DNS server override down to the resolver's dial
// hook. It answers for its own key directly instead of going through
// [context.WithValue], so lookups never walk unrelated context chains.
type serverCtx struct {
	context.Context
	server string
}

var serverCtxKey = &serverCtx{} // compared by address, the contents never matter

func (c serverCtx) Value(key interface{}) interface{} {
	if key == serverCtxKey {
		return c.server
	}
	return c.Context.Value(key)
}

// customResolver is a pure Go resolver whose transport dials whatever
// server the context pins, or the system-configured one otherwise.
var customResolver = net.Resolver{
	PreferGo: true,
	Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
		if server, ok := ctx.Value(serverCtxKey).(string); ok && server != "" {
			address = server
		}
		return zeroDialer.DialContext(ctx, network, address)
	},
}

func (d *CoreDialer) lookup(ctx context.Context, cfg *ResolveConfig, host string) ([]net.IP, error) {
	network, server := "ip", ""
	if cfg != nil {
		if cfg.Network != "" {
			network = cfg.Network
		}
		server = cfg.CustomDNSServer
	}
	return d.LookupIPServer(ctx, network, host, server)
}

// LookupIPServer resolves host against a specific DNS server, or the
// system one when dns is empty. This part of logic may be reused when
// wrapping *[CoreDialer] into a new custom [Dialer].
func (d *CoreDialer) LookupIPServer(ctx context.Context, network, host, dns string) ([]net.IP, error) {
	return customResolver.LookupIP(serverCtx{ctx, dns}, network, host)
}
