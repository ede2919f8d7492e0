package dialer

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/url"

	"github.com/frankli0324/go-httpc/internal/errs"
	"github.com/frankli0324/go-httpc/internal/http"
	"github.com/frankli0324/go-httpc/internal/transport"
)

type ProxyConfig struct {
	TLSConfig      *tls.Config    // for the proxy hop itself; nil falls back to [CoreDialer.TLSConfig]
	ResolveLocally bool           // resolve the target here and CONNECT to an IP, hiding names from the proxy
	ResolveConfig  *ResolveConfig // resolver overrides for that local resolution
}

func (c *ProxyConfig) Clone() *ProxyConfig {
	if c == nil {
		return nil
	}
	return &ProxyConfig{
		TLSConfig:      c.TLSConfig.Clone(),
		ResolveLocally: c.ResolveLocally,
		ResolveConfig:  c.ResolveConfig.Clone(),
	}
}

var h1Transport = transport.HTTP1{}

func (d *CoreDialer) dialProxy(ctx context.Context, r *http.PreparedRequest) (net.Conn, error) {
	if r.Proxy == "" {
		return nil, nil
	}
	proxyU, err := url.Parse(r.Proxy)
	if err != nil {
		return nil, err
	}
	return d.DialContextOverProxy(ctx, r.U, proxyU)
}

// DialContextOverProxy creates a connection tunneled through an http(s)
// proxy with CONNECT. This part of logic may be reused when wrapping
// *[CoreDialer] into a new custom [Dialer].
func (d *CoreDialer) DialContextOverProxy(ctx context.Context, remote, proxy *url.URL) (net.Conn, error) {
	if proxy.Scheme != "http" && proxy.Scheme != "https" { // TODO: socks
		return nil, errors.New("unsupported proxy scheme:" + proxy.Scheme)
	}
	hp := proxy.Host
	if proxy.Port() == "" {
		hp = net.JoinHostPort(proxy.Hostname(), schemes[proxy.Scheme])
	}

	conn, err := zeroDialer.DialContext(ctx, "tcp", hp)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			// resolving the proxy itself failed, not the target
			return nil, errs.ErrTCPNameResolutionProxy.Wrap(err)
		}
		return nil, err
	}

	if proxy.Scheme == "https" {
		tlsCfg := d.ProxyConfig.tlsConfig()
		if tlsCfg == nil {
			tlsCfg = d.TLSConfig.Clone()
		}
		if tlsCfg == nil {
			tlsCfg = &tls.Config{}
		}
		if tlsCfg.ServerName == "" {
			tlsCfg.ServerName = proxy.Hostname()
		}
		c := tls.Client(conn, tlsCfg)
		if err := c.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		conn = c
	}

	addr, port := remote.Host, schemes[remote.Scheme]
	if add, prt, err := net.SplitHostPort(addr); err == nil {
		addr, port = add, prt
	}

	if d.ProxyConfig != nil && d.ProxyConfig.ResolveLocally {
		dnsCfg := d.ProxyConfig.ResolveConfig
		if dnsCfg == nil {
			dnsCfg = d.ResolveConfig
		} else {
			dnsCfg = dnsCfg.Merge(d.ResolveConfig)
		}

		if res, ok := dnsCfg.StaticHosts[addr]; ok {
			addr = res
		} else {
			ips, err := d.lookup(ctx, dnsCfg, addr)
			if err != nil {
				conn.Close()
				return nil, err
			}
			addr = ips[rand.Intn(len(ips))].String()
		}
	}

	target := net.JoinHostPort(addr, port)
	connReq := &http.PreparedRequest{
		Method:     "CONNECT",
		U:          &url.URL{Opaque: target},
		HeaderHost: target,
		KeepAlive:  true,
	}
	if u := proxy.User; u != nil {
		auth := u.Username()
		if pw, ok := u.Password(); ok {
			auth += ":" + pw
		}
		connReq.Headers = []http.HeaderField{
			{Name: "Proxy-Authorization", Value: "Basic " + base64.StdEncoding.EncodeToString([]byte(auth))},
		}
	}
	if err := h1Transport.Write(conn, connReq); err != nil {
		conn.Close()
		return nil, err
	}
	resp := &http.RawResponse{}
	if err := h1Transport.Read(conn, connReq, resp); err != nil {
		conn.Close()
		return nil, err
	}
	if resp.StatusCode != 200 {
		s, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, errs.ErrTCPConnect.Wrap(
			fmt.Errorf("proxy server returned error. status:%d, body:%s", resp.StatusCode, string(s)))
	}
	return conn, nil
}

func (c *ProxyConfig) tlsConfig() *tls.Config {
	if c == nil {
		return nil
	}
	return c.TLSConfig.Clone()
}
