// Package nettools peeks at socket readiness below the net.Conn API.
package nettools

import (
	"net"
	"syscall"
)

// probe is installed by a platform file when the OS supports zero-timeout
// readiness checks. Nil means no verdict is possible.
var probe func(fd int) (readable bool, ok bool)

// IsIdleAlive reports whether an idle pooled connection is still usable.
// An idle HTTP/1.1 connection must be silent: any readability (stray bytes
// or a pending EOF) means the peer tore it down or broke the protocol, so
// the caller should discard it. Platforms without a probe report true and
// leave failure discovery to the next write.
func IsIdleAlive(c net.Conn) bool {
	if probe == nil {
		return true
	}
	rc := rawConn(c)
	if rc == nil {
		return true
	}
	alive := true
	if err := rc.Control(func(fd uintptr) {
		if readable, ok := probe(int(fd)); ok && readable {
			alive = false
		}
	}); err != nil {
		return true
	}
	return alive
}

func rawConn(raw net.Conn) syscall.RawConn {
	if t, ok := raw.(interface{ NetConn() net.Conn }); ok {
		// is *tls.Conn or polyfilled TLS Connection
		raw = t.NetConn()
	}
	if c, ok := raw.(syscall.Conn); ok {
		if c, err := c.SyscallConn(); err == nil {
			return c
		}
	}
	return nil
}
