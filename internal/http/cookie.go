package http

import (
	"net/url"
	"strings"
	"time"
)

// Cookie is a single request cookie. Only Name and Value travel on the wire
// in the Cookie header; the remaining fields describe the cookie's intended
// scope and are honored locally (a Secure cookie is withheld from plain http
// requests). No jar is kept: cookies live exactly as long as the request
// they were attached to, unless the caller carries them over explicitly.
type Cookie struct {
	Name     string
	Value    string
	Expires  time.Time
	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool
}

// wireFragment renders the "name=value" pair for the Cookie request header.
func (c Cookie) wireFragment() string {
	return c.Name + "=" + c.Value
}

// appliesTo reports whether the cookie should accompany a request for u,
// following the RFC 6265 domain-match and path-match rules for the scope
// fields that are set.
func (c Cookie) appliesTo(u *url.URL) bool {
	if c.Secure && u.Scheme != "https" {
		return false
	}
	if !c.Expires.IsZero() && c.Expires.Before(time.Now()) {
		return false
	}
	if c.Domain != "" {
		d := strings.TrimPrefix(c.Domain, ".")
		if host := u.Hostname(); host != d && !strings.HasSuffix(host, "."+d) {
			return false
		}
	}
	if c.Path != "" {
		p := u.EscapedPath()
		if p == "" {
			p = "/"
		}
		if p != c.Path && !(strings.HasPrefix(p, c.Path) &&
			(strings.HasSuffix(c.Path, "/") || p[len(c.Path)] == '/')) {
			return false
		}
	}
	return true
}

// parseSetCookie extracts the name/value pair from one Set-Cookie header
// value, ignoring attributes. Malformed values (no "=") report ok == false
// and are skipped by the decoder rather than failing the response.
func parseSetCookie(v string) (name, value string, ok bool) {
	pair, _, _ := strings.Cut(v, ";")
	name, value, ok = strings.Cut(pair, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(value), ok
}
