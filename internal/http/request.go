package http

import (
	"strings"
	"time"
)

// Request is an immutable description of one HTTP exchange. Every With*
// transformation returns a new value and never touches the receiver, so a
// base request is safe to hold as a template and derive from concurrently.
//
// The zero value is usable and carries the defaults: method GET, cookies
// enabled, keep-alive on, utf-8 body charset. [NewRequest] only adds the URL.
type Request struct {
	url    string
	method Method
	body   Body

	// set-order preserved; replacing keeps the original slot so wire
	// output stays deterministic
	headers []Header
	query   []QueryItem
	cookies []Cookie

	cookiesDisabled bool
	bodyCharset     string // empty means DefaultCharset
	respCharset     string // forced response decode charset, empty means none

	// transport-adjacent settings, passed through opaquely
	proxy       string
	timeout     time.Duration
	noKeepAlive bool
	credentials *Credentials
}

// QueryItem is one query-string pair, unencoded. Repeated names are allowed
// and keep their insertion order.
type QueryItem struct {
	Name  string
	Value string
}

// Credentials are applied as Basic authorization at assembly time.
type Credentials struct {
	Username string
	Password string
}

// NewRequest returns a GET request for url with default settings.
func NewRequest(url string) Request {
	return Request{url: url}
}

func (r Request) URL() string    { return r.url }
func (r Request) Method() Method { return r.method }
func (r Request) Body() Body     { return r.body }

// Header returns the header currently set under key, if any.
func (r Request) Header(key string) (Header, bool) {
	for _, h := range r.headers {
		if h.Key() == key {
			return h, true
		}
	}
	return nil, false
}

func (r Request) WithURL(url string) Request {
	r.url = url
	return r
}

func (r Request) WithMethod(m Method) Request {
	r.method = m
	return r
}

// WithHeader sets h, replacing any header with the same key. The replacement
// keeps the original header's position; keys are matched case-insensitively,
// so a [Custom] header collides with the typed header of the same name.
func (r Request) WithHeader(h Header) Request {
	hs := make([]Header, len(r.headers), len(r.headers)+1)
	copy(hs, r.headers)
	for i, old := range hs {
		if strings.EqualFold(old.Key(), h.Key()) {
			hs[i] = h
			r.headers = hs
			return r
		}
	}
	r.headers = append(hs, h)
	return r
}

// WithHeaders applies WithHeader for each given header in order.
func (r Request) WithHeaders(hs ...Header) Request {
	for _, h := range hs {
		r = r.WithHeader(h)
	}
	return r
}

func (r Request) WithBody(b Body) Request {
	r.body = b
	return r
}

// WithBodyCharset sets the charset used to serialize a string body and
// url-encoded form values. The label is resolved at Prepare time; unknown
// labels fail there with [ErrUnknownCharset].
func (r Request) WithBodyCharset(label string) Request {
	r.bodyCharset = label
	return r
}

// WithResponseCharset forces the charset used to decode the response body,
// regardless of what the server declares.
func (r Request) WithResponseCharset(label string) Request {
	r.respCharset = label
	return r
}

// WithQuery appends one query-string item. Items are percent-encoded and
// attached at assembly time, and only when the URL itself carries no query
// component.
func (r Request) WithQuery(name, value string) Request {
	q := make([]QueryItem, len(r.query), len(r.query)+1)
	copy(q, r.query)
	r.query = append(q, QueryItem{name, value})
	return r
}

// WithCookie adds c, replacing a cookie of the same name in place. Returns
// [ErrCookiesDisabled] when cookies were disabled on this request.
func (r Request) WithCookie(c Cookie) (Request, error) {
	if r.cookiesDisabled {
		return r, ErrCookiesDisabled
	}
	cs := make([]Cookie, len(r.cookies), len(r.cookies)+1)
	copy(cs, r.cookies)
	for i, old := range cs {
		if old.Name == c.Name {
			cs[i] = c
			r.cookies = cs
			return r, nil
		}
	}
	r.cookies = append(cs, c)
	return r, nil
}

// WithCookiesDisabled turns off cookie handling: nothing is sent and
// further WithCookie calls fail. Cookies already on the request are kept on
// the value but withheld from the wire.
func (r Request) WithCookiesDisabled() Request {
	r.cookiesDisabled = true
	return r
}

// WithProxy routes this request through the given proxy URL, overriding the
// dialer's own proxy selection.
func (r Request) WithProxy(url string) Request {
	r.proxy = url
	return r
}

// WithTimeout bounds the whole exchange, from dialing to reading the
// response preamble. Zero means no per-request bound.
func (r Request) WithTimeout(d time.Duration) Request {
	r.timeout = d
	return r
}

// WithKeepAlive controls connection reuse. Disabling it sends
// "Connection: close" and keeps the connection out of the pool.
func (r Request) WithKeepAlive(enabled bool) Request {
	r.noKeepAlive = !enabled
	return r
}

// WithBasicAuth attaches credentials, applied as an Authorization header at
// assembly time.
func (r Request) WithBasicAuth(username, password string) Request {
	r.credentials = &Credentials{Username: username, Password: password}
	return r
}
