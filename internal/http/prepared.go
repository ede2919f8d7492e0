package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/frankli0324/go-httpc/internal/multipart"
)

// HeaderField is one wire-formatted header line.
type HeaderField struct {
	Name, Value string
}

// PreparedRequest is the assembled, transport-ready form of a [Request].
// Every composition decision is resolved here: the final URL, the ordered
// header list exactly as it goes onto the wire, the body producer and its
// length. Transports consume it without reaching back into the Request.
type PreparedRequest struct {
	U      *url.URL
	Method string

	// HeaderHost is the authority for the Host header line, which is
	// written first and never appears in Headers.
	HeaderHost string
	Headers    []HeaderField

	// ContentLength is -1 when only streaming the body can reveal its
	// size; transports then switch to chunked transfer. WriteBody is nil
	// when the request carries no body at all.
	ContentLength int64
	WriteBody     func(io.Writer) error

	Proxy           string
	Timeout         time.Duration
	KeepAlive       bool
	CookiesDisabled bool

	// Charset forces the response decode charset when non-empty.
	Charset string
}

// Prepare assembles the request, drawing multipart boundaries from the
// process-wide source.
func (r Request) Prepare() (*PreparedRequest, error) {
	return r.PrepareWithSource(multipart.DefaultSource)
}

// PrepareWithSource assembles the request into a transport-ready message,
// drawing multipart boundaries from src. The request itself is never
// mutated; preparing twice yields two independent messages, identical up to
// freshly generated boundaries.
func (r Request) PrepareWithSource(src multipart.Source) (*PreparedRequest, error) {
	u, err := url.Parse(r.url)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("httpc: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("httpc: no host in request url")
	}
	if u.RawQuery == "" && len(r.query) > 0 {
		q, err := r.encodeQuery()
		if err != nil {
			return nil, err
		}
		u.RawQuery = q
	}

	pr := &PreparedRequest{
		U: u, Method: r.method.Token(),
		HeaderHost:      u.Host,
		Proxy:           r.proxy,
		Timeout:         r.timeout,
		KeepAlive:       !r.noKeepAlive,
		CookiesDisabled: r.cookiesDisabled,
		Charset:         r.respCharset,
	}

	cl := int64(-1)
	var explicit *ContentType
	ctAt := -1
	// user defined headers has higher priority
	for _, h := range r.headers {
		k, v := h.Key(), h.Value()
		if strings.EqualFold(k, "host") {
			if !httpguts.ValidHostHeader(v) {
				return nil, fmt.Errorf("%w: host %q", ErrInvalidHeader, v)
			}
			pr.HeaderHost = v
			continue
		}
		if strings.EqualFold(k, "content-length") {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				cl = n
			}
			continue
		}
		if !httpguts.ValidHeaderFieldName(k) || !httpguts.ValidHeaderFieldValue(v) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHeader, k)
		}
		if strings.EqualFold(k, "content-type") {
			if ct, ok := ParseContentType(v); ok {
				explicit, ctAt = &ct, len(pr.Headers)
			}
		}
		pr.Headers = append(pr.Headers, HeaderField{k, v})
	}

	if c := r.cookieHeader(u); c != "" {
		pr.Headers = append(pr.Headers, HeaderField{"Cookie", c})
	}
	if r.credentials != nil && !r.hasHeader("Authorization") {
		cred := r.credentials.Username + ":" + r.credentials.Password
		pr.Headers = append(pr.Headers, HeaderField{
			"Authorization", "Basic " + base64.StdEncoding.EncodeToString([]byte(cred)),
		})
	}

	body, err := encodeBody(explicit, r.bodyCharset, r.body, src)
	if err != nil {
		return nil, err
	}
	if body.override != nil {
		// only the encoder knows the boundary and charset that actually
		// went onto the wire, so its content type wins over an explicit one
		if ctAt >= 0 {
			pr.Headers[ctAt].Value = body.override.String()
		} else {
			pr.Headers = append(pr.Headers, HeaderField{"Content-Type", body.override.String()})
		}
	}
	pr.WriteBody = body.write
	pr.ContentLength = body.length
	if body.write != nil && body.length == -1 && cl != -1 {
		pr.ContentLength = cl // trust the caller for unsized bodies
	}
	if cl != -1 && body.length != -1 && body.length != cl {
		return nil, errors.New("conflicting value between body size and content-length request header")
	}
	return pr, nil
}

// encodeQuery renders the query items in insertion order, each name and
// value percent-encoded under the configured body charset.
func (r Request) encodeQuery() (string, error) {
	enc, _, ok := lookupCharset(defaulted(r.bodyCharset))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCharset, r.bodyCharset)
	}
	var sb strings.Builder
	for i, q := range r.query {
		name, err := encodeString(enc, q.Name)
		if err != nil {
			return "", err
		}
		value, err := encodeString(enc, q.Value)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(string(name)))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(string(value)))
	}
	return sb.String(), nil
}

// cookieHeader renders the Cookie header value for u, skipping cookies that
// do not apply to it. Cookies render in insertion order.
func (r Request) cookieHeader(u *url.URL) string {
	if r.cookiesDisabled || len(r.cookies) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range r.cookies {
		if !c.appliesTo(u) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(c.wireFragment())
	}
	return sb.String()
}

func (r Request) hasHeader(name string) bool {
	for _, h := range r.headers {
		if strings.EqualFold(h.Key(), name) {
			return true
		}
	}
	return false
}
