package http

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"golang.org/x/text/encoding"
)

// Response is the decoded form of a [RawResponse]. Headers are classified
// into the known taxonomy, Set-Cookie lines are folded into Cookies, and
// the body decode charset is fixed at decode time. The body itself stays
// lazy: nothing is read from the connection until the caller asks.
type Response struct {
	Proto      string
	Status     string
	StatusCode int

	// URL is the resolved URL this response came from. After redirects it
	// names the final hop, not the one the request started at.
	URL *url.URL

	// Headers holds every response header except Content-Length and
	// Set-Cookie, which surface through ContentLength and Cookies instead.
	// A header repeated on the wire keeps its last value.
	Headers map[ResponseHeader]string

	// Cookies maps Set-Cookie names to values, last occurrence winning.
	Cookies map[string]string

	ContentLength int64

	// Charset is the label text decoding resolved to.
	Charset string

	enc      encoding.Encoding
	body     io.ReadCloser
	consumed bool
	closed   bool
}

// DecodeResponse classifies the raw header list and resolves the body
// decode charset: the caller's override wins, then the charset parameter
// of the Content-Type header, then UTF-8. An unrecognized charset label
// falls back to UTF-8 silently rather than failing the response.
func DecodeResponse(raw *RawResponse, charsetOverride string) *Response {
	resp := &Response{
		Proto:         raw.Proto,
		Status:        raw.Status,
		StatusCode:    raw.StatusCode,
		Headers:       make(map[ResponseHeader]string, len(raw.Headers)),
		Cookies:       map[string]string{},
		ContentLength: raw.ContentLength,
		body:          raw.Body,
	}
	var declared string
	for _, f := range raw.Headers {
		h, ok := ClassifyResponseHeader(f.Name)
		if !ok {
			if strings.EqualFold(f.Name, "Set-Cookie") {
				if name, value, ok := parseSetCookie(f.Value); ok {
					resp.Cookies[name] = value
				}
			}
			continue
		}
		if h == ContentTypeResponse {
			declared = charsetParam(f.Value)
		}
		resp.Headers[h] = f.Value
	}
	resp.enc, resp.Charset = resolveCharset(charsetOverride, declared)
	return resp
}

// resolveCharset picks the decode encoding from the override and the
// declared label, in that order. Either label is canonicalized through the
// alias table first; anything unrecognized (or absent) means UTF-8.
func resolveCharset(override, declared string) (encoding.Encoding, string) {
	for _, label := range []string{override, declared} {
		if label == "" {
			continue
		}
		if enc, name, ok := lookupCharset(label); ok {
			return enc, name
		}
	}
	enc, name, _ := lookupCharset(DefaultCharset)
	return enc, name
}

// Body exposes the undecoded payload stream for callers that want to
// consume it incrementally. Reading from it competes with Text and Bytes;
// pick one style per response.
func (r *Response) Body() io.Reader {
	return r.body
}

// Bytes drains the body and returns it verbatim, then releases the
// underlying stream. It can be called once: afterwards the payload is gone
// and further calls report [ErrBodyConsumed].
func (r *Response) Bytes() ([]byte, error) {
	if r.consumed {
		return nil, ErrBodyConsumed
	}
	if r.closed {
		return nil, ErrBodyClosed
	}
	r.consumed = true
	data, err := io.ReadAll(r.body)
	if cerr := r.body.Close(); err == nil {
		err = cerr
	}
	r.closed = true
	return data, err
}

// Text drains the body and decodes it under the resolved charset.
// Malformed sequences never fail the decode; Text only errors on
// transport failures.
func (r *Response) Text() (string, error) {
	data, err := r.Bytes()
	if err != nil {
		return "", err
	}
	decoded, err := io.ReadAll(decodeReader(r.enc, bytes.NewReader(data)))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Close releases the body stream and the connection under it. It is safe
// to call multiple times and after Bytes or Text.
func (r *Response) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.body.Close()
}
