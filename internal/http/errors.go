package http

import "errors"

// Composition errors: deterministic failures raised while building or
// assembling a request, always before any network activity.
var (
	// ErrCookiesDisabled is returned by [Request.WithCookie] when cookies
	// were disabled on the request. Deliberately an error and not a no-op:
	// silently dropping a cookie the caller asked for hides real bugs.
	ErrCookiesDisabled = errors.New("httpc: cannot add cookie to a request with cookies disabled")

	// ErrInvalidHeader is returned from [Request.Prepare] for header names
	// or values that are not valid field tokens.
	ErrInvalidHeader = errors.New("httpc: invalid header field")

	// ErrUnknownCharset is returned from [Request.Prepare] when the body
	// charset label resolves to no known encoding. Response-side decoding
	// never returns this; it falls back to utf-8 instead.
	ErrUnknownCharset = errors.New("httpc: unknown charset label")

	// ErrBodyConsumed is returned when a one-shot body stream is read or
	// materialized a second time.
	ErrBodyConsumed = errors.New("httpc: body already consumed")

	// ErrBodyClosed is returned when reading a response body after Close.
	ErrBodyClosed = errors.New("httpc: read on closed response body")
)
