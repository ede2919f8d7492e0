// Package httpc is an http client library built around an immutable
// request value: requests are composed by successive With* transformations,
// assembled into an explicit wire message, and exchanged over pluggable
// dialers and transports. Exported types largely alias the internal
// packages, keeping one import path for users.
package httpc

import (
	"github.com/frankli0324/go-httpc/internal"
	"github.com/frankli0324/go-httpc/internal/http"
	"github.com/frankli0324/go-httpc/internal/multipart"
	"github.com/frankli0324/go-httpc/internal/transport"
)

type Client = internal.Client

// Middleware wraps the assemble→send→decode pipeline of a [Client]; see
// the middleware package for ready-made ones.
type Middleware = internal.Middleware
type Handler = internal.Handler

type Request = http.Request
type PreparedRequest = http.PreparedRequest
type Response = http.Response
type RawResponse = http.RawResponse

type QueryItem = http.QueryItem
type Credentials = http.Credentials
type Cookie = http.Cookie

// NewRequest starts a request for url with every default in place: GET,
// no body, cookies enabled, UTF-8 body charset.
var NewRequest = http.NewRequest

type Method = http.Method

const (
	MethodOptions = http.MethodOptions
	MethodGet     = http.MethodGet
	MethodHead    = http.MethodHead
	MethodPost    = http.MethodPost
	MethodPut     = http.MethodPut
	MethodDelete  = http.MethodDelete
	MethodTrace   = http.MethodTrace
	MethodPatch   = http.MethodPatch
	MethodConnect = http.MethodConnect
)

// ContentType is the parsed form of a Content-Type header value.
type ContentType = http.ContentType

var ParseContentType = http.ParseContentType

// Transport turns prepared requests into bytes on a stream and back; the
// default is HTTP1. Custom transports plug in via [Client.SetTransport].
type Transport = transport.Transport
type HTTP1 = transport.HTTP1

// BoundarySource yields the random indices multipart boundary generation
// draws from. Implementations must be safe for concurrent use; swap one in
// via [Client.SetBoundarySource] to pin boundaries in tests.
type BoundarySource = multipart.Source
