package internal

import (
	"context"
	"errors"
	"io"

	"github.com/frankli0324/go-httpc/internal/dialer"
	"github.com/frankli0324/go-httpc/internal/errs"
	"github.com/frankli0324/go-httpc/internal/http"
	"github.com/frankli0324/go-httpc/internal/multipart"
	"github.com/frankli0324/go-httpc/internal/transport"
)

type (
	Request         = http.Request
	PreparedRequest = http.PreparedRequest
	Response        = http.Response
)

// Handler executes one prepared exchange.
type Handler = func(ctx context.Context, req *PreparedRequest) (*Response, error)

// Middleware wraps a Handler with cross-cutting behavior. It runs once per
// CtxDo call, around the entire exchange.
type Middleware func(next Handler) Handler

// Client glues the pieces together: it assembles requests, runs the
// middleware chain, dials, and drives the transport. The zero value is a
// working client with the default dialer, HTTP/1.1 transport and boundary
// source. Configure a Client before sharing it between goroutines; the
// Set/Use methods are not synchronized with in-flight requests.
type Client struct {
	middlewares []Middleware
	dialer      dialer.Dialer
	transport   transport.Transport
	boundaries  multipart.Source
}

var defaultDialer = &dialer.CoreDialer{}
var defaultTransport = &transport.HTTP1{}

// Use appends mw to the chain. The first Use'd middleware is outermost: it
// sees the request first and the response last.
func (c *Client) Use(mws ...Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

// UseDialer replaces the dialer with wrap(current), so custom dialing
// behavior can layer over what is already configured.
func (c *Client) UseDialer(wrap func(d dialer.Dialer) dialer.Dialer) {
	c.dialer = wrap(c.dial())
}

func (c *Client) SetDialer(d dialer.Dialer) { c.dialer = d }

func (c *Client) SetTransport(t transport.Transport) { c.transport = t }

// SetBoundarySource swaps the multipart boundary source, mainly so tests
// can pin boundaries to known values. The source must be safe for
// concurrent use.
func (c *Client) SetBoundarySource(src multipart.Source) { c.boundaries = src }

func (c *Client) dial() dialer.Dialer {
	if c.dialer != nil {
		return c.dialer
	}
	return defaultDialer
}

func (c *Client) tr() transport.Transport {
	if c.transport != nil {
		return c.transport
	}
	return defaultTransport
}

func (c *Client) boundarySource() multipart.Source {
	if c.boundaries != nil {
		return c.boundaries
	}
	return multipart.DefaultSource
}

func (c *Client) Do(req Request) (*Response, error) {
	return c.CtxDo(context.Background(), req)
}

// CtxDo assembles req, runs it through the middleware chain and performs
// the exchange. Every failure it returns belongs to the errs taxonomy
// except composition errors, which surface as-is before anything touches
// the network. The response body stays live after CtxDo returns; the
// caller owns it and must Close the response on every path.
func (c *Client) CtxDo(ctx context.Context, req Request) (*Response, error) {
	pr, err := req.PrepareWithSource(c.boundarySource())
	if err != nil {
		return nil, err
	}
	next := c.exchange
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		next = c.middlewares[i](next)
	}
	resp, err := next(ctx, pr)
	if err != nil {
		return nil, errs.Classify(err)
	}
	return resp, nil
}

func (c *Client) exchange(ctx context.Context, pr *PreparedRequest) (*Response, error) {
	watch := watchExchange(ctx, pr.Timeout)
	defer watch.disarmOnError()

	conn, err := c.dial().Dial(watch.ctx, pr)
	if err != nil {
		return nil, watch.wrap(err)
	}
	watch.arm(conn)

	t := c.tr()
	if err := t.Write(conn, pr); err != nil {
		conn.Close()
		return nil, watch.wrap(err)
	}
	raw := &http.RawResponse{}
	if err := t.Read(conn, pr, raw); err != nil {
		conn.Close()
		if isStaleReuse(conn, err) {
			err = errs.ErrHTTPKeepAliveClosed.Wrap(err)
		}
		return nil, watch.wrap(err)
	}
	// the watchdog lives until the body is closed, so cancellation can
	// abort lazy body reads too
	raw.Body = watch.guard(raw.Body)
	resp := http.DecodeResponse(raw, pr.Charset)
	resp.URL = pr.U
	return resp, nil
}

// isStaleReuse reports whether err looks like the peer having torn down a
// pooled connection between exchanges: the very first read of the preamble
// hits EOF on a connection that already served a request.
func isStaleReuse(conn io.ReadWriteCloser, err error) bool {
	if !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false
	}
	r, ok := conn.(interface{ Reused() bool })
	return ok && r.Reused()
}
