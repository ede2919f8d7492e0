// Package middleware holds composition filters: middlewares that wrap the
// assemble→send→decode pipeline of a client. Filters see the request in
// its assembled wire form, after header and body encoding decisions were
// made, and run once per exchange.
package middleware

import (
	"strings"

	"github.com/frankli0324/go-httpc/internal"
	"github.com/frankli0324/go-httpc/internal/http"
)

type (
	Middleware = internal.Middleware
	Handler    = internal.Handler

	PreparedRequest = internal.PreparedRequest
	Response        = internal.Response
)

func headerIndex(req *PreparedRequest, name string) int {
	for i, h := range req.Headers {
		if strings.EqualFold(h.Name, name) {
			return i
		}
	}
	return -1
}

func setHeader(req *PreparedRequest, name, value string) {
	if i := headerIndex(req, name); i >= 0 {
		req.Headers[i].Value = value
		return
	}
	req.Headers = append(req.Headers, http.HeaderField{Name: name, Value: value})
}

func dropHeader(req *PreparedRequest, name string) {
	if i := headerIndex(req, name); i >= 0 {
		req.Headers = append(req.Headers[:i], req.Headers[i+1:]...)
	}
}
