package middleware

import (
	"context"

	"github.com/google/uuid"
)

// RequestID stamps each request with a fresh X-Request-ID so client and
// server logs can be joined. A caller-supplied value is left alone.
func RequestID() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *PreparedRequest) (*Response, error) {
			if headerIndex(req, "X-Request-ID") < 0 {
				setHeader(req, "X-Request-ID", uuid.New().String())
			}
			return next(ctx, req)
		}
	}
}
