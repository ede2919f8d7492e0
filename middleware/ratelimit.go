package middleware

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimit delays exchanges so their rate stays under limit, sharing one
// limiter across every request flowing through the filter. Waiting honors
// context cancellation and the request's own deadline.
func RateLimit(limit rate.Limit, burst int) Middleware {
	limiter := rate.NewLimiter(limit, burst)
	return func(next Handler) Handler {
		return func(ctx context.Context, req *PreparedRequest) (*Response, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
			return next(ctx, req)
		}
	}
}
