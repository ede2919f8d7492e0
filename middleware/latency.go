package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Latency logs the wall time of every exchange through the package logger,
// one event per request with the outcome attached.
func Latency() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *PreparedRequest) (*Response, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("url", req.U.String()),
				zap.Duration("elapsed", time.Since(start)),
			}
			if err != nil {
				Logger().Warn("request failed", append(fields, zap.Error(err))...)
			} else {
				Logger().Info("request done", append(fields, zap.Int("status", resp.StatusCode))...)
			}
			return resp, err
		}
	}
}
