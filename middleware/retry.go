package middleware

import (
	"context"
	"errors"
	nethttp "net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/frankli0324/go-httpc/internal/errs"
	"github.com/frankli0324/go-httpc/internal/http"
)

// Retryable decides whether a finished exchange deserves another attempt.
// Exactly one of resp and err is set.
type Retryable func(resp *Response, err error) bool

// DefaultRetryable retries transient transport failures and the status
// codes that conventionally signal one. Cancelled exchanges never retry:
// the caller asked for them to stop.
func DefaultRetryable(resp *Response, err error) bool {
	if err != nil {
		return !errors.Is(err, errs.ErrCancelled) &&
			(errors.Is(err, errs.ErrHTTPKeepAliveClosed) ||
				errors.Is(err, errs.ErrTCPConnect) ||
				errors.Is(err, errs.ErrTCPClosed))
	}
	if resp == nil {
		return false
	}
	return resp.StatusCode >= 500 || resp.StatusCode == 429
}

// Retry re-runs failed exchanges up to maxAttempts in total, doubling the
// wait from minBackoff between attempts and honoring cancellation while
// waiting. A Retry-After header on a discarded response stretches the wait
// when it asks for longer than the backoff. Discarded responses are closed
// here; only the final one reaches the caller. Requests whose body streams
// from a one-shot source should not pass through Retry, since the stream
// is spent on the first attempt.
func Retry(maxAttempts int, minBackoff time.Duration, retryable Retryable) Middleware {
	if retryable == nil {
		retryable = DefaultRetryable
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, req *PreparedRequest) (*Response, error) {
			backoff := minBackoff
			for attempt := 1; ; attempt++ {
				resp, err := next(ctx, req)
				if attempt >= maxAttempts || !retryable(resp, err) {
					return resp, err
				}
				wait := retryDelay(resp, backoff)
				if resp != nil {
					resp.Close()
				}
				Logger().Debug("retrying request",
					zap.String("url", req.U.String()),
					zap.Int("attempt", attempt),
					zap.Duration("wait", wait),
					zap.Error(err))
				select {
				case <-time.After(wait):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
				backoff *= 2
			}
		}
	}
}

// retryDelay picks the wait before the next attempt: the backoff, unless
// the discarded response carries a Retry-After asking for longer. The
// header holds either delay seconds or an HTTP date.
func retryDelay(resp *Response, backoff time.Duration) time.Duration {
	if resp == nil {
		return backoff
	}
	ra, ok := resp.Headers[http.RetryAfter]
	if !ok {
		return backoff
	}
	var after time.Duration
	if secs, err := strconv.ParseInt(ra, 10, 64); err == nil {
		after = time.Duration(secs) * time.Second
	} else if t, err := nethttp.ParseTime(ra); err == nil {
		after = time.Until(t)
	}
	if after > backoff {
		return after
	}
	return backoff
}
