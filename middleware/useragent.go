package middleware

import "context"

// UserAgent sets a default User-Agent on requests that do not carry one.
func UserAgent(agent string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *PreparedRequest) (*Response, error) {
			if headerIndex(req, "User-Agent") < 0 {
				setHeader(req, "User-Agent", agent)
			}
			return next(ctx, req)
		}
	}
}
