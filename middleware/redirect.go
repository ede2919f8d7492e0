package middleware

import (
	"context"
	"strings"

	"github.com/frankli0324/go-httpc/internal/http"
)

// FollowRedirects chases 3xx responses up to maxHops, resolving relative
// Location values against the current URL. Methods downgrade to GET on
// 301/302/303 (except HEAD, which stays HEAD) and the request body is
// dropped with them; 307/308 preserve method and body, so one-shot
// streaming bodies cannot be replayed across those. Credentials and
// cookies do not follow a redirect that changes host. Each intermediate
// response is closed before the next hop.
func FollowRedirects(maxHops int) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *PreparedRequest) (*Response, error) {
			for hop := 0; ; hop++ {
				resp, err := next(ctx, req)
				if err != nil {
					return nil, err
				}
				switch resp.StatusCode {
				case 301, 302, 303, 307, 308:
				default:
					return resp, nil
				}
				loc, ok := resp.Headers[http.Location]
				if !ok || hop >= maxHops {
					return resp, nil
				}
				u, perr := req.U.Parse(loc)
				if perr != nil {
					return resp, nil
				}
				resp.Close()

				if !strings.EqualFold(u.Host, req.U.Host) {
					dropHeader(req, "Cookie")
					dropHeader(req, "Authorization")
				}
				if resp.StatusCode != 307 && resp.StatusCode != 308 && req.Method != "HEAD" {
					req.Method = "GET"
					req.WriteBody = nil
					req.ContentLength = -1
					dropHeader(req, "Content-Type")
				}
				req.U = u
				req.HeaderHost = u.Host
			}
		}
	}
}
