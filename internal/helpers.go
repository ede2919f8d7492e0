package internal

import "github.com/frankli0324/go-httpc/internal/dialer"

// CloseIdleConnections closes the connections parked for reuse by every
// [dialer.CoreDialer] in the dialer chain. Connections serving in-flight
// requests are left alone.
func (c *Client) CloseIdleConnections() {
	for d := c.dial(); d != nil; d = d.Unwrap() {
		if cd, ok := d.(*dialer.CoreDialer); ok {
			cd.CloseIdleConnections()
		}
	}
}
