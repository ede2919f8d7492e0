// Package errs defines the closed taxonomy of request failures. Every error
// a client exchange can surface is one of the values below, optionally
// wrapping the lower-level cause; callers match with errors.Is and never
// need to understand platform error shapes.
package errs

// Error is one entry in the taxonomy. Two Errors are the same failure when
// group and reason match, whatever they wrap, so errors.Is works against
// the exported values regardless of cause.
type Error struct {
	group  string
	reason string
	error
}

func (e Error) Error() string {
	msg := e.group + ": " + e.reason
	if e.error != nil {
		msg += ": " + e.error.Error()
	}
	return msg
}

func (e Error) Wrap(err error) Error {
	if err == nil {
		return e
	}
	return Error{e.group, e.reason, err}
}

func (e Error) Unwrap() error {
	return e.error
}

func (e Error) Is(err error) bool {
	if err, ok := err.(Error); ok {
		return e.group == err.group && e.reason == err.reason
	}
	return false
}

// Group names the failure family: "tcp", "tls", "http" or "request".
func (e Error) Group() string {
	return e.group
}

func reg(group, reason string) Error { return Error{group, reason, nil} }

var (
	ErrTCPConnect             = reg("tcp", "connect failed")
	ErrTCPClosed              = reg("tcp", "connection closed")
	ErrTCPNameResolution      = reg("tcp", "name resolution failed")
	ErrTCPNameResolutionProxy = reg("tcp", "name resolution via proxy failed")

	ErrTLSBrokenTrust   = reg("tls", "certificate trust broken")
	ErrTLSSecureChannel = reg("tls", "secure channel failure")

	ErrHTTPKeepAliveClosed  = reg("http", "keep-alive connection closed by peer")
	ErrHTTPResponseTooLarge = reg("http", "response exceeds size limit")
	ErrHTTPInvalidResponse  = reg("http", "invalid server response")

	ErrCancelled = reg("request", "cancelled")

	// ErrUnclassified flags a failure shape no Classify rule recognizes.
	// Seeing it in the wild means the taxonomy has a gap that needs a new
	// entry, not that the request merely failed.
	ErrUnclassified = reg("internal", "unclassified failure")
)
