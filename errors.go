package httpc

import (
	"github.com/frankli0324/go-httpc/internal/errs"
	"github.com/frankli0324/go-httpc/internal/http"
)

// Composition errors surface synchronously while building or assembling a
// request, before anything touches the network.
var (
	ErrCookiesDisabled = http.ErrCookiesDisabled
	ErrInvalidHeader   = http.ErrInvalidHeader
	ErrUnknownCharset  = http.ErrUnknownCharset
	ErrBodyConsumed    = http.ErrBodyConsumed
	ErrBodyClosed      = http.ErrBodyClosed
)

// Error is the closed taxonomy every exchange failure belongs to. Match
// with errors.Is against the values below; the wrapped cause stays
// available through errors.Unwrap.
type Error = errs.Error

var (
	ErrTCPConnect             = errs.ErrTCPConnect
	ErrTCPClosed              = errs.ErrTCPClosed
	ErrTCPNameResolution      = errs.ErrTCPNameResolution
	ErrTCPNameResolutionProxy = errs.ErrTCPNameResolutionProxy

	ErrTLSBrokenTrust   = errs.ErrTLSBrokenTrust
	ErrTLSSecureChannel = errs.ErrTLSSecureChannel

	ErrHTTPKeepAliveClosed  = errs.ErrHTTPKeepAliveClosed
	ErrHTTPResponseTooLarge = errs.ErrHTTPResponseTooLarge
	ErrHTTPInvalidResponse  = errs.ErrHTTPInvalidResponse

	ErrCancelled = errs.ErrCancelled

	ErrUnclassified = errs.ErrUnclassified
)
