package errs

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"strings"
)

// Classify folds an arbitrary failure into the taxonomy. Errors already in
// it pass through untouched, so layers that tag failures at the source
// (the dialer knows a resolution failure happened via the proxy, Classify
// cannot) keep their precise category.
//
// Anything no rule recognizes comes back wrapped in ErrUnclassified rather
// than being forced into a near-miss category.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var taxed Error
	if errors.As(err, &taxed) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrCancelled.Wrap(err)
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return ErrCancelled.Wrap(err)
	}

	// resolver failures ride inside *net.OpError, so this check comes first
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrTCPNameResolution.Wrap(err)
	}

	var (
		unknownAuthority x509.UnknownAuthorityError
		hostname         x509.HostnameError
		certInvalid      x509.CertificateInvalidError
		recordHeader     tls.RecordHeaderError
	)
	switch {
	case errors.As(err, &unknownAuthority), errors.As(err, &hostname), errors.As(err, &certInvalid):
		return ErrTLSBrokenTrust.Wrap(err)
	case errors.As(err, &recordHeader):
		return ErrTLSSecureChannel.Wrap(err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch opErr.Op {
		case "dial":
			return ErrTCPConnect.Wrap(err)
		case "read", "write", "close":
			return ErrTCPClosed.Wrap(err)
		}
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.ErrClosedPipe) {
		return ErrTCPClosed.Wrap(err)
	}

	// handshake alerts surface as unexported crypto/tls error types; the
	// message prefix is the only stable signal they leave
	if strings.Contains(err.Error(), "tls:") {
		return ErrTLSSecureChannel.Wrap(err)
	}

	return ErrUnclassified.Wrap(err)
}
