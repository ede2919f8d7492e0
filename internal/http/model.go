package http

import (
	"io"
)

// RawResponse is the transport's verbatim view of a response: the status
// line fields and the header lines in wire order, before classification.
// Body hands out the payload with transfer-encoding already undone;
// closing it releases the underlying connection.
type RawResponse struct {
	Proto      string
	Status     string
	StatusCode int
	Headers    []HeaderField

	ContentLength int64
	Body          io.ReadCloser
}
