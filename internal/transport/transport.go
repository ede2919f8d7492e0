package transport

import (
	"io"

	"github.com/frankli0324/go-httpc/internal/http"
)

// Transport writes a prepared request onto a byte stream and reads the
// response back off it. Implementations hold no per-exchange state, so a
// single value serves all goroutines.
type Transport interface {
	Write(w io.Writer, req *http.PreparedRequest) error
	Read(r io.Reader, req *http.PreparedRequest, resp *http.RawResponse) error
}
