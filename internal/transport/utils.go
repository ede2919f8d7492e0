package transport

import (
	"io"
	"strings"
)

// Releaser marks connections that can go back to a pool instead of being
// torn down. The transport releases only connections it knows are clean:
// body fully consumed and reuse permitted by both peers.
type Releaser interface {
	Release()
}

// drainLimit bounds how much unread body Close swallows to salvage the
// connection for reuse; anything larger closes the connection instead.
const drainLimit = 32 << 10

type bodyCloser struct {
	r       io.Reader
	release func(clean bool) error
	eof     bool
}

func (b *bodyCloser) Read(p []byte) (n int, err error) {
	n, err = b.r.Read(p)
	if err == io.EOF {
		b.eof = true
	}
	return
}

func (b *bodyCloser) Close() error {
	if !b.eof {
		if n, _ := io.CopyN(io.Discard, b.r, drainLimit+1); n <= drainLimit {
			b.eof = true
		}
	}
	return b.release(b.eof)
}

var emptyBody = strings.NewReader("")
