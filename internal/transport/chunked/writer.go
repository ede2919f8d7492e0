package chunked

import (
	"io"
	"strconv"
)

// NewChunkedWriter frames everything written to it as HTTP/1.1 chunks on
// w. The final zero-length chunk is never emitted on its own; callers
// terminate the stream with Close.
func NewChunkedWriter(w io.Writer) *chunkedWriter {
	return &chunkedWriter{Wire: w}
}

type chunkedWriter struct {
	Wire io.Writer
}

// Write emits p as one chunk. Zero-length writes are dropped since an
// empty chunk reads as end-of-body on the wire.
func (cw *chunkedWriter) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	head := strconv.FormatUint(uint64(len(p)), 16) + "\r\n"
	if _, err = io.WriteString(cw.Wire, head); err != nil {
		return 0, err
	}
	if n, err = cw.Wire.Write(p); err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	if _, err = io.WriteString(cw.Wire, "\r\n"); err != nil {
		return n, err
	}
	if f, ok := cw.Wire.(interface{ Flush() error }); ok {
		err = f.Flush()
	}
	return n, err
}

// Close terminates the chunked stream with the zero-length chunk and an
// empty trailer section.
func (cw *chunkedWriter) Close() error {
	n, err := io.WriteString(cw.Wire, "0\r\n\r\n")
	if err == nil && n != 5 {
		return io.ErrShortWrite
	}
	return err
}
