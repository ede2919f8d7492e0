package chunked

import (
	"bufio"
	"errors"
	"io"
)

// NewChunkedReader undoes HTTP/1.1 chunked framing around r. When r is
// already buffered the same buffer is shared, so bytes past the final
// chunk stay available to whoever reads the stream next.
func NewChunkedReader(r io.Reader) io.Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &chunkedReader{wire: br}
}

type chunkedReader struct {
	wire   *bufio.Reader
	remain uint64 // unread data bytes of the open chunk
	open   bool
	done   bool
}

func (c *chunkedReader) Read(p []byte) (n int, err error) {
	if c.done {
		return 0, io.EOF
	}
	if !c.open {
		size, err := c.readSize()
		if err != nil {
			return 0, err
		}
		if size == 0 {
			if err := c.discardTrailer(); err != nil {
				return 0, err
			}
			c.done = true
			return 0, io.EOF
		}
		c.remain, c.open = size, true
	}
	if uint64(len(p)) > c.remain {
		p = p[:c.remain]
	}
	n, err = c.wire.Read(p)
	c.remain -= uint64(n)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return n, err
	}
	if c.remain == 0 {
		c.open = false
		if err := c.boundary(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// readSize parses a chunk-size line: hex digits terminated by CRLF. A
// size wider than 16 digits is rejected rather than silently overflowed.
func (c *chunkedReader) readSize() (uint64, error) {
	var size uint64
	digits := 0
	for {
		b, err := c.wire.ReadByte()
		if err != nil {
			return 0, unexpectedEOF(err)
		}
		if b == '\r' {
			break
		}
		d, ok := hexDigit(b)
		if !ok {
			return 0, errors.New("chunked: invalid byte in chunk size")
		}
		if digits++; digits > 16 {
			return 0, errors.New("chunked: chunk size out of range")
		}
		size = size<<4 | uint64(d)
	}
	b, err := c.wire.ReadByte()
	if err != nil {
		return 0, unexpectedEOF(err)
	}
	if b != '\n' {
		return 0, errors.New("chunked: malformed chunk size line")
	}
	return size, nil
}

// boundary consumes the CRLF that closes every chunk's data section.
func (c *chunkedReader) boundary() error {
	cr, err := c.wire.ReadByte()
	if err != nil {
		return unexpectedEOF(err)
	}
	lf, err := c.wire.ReadByte()
	if err != nil {
		return unexpectedEOF(err)
	}
	if cr != '\r' || lf != '\n' {
		return errors.New("chunked: malformed chunk boundary")
	}
	return nil
}

// discardTrailer eats trailer lines after the final chunk so the wire is
// left positioned at the start of the next response.
func (c *chunkedReader) discardTrailer() error {
	for {
		line, err := c.wire.ReadString('\n')
		if err != nil {
			return unexpectedEOF(err)
		}
		if line == "\r\n" || line == "\n" {
			return nil
		}
	}
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
