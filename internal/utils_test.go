package internal_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/frankli0324/go-httpc/internal"
	"github.com/frankli0324/go-httpc/internal/dialer"
	"github.com/frankli0324/go-httpc/internal/http"
)

type CombinedReadWriteCloser struct {
	io.Reader
	io.Writer
	io.Closer
}

type TestDialer struct {
	io.ReadWriteCloser
}

// Dial implements dialer.Dialer.
func (t *TestDialer) Dial(ctx context.Context, r *http.PreparedRequest) (io.ReadWriteCloser, error) {
	return t.ReadWriteCloser, nil
}

// Unwrap implements dialer.Dialer.
func (t *TestDialer) Unwrap() dialer.Dialer {
	return nil
}

// SendSingleRequest runs req against a canned 200 response and returns a
// reader yielding the exact bytes the client put on the wire. The reader
// hits EOF once the exchange finishes and the connection is torn down.
func SendSingleRequest(t *testing.T, req http.Request) io.Reader {
	readResponse, writeResponse := io.Pipe()
	go io.Copy(writeResponse, strings.NewReader("HTTP/1.1 200 OK\r\nContent-Length: 0\r\nConnection: close\r\n\r\n"))

	readRequest, writeRequest := io.Pipe()
	c := &internal.Client{}
	c.UseDialer(func(dialer.Dialer) dialer.Dialer {
		return &TestDialer{CombinedReadWriteCloser{
			Reader: readResponse,
			Writer: writeRequest,
			Closer: writeRequest,
		}}
	})
	go func() {
		resp, err := c.CtxDo(context.Background(), req)
		if err != nil {
			t.Error(err)
			writeRequest.Close()
			return
		}
		resp.Close()
	}()
	return readRequest
}
