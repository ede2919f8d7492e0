package transport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/frankli0324/go-httpc/internal/errs"
	"github.com/frankli0324/go-httpc/internal/http"
	"github.com/frankli0324/go-httpc/internal/transport/chunked"
)

// HTTP1 speaks HTTP/1.1 over a raw byte stream. The zero value is ready to
// use; MaxHeaderBytes caps the response preamble and defaults to 1 MiB.
type HTTP1 struct {
	MaxHeaderBytes int
}

const defaultMaxHeaderBytes = 1 << 20

func (t *HTTP1) maxHeaderBytes() int {
	if t.MaxHeaderBytes > 0 {
		return t.MaxHeaderBytes
	}
	return defaultMaxHeaderBytes
}

func (t *HTTP1) Write(w io.Writer, r *http.PreparedRequest) error {
	if err := t.writeHeader(w, r); err != nil {
		return err
	}
	if r.WriteBody == nil {
		return nil
	}
	if r.ContentLength == -1 {
		cw := chunked.NewChunkedWriter(w)
		if err := r.WriteBody(cw); err != nil {
			return err
		}
		return cw.Close()
	}
	return r.WriteBody(w)
}

// writeHeader writes the request line and header part of an http 1.1
// request, e.g.:
//
//	GET / HTTP/1.1\r\n
//	Host: www.google.com\r\n
//	X-Xx-Yy: cccccc\r\n
//	\r\n
//
// Framing headers are derived here: a sized body gets Content-Length, an
// unsized one Transfer-Encoding: chunked. The remaining headers go out in
// exactly the order the request assembled them.
func (t *HTTP1) writeHeader(w io.Writer, r *http.PreparedRequest) error {
	header := bufio.NewWriter(w) // default bufsize is 4096

	header.WriteString(r.Method)
	header.WriteByte(' ')
	header.WriteString(r.U.RequestURI())
	header.WriteString(" HTTP/1.1\r\n")

	header.WriteString("Host: ")
	header.WriteString(r.HeaderHost)
	header.WriteString("\r\n")
	if r.WriteBody != nil {
		if r.ContentLength == -1 {
			header.WriteString("Transfer-Encoding: chunked\r\n")
		} else {
			header.WriteString("Content-Length: ")
			header.WriteString(strconv.FormatInt(r.ContentLength, 10))
			header.WriteString("\r\n")
		}
	} else if expectsBody(r.Method) {
		header.WriteString("Content-Length: 0\r\n")
	}
	if !r.KeepAlive {
		header.WriteString("Connection: close\r\n")
	}
	for _, f := range r.Headers {
		header.WriteString(f.Name)
		header.WriteString(": ")
		header.WriteString(f.Value)
		if _, err := header.WriteString("\r\n"); err != nil {
			return err
		}
	}
	if _, err := header.WriteString("\r\n"); err != nil {
		return err
	}
	return header.Flush()
}

// expectsBody lists the methods for which an absent body still warrants an
// explicit zero Content-Length.
func expectsBody(method string) bool {
	switch method {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}

func (t *HTTP1) Read(r io.Reader, req *http.PreparedRequest, resp *http.RawResponse) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	tp := textproto.NewReader(br)

	line, err := tp.ReadLine()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	proto, status, ok := strings.Cut(line, " ")
	if !ok || !strings.HasPrefix(proto, "HTTP/1.") {
		return errs.ErrHTTPInvalidResponse.Wrap(errors.New("malformed status line " + strconv.Quote(line)))
	}
	resp.Proto = proto
	resp.Status = strings.TrimLeft(status, " ")

	statusCode, _, _ := strings.Cut(resp.Status, " ")
	if len(statusCode) != 3 {
		return errs.ErrHTTPInvalidResponse.Wrap(errors.New("malformed status code " + statusCode))
	}
	resp.StatusCode, err = strconv.Atoi(statusCode)
	if err != nil || resp.StatusCode < 0 {
		return errs.ErrHTTPInvalidResponse.Wrap(errors.New("malformed status code " + statusCode))
	}

	total := len(line)
	for {
		line, err := tp.ReadLine()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
		if line == "" {
			break
		}
		if total += len(line); total > t.maxHeaderBytes() {
			return errs.ErrHTTPResponseTooLarge.Wrap(errors.New("response header section over limit"))
		}
		if line[0] == ' ' || line[0] == '\t' {
			return errs.ErrHTTPInvalidResponse.Wrap(errors.New("folded header line"))
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok || k == "" || k != textproto.TrimString(k) {
			return errs.ErrHTTPInvalidResponse.Wrap(fmt.Errorf("malformed header line %q", line))
		}
		resp.Headers = append(resp.Headers, http.HeaderField{
			Name: k, Value: textproto.TrimString(v),
		})
	}
	// some servers still send only the HTTP/1.0 cache hint
	if headerValue(resp.Headers, "Pragma") == "no-cache" && len(headerValues(resp.Headers, "Cache-Control")) == 0 {
		resp.Headers = append(resp.Headers, http.HeaderField{Name: "Cache-Control", Value: "no-cache"})
	}

	return t.readTransfer(br, r, req, resp)
}

// readTransfer decides the body framing and wires the body stream to the
// connection's afterlife: fully drained and reusable means release to the
// pool, anything else tears the connection down.
func (t *HTTP1) readTransfer(br *bufio.Reader, raw io.Reader, req *http.PreparedRequest, resp *http.RawResponse) error {
	contentLens := headerValues(resp.Headers, "Content-Length")

	// Hardening against response smuggling, per RFC 7230 Section 3.3.2
	if len(contentLens) > 1 {
		first := textproto.TrimString(contentLens[0])
		for _, ct := range contentLens[1:] {
			if first != textproto.TrimString(ct) {
				return errs.ErrHTTPInvalidResponse.Wrap(
					fmt.Errorf("message cannot contain multiple Content-Length headers; got %q", contentLens))
			}
		}
	}
	cl := int64(-1)
	if len(contentLens) > 0 {
		n, err := strconv.ParseUint(textproto.TrimString(contentLens[0]), 10, 63)
		if err != nil {
			return errs.ErrHTTPInvalidResponse.Wrap(fmt.Errorf("bad Content-Length %q", contentLens[0]))
		}
		cl = int64(n)
	}
	resp.ContentLength = cl

	reusable := req.KeepAlive && resp.Proto != "HTTP/1.0"
	if hasToken(headerValue(resp.Headers, "Connection"), "close") {
		reusable = false
	} else if resp.Proto == "HTTP/1.0" {
		reusable = req.KeepAlive && hasToken(headerValue(resp.Headers, "Connection"), "keep-alive")
	}
	release := func(clean bool) error {
		if c, ok := raw.(Releaser); ok && clean && reusable {
			c.Release()
			return nil
		}
		if c, ok := raw.(io.Closer); ok {
			return c.Close()
		}
		return nil
	}

	switch {
	case req.Method == "HEAD" || resp.StatusCode/100 == 1 ||
		resp.StatusCode == 204 || resp.StatusCode == 304 ||
		(req.Method == "CONNECT" && resp.StatusCode/100 == 2):
		resp.Body = &bodyCloser{r: emptyBody, release: release, eof: true}
	case hasToken(headerValue(resp.Headers, "Transfer-Encoding"), "chunked"):
		resp.Body = &bodyCloser{r: chunked.NewChunkedReader(br), release: release}
	case cl == 0:
		resp.Body = &bodyCloser{r: emptyBody, release: release, eof: true}
	case cl > 0:
		resp.Body = &bodyCloser{r: io.LimitReader(br, cl), release: release}
	default:
		// no framing at all: the body runs to connection close
		reusable = false
		resp.Body = &bodyCloser{r: br, release: release}
	}
	return nil
}

func headerValue(headers []http.HeaderField, name string) string {
	for _, f := range headers {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

func headerValues(headers []http.HeaderField, name string) (vv []string) {
	for _, f := range headers {
		if strings.EqualFold(f.Name, name) {
			vv = append(vv, f.Value)
		}
	}
	return
}

func hasToken(value, token string) bool {
	for _, t := range strings.Split(value, ",") {
		if strings.EqualFold(textproto.TrimString(t), token) {
			return true
		}
	}
	return false
}
