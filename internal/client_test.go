package internal_test

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"testing/iotest"

	"github.com/frankli0324/go-httpc/internal"
	"github.com/frankli0324/go-httpc/internal/dialer"
	"github.com/frankli0324/go-httpc/internal/errs"
	"github.com/frankli0324/go-httpc/internal/http"
	"github.com/frankli0324/go-httpc/utils/netpool"
)

type tCase struct {
	data []byte
	req  http.Request
}

var reqShouldBe = map[string]tCase{
	"BasicRequest": {
		req:  http.NewRequest("http://www.example.com"),
		data: []byte("GET / HTTP/1.1\r\nHost: www.example.com\r\n\r\n"),
	},
	"QueryNonStandard": {
		req:  http.NewRequest("http://www.example.com/test?1=33=1"),
		data: []byte("GET /test?1=33=1 HTTP/1.1\r\nHost: www.example.com\r\n\r\n"),
	},
	"HeaderNotCanonicalized": {
		req:  http.NewRequest("http://www.example.com/").WithHeader(http.Custom{Name: "x-123-vv", Val: "1"}),
		data: []byte("GET / HTTP/1.1\r\nHost: www.example.com\r\nx-123-vv: 1\r\n\r\n"),
	},
	"URIFragmentNotIncluded": {
		req:  http.NewRequest("http://www.example.com/?test=1#frag"),
		data: []byte("GET /?test=1 HTTP/1.1\r\nHost: www.example.com\r\n\r\n"),
	},
	"QueryItemsEncoded": {
		req:  http.NewRequest("http://www.example.com/search").WithQuery("q", "go http").WithQuery("page", "2"),
		data: []byte("GET /search?q=go+http&page=2 HTTP/1.1\r\nHost: www.example.com\r\n\r\n"),
	},
	"CookieAndBasicAuth": {
		req: withCookie(
			http.NewRequest("http://www.example.com/").WithBasicAuth("user", "pass"),
			http.Cookie{Name: "a", Value: "1"},
		),
		data: []byte("GET / HTTP/1.1\r\nHost: www.example.com\r\n" +
			"Cookie: a=1\r\nAuthorization: Basic dXNlcjpwYXNz\r\n\r\n"),
	},
	"URLEncodedForm": {
		req: http.NewRequest("http://www.example.com/f").WithMethod(http.MethodPost).WithBody(http.BodyForm{
			http.NameValue{Name: "a", Value: "1"},
			http.NameValue{Name: "b", Value: "2"},
		}),
		data: []byte("POST /f HTTP/1.1\r\nHost: www.example.com\r\n" +
			"Content-Length: 7\r\nContent-Type: application/x-www-form-urlencoded\r\n\r\na=1&b=2"),
	},
}

func withCookie(r http.Request, c http.Cookie) http.Request {
	r, err := r.WithCookie(c)
	if err != nil {
		panic(err)
	}
	return r
}

func TestRequestSerialize(t *testing.T) {
	for name, cas := range reqShouldBe {
		tCase := cas
		t.Run(name, func(t *testing.T) {
			req := SendSingleRequest(t, tCase.req)
			if err := iotest.TestReader(req, tCase.data); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestClientHTTPS(t *testing.T) {
	server := httptest.NewTLSServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	pool := x509.NewCertPool()
	pool.AddCert(server.Certificate())
	client := &internal.Client{}
	client.SetDialer(&dialer.CoreDialer{TLSConfig: &tls.Config{RootCAs: pool}})

	resp, err := client.CtxDo(context.Background(), http.NewRequest(server.URL))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Close()
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.URL == nil || resp.URL.String() != server.URL {
		t.Errorf("resp.URL = %v, want %s", resp.URL, server.URL)
	}
	if text, err := resp.Text(); err != nil || text != "hello" {
		t.Errorf("body = %q, %v", text, err)
	}
}

func TestConnectionReuse(t *testing.T) {
	var conns int32
	server := httptest.NewUnstartedServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte("ok"))
	}))
	server.Config.ConnState = func(c net.Conn, s nethttp.ConnState) {
		if s == nethttp.StateNew {
			atomic.AddInt32(&conns, 1)
		}
	}
	server.Start()
	defer server.Close()

	client := &internal.Client{}
	client.SetDialer(&dialer.CoreDialer{ConnPool: netpool.NewGroup(10, 10)})
	for i := 0; i < 3; i++ {
		resp, err := client.CtxDo(context.Background(), http.NewRequest(server.URL))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := resp.Bytes(); err != nil {
			t.Fatal(err)
		}
		resp.Close()
	}
	if n := atomic.LoadInt32(&conns); n != 1 {
		t.Errorf("server saw %d connections, want 1", n)
	}
}

func TestCancelDuringBody(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Length", "10")
		w.Write([]byte("hel"))
		w.(nethttp.Flusher).Flush()
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := &internal.Client{}
	resp, err := client.CtxDo(ctx, http.NewRequest(server.URL))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Close()
	cancel()
	if _, err := resp.Bytes(); !errors.Is(err, errs.ErrCancelled) {
		t.Errorf("read error = %v, want ErrCancelled", err)
	}
}

func TestCancelBeforeDial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &internal.Client{}
	_, err := client.CtxDo(ctx, http.NewRequest("http://127.0.0.1:0/"))
	if !errors.Is(err, errs.ErrCancelled) {
		t.Errorf("err = %v, want ErrCancelled", err)
	}
}
