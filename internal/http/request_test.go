package http

import (
	"errors"
	"testing"
)

func TestRequestImmutable(t *testing.T) {
	base := NewRequest("http://example.com/").WithHeader(Accept("text/html"))
	derived := base.WithMethod(MethodPost).WithHeader(Accept("application/json"))

	if h, _ := base.Header("Accept"); h.Value() != "text/html" {
		t.Errorf("base Accept = %q, want text/html", h.Value())
	}
	if base.Method().Token() != "GET" {
		t.Errorf("base method = %q, want GET", base.Method().Token())
	}
	if h, _ := derived.Header("Accept"); h.Value() != "application/json" {
		t.Errorf("derived Accept = %q, want application/json", h.Value())
	}
	if derived.Method() != MethodPost {
		t.Errorf("derived method = %q, want POST", derived.Method())
	}
}

// two derivations of one base must not share backing arrays
func TestRequestDerivationsIndependent(t *testing.T) {
	base := NewRequest("http://example.com/").WithQuery("base", "1")
	d1 := base.WithQuery("a", "1")
	d2 := base.WithQuery("b", "2")

	p1, err := d1.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	p2, err := d2.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	if got := p1.U.RawQuery; got != "base=1&a=1" {
		t.Errorf("d1 query = %q, want base=1&a=1", got)
	}
	if got := p2.U.RawQuery; got != "base=1&b=2" {
		t.Errorf("d2 query = %q, want base=1&b=2", got)
	}
}

func TestWithHeaderReplaceKeepsSlot(t *testing.T) {
	r := NewRequest("http://example.com/").
		WithHeader(UserAgent("first")).
		WithHeader(Accept("text/html")).
		WithHeader(UserAgent("second"))

	pr, err := r.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	want := []HeaderField{
		{"User-Agent", "second"},
		{"Accept", "text/html"},
	}
	if len(pr.Headers) != len(want) {
		t.Fatalf("headers = %v, want %v", pr.Headers, want)
	}
	for i := range want {
		if pr.Headers[i] != want[i] {
			t.Errorf("headers[%d] = %v, want %v", i, pr.Headers[i], want[i])
		}
	}
}

func TestWithHeaderReplaceCaseInsensitive(t *testing.T) {
	r := NewRequest("http://example.com/").
		WithHeader(UserAgent("typed")).
		WithHeader(Custom{Name: "user-agent", Val: "custom"})

	pr, err := r.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	if len(pr.Headers) != 1 || pr.Headers[0].Value != "custom" {
		t.Errorf("headers = %v, want single user-agent: custom", pr.Headers)
	}
}

func TestWithHeaderDistinctCustomNames(t *testing.T) {
	r := NewRequest("http://example.com/").
		WithHeader(Custom{Name: "X-Trace", Val: "abc"}).
		WithHeader(Custom{Name: "X-Span", Val: "def"})

	pr, err := r.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	want := []HeaderField{
		{"X-Trace", "abc"},
		{"X-Span", "def"},
	}
	if len(pr.Headers) != len(want) {
		t.Fatalf("headers = %v, want %v", pr.Headers, want)
	}
	for i := range want {
		if pr.Headers[i] != want[i] {
			t.Errorf("headers[%d] = %v, want %v", i, pr.Headers[i], want[i])
		}
	}
}

func TestWithCookie(t *testing.T) {
	r, err := NewRequest("http://example.com/").WithCookie(Cookie{Name: "a", Value: "1"})
	if err != nil {
		t.Fatal(err)
	}
	r, err = r.WithCookie(Cookie{Name: "b", Value: "2"})
	if err != nil {
		t.Fatal(err)
	}
	r, err = r.WithCookie(Cookie{Name: "a", Value: "3"})
	if err != nil {
		t.Fatal(err)
	}
	pr, err := r.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	if got := headerOf(pr, "Cookie"); got != "a=3; b=2" {
		t.Errorf("Cookie = %q, want a=3; b=2", got)
	}
}

func TestWithCookieDisabled(t *testing.T) {
	r := NewRequest("http://example.com/").WithCookiesDisabled()
	if _, err := r.WithCookie(Cookie{Name: "a", Value: "1"}); !errors.Is(err, ErrCookiesDisabled) {
		t.Errorf("err = %v, want ErrCookiesDisabled", err)
	}
}

func headerOf(pr *PreparedRequest, name string) string {
	for _, f := range pr.Headers {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}
