package http

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/url"
	"strings"
	"testing"
)

// seqSource walks the boundary alphabet deterministically so multipart
// output is byte-reproducible, with distinct outer and inner boundaries.
type seqSource struct{ i int }

func (s *seqSource) Intn(n int) int {
	v := s.i % n
	s.i++
	return v
}

func mustEncode(t *testing.T, body Body, explicit *ContentType, label string) encodedBody {
	t.Helper()
	eb, err := encodeBody(explicit, label, body, &seqSource{})
	if err != nil {
		t.Fatal(err)
	}
	return eb
}

func render(t *testing.T, eb encodedBody) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := eb.write(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestEncodeBodyString(t *testing.T) {
	t.Run("DefaultCharset", func(t *testing.T) {
		eb := mustEncode(t, BodyString("héllo"), nil, "")
		if got := render(t, eb); string(got) != "héllo" {
			t.Errorf("data = %q", got)
		}
		if eb.length != int64(len("héllo")) {
			t.Errorf("length = %d", eb.length)
		}
	})
	t.Run("ConfiguredCharset", func(t *testing.T) {
		eb := mustEncode(t, BodyString("你好"), nil, "gbk")
		want := []byte{0xC4, 0xE3, 0xBA, 0xC3}
		if got := render(t, eb); !bytes.Equal(got, want) {
			t.Errorf("data = % X, want % X", got, want)
		}
		if eb.length != 4 {
			t.Errorf("length = %d, want 4", eb.length)
		}
	})
	t.Run("ExplicitContentTypeWins", func(t *testing.T) {
		ct := &ContentType{Type: "text", Subtype: "plain", Charset: "gbk"}
		eb := mustEncode(t, BodyString("你好"), ct, "utf-8")
		if got := render(t, eb); !bytes.Equal(got, []byte{0xC4, 0xE3, 0xBA, 0xC3}) {
			t.Errorf("data = % X, want gbk bytes", got)
		}
	})
	t.Run("UnknownCharset", func(t *testing.T) {
		_, err := encodeBody(nil, "klingon-1", BodyString("x"), nil)
		if !errors.Is(err, ErrUnknownCharset) {
			t.Errorf("err = %v, want ErrUnknownCharset", err)
		}
	})
}

func TestEncodeURLForm(t *testing.T) {
	eb := mustEncode(t, BodyForm{
		NameValue{Name: "q", Value: "go http"},
		NameValue{Name: "sym", Value: "a&b=c"},
		NameValue{Name: "中", Value: "文"},
	}, nil, "")
	got := string(render(t, eb))
	want := "q=go+http&sym=a%26b%3Dc&" + url.QueryEscape("中") + "=" + url.QueryEscape("文")
	if got != want {
		t.Errorf("encoded = %q, want %q", got, want)
	}
	if eb.override == nil || eb.override.String() != "application/x-www-form-urlencoded" {
		t.Errorf("override = %v", eb.override)
	}

	// the encoding round-trips through standard url decoding, order preserved
	vals, err := url.ParseQuery(got)
	if err != nil {
		t.Fatal(err)
	}
	for _, pair := range [][2]string{{"q", "go http"}, {"sym", "a&b=c"}, {"中", "文"}} {
		if vals.Get(pair[0]) != pair[1] {
			t.Errorf("round-trip %q = %q, want %q", pair[0], vals.Get(pair[0]), pair[1])
		}
	}
}

func TestEncodeURLFormCharset(t *testing.T) {
	eb := mustEncode(t, BodyForm{NameValue{Name: "q", Value: "你好"}}, nil, "gbk")
	if got := string(render(t, eb)); got != "q=%C4%E3%BA%C3" {
		t.Errorf("encoded = %q, want q=%%C4%%E3%%BA%%C3", got)
	}
}

func TestEncodeEmptyForm(t *testing.T) {
	eb := mustEncode(t, BodyForm{}, nil, "")
	if eb.length != 0 || eb.write == nil || eb.override != nil {
		t.Errorf("empty form = length %d, override %v", eb.length, eb.override)
	}
	if got := render(t, eb); len(got) != 0 {
		t.Errorf("data = %q, want empty", got)
	}
}

func TestEncodeMultipart(t *testing.T) {
	eb := mustEncode(t, BodyForm{
		NameValue{Name: "title", Value: "hello"},
		FormFile{Name: "up", File: File{
			Name:        "a.txt",
			ContentType: ContentType{Type: "text", Subtype: "plain"},
			Data:        Plain("content"),
		}},
	}, nil, "")

	b := "abcdefghijklmnopqrstuvwxyz_-/'" // first 30 alphabet symbols
	want := "--" + b + "\r\n" +
		`Content-Disposition: form-data; name="title"` + "\r\n" +
		"\r\n" +
		"hello\r\n" +
		"--" + b + "\r\n" +
		`Content-Disposition: form-data; name="up"; filename="a.txt"` + "\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"content\r\n" +
		"--" + b + "--\r\n" +
		"\r\n"
	got := string(render(t, eb))
	if got != want {
		t.Errorf("multipart body:\n%q\nwant:\n%q", got, want)
	}
	if eb.length != int64(len(want)) {
		t.Errorf("length = %d, want %d", eb.length, len(want))
	}
	if eb.override == nil || eb.override.Boundary != b {
		t.Errorf("override = %v, want boundary %q", eb.override, b)
	}
	if want := `multipart/form-data; boundary="` + b + `"`; eb.override.String() != want {
		t.Errorf("content type = %q, want %q", eb.override.String(), want)
	}
}

// the generated payload must parse back with the standard mime machinery
func TestEncodeMultipartStdlibRoundTrip(t *testing.T) {
	eb := mustEncode(t, BodyForm{
		NameValue{Name: "submit-name", Value: "Larry"},
		FormFile{Name: "files", File: File{
			Name:        "file1.txt",
			ContentType: ContentType{Type: "text", Subtype: "plain"},
			Data:        Plain("Hello World"),
		}},
	}, nil, "")

	mt, params, err := mime.ParseMediaType(eb.override.String())
	if err != nil {
		t.Fatal(err)
	}
	if mt != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mt)
	}
	mr := multipart.NewReader(bytes.NewReader(render(t, eb)), params["boundary"])

	p, err := mr.NextPart()
	if err != nil {
		t.Fatal(err)
	}
	if p.FormName() != "submit-name" {
		t.Errorf("first part name = %q, want submit-name", p.FormName())
	}
	if data, _ := io.ReadAll(p); string(data) != "Larry" {
		t.Errorf("first part payload = %q, want Larry", data)
	}

	p, err = mr.NextPart()
	if err != nil {
		t.Fatal(err)
	}
	if p.FormName() != "files" || p.FileName() != "file1.txt" {
		t.Errorf("second part = name %q, filename %q", p.FormName(), p.FileName())
	}
	if got := p.Header.Get("Content-Type"); got != "text/plain" {
		t.Errorf("part content type = %q, want text/plain", got)
	}
	if got := p.Header.Get("Content-Transfer-Encoding"); got != "" {
		t.Errorf("text part carries transfer encoding %q, want none", got)
	}
	if data, _ := io.ReadAll(p); string(data) != "Hello World" {
		t.Errorf("file payload = %q, want Hello World", data)
	}
	if _, err := mr.NextPart(); err != io.EOF {
		t.Errorf("after last part: %v, want io.EOF", err)
	}
}

func TestEncodeMultipartTransferEncodings(t *testing.T) {
	eb := mustEncode(t, BodyForm{
		FormFile{Name: "t", File: File{
			Name:        "t.json",
			ContentType: ContentType{Type: "application", Subtype: "json"},
			Data:        Plain(`{"a":1}`),
		}},
		FormFile{Name: "e", File: File{
			Name:        "e.bin",
			ContentType: ContentType{Type: "application", Subtype: "octet-stream"},
			Data:        Plain("hello"),
		}},
		FormFile{Name: "b", File: File{
			Name:        "b.bin",
			ContentType: ContentType{Type: "application", Subtype: "octet-stream"},
			Data:        Binary{0x00, 0x01, 0xFF},
		}},
	}, nil, "")

	b := "abcdefghijklmnopqrstuvwxyz_-/'"
	want := "--" + b + "\r\n" +
		`Content-Disposition: form-data; name="t"; filename="t.json"` + "\r\n" +
		"Content-Type: application/json\r\n" +
		"\r\n" +
		`{"a":1}` + "\r\n" +
		"--" + b + "\r\n" +
		`Content-Disposition: form-data; name="e"; filename="e.bin"` + "\r\n" +
		"Content-Type: application/octet-stream\r\n" +
		"Content-Transfer-Encoding: base64\r\n" +
		"\r\n" +
		"aGVsbG8=\r\n" +
		"--" + b + "\r\n" +
		`Content-Disposition: form-data; name="b"; filename="b.bin"` + "\r\n" +
		"Content-Type: application/octet-stream\r\n" +
		"Content-Transfer-Encoding: binary\r\n" +
		"\r\n" +
		"\x00\x01\xFF\r\n" +
		"--" + b + "--\r\n" +
		"\r\n"
	if got := string(render(t, eb)); got != want {
		t.Errorf("multipart body:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeMultipartNestedMixed(t *testing.T) {
	eb := mustEncode(t, BodyForm{
		MultipartMixed{Name: "files", Files: []File{
			{Name: "a.txt", ContentType: ContentType{Type: "text", Subtype: "plain"}, Data: Plain("A")},
			{Name: "b.txt", ContentType: ContentType{Type: "text", Subtype: "plain"}, Data: Plain("B")},
		}},
	}, nil, "")

	outer := "abcdefghijklmnopqrstuvwxyz_-/'"
	inner := ":ABCDEFGHIJKLMNOPQRSTUVWXYZabc" // next 30 draws
	want := "--" + outer + "\r\n" +
		"Content-Type: multipart/mixed; boundary=" + inner + "\r\n" +
		`Content-Disposition: form-data; name="files"` + "\r\n" +
		"\r\n" +
		"--" + inner + "\r\n" +
		`Content-Disposition: file; filename="a.txt"` + "\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"A\r\n" +
		"--" + inner + "\r\n" +
		`Content-Disposition: file; filename="b.txt"` + "\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"B\r\n" +
		"--" + inner + "--\r\n" +
		"--" + outer + "--\r\n" +
		"\r\n"
	if got := string(render(t, eb)); got != want {
		t.Errorf("nested multipart:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeMultipartStream(t *testing.T) {
	eb := mustEncode(t, BodyForm{
		FormFile{Name: "f", File: File{
			Name:        "s.bin",
			ContentType: ContentType{Type: "application", Subtype: "octet-stream"},
			Data:        Stream{strings.NewReader("streamed")},
		}},
	}, nil, "")
	if eb.length != -1 {
		t.Errorf("length = %d, want -1 for streamed form", eb.length)
	}
	got := string(render(t, eb))
	if !strings.Contains(got, "Content-Transfer-Encoding: binary\r\n\r\nstreamed\r\n") {
		t.Errorf("stream payload missing: %q", got)
	}
}

func TestEncodeMultipartQuoteEscaping(t *testing.T) {
	eb := mustEncode(t, BodyForm{
		NameValue{Name: `a"b`, Value: "v"},
		FormFile{Name: "f", File: File{
			Name:        `x".txt`,
			ContentType: ContentType{Type: "text", Subtype: "plain"},
			Data:        Plain("p"),
		}},
	}, nil, "")
	got := string(render(t, eb))
	if !strings.Contains(got, `name="a\"b"`) {
		t.Errorf("name quote not escaped: %q", got)
	}
	if !strings.Contains(got, `filename="x\".txt"`) {
		t.Errorf("filename quote not escaped: %q", got)
	}
}

// single boundary token used consistently: every delimiter line and the
// content-type parameter carry the same token
func TestEncodeMultipartBoundaryConsistent(t *testing.T) {
	eb := mustEncode(t, BodyForm{
		NameValue{Name: "a", Value: "1"},
		FormFile{Name: "f", File: File{
			Name:        "f.txt",
			ContentType: ContentType{Type: "text", Subtype: "plain"},
			Data:        Plain("x"),
		}},
	}, nil, "")
	token := eb.override.Boundary
	if len(token) != 30 {
		t.Fatalf("boundary length = %d, want 30", len(token))
	}
	got := string(render(t, eb))
	opens := strings.Count(got, "--"+token+"\r\n")
	closes := strings.Count(got, "--"+token+"--\r\n")
	if opens != 2 || closes != 1 {
		t.Errorf("delimiters: %d opens, %d closes; want 2 and 1", opens, closes)
	}
}
