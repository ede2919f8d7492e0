package http

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/frankli0324/go-httpc/internal/multipart"
)

// encodedBody is the body encoder's output. A non-nil override replaces any
// Content-Type header already on the request: only the encoder knows the
// boundary and charset that actually went onto the wire. write is nil when
// the request carries no body at all; length is -1 when only streaming the
// payload can determine it.
type encodedBody struct {
	override *ContentType
	write    func(io.Writer) error
	length   int64
}

// encodeBody resolves a request body against the explicit content type (the
// request's Content-Type header, when set) and the configured body charset.
//
// Raw bytes pass through untouched. String bodies are serialized under the
// explicit content type's charset when it names one, else the configured
// charset. Forms of nothing but name/value pairs become
// application/x-www-form-urlencoded; one file entry switches the form to
// multipart/form-data under a freshly generated boundary.
func encodeBody(explicit *ContentType, charsetLabel string, body Body, src multipart.Source) (encodedBody, error) {
	switch b := body.(type) {
	case nil:
		return encodedBody{length: -1}, nil
	case BodyRaw:
		return encodedBody{
			write:  func(w io.Writer) error { _, err := w.Write(b); return err },
			length: int64(len(b)),
		}, nil
	case BodyString:
		label := charsetLabel
		if explicit != nil && explicit.Charset != "" {
			label = explicit.Charset
		}
		enc, _, ok := lookupCharset(defaulted(label))
		if !ok {
			return encodedBody{}, fmt.Errorf("%w: %q", ErrUnknownCharset, label)
		}
		data, err := encodeString(enc, string(b))
		if err != nil {
			return encodedBody{}, err
		}
		return encodedBody{
			write:  func(w io.Writer) error { _, err := w.Write(data); return err },
			length: int64(len(data)),
		}, nil
	case BodyForm:
		return encodeForm(b, charsetLabel, src)
	default:
		return encodedBody{}, fmt.Errorf("httpc: unsupported body type: %T", body)
	}
}

func defaulted(label string) string {
	if label == "" {
		return DefaultCharset
	}
	return label
}

func encodeForm(form BodyForm, charsetLabel string, src multipart.Source) (encodedBody, error) {
	if len(form) == 0 {
		return encodedBody{
			write:  func(io.Writer) error { return nil },
			length: 0,
		}, nil
	}
	if !form.hasFile() {
		return encodeURLForm(form, charsetLabel)
	}

	boundary := multipart.Boundary(src)
	parts, err := formParts(form, src)
	if err != nil {
		return encodedBody{}, err
	}
	eb := encodedBody{
		override: &ContentType{Type: "multipart", Subtype: "form-data", Boundary: boundary},
		write:    func(w io.Writer) error { return multipart.Write(w, boundary, parts) },
		length:   -1,
	}
	if !form.hasStream() {
		// in-memory parts serialize deterministically, so a dry run against
		// a counter yields the exact Content-Length
		var n countWriter
		if err := multipart.Write(&n, boundary, parts); err != nil {
			return encodedBody{}, err
		}
		eb.length = int64(n)
	}
	return eb, nil
}

// encodeURLForm percent-encodes each pair under the configured charset and
// joins them with "&". The result is printable ASCII whatever the charset,
// so the payload transfers byte-for-byte.
func encodeURLForm(form BodyForm, charsetLabel string) (encodedBody, error) {
	enc, _, ok := lookupCharset(defaulted(charsetLabel))
	if !ok {
		return encodedBody{}, fmt.Errorf("%w: %q", ErrUnknownCharset, charsetLabel)
	}
	var sb strings.Builder
	for i, e := range form {
		nv := e.(NameValue) // hasFile ruled the others out
		name, err := encodeString(enc, nv.Name)
		if err != nil {
			return encodedBody{}, err
		}
		value, err := encodeString(enc, nv.Value)
		if err != nil {
			return encodedBody{}, err
		}
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(string(name)))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(string(value)))
	}
	data := sb.String()
	return encodedBody{
		override: &ContentType{Type: "application", Subtype: "x-www-form-urlencoded"},
		write:    func(w io.Writer) error { _, err := io.WriteString(w, data); return err },
		length:   int64(len(data)),
	}, nil
}

// formParts maps form entries onto the multipart tree in submission order.
// A MultipartMixed entry becomes a nested multipart/mixed container under a
// second, independently generated boundary; its files drop the name
// parameter and use disposition type "file" instead of "form-data", which
// is what consuming servers expect of nested per-field file groups.
func formParts(form BodyForm, src multipart.Source) ([]multipart.Part, error) {
	parts := make([]multipart.Part, 0, len(form))
	for _, e := range form {
		switch e := e.(type) {
		case NameValue:
			parts = append(parts, multipart.Part{
				Headers: []multipart.Field{{
					Name:  "Content-Disposition",
					Value: `form-data; name="` + escapeQuotes(e.Name) + `"`,
				}},
				Content: multipart.Text(e.Value),
			})
		case FormFile:
			p, err := filePart(e.Name, e.File, false)
			if err != nil {
				return nil, err
			}
			parts = append(parts, p)
		case MultipartMixed:
			inner := multipart.Boundary(src)
			children := make([]multipart.Part, 0, len(e.Files))
			for _, f := range e.Files {
				p, err := filePart("", f, true)
				if err != nil {
					return nil, err
				}
				children = append(children, p)
			}
			parts = append(parts, multipart.Part{
				Headers: []multipart.Field{
					{Name: "Content-Type", Value: "multipart/mixed; boundary=" + inner},
					{Name: "Content-Disposition", Value: `form-data; name="` + escapeQuotes(e.Name) + `"`},
				},
				Content: multipart.Nested{Boundary: inner, Parts: children},
			})
		}
	}
	return parts, nil
}

func filePart(name string, f File, inMixed bool) (multipart.Part, error) {
	disposition := `form-data; name="` + escapeQuotes(name) + `"; filename="` + escapeQuotes(f.Name) + `"`
	if inMixed {
		disposition = `file; filename="` + escapeQuotes(f.Name) + `"`
	}
	p := multipart.Part{Headers: []multipart.Field{
		{Name: "Content-Disposition", Value: disposition},
		{Name: "Content-Type", Value: f.ContentType.String()},
	}}
	switch data := f.Data.(type) {
	case Plain:
		if f.ContentType.IsText() {
			// textual types travel verbatim, no transfer-encoding header
			p.Content = multipart.Text(data)
		} else {
			p.Headers = append(p.Headers, multipart.Field{Name: "Content-Transfer-Encoding", Value: "base64"})
			p.Content = multipart.Text(base64.StdEncoding.EncodeToString([]byte(data)))
		}
	case Binary:
		p.Headers = append(p.Headers, multipart.Field{Name: "Content-Transfer-Encoding", Value: "binary"})
		p.Content = multipart.Bytes(data)
	case Stream:
		p.Headers = append(p.Headers, multipart.Field{Name: "Content-Transfer-Encoding", Value: "binary"})
		p.Content = multipart.Stream{Reader: data.Reader}
	default:
		return multipart.Part{}, fmt.Errorf("httpc: unsupported file data type: %T", f.Data)
	}
	return p, nil
}

func (f BodyForm) hasStream() bool {
	for _, e := range f {
		switch e := e.(type) {
		case FormFile:
			if _, ok := e.File.Data.(Stream); ok {
				return true
			}
		case MultipartMixed:
			for _, file := range e.Files {
				if _, ok := file.Data.(Stream); ok {
					return true
				}
			}
		}
	}
	return false
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

type countWriter int64

func (c *countWriter) Write(p []byte) (int, error) {
	*c += countWriter(len(p))
	return len(p), nil
}
