package http

import (
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultCharset is the charset assumed wherever none is configured or
// declared: string bodies and form values are encoded with it, and response
// bodies fall back to it when the server declares nothing usable.
const DefaultCharset = "utf-8"

// Loose labels seen in the wild that the WHATWG table does not admit.
var charsetAliases = map[string]string{
	"utf8":  "utf-8",
	"utf16": "utf-16",
}

// lookupCharset resolves a charset label to its encoding via the WHATWG
// table, after canonicalizing loose aliases. ok is false for labels the
// table does not know; callers decide whether that is an error (encoding a
// request body) or a silent fallback (decoding a response).
func lookupCharset(label string) (encoding.Encoding, string, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if canon, ok := charsetAliases[label]; ok {
		label = canon
	}
	if e, name := charset.Lookup(label); e != nil {
		return e, name, true
	}
	return nil, "", false
}

// encodeString converts s (UTF-8 in memory, as all Go strings are) into its
// byte representation under enc. A nil enc means no conversion.
func encodeString(enc encoding.Encoding, s string) ([]byte, error) {
	if enc == nil {
		return []byte(s), nil
	}
	return enc.NewEncoder().Bytes([]byte(s))
}

// decodeReader wraps r so reads yield UTF-8. A nil enc passes r through.
func decodeReader(enc encoding.Encoding, r io.Reader) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}
