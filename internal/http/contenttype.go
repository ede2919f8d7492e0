package http

import (
	"strings"
)

// ContentType is the structured form of a MIME media type. Boundary is only
// ever populated by the body encoder when it generates a multipart payload;
// it is carried here so the synthesized Content-Type header and the encoded
// body always agree on the delimiter.
type ContentType struct {
	Type    string
	Subtype string
	Charset string // charset label, e.g. "utf-8"; empty means unspecified
	Boundary string
}

// ParseContentType splits a media type string into type and subtype.
// Parameters after the first ";" are discarded here; the response decoder
// extracts charset parameters separately from the raw header value.
// ok is false when the input has no "/".
func ParseContentType(s string) (ct ContentType, ok bool) {
	typ, rest, found := strings.Cut(s, "/")
	if !found {
		return ContentType{}, false
	}
	sub, _, _ := strings.Cut(rest, ";")
	return ContentType{
		Type:    strings.TrimSpace(typ),
		Subtype: strings.TrimSpace(sub),
	}, true
}

// charsetParam pulls the charset parameter out of a raw Content-Type header
// value. Returns "" when absent. Values may be quoted.
func charsetParam(v string) string {
	_, params, found := strings.Cut(v, ";")
	if !found {
		return ""
	}
	for _, p := range strings.Split(params, ";") {
		name, value, found := strings.Cut(p, "=")
		if !found || !strings.EqualFold(strings.TrimSpace(name), "charset") {
			continue
		}
		value = strings.TrimSpace(value)
		return strings.Trim(value, `"`)
	}
	return ""
}

// String renders "type/subtype", then "; charset=<name>" when a charset is
// set, then `; boundary="<token>"` when a boundary is set, in that order.
// The boundary is quoted: the generation alphabet contains tspecials.
func (ct ContentType) String() string {
	var b strings.Builder
	b.WriteString(ct.Type)
	b.WriteByte('/')
	b.WriteString(ct.Subtype)
	if ct.Charset != "" {
		b.WriteString("; charset=")
		b.WriteString(ct.Charset)
	}
	if ct.Boundary != "" {
		b.WriteString(`; boundary="`)
		b.WriteString(ct.Boundary)
		b.WriteString(`"`)
	}
	return b.String()
}

// Equal reports whether two content types denote the same media type and
// charset. Boundaries are generated per encoding and never part of identity.
// Unset charsets are defaulted to deflt (the request's body charset) before
// comparing, so "text/plain" and "text/plain; charset=utf-8" match under a
// utf-8 default.
func (ct ContentType) Equal(other ContentType, deflt string) bool {
	cs, ocs := ct.Charset, other.Charset
	if cs == "" {
		cs = deflt
	}
	if ocs == "" {
		ocs = deflt
	}
	return strings.EqualFold(ct.Type, other.Type) &&
		strings.EqualFold(ct.Subtype, other.Subtype) &&
		strings.EqualFold(cs, ocs)
}

// IsText reports whether part payloads of this type are written verbatim by
// the multipart generator instead of base64-encoded. Covers text/* and the
// textual application subtypes (json, xml and their +suffix forms).
func (ct ContentType) IsText() bool {
	if strings.EqualFold(ct.Type, "text") {
		return true
	}
	if !strings.EqualFold(ct.Type, "application") {
		return false
	}
	sub := strings.ToLower(ct.Subtype)
	return sub == "json" || sub == "xml" ||
		strings.HasSuffix(sub, "+json") || strings.HasSuffix(sub, "+xml")
}
