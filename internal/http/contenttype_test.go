package http

import "testing"

func TestParseContentType(t *testing.T) {
	for name, c := range map[string]struct {
		in   string
		want ContentType
		ok   bool
	}{
		"Simple":       {"text/html", ContentType{Type: "text", Subtype: "html"}, true},
		"ParamDropped": {"text/html; charset=utf-8", ContentType{Type: "text", Subtype: "html"}, true},
		"Spaces":       {" application/json ", ContentType{Type: "application", Subtype: "json"}, true},
		"NoSlash":      {"texthtml", ContentType{}, false},
		"Empty":        {"", ContentType{}, false},
	} {
		c := c
		t.Run(name, func(t *testing.T) {
			got, ok := ParseContentType(c.in)
			if ok != c.ok || got != c.want {
				t.Errorf("ParseContentType(%q) = %+v, %v; want %+v, %v", c.in, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestCharsetParam(t *testing.T) {
	for name, c := range map[string]struct {
		in   string
		want string
	}{
		"None":        {"text/html", ""},
		"Plain":       {"text/html; charset=utf-8", "utf-8"},
		"Quoted":      {`text/html; charset="windows-1251"`, "windows-1251"},
		"UpperName":   {"text/html; CHARSET=gbk", "gbk"},
		"AmongOthers": {`multipart/form-data; boundary="b"; charset=utf-8`, "utf-8"},
		"EmptyValue":  {"text/html; charset=", ""},
		"NoEquals":    {"text/html; charset", ""},
	} {
		c := c
		t.Run(name, func(t *testing.T) {
			if got := charsetParam(c.in); got != c.want {
				t.Errorf("charsetParam(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestContentTypeString(t *testing.T) {
	for name, c := range map[string]struct {
		ct   ContentType
		want string
	}{
		"Bare":    {ContentType{Type: "text", Subtype: "plain"}, "text/plain"},
		"Charset": {ContentType{Type: "text", Subtype: "plain", Charset: "gbk"}, "text/plain; charset=gbk"},
		"Boundary": {
			ContentType{Type: "multipart", Subtype: "form-data", Boundary: "ab/cd"},
			`multipart/form-data; boundary="ab/cd"`,
		},
		"CharsetAndBoundary": {
			ContentType{Type: "multipart", Subtype: "mixed", Charset: "utf-8", Boundary: "x"},
			`multipart/mixed; charset=utf-8; boundary="x"`,
		},
	} {
		c := c
		t.Run(name, func(t *testing.T) {
			if got := c.ct.String(); got != c.want {
				t.Errorf("String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestContentTypeEqual(t *testing.T) {
	base := ContentType{Type: "text", Subtype: "plain"}
	for name, c := range map[string]struct {
		a, b  ContentType
		deflt string
		want  bool
	}{
		"Identical":            {base, base, "utf-8", true},
		"CaseInsensitive":      {base, ContentType{Type: "Text", Subtype: "PLAIN"}, "utf-8", true},
		"UnsetCharsetDefaults": {base, ContentType{Type: "text", Subtype: "plain", Charset: "utf-8"}, "utf-8", true},
		"CharsetDiffers":       {base, ContentType{Type: "text", Subtype: "plain", Charset: "gbk"}, "utf-8", false},
		"SubtypeDiffers":       {base, ContentType{Type: "text", Subtype: "html"}, "utf-8", false},
		"BoundaryIgnored":      {base, ContentType{Type: "text", Subtype: "plain", Boundary: "b"}, "utf-8", true},
	} {
		c := c
		t.Run(name, func(t *testing.T) {
			if got := c.a.Equal(c.b, c.deflt); got != c.want {
				t.Errorf("Equal(%+v, %+v, %q) = %v, want %v", c.a, c.b, c.deflt, got, c.want)
			}
		})
	}
}

func TestContentTypeIsText(t *testing.T) {
	for name, c := range map[string]struct {
		ct   ContentType
		want bool
	}{
		"TextPlain":   {ContentType{Type: "text", Subtype: "plain"}, true},
		"TextAny":     {ContentType{Type: "TEXT", Subtype: "csv"}, true},
		"JSON":        {ContentType{Type: "application", Subtype: "json"}, true},
		"XML":         {ContentType{Type: "application", Subtype: "xml"}, true},
		"JSONSuffix":  {ContentType{Type: "application", Subtype: "ld+json"}, true},
		"XMLSuffix":   {ContentType{Type: "application", Subtype: "soap+xml"}, true},
		"OctetStream": {ContentType{Type: "application", Subtype: "octet-stream"}, false},
		"Image":       {ContentType{Type: "image", Subtype: "png"}, false},
	} {
		c := c
		t.Run(name, func(t *testing.T) {
			if got := c.ct.IsText(); got != c.want {
				t.Errorf("IsText(%s) = %v, want %v", c.ct.String(), got, c.want)
			}
		})
	}
}
