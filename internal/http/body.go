package http

import "io"

// Body is a request payload. Exactly three shapes exist: raw bytes, a string
// serialized under the request's body charset, and a structured form. The
// marker method keeps the set closed; the encoder in encode.go is the single
// exhaustive switch over it.
type Body interface{ isBody() }

// BodyRaw passes through untouched; the content type is whatever the caller
// set, if anything.
type BodyRaw []byte

// BodyString is encoded with the resolved request charset (an explicit
// Content-Type header's charset wins over the configured body charset).
type BodyString string

// BodyForm encodes as application/x-www-form-urlencoded while every entry is
// a [NameValue]; one file entry switches the whole form to
// multipart/form-data, and only then is a boundary generated.
type BodyForm []FormEntry

func (BodyRaw) isBody()    {}
func (BodyString) isBody() {}
func (BodyForm) isBody()   {}

// hasFile reports whether the form must take the multipart route.
func (f BodyForm) hasFile() bool {
	for _, e := range f {
		switch e.(type) {
		case FormFile, MultipartMixed:
			return true
		}
	}
	return false
}

// FormEntry is one field of a [BodyForm], in submission order.
type FormEntry interface{ isFormEntry() }

// NameValue is a plain form field.
type NameValue struct {
	Name  string
	Value string
}

// FormFile is a single file upload under one field name.
type FormFile struct {
	Name string
	File File
}

// MultipartMixed groups several files under one field as a nested
// multipart/mixed body with its own boundary.
type MultipartMixed struct {
	Name  string
	Files []File
}

func (NameValue) isFormEntry()      {}
func (FormFile) isFormEntry()       {}
func (MultipartMixed) isFormEntry() {}

// File is an uploaded file: the filename presented to the server, its
// declared content type, and the data source.
type File struct {
	Name        string
	ContentType ContentType
	Data        FileData
}

// FileData is a file payload source. Plain text is written verbatim for
// textual content types and base64-encoded otherwise; Binary is written as
// raw bytes; Stream is copied through without ever being buffered whole.
type FileData interface{ isFileData() }

type Plain string

type Binary []byte

type Stream struct{ io.Reader }

func (Plain) isFileData()  {}
func (Binary) isFileData() {}
func (Stream) isFileData() {}
