package httpc

import (
	"github.com/frankli0324/go-httpc/internal/http"
)

// Body is what a request carries: raw bytes, a string serialized under the
// body charset, or a structured form. A form of plain name/value pairs
// goes out URL-encoded; one file entry switches it to multipart/form-data.
type Body = http.Body

type (
	BodyRaw    = http.BodyRaw
	BodyString = http.BodyString
	BodyForm   = http.BodyForm
)

// FormEntry is one field of a BodyForm, in submission order.
type FormEntry = http.FormEntry

type (
	NameValue      = http.NameValue
	FormFile       = http.FormFile
	MultipartMixed = http.MultipartMixed
)

// File couples a filename and content type with the actual data, which may
// be held in memory or streamed.
type File = http.File

// FileData is the content of a [File]: Plain text, Binary bytes, or a
// Stream copied to the wire without buffering.
type FileData = http.FileData

type (
	Plain  = http.Plain
	Binary = http.Binary
	Stream = http.Stream
)
