// Package multipart serializes MIME multipart messages from a tree of part
// nodes. Building the tree (dispositions, transfer encodings, nesting) is
// the caller's concern; this package owns the emission discipline: CRLF
// delimiting, boundary lines, terminators, and streaming payloads straight
// to the sink without buffering them whole.
package multipart

import (
	"bufio"
	"io"
)

const crlf = "\r\n"

// Field is one rendered part header, e.g. a Content-Disposition line.
type Field struct {
	Name  string
	Value string
}

// Payload is a part's body source. Text and Bytes are in-memory, Stream is
// copied through chunk-wise, Nested recurses into an inner multipart body
// with its own boundary.
type Payload interface{ isPayload() }

type Text string

type Bytes []byte

type Stream struct{ io.Reader }

type Nested struct {
	Boundary string
	Parts    []Part
}

func (Text) isPayload()   {}
func (Bytes) isPayload()  {}
func (Stream) isPayload() {}
func (Nested) isPayload() {}

// Part is one section: its headers in emission order and its payload.
type Part struct {
	Headers []Field
	Content Payload
}

// Write emits parts delimited by boundary into w:
//
//	--<boundary> CRLF, the part headers, a blank line, the payload, CRLF
//
// for every part, then the --<boundary>-- terminator. The outermost body
// gets one extra trailing CRLF after its terminator; nested bodies do not,
// their surrounding part supplies the delimiting.
func Write(w io.Writer, boundary string, parts []Part) error {
	return write(w, boundary, parts, false)
}

func write(w io.Writer, boundary string, parts []Part, nested bool) error {
	bw := bufio.NewWriter(w)
	for _, p := range parts {
		bw.WriteString("--")
		bw.WriteString(boundary)
		bw.WriteString(crlf)
		for _, f := range p.Headers {
			bw.WriteString(f.Name)
			bw.WriteString(": ")
			bw.WriteString(f.Value)
			bw.WriteString(crlf)
		}
		bw.WriteString(crlf)
		switch c := p.Content.(type) {
		case Text:
			bw.WriteString(string(c))
			bw.WriteString(crlf)
		case Bytes:
			bw.Write(c)
			bw.WriteString(crlf)
		case Stream:
			// flush so the copy below lands after everything written so far
			if err := bw.Flush(); err != nil {
				return err
			}
			// copy through c, not c.Reader: the wrapper hides WriteTo so the
			// source cannot dump itself into w in one unbounded write
			if _, err := io.Copy(w, c); err != nil {
				return err
			}
			bw.WriteString(crlf)
		case Nested:
			if err := bw.Flush(); err != nil {
				return err
			}
			if err := write(w, c.Boundary, c.Parts, true); err != nil {
				return err
			}
		}
	}
	bw.WriteString("--")
	bw.WriteString(boundary)
	bw.WriteString("--")
	bw.WriteString(crlf)
	if !nested {
		bw.WriteString(crlf)
	}
	return bw.Flush()
}
