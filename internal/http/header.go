package http

import (
	"strconv"
	"time"
)

// Header is one typed request header. Key is the wire name and doubles as the
// identity used for replacement: setting a header whose Key matches an
// already-set one replaces it. Value must be wire-ready, so types carrying
// structured payloads (dates, ranges) format themselves here and nowhere
// else.
//
// The set of implementations below is closed except for [Custom], whose Key
// is its own name, so distinct custom headers coexist while two customs with
// the same name collide like standard ones do.
type Header interface {
	Key() string
	Value() string
}

// RFC 1123 with the fixed GMT zone, the only date form emitted on the wire.
const timeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

func httpTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

type Accept string

func (h Accept) Key() string   { return "Accept" }
func (h Accept) Value() string { return string(h) }

type AcceptCharset string

func (h AcceptCharset) Key() string   { return "Accept-Charset" }
func (h AcceptCharset) Value() string { return string(h) }

type AcceptDatetime time.Time

func (h AcceptDatetime) Key() string   { return "Accept-Datetime" }
func (h AcceptDatetime) Value() string { return httpTime(time.Time(h)) }

type AcceptLanguage string

func (h AcceptLanguage) Key() string   { return "Accept-Language" }
func (h AcceptLanguage) Value() string { return string(h) }

type Authorization string

func (h Authorization) Key() string   { return "Authorization" }
func (h Authorization) Value() string { return string(h) }

type CacheControl string

func (h CacheControl) Key() string   { return "Cache-Control" }
func (h CacheControl) Value() string { return string(h) }

type Connection string

func (h Connection) Key() string   { return "Connection" }
func (h Connection) Value() string { return string(h) }

type ContentDisposition string

func (h ContentDisposition) Key() string   { return "Content-Disposition" }
func (h ContentDisposition) Value() string { return string(h) }

type ContentEncoding string

func (h ContentEncoding) Key() string   { return "Content-Encoding" }
func (h ContentEncoding) Value() string { return string(h) }

type ContentLanguage string

func (h ContentLanguage) Key() string   { return "Content-Language" }
func (h ContentLanguage) Value() string { return string(h) }

type ContentLocation string

func (h ContentLocation) Key() string   { return "Content-Location" }
func (h ContentLocation) Value() string { return string(h) }

type ContentMD5 string

func (h ContentMD5) Key() string   { return "Content-MD5" }
func (h ContentMD5) Value() string { return string(h) }

// ContentTypeHeader carries the structured media type; the body encoder may
// replace it wholesale when the body forces a particular encoding (see
// [Request.Prepare]).
type ContentTypeHeader ContentType

func (h ContentTypeHeader) Key() string   { return "Content-Type" }
func (h ContentTypeHeader) Value() string { return ContentType(h).String() }

type Date time.Time

func (h Date) Key() string   { return "Date" }
func (h Date) Value() string { return httpTime(time.Time(h)) }

type Expect string

func (h Expect) Key() string   { return "Expect" }
func (h Expect) Value() string { return string(h) }

type From string

func (h From) Key() string   { return "From" }
func (h From) Value() string { return string(h) }

type IfMatch string

func (h IfMatch) Key() string   { return "If-Match" }
func (h IfMatch) Value() string { return string(h) }

type IfModifiedSince time.Time

func (h IfModifiedSince) Key() string   { return "If-Modified-Since" }
func (h IfModifiedSince) Value() string { return httpTime(time.Time(h)) }

type IfNoneMatch string

func (h IfNoneMatch) Key() string   { return "If-None-Match" }
func (h IfNoneMatch) Value() string { return string(h) }

type IfRange string

func (h IfRange) Key() string   { return "If-Range" }
func (h IfRange) Value() string { return string(h) }

type MaxForwards int

func (h MaxForwards) Key() string   { return "Max-Forwards" }
func (h MaxForwards) Value() string { return strconv.Itoa(int(h)) }

type Origin string

func (h Origin) Key() string   { return "Origin" }
func (h Origin) Value() string { return string(h) }

type Pragma string

func (h Pragma) Key() string   { return "Pragma" }
func (h Pragma) Value() string { return string(h) }

type ProxyAuthorization string

func (h ProxyAuthorization) Key() string   { return "Proxy-Authorization" }
func (h ProxyAuthorization) Value() string { return string(h) }

// Range is a single bytes range. Finish < 0 leaves the range open-ended:
// RangeOf(0, 500) serializes to "bytes=0-500", RangeFrom(0) to "bytes=0-".
type Range struct {
	Start  int64
	Finish int64
}

func RangeOf(start, finish int64) Range { return Range{Start: start, Finish: finish} }
func RangeFrom(start int64) Range       { return Range{Start: start, Finish: -1} }

func (h Range) Key() string { return "Range" }
func (h Range) Value() string {
	v := "bytes=" + strconv.FormatInt(h.Start, 10) + "-"
	if h.Finish >= 0 {
		v += strconv.FormatInt(h.Finish, 10)
	}
	return v
}

type Referer string

func (h Referer) Key() string   { return "Referer" }
func (h Referer) Value() string { return string(h) }

type Upgrade string

func (h Upgrade) Key() string   { return "Upgrade" }
func (h Upgrade) Value() string { return string(h) }

type UserAgent string

func (h UserAgent) Key() string   { return "User-Agent" }
func (h UserAgent) Value() string { return string(h) }

type Via string

func (h Via) Key() string   { return "Via" }
func (h Via) Value() string { return string(h) }

type Warning string

func (h Warning) Key() string   { return "Warning" }
func (h Warning) Value() string { return string(h) }

type XHTTPMethodOverride Method

func (h XHTTPMethodOverride) Key() string   { return "X-HTTP-Method-Override" }
func (h XHTTPMethodOverride) Value() string { return Method(h).Token() }

// Custom is the escape hatch for headers outside the standard set.
type Custom struct {
	Name string
	Val  string
}

func (h Custom) Key() string   { return h.Name }
func (h Custom) Value() string { return h.Val }
