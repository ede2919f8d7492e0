package http

import "strings"

// ResponseHeader is the canonical tag for a response header name. Known names
// classify to the constants below under their canonical spelling; anything
// else classifies to itself, so the tag set is closed but never lossy.
// Names that collide with request header types carry a Response suffix.
type ResponseHeader string

const (
	AccessControlAllowOrigin   ResponseHeader = "Access-Control-Allow-Origin"
	AcceptRanges               ResponseHeader = "Accept-Ranges"
	Age                        ResponseHeader = "Age"
	Allow                      ResponseHeader = "Allow"
	CacheControlResponse       ResponseHeader = "Cache-Control"
	ConnectionResponse         ResponseHeader = "Connection"
	ContentEncodingResponse    ResponseHeader = "Content-Encoding"
	ContentLanguageResponse    ResponseHeader = "Content-Language"
	ContentLocationResponse    ResponseHeader = "Content-Location"
	ContentMD5Response         ResponseHeader = "Content-MD5"
	ContentDispositionResponse ResponseHeader = "Content-Disposition"
	ContentRange               ResponseHeader = "Content-Range"
	ContentTypeResponse        ResponseHeader = "Content-Type"
	DateResponse               ResponseHeader = "Date"
	ETag                       ResponseHeader = "ETag"
	Expires                    ResponseHeader = "Expires"
	LastModified               ResponseHeader = "Last-Modified"
	Link                       ResponseHeader = "Link"
	Location                   ResponseHeader = "Location"
	P3P                        ResponseHeader = "P3P"
	PragmaResponse             ResponseHeader = "Pragma"
	ProxyAuthenticate          ResponseHeader = "Proxy-Authenticate"
	Refresh                    ResponseHeader = "Refresh"
	RetryAfter                 ResponseHeader = "Retry-After"
	Server                     ResponseHeader = "Server"
	StrictTransportSecurity    ResponseHeader = "Strict-Transport-Security"
	Trailer                    ResponseHeader = "Trailer"
	TransferEncoding           ResponseHeader = "Transfer-Encoding"
	Vary                       ResponseHeader = "Vary"
	ViaResponse                ResponseHeader = "Via"
	WarningResponse            ResponseHeader = "Warning"
	WWWAuthenticate            ResponseHeader = "WWW-Authenticate"
	XFrameOptions              ResponseHeader = "X-Frame-Options"
)

var knownResponseHeaders = func() map[string]ResponseHeader {
	m := make(map[string]ResponseHeader)
	for _, h := range []ResponseHeader{
		AccessControlAllowOrigin, AcceptRanges, Age, Allow,
		CacheControlResponse, ConnectionResponse, ContentEncodingResponse,
		ContentLanguageResponse, ContentLocationResponse, ContentMD5Response,
		ContentDispositionResponse, ContentRange, ContentTypeResponse,
		DateResponse, ETag, Expires, LastModified, Link, Location, P3P,
		PragmaResponse, ProxyAuthenticate, Refresh, RetryAfter, Server,
		StrictTransportSecurity, Trailer, TransferEncoding, Vary, ViaResponse,
		WarningResponse, WWWAuthenticate, XFrameOptions,
	} {
		m[strings.ToLower(string(h))] = h
	}
	return m
}()

// ClassifyResponseHeader maps a raw wire header name to its tag. It is total
// over names: unrecognized ones come back verbatim with ok == true. The two
// exceptions are Content-Length and Set-Cookie, which return ok == false;
// both surface through dedicated [Response] fields instead of the header map
// so a response never carries two representations of the same datum.
func ClassifyResponseHeader(name string) (h ResponseHeader, ok bool) {
	switch lower := strings.ToLower(name); lower {
	case "content-length", "set-cookie":
		return "", false
	default:
		if known, ok := knownResponseHeaders[lower]; ok {
			return known, true
		}
		return ResponseHeader(name), true
	}
}
