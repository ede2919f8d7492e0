package httpc

import (
	"github.com/frankli0324/go-httpc/internal/http"
)

// Header is a single typed request header; every type below satisfies it.
// Custom escapes the taxonomy for headers the library has no type for.
type Header = http.Header

type (
	Accept              = http.Accept
	AcceptCharset       = http.AcceptCharset
	AcceptDatetime      = http.AcceptDatetime
	AcceptLanguage      = http.AcceptLanguage
	Authorization       = http.Authorization
	CacheControl        = http.CacheControl
	Connection          = http.Connection
	ContentDisposition  = http.ContentDisposition
	ContentEncoding     = http.ContentEncoding
	ContentLanguage     = http.ContentLanguage
	ContentLocation     = http.ContentLocation
	ContentMD5          = http.ContentMD5
	ContentTypeHeader   = http.ContentTypeHeader
	Date                = http.Date
	Expect              = http.Expect
	From                = http.From
	IfMatch             = http.IfMatch
	IfModifiedSince     = http.IfModifiedSince
	IfNoneMatch         = http.IfNoneMatch
	IfRange             = http.IfRange
	MaxForwards         = http.MaxForwards
	Origin              = http.Origin
	Pragma              = http.Pragma
	ProxyAuthorization  = http.ProxyAuthorization
	Range               = http.Range
	Referer             = http.Referer
	Upgrade             = http.Upgrade
	UserAgent           = http.UserAgent
	Via                 = http.Via
	Warning             = http.Warning
	XHTTPMethodOverride = http.XHTTPMethodOverride
	Custom              = http.Custom
)

var (
	RangeOf   = http.RangeOf
	RangeFrom = http.RangeFrom
)

// ResponseHeader keys the decoded response header map. Unknown names pass
// through verbatim, so lookups for nonstandard headers use
// ResponseHeader("X-Whatever").
type ResponseHeader = http.ResponseHeader

const (
	AccessControlAllowOrigin   = http.AccessControlAllowOrigin
	AcceptRanges               = http.AcceptRanges
	Age                        = http.Age
	Allow                      = http.Allow
	CacheControlResponse       = http.CacheControlResponse
	ConnectionResponse         = http.ConnectionResponse
	ContentEncodingResponse    = http.ContentEncodingResponse
	ContentLanguageResponse    = http.ContentLanguageResponse
	ContentLocationResponse    = http.ContentLocationResponse
	ContentMD5Response         = http.ContentMD5Response
	ContentDispositionResponse = http.ContentDispositionResponse
	ContentRange               = http.ContentRange
	ContentTypeResponse        = http.ContentTypeResponse
	DateResponse               = http.DateResponse
	ETag                       = http.ETag
	Expires                    = http.Expires
	LastModified               = http.LastModified
	Link                       = http.Link
	Location                   = http.Location
	P3P                        = http.P3P
	PragmaResponse             = http.PragmaResponse
	ProxyAuthenticate          = http.ProxyAuthenticate
	Refresh                    = http.Refresh
	RetryAfter                 = http.RetryAfter
	Server                     = http.Server
	StrictTransportSecurity    = http.StrictTransportSecurity
	Trailer                    = http.Trailer
	TransferEncoding           = http.TransferEncoding
	Vary                       = http.Vary
	ViaResponse                = http.ViaResponse
	WarningResponse            = http.WarningResponse
	WWWAuthenticate            = http.WWWAuthenticate
	XFrameOptions              = http.XFrameOptions
)
