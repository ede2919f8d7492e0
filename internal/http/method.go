package http

// Method is an HTTP request method token. The constants below cover the
// closed set from RFC 9110; any other non-empty value is sent on the wire
// as-is, so extension methods (e.g. WebDAV) need no special casing.
type Method string

const (
	MethodOptions Method = "OPTIONS"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodTrace   Method = "TRACE"
	MethodPatch   Method = "PATCH"
	MethodConnect Method = "CONNECT"
)

// Token returns the wire form of the method. An empty Method defaults to GET
// so that a zero-value [Request] stays usable.
func (m Method) Token() string {
	if m == "" {
		return string(MethodGet)
	}
	return string(m)
}
