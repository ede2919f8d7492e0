// package transport contains implementations to requirements on *message syntaxes*
// defined by http related RFCs.
//
// as of 2022.06, RFCs that were to define HTTP/1.1 (RFC753x) are obsoleted by:
//
//	HTTP Semantics (RFC9110)
//	HTTP Caching (RFC9111) and
//	HTTP/1.1 (RFC9112)
//
// only the HTTP/1.1 message syntax is implemented here. the *semantics*
// (request composition, header taxonomy, body encodings) live in the
// internal/http package and reach this layer already assembled.

package transport
