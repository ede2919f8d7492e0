package multipart

import "math/rand"

// The delimiter alphabet. Note "/", "'" and ":" are tspecials, which is why
// the synthesized Content-Type header always quotes its boundary parameter.
const boundaryAlphabet = "abcdefghijklmnopqrstuvwxyz_-/':ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// boundaryLength is fixed; the token only needs to be unguessable enough to
// not collide with payload bytes, not cryptographically strong.
const boundaryLength = 30

// Source supplies the randomness for boundary generation. Implementations
// must tolerate concurrent calls; *math/rand.Rand qualifies only when it is
// not shared, the process-wide default below always does.
type Source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// DefaultSource draws from math/rand's process-wide, lock-protected source.
var DefaultSource Source = globalSource{}

// Boundary generates a fresh delimiter token from src, or from
// [DefaultSource] when src is nil. Every multipart container gets its own
// token: the outer form-data body and each nested mixed body never share.
func Boundary(src Source) string {
	if src == nil {
		src = DefaultSource
	}
	b := make([]byte, boundaryLength)
	for i := range b {
		b[i] = boundaryAlphabet[src.Intn(len(boundaryAlphabet))]
	}
	return string(b)
}
