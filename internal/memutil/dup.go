package memutil

import "strings"

// Dup returns a fresh copy of b that shares no storage with it.
// A nil input yields nil: duplicating an absent value is not an error,
// the result is simply absent too. An empty non-nil slice stays an
// empty non-nil slice.
func Dup(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// DupN copies the first n bytes of b into a fresh slice.
// Nil input yields nil, same asymmetry as Dup.
func DupN(b []byte, n int) []byte {
	if b == nil {
		return nil
	}
	if n > len(b) {
		n = len(b)
	}
	out := make([]byte, n)
	copy(out, b[:n])
	return out
}

// Concat joins the given parts into a single string backed by exactly
// one allocation of the combined size.
func Concat(parts ...string) string {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	var sb strings.Builder
	sb.Grow(total)
	for _, p := range parts {
		sb.WriteString(p)
	}
	return sb.String()
}
