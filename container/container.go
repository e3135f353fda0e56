// Package container defines the narrow capability interfaces that decoded
// repeated, string, and map fields are written into. Each interface has a
// growable (heap-backed, unbounded) and a fixed-capacity (pre-sized,
// no-heap) implementation so the same generated field-dispatch code can
// target either without caring which it got.
package container

import "errors"

// ErrOverflow is returned by Push/Insert/WriteString/WriteSlice when a
// fixed-capacity container has no room left. Decode call sites lift this to
// a codec.DecodeError with KindCapacity; encoders never see it since
// encoding only ever reads containers, never pushes into them.
var ErrOverflow = errors.New("container: capacity exceeded")

// Sequence is the capability a repeated scalar, bytes, or message field
// decodes into.
type Sequence[T any] interface {
	Len() int
	Push(v T) error
	Reset()
	AsSlice() []T
	WriteSlice(v []T) error
}

// String is the capability a proto3 string field decodes into.
type String interface {
	Len() int
	Reset()
	WriteString(s string) error
	String() string
}

// Map is the capability a proto3 map field decodes into. Iteration order is
// implementation defined; key equality follows Go map semantics, so a
// decode that writes the same key twice overwrites rather than duplicating
// an entry (last write wins).
type Map[K comparable, V any] interface {
	Len() int
	Reset()
	Insert(k K, v V) error
	Range(fn func(K, V) bool)
}
