package codec

import "fmt"

// ErrKind enumerates the closed set of decode failure causes. Encoders never
// manufacture errors of their own; they return whatever the Writer returns.
type ErrKind int

const (
	// KindUnexpectedEOF means a read ran past the available bytes.
	KindUnexpectedEOF ErrKind = iota
	// KindVarIntLimit means the continuation bit was still set after the
	// maximum number of varint bytes for the target width.
	KindVarIntLimit
	// KindDeprecation means wire type 3 or 4 (group start/end) was seen.
	KindDeprecation
	// KindBadWireType means the wire type was not one of 0,1,2,3,4,5.
	KindBadWireType
	// KindUTF8 means a string field's bytes were not valid UTF-8.
	KindUTF8
	// KindCapacity means a container refused a push or insert.
	KindCapacity
	// KindReader means the underlying Reader returned an error of its own.
	KindReader
)

// DecodeError is the single error type returned by every decode operation in
// this package. Its Kind field identifies which of the taxonomy's seven
// causes applies; Limit and Wire carry the extra detail for the two kinds
// that need it, and Err carries the wrapped cause for KindUTF8 and
// KindReader.
type DecodeError struct {
	Kind  ErrKind
	Limit uint8 // valid for KindVarIntLimit
	Wire  uint8 // valid for KindBadWireType
	Err   error // valid for KindUTF8, KindReader
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindUnexpectedEOF:
		return "codec: unexpected EOF"
	case KindVarIntLimit:
		return fmt.Sprintf("codec: varint exceeds %d byte limit", e.Limit)
	case KindDeprecation:
		return "codec: group wire types are deprecated and unsupported"
	case KindBadWireType:
		return fmt.Sprintf("codec: bad wire type %d", e.Wire)
	case KindUTF8:
		return fmt.Sprintf("codec: invalid UTF-8: %v", e.Err)
	case KindCapacity:
		return "codec: container capacity exceeded"
	case KindReader:
		return fmt.Sprintf("codec: reader error: %v", e.Err)
	default:
		return "codec: decode error"
	}
}

// Unwrap exposes the wrapped UTF-8 or reader error so callers can use
// errors.As/errors.Is against it.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrUnexpectedEOF is returned whenever a read runs past the available bytes.
var ErrUnexpectedEOF = &DecodeError{Kind: KindUnexpectedEOF}

// ErrDeprecation is returned when a group wire type (3 or 4) is encountered.
var ErrDeprecation = &DecodeError{Kind: KindDeprecation}

// ErrCapacity is returned when a container refuses a push or insert.
var ErrCapacity = &DecodeError{Kind: KindCapacity}

// VarIntLimitError builds the VarIntLimit(n) error for a varint that ran past
// its byte budget (5 for 32-bit, 10 for 64-bit).
func VarIntLimitError(limit uint8) *DecodeError {
	return &DecodeError{Kind: KindVarIntLimit, Limit: limit}
}

// BadWireTypeError builds the BadWireType(w) error for a wire type outside
// {0,1,2,3,4,5}.
func BadWireTypeError(wire uint8) *DecodeError {
	return &DecodeError{Kind: KindBadWireType, Wire: wire}
}

// UTF8Error wraps a string field's UTF-8 validation failure.
func UTF8Error(err error) *DecodeError {
	return &DecodeError{Kind: KindUTF8, Err: err}
}

// ReaderError wraps a failure surfaced by the underlying Reader, preserving
// its original error value for inspection via Unwrap.
func ReaderError(err error) *DecodeError {
	return &DecodeError{Kind: KindReader, Err: err}
}

// IsCapacity reports whether err is itself a *DecodeError of KindCapacity,
// the error decode call sites return whenever a Sequence/String/Map push or
// insert is refused. A *DecodeError wrapped inside another error is not
// matched.
func IsCapacity(err error) bool {
	de, ok := err.(*DecodeError)
	return ok && de.Kind == KindCapacity
}
