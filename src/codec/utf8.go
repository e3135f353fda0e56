package codec

import (
	"errors"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("codec: string field is not valid UTF-8")

func utf8Valid(b []byte) bool {
	return utf8.Valid(b)
}

// ValidateUTF8 reports a *DecodeError with KindUTF8 if b is not valid UTF-8,
// and nil otherwise. Exported for generated string-field decode paths that
// need to validate a raw slice obtained via DecodeLenSlice directly (e.g.
// map keys, where the scalar decode is driven field-by-field rather than
// through DecodeString).
func ValidateUTF8(b []byte) error {
	if !utf8Valid(b) {
		return UTF8Error(errInvalidUTF8)
	}
	return nil
}
