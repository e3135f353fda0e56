// Package example hand-writes "generated" message types exercising the
// full message contract: Address, a small nested message, and Profile,
// which exercises scalars under both presence disciplines, packed and
// non-packed repeated fields, a map field, a bytes field, and an embedded
// message. Nothing here is a code generator; it is the stand-in a
// generator's output would take this shape as, used by this module's own
// tests.
package example

import (
	"github.com/tinypb/wirepb/presence"
	"github.com/tinypb/wirepb/src/codec"
)

// Address is a minimal nested message: field 1 is a proto3 string, field 2
// a sint32, both under implicit presence.
type Address struct {
	City string
	Zone int32
}

func (a *Address) Reset() {
	a.City = ""
	a.Zone = 0
}

func (a *Address) Size() int {
	n := 0
	if presence.ImplicitString(a.City) {
		n += codec.SizeTag(1, codec.WireBytes) + codec.SizeLenDelimited(len(a.City))
	}
	if presence.ImplicitNumeric(a.Zone) {
		n += codec.SizeTag(2, codec.WireVarint) + codec.SizeSInt32(a.Zone)
	}
	return n
}

func (a *Address) Encode(e *codec.Encoder) error {
	if presence.ImplicitString(a.City) {
		if err := e.EncodeTag(1, codec.WireBytes); err != nil {
			return err
		}
		if err := e.EncodeString(a.City); err != nil {
			return err
		}
	}
	if presence.ImplicitNumeric(a.Zone) {
		if err := e.EncodeTag(2, codec.WireVarint); err != nil {
			return err
		}
		if err := e.EncodeSInt32(a.Zone); err != nil {
			return err
		}
	}
	return nil
}

func (a *Address) Decode(d *codec.Decoder, budget int) error {
	return decodeBudgeted(d, budget, a.dispatch)
}

func (a *Address) DecodeLenDelimited(d *codec.Decoder) error {
	n, err := d.DecodeVarint32()
	if err != nil {
		return err
	}
	return a.Decode(d, int(n))
}

func (a *Address) dispatch(tag codec.Tag, d *codec.Decoder) (bool, error) {
	switch tag.FieldNum() {
	case 1:
		if tag.WireType() != codec.WireBytes {
			return true, d.SkipWireValue(tag)
		}
		b, err := d.DecodeLenSlice()
		if err != nil {
			return true, err
		}
		if err := codec.ValidateUTF8(b); err != nil {
			return true, err
		}
		a.City = string(b)
		return true, nil
	case 2:
		if tag.WireType() != codec.WireVarint {
			return true, d.SkipWireValue(tag)
		}
		v, err := d.DecodeSInt32()
		if err != nil {
			return true, err
		}
		a.Zone = v
		return true, nil
	default:
		return false, nil
	}
}
