// Package walk provides codegen-free iteration over a message's top-level
// fields and over one packed-repeated field's elements, driven only by wire
// type. Building an extension registry, diffing unknown fields, or
// inspecting a buffer with no generated dispatch table at all never need a
// Message implementation, only this package.
package walk

import (
	"fmt"

	"github.com/tinypb/wirepb/src/codec"
)

// Value holds the decoded payload of one field, tagged by which wire type
// it came from. Exactly one of Number or Bytes is meaningful, selected by
// WireType.
type Value struct {
	WireType codec.WireType
	Number   uint64
	Bytes    []byte
}

// EachFn is called once per top-level field found by MessageEach. Returning
// false (with a nil error) stops iteration early without it being an error.
type EachFn func(fieldNum int32, value Value) (bool, error)

// MessageEach iterates every top-level field in d's remaining input and
// invokes fn for each one, in wire order. It never validates field numbers
// against a schema: every tag is handed to fn regardless of whether the
// caller recognizes it.
func MessageEach(d *codec.Decoder, fn EachFn) error {
	var value Value
	for !d.EOF() {
		tag, err := d.DecodeTag()
		if err != nil {
			return err
		}
		if err := readValue(d, tag.WireType(), &value); err != nil {
			return fmt.Errorf("walk.MessageEach: %w", err)
		}
		cont, err := fn(tag.FieldNum(), value)
		if err != nil || !cont {
			return err
		}
	}
	return nil
}

// ElementType names the scalar proto3 field type PackedRepeatedEach should
// decode each packed element as. It is distinct from codec.WireType because
// several ElementType values share one wire type (e.g. int32 and sint32 are
// both varint-coded but decode differently upstream of this package).
type ElementType int

const (
	ElementInt32 ElementType = iota
	ElementInt64
	ElementUint32
	ElementUint64
	ElementSInt32
	ElementSInt64
	ElementBool
	ElementEnum
	ElementFixed64
	ElementSFixed64
	ElementDouble
	ElementFixed32
	ElementSFixed32
	ElementFloat
	ElementString
	ElementBytes
	ElementMessage
)

func (t ElementType) wireType() (codec.WireType, error) {
	switch t {
	case ElementInt32, ElementInt64, ElementUint32, ElementUint64,
		ElementSInt32, ElementSInt64, ElementBool, ElementEnum:
		return codec.WireVarint, nil
	case ElementFixed64, ElementSFixed64, ElementDouble:
		return codec.WireFixed64, nil
	case ElementFixed32, ElementSFixed32, ElementFloat:
		return codec.WireFixed32, nil
	case ElementString, ElementMessage, ElementBytes:
		return codec.WireBytes, nil
	default:
		return 0, fmt.Errorf("walk: unknown element type: %v", t)
	}
}

// PackedRepeatedEachFn is called once per element found by
// PackedRepeatedEach.
type PackedRepeatedEachFn func(value Value) (bool, error)

// PackedRepeatedEach iterates every element of the packed-repeated field
// whose length-delimited body is d's remaining input (i.e. d should already
// be positioned past the field's own tag and length prefix — typically d is
// a sub-decoder obtained the way codec.DecodePacked obtains one). elemType
// selects how each element's wire type is determined.
func PackedRepeatedEach(d *codec.Decoder, elemType ElementType, fn PackedRepeatedEachFn) error {
	wireType, err := elemType.wireType()
	if err != nil {
		return err
	}

	var value Value
	for !d.EOF() {
		if err := readValue(d, wireType, &value); err != nil {
			return fmt.Errorf("walk.PackedRepeatedEach: %w", err)
		}
		cont, err := fn(value)
		if err != nil || !cont {
			return err
		}
	}
	return nil
}

func readValue(d *codec.Decoder, wireType codec.WireType, value *Value) error {
	value.WireType = wireType
	switch wireType {
	case codec.WireVarint:
		v, err := d.DecodeVarint64()
		if err != nil {
			return err
		}
		value.Number = v
	case codec.WireFixed32:
		v, err := d.DecodeFixed32()
		if err != nil {
			return err
		}
		value.Number = uint64(v)
	case codec.WireFixed64:
		v, err := d.DecodeFixed64()
		if err != nil {
			return err
		}
		value.Number = v
	case codec.WireBytes:
		b, err := d.DecodeLenSlice()
		if err != nil {
			return err
		}
		value.Bytes = b
	case codec.WireStartGroup, codec.WireEndGroup:
		return codec.ErrDeprecation
	default:
		return codec.BadWireTypeError(uint8(wireType))
	}
	return nil
}
