// Package codec implements the proto3 wire format: tags, varints, fixed
// width integers, length-delimited framing, and the Decoder/Encoder that
// drive them over a byte-oriented Reader/Writer pair.
package codec

import "fmt"

// WireType is the 3-bit suffix of a Tag identifying how a field's value is
// physically encoded on the wire.
type WireType uint8

const (
	WireVarint     WireType = 0
	WireFixed64    WireType = 1
	WireBytes      WireType = 2
	WireStartGroup WireType = 3
	WireEndGroup   WireType = 4
	WireFixed32    WireType = 5
)

func (w WireType) String() string {
	switch w {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "i64"
	case WireBytes:
		return "len"
	case WireStartGroup:
		return "start_group"
	case WireEndGroup:
		return "end_group"
	case WireFixed32:
		return "i32"
	default:
		return fmt.Sprintf("wiretype(%d)", uint8(w))
	}
}

// Tag packs a field number and a WireType into the varint that precedes
// every field's value on the wire: (field_number << 3) | wire_type.
type Tag uint32

// TagFromParts builds a Tag from a field number and wire type. The caller
// must ensure wireType <= 7; callers constructing tags for the wire (as
// opposed to parsing them) control both inputs so this is not re-validated
// here.
func TagFromParts(fieldNum int32, wireType WireType) Tag {
	return Tag(uint32(fieldNum)<<3 | uint32(wireType&0x7))
}

// FieldNum extracts the field number carried by the tag.
func (t Tag) FieldNum() int32 {
	return int32(uint32(t) >> 3)
}

// WireType extracts the wire type carried by the tag.
func (t Tag) WireType() WireType {
	return WireType(uint32(t) & 0x7)
}

// Varint returns the tag's own varint-encoded form as a plain integer,
// matching how it would appear as the first varint of a field on the wire.
func (t Tag) Varint() uint32 {
	return uint32(t)
}
