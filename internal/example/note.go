package example

import (
	"github.com/tinypb/wirepb/presence"
	"github.com/tinypb/wirepb/src/codec"
)

// Note exercises the two generated-API behaviors the other example types do
// not: an explicit-presence string (Title, guarded by a hazzer bit, so an
// empty string still goes on the wire when set) and a generator-narrowed
// integer (Level, a proto3 int32 stored in 8 bits; the decoder truncates
// wire values to that width).
type Note struct {
	Level int8

	hazzer presence.Hazzer
	title  string
}

const titleBit = 0

// HasTitle reports whether Title carries explicit presence.
func (n *Note) HasTitle() bool { return n.hazzer.Has(titleBit) }

// Title returns the explicit-presence title value. Check HasTitle first.
func (n *Note) Title() string { return n.title }

// SetTitle sets the title and marks it explicitly present.
func (n *Note) SetTitle(s string) {
	n.title = s
	n.hazzer.Set(titleBit)
}

// ClearTitle clears explicit presence without changing the stored value.
func (n *Note) ClearTitle() { n.hazzer.Clear(titleBit) }

func (n *Note) Reset() {
	n.title = ""
	n.Level = 0
	n.hazzer.Reset()
}

func (n *Note) Size() int {
	sz := 0
	if n.HasTitle() {
		sz += codec.SizeTag(1, codec.WireBytes) + codec.SizeLenDelimited(len(n.title))
	}
	if presence.ImplicitNumeric(n.Level) {
		sz += codec.SizeTag(2, codec.WireVarint) + codec.SizeInt32(int32(n.Level))
	}
	return sz
}

func (n *Note) Encode(e *codec.Encoder) error {
	if n.HasTitle() {
		if err := e.EncodeTag(1, codec.WireBytes); err != nil {
			return err
		}
		if err := e.EncodeString(n.title); err != nil {
			return err
		}
	}
	if presence.ImplicitNumeric(n.Level) {
		if err := e.EncodeTag(2, codec.WireVarint); err != nil {
			return err
		}
		if err := e.EncodeInt32(int32(n.Level)); err != nil {
			return err
		}
	}
	return nil
}

func (n *Note) Decode(d *codec.Decoder, budget int) error {
	return decodeBudgeted(d, budget, n.dispatch)
}

func (n *Note) DecodeLenDelimited(d *codec.Decoder) error {
	sz, err := d.DecodeVarint32()
	if err != nil {
		return err
	}
	return n.Decode(d, int(sz))
}

func (n *Note) dispatch(tag codec.Tag, d *codec.Decoder) (bool, error) {
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
		n.title = string(b)
		n.hazzer.Set(titleBit)
		return true, nil
	case 2:
		if tag.WireType() != codec.WireVarint {
			return true, d.SkipWireValue(tag)
		}
		v, err := d.DecodeInt32()
		if err != nil {
			return true, err
		}
		n.Level = int8(v)
		return true, nil
	default:
		return false, nil
	}
}
