package example

import (
	"github.com/tinypb/wirepb/message"
	"github.com/tinypb/wirepb/presence"
	"github.com/tinypb/wirepb/src/codec"
)

// Record declares a single low-numbered field and accepts everything else
// as an extension, to exercise the registry path end to end: fields
// this type does not know about still round-trip through Encode/Decode
// unchanged, via Extensions.
type Record struct {
	Key string

	Extensions Registry
}

func (r *Record) Reset() {
	r.Key = ""
	r.Extensions.Reset()
}

func (r *Record) Size() int {
	n := 0
	if presence.ImplicitString(r.Key) {
		n += codec.SizeTag(1, codec.WireBytes) + codec.SizeLenDelimited(len(r.Key))
	}
	n += r.Extensions.ExtensionsSize()
	return n
}

func (r *Record) Encode(e *codec.Encoder) error {
	if presence.ImplicitString(r.Key) {
		if err := e.EncodeTag(1, codec.WireBytes); err != nil {
			return err
		}
		if err := e.EncodeString(r.Key); err != nil {
			return err
		}
	}
	return r.Extensions.EncodeExtensions(e)
}

func (r *Record) Decode(d *codec.Decoder, budget int) error {
	return message.DecodeBudgeted(d, budget, r.dispatch, &r.Extensions)
}

func (r *Record) DecodeLenDelimited(d *codec.Decoder) error {
	n, err := d.DecodeVarint32()
	if err != nil {
		return err
	}
	return r.Decode(d, int(n))
}

func (r *Record) dispatch(tag codec.Tag, d *codec.Decoder) (bool, error) {
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
		r.Key = string(b)
		return true, nil
	default:
		return false, nil
	}
}
