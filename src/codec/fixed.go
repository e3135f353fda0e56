package codec

import "math"

// DecodeFixed32 decodes a little-endian 32-bit fixed field (fixed32,
// sfixed32, float).
func (d *Decoder) DecodeFixed32() (uint32, error) {
	var b [4]byte
	if err := d.readExact(b[:]); err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

// DecodeFixed64 decodes a little-endian 64-bit fixed field (fixed64,
// sfixed64, double).
func (d *Decoder) DecodeFixed64() (uint64, error) {
	var b [8]byte
	if err := d.readExact(b[:]); err != nil {
		return 0, err
	}
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56, nil
}

// DecodeSFixed32 decodes a signed 32-bit fixed field.
func (d *Decoder) DecodeSFixed32() (int32, error) {
	u, err := d.DecodeFixed32()
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

// DecodeSFixed64 decodes a signed 64-bit fixed field.
func (d *Decoder) DecodeSFixed64() (int64, error) {
	u, err := d.DecodeFixed64()
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

// DecodeFloat decodes an IEEE-754 single-precision float, bit-cast from its
// fixed32 wire representation.
func (d *Decoder) DecodeFloat() (float32, error) {
	u, err := d.DecodeFixed32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// DecodeDouble decodes an IEEE-754 double-precision float, bit-cast from its
// fixed64 wire representation.
func (d *Decoder) DecodeDouble() (float64, error) {
	u, err := d.DecodeFixed64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// readExact reads len(dst) bytes, translating the underlying Reader's error
// (if any) into a *DecodeError.
func (d *Decoder) readExact(dst []byte) error {
	if err := d.r.ReadExact(dst); err != nil {
		if de, ok := err.(*DecodeError); ok {
			return de
		}
		return ReaderError(err)
	}
	return nil
}

// EncodeFixed32 emits a little-endian 32-bit fixed field.
func (e *Encoder) EncodeFixed32(v uint32) error {
	return e.w.WriteSlice([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

// EncodeFixed64 emits a little-endian 64-bit fixed field.
func (e *Encoder) EncodeFixed64(v uint64) error {
	return e.w.WriteSlice([]byte{
		byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24),
		byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56),
	})
}

// EncodeSFixed32 emits a signed 32-bit fixed field.
func (e *Encoder) EncodeSFixed32(v int32) error {
	return e.EncodeFixed32(uint32(v))
}

// EncodeSFixed64 emits a signed 64-bit fixed field.
func (e *Encoder) EncodeSFixed64(v int64) error {
	return e.EncodeFixed64(uint64(v))
}

// EncodeFloat emits a float as its fixed32 bit-cast representation.
func (e *Encoder) EncodeFloat(v float32) error {
	return e.EncodeFixed32(math.Float32bits(v))
}

// EncodeDouble emits a double as its fixed64 bit-cast representation.
func (e *Encoder) EncodeDouble(v float64) error {
	return e.EncodeFixed64(math.Float64bits(v))
}
