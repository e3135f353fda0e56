package codec

// Encoder drives the wire-format encode primitives over a Writer. Running
// the same Encoder methods over a CountingWriter instead of a real sink
// computes size instead of bytes (see NewSizeEncoder in size.go).
type Encoder struct {
	w Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w Writer) *Encoder {
	return &Encoder{w: w}
}

// EncodeVarint32 emits v as a base-128 little-endian varint.
func (e *Encoder) EncodeVarint32(v uint32) error {
	return e.EncodeVarint64(uint64(v))
}

// EncodeVarint64 emits v as a base-128 little-endian varint.
func (e *Encoder) EncodeVarint64(v uint64) error {
	for v >= 0x80 {
		if err := e.w.WriteByte(byte(v) | 0x80); err != nil {
			return err
		}
		v >>= 7
	}
	return e.w.WriteByte(byte(v))
}

// EncodeInt32 emits a proto3 int32 as a 64-bit varint so negative values
// sign-extend the way the decoder expects.
func (e *Encoder) EncodeInt32(v int32) error {
	return e.EncodeVarint64(uint64(int64(v)))
}

// EncodeInt64 emits a proto3 int64.
func (e *Encoder) EncodeInt64(v int64) error {
	return e.EncodeVarint64(uint64(v))
}

// EncodeUint32 emits a proto3 uint32.
func (e *Encoder) EncodeUint32(v uint32) error {
	return e.EncodeVarint32(v)
}

// EncodeUint64 emits a proto3 uint64.
func (e *Encoder) EncodeUint64(v uint64) error {
	return e.EncodeVarint64(v)
}

// EncodeSInt32 emits a proto3 sint32 (zigzag-encoded).
func (e *Encoder) EncodeSInt32(v int32) error {
	return e.EncodeVarint32(ZigZagEncode32(v))
}

// EncodeSInt64 emits a proto3 sint64 (zigzag-encoded).
func (e *Encoder) EncodeSInt64(v int64) error {
	return e.EncodeVarint64(ZigZagEncode64(v))
}

// EncodeBool emits a proto3 bool as a single-byte varint.
func (e *Encoder) EncodeBool(v bool) error {
	if v {
		return e.w.WriteByte(1)
	}
	return e.w.WriteByte(0)
}

// EncodeTag emits a field tag built from fieldNum and wireType.
func (e *Encoder) EncodeTag(fieldNum int32, wireType WireType) error {
	return e.EncodeVarint32(TagFromParts(fieldNum, wireType).Varint())
}

// EncodeString emits a length-prefixed UTF-8 string.
func (e *Encoder) EncodeString(s string) error {
	if err := e.EncodeVarint32(uint32(len(s))); err != nil {
		return err
	}
	return e.w.WriteSlice([]byte(s))
}

// EncodeBytes emits a length-prefixed byte field.
func (e *Encoder) EncodeBytes(b []byte) error {
	if err := e.EncodeVarint32(uint32(len(b))); err != nil {
		return err
	}
	return e.w.WriteSlice(b)
}

// EncodePacked emits a packed-repeated field: one LEN record whose payload
// is the concatenation of each element's own encoding, with no per-element
// tag. payloadSize must equal the exact number of bytes elem will write for
// every element in vals (obtained from the matching Size helper); it is
// needed up front because the length prefix precedes the payload on the
// wire.
func EncodePacked[T any](e *Encoder, vals []T, payloadSize int, elem func(*Encoder, T) error) error {
	if err := e.EncodeVarint32(uint32(payloadSize)); err != nil {
		return err
	}
	for _, v := range vals {
		if err := elem(e, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeMessage emits a nested message as a LEN record: size as a varint
// prefix, followed by encodeFn's output. Callers normally obtain size and
// encodeFn from the child message's Size and Encode methods.
func (e *Encoder) EncodeMessage(size int, encodeFn func(*Encoder) error) error {
	if err := e.EncodeVarint32(uint32(size)); err != nil {
		return err
	}
	return encodeFn(e)
}

// EncodeMapEntry emits one map entry as a LEN record containing field 1 =
// key, field 2 = value, using the given per-field encoders and their
// corresponding sizes (obtained the same way as EncodeMessage's).
func EncodeMapEntry[K, V any](
	e *Encoder,
	key K, val V,
	keySize, valSize int,
	encodeKeyField func(*Encoder, K) error,
	encodeValField func(*Encoder, V) error,
) error {
	entrySize := keySize + valSize
	if err := e.EncodeVarint32(uint32(entrySize)); err != nil {
		return err
	}
	if err := encodeKeyField(e, key); err != nil {
		return err
	}
	return encodeValField(e, val)
}
