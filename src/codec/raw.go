package codec

// ReadRaw reads exactly n bytes with no length prefix. It exists for
// callers that already know a frame's length out of band, like the
// top-level message decode entry point, which receives its byte budget as
// a parameter rather than reading it off the wire.
func (d *Decoder) ReadRaw(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := d.readExact(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteRaw writes b with no framing of its own. Pairs with ReadRaw; used by
// extension registries replaying a captured field's already-encoded value.
func (e *Encoder) WriteRaw(b []byte) error {
	return e.w.WriteSlice(b)
}

// CaptureWireValue reads one field's value, given its wire type, and
// returns the bytes that value occupies on the wire (including its own
// varint length prefix for WireBytes) with no leading tag. The WireBytes
// length prefix is re-encoded in its shortest varint form, so an
// over-padded prefix on the wire comes back shorter; every other byte is
// returned as read. This is the primitive an extension registry's
// DecodeUnknown typically builds on: it captures a tag's value opaquely
// instead of interpreting it, so the registry can replay it on encode
// without knowing the field's real type.
func (d *Decoder) CaptureWireValue(wireType WireType) ([]byte, error) {
	switch wireType {
	case WireVarint:
		buf := make([]byte, 0, 4)
		for i := uint8(0); i < varintBytes64; i++ {
			b, err := d.r.ReadByte()
			if err != nil {
				if de, ok := err.(*DecodeError); ok {
					return nil, de
				}
				return nil, ReaderError(err)
			}
			buf = append(buf, b)
			if b&0x80 == 0 {
				return buf, nil
			}
		}
		return nil, VarIntLimitError(varintBytes64)
	case WireFixed64:
		return d.ReadRaw(8)
	case WireFixed32:
		return d.ReadRaw(4)
	case WireBytes:
		n, err := d.DecodeVarint32()
		if err != nil {
			return nil, err
		}
		body, err := d.ReadRaw(int(n))
		if err != nil {
			return nil, err
		}
		gw := NewGrowableWriter(5 + len(body))
		enc := NewEncoder(gw)
		if err := enc.EncodeVarint32(n); err != nil {
			return nil, err
		}
		if err := gw.WriteSlice(body); err != nil {
			return nil, err
		}
		return gw.Bytes(), nil
	case WireStartGroup, WireEndGroup:
		return nil, ErrDeprecation
	default:
		return nil, BadWireTypeError(uint8(wireType))
	}
}
