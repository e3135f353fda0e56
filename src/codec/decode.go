package codec

import "github.com/tinypb/wirepb/container"

// Decoder drives the wire-format decode primitives over a Reader. It holds
// no buffering of its own; all bytes come from r.
type Decoder struct {
	r Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r Reader) *Decoder {
	return &Decoder{r: r}
}

// EOF reports whether the decoder's Reader has no more bytes, when the
// Reader can report a bound. Streaming readers that cannot bound their
// input (RemainingHint() < 0) always report false; callers driving those
// must track their own budget (see message.DecodeBudgeted).
func (d *Decoder) EOF() bool {
	hint := d.r.RemainingHint()
	return hint >= 0 && hint == 0
}

// RemainingHint forwards to the underlying Reader.
func (d *Decoder) RemainingHint() int {
	return d.r.RemainingHint()
}

// DecodeLenSlice reads a varint length prefix and returns that many bytes as
// a freshly copied slice. Use DecodeLenSliceView for the zero-copy variant.
func (d *Decoder) DecodeLenSlice() ([]byte, error) {
	n, err := d.DecodeVarint32()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := d.readExact(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeLenSliceView reads a varint length prefix and returns a slice
// borrowed from the underlying Reader's backing store, avoiding an
// allocation. ok is false when the Reader cannot lend views at all (it does
// not implement SlicePeeker); in that case nothing has been consumed and
// the caller should fall back to DecodeLenSlice. A Reader that can lend
// views but holds fewer bytes than the prefix promises is a truncated
// input, reported as UnexpectedEof.
func (d *Decoder) DecodeLenSliceView() (s []byte, ok bool, err error) {
	peeker, isPeeker := d.r.(SlicePeeker)
	if !isPeeker {
		return nil, false, nil
	}
	n, err := d.DecodeVarint32()
	if err != nil {
		return nil, false, err
	}
	s, ok = peeker.PeekSlice(int(n))
	if !ok {
		return nil, false, ErrUnexpectedEOF
	}
	return s, true, nil
}

// DecodeString reads a length-delimited UTF-8 string and writes it into the
// given String container, translating container overflow into a Capacity
// decode error.
func DecodeString[S container.String](d *Decoder, dst S) error {
	b, err := d.DecodeLenSlice()
	if err != nil {
		return err
	}
	if !utf8Valid(b) {
		return UTF8Error(errInvalidUTF8)
	}
	if err := dst.WriteString(string(b)); err != nil {
		return ErrCapacity
	}
	return nil
}

// DecodeBytes reads a length-delimited byte field into the given
// Sequence[byte] container.
func DecodeBytes[S container.Sequence[byte]](d *Decoder, dst S) error {
	b, err := d.DecodeLenSlice()
	if err != nil {
		return err
	}
	if err := dst.WriteSlice(b); err != nil {
		return ErrCapacity
	}
	return nil
}

// DecodePacked reads one packed-repeated LEN record and repeatedly invokes
// elem to decode each element, pushing it into dst, until the sub-reader
// created for that record is exhausted. It never consults the outer
// reader's budget: only the packed record's own length governs how many
// elements are read.
func DecodePacked[T any, S container.Sequence[T]](d *Decoder, dst S, elem func(*Decoder) (T, error)) error {
	body, err := d.DecodeLenSlice()
	if err != nil {
		return err
	}
	sub := NewDecoder(NewSliceReader(body))
	for !sub.EOF() {
		v, err := elem(sub)
		if err != nil {
			return err
		}
		if err := dst.Push(v); err != nil {
			return ErrCapacity
		}
	}
	return nil
}

// DecodeMapEntry reads one length-delimited map entry: field 1 is the key,
// field 2 is the value, unknown sub-fields are skipped, and duplicate
// key/value sub-fields within the entry overwrite (last write wins). An
// entry missing either slot returns ok=false with no error and is silently
// dropped, matching proto3 map semantics.
func DecodeMapEntry[K, V any](
	d *Decoder,
	decodeKey func(*Decoder) (K, error),
	decodeVal func(*Decoder) (V, error),
) (key K, val V, ok bool, err error) {
	body, err := d.DecodeLenSlice()
	if err != nil {
		return key, val, false, err
	}
	sub := NewDecoder(NewSliceReader(body))
	var haveKey, haveVal bool
	for !sub.EOF() {
		tag, err := sub.DecodeTag()
		if err != nil {
			return key, val, false, err
		}
		switch tag.FieldNum() {
		case 1:
			key, err = decodeKey(sub)
			if err != nil {
				return key, val, false, err
			}
			haveKey = true
		case 2:
			val, err = decodeVal(sub)
			if err != nil {
				return key, val, false, err
			}
			haveVal = true
		default:
			if err := sub.SkipWireValue(tag); err != nil {
				return key, val, false, err
			}
		}
	}
	return key, val, haveKey && haveVal, nil
}

// Skip advances the reader by n bytes, translating the Reader's error.
func (d *Decoder) Skip(n int) error {
	if err := d.r.Skip(n); err != nil {
		if de, ok := err.(*DecodeError); ok {
			return de
		}
		return ReaderError(err)
	}
	return nil
}

// skipVarint advances past one varint's bytes without decoding its value.
func (d *Decoder) skipVarint() error {
	for i := uint8(0); i < varintBytes64; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			if de, ok := err.(*DecodeError); ok {
				return de
			}
			return ReaderError(err)
		}
		if b&0x80 == 0 {
			return nil
		}
	}
	return VarIntLimitError(varintBytes64)
}

// SkipWireValue skips one field's value given its wire type: VARINT
// advances past continuation bytes, I64/I32 advance 8/4 bytes, LEN
// reads its own length prefix then advances, and group wire types (3, 4)
// are rejected as deprecated.
func (d *Decoder) SkipWireValue(tag Tag) error {
	switch tag.WireType() {
	case WireVarint:
		return d.skipVarint()
	case WireFixed64:
		return d.Skip(8)
	case WireFixed32:
		return d.Skip(4)
	case WireBytes:
		n, err := d.DecodeVarint32()
		if err != nil {
			return err
		}
		return d.Skip(int(n))
	case WireStartGroup, WireEndGroup:
		return ErrDeprecation
	default:
		return BadWireTypeError(uint8(tag.WireType()))
	}
}
