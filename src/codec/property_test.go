package codec_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/tinypb/wirepb/src/codec"
)

// ZigZag involution, for every int32/int64 rapid can generate.
func TestPropertyZigZag32Involution(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.Int32().Draw(rt, "n")
		if got := codec.ZigZagDecode32(codec.ZigZagEncode32(n)); got != n {
			rt.Fatalf("zigzag32 involution broke: n=%d got=%d", n, got)
		}
	})
}

func TestPropertyZigZag64Involution(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.Int64().Draw(rt, "n")
		if got := codec.ZigZagDecode64(codec.ZigZagEncode64(n)); got != n {
			rt.Fatalf("zigzag64 involution broke: n=%d got=%d", n, got)
		}
	})
}

// Size equality, for a single int32 varint field encoded alone.
func TestPropertyVarintSizeEqualsEncodedLen(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int32().Draw(rt, "v")
		w := codec.NewGrowableWriter(16)
		e := codec.NewEncoder(w)
		if err := e.EncodeInt32(v); err != nil {
			rt.Fatalf("encode: %v", err)
		}
		if want, got := codec.SizeInt32(v), len(w.Bytes()); want != got {
			rt.Fatalf("size mismatch for v=%d: want %d got %d", v, want, got)
		}
	})
}

// Round-trip, for a single int32 varint field.
func TestPropertyVarintRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int32().Draw(rt, "v")
		w := codec.NewGrowableWriter(16)
		e := codec.NewEncoder(w)
		if err := e.EncodeInt32(v); err != nil {
			rt.Fatalf("encode: %v", err)
		}

		d := codec.NewDecoder(codec.NewSliceReader(w.Bytes()))
		got, err := d.DecodeInt32()
		if err != nil {
			rt.Fatalf("decode: %v", err)
		}
		if got != v {
			rt.Fatalf("round trip mismatch: want %d got %d", v, got)
		}
	})
}

// Tag bijection, across the field-number/wire-type space rapid
// can reach (field numbers are bounded below 2^29 per the wire format).
func TestPropertyTagBijection(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := rapid.Int32Range(1, (1<<29)-1).Draw(rt, "field")
		w := codec.WireType(rapid.IntRange(0, 7).Draw(rt, "wire"))
		tag := codec.TagFromParts(f, w)
		if tag.FieldNum() != f {
			rt.Fatalf("field number mismatch: want %d got %d", f, tag.FieldNum())
		}
		if tag.WireType() != w {
			rt.Fatalf("wire type mismatch: want %d got %d", w, tag.WireType())
		}
	})
}

// Skip invariance, generalized over a sequence of random
// unknown-wire-type fields preceding one known varint field.
func TestPropertySkipInvariance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		nUnknown := rapid.IntRange(0, 6).Draw(rt, "n")
		known := rapid.Int32().Draw(rt, "known")

		w := codec.NewGrowableWriter(64)
		e := codec.NewEncoder(w)
		for i := 0; i < nUnknown; i++ {
			kind := rapid.IntRange(0, 2).Draw(rt, "kind")
			var err error
			switch kind {
			case 0:
				err = e.EncodeTag(100, codec.WireVarint)
				if err == nil {
					err = e.EncodeUint64(rapid.Uint64().Draw(rt, "v"))
				}
			case 1:
				err = e.EncodeTag(100, codec.WireFixed64)
				if err == nil {
					err = e.EncodeFixed64(rapid.Uint64().Draw(rt, "v64"))
				}
			case 2:
				err = e.EncodeTag(100, codec.WireFixed32)
				if err == nil {
					err = e.EncodeFixed32(rapid.Uint32().Draw(rt, "v32"))
				}
			}
			if err != nil {
				rt.Fatalf("encode unknown field: %v", err)
			}
		}
		if err := e.EncodeTag(9, codec.WireVarint); err != nil {
			rt.Fatalf("encode known tag: %v", err)
		}
		if err := e.EncodeInt32(known); err != nil {
			rt.Fatalf("encode known value: %v", err)
		}

		d := codec.NewDecoder(codec.NewSliceReader(w.Bytes()))
		var got int32
		for !d.EOF() {
			tag, err := d.DecodeTag()
			if err != nil {
				rt.Fatalf("decode tag: %v", err)
			}
			if tag.FieldNum() == 9 {
				got, err = d.DecodeInt32()
				if err != nil {
					rt.Fatalf("decode known value: %v", err)
				}
				continue
			}
			if err := d.SkipWireValue(tag); err != nil {
				rt.Fatalf("skip: %v", err)
			}
		}
		if got != known {
			rt.Fatalf("skip invariance broke: want %d got %d", known, got)
		}
	})
}
