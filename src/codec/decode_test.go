package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinypb/wirepb/container"
	"github.com/tinypb/wirepb/src/codec"
)

func TestDecodePacked(t *testing.T) {
	w := codec.NewGrowableWriter(8)
	e := codec.NewEncoder(w)
	vals := []int32{1, 2, 300}
	payload := 0
	for _, v := range vals {
		payload += codec.SizeInt32(v)
	}
	require.NoError(t, codec.EncodePacked(e, vals, payload, func(e *codec.Encoder, v int32) error {
		return e.EncodeInt32(v)
	}))

	d := codec.NewDecoder(codec.NewSliceReader(w.Bytes()))
	dst := container.NewGrowableSeq[int32](0)
	require.NoError(t, codec.DecodePacked(d, dst, (*codec.Decoder).DecodeInt32))
	assert.Equal(t, vals, dst.AsSlice())
}

func TestDecodeMapEntryLastWriteWins(t *testing.T) {
	w := codec.NewGrowableWriter(16)
	e := codec.NewEncoder(w)

	// Hand-encode an entry with two key sub-fields; the later one should win.
	require.NoError(t, e.EncodeTag(1, codec.WireBytes))
	require.NoError(t, e.EncodeString("first"))
	require.NoError(t, e.EncodeTag(2, codec.WireVarint))
	require.NoError(t, e.EncodeInt32(1))
	require.NoError(t, e.EncodeTag(1, codec.WireBytes))
	require.NoError(t, e.EncodeString("second"))

	body := w.Bytes()
	outer := codec.NewGrowableWriter(len(body) + 8)
	oe := codec.NewEncoder(outer)
	require.NoError(t, oe.EncodeVarint32(uint32(len(body))))
	require.NoError(t, outer.WriteSlice(body))

	d := codec.NewDecoder(codec.NewSliceReader(outer.Bytes()))
	key, val, ok, err := codec.DecodeMapEntry(d, decodeEntryKey, decodeEntryVal)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", key)
	assert.Equal(t, int32(1), val)
}

func TestDecodeMapEntryMissingSlotIsDropped(t *testing.T) {
	w := codec.NewGrowableWriter(16)
	e := codec.NewEncoder(w)
	require.NoError(t, e.EncodeTag(1, codec.WireBytes))
	require.NoError(t, e.EncodeString("onlykey"))

	body := w.Bytes()
	outer := codec.NewGrowableWriter(len(body) + 8)
	oe := codec.NewEncoder(outer)
	require.NoError(t, oe.EncodeVarint32(uint32(len(body))))
	require.NoError(t, outer.WriteSlice(body))

	d := codec.NewDecoder(codec.NewSliceReader(outer.Bytes()))
	_, _, ok, err := codec.DecodeMapEntry(d, decodeEntryKey, decodeEntryVal)
	require.NoError(t, err)
	assert.False(t, ok)
}

func decodeEntryKey(d *codec.Decoder) (string, error) {
	b, err := d.DecodeLenSlice()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeEntryVal(d *codec.Decoder) (int32, error) {
	return d.DecodeInt32()
}

func TestSkipWireValueThenKnownField(t *testing.T) {
	// Skip invariance, concretely: N unknown fields of every wire type
	// followed by a known field decodes identically to the known field
	// alone.
	w := codec.NewGrowableWriter(32)
	e := codec.NewEncoder(w)

	require.NoError(t, e.EncodeTag(1, codec.WireVarint))
	require.NoError(t, e.EncodeUint64(9999))

	require.NoError(t, e.EncodeTag(2, codec.WireFixed64))
	require.NoError(t, e.EncodeFixed64(0xAABBCCDD))

	require.NoError(t, e.EncodeTag(3, codec.WireBytes))
	require.NoError(t, e.EncodeString("skip me"))

	require.NoError(t, e.EncodeTag(4, codec.WireFixed32))
	require.NoError(t, e.EncodeFixed32(0x1234))

	require.NoError(t, e.EncodeTag(9, codec.WireVarint))
	require.NoError(t, e.EncodeInt32(42))

	d := codec.NewDecoder(codec.NewSliceReader(w.Bytes()))
	var known int32
	for !d.EOF() {
		tag, err := d.DecodeTag()
		require.NoError(t, err)
		if tag.FieldNum() == 9 {
			known, err = d.DecodeInt32()
			require.NoError(t, err)
			continue
		}
		require.NoError(t, d.SkipWireValue(tag))
	}
	assert.Equal(t, int32(42), known)

	w2 := codec.NewGrowableWriter(8)
	e2 := codec.NewEncoder(w2)
	require.NoError(t, e2.EncodeTag(9, codec.WireVarint))
	require.NoError(t, e2.EncodeInt32(42))
	d2 := codec.NewDecoder(codec.NewSliceReader(w2.Bytes()))
	tag, err := d2.DecodeTag()
	require.NoError(t, err)
	known2, err := d2.DecodeInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(9), tag.FieldNum())
	assert.Equal(t, known, known2)
}

func TestDecodeStringRejectsInvalidUTF8(t *testing.T) {
	input := []byte{0x02, 0xC0, 0x20} // 0xC0 starts a sequence 0x20 cannot continue
	d := codec.NewDecoder(codec.NewSliceReader(input))
	var dst container.GrowableString
	err := codec.DecodeString(d, &dst)
	require.Error(t, err)
	de, ok := err.(*codec.DecodeError)
	require.True(t, ok)
	assert.Equal(t, codec.KindUTF8, de.Kind)
}

func TestDecodeStringCapacityOverflow(t *testing.T) {
	input := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}
	d := codec.NewDecoder(codec.NewSliceReader(input))
	dst := container.NewFixedString(make([]byte, 3))
	err := codec.DecodeString(d, dst)
	require.Error(t, err)
	assert.True(t, codec.IsCapacity(err))
}

func TestStreamReaderMatchesSliceReader(t *testing.T) {
	input := []byte{0x96, 0x01, 0x2A}
	sd := codec.NewDecoder(codec.NewSliceReader(input))
	sv, err := sd.DecodeVarint32()
	require.NoError(t, err)

	rd := codec.NewDecoder(codec.NewStreamReader(bytes.NewReader(input)))
	rv, err := rd.DecodeVarint32()
	require.NoError(t, err)

	assert.Equal(t, sv, rv)
}

func TestDecodeLenSliceViewZeroCopy(t *testing.T) {
	input := []byte{0x03, 'a', 'b', 'c'}
	d := codec.NewDecoder(codec.NewSliceReader(input))
	s, ok, err := d.DecodeLenSliceView()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(s))
}
