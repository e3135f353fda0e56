package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinypb/wirepb/src/codec"
)

func TestRecordRoundTripsUnknownFieldsThroughRegistry(t *testing.T) {
	// Build a wire image with field 1 (known to Record) plus two fields
	// Record's dispatch does not recognize.
	w := codec.NewGrowableWriter(32)
	e := codec.NewEncoder(w)
	require.NoError(t, e.EncodeTag(1, codec.WireBytes))
	require.NoError(t, e.EncodeString("widget"))
	require.NoError(t, e.EncodeTag(7, codec.WireVarint))
	require.NoError(t, e.EncodeInt32(99))
	require.NoError(t, e.EncodeTag(8, codec.WireBytes))
	require.NoError(t, e.EncodeString("extra"))

	src := w.Bytes()

	r := &Record{}
	d := codec.NewDecoder(codec.NewSliceReader(src))
	require.NoError(t, r.Decode(d, len(src)))

	assert.Equal(t, "widget", r.Key)
	assert.Equal(t, 2, r.Extensions.Len())

	out := codec.NewGrowableWriter(r.Size())
	oe := codec.NewEncoder(out)
	require.NoError(t, r.Encode(oe))
	assert.Equal(t, r.Size(), len(out.Bytes()))
	assert.Equal(t, src, out.Bytes())
}

func TestRecordRejectsInvalidUTF8Key(t *testing.T) {
	w := codec.NewGrowableWriter(8)
	e := codec.NewEncoder(w)
	require.NoError(t, e.EncodeTag(1, codec.WireBytes))
	require.NoError(t, e.EncodeBytes([]byte{0xFF, 0xFE}))

	got := &Record{}
	d := codec.NewDecoder(codec.NewSliceReader(w.Bytes()))
	err := got.Decode(d, len(w.Bytes()))
	require.Error(t, err)
	de, ok := err.(*codec.DecodeError)
	require.True(t, ok)
	assert.Equal(t, codec.KindUTF8, de.Kind)
	assert.Equal(t, "", got.Key)
}

func TestRecordWithNoExtensionsRoundTrips(t *testing.T) {
	r := &Record{Key: "plain"}
	w := codec.NewGrowableWriter(r.Size())
	e := codec.NewEncoder(w)
	require.NoError(t, r.Encode(e))

	got := &Record{}
	d := codec.NewDecoder(codec.NewSliceReader(w.Bytes()))
	require.NoError(t, got.Decode(d, len(w.Bytes())))
	assert.Equal(t, "plain", got.Key)
	assert.Equal(t, 0, got.Extensions.Len())
}
