package codec

// SizeVarint32 returns the number of bytes EncodeVarint32 would emit for v.
func SizeVarint32(v uint32) int {
	return sizeVarint64(uint64(v))
}

// SizeVarint64 returns the number of bytes EncodeVarint64 would emit for v.
func SizeVarint64(v uint64) int {
	return sizeVarint64(v)
}

// SizeInt32 returns the number of bytes EncodeInt32 would emit for v.
func SizeInt32(v int32) int {
	return sizeVarint64(uint64(int64(v)))
}

// SizeInt64 returns the number of bytes EncodeInt64 would emit for v.
func SizeInt64(v int64) int {
	return sizeVarint64(uint64(v))
}

// SizeSInt32 returns the number of bytes EncodeSInt32 would emit for v.
func SizeSInt32(v int32) int {
	return sizeVarint32(ZigZagEncode32(v))
}

// SizeSInt64 returns the number of bytes EncodeSInt64 would emit for v.
func SizeSInt64(v int64) int {
	return sizeVarint64(ZigZagEncode64(v))
}

// SizeTag returns the number of bytes EncodeTag would emit for the given
// field number and wire type.
func SizeTag(fieldNum int32, wireType WireType) int {
	return sizeVarint32(TagFromParts(fieldNum, wireType).Varint())
}

// SizeLenDelimited returns the number of bytes a length-delimited record of
// payloadLen bytes occupies on the wire: the varint length prefix plus the
// payload itself.
func SizeLenDelimited(payloadLen int) int {
	return sizeVarint32(uint32(payloadLen)) + payloadLen
}

// NewSizeEncoder returns an Encoder backed by a CountingWriter, so driving
// the ordinary field-encode code through it yields a byte count instead of
// bytes, so a size pre-pass can share code with real encoding. The Size*
// functions above are the separate arithmetic path; the example message
// types' Size methods are built from those.
func NewSizeEncoder() (*Encoder, *CountingWriter) {
	cw := &CountingWriter{}
	return NewEncoder(cw), cw
}
