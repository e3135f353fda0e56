package message

import "github.com/tinypb/wirepb/src/codec"

// ExtensionDecoder is the decode-side facet of an optional extension
// registry. A message's Decode loop offers every tag it does not
// recognize to DecodeUnknown before falling back to SkipWireValue.
type ExtensionDecoder interface {
	// DecodeUnknown is given a tag the message itself does not declare.
	// Returning (true, nil) means the registry consumed the tag's value
	// (and is responsible for replaying it on encode); returning (false,
	// nil) means the caller should skip it via SkipWireValue.
	DecodeUnknown(tag codec.Tag, d *codec.Decoder) (consumed bool, err error)
}

// ExtensionEncoder is the encode-side facet: it must emit every stored
// extension in ascending field-number order so the combined stream of
// message fields and extensions stays sorted. The number of bytes it writes
// must equal ExtensionSizer.ExtensionsSize, which is what keeps the
// Size == len(Encode) equality true in the presence of extensions.
type ExtensionEncoder interface {
	EncodeExtensions(e *codec.Encoder) error
}

// ExtensionSizer is the size-side facet, used by a message's Size method to
// account for whatever the registry holds.
type ExtensionSizer interface {
	ExtensionsSize() int
}

// ExtensionRegistry bundles all three facets. A caller that does not need
// extension support simply passes a nil registry to DecodeMessage or
// DecodeBudgeted, which treat nil as "no registry: skip every unrecognized
// field." The encode side takes no registry argument; a message with
// extensions calls its registry's EncodeExtensions and ExtensionsSize itself.
type ExtensionRegistry interface {
	ExtensionDecoder
	ExtensionEncoder
	ExtensionSizer
}
