package example

import "github.com/tinypb/wirepb/src/codec"

// Registry is a minimal message.ExtensionRegistry: it stores every
// unrecognized tag's raw wire bytes, ordered by field number (entries with
// the same field number keep their arrival order), and replays them in that
// order on encode. A real generated registry would index
// known extension numbers to typed accessors; this one exists to exercise
// the capture/replay path end to end.
type Registry struct {
	entries []storedField
}

type storedField struct {
	tag   codec.Tag
	value []byte
}

// DecodeUnknown captures tag's value opaquely via CaptureWireValue and
// stores it for later replay. Group wire types are not captured; returning
// false here sends them through SkipWireValue instead, which itself reports
// ErrDeprecation.
func (r *Registry) DecodeUnknown(tag codec.Tag, d *codec.Decoder) (bool, error) {
	switch tag.WireType() {
	case codec.WireStartGroup, codec.WireEndGroup:
		return false, nil
	}
	value, err := d.CaptureWireValue(tag.WireType())
	if err != nil {
		return false, err
	}
	// Keep entries sorted by field number; equal numbers keep arrival order.
	i := len(r.entries)
	for i > 0 && r.entries[i-1].tag.FieldNum() > tag.FieldNum() {
		i--
	}
	r.entries = append(r.entries, storedField{})
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = storedField{tag: tag, value: value}
	return true, nil
}

// EncodeExtensions replays every stored entry in ascending field-number
// order. A message's own Encode already visits its declared fields in
// ascending order, so the registry's caller is responsible for interleaving
// these two streams correctly; this package's example messages accept
// extensions only at the tail, which keeps that ordering trivially
// satisfied.
func (r *Registry) EncodeExtensions(e *codec.Encoder) error {
	for _, ent := range r.entries {
		if err := e.EncodeTag(ent.tag.FieldNum(), ent.tag.WireType()); err != nil {
			return err
		}
		if err := e.WriteRaw(ent.value); err != nil {
			return err
		}
	}
	return nil
}

// ExtensionsSize returns the exact byte count EncodeExtensions will write.
func (r *Registry) ExtensionsSize() int {
	n := 0
	for _, ent := range r.entries {
		n += codec.SizeTag(ent.tag.FieldNum(), ent.tag.WireType()) + len(ent.value)
	}
	return n
}

// Reset discards every stored extension.
func (r *Registry) Reset() {
	r.entries = r.entries[:0]
}

// Len reports how many extension fields are currently stored.
func (r *Registry) Len() int {
	return len(r.entries)
}
