// Package message specifies the contract a generated (or, in this module,
// hand-written) message type must satisfy, and drives the top-level
// decode loop that every such type's Decode method is built from.
package message

import "github.com/tinypb/wirepb/src/codec"

// Message is the observable shape the runtime depends on. A code generator
// producing message structs and their field dispatch is an external
// collaborator; this package only ever calls through this interface.
type Message interface {
	// Reset returns the message to its default state: every field at its
	// zero value, every hazzer bit cleared.
	Reset()
	// Encode emits every present field, in ascending field-number order.
	Encode(e *codec.Encoder) error
	// Size returns the exact number of bytes Encode would write.
	Size() int
	// Decode reads fields from d until budget bytes have been consumed,
	// dispatching each to the message's own field handlers.
	Decode(d *codec.Decoder, budget int) error
}

// LenDelimitedDecoder is implemented by messages that can also be decoded
// as a length-prefixed embedded field (the common case for every nested
// message).
type LenDelimitedDecoder interface {
	Message
	// DecodeLenDelimited reads a varint length prefix then decodes exactly
	// that many bytes as the message body.
	DecodeLenDelimited(d *codec.Decoder) error
}

// FieldDispatch is supplied by a generated message's Decode method: given a
// tag already read off the wire, it decodes that field's value (consuming
// exactly the bytes that field occupies) and reports whether it recognized
// the field number.
type FieldDispatch func(tag codec.Tag, d *codec.Decoder) (handled bool, err error)

// DecodeMessage is the top-level message-decode loop: read tags until the
// decoder's input is exhausted, offering every unrecognized tag to registry
// (if any) before falling back to SkipWireValue. Over-reading past the end
// surfaces as UnexpectedEof from the decoder's own Reader; a byte budget is
// enforced by handing this loop a bounded sub-reader holding exactly the
// budgeted bytes (see DecodeBudgeted).
func DecodeMessage(d *codec.Decoder, dispatch FieldDispatch, registry ExtensionDecoder) error {
	for !d.EOF() {
		tag, err := d.DecodeTag()
		if err != nil {
			return err
		}
		handled, err := dispatch(tag, d)
		if err != nil {
			return err
		}
		if handled {
			continue
		}
		if registry != nil {
			consumed, err := registry.DecodeUnknown(tag, d)
			if err != nil {
				return err
			}
			if consumed {
				continue
			}
		}
		if err := d.SkipWireValue(tag); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBudgeted carves out a bounded sub-decoder reading exactly the next
// budget bytes of body (copied from d's input via DecodeLenSlice-style
// framing is the caller's job for length-delimited fields; this helper is
// for top-level Decode(d, budget) entry points that receive an
// already-known byte budget over the live stream). It works for both
// slice-backed and streaming Readers: the sub-decoder reads budget bytes
// from d directly, so bytes consumed here are also consumed from d.
func DecodeBudgeted(d *codec.Decoder, budget int, dispatch FieldDispatch, registry ExtensionDecoder) error {
	var body []byte
	if budget > 0 {
		b, err := d.ReadRaw(budget)
		if err != nil {
			return err
		}
		body = b
	}
	sub := codec.NewDecoder(codec.NewSliceReader(body))
	return DecodeMessage(sub, dispatch, registry)
}
