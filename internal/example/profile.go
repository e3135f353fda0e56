package example

import (
	"github.com/tinypb/wirepb/container"
	"github.com/tinypb/wirepb/presence"
	"github.com/tinypb/wirepb/src/codec"
)

// Profile exercises every piece of the message contract at once: implicit
// presence scalars (Id, Name, Payload), an explicit-presence scalar
// (Rating, guarded by a hazzer bit), a packed repeated scalar (Scores), a
// non-packed repeated scalar (Labels), a map field (Tags), and an embedded
// message (Addr). Its container-typed fields are interfaces so the exact
// same Encode/Decode/Size code runs whether the caller built it with
// NewGrowableProfile (heap-backed, unbounded) or NewFixedProfile
// (pre-sized, no-heap).
type Profile struct {
	Id      int32
	Name    container.String
	Scores  container.Sequence[int32]
	Tags    container.Map[string, int32]
	Payload container.Sequence[byte]
	Addr    *Address
	Labels  container.Sequence[string]

	hazzer presence.Hazzer
	rating float64
}

const ratingBit = 0

// NewGrowableProfile returns a Profile whose container fields grow on the
// heap without a fixed ceiling.
func NewGrowableProfile() *Profile {
	return &Profile{
		Name:    &container.GrowableString{},
		Scores:  container.NewGrowableSeq[int32](0),
		Tags:    container.NewGrowableMap[string, int32](),
		Payload: container.NewGrowableSeq[byte](0),
		Labels:  container.NewGrowableSeq[string](0),
	}
}

// FixedProfileLimits bounds every container-typed field of a Profile built
// by NewFixedProfile, for callers that need a hard memory ceiling.
type FixedProfileLimits struct {
	NameBytes  int
	MaxScores  int
	MaxTags    int
	MaxPayload int
	MaxLabels  int
}

// NewFixedProfile returns a Profile whose container fields are backed by
// pre-allocated, fixed-capacity storage sized by limits. No field ever
// grows past its configured ceiling; Push/Insert/WriteString return a
// capacity error instead.
func NewFixedProfile(limits FixedProfileLimits) *Profile {
	return &Profile{
		Name:    container.NewFixedString(make([]byte, limits.NameBytes)),
		Scores:  container.NewFixedSeq[int32](make([]int32, limits.MaxScores)),
		Tags:    container.NewFixedMap[string, int32](limits.MaxTags),
		Payload: container.NewFixedSeq[byte](make([]byte, limits.MaxPayload)),
		Labels:  container.NewFixedSeq[string](make([]string, limits.MaxLabels)),
	}
}

// HasRating reports whether Rating carries explicit presence.
func (p *Profile) HasRating() bool { return p.hazzer.Has(ratingBit) }

// Rating returns the explicit-presence rating value. Check HasRating first;
// an absent Rating still returns its last-set (or zero) value, same as any
// Go field getter.
func (p *Profile) Rating() float64 { return p.rating }

// SetRating sets the rating value and marks it explicitly present.
func (p *Profile) SetRating(v float64) {
	p.rating = v
	p.hazzer.Set(ratingBit)
}

// ClearRating clears explicit presence without changing the stored value.
func (p *Profile) ClearRating() { p.hazzer.Clear(ratingBit) }

func (p *Profile) Reset() {
	p.Id = 0
	p.Name.Reset()
	p.Scores.Reset()
	p.hazzer.Reset()
	p.rating = 0
	p.Tags.Reset()
	p.Payload.Reset()
	p.Addr = nil
	p.Labels.Reset()
}

func (p *Profile) Size() int {
	n := 0
	if presence.ImplicitNumeric(p.Id) {
		n += codec.SizeTag(1, codec.WireVarint) + codec.SizeInt32(p.Id)
	}
	if presence.ImplicitString(p.Name.String()) {
		n += codec.SizeTag(2, codec.WireBytes) + codec.SizeLenDelimited(p.Name.Len())
	}
	if p.Scores.Len() > 0 {
		payload := 0
		for _, v := range p.Scores.AsSlice() {
			payload += codec.SizeInt32(v)
		}
		n += codec.SizeTag(3, codec.WireBytes) + codec.SizeLenDelimited(payload)
	}
	if p.HasRating() {
		n += codec.SizeTag(4, codec.WireFixed64) + 8
	}
	p.Tags.Range(func(k string, v int32) bool {
		keySize := codec.SizeTag(1, codec.WireBytes) + codec.SizeLenDelimited(len(k))
		valSize := codec.SizeTag(2, codec.WireVarint) + codec.SizeInt32(v)
		n += codec.SizeTag(5, codec.WireBytes) + codec.SizeLenDelimited(keySize+valSize)
		return true
	})
	if p.Payload.Len() > 0 {
		n += codec.SizeTag(6, codec.WireBytes) + codec.SizeLenDelimited(p.Payload.Len())
	}
	if p.Addr != nil {
		n += codec.SizeTag(7, codec.WireBytes) + codec.SizeLenDelimited(p.Addr.Size())
	}
	for _, label := range p.Labels.AsSlice() {
		n += codec.SizeTag(8, codec.WireBytes) + codec.SizeLenDelimited(len(label))
	}
	return n
}

func (p *Profile) Encode(e *codec.Encoder) error {
	if presence.ImplicitNumeric(p.Id) {
		if err := e.EncodeTag(1, codec.WireVarint); err != nil {
			return err
		}
		if err := e.EncodeInt32(p.Id); err != nil {
			return err
		}
	}
	if presence.ImplicitString(p.Name.String()) {
		if err := e.EncodeTag(2, codec.WireBytes); err != nil {
			return err
		}
		if err := e.EncodeString(p.Name.String()); err != nil {
			return err
		}
	}
	if p.Scores.Len() > 0 {
		scores := p.Scores.AsSlice()
		payload := 0
		for _, v := range scores {
			payload += codec.SizeInt32(v)
		}
		if err := e.EncodeTag(3, codec.WireBytes); err != nil {
			return err
		}
		if err := codec.EncodePacked(e, scores, payload, func(e *codec.Encoder, v int32) error {
			return e.EncodeInt32(v)
		}); err != nil {
			return err
		}
	}
	if p.HasRating() {
		if err := e.EncodeTag(4, codec.WireFixed64); err != nil {
			return err
		}
		if err := e.EncodeDouble(p.rating); err != nil {
			return err
		}
	}
	var rangeErr error
	p.Tags.Range(func(k string, v int32) bool {
		if rangeErr != nil {
			return false
		}
		keySize := codec.SizeTag(1, codec.WireBytes) + codec.SizeLenDelimited(len(k))
		valSize := codec.SizeTag(2, codec.WireVarint) + codec.SizeInt32(v)
		if rangeErr = e.EncodeTag(5, codec.WireBytes); rangeErr != nil {
			return false
		}
		rangeErr = codec.EncodeMapEntry(e, k, v, keySize, valSize,
			func(e *codec.Encoder, k string) error {
				if err := e.EncodeTag(1, codec.WireBytes); err != nil {
					return err
				}
				return e.EncodeString(k)
			},
			func(e *codec.Encoder, v int32) error {
				if err := e.EncodeTag(2, codec.WireVarint); err != nil {
					return err
				}
				return e.EncodeInt32(v)
			})
		return rangeErr == nil
	})
	if rangeErr != nil {
		return rangeErr
	}
	if p.Payload.Len() > 0 {
		if err := e.EncodeTag(6, codec.WireBytes); err != nil {
			return err
		}
		if err := e.EncodeBytes(p.Payload.AsSlice()); err != nil {
			return err
		}
	}
	if p.Addr != nil {
		if err := e.EncodeTag(7, codec.WireBytes); err != nil {
			return err
		}
		if err := e.EncodeMessage(p.Addr.Size(), p.Addr.Encode); err != nil {
			return err
		}
	}
	for _, label := range p.Labels.AsSlice() {
		if err := e.EncodeTag(8, codec.WireBytes); err != nil {
			return err
		}
		if err := e.EncodeString(label); err != nil {
			return err
		}
	}
	return nil
}

func (p *Profile) Decode(d *codec.Decoder, budget int) error {
	return decodeBudgeted(d, budget, p.dispatch)
}

func (p *Profile) DecodeLenDelimited(d *codec.Decoder) error {
	n, err := d.DecodeVarint32()
	if err != nil {
		return err
	}
	return p.Decode(d, int(n))
}

func (p *Profile) dispatch(tag codec.Tag, d *codec.Decoder) (bool, error) {
	switch tag.FieldNum() {
	case 1:
		v, err := d.DecodeInt32()
		if err != nil {
			return true, err
		}
		p.Id = v
		return true, nil
	case 2:
		if err := codec.DecodeString(d, p.Name); err != nil {
			return true, err
		}
		return true, nil
	case 3:
		switch tag.WireType() {
		case codec.WireBytes:
			if err := codec.DecodePacked(d, p.Scores, (*codec.Decoder).DecodeInt32); err != nil {
				return true, err
			}
		case codec.WireVarint:
			v, err := d.DecodeInt32()
			if err != nil {
				return true, err
			}
			if err := p.Scores.Push(v); err != nil {
				return true, codec.ErrCapacity
			}
		default:
			return true, d.SkipWireValue(tag)
		}
		return true, nil
	case 4:
		v, err := d.DecodeDouble()
		if err != nil {
			return true, err
		}
		p.rating = v
		p.hazzer.Set(ratingBit)
		return true, nil
	case 5:
		k, v, ok, err := codec.DecodeMapEntry(d, decodeMapKey, decodeMapVal)
		if err != nil {
			return true, err
		}
		if ok {
			if err := p.Tags.Insert(k, v); err != nil {
				return true, codec.ErrCapacity
			}
		}
		return true, nil
	case 6:
		if err := codec.DecodeBytes(d, p.Payload); err != nil {
			return true, err
		}
		return true, nil
	case 7:
		if p.Addr == nil {
			p.Addr = &Address{}
		}
		if err := p.Addr.DecodeLenDelimited(d); err != nil {
			return true, err
		}
		return true, nil
	case 8:
		b, err := d.DecodeLenSlice()
		if err != nil {
			return true, err
		}
		if err := codec.ValidateUTF8(b); err != nil {
			return true, err
		}
		if err := p.Labels.Push(string(b)); err != nil {
			return true, codec.ErrCapacity
		}
		return true, nil
	default:
		return false, nil
	}
}

func decodeMapKey(d *codec.Decoder) (string, error) {
	b, err := d.DecodeLenSlice()
	if err != nil {
		return "", err
	}
	if err := codec.ValidateUTF8(b); err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeMapVal(d *codec.Decoder) (int32, error) {
	return d.DecodeInt32()
}
