package example

import (
	"github.com/tinypb/wirepb/message"
	"github.com/tinypb/wirepb/src/codec"
)

// decodeBudgeted drives message.DecodeBudgeted with no extension registry,
// for the message types in this package that do not accept extensions.
func decodeBudgeted(d *codec.Decoder, budget int, dispatch message.FieldDispatch) error {
	return message.DecodeBudgeted(d, budget, dispatch, nil)
}
