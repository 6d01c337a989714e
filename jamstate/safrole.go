package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// Safrole is γ: ticket accumulator and epoch-marker state. The GP's
// interior shape (tickets · markers, nested) is only decoded for roundtrip
// at this milestone (spec §9 open question) — structural decoding is left
// for when test vectors start exercising the interior; the discriminator
// and byte-identity roundtrip are load-bearing today, the nested shape is
// not yet.
type Safrole struct {
	opaqueBytes
}

func decodeSafrole(b []byte) (any, error) {
	return &Safrole{decodeOpaque(b)}, nil
}

func encodeSafrole(v any) ([]byte, error) {
	s, ok := v.(*Safrole)
	if !ok {
		return nil, fmt.Errorf("safrole: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	return encodeOpaque(s.opaqueBytes), nil
}
