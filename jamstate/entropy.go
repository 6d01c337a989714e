package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// Entropy is η: either four concatenated H256 (128 bytes) or, in the
// genesis-stub variant, a single H256 (32 bytes). The two shapes are
// disambiguated purely by the length of the input (spec §4.2).
type Entropy struct {
	GenesisStub bool
	Hashes      [4]H256 // only Hashes[0] is meaningful when GenesisStub is true
}

func decodeEntropy(b []byte) (any, error) {
	switch len(b) {
	case 32:
		h, _, err := readH256(b)
		if err != nil {
			return nil, fmt.Errorf("entropy: %w", err)
		}
		var e Entropy
		e.GenesisStub = true
		e.Hashes[0] = h
		return &e, nil
	case 128:
		var e Entropy
		rest := b
		var err error
		for i := 0; i < 4; i++ {
			e.Hashes[i], rest, err = readH256(rest)
			if err != nil {
				return nil, fmt.Errorf("entropy: hash %d: %w", i, err)
			}
		}
		return &e, nil
	default:
		return nil, fmt.Errorf("entropy: %w: length %d is neither 32 (genesis stub) nor 128 (four hashes)",
			jamerr.ErrFieldShape, len(b))
	}
}

func encodeEntropy(v any) ([]byte, error) {
	e, ok := v.(*Entropy)
	if !ok {
		return nil, fmt.Errorf("entropy: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	if e.GenesisStub {
		return append([]byte{}, e.Hashes[0][:]...), nil
	}
	out := make([]byte, 0, 128)
	for _, h := range e.Hashes {
		out = append(out, h[:]...)
	}
	return out, nil
}
