package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// AccumulationOutputs is ξ: the accumulation-output hash list, one entry per
// service that produced a result in the most recent accumulation (spec §9
// supplemental field). Same Compact(len) · H256[len] framing as ψ's lists.
type AccumulationOutputs struct {
	Hashes []H256
}

func decodeAccumulationOutputs(b []byte) (any, error) {
	hashes, rest, err := decodeHashList(b)
	if err != nil {
		return nil, fmt.Errorf("accumulation_outputs: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("accumulation_outputs: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	return &AccumulationOutputs{Hashes: hashes}, nil
}

func encodeAccumulationOutputs(v any) ([]byte, error) {
	a, ok := v.(*AccumulationOutputs)
	if !ok {
		return nil, fmt.Errorf("accumulation_outputs: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	out, err := encodeHashList(make([]byte, 0, 32), a.Hashes)
	if err != nil {
		return nil, fmt.Errorf("accumulation_outputs: %w", err)
	}
	return out, nil
}
