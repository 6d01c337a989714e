package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// DisputesOffenders is the offender-identity list accompanying ψ: ed25519
// keys of validators found culpable by a past judgement (spec §9
// supplemental field). Same Compact(len) · H256[len] framing as ψ's lists —
// an offender key fits the same 32-byte shape as the hash entries there.
type DisputesOffenders struct {
	Keys []H256
}

func decodeDisputesOffenders(b []byte) (any, error) {
	keys, rest, err := decodeHashList(b)
	if err != nil {
		return nil, fmt.Errorf("disputes_offenders: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("disputes_offenders: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	return &DisputesOffenders{Keys: keys}, nil
}

func encodeDisputesOffenders(v any) ([]byte, error) {
	d, ok := v.(*DisputesOffenders)
	if !ok {
		return nil, fmt.Errorf("disputes_offenders: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	out, err := encodeHashList(make([]byte, 0, 32), d.Keys)
	if err != nil {
		return nil, fmt.Errorf("disputes_offenders: %w", err)
	}
	return out, nil
}
