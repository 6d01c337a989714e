package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// ValidatorMetadataRoot is a single fixed hash summarizing the current
// validator set's off-chain metadata (spec §9 supplemental field) — no
// framing beyond the raw 32 bytes.
type ValidatorMetadataRoot struct {
	Root H256
}

func decodeValidatorMetadataRoot(b []byte) (any, error) {
	h, rest, err := readH256(b)
	if err != nil {
		return nil, fmt.Errorf("validator_metadata_root: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("validator_metadata_root: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	return &ValidatorMetadataRoot{Root: h}, nil
}

func encodeValidatorMetadataRoot(v any) ([]byte, error) {
	r, ok := v.(*ValidatorMetadataRoot)
	if !ok {
		return nil, fmt.Errorf("validator_metadata_root: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	out := make([]byte, 32)
	copy(out, r.Root[:])
	return out, nil
}
