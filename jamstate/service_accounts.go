package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// ServiceAccounts is δ: the service-account map. Its interior (per-service
// storage tries, preimages, code hashes) is itself keyed and merkleized
// independently of the top-level state trie this package builds (spec §9
// supplemental field) — carried opaque-with-roundtrip at this milestone,
// same treatment as γ and ρ.
type ServiceAccounts struct {
	opaqueBytes
}

func decodeServiceAccounts(b []byte) (any, error) {
	return &ServiceAccounts{decodeOpaque(b)}, nil
}

func encodeServiceAccounts(v any) ([]byte, error) {
	s, ok := v.(*ServiceAccounts)
	if !ok {
		return nil, fmt.Errorf("service_accounts: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	return encodeOpaque(s.opaqueBytes), nil
}
