package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// WorkReport is ρ's per-core opaque record. Decoded enough for roundtrip
// (spec §3.1, §9); the STF is the consumer that needs the interior shape.
type WorkReport struct {
	opaqueBytes
}

// Reports is ρ: one WorkReport slot per core. The distilled spec does not
// fix the per-core count here (that is chain-configuration-dependent), so
// the field is carried as a single opaque payload covering all cores —
// consistent with treating ρ's interior as the STF's concern.
type Reports struct {
	opaqueBytes
}

func decodeReports(b []byte) (any, error) {
	return &Reports{decodeOpaque(b)}, nil
}

func encodeReports(v any) ([]byte, error) {
	r, ok := v.(*Reports)
	if !ok {
		return nil, fmt.Errorf("work_reports: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	return encodeOpaque(r.opaqueBytes), nil
}
