package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// ReadyQueue holds work-reports that have become available but are not yet
// eligible for accumulation. Opaque-bytes-with-roundtrip for this
// milestone, same treatment as γ and ρ (spec §9).
type ReadyQueue struct {
	opaqueBytes
}

// AccumulationQueue holds work-reports queued for accumulation once their
// dependencies clear. Opaque-bytes-with-roundtrip, same treatment as
// ReadyQueue.
type AccumulationQueue struct {
	opaqueBytes
}

func decodeReadyQueue(b []byte) (any, error) {
	return &ReadyQueue{decodeOpaque(b)}, nil
}

func encodeReadyQueue(v any) ([]byte, error) {
	r, ok := v.(*ReadyQueue)
	if !ok {
		return nil, fmt.Errorf("ready_queue: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	return encodeOpaque(r.opaqueBytes), nil
}

func decodeAccumulationQueue(b []byte) (any, error) {
	return &AccumulationQueue{decodeOpaque(b)}, nil
}

func encodeAccumulationQueue(v any) ([]byte, error) {
	a, ok := v.(*AccumulationQueue)
	if !ok {
		return nil, fmt.Errorf("accumulation_queue: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	return encodeOpaque(a.opaqueBytes), nil
}
