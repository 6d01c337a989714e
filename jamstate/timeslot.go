package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// Timeslot is τ: a raw u32 LE with no length prefix (spec §4.2).
type Timeslot struct {
	Value uint32
}

func decodeTimeslot(b []byte) (any, error) {
	v, rest, err := readU32(b)
	if err != nil {
		return nil, fmt.Errorf("timeslot: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("timeslot: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	return &Timeslot{Value: v}, nil
}

func encodeTimeslot(v any) ([]byte, error) {
	ts, ok := v.(*Timeslot)
	if !ok {
		return nil, fmt.Errorf("timeslot: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	return putU32(nil, ts.Value), nil
}
