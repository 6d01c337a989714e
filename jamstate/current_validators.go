package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// CurrentValidators is κ: the active validator set, wire-framed as a u16 LE
// expected-count followed by that many 256-byte ValidatorKey records. The
// count is taken from the wire on decode (spec §4.2: "take it from the
// wire"), and written from the actual slice length on encode.
type CurrentValidators struct {
	Keys []ValidatorKey
}

func decodeCurrentValidators(b []byte) (any, error) {
	count, rest, err := readU16(b)
	if err != nil {
		return nil, fmt.Errorf("current_validators: %w", err)
	}
	keys := make([]ValidatorKey, 0, count)
	for i := uint16(0); i < count; i++ {
		var vk ValidatorKey
		vk, rest, err = decodeValidatorKey(rest)
		if err != nil {
			return nil, fmt.Errorf("current_validators: key %d: %w", i, err)
		}
		keys = append(keys, vk)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("current_validators: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	if int(count) != len(keys) {
		return nil, fmt.Errorf("current_validators: %w: expected-count %d != decoded %d", jamerr.ErrFieldShape, count, len(keys))
	}
	return &CurrentValidators{Keys: keys}, nil
}

func encodeCurrentValidators(v any) ([]byte, error) {
	cv, ok := v.(*CurrentValidators)
	if !ok {
		return nil, fmt.Errorf("current_validators: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	if len(cv.Keys) > 0xFFFF {
		return nil, fmt.Errorf("current_validators: %w: %d keys exceeds u16 count", jamerr.ErrFieldShape, len(cv.Keys))
	}
	out := make([]byte, 0, 2+len(cv.Keys)*validatorKeySize)
	out = putU16(out, uint16(len(cv.Keys)))
	for _, vk := range cv.Keys {
		out = encodeValidatorKey(out, vk)
	}
	return out, nil
}
