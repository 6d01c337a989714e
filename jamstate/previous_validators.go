package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// PreviousValidators is λ: identical key-record layout to κ, but with no
// count prefix — length is inferred from the remaining bytes in the value
// slot (spec §4.2).
type PreviousValidators struct {
	Keys []ValidatorKey
}

// NextValidators is ι: the validator set designated for the upcoming
// epoch. Same uncounted layout as λ.
type NextValidators struct {
	Keys []ValidatorKey
}

func decodeUncountedValidatorSet(b []byte) ([]ValidatorKey, error) {
	if len(b)%validatorKeySize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", jamerr.ErrFieldShape, len(b), validatorKeySize)
	}
	n := len(b) / validatorKeySize
	keys := make([]ValidatorKey, 0, n)
	rest := b
	for i := 0; i < n; i++ {
		var (
			vk  ValidatorKey
			err error
		)
		vk, rest, err = decodeValidatorKey(rest)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		keys = append(keys, vk)
	}
	return keys, nil
}

func encodeUncountedValidatorSet(keys []ValidatorKey) []byte {
	out := make([]byte, 0, len(keys)*validatorKeySize)
	for _, vk := range keys {
		out = encodeValidatorKey(out, vk)
	}
	return out
}

func decodePreviousValidators(b []byte) (any, error) {
	keys, err := decodeUncountedValidatorSet(b)
	if err != nil {
		return nil, fmt.Errorf("previous_validators: %w", err)
	}
	return &PreviousValidators{Keys: keys}, nil
}

func encodePreviousValidators(v any) ([]byte, error) {
	pv, ok := v.(*PreviousValidators)
	if !ok {
		return nil, fmt.Errorf("previous_validators: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	return encodeUncountedValidatorSet(pv.Keys), nil
}

func decodeNextValidators(b []byte) (any, error) {
	keys, err := decodeUncountedValidatorSet(b)
	if err != nil {
		return nil, fmt.Errorf("next_validators: %w", err)
	}
	return &NextValidators{Keys: keys}, nil
}

func encodeNextValidators(v any) ([]byte, error) {
	nv, ok := v.(*NextValidators)
	if !ok {
		return nil, fmt.Errorf("next_validators: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	return encodeUncountedValidatorSet(nv.Keys), nil
}
