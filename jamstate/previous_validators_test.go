package jamstate

import (
	"errors"
	"testing"

	"github.com/colossi-labs/jamstate/jamerr"
)

func TestPreviousValidatorsRoundtrip(t *testing.T) {
	keys := []ValidatorKey{sampleValidatorKey(1), sampleValidatorKey(2)}
	enc, err := encodePreviousValidators(&PreviousValidators{Keys: keys})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodePreviousValidators(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.(*PreviousValidators).Keys) != 2 {
		t.Fatalf("got %d keys, want 2", len(got.(*PreviousValidators).Keys))
	}
}

func TestNextValidatorsRoundtripEmpty(t *testing.T) {
	enc, err := encodeNextValidators(&NextValidators{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(enc) != 0 {
		t.Fatalf("encode(empty) = % x, want empty", enc)
	}
	got, err := decodeNextValidators(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.(*NextValidators).Keys) != 0 {
		t.Fatalf("decoded non-empty keys from empty input")
	}
}

func TestUncountedValidatorSetNotMultiple(t *testing.T) {
	_, err := decodePreviousValidators(make([]byte, validatorKeySize+1))
	if !errors.Is(err, jamerr.ErrFieldShape) {
		t.Fatalf("error = %v, want ErrFieldShape", err)
	}
}
