package jamstate

import (
	"bytes"
	"errors"
	"testing"

	"github.com/colossi-labs/jamstate/jamerr"
)

func TestParseEmitKeyvalsRoundtrip(t *testing.T) {
	tsEnc, err := encodeTimeslot(&Timeslot{Value: 42})
	if err != nil {
		t.Fatalf("encode timeslot: %v", err)
	}
	cvEnc, err := encodeCurrentValidators(&CurrentValidators{Keys: []ValidatorKey{sampleValidatorKey(1)}})
	if err != nil {
		t.Fatalf("encode current_validators: %v", err)
	}

	in := []KV{
		{Disc: DiscTimeslot, Value: tsEnc},
		{Disc: DiscCurrentValidators, Value: cvEnc},
	}
	s, err := ParseKeyvals(in)
	if err != nil {
		t.Fatalf("ParseKeyvals: %v", err)
	}
	if s.Timeslot == nil || s.Timeslot.Value != 42 {
		t.Fatalf("timeslot not parsed correctly: %+v", s.Timeslot)
	}
	if s.CurrentValidators == nil || len(s.CurrentValidators.Keys) != 1 {
		t.Fatalf("current_validators not parsed correctly: %+v", s.CurrentValidators)
	}
	if s.Safrole != nil {
		t.Fatalf("unset field should remain nil")
	}

	out, err := s.EmitKeyvals()
	if err != nil {
		t.Fatalf("EmitKeyvals: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d keyvals, want 2", len(out))
	}
	// Ascending discriminator order (P4): current_validators (0x01) before
	// timeslot (0x0B).
	if out[0].Disc != DiscCurrentValidators || out[1].Disc != DiscTimeslot {
		t.Fatalf("keyvals not in ascending discriminator order: %+v", out)
	}
	if !bytes.Equal(out[1].Value, tsEnc) {
		t.Fatalf("re-emitted timeslot bytes != original")
	}
}

func TestParseKeyvalsDuplicateDiscriminator(t *testing.T) {
	tsEnc, _ := encodeTimeslot(&Timeslot{Value: 1})
	in := []KV{
		{Disc: DiscTimeslot, Value: tsEnc},
		{Disc: DiscTimeslot, Value: tsEnc},
	}
	_, err := ParseKeyvals(in)
	if !errors.Is(err, jamerr.ErrDuplicateDiscriminator) {
		t.Fatalf("error = %v, want ErrDuplicateDiscriminator", err)
	}
}

func TestParseKeyvalsUnknownDiscriminator(t *testing.T) {
	in := []KV{{Disc: Disc(0xFE), Value: []byte{0x00}}}
	_, err := ParseKeyvals(in)
	if !errors.Is(err, jamerr.ErrUnknownDiscriminator) {
		t.Fatalf("error = %v, want ErrUnknownDiscriminator", err)
	}
}

func TestParseKeyvalsPropagatesFieldError(t *testing.T) {
	in := []KV{{Disc: DiscTimeslot, Value: []byte{0x00, 0x00}}} // too short for a u32
	_, err := ParseKeyvals(in)
	if !errors.Is(err, jamerr.ErrTruncatedInput) {
		t.Fatalf("error = %v, want ErrTruncatedInput", err)
	}
}

func TestEmitKeyvalsEmptyState(t *testing.T) {
	var s State
	out, err := s.EmitKeyvals()
	if err != nil {
		t.Fatalf("EmitKeyvals: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d keyvals from empty state, want 0", len(out))
	}
}
