package vectorharness

import (
	"bytes"
	"testing"

	"github.com/colossi-labs/jamstate/jamstate"
)

func TestRoundTripValidatorKey(t *testing.T) {
	var vk jamstate.ValidatorKey
	vk.Bandersnatch[0] = 1
	vk.Ed25519[0] = 2
	vk.BLS[0] = 3
	vk.Metadata[0] = 4

	raw, err := vk.MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}
	if err := RoundTrip[jamstate.ValidatorKey](raw); err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
}

func TestRoundTripHistoryEntry(t *testing.T) {
	e := jamstate.HistoryEntry{
		WorkHashes: []jamstate.H256{{0x01}, {0x02}},
	}
	e.HeaderHash[0] = 0xAA

	raw, err := e.MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}
	if err := RoundTrip[jamstate.HistoryEntry](raw); err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
}

func TestRoundTripInvalidData(t *testing.T) {
	err := RoundTrip[jamstate.ValidatorKey](bytes.Repeat([]byte{0x00}, 4))
	if err == nil {
		t.Fatalf("expected error decoding truncated ValidatorKey payload")
	}
}
