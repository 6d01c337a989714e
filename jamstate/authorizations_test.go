package jamstate

import (
	"errors"
	"testing"

	"github.com/colossi-labs/jamstate/jamerr"
)

func sampleAuthEntry(seed byte) AuthEntry {
	var e AuthEntry
	e.Raw[0] = seed
	e.Raw[authEntrySize-1] = seed + 1 // padding tail must survive a roundtrip untouched
	return e
}

func TestAuthorizationsRoundtrip(t *testing.T) {
	a := &Authorizations{
		Pool:  []AuthEntry{sampleAuthEntry(1), sampleAuthEntry(2)},
		Queue: []AuthEntry{sampleAuthEntry(3)},
	}
	enc, err := encodeAuthorizations(a)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeAuthorizations(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gotA := got.(*Authorizations)
	if len(gotA.Pool) != 2 || len(gotA.Queue) != 1 {
		t.Fatalf("shape mismatch: %d pool, %d queue", len(gotA.Pool), len(gotA.Queue))
	}
	if gotA.Pool[0] != a.Pool[0] {
		t.Fatalf("pool entry 0 padding not preserved across roundtrip")
	}
}

func TestAuthorizationsRoundtripEmpty(t *testing.T) {
	enc, err := encodeAuthorizations(&Authorizations{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeAuthorizations(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gotA := got.(*Authorizations)
	if len(gotA.Pool) != 0 || len(gotA.Queue) != 0 {
		t.Fatalf("expected empty pool and queue")
	}
}

func TestAuthorizationsTruncatedEntry(t *testing.T) {
	// Compact(1) pool length, followed by a short entry.
	enc := []byte{0x01}
	enc = append(enc, make([]byte, authEntrySize-1)...)
	_, err := decodeAuthorizations(enc)
	if !errors.Is(err, jamerr.ErrTruncatedInput) {
		t.Fatalf("error = %v, want ErrTruncatedInput", err)
	}
}
