// Package vectorharness is the test-only glue around the core: vector
// loading, a generalized SSZ roundtrip driver, and lightweight
// pass/fail/trace-depth collectors for property tests. Nothing in compact,
// jamstate, or trie imports this package — it is consumed only by _test.go
// files and cmd/jamroot.
package vectorharness

import (
	"bytes"
	"errors"
	"fmt"

	ssz "github.com/ferranbt/fastssz"
)

// ErrInvalidVector signals that a vector payload failed to decode.
var ErrInvalidVector = errors.New("vectorharness: invalid vector")

// RoundTripTarget constrains SSZ struct types usable by RoundTrip.
type RoundTripTarget[T any] interface {
	*T
	ssz.Marshaler
	UnmarshalSSZ([]byte) error
}

// RoundTrip enforces Encode(Decode(x)) == x for any type implementing the
// fastssz interfaces — generalized from oracle.RoundTrip[T, PT] to drive
// jamstate.ValidatorKey and jamstate.HistoryEntry without a bespoke adapter
// per type.
func RoundTrip[T any, PT RoundTripTarget[T]](data []byte) error {
	var obj PT = PT(new(T))

	if err := obj.UnmarshalSSZ(data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidVector, err)
	}

	out, err := obj.MarshalSSZ()
	if err != nil {
		return fmt.Errorf("vectorharness: marshal failed: %w", err)
	}

	if !bytes.Equal(out, data) {
		return fmt.Errorf("vectorharness: non-canonical roundtrip (input=%d output=%d)", len(data), len(out))
	}
	return nil
}
