package jamstate

import (
	"fmt"
	"math/big"

	"github.com/colossi-labs/jamstate/compact"
	"github.com/colossi-labs/jamstate/jamerr"
)

// authEntrySize is the fixed per-entry width φ's pools and queues both use.
// Entries narrower than a full authorizer record are zero-padded up to this
// width; the padding is opaque to this codec and MUST survive a decode/
// encode cycle byte-for-byte (spec §4.2).
const authEntrySize = 305

// AuthEntry is one padded authorization-pool or authorization-queue slot.
// Raw always has length authEntrySize.
type AuthEntry struct {
	Raw [authEntrySize]byte
}

func decodeAuthEntry(b []byte) (AuthEntry, []byte, error) {
	var e AuthEntry
	if len(b) < authEntrySize {
		return e, nil, fmt.Errorf("auth entry: %w: need %d bytes, have %d",
			jamerr.ErrTruncatedInput, authEntrySize, len(b))
	}
	copy(e.Raw[:], b[:authEntrySize])
	return e, b[authEntrySize:], nil
}

func encodeAuthEntry(dst []byte, e AuthEntry) []byte {
	return append(dst, e.Raw[:]...)
}

func decodeAuthList(b []byte) ([]AuthEntry, []byte, error) {
	n, consumed, err := compact.DecodeUint64(b, false)
	if err != nil {
		return nil, nil, fmt.Errorf("length prefix: %w", err)
	}
	rest := b[consumed:]
	out := make([]AuthEntry, 0, n)
	for i := uint64(0); i < n; i++ {
		var e AuthEntry
		e, rest, err = decodeAuthEntry(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, rest, nil
}

func encodeAuthList(dst []byte, es []AuthEntry) ([]byte, error) {
	lenPrefix, err := compact.Encode(new(big.Int).SetInt64(int64(len(es))))
	if err != nil {
		return nil, fmt.Errorf("length prefix: %w", err)
	}
	dst = append(dst, lenPrefix...)
	for _, e := range es {
		dst = encodeAuthEntry(dst, e)
	}
	return dst, nil
}

// Authorizations is φ: an authorization pool followed by an authorization
// queue, each its own Compact(len) · AuthEntry[len] list (spec §3.2, §4.2).
type Authorizations struct {
	Pool  []AuthEntry
	Queue []AuthEntry
}

func decodeAuthorizations(b []byte) (any, error) {
	pool, rest, err := decodeAuthList(b)
	if err != nil {
		return nil, fmt.Errorf("authorizations: pool: %w", err)
	}
	queue, rest, err := decodeAuthList(rest)
	if err != nil {
		return nil, fmt.Errorf("authorizations: queue: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("authorizations: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	return &Authorizations{Pool: pool, Queue: queue}, nil
}

func encodeAuthorizations(v any) ([]byte, error) {
	a, ok := v.(*Authorizations)
	if !ok {
		return nil, fmt.Errorf("authorizations: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	out := make([]byte, 0, 2*authEntrySize)
	var err error
	if out, err = encodeAuthList(out, a.Pool); err != nil {
		return nil, fmt.Errorf("authorizations: pool: %w", err)
	}
	if out, err = encodeAuthList(out, a.Queue); err != nil {
		return nil, fmt.Errorf("authorizations: queue: %w", err)
	}
	return out, nil
}
