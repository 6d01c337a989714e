package jamstate

import (
	"fmt"
	"math/big"

	"github.com/colossi-labs/jamstate/compact"
	"github.com/colossi-labs/jamstate/jamerr"
)

// HistoryEntry is one per-block record of β (recent history): header hash,
// state root and beefy root (32 bytes each), then a u32 LE count and that
// many work-package hashes. An entry carries no other bytes.
type HistoryEntry struct {
	HeaderHash H256
	StateRoot  H256
	BeefyRoot  H256
	WorkHashes []H256 // reported-package hashes for the block, in order
}

func (e *HistoryEntry) sizeSSZ() int {
	return 32*3 + 4 + 32*len(e.WorkHashes)
}

func decodeHistoryEntry(b []byte) (HistoryEntry, []byte, error) {
	var e HistoryEntry
	var err error
	if e.HeaderHash, b, err = readH256(b); err != nil {
		return e, nil, fmt.Errorf("header_hash: %w", err)
	}
	if e.StateRoot, b, err = readH256(b); err != nil {
		return e, nil, fmt.Errorf("state_root: %w", err)
	}
	if e.BeefyRoot, b, err = readH256(b); err != nil {
		return e, nil, fmt.Errorf("beefy_root: %w", err)
	}
	count, b, err := readU32(b)
	if err != nil {
		return e, nil, fmt.Errorf("work_hashes count: %w", err)
	}
	e.WorkHashes = make([]H256, 0, count)
	for i := uint32(0); i < count; i++ {
		var h H256
		h, b, err = readH256(b)
		if err != nil {
			return e, nil, fmt.Errorf("work_hashes[%d]: %w", i, err)
		}
		e.WorkHashes = append(e.WorkHashes, h)
	}
	return e, b, nil
}

func encodeHistoryEntry(dst []byte, e HistoryEntry) []byte {
	dst = append(dst, e.HeaderHash[:]...)
	dst = append(dst, e.StateRoot[:]...)
	dst = append(dst, e.BeefyRoot[:]...)
	dst = putU32(dst, uint32(len(e.WorkHashes)))
	for _, h := range e.WorkHashes {
		dst = append(dst, h[:]...)
	}
	return dst
}

// MarshalSSZTo implements ssz.Marshaler for use by vectorharness.RoundTrip.
func (e *HistoryEntry) MarshalSSZTo(dst []byte) ([]byte, error) {
	return encodeHistoryEntry(dst, *e), nil
}

// MarshalSSZ implements ssz.Marshaler.
func (e *HistoryEntry) MarshalSSZ() ([]byte, error) {
	return e.MarshalSSZTo(make([]byte, 0, e.sizeSSZ()))
}

// SizeSSZ implements ssz.Marshaler.
func (e *HistoryEntry) SizeSSZ() int {
	return e.sizeSSZ()
}

// UnmarshalSSZ implements ssz.Unmarshaler.
func (e *HistoryEntry) UnmarshalSSZ(buf []byte) error {
	decoded, rest, err := decodeHistoryEntry(buf)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("history_entry: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	*e = decoded
	return nil
}

// RecentHistory is β: Compact(len) · HistoryEntry[len] · one 0x00 padding
// terminator byte, written even when len == 0 (spec §3.2, §4.2).
type RecentHistory struct {
	Entries []HistoryEntry
}

func decodeRecentHistory(b []byte) (any, error) {
	n, consumed, err := compact.DecodeUint64(b, false)
	if err != nil {
		return nil, fmt.Errorf("recent_history: length prefix: %w", err)
	}
	rest := b[consumed:]

	entries := make([]HistoryEntry, 0, n)
	for i := uint64(0); i < n; i++ {
		var e HistoryEntry
		e, rest, err = decodeHistoryEntry(rest)
		if err != nil {
			return nil, fmt.Errorf("recent_history: entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	if len(rest) != 1 {
		return nil, fmt.Errorf("recent_history: %w: expected exactly 1 terminator byte, have %d trailing",
			jamerr.ErrFieldShape, len(rest))
	}
	if rest[0] != 0x00 {
		return nil, fmt.Errorf("recent_history: %w: terminator byte = 0x%02x, want 0x00", jamerr.ErrFieldShape, rest[0])
	}
	return &RecentHistory{Entries: entries}, nil
}

func encodeRecentHistory(v any) ([]byte, error) {
	rh, ok := v.(*RecentHistory)
	if !ok {
		return nil, fmt.Errorf("recent_history: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	lenPrefix, err := compact.Encode(new(big.Int).SetInt64(int64(len(rh.Entries))))
	if err != nil {
		return nil, fmt.Errorf("recent_history: length prefix: %w", err)
	}
	out := append([]byte{}, lenPrefix...)
	for _, e := range rh.Entries {
		out = encodeHistoryEntry(out, e)
	}
	out = append(out, 0x00)
	return out, nil
}
