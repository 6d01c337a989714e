package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// ParseKeyvals decodes a raw keyval set into a State. Every discriminator
// must appear in fieldTable (spec §4.1: closed enumeration — unknown
// discriminators are rejected, never silently kept) and at most once
// (spec §4.1: duplicate discriminators are rejected).
func ParseKeyvals(kvs []KV) (*State, error) {
	var s State
	seen := make(map[Disc]bool, len(kvs))
	for _, kv := range kvs {
		if seen[kv.Disc] {
			return nil, fmt.Errorf("jamstate: discriminator 0x%02x: %w", byte(kv.Disc), jamerr.ErrDuplicateDiscriminator)
		}
		seen[kv.Disc] = true

		fc, err := lookupFieldCodec(kv.Disc)
		if err != nil {
			return nil, fmt.Errorf("jamstate: discriminator 0x%02x: %w", byte(kv.Disc), err)
		}
		v, err := fc.Decode(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("jamstate: %s: %w", fc.Name, err)
		}
		s.set(kv.Disc, v)
	}
	return &s, nil
}

// EmitKeyvals serializes every populated field back into keyvals, in
// ascending discriminator order (spec §4.3, roundtrip law P4) — fieldTable
// is itself declared in ascending order, so no separate sort is needed.
// Fields left nil on the State are omitted rather than emitted empty.
func (s *State) EmitKeyvals() ([]KV, error) {
	out := make([]KV, 0, len(fieldTable))
	for _, fc := range fieldTable {
		v, ok := s.get(fc.Disc)
		if !ok {
			continue
		}
		b, err := fc.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("jamstate: %s: %w", fc.Name, err)
		}
		out = append(out, KV{Disc: fc.Disc, Value: b})
	}
	return out, nil
}
