package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// validatorSlotCount is the fixed number of per-validator statistic records
// χ always iterates, independent of the configured validator-count option
// (spec §4.2, §6.3).
const validatorSlotCount = 252

// StatRecord is one validator's per-epoch activity counters. The interior
// counters are hand-picked to round out the GP's per-validator statistics
// (blocks authored, tickets introduced, pre-images provided, guarantees and
// assurances issued) — every one is a fixed u32 LE, so the record has no
// internal framing.
type StatRecord struct {
	Blocks      uint32
	Tickets     uint32
	Preimages   uint32
	Guarantees  uint32
	Assurances  uint32
	Reputation  uint32
}

const statRecordSize = 4 * 6

func decodeStatRecord(b []byte) (StatRecord, []byte, error) {
	var r StatRecord
	var err error
	if r.Blocks, b, err = readU32(b); err != nil {
		return r, nil, fmt.Errorf("blocks: %w", err)
	}
	if r.Tickets, b, err = readU32(b); err != nil {
		return r, nil, fmt.Errorf("tickets: %w", err)
	}
	if r.Preimages, b, err = readU32(b); err != nil {
		return r, nil, fmt.Errorf("preimages: %w", err)
	}
	if r.Guarantees, b, err = readU32(b); err != nil {
		return r, nil, fmt.Errorf("guarantees: %w", err)
	}
	if r.Assurances, b, err = readU32(b); err != nil {
		return r, nil, fmt.Errorf("assurances: %w", err)
	}
	if r.Reputation, b, err = readU32(b); err != nil {
		return r, nil, fmt.Errorf("reputation: %w", err)
	}
	return r, b, nil
}

func encodeStatRecord(dst []byte, r StatRecord) []byte {
	dst = putU32(dst, r.Blocks)
	dst = putU32(dst, r.Tickets)
	dst = putU32(dst, r.Preimages)
	dst = putU32(dst, r.Guarantees)
	dst = putU32(dst, r.Assurances)
	dst = putU32(dst, r.Reputation)
	return dst
}

// Statistics is χ: exactly validatorSlotCount fixed-width records decoded
// iteratively with no length prefix (spec §4.2). Both the current-epoch
// and previous-epoch statistics fields (discriminators 0x07 and 0x08) use
// this same shape.
type Statistics struct {
	Records [validatorSlotCount]StatRecord
}

func decodeStatistics(b []byte) (any, error) {
	if len(b) != validatorSlotCount*statRecordSize {
		return nil, fmt.Errorf("statistics: %w: length %d != %d*%d",
			jamerr.ErrFieldShape, len(b), validatorSlotCount, statRecordSize)
	}
	var s Statistics
	rest := b
	var err error
	for i := 0; i < validatorSlotCount; i++ {
		s.Records[i], rest, err = decodeStatRecord(rest)
		if err != nil {
			return nil, fmt.Errorf("statistics: slot %d: %w", i, err)
		}
	}
	return &s, nil
}

func encodeStatistics(v any) ([]byte, error) {
	s, ok := v.(*Statistics)
	if !ok {
		return nil, fmt.Errorf("statistics: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	out := make([]byte, 0, validatorSlotCount*statRecordSize)
	for _, r := range s.Records {
		out = encodeStatRecord(out, r)
	}
	return out, nil
}
