package jamstate

import (
	"errors"
	"testing"

	"github.com/colossi-labs/jamstate/jamerr"
)

func TestStatisticsRoundtrip(t *testing.T) {
	var s Statistics
	for i := range s.Records {
		s.Records[i] = StatRecord{
			Blocks:     uint32(i),
			Tickets:    uint32(i * 2),
			Preimages:  uint32(i * 3),
			Guarantees: uint32(i * 4),
			Assurances: uint32(i * 5),
			Reputation: uint32(i * 6),
		}
	}
	enc, err := encodeStatistics(&s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(enc) != validatorSlotCount*statRecordSize {
		t.Fatalf("encoded length = %d, want %d", len(enc), validatorSlotCount*statRecordSize)
	}
	got, err := decodeStatistics(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.(*Statistics).Records != s.Records {
		t.Fatalf("decode(encode(s)) mismatch")
	}
}

func TestStatisticsWrongLength(t *testing.T) {
	_, err := decodeStatistics(make([]byte, validatorSlotCount*statRecordSize-1))
	if !errors.Is(err, jamerr.ErrFieldShape) {
		t.Fatalf("error = %v, want ErrFieldShape", err)
	}
	_, err = decodeStatistics(make([]byte, validatorSlotCount*statRecordSize+1))
	if !errors.Is(err, jamerr.ErrFieldShape) {
		t.Fatalf("error = %v, want ErrFieldShape", err)
	}
}
