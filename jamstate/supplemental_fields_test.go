package jamstate

import (
	"errors"
	"testing"

	"github.com/colossi-labs/jamstate/jamerr"
)

func TestAccumulationOutputsRoundtrip(t *testing.T) {
	enc, err := encodeAccumulationOutputs(&AccumulationOutputs{Hashes: hashList(3, 1)})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeAccumulationOutputs(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.(*AccumulationOutputs).Hashes) != 3 {
		t.Fatalf("got %d hashes, want 3", len(got.(*AccumulationOutputs).Hashes))
	}
}

func TestDisputesOffendersRoundtripEmpty(t *testing.T) {
	enc, err := encodeDisputesOffenders(&DisputesOffenders{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeDisputesOffenders(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.(*DisputesOffenders).Keys) != 0 {
		t.Fatalf("expected empty offender list")
	}
}

func TestPrivilegedServicesRoundtrip(t *testing.T) {
	p := &PrivilegedServices{ServiceIDs: []uint32{1, 2, 3}, ManagerID: 9}
	enc, err := encodePrivilegedServices(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodePrivilegedServices(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gotP := got.(*PrivilegedServices)
	if gotP.ManagerID != 9 || len(gotP.ServiceIDs) != 3 {
		t.Fatalf("decode(encode(p)) mismatch: %+v", gotP)
	}
}

func TestPrivilegedServicesTruncatedManagerID(t *testing.T) {
	enc, _ := encodePrivilegedServices(&PrivilegedServices{})
	_, err := decodePrivilegedServices(enc[:len(enc)-1])
	if !errors.Is(err, jamerr.ErrTruncatedInput) {
		t.Fatalf("error = %v, want ErrTruncatedInput", err)
	}
}

func TestValidatorMetadataRootRoundtrip(t *testing.T) {
	var h H256
	h[0] = 0x42
	enc, err := encodeValidatorMetadataRoot(&ValidatorMetadataRoot{Root: h})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(enc) != 32 {
		t.Fatalf("encoded length = %d, want 32", len(enc))
	}
	got, err := decodeValidatorMetadataRoot(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.(*ValidatorMetadataRoot).Root != h {
		t.Fatalf("decode(encode(h)) mismatch")
	}
}

func TestValidatorMetadataRootTrailingBytes(t *testing.T) {
	enc, _ := encodeValidatorMetadataRoot(&ValidatorMetadataRoot{})
	enc = append(enc, 0xFF)
	_, err := decodeValidatorMetadataRoot(enc)
	if !errors.Is(err, jamerr.ErrFieldShape) {
		t.Fatalf("error = %v, want ErrFieldShape", err)
	}
}
