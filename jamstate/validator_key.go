package jamstate

import (
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// validatorKeySize is the fixed wire width of a single validator key record:
// bandersnatch[32] · ed25519[32] · bls[144] · metadata[48].
const validatorKeySize = 32 + 32 + 144 + 48

// ValidatorKey is the fixed 256-byte composite public-key record used by
// both κ (current validators) and λ (previous validators). Metadata bytes
// are opaque and must be preserved verbatim across a decode/encode cycle.
type ValidatorKey struct {
	Bandersnatch [32]byte
	Ed25519      [32]byte
	BLS          [144]byte
	Metadata     [48]byte
}

func decodeValidatorKey(b []byte) (ValidatorKey, []byte, error) {
	if len(b) < validatorKeySize {
		return ValidatorKey{}, nil, fmt.Errorf("jamstate: validator_key: %w: need %d bytes, have %d",
			jamerr.ErrTruncatedInput, validatorKeySize, len(b))
	}
	var vk ValidatorKey
	copy(vk.Bandersnatch[:], b[0:32])
	copy(vk.Ed25519[:], b[32:64])
	copy(vk.BLS[:], b[64:208])
	copy(vk.Metadata[:], b[208:256])
	return vk, b[validatorKeySize:], nil
}

func encodeValidatorKey(dst []byte, vk ValidatorKey) []byte {
	dst = append(dst, vk.Bandersnatch[:]...)
	dst = append(dst, vk.Ed25519[:]...)
	dst = append(dst, vk.BLS[:]...)
	dst = append(dst, vk.Metadata[:]...)
	return dst
}

// MarshalSSZTo implements ssz.Marshaler. ValidatorKey is a fixed-size
// container with no offset table, so marshaling is a flat concatenation.
func (vk *ValidatorKey) MarshalSSZTo(dst []byte) ([]byte, error) {
	return encodeValidatorKey(dst, *vk), nil
}

// MarshalSSZ implements ssz.Marshaler.
func (vk *ValidatorKey) MarshalSSZ() ([]byte, error) {
	return vk.MarshalSSZTo(make([]byte, 0, validatorKeySize))
}

// SizeSSZ implements ssz.Marshaler.
func (vk *ValidatorKey) SizeSSZ() int {
	return validatorKeySize
}

// UnmarshalSSZ implements ssz.Unmarshaler.
func (vk *ValidatorKey) UnmarshalSSZ(buf []byte) error {
	decoded, rest, err := decodeValidatorKey(buf)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("jamstate: validator_key: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	*vk = decoded
	return nil
}
