// Package jamstate assembles and disassembles the JAM chain state: a
// mapping from a one-byte discriminator to a typed field value, each with
// its own bespoke wire framing (spec §3.2, §4.2, §4.3).
package jamstate

import (
	"encoding/binary"
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
)

// H256 is a 32-byte opaque hash.
type H256 [32]byte

func readH256(b []byte) (H256, []byte, error) {
	if len(b) < 32 {
		return H256{}, nil, fmt.Errorf("jamstate: %w: need 32 bytes for H256, have %d", jamerr.ErrTruncatedInput, len(b))
	}
	var h H256
	copy(h[:], b[:32])
	return h, b[32:], nil
}

func readU16(b []byte) (uint16, []byte, error) {
	if len(b) < 2 {
		return 0, nil, fmt.Errorf("jamstate: %w: need 2 bytes for u16, have %d", jamerr.ErrTruncatedInput, len(b))
	}
	return binary.LittleEndian.Uint16(b), b[2:], nil
}

func readU32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, fmt.Errorf("jamstate: %w: need 4 bytes for u32, have %d", jamerr.ErrTruncatedInput, len(b))
	}
	return binary.LittleEndian.Uint32(b), b[4:], nil
}

func readBytes(b []byte, n int) ([]byte, []byte, error) {
	if len(b) < n {
		return nil, nil, fmt.Errorf("jamstate: %w: need %d bytes, have %d", jamerr.ErrTruncatedInput, n, len(b))
	}
	out := make([]byte, n)
	copy(out, b[:n])
	return out, b[n:], nil
}

func putU16(dst []byte, v uint16) []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

func putU32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}
