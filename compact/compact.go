// Package compact implements the JAM-compact variable-length unsigned
// integer encoding (GP Appendix I.2): a length/field prefix format used
// pervasively across the chain-state wire formats in jamstate.
package compact

import (
	"fmt"
	"math/big"

	"github.com/colossi-labs/jamstate/jamerr"
)

// maxValueBytes bounds the widest representable value to 16 trailing
// bytes (the N-mode nnnn nibble is 4 bits, so nnnn+1 tops out at 16).
const maxValueBytes = 16

// MaxValue is the largest integer this wire format can represent.
var MaxValue = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*maxValueBytes), big.NewInt(1))

var (
	twoPow7  = big.NewInt(1 << 7)
	twoPow14 = big.NewInt(1 << 14)
	twoPow29 = new(big.Int).Lsh(big.NewInt(1), 29)
)

// Encode returns the canonical (shortest) JAM-compact encoding of n.
// n must satisfy 0 <= n <= MaxValue.
func Encode(n *big.Int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("compact: encode: negative value")
	}
	if n.Cmp(MaxValue) > 0 {
		return nil, fmt.Errorf("compact: encode: value exceeds %d-byte wire capacity", maxValueBytes)
	}

	switch {
	case n.Cmp(twoPow7) < 0:
		return []byte{byte(n.Uint64())}, nil
	case n.Cmp(twoPow14) < 0:
		v := n.Uint64()
		return []byte{0x80 | byte(v>>8), byte(v)}, nil
	case n.Cmp(twoPow29) < 0:
		v := n.Uint64()
		return []byte{
			0xC0 | byte(v>>24),
			byte(v),
			byte(v >> 8),
			byte(v >> 16),
		}, nil
	default:
		return encodeWide(n)
	}
}

// EncodeUint64 is a convenience wrapper for the common case of a 64-bit input.
func EncodeUint64(n uint64) []byte {
	enc, err := Encode(new(big.Int).SetUint64(n))
	if err != nil {
		// Unreachable: every uint64 value fits in well under the 16-byte
		// N-mode ceiling.
		panic(err)
	}
	return enc
}

// encodeWide picks the smallest N-mode (1111nnnn) length that fits n.
func encodeWide(n *big.Int) ([]byte, error) {
	for extra := 1; extra <= maxValueBytes; extra++ {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(8*extra))
		if n.Cmp(limit) < 0 {
			nnnn := extra - 1
			out := make([]byte, 1+extra)
			out[0] = 0xF0 | byte(nnnn)
			buf := n.Bytes() // big-endian, no leading zero byte for n==0 case handled above
			// place little-endian into out[1:]
			for i := 0; i < len(buf); i++ {
				out[1+i] = buf[len(buf)-1-i]
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("compact: encode: value exceeds %d-byte wire capacity", maxValueBytes)
}

// Decode parses a JAM-compact value from the front of b, returning the
// decoded value and the number of bytes consumed. When strict is true,
// non-canonical (longer-than-necessary) encodings are rejected.
func Decode(b []byte, strict bool) (*big.Int, int, error) {
	if len(b) == 0 {
		return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrTruncatedInput)
	}

	first := b[0]
	switch {
	case first&0x80 == 0x00: // 0xxxxxxx
		return big.NewInt(int64(first & 0x7F)), 1, nil

	case first&0xC0 == 0x80: // 10xxxxxx xxxxxxxx
		if len(b) < 2 {
			return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrTruncatedInput)
		}
		v := (uint64(first&0x3F) << 8) | uint64(b[1])
		if strict && v < 1<<7 {
			return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrNonCanonical)
		}
		return new(big.Int).SetUint64(v), 2, nil

	case first&0xF0 == 0xC0, first&0xF0 == 0xD0: // 110xxxxx (top nibble 1100/1101)
		if len(b) < 4 {
			return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrTruncatedInput)
		}
		v := (uint64(first&0x1F) << 24) | uint64(b[1]) | (uint64(b[2]) << 8) | (uint64(b[3]) << 16)
		if strict && v < 1<<14 {
			return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrNonCanonical)
		}
		return new(big.Int).SetUint64(v), 4, nil

	case first&0xF0 == 0xE0: // 1110xxxx
		return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrReservedPrefix)

	case first&0xF0 == 0xF0: // 1111nnnn
		nnnn := int(first & 0x0F)
		extra := nnnn + 1
		total := 1 + extra
		if len(b) < total {
			return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrTruncatedInput)
		}
		be := make([]byte, extra)
		for i := 0; i < extra; i++ {
			be[extra-1-i] = b[1+i]
		}
		v := new(big.Int).SetBytes(be)
		if strict {
			minLimit := new(big.Int).Lsh(big.NewInt(1), uint(8*(extra-1)))
			if extra > 1 && v.Cmp(minLimit) < 0 {
				return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrNonCanonical)
			}
			if v.Cmp(twoPow29) < 0 {
				return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrNonCanonical)
			}
		}
		return v, total, nil

	default:
		return nil, 0, fmt.Errorf("compact: decode: %w", jamerr.ErrReservedPrefix)
	}
}

// DecodeUint64 decodes a compact value and requires it to fit in 64 bits.
func DecodeUint64(b []byte, strict bool) (uint64, int, error) {
	v, n, err := Decode(b, strict)
	if err != nil {
		return 0, 0, err
	}
	if !v.IsUint64() {
		return 0, 0, fmt.Errorf("compact: decode: value overflows uint64")
	}
	return v.Uint64(), n, nil
}
