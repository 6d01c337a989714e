package jamstate

import (
	"fmt"
	"math/big"

	"github.com/colossi-labs/jamstate/compact"
	"github.com/colossi-labs/jamstate/jamerr"
)

// PrivilegedServices is the manager/registrar bookkeeping alongside δ: a
// list of service indices holding elevated privileges plus the index of the
// service empowered to alter that list (spec §9 supplemental field).
// Framed as Compact(count) · u32[count] · u32 manager-id.
type PrivilegedServices struct {
	ServiceIDs []uint32
	ManagerID  uint32
}

func decodePrivilegedServices(b []byte) (any, error) {
	n, consumed, err := compact.DecodeUint64(b, false)
	if err != nil {
		return nil, fmt.Errorf("privileged_services: count: %w", err)
	}
	rest := b[consumed:]
	ids := make([]uint32, 0, n)
	for i := uint64(0); i < n; i++ {
		var id uint32
		id, rest, err = readU32(rest)
		if err != nil {
			return nil, fmt.Errorf("privileged_services: id %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	manager, rest, err := readU32(rest)
	if err != nil {
		return nil, fmt.Errorf("privileged_services: manager id: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("privileged_services: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	return &PrivilegedServices{ServiceIDs: ids, ManagerID: manager}, nil
}

func encodePrivilegedServices(v any) ([]byte, error) {
	p, ok := v.(*PrivilegedServices)
	if !ok {
		return nil, fmt.Errorf("privileged_services: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	lenPrefix, err := compact.Encode(new(big.Int).SetInt64(int64(len(p.ServiceIDs))))
	if err != nil {
		return nil, fmt.Errorf("privileged_services: count: %w", err)
	}
	out := append([]byte{}, lenPrefix...)
	for _, id := range p.ServiceIDs {
		out = putU32(out, id)
	}
	out = putU32(out, p.ManagerID)
	return out, nil
}
