package jamstate

import (
	"fmt"
	"math/big"

	"github.com/colossi-labs/jamstate/compact"
	"github.com/colossi-labs/jamstate/jamerr"
)

// Judgements is ψ: three hash lists serialized in order good/bad/wonky,
// each framed as Compact(len) · H256[len] (spec §4.2).
type Judgements struct {
	Good  []H256
	Bad   []H256
	Wonky []H256
}

func decodeHashList(b []byte) ([]H256, []byte, error) {
	n, consumed, err := compact.DecodeUint64(b, false)
	if err != nil {
		return nil, nil, fmt.Errorf("length prefix: %w", err)
	}
	rest := b[consumed:]
	out := make([]H256, 0, n)
	for i := uint64(0); i < n; i++ {
		var h H256
		h, rest, err = readH256(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, h)
	}
	return out, rest, nil
}

func encodeHashList(dst []byte, hs []H256) ([]byte, error) {
	lenPrefix, err := compact.Encode(new(big.Int).SetInt64(int64(len(hs))))
	if err != nil {
		return nil, fmt.Errorf("length prefix: %w", err)
	}
	dst = append(dst, lenPrefix...)
	for _, h := range hs {
		dst = append(dst, h[:]...)
	}
	return dst, nil
}

func decodeJudgements(b []byte) (any, error) {
	good, rest, err := decodeHashList(b)
	if err != nil {
		return nil, fmt.Errorf("judgements: good: %w", err)
	}
	bad, rest, err := decodeHashList(rest)
	if err != nil {
		return nil, fmt.Errorf("judgements: bad: %w", err)
	}
	wonky, rest, err := decodeHashList(rest)
	if err != nil {
		return nil, fmt.Errorf("judgements: wonky: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("judgements: %w: %d trailing bytes", jamerr.ErrFieldShape, len(rest))
	}
	return &Judgements{Good: good, Bad: bad, Wonky: wonky}, nil
}

func encodeJudgements(v any) ([]byte, error) {
	j, ok := v.(*Judgements)
	if !ok {
		return nil, fmt.Errorf("judgements: %w: wrong Go type %T", jamerr.ErrFieldShape, v)
	}
	out := make([]byte, 0, 64)
	var err error
	if out, err = encodeHashList(out, j.Good); err != nil {
		return nil, fmt.Errorf("judgements: good: %w", err)
	}
	if out, err = encodeHashList(out, j.Bad); err != nil {
		return nil, fmt.Errorf("judgements: bad: %w", err)
	}
	if out, err = encodeHashList(out, j.Wonky); err != nil {
		return nil, fmt.Errorf("judgements: wonky: %w", err)
	}
	return out, nil
}
