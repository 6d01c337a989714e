package trie

import "github.com/colossi-labs/jamstate/jamcrypto"

// maxDepth is the recursion depth ceiling for 31-byte keys: 8*31 = 248
// (spec §5). buildNode never exceeds it because each disagreement consumes
// at least one bit and duplicate keys (the only way to exhaust all 248
// bits without a disagreement) are rejected by Root before recursion
// starts.
const maxDepth = 8 * KeyLen

const (
	leafPrefix   = 0x00
	branchPrefix = 0x01
)

// buildNode recurses per spec §4.4: a single entry becomes a leaf, more
// than one splits at the first bit (MSB-first, counting from fromBit) where
// the keys disagree.
func buildNode(kvs []KV, fromBit int, hasher jamcrypto.Hasher) (H256, error) {
	return buildNodeTraced(kvs, fromBit, hasher, nil)
}

// buildNodeTraced is buildNode plus an optional onLeaf callback invoked with
// the bit index at which each leaf was reached (fromBit at the leaf), in
// the order leaves are visited (left-to-right). RootTraced passes its
// callback through to here.
func buildNodeTraced(kvs []KV, fromBit int, hasher jamcrypto.Hasher, onLeaf func(depth int)) (H256, error) {
	if len(kvs) == 1 {
		if onLeaf != nil {
			onLeaf(fromBit)
		}
		return leafHash(kvs[0], hasher), nil
	}

	splitBit := fromBit
	for {
		first := bitAt(kvs[0].Key, splitBit)
		agree := true
		for _, kv := range kvs[1:] {
			if bitAt(kv.Key, splitBit) != first {
				agree = false
				break
			}
		}
		if !agree {
			break
		}
		splitBit++
	}

	var left, right []KV
	for _, kv := range kvs {
		if bitAt(kv.Key, splitBit) == 0 {
			left = append(left, kv)
		} else {
			right = append(right, kv)
		}
	}

	hLeft, err := buildNodeTraced(left, splitBit+1, hasher, onLeaf)
	if err != nil {
		return H256{}, err
	}
	hRight, err := buildNodeTraced(right, splitBit+1, hasher, onLeaf)
	if err != nil {
		return H256{}, err
	}
	return branchHash(hLeft, hRight, hasher), nil
}

func leafHash(kv KV, hasher jamcrypto.Hasher) H256 {
	valueHash := hasher.Hash(kv.Value)
	node := make([]byte, 0, 1+KeyLen+32)
	node = append(node, leafPrefix)
	node = append(node, kv.Key[:]...)
	node = append(node, valueHash[:]...)
	return H256(hasher.Hash(node))
}

func branchHash(left, right H256, hasher jamcrypto.Hasher) H256 {
	node := make([]byte, 0, 1+32+32)
	node = append(node, branchPrefix)
	node = append(node, left[:]...)
	node = append(node, right[:]...)
	return H256(hasher.Hash(node))
}

// bitAt returns the bit at bitIndex within key, counting MSB-first from
// byte 0 (spec §4.4 "Bit indexing is most-significant-bit-first").
func bitAt(key [KeyLen]byte, bitIndex int) byte {
	byteIdx := bitIndex / 8
	bitPos := 7 - uint(bitIndex%8)
	return (key[byteIdx] >> bitPos) & 1
}
