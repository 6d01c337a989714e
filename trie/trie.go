// Package trie implements the binary Merkle Patricia Trie over 31-byte keys
// (GP Appendix D): a pure, recursive, MSB-first bit-split tree with
// Blake2b-256 node hashing.
package trie

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/colossi-labs/jamstate/jamcrypto"
	"github.com/colossi-labs/jamstate/jamerr"
)

// KeyLen is the fixed trie key width the GP state trie uses.
const KeyLen = 31

// H256 is a 32-byte trie root or node hash.
type H256 [32]byte

// KV is one trie input entry: a fixed-length key and an arbitrary-length
// value.
type KV struct {
	Key   [KeyLen]byte
	Value []byte
}

// Root computes the trie root over kvs using the default Blake2b-256
// hasher. Keys need not arrive pre-sorted; Root sorts a copy before
// recursing (spec §3.3 ordering, §4.4 step 0).
func Root(kvs []KV) (H256, error) {
	return RootWithHasher(kvs, jamcrypto.Blake2bHasher{})
}

// RootWithHasher computes the trie root using the given hasher. Exposed so
// callers (and property tests checking P7, trie-structure/hash
// independence) can inject a non-default hash function.
func RootWithHasher(kvs []KV, hasher jamcrypto.Hasher) (H256, error) {
	if len(kvs) == 0 {
		return H256{}, nil
	}

	sorted := make([]KV, len(kvs))
	copy(sorted, kvs)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key[:], sorted[j].Key[:]) < 0
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return H256{}, fmt.Errorf("trie: %w: %x", jamerr.ErrDuplicateKey, sorted[i].Key)
		}
	}

	return buildNode(sorted, 0, hasher)
}

// RootTraced is RootWithHasher plus onLeaf, invoked once per leaf
// (left-to-right visitation order) with the bit index at which that leaf
// was reached, i.e. the number of key bits consumed on its path. The trie
// tests use it to check that no leaf lies deeper than 8*KeyLen = 248 bits.
func RootTraced(kvs []KV, hasher jamcrypto.Hasher, onLeaf func(depth int)) (H256, error) {
	if len(kvs) == 0 {
		return H256{}, nil
	}

	sorted := make([]KV, len(kvs))
	copy(sorted, kvs)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key[:], sorted[j].Key[:]) < 0
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return H256{}, fmt.Errorf("trie: %w: %x", jamerr.ErrDuplicateKey, sorted[i].Key)
		}
	}

	return buildNodeTraced(sorted, 0, hasher, onLeaf)
}
