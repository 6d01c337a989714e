// Package jamcrypto adapts the hash and signature primitives the chain-state
// codec and trie engine need (GP §4.5, §6.2) onto concrete Go libraries.
package jamcrypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/colossi-labs/jamstate/jamerr"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// H256 is a 32-byte digest, kept distinct from jamstate.H256 so this
// package has no dependency back on jamstate.
type H256 [32]byte

// Hasher is the narrow surface the trie engine depends on. Tests can
// substitute a fake to check that trie structure is independent of the
// concrete hash function (P7).
type Hasher interface {
	Hash(data []byte) H256
}

// Blake2bHasher is the default Hasher, backing every trie node hash.
type Blake2bHasher struct{}

func (Blake2bHasher) Hash(data []byte) H256 {
	return Blake2b256(data)
}

// Blake2b256 returns the 32-byte Blake2b hash of data.
func Blake2b256(data []byte) H256 {
	return H256(blake2b.Sum256(data))
}

// Keccak256 returns the 32-byte Keccak hash of data: the original Keccak
// padding, not the later FIPS-202 SHA3-256 standardization (they diverge in
// their padding byte). Not used by the trie itself (the GP trie hashes with
// Blake2b throughout) but present on the adapter surface per spec.
func Keccak256(data []byte) H256 {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out H256
	copy(out[:], h.Sum(nil))
	return out
}

// VerifyEd25519 reports whether sig is a valid ed25519 signature of msg
// under pub.
func VerifyEd25519(pub [32]byte, msg []byte, sig [64]byte) bool {
	return ed25519.Verify(pub[:], msg, sig[:])
}

// MustVerifyEd25519 wraps VerifyEd25519 and returns jamerr.ErrCrypto instead
// of a bare bool, for callers that want the closed error taxonomy rather
// than a silent false.
func MustVerifyEd25519(pub [32]byte, msg []byte, sig [64]byte) error {
	if !VerifyEd25519(pub, msg, sig) {
		return fmt.Errorf("jamcrypto: %w: ed25519 signature verification failed", jamerr.ErrCrypto)
	}
	return nil
}
