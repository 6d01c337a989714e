// Package jamerr defines the closed error taxonomy shared by the codec,
// state assembler, and trie engine (spec §7). Decode-side failures in
// compact, jamstate, and trie wrap one of these sentinels, except
// compact.DecodeUint64's uint64-overflow error, so callers can dispatch on
// kind with errors.Is, the way oracle.ErrInvalidInput is used upstream.
package jamerr

import "errors"

var (
	// ErrTruncatedInput means a decoder needed more bytes than were available.
	ErrTruncatedInput = errors.New("jam: truncated input")

	// ErrReservedPrefix means compact decode saw the reserved 1110xxxx prefix.
	ErrReservedPrefix = errors.New("jam: reserved compact prefix")

	// ErrNonCanonical means compact decode saw a longer-than-necessary
	// encoding while strict mode was enabled.
	ErrNonCanonical = errors.New("jam: non-canonical compact encoding")

	// ErrUnknownDiscriminator means the state assembler saw a discriminator
	// byte outside the closed 19-entry field table.
	ErrUnknownDiscriminator = errors.New("jam: unknown state discriminator")

	// ErrDuplicateDiscriminator means the same discriminator appeared twice
	// in a state key/value input.
	ErrDuplicateDiscriminator = errors.New("jam: duplicate state discriminator")

	// ErrFieldShape means a field-specific structural invariant was violated
	// (missing terminator, count mismatch, bad padding, ...).
	ErrFieldShape = errors.New("jam: field shape violation")

	// ErrDuplicateKey means the trie input contained two equal keys.
	ErrDuplicateKey = errors.New("jam: duplicate trie key")

	// ErrKeyLength means a trie key was not exactly 31 bytes.
	ErrKeyLength = errors.New("jam: wrong trie key length")

	// ErrCrypto means the crypto adapter reported a failure.
	ErrCrypto = errors.New("jam: crypto adapter failure")
)
