// Package boundarytest is a declarative catalog of the literal boundary
// values spec.md §8 names. It is a fixed catalog, not a generator: every
// case is hand-named from the spec text rather than synthesized. No other
// package imports it; the compact, jamstate, and trie tests spell out their
// own boundary values.
package boundarytest

// Case is one named boundary value or range, adapted from
// domains.Bucket/Range (the teacher's per-field fuzz-domain partitioning
// shape), renamed for direct use as a literal test-case catalog rather than
// a reflection-driven mutation domain.
type Case struct {
	Name string
	Min  uint64
	Max  uint64 // equal to Min for a single point case
	Tag  string
}

// CompactBoundaries are the compact-codec mode boundaries named in §8: the
// exact points where the wire encoding's length changes.
var CompactBoundaries = []Case{
	{Name: "zero", Min: 0, Max: 0, Tag: "mode0"},
	{Name: "mode0-max", Min: 127, Max: 127, Tag: "mode0"},
	{Name: "mode2-min", Min: 128, Max: 128, Tag: "mode2"},
	{Name: "mode2-max", Min: 16383, Max: 16383, Tag: "mode2"},
	{Name: "mode4-min", Min: 16384, Max: 16384, Tag: "mode4"},
	{Name: "mode4-max", Min: 1<<29 - 1, Max: 1<<29 - 1, Tag: "mode4"},
	{Name: "nmode-min", Min: 1 << 29, Max: 1 << 29, Tag: "nmode"},
	{Name: "u64-max", Min: 1<<64 - 1, Max: 1<<64 - 1, Tag: "nmode"},
}

// KappaCase is one named κ (current_validators) count-prefix boundary:
// zero validators, the configured set size, or one off that size.
type KappaCase struct {
	Name  string
	Count int
}

// KappaCounts takes configuredSize (the chainspec's ValidatorCount) since
// the "off by one" and "configured" cases are relative to it, not fixed
// literals.
func KappaCounts(configuredSize int) []KappaCase {
	return []KappaCase{
		{Name: "empty", Count: 0},
		{Name: "configured", Count: configuredSize},
		{Name: "configured-plus-one", Count: configuredSize + 1},
	}
}

// RecentHistoryShapes names the β boundary cases: no entries, one entry,
// and (implicitly, by construction of any encoding) the bare terminator
// byte with nothing else.
var RecentHistoryShapes = []Case{
	{Name: "empty", Min: 0, Max: 0, Tag: "beta"},
	{Name: "single-entry", Min: 1, Max: 1, Tag: "beta"},
}

// EntropyVariants names the η shape boundary: genesis-stub (32 bytes, one
// hash) vs. steady-state (128 bytes, four hashes).
var EntropyVariants = []Case{
	{Name: "genesis-stub", Min: 32, Max: 32, Tag: "eta"},
	{Name: "four-hash", Min: 128, Max: 128, Tag: "eta"},
}

// TrieSizes names the trie-input-cardinality boundaries: empty, a single
// entry, and two entries (the smallest case that exercises a branch node).
var TrieSizes = []Case{
	{Name: "empty", Min: 0, Max: 0, Tag: "trie"},
	{Name: "single", Min: 1, Max: 1, Tag: "trie"},
	{Name: "pair", Min: 2, Max: 2, Tag: "trie"},
}
