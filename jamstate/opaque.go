package jamstate

// opaqueBytes holds a field whose interior shape this milestone does not
// decode structurally (spec §9): decode/encode is the identity function
// over the raw payload slice, which still satisfies the byte-identity
// roundtrip law (P3) for every field that uses it.
type opaqueBytes struct {
	Raw []byte
}

func (o *opaqueBytes) Len() int { return len(o.Raw) }

func decodeOpaque(b []byte) opaqueBytes {
	raw := make([]byte, len(b))
	copy(raw, b)
	return opaqueBytes{Raw: raw}
}

func encodeOpaque(o opaqueBytes) []byte {
	out := make([]byte, len(o.Raw))
	copy(out, o.Raw)
	return out
}
