package vectorharness

// Report tallies the outcome of a batch of P1-P7 property checks, adapted
// from feedback.RuntimeSignature: same "counts by category" shape, renamed
// away from the teacher's fuzzer-signature framing since this harness runs
// deterministic checks, not a corpus-driven fuzz loop.
type Report struct {
	PassCount int
	FailCount int
	// FailureKinds counts failures by property name (e.g. "P1-roundtrip",
	// "P5-determinism"), mirroring RuntimeSignature.BugKinds's
	// category-counter shape.
	FailureKinds map[string]int
}

// NewReport returns a Report with an initialized FailureKinds map.
func NewReport() Report {
	return Report{FailureKinds: make(map[string]int)}
}

// RecordPass increments the pass counter.
func (r *Report) RecordPass() {
	r.PassCount++
}

// RecordFailure increments the fail counter and the named property's
// failure count.
func (r *Report) RecordFailure(property string) {
	r.FailCount++
	r.FailureKinds[property]++
}

// Clean reports whether every recorded check passed.
func (r Report) Clean() bool {
	return r.FailCount == 0
}
