package vectorharness

import "testing"

func TestDepthTracerRecordAndSnapshot(t *testing.T) {
	var tr DepthTracer
	tr.Record(0, 3)
	tr.Record(1, 7)
	tr.Record(2, 1)

	snap := tr.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("got %d samples, want 3", len(snap))
	}
	if tr.MaxDepth() != 7 {
		t.Fatalf("MaxDepth() = %d, want 7", tr.MaxDepth())
	}
}

func TestDepthTracerReset(t *testing.T) {
	var tr DepthTracer
	tr.Record(0, 5)
	tr.Reset()
	if len(tr.Snapshot()) != 0 {
		t.Fatalf("expected empty snapshot after Reset")
	}
	if tr.MaxDepth() != -1 {
		t.Fatalf("MaxDepth() after reset = %d, want -1", tr.MaxDepth())
	}
}
