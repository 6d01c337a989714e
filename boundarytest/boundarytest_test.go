package boundarytest

import "testing"

func TestCompactBoundariesCoverModeTransitions(t *testing.T) {
	want := map[string]uint64{
		"zero": 0, "mode0-max": 127, "mode2-min": 128, "mode2-max": 16383,
		"mode4-min": 16384, "mode4-max": 1<<29 - 1, "nmode-min": 1 << 29, "u64-max": 1<<64 - 1,
	}
	got := make(map[string]uint64, len(CompactBoundaries))
	for _, c := range CompactBoundaries {
		got[c.Name] = c.Min
	}
	for name, v := range want {
		gv, ok := got[name]
		if !ok {
			t.Fatalf("missing boundary case %q", name)
		}
		if gv != v {
			t.Fatalf("case %q = %d, want %d", name, gv, v)
		}
	}
}

func TestKappaCounts(t *testing.T) {
	cases := KappaCounts(6)
	if len(cases) != 3 {
		t.Fatalf("got %d kappa cases, want 3", len(cases))
	}
	if cases[0].Count != 0 || cases[1].Count != 6 || cases[2].Count != 7 {
		t.Fatalf("unexpected kappa case counts: %+v", cases)
	}
}

func TestEntropyVariantsShape(t *testing.T) {
	if len(EntropyVariants) != 2 {
		t.Fatalf("got %d entropy variants, want 2", len(EntropyVariants))
	}
	if EntropyVariants[0].Min != 32 || EntropyVariants[1].Min != 128 {
		t.Fatalf("unexpected entropy variant sizes: %+v", EntropyVariants)
	}
}

func TestTrieSizesShape(t *testing.T) {
	if len(TrieSizes) != 3 {
		t.Fatalf("got %d trie size cases, want 3", len(TrieSizes))
	}
}
