package chainspec

import "testing"

func TestDefaultConfig(t *testing.T) {
	c := Default()
	if c.Profile != Full {
		t.Fatalf("Default().Profile = %v, want Full", c.Profile)
	}
	if c.StrictCompact {
		t.Fatalf("Default().StrictCompact = true, want false")
	}
}

func TestExpectedValidatorCount(t *testing.T) {
	if (Config{Profile: Tiny}).ExpectedValidatorCount() != tinyValidatorCount {
		t.Fatalf("tiny expected count mismatch")
	}
	if (Config{Profile: Full}).ExpectedValidatorCount() != fullValidatorCount {
		t.Fatalf("full expected count mismatch")
	}
}

func TestProfileString(t *testing.T) {
	if Tiny.String() != "tiny" || Full.String() != "full" {
		t.Fatalf("unexpected Profile.String() output")
	}
}
