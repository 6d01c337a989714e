package vectorharness

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/colossi-labs/jamstate/jamstate"
)

// vectorFile is the on-disk shape of a JAM state test-vector fixture: a
// flat array of discriminator/hex-value pairs, matching the official JAM
// test vectors' keyval encoding (spec §6.2 "vector loader").
type vectorFile struct {
	Keyvals []struct {
		Disc  int    `json:"disc"`
		Value string `json:"value"`
	} `json:"keyvals"`
}

// LoadVectorFile reads a JSON vector fixture and returns its already
// unframed (Disc, Bytes) pairs, ready for jamstate.ParseKeyvals.
func LoadVectorFile(path string) ([]jamstate.KV, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vectorharness: read %s: %w", path, err)
	}

	var vf vectorFile
	if err := json.Unmarshal(raw, &vf); err != nil {
		return nil, fmt.Errorf("vectorharness: parse %s: %w", path, err)
	}

	out := make([]jamstate.KV, 0, len(vf.Keyvals))
	for i, kv := range vf.Keyvals {
		if kv.Disc < 0 || kv.Disc > 0xFF {
			return nil, fmt.Errorf("vectorharness: %s: entry %d: discriminator %d out of byte range", path, i, kv.Disc)
		}
		value, err := hex.DecodeString(strings.TrimPrefix(kv.Value, "0x"))
		if err != nil {
			return nil, fmt.Errorf("vectorharness: %s: entry %d: %w", path, i, err)
		}
		out = append(out, jamstate.KV{Disc: jamstate.Disc(kv.Disc), Value: value})
	}
	return out, nil
}

// LoadGenesisState reads a vector fixture and parses it straight into a
// jamstate.State, per the §8 scenario 6 "parse the 19-field genesis state
// vector" requirement.
func LoadGenesisState(path string) (*jamstate.State, error) {
	kvs, err := LoadVectorFile(path)
	if err != nil {
		return nil, err
	}
	state, err := jamstate.ParseKeyvals(kvs)
	if err != nil {
		return nil, fmt.Errorf("vectorharness: %s: %w", path, err)
	}
	return state, nil
}
