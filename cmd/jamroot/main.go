// Command jamroot loads a JAM state vector file, emits its keyvals back out
// as trie entries, and prints the resulting state root. Not a CLI surface
// with flags or subcommands — a single fixed pipeline, per spec.md's
// out-of-scope note on CLI wrappers.
package main

import (
	"fmt"
	"os"

	"github.com/colossi-labs/jamstate/trie"
	"github.com/colossi-labs/jamstate/vectorharness"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: jamroot <vector-file.json>\n")
		os.Exit(1)
	}

	state, err := vectorharness.LoadGenesisState(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "jamroot: %v\n", err)
		os.Exit(1)
	}

	kvs, err := state.EmitKeyvals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "jamroot: %v\n", err)
		os.Exit(1)
	}

	trieKVs := make([]trie.KV, 0, len(kvs))
	for _, kv := range kvs {
		var key [trie.KeyLen]byte
		key[0] = byte(kv.Disc)
		trieKVs = append(trieKVs, trie.KV{Key: key, Value: kv.Value})
	}

	root, err := trie.Root(trieKVs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jamroot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%x\n", root)
}
