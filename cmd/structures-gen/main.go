// Package main provides the CLI entrypoint for structures-gen.
//
// structures-gen turns YAML structure declarations into Go types:
//   - check validates a schema and prints diagnostics
//   - gen emits typed accessors for every declared structure
//   - init writes a starter schema
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
