// Package main is the blindsearch command line tool.
//
// Usage:
//
//	blindsearch [flags] <command> [args]
//
// Commands:
//
//	run       - Solve a problem file with one algorithm
//	compare   - Solve a problem file with several algorithms side by side
//	validate  - Check a problem file without searching
//	schema    - Print the JSON Schema of problem files
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/blindsearch/cmd/blindsearch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
