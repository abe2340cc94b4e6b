// Command jsobjsh is a small interactive-ish demo shell exercising the
// object model end to end: creating objects and arrays, defining
// properties, walking prototype chains, and printing descriptors.
// Grounded on storj-storj's cmd/<tool>/main.go convention (a root Cobra
// command, thin subcommands, config bound through Viper).
package main

import (
	"fmt"
	"os"

	"github.com/nooga/jsobjectcore/cmd/jsobjsh/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
