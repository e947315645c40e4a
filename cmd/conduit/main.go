// Command conduit runs the conduit samples in a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/conduit/cmd/conduit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
