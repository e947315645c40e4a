package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-drift/conduit/cmd/conduit/internal/sample"
)

func init() {
	RegisterCommand(&Command{
		Name:  "samples",
		Short: "List the samples",
		Long: `List the samples "conduit run" can show, with the native views each
one binds.`,
		Usage: "conduit samples",
		Run:   runSamples,
	})
}

func runSamples(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("samples takes no arguments")
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, s := range sample.All() {
		fmt.Fprintf(w, "%s\t%s\t%d views\n", s.Name, s.Description, len(s.Screen))
	}
	return w.Flush()
}
