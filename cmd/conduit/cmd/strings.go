package cmd

import (
	"fmt"

	"github.com/go-drift/conduit/cmd/conduit/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "strings",
		Short: "Check a string catalog for missing translations",
		Long: `Check a string catalog.

The first locale of the catalog is the fallback. Every other locale is
checked for ids the fallback has and it lacks. Without a path the catalog
named by resources.strings in conduit.yaml is checked, or the sample
strings when none is configured.`,
		Usage: "conduit strings [path]",
		Run:   runStrings,
	})
}

func runStrings(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("strings takes at most one path")
	}
	root, err := resolveRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	catalog, err := loadCatalog(cfg, path)
	if err != nil {
		return err
	}

	ids := catalog.IDs()
	missing := catalog.Missing()
	total := 0
	for i, tag := range catalog.Locales() {
		n := len(ids) - len(missing[tag])
		note := ""
		if i == 0 {
			note = " (fallback)"
		}
		fmt.Fprintf(stdout, "%-8s %d strings%s\n", tag, n, note)
		for _, id := range missing[tag] {
			fmt.Fprintf(stdout, "  missing %s\n", id)
		}
		total += len(missing[tag])
	}
	if total > 0 {
		return fmt.Errorf("%d missing %s", total, plural(total, "translation"))
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
