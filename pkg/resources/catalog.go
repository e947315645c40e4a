// Package resources implements presenter.BuildContext on top of a string
// catalog.
//
// A catalog is a YAML document mapping locales to string ids:
//
//	en:
//	  counter.label: "Clicked %d times"
//	de:
//	  counter.label: "%d mal geklickt"
//
// The first locale in the document is the fallback for ids missing in a
// more specific one.
package resources

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog holds the localized strings of an app. A Catalog is immutable
// once parsed and safe for concurrent use.
type Catalog struct {
	tags    []language.Tag
	strings []map[string]string
	matcher language.Matcher
}

// LoadCatalog reads and parses the catalog at path.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read string catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse string catalog: %w", err)
	}
	if len(doc.Content) == 0 {
		return &Catalog{matcher: language.NewMatcher(nil)}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("string catalog: line %d: expected a mapping of locales", root.Line)
	}

	c := &Catalog{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, body := root.Content[i], root.Content[i+1]
		tag, err := language.Parse(name.Value)
		if err != nil {
			return nil, fmt.Errorf("string catalog: line %d: invalid locale %q: %w", name.Line, name.Value, err)
		}
		var entries map[string]string
		if err := body.Decode(&entries); err != nil {
			return nil, fmt.Errorf("string catalog: locale %s: %w", tag, err)
		}
		c.tags = append(c.tags, tag)
		c.strings = append(c.strings, entries)
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Locales returns the locales of the catalog in document order.
func (c *Catalog) Locales() []language.Tag {
	return append([]language.Tag(nil), c.tags...)
}

// Lookup returns the format for id in the locale best matching prefs,
// falling back to the first locale of the catalog.
func (c *Catalog) Lookup(prefs []language.Tag, id string) (string, bool) {
	if c == nil || len(c.tags) == 0 {
		return "", false
	}
	if len(prefs) > 0 {
		_, index, confidence := c.matcher.Match(prefs...)
		if confidence != language.No {
			if s, ok := c.strings[index][id]; ok {
				return s, true
			}
		}
	}
	s, ok := c.strings[0][id]
	return s, ok
}

// IDs returns the sorted ids of the fallback locale.
func (c *Catalog) IDs() []string {
	if c == nil || len(c.strings) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(c.strings[0]))
}

// Missing returns, per locale after the first, the sorted ids of the
// fallback locale that the locale does not translate. Complete locales are
// left out.
func (c *Catalog) Missing() map[language.Tag][]string {
	out := make(map[language.Tag][]string)
	for _, id := range c.IDs() {
		for i := 1; i < len(c.tags); i++ {
			if _, ok := c.strings[i][id]; !ok {
				out[c.tags[i]] = append(out[c.tags[i]], id)
			}
		}
	}
	return out
}
