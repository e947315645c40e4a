package sample

import (
	"io/fs"
	"testing"

	"golang.org/x/text/language"
)

func TestLookup(t *testing.T) {
	for _, s := range All() {
		got, ok := Lookup(s.Name)
		if !ok || got.Name != s.Name {
			t.Errorf("Lookup(%q) = %v, %v", s.Name, got.Name, ok)
		}
		if s.New == nil || len(s.Screen) == 0 {
			t.Errorf("sample %q is incomplete", s.Name)
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"countr", "counter"},
		{"fizbuzz", "fizzbuzz"},
		{"options", "options"},
		{"something", ""},
	}
	for _, tt := range tests {
		if got := Suggest(tt.name); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCatalogCoversEveryLocale(t *testing.T) {
	c, err := Catalog()
	if err != nil {
		t.Fatal(err)
	}
	ids := []string{
		"counter.label", "counter.click_me", "counter.increment", "counter.hint",
		"counter.click_first", "counter.thanks", "input.hint", "input.length",
		"input.clear", "options.accept", "options.submitted",
	}
	for _, tag := range c.Locales() {
		for _, id := range ids {
			if _, ok := c.Lookup([]language.Tag{tag}, id); !ok {
				t.Errorf("locale %s misses %s", tag, id)
			}
		}
	}
	if got, _ := c.Lookup([]language.Tag{language.German}, "input.clear"); got != "Leeren" {
		t.Errorf("German input.clear = %q", got)
	}
}

func TestDrawables(t *testing.T) {
	for _, name := range []string{"badge_on.png", "badge_off.png"} {
		if _, err := fs.Stat(Drawables(), name); err != nil {
			t.Errorf("drawable %s: %v", name, err)
		}
	}
}
