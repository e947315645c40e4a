package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestExecuteVersion(t *testing.T) {
	out := capture(t)
	if err := execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "conduit version "+Version) {
		t.Errorf("output = %q", out.String())
	}
}

func TestExecuteHelpListsCommands(t *testing.T) {
	out := capture(t)
	if err := execute(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"run", "samples", "strings"} {
		if !strings.Contains(out.String(), "  "+name) {
			t.Errorf("help does not list %q:\n%s", name, out.String())
		}
	}
}

func TestExecuteCommandHelp(t *testing.T) {
	out := capture(t)
	if err := execute([]string{"run", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "conduit run <sample>") {
		t.Errorf("output = %q", out.String())
	}
}

func TestExecuteErrors(t *testing.T) {
	capture(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"deploy"}, "unknown command: deploy"},
		{"dir without path", []string{"samples", "--dir"}, "--dir requires"},
		{"run without sample", []string{"run"}, "sample is required"},
		{"misspelled sample", []string{"run", "countr"}, `did you mean "counter"`},
		{"unknown sample", []string{"run", "spreadsheet"}, `unknown sample "spreadsheet"`},
		{"bad locale", []string{"run", "counter", "--locale", "!!"}, "--locale"},
		{"samples with args", []string{"samples", "x"}, "no arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("execute(%q) error = %v, want one containing %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestSamples(t *testing.T) {
	out := capture(t)
	if err := execute([]string{"samples"}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"counter", "input", "fizzbuzz", "options"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("samples output lacks %q:\n%s", name, out.String())
		}
	}
}

func TestStrings(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("conduit.yaml", "resources:\n  strings: strings.yaml\n")
	write("strings.yaml", "en:\n  a: A\n  b: B\nde:\n  a: A\n")

	out := capture(t)
	err := execute([]string{"--dir", dir, "strings"})
	if err == nil || !strings.Contains(err.Error(), "1 missing translation") {
		t.Errorf("strings error = %v, want 1 missing translation", err)
	}
	if !strings.Contains(out.String(), "missing b") {
		t.Errorf("output does not name the missing id:\n%s", out.String())
	}

	write("complete.yaml", "en:\n  a: A\nde:\n  a: A\n")
	if err := execute([]string{"--dir=" + dir, "strings", filepath.Join(dir, "complete.yaml")}); err != nil {
		t.Errorf("strings on a complete catalog: %v", err)
	}
}

func TestStringsDefaultsToSampleCatalog(t *testing.T) {
	out := capture(t)
	if err := execute([]string{"--dir", t.TempDir(), "strings"}); err != nil {
		t.Fatalf("strings error = %v", err)
	}
	if !strings.Contains(out.String(), "(fallback)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestParseRunArgs(t *testing.T) {
	rest, opts, err := parseRunArgs([]string{"--locale", "de", "counter", "--locale=fr-CA"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 1 || rest[0] != "counter" {
		t.Errorf("rest = %v, want [counter]", rest)
	}
	if len(opts.locales) != 2 || opts.locales[0].String() != "de" || opts.locales[1].String() != "fr-CA" {
		t.Errorf("locales = %v, want [de fr-CA]", opts.locales)
	}
	if _, _, err := parseRunArgs([]string{"--locale"}); err == nil {
		t.Error("parseRunArgs(--locale) succeeded")
	}
}
