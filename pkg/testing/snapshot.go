package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/conduit/pkg/widget"
)

// UpdateSnapshotsEnv makes MatchesFile rewrite golden files when set to 1.
const UpdateSnapshotsEnv = "CONDUIT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a rendered widget list.
type Snapshot struct {
	Presenter string   `json:"presenter,omitempty"`
	Renders   int      `json:"renders"`
	Widgets   []string `json:"widgets"`
}

// CaptureSnapshot captures the last rendered list. The snapshot is empty
// when nothing was rendered.
func (pt *PresenterTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Presenter: pt.base.Name(), Widgets: []string{}}
	renders := pt.Renders()
	snap.Renders = len(renders)
	if len(renders) > 0 {
		snap.Widgets = SnapshotOf(renders[len(renders)-1]).Widgets
	}
	return snap
}

// SnapshotOf captures list.
func SnapshotOf(list widget.List) *Snapshot {
	snap := &Snapshot{Widgets: make([]string, 0, list.Len())}
	for _, w := range list.All() {
		snap.Widgets = append(snap.Widgets, widget.String(w))
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// CONDUIT_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns the difference between other and this snapshot, or "" if
// they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(other, s)
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	if snap.Widgets == nil {
		snap.Widgets = []string{}
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
