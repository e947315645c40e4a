package tui

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/conduit/pkg/native"
)

type plainView struct{}

func (plainView) ViewID() int64    { return 9 }
func (plainView) ViewType() string { return "plain" }

func newTestScreen(t *testing.T) (*Screen, *native.Registry) {
	t.Helper()
	reg := native.NewRegistry()
	RegisterFactories(reg, nil)
	s := NewScreen("Test")
	for _, el := range []struct{ typ, name string }{
		{TypeLabel, "title"},
		{TypeButton, "ok"},
		{TypeInput, "name"},
		{TypeSwitch, "power"},
		{TypeSeekBar, "volume"},
	} {
		v, err := reg.Create(el.typ, el.name, map[string]any{"name": el.name, "text": el.name})
		if err != nil {
			t.Fatalf("Create(%s) error = %v", el.typ, err)
		}
		if err := s.Add(v); err != nil {
			t.Fatal(err)
		}
	}
	return s, reg
}

func viewNamed(t *testing.T, reg *native.Registry, name string) native.View {
	t.Helper()
	id, ok := reg.ID(name)
	if !ok {
		t.Fatalf("no view %q", name)
	}
	return reg.View(id)
}

func TestScreenAddRejectsForeignViews(t *testing.T) {
	s := NewScreen("")
	if err := s.Add(plainView{}); err == nil {
		t.Error("Add(plainView) succeeded")
	}
}

func TestScreenFocusCycle(t *testing.T) {
	s, reg := newTestScreen(t)
	ok := viewNamed(t, reg, "ok").(*Button)
	ok.SetOnClick(func() {})

	want := []string{"ok", "name", "power", "volume", "ok"}
	for i, name := range want {
		s.HandleKey(key("tab"))
		if got := s.Focused().(native.Named).ViewName(); got != name {
			t.Fatalf("tab %d: focused %q, want %q", i+1, got, name)
		}
	}
	s.HandleKey(key("shift+tab"))
	if got := s.Focused().(native.Named).ViewName(); got != "volume" {
		t.Errorf("shift+tab: focused %q, want volume", got)
	}

	// Disabled views are skipped.
	viewNamed(t, reg, "name").(*Input).SetEnabled(false)
	s.HandleKey(key("tab"))
	s.HandleKey(key("tab"))
	if got := s.Focused().(native.Named).ViewName(); got != "power" {
		t.Errorf("focused %q, want power", got)
	}
}

func TestScreenRoutesKeys(t *testing.T) {
	s, reg := newTestScreen(t)
	in := viewNamed(t, reg, "name").(*Input)
	in.SetText("")
	var typed []string
	in.SetOnTextChanged(func(text string) { typed = append(typed, text) })
	in.SetMaxLength(3)

	s.FocusNext(1)
	if !s.Editing() {
		t.Fatal("Editing() = false with the input focused")
	}
	for _, k := range []string{"a", "b", "c", "d", "backspace"} {
		s.HandleKey(key(k))
	}
	if got := strings.Join(typed, ","); got != "a,ab,abc,ab" {
		t.Errorf("text changes = %s, want a,ab,abc,ab", got)
	}

	in.SetText("quiet")
	if len(typed) != 4 {
		t.Error("SetText notified the watcher")
	}

	s.HandleKey(key("tab"))
	sw := viewNamed(t, reg, "power").(*Check)
	var checked []bool
	sw.SetOnCheckedChanged(func(c bool) { checked = append(checked, c) })
	s.HandleKey(key("enter"))
	s.HandleKey(key("enter"))
	if len(checked) != 2 || !checked[0] || checked[1] {
		t.Errorf("checked changes = %v, want [true false]", checked)
	}

	s.HandleKey(key("tab"))
	seek := viewNamed(t, reg, "volume").(*SeekBar)
	var seeks []int
	seek.SetOnSeek(func(p int) { seeks = append(seeks, p) })
	for _, k := range []string{"right", "right", "left", "left", "left"} {
		s.HandleKey(key(k))
	}
	if got, want := seeks, []int{10, 20, 10, 0, 0}; !slices.Equal(got, want) {
		t.Errorf("seeks = %v, want %v", got, want)
	}
}

func TestScreenAlert(t *testing.T) {
	s, _ := newTestScreen(t)
	dismissed := 0
	s.ShowAlert("hello", func() { dismissed++ })

	if s.Editing() {
		t.Error("Editing() = true while an alert is shown")
	}
	if !strings.Contains(s.Render(), "hello") {
		t.Errorf("Render() does not show the alert")
	}
	s.HandleKey(key("tab"))
	if dismissed != 0 {
		t.Fatal("tab dismissed the alert")
	}
	s.HandleKey(key("esc"))
	if dismissed != 1 {
		t.Errorf("dismissed = %d, want 1", dismissed)
	}

	s.ShowAlert("again", func() { dismissed++ })
	s.DismissAlert()
	if _, shown := s.AlertShown(); shown || dismissed != 1 {
		t.Errorf("DismissAlert: shown = %v, dismissed = %d", shown, dismissed)
	}
}

func TestScreenHidesInvisibleViews(t *testing.T) {
	s, reg := newTestScreen(t)
	viewNamed(t, reg, "title").(*Label).SetText("Greeting")
	if !strings.Contains(s.Render(), "Greeting") {
		t.Fatal("label not rendered")
	}
	viewNamed(t, reg, "title").(*Label).SetVisible(false)
	if strings.Contains(s.Render(), "Greeting") {
		t.Error("hidden label rendered")
	}
}

func TestScreenChildren(t *testing.T) {
	s, _ := newTestScreen(t)
	n := 0
	native.Walk(s, func(v native.View) { n++ })
	if n != 6 {
		t.Errorf("Walk visited %d views, want 6", n)
	}
}

func TestModelRunsTasks(t *testing.T) {
	s, _ := newTestScreen(t)
	var m tea.Model = NewModel(s)
	ran := false
	m, _ = m.Update(taskMsg{run: func() { ran = true }})
	if !ran {
		t.Error("task did not run")
	}
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if s.width != 40 {
		t.Errorf("width = %d, want 40", s.width)
	}
}

func TestLooper(t *testing.T) {
	var sent []tea.Msg
	l := NewLooper(func(msg tea.Msg) { sent = append(sent, msg) })
	if !l.Post(func() {}) {
		t.Fatal("Post() = false")
	}
	if l.Post(nil) {
		t.Error("Post(nil) = true")
	}
	l.Close()
	if l.Post(func() {}) {
		t.Error("Post() after Close = true")
	}
	if len(sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sent))
	}
	if _, ok := sent[0].(taskMsg); !ok {
		t.Errorf("sent %T, want taskMsg", sent[0])
	}
}
