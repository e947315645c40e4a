package presenter

import (
	"testing"

	"github.com/go-drift/conduit/pkg/widget"
)

func stabilized(s *stabilizer, widgets ...widget.Widget) widget.List {
	ui := widget.NewBuilder().Add(widgets...)
	s.stabilize(ui)
	return ui.Lock()
}

func TestStabilizerKeepsEverySlot(t *testing.T) {
	s := newStabilizer()
	var got []string
	build := func(tag string) widget.List {
		in := widget.InputOf("name", "", widget.On(func(v string) { got = append(got, tag+":"+v) }))
		in.OnClick = widget.Do(func() { got = append(got, tag+":click") })
		return stabilized(s, in)
	}

	first := build("a")
	second := build("b")
	if !first.Equal(second) {
		t.Fatalf("rebuilt lists differ:\n%v\n%v", first, second)
	}
	if s.size() != 2 {
		t.Errorf("size() = %d, want 2", s.size())
	}

	in, _ := widget.FindAs[widget.Input](first, "name")
	in.OnTextChanged.Call("x")
	in.OnClick.Invoke()
	want := []string{"b:x", "b:click"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestStabilizerSeparatesKeysAndTypes(t *testing.T) {
	s := newStabilizer()
	l := stabilized(s,
		widget.ButtonOf(1, "", widget.Do(func() {})),
		widget.ButtonOf("1", "", widget.Do(func() {})),
		widget.PlainOf(2),
	)
	a := l.At(0).Common().OnClick
	b := l.At(1).Common().OnClick
	if a == b {
		t.Error("int and string keys must not share a proxy")
	}

	// Same key, new widget type.
	l = stabilized(s, widget.Plain{Base: widget.Base{Key: 1, OnClick: widget.Do(func() {})}})
	if l.At(0).Common().OnClick == a {
		t.Error("a different widget type must get its own proxy")
	}
	if s.size() != 1 {
		t.Errorf("size() = %d, want 1", s.size())
	}
}

func TestStabilizersAreIndependent(t *testing.T) {
	w := widget.ButtonOf(1, "", widget.Do(func() {}))
	a := stabilized(newStabilizer(), w)
	b := stabilized(newStabilizer(), w)
	if a.Equal(b) {
		t.Error("two presenters must not produce the same proxies")
	}
}
