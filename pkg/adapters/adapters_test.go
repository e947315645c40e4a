package adapters

import (
	"testing"

	"github.com/go-drift/conduit/pkg/binding"
	"github.com/go-drift/conduit/pkg/native/nativetest"
	"github.com/go-drift/conduit/pkg/reconcile"
	"github.com/go-drift/conduit/pkg/widget"
)

func bound(t *testing.T, v *nativetest.View) *binding.Registry {
	t.Helper()
	r := binding.NewRegistry(DefaultFactories()...)
	if n := r.AutoBind(v, "k"); n != 6 {
		t.Fatalf("AutoBind() = %d bindings, want 6", n)
	}
	return r
}

func apply(t *testing.T, r *binding.Registry, old, next widget.List) {
	t.Helper()
	res, err := reconcile.Diff(old, next)
	if err != nil {
		t.Fatal(err)
	}
	if err := res.Apply(r); err != nil {
		t.Fatal(err)
	}
}

func TestViewBindingAppliesAndRestores(t *testing.T) {
	v := nativetest.New(1, "button")
	r := bound(t, v)

	clicks := 0
	w := widget.ButtonOf("k", "Go", widget.Do(func() { clicks++ }))
	w.Disabled = true
	first := widget.ListOf(w)
	apply(t, r, widget.List{}, first)

	if v.Enabled() {
		t.Error("view should be disabled")
	}
	if v.Text() != "Go" {
		t.Errorf("Text() = %q, want %q", v.Text(), "Go")
	}
	if v.Click() {
		t.Error("disabled view should ignore clicks")
	}

	w.Disabled = false
	w.Hidden = true
	second := widget.ListOf(w)
	apply(t, r, first, second)
	if !v.Enabled() || v.Visible() {
		t.Errorf("Enabled() = %v, Visible() = %v, want true, false", v.Enabled(), v.Visible())
	}
	if !v.Click() || clicks != 1 {
		t.Errorf("click not delivered, clicks = %d", clicks)
	}

	apply(t, r, second, widget.List{})
	if !v.Enabled() || !v.Visible() {
		t.Error("removal should restore the initial enabled and visible state")
	}
	if v.Clickable() {
		t.Error("removal should drop the click listener")
	}
	if v.Text() != "" {
		t.Errorf("removal should restore the text, got %q", v.Text())
	}
}

func TestInputBindingIsTwoWay(t *testing.T) {
	v := nativetest.New(1, "input")
	r := bound(t, v)

	var edits []string
	onChange := widget.On(func(s string) { edits = append(edits, s) })
	in := widget.InputOf("k", "hello", onChange)
	in.Hint = "name"
	first := widget.ListOf(in)
	apply(t, r, widget.List{}, first)

	if v.Text() != "hello" || v.Hint() != "name" {
		t.Errorf("view = %q/%q", v.Text(), v.Hint())
	}
	if len(edits) != 0 {
		t.Errorf("writes by the binding must not reach the handler: %v", edits)
	}

	v.TypeText("hello!")
	if len(edits) != 1 || edits[0] != "hello!" {
		t.Fatalf("edits = %v", edits)
	}

	sets := v.Sets
	in.Text = "hello!"
	second := widget.ListOf(in)
	apply(t, r, first, second)
	if v.Sets != sets {
		t.Error("echoing the view's own text should not write to it")
	}

	apply(t, r, second, widget.List{})
	if v.Text() != "" || v.Hint() != "" {
		t.Errorf("removal should restore text and hint, got %q/%q", v.Text(), v.Hint())
	}
	v.TypeText("ignored")
	if len(edits) != 1 {
		t.Error("removal should detach the text watcher")
	}
}

func TestCheckableBinding(t *testing.T) {
	v := nativetest.New(1, "switch")
	r := bound(t, v)

	var got []bool
	sw := widget.SwitchOf("k", true, widget.On(func(b bool) { got = append(got, b) }))
	first := widget.ListOf(sw)
	apply(t, r, widget.List{}, first)
	if !v.Checked() {
		t.Error("view should be checked")
	}
	if len(got) != 0 {
		t.Errorf("binding writes must not reach the handler: %v", got)
	}

	v.Check(false)
	if len(got) != 1 || got[0] {
		t.Errorf("handler calls = %v", got)
	}

	cb := widget.CheckBoxOf("k", "Agree", true, nil)
	second := widget.ListOf(cb)
	apply(t, r, first, second)
	if !v.Checked() || v.Text() != "Agree" {
		t.Errorf("view = %v/%q", v.Checked(), v.Text())
	}

	apply(t, r, second, widget.List{})
	if v.Checked() {
		t.Error("removal should restore the unchecked state")
	}
}

func TestProgressBinding(t *testing.T) {
	v := nativetest.New(1, "seek")
	r := bound(t, v)

	var seeks []int
	first := widget.ListOf(widget.SeekBarOf("k", 0.25, widget.On(func(p int) { seeks = append(seeks, p) })))
	apply(t, r, widget.List{}, first)
	if v.Progress() != 0.25 {
		t.Errorf("Progress() = %v, want 0.25", v.Progress())
	}
	v.Seek(80)
	if len(seeks) != 1 || seeks[0] != 80 {
		t.Errorf("seeks = %v", seeks)
	}

	bar := widget.ProgressBarOf("k", 0.5)
	bar.Indeterminate = true
	second := widget.ListOf(bar)
	apply(t, r, first, second)
	if v.Progress() != 0 {
		t.Errorf("indeterminate bar should show no progress, got %v", v.Progress())
	}

	apply(t, r, second, widget.List{})
	v.Seek(10)
	if len(seeks) != 1 {
		t.Error("removal should detach the seek listener")
	}
}

func TestImageBinding(t *testing.T) {
	v := nativetest.New(1, "image")
	v.SetDrawable("placeholder.png")
	r := bound(t, v)

	first := widget.ListOf(widget.Image{Base: widget.Base{Key: "k"}, Drawable: "logo.png"})
	apply(t, r, widget.List{}, first)
	if v.Drawable() != "logo.png" {
		t.Errorf("Drawable() = %q", v.Drawable())
	}
	apply(t, r, first, widget.List{})
	if v.Drawable() != "placeholder.png" {
		t.Errorf("removal should restore the drawable, got %q", v.Drawable())
	}
}

func TestUnrelatedWidgetsLeaveViewAlone(t *testing.T) {
	v := nativetest.New(1, "label")
	v.SetText("initial")
	r := bound(t, v)

	apply(t, r, widget.List{}, widget.ListOf(widget.PlainOf("k")))
	if v.Text() != "initial" {
		t.Errorf("a plain widget should not touch the text, got %q", v.Text())
	}
}

type labelOnly struct{ text string }

func (l *labelOnly) ViewID() int64       { return 9 }
func (l *labelOnly) ViewType() string    { return "label" }
func (l *labelOnly) Text() string        { return l.text }
func (l *labelOnly) SetText(text string) { l.text = text }

func TestFactoriesFollowCapabilities(t *testing.T) {
	r := binding.NewRegistry(DefaultFactories()...)
	if n := r.AutoBind(&labelOnly{}, "label"); n != 2 {
		t.Errorf("AutoBind() = %d, want view and text bindings only", n)
	}
}
