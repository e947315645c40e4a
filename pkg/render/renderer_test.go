package render

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/conduit/pkg/binding"
	"github.com/go-drift/conduit/pkg/errors"
	"github.com/go-drift/conduit/pkg/native"
	"github.com/go-drift/conduit/pkg/native/nativetest"
	"github.com/go-drift/conduit/pkg/widget"
)

type captureHandler struct {
	errs []*errors.ConduitError
}

func (h *captureHandler) HandleError(err *errors.ConduitError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandleBuildError(*errors.BuildError)  {}

func captureErrors(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	prev := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}

func screen() (*nativetest.View, *nativetest.View, *nativetest.View) {
	label := nativetest.Named(2, "label")
	button := nativetest.Named(3, "button")
	root := nativetest.New(0, "root")
	root.Kids = []native.View{label, button}
	return root, label, button
}

func TestRenderAppliesOnLooper(t *testing.T) {
	root, label, button := screen()
	var q native.Queue
	r := New(&q, nil)
	if n := r.AutoBindAll(root); n != 2 {
		t.Fatalf("AutoBindAll() = %d, want 2", n)
	}

	clicks := 0
	r.Render(widget.ListOf(
		widget.TextOf("label", "Clicked 0 times"),
		widget.ButtonOf("button", "+1", widget.Do(func() { clicks++ })),
	))
	if label.Text() != "" {
		t.Error("view changed before the looper ran")
	}
	q.Drain()

	if label.Text() != "Clicked 0 times" || button.Text() != "+1" {
		t.Errorf("views = %q, %q", label.Text(), button.Text())
	}
	button.Click()
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestRenderSkipsEqualList(t *testing.T) {
	var q native.Queue
	r := New(&q, nil)
	r.AutoBind(nativetest.Named(1, "label"))

	l := widget.ListOf(widget.TextOf("label", "x"))
	r.Render(l)
	r.Render(widget.ListOf(widget.TextOf("label", "x")))
	if q.Len() != 1 {
		t.Errorf("posted %d tasks, want 1", q.Len())
	}
	r.Render(widget.List{})
	r.Render(widget.List{})
	if q.Len() != 2 {
		t.Errorf("posted %d tasks, want 2", q.Len())
	}
}

func TestRenderHooksAndOrder(t *testing.T) {
	var events []string
	var logs bytes.Buffer
	r := New(native.Immediate, nil,
		WithLogger(log.New(&logs, "", 0)),
		OnWidgetAdded(func(w widget.Widget) { events = append(events, "hook added "+widget.String(w)) }),
		OnWidgetRemoved(func(w widget.Widget) { events = append(events, "hook removed "+widget.String(w)) }),
	)
	for _, key := range []string{"a", "b", "c"} {
		r.Bind(key, binding.Funcs[widget.Plain]{
			Added:   func(w widget.Plain) { events = append(events, "added "+w.Key.(string)) },
			Changed: func(w widget.Plain) { events = append(events, "changed "+w.Key.(string)) },
			Removed: func(w widget.Plain) { events = append(events, "removed "+w.Key.(string)) },
		})
	}

	r.Render(widget.ListOf(widget.PlainOf("a"), widget.PlainOf("b")))
	events = nil
	changedA := widget.PlainOf("a")
	changedA.Hidden = true
	r.Render(widget.ListOf(changedA, widget.PlainOf("c")))

	want := []string{
		"hook removed Plain(key=b)",
		"removed b",
		"hook added Plain(key=c)",
		"added c",
		"changed c",
		"changed a",
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "render: removed Plain(key=b)") {
		t.Errorf("missing trace in log:\n%s", logs.String())
	}
}

// recoverError runs fn and returns the error it panics with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		var ok bool
		if err, ok = r.(error); !ok {
			t.Fatalf("panic value = %v, want an error", r)
		}
	}()
	fn()
	return nil
}

func TestRenderRaisesKeyErrors(t *testing.T) {
	tests := []struct {
		name    string
		widgets widget.List
		match   func(error) bool
	}{
		{
			name:    "duplicate",
			widgets: widget.ListOf(widget.PlainOf("a"), widget.PlainOf("a")),
			match: func(err error) bool {
				var dup *errors.DuplicateKeyError
				return errors.As(err, &dup) && dup.Key == "a" && dup.Second == 1
			},
		},
		{
			name:    "nil",
			widgets: widget.ListOf(widget.PlainOf("a"), widget.PlainOf(nil)),
			match: func(err error) bool {
				var missing *errors.MissingKeyError
				return errors.As(err, &missing) && missing.Index == 1 && missing.Reason == ""
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := captureErrors(t)
			var added int
			r := New(native.Immediate, nil)
			r.Bind("a", binding.Funcs[widget.Plain]{Added: func(widget.Plain) { added++ }})

			if err := recoverError(t, func() { r.Render(tt.widgets) }); !tt.match(err) {
				t.Errorf("Render() panicked with %v", err)
			}
			if len(h.errs) != 1 || h.errs[0].Kind != errors.KindKey {
				t.Errorf("reported = %v, want one key error", h.errs)
			}
			if added != 0 {
				t.Errorf("bindings ran %d times for a rejected list", added)
			}

			r.Render(widget.ListOf(widget.PlainOf("a")))
			if added != 1 {
				t.Errorf("added = %d, want 1 after a valid render", added)
			}
		})
	}
}

func TestRenderRaisesUnboundWidget(t *testing.T) {
	h := captureErrors(t)
	r := New(native.Immediate, nil)
	r.AutoBind(nativetest.Named(1, "label"))

	err := recoverError(t, func() {
		r.Render(widget.ListOf(widget.TextOf("lable", "typo")))
	})
	var unbound *errors.UnboundWidgetError
	if !errors.As(err, &unbound) {
		t.Fatalf("error = %v, want UnboundWidgetError", err)
	}
	if unbound.Suggestion != "label" {
		t.Errorf("Suggestion = %v, want label", unbound.Suggestion)
	}
	if len(h.errs) != 1 || h.errs[0].Op != "render.Renderer.apply" {
		t.Errorf("reported = %v, want one error from render.Renderer.apply", h.errs)
	}
}

func TestRenderLooperRejects(t *testing.T) {
	h := captureErrors(t)
	closed := native.LooperFunc(func(func()) bool { return false })
	r := New(closed, nil)
	r.Render(widget.ListOf(widget.PlainOf(1)))
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindRender {
		t.Errorf("errors = %v, want one render error", h.errs)
	}
}

func TestDetachedRedeliversEverything(t *testing.T) {
	var events []string
	r := New(native.Immediate, nil)
	r.Bind(1, binding.Funcs[widget.Plain]{
		Added:   func(widget.Plain) { events = append(events, "added") },
		Changed: func(widget.Plain) { events = append(events, "changed") },
	})

	l := widget.ListOf(widget.PlainOf(1))
	r.Render(l)
	r.Detached()
	r.Render(l)
	if diff := cmp.Diff([]string{"added", "changed", "added", "changed"}, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestBindFuncAndContext(t *testing.T) {
	var titles []string
	r := New(native.Immediate, nil)
	BindFunc(r, "title", func(tb widget.Toolbar) { titles = append(titles, tb.Title) })
	key := r.AutoBind(nativetest.New(9, "text"))
	if key != int64(9) {
		t.Errorf("AutoBind() key = %v (%T), want int64 9", key, key)
	}

	r.Render(widget.ListOf(widget.Toolbar{Base: widget.Base{Key: "title"}, Title: "Home"}))
	if diff := cmp.Diff([]string{"Home"}, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}

	ctx := r.BuildContext()
	if id, ok := ctx.ViewByID(int64(9)); !ok || id != 9 {
		t.Errorf("ViewByID() = %d, %v", id, ok)
	}
	if got := ctx.String("greeting"); got != "!greeting!" {
		t.Errorf("String() = %q", got)
	}
}

func TestWithKeyFuncAndFactory(t *testing.T) {
	var seen []native.View
	r := New(native.Immediate, nil,
		WithRegistry(binding.NewRegistry()),
		WithKeyFunc(func(v native.View) any { return v.ViewType() }),
	)
	r.AddFactory(binding.FactoryFunc(func(v native.View, emit func(binding.Binding)) {
		seen = append(seen, v)
		emit(binding.OnChange(func(widget.Plain) {}))
	}))
	if key := r.AutoBind(nativetest.New(1, "switch")); key != "switch" {
		t.Errorf("AutoBind() key = %v", key)
	}
	if len(seen) != 1 || r.Registry().BindingsFor("switch").Len() != 1 {
		t.Error("custom factory not used")
	}
}
