package tui

import (
	"io"
	"testing"

	"github.com/go-drift/conduit/pkg/errors"
	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/widget"
)

func TestGuardStopsOnFirstFailure(t *testing.T) {
	stops := 0
	g := NewGuard(presenter.ImmediateExecutor, func() { stops++ })

	ran := false
	g.Execute(func() { ran = true })
	if !ran {
		t.Fatal("task did not run")
	}
	g.Raise()

	first := &errors.DuplicateKeyError{Key: "a", First: 0, Second: 1}
	g.Execute(func() { panic(first) })
	g.Execute(func() { panic("second") })
	if stops != 1 {
		t.Errorf("stops = %d, want 1", stops)
	}
	if got := g.Concurrency(); got != 1 {
		t.Errorf("Concurrency() = %d, want 1", got)
	}

	defer func() {
		if r := recover(); r != first {
			t.Errorf("Raise() panicked with %v, want the first failure", r)
		}
	}()
	g.Raise()
}

type brokenKeys struct {
	presenter.Base
}

func (p *brokenKeys) Build(ctx presenter.BuildContext, ui *widget.Builder) {
	ui.Add(widget.TextOf("a", "x"), widget.TextOf("a", "y"))
}

func TestGuardCatchesBuildErrors(t *testing.T) {
	prev := errors.SetHandler(&errors.LogHandler{Out: io.Discard})
	defer errors.SetHandler(prev)

	stopped := false
	p := &brokenKeys{}
	presenter.MustInit(p, presenter.WithExecutor(NewGuard(presenter.ImmediateExecutor, func() { stopped = true })))
	defer p.Close()

	v := &recordingPresenterView{}
	p.AttachView(v)
	if !stopped {
		t.Error("a build with duplicate keys should stop the program")
	}
	if v.renders != 0 {
		t.Errorf("renders = %d, want 0", v.renders)
	}
}

type recordingPresenterView struct{ renders int }

func (v *recordingPresenterView) Render(widget.List)                   { v.renders++ }
func (v *recordingPresenterView) BuildContext() presenter.BuildContext { return nil }
