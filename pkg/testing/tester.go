package testing

import (
	"sync"
	"testing"

	"github.com/go-drift/conduit/pkg/errors"
	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/reconcile"
	"github.com/go-drift/conduit/pkg/widget"
)

// PresenterTester attaches a presenter to a recording view and gives
// access to the lists it renders.
type PresenterTester struct {
	t    testing.TB
	p    presenter.Presenter
	base attachable
	view *recordingView
}

// attachable is the part of presenter.Base the tester drives.
type attachable interface {
	Name() string
	AttachView(presenter.View)
	DetachView()
	View() presenter.View
	Close()
}

type recordingView struct {
	mu      sync.Mutex
	ctx     presenter.BuildContext
	renders []widget.List
}

// Render rejects lists a renderer could not diff, the same way a renderer
// does.
func (v *recordingView) Render(widgets widget.List) {
	if err := reconcile.Validate(widgets); err != nil {
		errors.ReportErr("conduittest.Render", err)
		panic(err)
	}
	v.mu.Lock()
	v.renders = append(v.renders, widgets)
	v.mu.Unlock()
}

func (v *recordingView) BuildContext() presenter.BuildContext { return v.ctx }

// failHandler turns every reported error into a test failure.
type failHandler struct {
	t testing.TB
}

func (h failHandler) HandleError(err *errors.ConduitError) {
	h.t.Errorf("conduittest: %v", err)
}

func (h failHandler) HandleBuildError(err *errors.BuildError) {
	h.t.Errorf("conduittest: %v", err)
}

// Option configures Attach.
type Option func(*config)

type config struct {
	ctx  presenter.BuildContext
	opts []presenter.Option
}

// WithContext replaces the MockContext passed to Build.
func WithContext(ctx presenter.BuildContext) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithPresenterOptions adds options for presenter.Init.
func WithPresenterOptions(opts ...presenter.Option) Option {
	return func(c *config) {
		c.opts = append(c.opts, opts...)
	}
}

// Attach initializes p with an immediate executor and attaches it to a
// recording view. p must not be initialized yet. The presenter is closed
// when the test ends.
//
// Until then every error reported to package errors fails the test, and
// the panic that follows it reaches the caller of the operation that
// triggered the render.
func Attach(t testing.TB, p presenter.Presenter, opts ...Option) *PresenterTester {
	t.Helper()
	cfg := &config{ctx: MockContext{}}
	for _, opt := range opts {
		opt(cfg)
	}

	initOpts := append([]presenter.Option{presenter.WithExecutor(presenter.ImmediateExecutor)}, cfg.opts...)
	if err := presenter.Init(p, initOpts...); err != nil {
		t.Fatalf("conduittest: %v", err)
	}

	base, ok := p.(attachable)
	if !ok {
		t.Fatalf("conduittest: %T does not embed presenter.Base", p)
	}
	t.Cleanup(base.Close)
	prev := errors.SetHandler(failHandler{t: t})
	t.Cleanup(func() { errors.SetHandler(prev) })

	tester := &PresenterTester{
		t:    t,
		p:    p,
		base: base,
		view: &recordingView{ctx: cfg.ctx},
	}
	base.AttachView(tester.view)
	return tester
}

// Presenter returns the presenter under test.
func (pt *PresenterTester) Presenter() presenter.Presenter { return pt.p }

// Context returns the build context of the recording view.
func (pt *PresenterTester) Context() presenter.BuildContext { return pt.view.ctx }

// Renders returns every list rendered since Attach, oldest first.
func (pt *PresenterTester) Renders() []widget.List {
	pt.view.mu.Lock()
	defer pt.view.mu.Unlock()
	return append([]widget.List(nil), pt.view.renders...)
}

// RenderCount returns the number of renders since Attach.
func (pt *PresenterTester) RenderCount() int {
	pt.view.mu.Lock()
	defer pt.view.mu.Unlock()
	return len(pt.view.renders)
}

// Last returns the most recently rendered list. It fails the test if
// nothing was rendered.
func (pt *PresenterTester) Last() widget.List {
	pt.t.Helper()
	pt.view.mu.Lock()
	defer pt.view.mu.Unlock()
	if len(pt.view.renders) == 0 {
		pt.t.Fatalf("conduittest: nothing was rendered")
	}
	return pt.view.renders[len(pt.view.renders)-1]
}

// Widget returns the widget with key from the last render. Don't keep the
// result: the next render replaces it.
func (pt *PresenterTester) Widget(key any) widget.Widget {
	pt.t.Helper()
	w, ok := pt.Last().Find(key)
	if !ok {
		pt.t.Fatalf("conduittest: widget with key %v not found in %v", key, pt.Last())
	}
	return w
}

// WidgetAs returns the widget with key from the last render as a W.
func WidgetAs[W widget.Widget](pt *PresenterTester, key any) W {
	pt.t.Helper()
	w := pt.Widget(key)
	typed, ok := w.(W)
	if !ok {
		var zero W
		pt.t.Fatalf("conduittest: widget %v is a %s, not a %T", key, widget.TypeName(w), zero)
	}
	return typed
}

// Absent fails the test if the last render contains key.
func (pt *PresenterTester) Absent(key any) {
	pt.t.Helper()
	if w, ok := pt.Last().Find(key); ok {
		pt.t.Fatalf("conduittest: found widget which should be absent: %s", widget.String(w))
	}
}

// Text returns the text of a Text, Button, Input, CheckBox or Toggle
// widget.
func (pt *PresenterTester) Text(key any) string {
	pt.t.Helper()
	w := pt.Widget(key)
	text, ok := textOf(w)
	if !ok {
		pt.t.Fatalf("conduittest: widget %s has no text", widget.String(w))
	}
	return text
}

// Enabled reports whether the widget with key is enabled.
func (pt *PresenterTester) Enabled(key any) bool {
	pt.t.Helper()
	return pt.Widget(key).Common().Enabled()
}

// Visible reports whether the widget with key is visible.
func (pt *PresenterTester) Visible(key any) bool {
	pt.t.Helper()
	return pt.Widget(key).Common().Visible()
}

// I18n returns the string the build context yields for id.
func (pt *PresenterTester) I18n(id any, args ...any) string {
	return pt.view.ctx.String(id, args...)
}

// Detach detaches the recording view.
func (pt *PresenterTester) Detach() {
	pt.base.DetachView()
}

// Reattach attaches the recording view again after Detach.
func (pt *PresenterTester) Reattach() {
	if pt.base.View() == nil {
		pt.base.AttachView(pt.view)
	}
}
