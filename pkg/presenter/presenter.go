// Package presenter turns application state into widget lists and delivers
// them to a view.
//
// A presenter embeds Base and implements Build. State is mutated with
// SetState; every mutation schedules a rebuild on the presenter's executor,
// which runs at most one rebuild at a time. Mutations that arrive while a
// rebuild is pending or running are coalesced into the next one, and a
// list equal to the last rendered one is not delivered again.
//
//	type counter struct {
//	    presenter.Base
//	    count int
//	}
//
//	func (c *counter) Build(ctx presenter.BuildContext, ui *widget.Builder) {
//	    ui.Add(
//	        widget.TextOf("label", fmt.Sprintf("Clicked %d times", c.count)),
//	        widget.ButtonOf("increment", "+1", widget.Do(func() {
//	            c.SetState(func() { c.count++ })
//	        })),
//	    )
//	}
//
// Build runs while the presenter lock is held, so it always sees a
// complete state. For the same reason Build must not call SetState.
//
// A Build that panics, or whose widgets lack unique comparable keys, is
// reported to package errors as a BuildError, which then panics on the
// executor. With ImmediateExecutor that is the goroutine calling SetState.
package presenter

import (
	"io"
	"log"
	"reflect"
	"strconv"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/go-drift/conduit/pkg/errors"
	"github.com/go-drift/conduit/pkg/reconcile"
	"github.com/go-drift/conduit/pkg/widget"
)

// BuildContext gives Build access to host resources.
type BuildContext interface {
	// String returns the localized string for id, formatted with args.
	String(id any, args ...any) string

	// Locales returns the user's preferred locales, most preferred first.
	Locales() []language.Tag

	// ViewByID returns the native view id that key is bound to.
	ViewByID(key any) (int64, bool)
}

// View receives the widget lists of a presenter.
type View interface {
	// Render is called from the presenter's executor, never from the UI
	// thread. Implementations must marshal view changes onto the UI
	// thread themselves.
	Render(widgets widget.List)

	// BuildContext returns the context passed to Build.
	BuildContext() BuildContext
}

// Detacher is implemented by views that want to know when they are
// detached from their presenter.
type Detacher interface {
	Detached()
}

// Presenter builds widget lists from its state. Implementations embed Base
// and are initialized with Init.
type Presenter interface {
	Build(ctx BuildContext, ui *widget.Builder)

	base() *Base
}

// RenderState is the state of a presenter's render pipeline.
type RenderState int

const (
	// Idle means no rebuild is scheduled.
	Idle RenderState = iota
	// Dirty means a rebuild is scheduled but has not started.
	Dirty
	// Rendering means a rebuild is running.
	Rendering
)

func (s RenderState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dirty:
		return "dirty"
	case Rendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// Option configures a presenter in Init.
type Option func(*Base)

// WithExecutor sets the executor running rebuilds. The default is a new
// SerialExecutor owned by the presenter and stopped by Close.
func WithExecutor(e Executor) Option {
	return func(b *Base) {
		b.exec = e
		b.ownsExec = false
	}
}

// WithLogger sets the logger for render tracing. The default discards
// everything.
func WithLogger(l *log.Logger) Option {
	return func(b *Base) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithName sets the name used in logs and errors. The default is the
// presenter's type name.
func WithName(name string) Option {
	return func(b *Base) {
		b.name = name
	}
}

// Base implements the render pipeline of a presenter. Embed it and call
// Init before using any of its methods.
type Base struct {
	self     Presenter
	name     string
	exec     Executor
	ownsExec bool
	logger   *log.Logger
	stab     *stabilizer

	// renderMu is held while a list is delivered to a view, so a detach
	// never overlaps a delivery. It is acquired before mu.
	renderMu sync.Mutex

	mu          sync.Mutex
	view        View
	dirty       bool
	state       RenderState
	last        widget.List
	hasRendered bool
	generation  uint64
	closed      bool
}

func (b *Base) base() *Base { return b }

// Init prepares the embedded Base of p. It fails with a ConfigurationError
// if the executor may run more than one task at a time, or if p was
// already initialized.
func Init(p Presenter, opts ...Option) error {
	b := p.base()
	if b.self != nil {
		return &errors.ConfigurationError{Setting: "presenter", Reason: "Init called twice"}
	}

	b.name = reflect.TypeOf(p).String()
	b.logger = log.New(io.Discard, "", 0)
	for _, opt := range opts {
		opt(b)
	}

	if b.exec == nil {
		b.exec = NewSerialExecutor()
		b.ownsExec = true
	}
	if n := b.exec.Concurrency(); n > 1 {
		b.exec = nil
		return &errors.ConfigurationError{
			Setting: "executor",
			Reason:  "rebuilds need an executor with a concurrency of 1, got " + strconv.Itoa(n),
		}
	}

	b.stab = newStabilizer()
	b.self = p
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(p Presenter, opts ...Option) {
	if err := Init(p, opts...); err != nil {
		panic(err)
	}
}

func (b *Base) checkInit() {
	if b.self == nil {
		panic("presenter: Init was not called")
	}
}

// Name returns the presenter name used in logs and errors.
func (b *Base) Name() string { return b.name }

// SetState runs fn under the presenter lock and schedules a rebuild. fn
// must not call SetState itself.
func (b *Base) SetState(fn func()) {
	b.checkInit()
	if fn != nil {
		b.mu.Lock()
		fn()
		b.mu.Unlock()
	}
	b.DispatchRender()
}

// DispatchRender schedules a rebuild. It does nothing without an attached
// view, and only marks the presenter dirty if a rebuild is already
// scheduled or running.
func (b *Base) DispatchRender() {
	b.checkInit()
	b.mu.Lock()
	if b.view == nil || b.closed {
		b.mu.Unlock()
		b.logger.Printf("%s: no view attached, skipping render", b.name)
		return
	}
	b.dirty = true
	if b.state != Idle {
		b.mu.Unlock()
		return
	}
	b.state = Dirty
	gen := b.generation
	b.mu.Unlock()

	b.exec.Execute(func() { b.rebuild(gen) })
}

// AttachView attaches v and renders the current state to it. A view that
// is already attached is detached first.
func (b *Base) AttachView(v View) {
	b.checkInit()
	b.mu.Lock()
	attached := b.view
	b.mu.Unlock()
	if attached != nil {
		b.DetachView()
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.view = v
	b.mu.Unlock()
	b.logger.Printf("%s: view attached", b.name)
	b.DispatchRender()
}

// DetachView detaches the current view. Scheduled rebuilds are dropped and
// the last rendered list is forgotten, so the next attached view receives
// every widget as new. DetachView waits for a delivery in progress and
// must not be called from View.Render.
func (b *Base) DetachView() {
	b.checkInit()
	b.renderMu.Lock()
	b.mu.Lock()
	v := b.view
	b.view = nil
	b.dirty = false
	b.state = Idle
	b.last = widget.List{}
	b.hasRendered = false
	b.generation++
	b.mu.Unlock()
	b.renderMu.Unlock()

	if v == nil {
		return
	}
	b.logger.Printf("%s: view detached", b.name)
	if d, ok := v.(Detacher); ok {
		d.Detached()
	}
}

// View returns the attached view, or nil.
func (b *Base) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view
}

// RenderState returns the current pipeline state.
func (b *Base) RenderState() RenderState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// LastRendered returns the list most recently delivered to the attached
// view. The second result is false if nothing was delivered since the view
// was attached.
func (b *Base) LastRendered() (widget.List, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last, b.hasRendered
}

// Close detaches the view and stops the executor if the presenter created
// it. A closed presenter never renders again.
func (b *Base) Close() {
	b.checkInit()
	b.DetachView()
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	if b.ownsExec {
		if e, ok := b.exec.(*SerialExecutor); ok {
			e.Close()
		}
	}
}

// rebuild is the body of a rebuild task. It loops until the presenter is no
// longer dirty. gen is the attach generation the task was scheduled for; a
// task outliving a detach exits without touching the pipeline state.
//
// A failed cycle returns the pipeline to Idle and the panic continues on
// the executor.
func (b *Base) rebuild(gen uint64) {
	defer func() {
		if r := recover(); r != nil {
			b.abort(gen)
			panic(r)
		}
	}()
	for {
		view, list, next := b.step(gen)
		switch next {
		case stepDone:
			return
		case stepSkip:
			continue
		}
		b.deliver(gen, view, list)
	}
}

type stepResult int

const (
	stepDone stepResult = iota
	stepSkip
	stepRender
)

// step runs one build under mu and reports what rebuild does next.
func (b *Base) step(gen uint64) (View, widget.List, stepResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.generation != gen {
		return nil, widget.List{}, stepDone
	}
	if !b.dirty || b.view == nil {
		b.dirty = false
		b.state = Idle
		return nil, widget.List{}, stepDone
	}
	b.dirty = false
	b.state = Rendering
	view := b.view

	list := b.build(view.BuildContext())
	if err := reconcile.Validate(list); err != nil {
		buildErr := &errors.BuildError{Presenter: b.name, Err: err, Timestamp: time.Now()}
		errors.ReportBuildError(buildErr)
		panic(buildErr)
	}
	if b.hasRendered && b.last.Equal(list) {
		b.logger.Printf("%s: widgets unchanged, skipping render", b.name)
		return nil, widget.List{}, stepSkip
	}
	return view, list, stepRender
}

// build runs Build, stabilizes callbacks and locks the result. It must be
// called with mu held. A panic in Build is reported as a BuildError, which
// is then raised again.
func (b *Base) build(ctx BuildContext) widget.List {
	defer func() {
		if r := recover(); r != nil {
			buildErr := &errors.BuildError{
				Presenter:  b.name,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportBuildError(buildErr)
			panic(buildErr)
		}
	}()

	ui := widget.NewBuilder()
	b.self.Build(ctx, ui)
	b.stab.stabilize(ui)
	return ui.Lock()
}

// abort returns the pipeline of gen to Idle after a failed cycle.
func (b *Base) abort(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.generation == gen {
		b.dirty = false
		b.state = Idle
	}
}

func (b *Base) deliver(gen uint64, view View, list widget.List) {
	b.renderMu.Lock()
	defer b.renderMu.Unlock()

	b.mu.Lock()
	current := b.generation == gen
	if current {
		b.last = list
		b.hasRendered = true
	}
	b.mu.Unlock()
	if !current {
		b.logger.Printf("%s: view detached during build, dropping render", b.name)
		return
	}

	b.logger.Printf("%s: rendering %d widgets", b.name, list.Len())
	view.Render(list)
}
