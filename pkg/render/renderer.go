// Package render implements presenter.View for hosts with native views.
//
// A Renderer remembers the last list it received, diffs every new list
// against it, and applies the result through a binding registry on the
// host's UI thread:
//
//	r := render.New(host.Looper(), nil)
//	r.AutoBindAll(host.Root())
//	render.BindFunc(r, "title", func(t widget.Toolbar) { host.SetTitle(t.Title) })
//	p.AttachView(r)
package render

import (
	"io"
	"log"
	"sync"

	"github.com/go-drift/conduit/pkg/adapters"
	"github.com/go-drift/conduit/pkg/binding"
	"github.com/go-drift/conduit/pkg/errors"
	"github.com/go-drift/conduit/pkg/native"
	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/reconcile"
	"github.com/go-drift/conduit/pkg/resources"
	"github.com/go-drift/conduit/pkg/widget"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger tracing widget events. The default discards
// everything.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRegistry replaces the default registry, which uses
// adapters.DefaultFactories.
func WithRegistry(reg *binding.Registry) Option {
	return func(r *Renderer) {
		r.registry = reg
	}
}

// WithKeyFunc sets how AutoBind derives a key from a view. The default
// uses the view name for native.Named views with a name, the view id
// otherwise.
func WithKeyFunc(fn func(native.View) any) Option {
	return func(r *Renderer) {
		r.keyOf = fn
	}
}

// OnWidgetAdded sets a function called on the UI thread before a new
// widget is bound.
func OnWidgetAdded(fn func(widget.Widget)) Option {
	return func(r *Renderer) {
		r.onAdded = fn
	}
}

// OnWidgetRemoved sets a function called on the UI thread before a
// removed widget is unbound.
func OnWidgetRemoved(fn func(widget.Widget)) Option {
	return func(r *Renderer) {
		r.onRemoved = fn
	}
}

// Renderer is a presenter.View applying widget lists to native views.
type Renderer struct {
	looper    native.Looper
	ctx       presenter.BuildContext
	registry  *binding.Registry
	logger    *log.Logger
	keyOf     func(native.View) any
	onAdded   func(widget.Widget)
	onRemoved func(widget.Widget)

	mu    sync.Mutex
	last  widget.List
	views map[any]int64
}

var (
	_ presenter.View     = (*Renderer)(nil)
	_ presenter.Detacher = (*Renderer)(nil)
)

// New returns a renderer applying changes through looper. A nil ctx gives
// a resources.Context without strings whose ViewByID resolves the keys
// bound with AutoBind.
func New(looper native.Looper, ctx presenter.BuildContext, opts ...Option) *Renderer {
	r := &Renderer{
		looper: looper,
		ctx:    ctx,
		logger: log.New(io.Discard, "", 0),
		keyOf:  DefaultKey,
		views:  make(map[any]int64),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = binding.NewRegistry(adapters.DefaultFactories()...)
	}
	if r.ctx == nil {
		r.ctx = resources.NewContext(nil, resources.WithViews(r.ViewID))
	}
	return r
}

// DefaultKey returns the name of a named view, or its id.
func DefaultKey(v native.View) any {
	if n, ok := v.(native.Named); ok && n.ViewName() != "" {
		return n.ViewName()
	}
	return v.ViewID()
}

// Registry returns the binding registry.
func (r *Renderer) Registry() *binding.Registry { return r.registry }

// Bind registers b for key.
func (r *Renderer) Bind(key any, b binding.Binding) {
	r.registry.Register(key, b)
}

// BindFunc registers fn to be called with every change of the widget with
// the given key. A widget of another type fails the render.
func BindFunc[W widget.Widget](r *Renderer, key any, fn func(W)) {
	r.registry.Register(key, binding.OnChange(fn))
}

// AddFactory adds a factory used by later AutoBind calls.
func (r *Renderer) AddFactory(f binding.Factory) {
	r.registry.AddFactory(f)
}

// AutoBind installs the bindings every factory offers for v and returns
// the key they were registered under.
func (r *Renderer) AutoBind(v native.View) any {
	key := r.keyOf(v)
	n := r.registry.AutoBind(v, key)
	r.mu.Lock()
	r.views[key] = v.ViewID()
	r.mu.Unlock()
	r.logger.Printf("render: bound %s view %v with %d bindings", v.ViewType(), key, n)
	return key
}

// AutoBindAll auto-binds root and every view below it that has a positive
// id, and returns how many views were bound.
func (r *Renderer) AutoBindAll(root native.View) int {
	n := 0
	native.Walk(root, func(v native.View) {
		if v.ViewID() > 0 {
			r.AutoBind(v)
			n++
		}
	})
	return n
}

// ViewID returns the id of the view auto-bound under key.
func (r *Renderer) ViewID(key any) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.views[key]
	return id, ok
}

// BuildContext returns the context given to New.
func (r *Renderer) BuildContext() presenter.BuildContext { return r.ctx }

// Render diffs widgets against the previous list and posts the resulting
// binding notifications to the UI thread. Key and binding errors are
// reported to the errors handler and then panic: on the calling goroutine
// for a diff, on the UI thread for a binding.
func (r *Renderer) Render(widgets widget.List) {
	r.mu.Lock()
	if r.last.Equal(widgets) {
		r.mu.Unlock()
		r.logger.Printf("render: widgets unchanged, skipping")
		return
	}
	res, err := reconcile.Diff(r.last, widgets)
	if err != nil {
		r.mu.Unlock()
		errors.ReportErr("render.Renderer.Render", err)
		panic(err)
	}
	r.last = widgets
	r.mu.Unlock()

	if res.Empty() {
		return
	}
	if !r.looper.Post(func() { r.apply(res) }) {
		errors.Report(&errors.ConduitError{
			Op:   "render.Renderer.Render",
			Kind: errors.KindRender,
			Err:  errLooperClosed,
		})
	}
}

// Detached forgets the last list, so the next render delivers every widget
// as added.
func (r *Renderer) Detached() {
	r.mu.Lock()
	r.last = widget.List{}
	r.mu.Unlock()
}

func (r *Renderer) apply(res reconcile.Result) {
	err := res.Apply(reconcile.DispatcherFunc(func(ev reconcile.Event, w widget.Widget) error {
		r.logger.Printf("render: %s %s", ev, widget.String(w))
		switch ev {
		case reconcile.Added:
			if r.onAdded != nil {
				r.onAdded(w)
			}
		case reconcile.Removed:
			if r.onRemoved != nil {
				r.onRemoved(w)
			}
		}
		return r.registry.Dispatch(ev, w)
	}))
	if err != nil {
		errors.ReportErr("render.Renderer.apply", err)
		panic(err)
	}
}

var errLooperClosed = errors.New("looper rejected the render")
