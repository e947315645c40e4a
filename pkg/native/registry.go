package native

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrViewTypeNotFound is returned when no factory is registered for a view
// type.
var ErrViewTypeNotFound = errors.New("native: view type not found")

// Factory creates native views of one type.
type Factory interface {
	// ViewType returns the view type this factory creates.
	ViewType() string

	// Create creates a new view with the given id.
	Create(viewID int64, params map[string]any) (View, error)
}

// Disposer is implemented by views that release resources when disposed.
type Disposer interface {
	Dispose()
}

// Registry creates native views through registered factories and keeps
// them addressable by id.
type Registry struct {
	factories map[string]Factory
	views     map[int64]View
	names     map[string]int64
	nextID    atomic.Int64
	mu        sync.RWMutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		views:     make(map[int64]View),
		names:     make(map[string]int64),
	}
}

// RegisterFactory registers a factory for its view type.
func (r *Registry) RegisterFactory(factory Factory) {
	r.mu.Lock()
	r.factories[factory.ViewType()] = factory
	r.mu.Unlock()
}

// Create creates a view of the given type. A non-empty name makes the view
// reachable through ID.
func (r *Registry) Create(viewType, name string, params map[string]any) (View, error) {
	r.mu.RLock()
	factory, ok := r.factories[viewType]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrViewTypeNotFound
	}

	viewID := r.nextID.Add(1)
	view, err := factory.Create(viewID, params)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.views[viewID] = view
	if name != "" {
		r.names[name] = viewID
	}
	r.mu.Unlock()
	return view, nil
}

// View returns the view with the given id, or nil.
func (r *Registry) View(viewID int64) View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.views[viewID]
}

// ID returns the id of the view created under name.
func (r *Registry) ID(name string) (int64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.names[name]
	return id, ok
}

// Names returns a copy of the name to id mapping.
func (r *Registry) Names() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int64, len(r.names))
	for k, v := range r.names {
		out[k] = v
	}
	return out
}

// Dispose removes a view and releases it.
func (r *Registry) Dispose(viewID int64) {
	r.mu.Lock()
	view, ok := r.views[viewID]
	if ok {
		delete(r.views, viewID)
		for name, id := range r.names {
			if id == viewID {
				delete(r.names, name)
			}
		}
	}
	r.mu.Unlock()

	if d, isDisposer := view.(Disposer); ok && isDisposer {
		d.Dispose()
	}
}
