package binding

import (
	"fmt"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/go-drift/conduit/pkg/errors"
	"github.com/go-drift/conduit/pkg/native"
	"github.com/go-drift/conduit/pkg/reconcile"
	"github.com/go-drift/conduit/pkg/widget"
)

// minSimilarity is the lowest similarity (1 - distance/length) at which a
// registered key is offered as a suggestion for an unbound one.
const minSimilarity = 0.5

// Factory creates the bindings for a native view. A factory inspects the
// view and calls emit for every binding it wants to install; emitting
// nothing is fine.
type Factory interface {
	CreateBinding(view native.View, emit func(Binding))
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(view native.View, emit func(Binding))

// CreateBinding calls f(view, emit).
func (f FactoryFunc) CreateBinding(view native.View, emit func(Binding)) {
	f(view, emit)
}

// Bindings is the ordered list of bindings for one key.
type Bindings struct {
	key  any
	mu   *sync.RWMutex
	list []Binding
}

// Key returns the key these bindings belong to.
func (b *Bindings) Key() any { return b.key }

// Add appends binding. Notifications reach bindings in the order they were
// added.
func (b *Bindings) Add(binding Binding) {
	if binding == nil {
		return
	}
	b.mu.Lock()
	b.list = append(b.list, binding)
	b.mu.Unlock()
}

// Len returns the number of bindings.
func (b *Bindings) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.list)
}

// All returns a copy of the bindings in registration order.
func (b *Bindings) All() []Binding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Binding(nil), b.list...)
}

// Registry maps widget keys to bindings. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	bindings  map[any]*Bindings
	keys      []any
	factories []Factory
}

// NewRegistry returns a registry with the given factories.
func NewRegistry(factories ...Factory) *Registry {
	return &Registry{
		bindings:  make(map[any]*Bindings),
		factories: append([]Factory(nil), factories...),
	}
}

// BindingsFor returns the bindings for key, creating an empty list on first
// access. It never returns nil. It panics if key is nil or not comparable.
func (r *Registry) BindingsFor(key any) *Bindings {
	if key == nil {
		panic("binding: nil key")
	}
	if reason := widget.CheckKey(key); reason != "" {
		panic("binding: " + reason)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if bs, ok := r.bindings[key]; ok {
		return bs
	}
	bs := &Bindings{key: key, mu: &r.mu}
	r.bindings[key] = bs
	r.keys = append(r.keys, key)
	return bs
}

// Register appends b to the bindings of key.
func (r *Registry) Register(key any, b Binding) {
	r.BindingsFor(key).Add(b)
}

// Unbind removes every binding of key. The views keep whatever state the
// bindings left on them.
func (r *Registry) Unbind(key any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bindings[key]; !ok {
		return
	}
	delete(r.bindings, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// AddFactory appends f to the factories used by AutoBind.
func (r *Registry) AddFactory(f Factory) {
	r.mu.Lock()
	r.factories = append(r.factories, f)
	r.mu.Unlock()
}

// AutoBind asks every factory, in order, for bindings of view and registers
// all of them under key. It returns the number of bindings registered.
func (r *Registry) AutoBind(view native.View, key any) int {
	r.mu.RLock()
	factories := append([]Factory(nil), r.factories...)
	r.mu.RUnlock()

	bs := r.BindingsFor(key)
	n := 0
	for _, f := range factories {
		f.CreateBinding(view, func(b Binding) {
			if b != nil {
				bs.Add(b)
				n++
			}
		})
	}
	return n
}

// Keys returns the keys that have at least one binding, in the order they
// were first used.
func (r *Registry) Keys() []any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var keys []any
	for _, k := range r.keys {
		if len(r.bindings[k].list) > 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// Dispatch delivers event for w to every binding of w's key, in
// registration order. It stops at the first binding error. A key without
// bindings yields an UnboundWidgetError.
func (r *Registry) Dispatch(event reconcile.Event, w widget.Widget) error {
	key := widget.KeyOf(w)

	r.mu.RLock()
	var list []Binding
	if bs, ok := r.bindings[key]; ok {
		list = append(list, bs.list...)
	}
	r.mu.RUnlock()

	if len(list) == 0 {
		return &errors.UnboundWidgetError{
			Widget:     widget.String(w),
			Key:        key,
			Suggestion: r.suggest(key),
		}
	}

	for _, b := range list {
		var err error
		switch event {
		case reconcile.Added:
			err = b.OnAdded(w)
		case reconcile.Changed:
			err = b.OnChanged(w)
		case reconcile.Removed:
			err = b.OnRemoved(w)
		default:
			err = fmt.Errorf("binding: unknown event %v", event)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// suggest returns the bound key whose string form is closest to key, or nil
// if none is close enough to be a likely typo.
func (r *Registry) suggest(key any) any {
	name := fmt.Sprint(key)
	var (
		best      any
		bestScore float64
	)
	for _, k := range r.Keys() {
		candidate := fmt.Sprint(k)
		longest := max(len(name), len(candidate))
		if longest == 0 || candidate == name {
			continue
		}
		score := 1 - float64(levenshtein.ComputeDistance(name, candidate))/float64(longest)
		if score >= minSimilarity && score > bestScore {
			best, bestScore = k, score
		}
	}
	return best
}
