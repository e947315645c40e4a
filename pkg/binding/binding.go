// Package binding connects widgets to the native views that display them.
//
// A Binding receives the lifecycle notifications of every widget rendered
// under one key. A Registry maps keys to an ordered list of bindings and
// turns reconciler events into calls on them. Bindings are invoked on the
// UI thread only.
package binding

import (
	"reflect"

	"github.com/go-drift/conduit/pkg/errors"
	"github.com/go-drift/conduit/pkg/widget"
)

// Binding applies widgets to a native view.
//
// OnAdded is called when a key appears in a render, and is always followed
// by OnChanged with the same widget. OnChanged is called whenever the
// widget for the key differs from the previous render. OnRemoved is called
// with the last rendered widget when the key disappears.
type Binding interface {
	OnAdded(w widget.Widget) error
	OnChanged(w widget.Widget) error
	OnRemoved(w widget.Widget) error
}

// Funcs is a Binding built from optional functions of one widget type. A
// widget of another type is rejected with a BindingTypeError, even when
// the function for that event is nil.
type Funcs[W widget.Widget] struct {
	Added   func(W)
	Changed func(W)
	Removed func(W)
}

// OnAdded calls f.Added.
func (f Funcs[W]) OnAdded(w widget.Widget) error { return call(f.Added, w) }

// OnChanged calls f.Changed.
func (f Funcs[W]) OnChanged(w widget.Widget) error { return call(f.Changed, w) }

// OnRemoved calls f.Removed.
func (f Funcs[W]) OnRemoved(w widget.Widget) error { return call(f.Removed, w) }

// OnChange returns a binding that only reacts to changes. It is the common
// shape of a one-way binding.
func OnChange[W widget.Widget](fn func(W)) Binding {
	return Funcs[W]{Changed: fn}
}

// TypedBinding is a binding for a single widget type.
type TypedBinding[W widget.Widget] interface {
	OnAdded(w W)
	OnChanged(w W)
	OnRemoved(w W)
}

// Typed adapts b to the Binding interface.
func Typed[W widget.Widget](b TypedBinding[W]) Binding {
	return Funcs[W]{Added: b.OnAdded, Changed: b.OnChanged, Removed: b.OnRemoved}
}

func call[W widget.Widget](fn func(W), w widget.Widget) error {
	typed, ok := w.(W)
	if !ok {
		return &errors.BindingTypeError{
			Key:  widget.KeyOf(w),
			Want: reflect.TypeFor[W]().String(),
			Got:  reflect.TypeOf(w).String(),
		}
	}
	if fn != nil {
		fn(typed)
	}
	return nil
}
