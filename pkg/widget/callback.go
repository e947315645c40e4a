package widget

import "github.com/google/uuid"

// Callback is a comparable reference to a function carried by a widget.
//
// Go functions cannot be compared, so widgets never hold bare funcs. They
// hold handles instead, and two widgets are equal only if they hold the
// same handle. Do and On allocate a new handle on every call, which means a
// closure recreated in every build makes its widget look changed until the
// presenter replaces it with a stable handle.
type Callback interface {
	// ID returns the token assigned when the handle was created.
	ID() uuid.UUID

	// forward returns a new handle of the same kind that invokes whatever
	// handle resolve returns at call time.
	forward(resolve func() Callback) Callback
}

// CallbackMapper rewrites one callback field of a widget. slot names the
// field and is unique within a widget type.
type CallbackMapper func(slot string, cb Callback) Callback

// Forward returns a handle of the same kind as cb whose invocation calls the
// handle currently returned by resolve. If resolve returns nil or a handle
// of another kind, the call is dropped.
func Forward(cb Callback, resolve func() Callback) Callback {
	if cb == nil {
		return nil
	}
	return cb.forward(resolve)
}

// Action is a handle for a callback without arguments.
type Action struct {
	id uuid.UUID
	fn func()
}

// Do wraps fn in a new Action. It returns nil for a nil fn.
func Do(fn func()) *Action {
	if fn == nil {
		return nil
	}
	return &Action{id: uuid.New(), fn: fn}
}

// ID returns the action token, or uuid.Nil for a nil action.
func (a *Action) ID() uuid.UUID {
	if a == nil {
		return uuid.Nil
	}
	return a.id
}

// Invoke calls the wrapped function. Invoking a nil action is a no-op.
func (a *Action) Invoke() {
	if a != nil && a.fn != nil {
		a.fn()
	}
}

func (a *Action) forward(resolve func() Callback) Callback {
	return &Action{id: uuid.New(), fn: func() {
		if next, ok := resolve().(*Action); ok {
			next.Invoke()
		}
	}}
}

// Handler is a handle for a callback receiving one value, such as the new
// text of an input or the state of a switch.
type Handler[T any] struct {
	id uuid.UUID
	fn func(T)
}

// On wraps fn in a new Handler. It returns nil for a nil fn.
func On[T any](fn func(T)) *Handler[T] {
	if fn == nil {
		return nil
	}
	return &Handler[T]{id: uuid.New(), fn: fn}
}

// ID returns the handler token, or uuid.Nil for a nil handler.
func (h *Handler[T]) ID() uuid.UUID {
	if h == nil {
		return uuid.Nil
	}
	return h.id
}

// Call invokes the wrapped function with v. Calling a nil handler is a no-op.
func (h *Handler[T]) Call(v T) {
	if h != nil && h.fn != nil {
		h.fn(v)
	}
}

func (h *Handler[T]) forward(resolve func() Callback) Callback {
	return &Handler[T]{id: uuid.New(), fn: func(v T) {
		if next, ok := resolve().(*Handler[T]); ok {
			next.Call(v)
		}
	}}
}

// MapAction passes a non-nil action through fn and returns the result.
func MapAction(fn CallbackMapper, slot string, a *Action) *Action {
	if a == nil || fn == nil {
		return a
	}
	out, _ := fn(slot, a).(*Action)
	return out
}

// MapHandler passes a non-nil handler through fn and returns the result.
func MapHandler[T any](fn CallbackMapper, slot string, h *Handler[T]) *Handler[T] {
	if h == nil || fn == nil {
		return h
	}
	out, _ := fn(slot, h).(*Handler[T])
	return out
}
