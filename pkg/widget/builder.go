package widget

import (
	"sync/atomic"

	"github.com/go-drift/conduit/pkg/errors"
)

// Builder collects the widgets of one build. It is the only mutable phase
// of a widget list: after Lock every write panics with *errors.StateError.
//
// A Builder is not safe for concurrent writes; Locked may be called from
// any goroutine.
type Builder struct {
	widgets []Widget
	locked  atomic.Bool
}

// NewBuilder returns an empty, writable builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) checkWritable(op string) {
	if b.locked.Load() {
		panic(&errors.StateError{Op: op})
	}
}

// Add appends widgets in order. Nil widgets are skipped.
func (b *Builder) Add(widgets ...Widget) *Builder {
	b.checkWritable("Builder.Add")
	for _, w := range widgets {
		if w != nil {
			b.widgets = append(b.widgets, w)
		}
	}
	return b
}

// Set replaces the widget at index i.
func (b *Builder) Set(i int, w Widget) {
	b.checkWritable("Builder.Set")
	b.widgets[i] = w
}

// Update replaces every widget with the result of fn.
func (b *Builder) Update(fn func(w Widget) Widget) {
	b.checkWritable("Builder.Update")
	for i, w := range b.widgets {
		b.widgets[i] = fn(w)
	}
}

// Len returns the number of widgets added so far.
func (b *Builder) Len() int {
	return len(b.widgets)
}

// At returns the widget at index i.
func (b *Builder) At(i int) Widget {
	return b.widgets[i]
}

// Locked reports whether Lock has been called.
func (b *Builder) Locked() bool {
	return b.locked.Load()
}

// Lock freezes the builder and returns its widgets as a List. Widgets
// holding slices are cloned so the list shares no memory with the caller.
// Lock panics with *errors.StateError if called twice, and with
// *errors.MissingKeyError if a key cannot be compared.
func (b *Builder) Lock() List {
	if !b.locked.CompareAndSwap(false, true) {
		panic(&errors.StateError{Op: "Builder.Lock"})
	}
	items := make([]Widget, len(b.widgets))
	for i, w := range b.widgets {
		if reason := CheckKey(w.Common().Key); reason != "" {
			panic(&errors.MissingKeyError{Widget: TypeName(w), Index: i, Reason: reason})
		}
		if c, ok := w.(Cloner); ok {
			w = c.Clone()
		}
		items[i] = w
	}
	b.widgets = nil
	return List{items: items}
}
