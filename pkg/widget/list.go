package widget

import (
	"iter"
	"strings"
)

// List is an ordered, immutable sequence of widgets produced by one build.
// The zero value is an empty list.
type List struct {
	items []Widget
}

// ListOf returns a locked list of widgets.
func ListOf(widgets ...Widget) List {
	return NewBuilder().Add(widgets...).Lock()
}

// Len returns the number of widgets.
func (l List) Len() int {
	return len(l.items)
}

// At returns the widget at index i.
func (l List) At(i int) Widget {
	return l.items[i]
}

// All iterates over the widgets with their index.
func (l List) All() iter.Seq2[int, Widget] {
	return func(yield func(int, Widget) bool) {
		for i, w := range l.items {
			if !yield(i, w) {
				return
			}
		}
	}
}

// Widgets returns a copy of the widgets.
func (l List) Widgets() []Widget {
	out := make([]Widget, len(l.items))
	copy(out, l.items)
	return out
}

// Find returns the first widget with the given key. A nil key never matches.
func (l List) Find(key any) (Widget, bool) {
	if key == nil {
		return nil, false
	}
	for _, w := range l.items {
		if w.Common().Key == key {
			return w, true
		}
	}
	return nil, false
}

// FindAs returns the widget with the given key if it has type W.
func FindAs[W Widget](l List, key any) (W, bool) {
	var zero W
	w, ok := l.Find(key)
	if !ok {
		return zero, false
	}
	typed, ok := w.(W)
	return typed, ok
}

// Keys returns the keys of all widgets in order, nil keys included.
func (l List) Keys() []any {
	keys := make([]any, len(l.items))
	for i, w := range l.items {
		keys[i] = w.Common().Key
	}
	return keys
}

// Equal reports whether both lists hold equal widgets in the same order.
func (l List) Equal(other List) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	for i, w := range l.items {
		if !w.Equal(other.items[i]) {
			return false
		}
	}
	return true
}

func (l List) String() string {
	parts := make([]string, len(l.items))
	for i, w := range l.items {
		parts[i] = String(w)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
