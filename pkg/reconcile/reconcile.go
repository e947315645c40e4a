// Package reconcile computes the difference between two widget lists.
//
// Widgets are matched by key. A widget whose key disappears is removed, a
// widget whose key appears is added, and a widget whose key exists in both
// lists but whose value differs is changed. The package only computes the
// partitions; Result.Apply hands them to a Dispatcher in the order bindings
// expect.
package reconcile

import (
	"github.com/go-drift/conduit/pkg/errors"
	"github.com/go-drift/conduit/pkg/widget"
)

// Event names a binding lifecycle notification.
type Event int

const (
	// Removed is sent when a key disappears from the list.
	Removed Event = iota
	// Added is sent when a key appears. A Changed notification for the
	// same widget always follows.
	Added
	// Changed is sent when a widget differs from the one previously
	// rendered under the same key.
	Changed
)

func (e Event) String() string {
	switch e {
	case Removed:
		return "removed"
	case Added:
		return "added"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// Result holds the three partitions of a diff. Each partition keeps the
// order of the list it was taken from.
type Result struct {
	// Removed holds widgets of the old list whose key is gone.
	Removed []widget.Widget
	// Added holds widgets of the new list whose key is new.
	Added []widget.Widget
	// Changed holds widgets of the new list that differ from the old
	// widget with the same key. Added widgets are not repeated here.
	Changed []widget.Widget
}

// Empty reports whether the diff has nothing to apply.
func (r Result) Empty() bool {
	return len(r.Removed) == 0 && len(r.Added) == 0 && len(r.Changed) == 0
}

// Dispatcher receives the notifications of a diff.
type Dispatcher interface {
	Dispatch(event Event, w widget.Widget) error
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(event Event, w widget.Widget) error

// Dispatch calls f(event, w).
func (f DispatcherFunc) Dispatch(event Event, w widget.Widget) error {
	return f(event, w)
}

// Apply sends every removal, then every addition immediately followed by a
// change for the same widget, then every remaining change. It stops at the
// first error.
func (r Result) Apply(d Dispatcher) error {
	for _, w := range r.Removed {
		if err := d.Dispatch(Removed, w); err != nil {
			return err
		}
	}
	for _, w := range r.Added {
		if err := d.Dispatch(Added, w); err != nil {
			return err
		}
		if err := d.Dispatch(Changed, w); err != nil {
			return err
		}
	}
	for _, w := range r.Changed {
		if err := d.Dispatch(Changed, w); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that every widget of list has a usable key and that no
// key is used twice.
func Validate(list widget.List) error {
	seen := make(map[any]int, list.Len())
	for i, w := range list.All() {
		key := w.Common().Key
		if key == nil {
			return &errors.MissingKeyError{Widget: widget.String(w), Index: i}
		}
		if reason := widget.CheckKey(key); reason != "" {
			return &errors.MissingKeyError{Widget: widget.String(w), Index: i, Reason: reason}
		}
		if first, dup := seen[key]; dup {
			return &errors.DuplicateKeyError{Key: key, First: first, Second: i}
		}
		seen[key] = i
	}
	return nil
}

// Diff computes the removed, added and changed partitions between old and
// next. Every widget of next must carry a unique, non-nil key. Widgets of
// old without a key take part in no partition.
func Diff(old, next widget.List) (Result, error) {
	if err := Validate(next); err != nil {
		return Result{}, err
	}

	nextByKey := make(map[any]struct{}, next.Len())
	for _, w := range next.All() {
		nextByKey[w.Common().Key] = struct{}{}
	}

	oldByKey := make(map[any]widget.Widget, old.Len())
	var res Result
	for _, w := range old.All() {
		key := w.Common().Key
		if key == nil || widget.CheckKey(key) != "" {
			continue
		}
		if _, dup := oldByKey[key]; !dup {
			oldByKey[key] = w
		}
		if _, ok := nextByKey[key]; !ok {
			res.Removed = append(res.Removed, w)
		}
	}

	for _, w := range next.All() {
		prev, ok := oldByKey[w.Common().Key]
		switch {
		case !ok:
			res.Added = append(res.Added, w)
		case !prev.Equal(w):
			res.Changed = append(res.Changed, w)
		}
	}
	return res, nil
}
