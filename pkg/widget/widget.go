package widget

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Widget is an immutable description of one keyed piece of UI.
type Widget interface {
	// Common returns the fields every widget has.
	Common() Base

	// Equal reports whether other has the same type and the same field
	// values, callback handles included.
	Equal(other Widget) bool

	// WithCallbacks returns a copy of the widget whose callback fields were
	// passed through fn. Nil callbacks are not passed.
	WithCallbacks(fn CallbackMapper) Widget
}

// Cloner is implemented by widgets holding slices or other shared memory.
// Clone returns a copy that shares nothing with the receiver; it is called
// when a builder is locked.
type Cloner interface {
	Clone() Widget
}

// Describer is implemented by widgets that want their own fields to show
// up in String.
type Describer interface {
	// Describe returns "name=value" pairs for the fields that differ from
	// their defaults.
	Describe() []string
}

// Base holds the fields every widget has. The zero value is an enabled,
// visible widget without key and without click handler.
type Base struct {
	// Key identifies the widget within its list. It must be comparable and
	// unique, and it must be set on every widget that is rendered.
	Key any

	// Disabled turns off user interaction.
	Disabled bool

	// Hidden removes the view from display.
	Hidden bool

	// OnClick is invoked when the view is clicked.
	OnClick *Action
}

// Common returns b.
func (b Base) Common() Base { return b }

// Enabled reports whether the widget accepts user interaction.
func (b Base) Enabled() bool { return !b.Disabled }

// Visible reports whether the widget is displayed.
func (b Base) Visible() bool { return !b.Hidden }

// MapCallbacks passes the click handler through fn.
func (b Base) MapCallbacks(fn CallbackMapper) Base {
	b.OnClick = MapAction(fn, "click", b.OnClick)
	return b
}

func (b Base) describe() []string {
	var props []string
	if b.Key != nil {
		if id, ok := b.Key.(int); ok {
			props = append(props, "key=0x"+strconv.FormatInt(int64(id), 16))
		} else {
			props = append(props, fmt.Sprintf("key=%v", b.Key))
		}
	}
	if b.Disabled {
		props = append(props, "enabled=false")
	}
	if b.Hidden {
		props = append(props, "visible=false")
	}
	if b.OnClick != nil {
		props = append(props, "onClick")
	}
	return props
}

// EqualValue compares w with other using ==. It serves widgets whose fields
// are all comparable.
func EqualValue[W interface {
	Widget
	comparable
}](w W, other Widget) bool {
	o, ok := other.(W)
	return ok && w == o
}

// TypeName returns the widget type without its package path, e.g.
// "widget.Text".
func TypeName(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	name := reflect.TypeOf(w).String()
	return strings.TrimPrefix(name, "*")
}

// String describes w by its type and non-default fields, e.g.
// `Text(key=label, text="Clicked 0 times")`.
func String(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	props := w.Common().describe()
	if d, ok := w.(Describer); ok {
		props = append(props, d.Describe()...)
	}
	name := TypeName(w)
	prefix, _, _ := strings.Cut(name, "[")
	if i := strings.LastIndexByte(prefix, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name + "(" + strings.Join(props, ", ") + ")"
}

// KeyOf returns the key of w, or nil for a nil widget.
func KeyOf(w Widget) any {
	if w == nil {
		return nil
	}
	return w.Common().Key
}

// CheckKey reports why k cannot identify a rendered widget, or "" when it
// can. A nil key is reported as "".
func CheckKey(k any) string {
	t := reflect.TypeOf(k)
	if t != nil && !t.Comparable() {
		return fmt.Sprintf("key of type %s is not comparable", t)
	}
	return ""
}
