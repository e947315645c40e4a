// Package native defines the contract between conduit and a host's native
// views.
//
// conduit never touches a toolkit directly. A host wraps its views so they
// implement View plus whichever capability interfaces they support, and the
// standard bindings in package adapters drive them through those
// interfaces. Capabilities are discovered with type assertions, so a view
// only implements what it can do.
package native

// View is a native view that widgets can be bound to.
type View interface {
	// ViewID returns the unique identifier for this view. Positive ids are
	// eligible for automatic binding.
	ViewID() int64

	// ViewType returns the type identifier for this view (e.g., "text").
	ViewType() string
}

// Parent is implemented by views that contain other views.
type Parent interface {
	Children() []View
}

// Enabler is implemented by views that can be disabled.
type Enabler interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// Shower is implemented by views that can be hidden. A hidden view takes no
// space on screen.
type Shower interface {
	Visible() bool
	SetVisible(visible bool)
}

// Clicker is implemented by views that report clicks. SetOnClick(nil)
// removes the listener and makes the view non-clickable.
type Clicker interface {
	Clickable() bool
	SetOnClick(fn func())
}

// TextView is implemented by views that display text.
type TextView interface {
	Text() string
	SetText(text string)
}

// HintView is implemented by views with a placeholder text.
type HintView interface {
	Hint() string
	SetHint(hint string)
}

// TextWatcher is implemented by views that report user edits.
// SetOnTextChanged(nil) removes the watcher.
type TextWatcher interface {
	SetOnTextChanged(fn func(text string))
}

// LengthLimiter is implemented by views that can cap their text length.
// Zero means unlimited.
type LengthLimiter interface {
	MaxLength() int
	SetMaxLength(n int)
}

// Checkable is implemented by two-state views such as switches and check
// boxes.
type Checkable interface {
	Checked() bool
	SetChecked(checked bool)
	SetOnCheckedChanged(fn func(checked bool))
}

// ProgressView is implemented by views showing a fraction between 0 and 1.
type ProgressView interface {
	Progress() float64
	SetProgress(progress float64)
}

// Seekable is implemented by progress views the user can drag. The
// listener receives positions in the range 0..100.
type Seekable interface {
	ProgressView
	SetOnSeek(fn func(position int))
}

// ImageView is implemented by views that show a drawable resource.
type ImageView interface {
	Drawable() string
	SetDrawable(name string)
}

// Walk calls fn for root and every view below it, depth first.
func Walk(root View, fn func(View)) {
	if root == nil {
		return
	}
	fn(root)
	if p, ok := root.(Parent); ok {
		for _, child := range p.Children() {
			Walk(child, fn)
		}
	}
}

// Named is implemented by views that carry a host-assigned name. Renderers
// use the name as the widget key when it is not empty.
type Named interface {
	ViewName() string
}
