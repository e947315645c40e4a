// Package adapters provides the standard bindings between the widgets of
// package widget and the capabilities of package native.
//
// Each binding remembers the state its view had when the first widget was
// added and puts it back when the widget is removed, so a view that drops
// out of a render looks the way the host created it.
package adapters

import (
	"github.com/go-drift/conduit/pkg/binding"
	"github.com/go-drift/conduit/pkg/native"
	"github.com/go-drift/conduit/pkg/widget"
)

// DefaultFactories returns the factories for every standard binding. The
// generic view binding comes first so that enabled, visible and click state
// are applied before the type specific properties.
func DefaultFactories() []binding.Factory {
	return []binding.Factory{
		binding.FactoryFunc(viewFactory),
		binding.FactoryFunc(textFactory),
		binding.FactoryFunc(inputFactory),
		binding.FactoryFunc(checkableFactory),
		binding.FactoryFunc(progressFactory),
		binding.FactoryFunc(imageFactory),
	}
}

func viewFactory(v native.View, emit func(binding.Binding)) {
	emit(NewViewBinding(v))
}

func textFactory(v native.View, emit func(binding.Binding)) {
	if tv, ok := v.(native.TextView); ok {
		emit(&TextBinding{view: tv})
	}
}

func inputFactory(v native.View, emit func(binding.Binding)) {
	if in, ok := v.(editable); ok {
		emit(&InputBinding{view: in})
	}
}

func checkableFactory(v native.View, emit func(binding.Binding)) {
	if c, ok := v.(native.Checkable); ok {
		emit(&CheckableBinding{view: c})
	}
}

func progressFactory(v native.View, emit func(binding.Binding)) {
	if p, ok := v.(native.ProgressView); ok {
		emit(&ProgressBinding{view: p})
	}
}

func imageFactory(v native.View, emit func(binding.Binding)) {
	if im, ok := v.(native.ImageView); ok {
		emit(&ImageBinding{view: im})
	}
}

// ViewBinding applies the common widget fields: enabled, visible and the
// click handler. It binds to any view and uses whichever of the Enabler,
// Shower and Clicker capabilities the view has.
type ViewBinding struct {
	view native.View

	captured  bool
	enabled   bool
	visible   bool
	clickable bool
}

// NewViewBinding returns a ViewBinding for v.
func NewViewBinding(v native.View) *ViewBinding {
	return &ViewBinding{view: v}
}

func (b *ViewBinding) OnAdded(w widget.Widget) error {
	if b.captured {
		return nil
	}
	b.captured = true
	if e, ok := b.view.(native.Enabler); ok {
		b.enabled = e.Enabled()
	}
	if s, ok := b.view.(native.Shower); ok {
		b.visible = s.Visible()
	}
	if c, ok := b.view.(native.Clicker); ok {
		b.clickable = c.Clickable()
	}
	return nil
}

func (b *ViewBinding) OnChanged(w widget.Widget) error {
	base := w.Common()
	if e, ok := b.view.(native.Enabler); ok && e.Enabled() != base.Enabled() {
		e.SetEnabled(base.Enabled())
	}
	if s, ok := b.view.(native.Shower); ok && s.Visible() != base.Visible() {
		s.SetVisible(base.Visible())
	}
	if c, ok := b.view.(native.Clicker); ok {
		if base.OnClick != nil {
			c.SetOnClick(base.OnClick.Invoke)
		} else if c.Clickable() {
			c.SetOnClick(nil)
		}
	}
	return nil
}

func (b *ViewBinding) OnRemoved(w widget.Widget) error {
	if !b.captured {
		return nil
	}
	b.captured = false
	if e, ok := b.view.(native.Enabler); ok {
		e.SetEnabled(b.enabled)
	}
	if s, ok := b.view.(native.Shower); ok {
		s.SetVisible(b.visible)
	}
	if c, ok := b.view.(native.Clicker); ok && c.Clickable() != b.clickable {
		c.SetOnClick(nil)
	}
	return nil
}
