package adapters

import (
	"github.com/go-drift/conduit/pkg/native"
	"github.com/go-drift/conduit/pkg/widget"
)

// TextBinding sets the text of a TextView from Text, Button, CheckBox and
// Toggle widgets. Other widgets are ignored, Input included, which
// InputBinding handles.
type TextBinding struct {
	view native.TextView

	captured  bool
	applied   bool
	text      string
	maxLength int
}

func (b *TextBinding) OnAdded(w widget.Widget) error {
	if b.captured {
		return nil
	}
	b.captured = true
	b.text = b.view.Text()
	if l, ok := b.view.(native.LengthLimiter); ok {
		b.maxLength = l.MaxLength()
	}
	return nil
}

func (b *TextBinding) OnChanged(w widget.Widget) error {
	var text string
	switch w := w.(type) {
	case widget.Text:
		text = w.Text
		if l, ok := b.view.(native.LengthLimiter); ok && l.MaxLength() != w.MaxLength {
			l.SetMaxLength(w.MaxLength)
		}
		if tw, ok := b.view.(native.TextWatcher); ok {
			tw.SetOnTextChanged(textHandler(w.OnTextChanged))
		}
	case widget.Button:
		text = w.Text
	case widget.CheckBox:
		text = w.Text
	case widget.Toggle:
		text = w.Text
	default:
		return nil
	}
	b.applied = true
	if b.view.Text() != text {
		b.view.SetText(text)
	}
	return nil
}

func (b *TextBinding) OnRemoved(w widget.Widget) error {
	if !b.captured {
		return nil
	}
	b.captured = false
	if !b.applied {
		return nil
	}
	b.applied = false
	if tw, ok := b.view.(native.TextWatcher); ok {
		if _, isText := w.(widget.Text); isText {
			tw.SetOnTextChanged(nil)
		}
	}
	if l, ok := b.view.(native.LengthLimiter); ok {
		l.SetMaxLength(b.maxLength)
	}
	b.view.SetText(b.text)
	return nil
}

type editable interface {
	native.TextView
	native.TextWatcher
}

// InputBinding is the two-way binding of Input widgets. The view's text is
// only overwritten when it differs from the widget, so a render that echoes
// the user's own edit leaves the cursor alone. The watcher is detached while
// the binding writes to the view.
type InputBinding struct {
	view editable

	captured  bool
	text      string
	hint      string
	maxLength int
	watcher   func(string)
}

func (b *InputBinding) OnAdded(w widget.Widget) error {
	if _, ok := w.(widget.Input); !ok || b.captured {
		return nil
	}
	b.captured = true
	b.text = b.view.Text()
	if h, ok := b.view.(native.HintView); ok {
		b.hint = h.Hint()
	}
	if l, ok := b.view.(native.LengthLimiter); ok {
		b.maxLength = l.MaxLength()
	}
	return nil
}

func (b *InputBinding) OnChanged(w widget.Widget) error {
	in, ok := w.(widget.Input)
	if !ok {
		return nil
	}
	b.watcher = textHandler(in.OnTextChanged)

	b.view.SetOnTextChanged(nil)
	if h, ok := b.view.(native.HintView); ok && h.Hint() != in.Hint {
		h.SetHint(in.Hint)
	}
	if l, ok := b.view.(native.LengthLimiter); ok && l.MaxLength() != in.MaxLength {
		l.SetMaxLength(in.MaxLength)
	}
	if b.view.Text() != in.Text {
		b.view.SetText(in.Text)
	}
	b.view.SetOnTextChanged(b.watcher)
	return nil
}

func (b *InputBinding) OnRemoved(w widget.Widget) error {
	if !b.captured {
		return nil
	}
	b.captured = false
	b.watcher = nil
	b.view.SetOnTextChanged(nil)
	if h, ok := b.view.(native.HintView); ok {
		h.SetHint(b.hint)
	}
	if l, ok := b.view.(native.LengthLimiter); ok {
		l.SetMaxLength(b.maxLength)
	}
	b.view.SetText(b.text)
	return nil
}

func textHandler(h *widget.Handler[string]) func(string) {
	if h == nil {
		return nil
	}
	return h.Call
}
