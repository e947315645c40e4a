package adapters

import (
	"github.com/go-drift/conduit/pkg/native"
	"github.com/go-drift/conduit/pkg/widget"
)

// CheckableBinding drives two-state views from Switch, CheckBox and Toggle
// widgets.
type CheckableBinding struct {
	view native.Checkable

	captured bool
	applied  bool
	checked  bool
}

func (b *CheckableBinding) OnAdded(w widget.Widget) error {
	if b.captured {
		return nil
	}
	b.captured = true
	b.checked = b.view.Checked()
	return nil
}

func (b *CheckableBinding) OnChanged(w widget.Widget) error {
	var (
		checked  bool
		listener func(bool)
	)
	switch w := w.(type) {
	case widget.Switch:
		checked, listener = w.Value, boolHandler(w.OnSwitch)
	case widget.CheckBox:
		checked, listener = w.Checked, boolHandler(w.OnCheckedChanged)
	case widget.Toggle:
		checked = w.Value
	default:
		return nil
	}
	b.applied = true
	b.view.SetOnCheckedChanged(nil)
	if b.view.Checked() != checked {
		b.view.SetChecked(checked)
	}
	b.view.SetOnCheckedChanged(listener)
	return nil
}

func (b *CheckableBinding) OnRemoved(w widget.Widget) error {
	if !b.captured {
		return nil
	}
	b.captured = false
	if !b.applied {
		return nil
	}
	b.applied = false
	b.view.SetOnCheckedChanged(nil)
	b.view.SetChecked(b.checked)
	return nil
}

func boolHandler(h *widget.Handler[bool]) func(bool) {
	if h == nil {
		return nil
	}
	return h.Call
}

// ProgressBinding drives progress views from ProgressBar and SeekBar
// widgets. On Seekable views it also installs the seek listener. An
// indeterminate progress bar shows no progress.
type ProgressBinding struct {
	view native.ProgressView

	captured bool
	applied  bool
	progress float64
}

func (b *ProgressBinding) OnAdded(w widget.Widget) error {
	if b.captured {
		return nil
	}
	b.captured = true
	b.progress = b.view.Progress()
	return nil
}

func (b *ProgressBinding) OnChanged(w widget.Widget) error {
	var progress float64
	switch w := w.(type) {
	case widget.ProgressBar:
		if !w.Indeterminate {
			progress = w.Progress
		}
		if s, ok := b.view.(native.Seekable); ok {
			s.SetOnSeek(nil)
		}
	case widget.SeekBar:
		progress = w.Progress
		if s, ok := b.view.(native.Seekable); ok {
			var fn func(int)
			if w.OnSeek != nil {
				fn = w.OnSeek.Call
			}
			s.SetOnSeek(fn)
		}
	default:
		return nil
	}
	b.applied = true
	if b.view.Progress() != progress {
		b.view.SetProgress(progress)
	}
	return nil
}

func (b *ProgressBinding) OnRemoved(w widget.Widget) error {
	if !b.captured {
		return nil
	}
	b.captured = false
	if !b.applied {
		return nil
	}
	b.applied = false
	if s, ok := b.view.(native.Seekable); ok {
		s.SetOnSeek(nil)
	}
	b.view.SetProgress(b.progress)
	return nil
}

// ImageBinding sets the drawable of an ImageView from Image and
// ImageButton widgets.
type ImageBinding struct {
	view native.ImageView

	captured bool
	applied  bool
	drawable string
}

func (b *ImageBinding) OnAdded(w widget.Widget) error {
	if b.captured {
		return nil
	}
	b.captured = true
	b.drawable = b.view.Drawable()
	return nil
}

func (b *ImageBinding) OnChanged(w widget.Widget) error {
	var drawable string
	switch w := w.(type) {
	case widget.Image:
		drawable = w.Drawable
	case widget.ImageButton:
		drawable = w.Drawable
	default:
		return nil
	}
	b.applied = true
	if b.view.Drawable() != drawable {
		b.view.SetDrawable(drawable)
	}
	return nil
}

func (b *ImageBinding) OnRemoved(w widget.Widget) error {
	if !b.captured {
		return nil
	}
	b.captured = false
	if !b.applied {
		return nil
	}
	b.applied = false
	b.view.SetDrawable(b.drawable)
	return nil
}
