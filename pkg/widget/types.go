package widget

import (
	"fmt"
	"strconv"
)

// Plain is a widget with only the common fields. It binds to any view.
type Plain struct {
	Base
}

// PlainOf returns a plain widget with the given key.
func PlainOf(key any) Plain {
	return Plain{Base: Base{Key: key}}
}

func (p Plain) Equal(other Widget) bool { return EqualValue(p, other) }

func (p Plain) WithCallbacks(fn CallbackMapper) Widget {
	p.Base = p.Base.MapCallbacks(fn)
	return p
}

// Text displays a string.
type Text struct {
	Base
	Text string
	// MaxLength limits the text length; 0 means unlimited.
	MaxLength     int
	OnTextChanged *Handler[string]
}

// TextOf returns a text widget.
func TextOf(key any, text string) Text {
	return Text{Base: Base{Key: key}, Text: text}
}

func (t Text) Equal(other Widget) bool { return EqualValue(t, other) }

func (t Text) WithCallbacks(fn CallbackMapper) Widget {
	t.Base = t.Base.MapCallbacks(fn)
	t.OnTextChanged = MapHandler(fn, "textChanged", t.OnTextChanged)
	return t
}

func (t Text) Describe() []string {
	props := []string{"text=" + strconv.Quote(t.Text)}
	if t.MaxLength > 0 {
		props = append(props, "maxLength="+strconv.Itoa(t.MaxLength))
	}
	return props
}

// Button is a clickable label.
type Button struct {
	Base
	Text string
}

// ButtonOf returns a button widget.
func ButtonOf(key any, text string, onClick *Action) Button {
	return Button{Base: Base{Key: key, OnClick: onClick}, Text: text}
}

func (b Button) Equal(other Widget) bool { return EqualValue(b, other) }

func (b Button) WithCallbacks(fn CallbackMapper) Widget {
	b.Base = b.Base.MapCallbacks(fn)
	return b
}

func (b Button) Describe() []string {
	return []string{"text=" + strconv.Quote(b.Text)}
}

// Input is an editable text field. It needs a two-way binding: user edits
// are reported through OnTextChanged, and Text is written back to the view
// only when it differs from what the view shows.
type Input struct {
	Base
	Text          string
	Hint          string
	MaxLength     int
	OnTextChanged *Handler[string]
}

// InputOf returns an input widget.
func InputOf(key any, text string, onChange *Handler[string]) Input {
	return Input{Base: Base{Key: key}, Text: text, OnTextChanged: onChange}
}

func (in Input) Equal(other Widget) bool { return EqualValue(in, other) }

func (in Input) WithCallbacks(fn CallbackMapper) Widget {
	in.Base = in.Base.MapCallbacks(fn)
	in.OnTextChanged = MapHandler(fn, "textChanged", in.OnTextChanged)
	return in
}

func (in Input) Describe() []string {
	props := []string{"text=" + strconv.Quote(in.Text)}
	if in.Hint != "" {
		props = append(props, "hint="+strconv.Quote(in.Hint))
	}
	return props
}

// Toggle is a two-state button with a label.
type Toggle struct {
	Base
	Text  string
	Value bool
}

func (t Toggle) Equal(other Widget) bool { return EqualValue(t, other) }

func (t Toggle) WithCallbacks(fn CallbackMapper) Widget {
	t.Base = t.Base.MapCallbacks(fn)
	return t
}

func (t Toggle) Describe() []string {
	return []string{"text=" + strconv.Quote(t.Text), "value=" + strconv.FormatBool(t.Value)}
}

// Switch is an on/off control.
type Switch struct {
	Base
	Value    bool
	OnSwitch *Handler[bool]
}

// SwitchOf returns a switch widget.
func SwitchOf(key any, value bool, onSwitch *Handler[bool]) Switch {
	return Switch{Base: Base{Key: key}, Value: value, OnSwitch: onSwitch}
}

func (s Switch) Equal(other Widget) bool { return EqualValue(s, other) }

func (s Switch) WithCallbacks(fn CallbackMapper) Widget {
	s.Base = s.Base.MapCallbacks(fn)
	s.OnSwitch = MapHandler(fn, "switch", s.OnSwitch)
	return s
}

func (s Switch) Describe() []string {
	return []string{"value=" + strconv.FormatBool(s.Value)}
}

// CheckBox is a labelled check mark.
type CheckBox struct {
	Base
	Text             string
	Checked          bool
	OnCheckedChanged *Handler[bool]
}

// CheckBoxOf returns a check box widget.
func CheckBoxOf(key any, text string, checked bool, onChange *Handler[bool]) CheckBox {
	return CheckBox{Base: Base{Key: key}, Text: text, Checked: checked, OnCheckedChanged: onChange}
}

func (c CheckBox) Equal(other Widget) bool { return EqualValue(c, other) }

func (c CheckBox) WithCallbacks(fn CallbackMapper) Widget {
	c.Base = c.Base.MapCallbacks(fn)
	c.OnCheckedChanged = MapHandler(fn, "checkedChanged", c.OnCheckedChanged)
	return c
}

func (c CheckBox) Describe() []string {
	return []string{"text=" + strconv.Quote(c.Text), "checked=" + strconv.FormatBool(c.Checked)}
}

// ProgressBar shows a fraction between 0 and 1.
type ProgressBar struct {
	Base
	Progress      float64
	Indeterminate bool
}

// ProgressBarOf returns a progress bar widget.
func ProgressBarOf(key any, progress float64) ProgressBar {
	return ProgressBar{Base: Base{Key: key}, Progress: progress}
}

func (p ProgressBar) Equal(other Widget) bool { return EqualValue(p, other) }

func (p ProgressBar) WithCallbacks(fn CallbackMapper) Widget {
	p.Base = p.Base.MapCallbacks(fn)
	return p
}

func (p ProgressBar) Describe() []string {
	if p.Indeterminate {
		return []string{"indeterminate"}
	}
	return []string{fmt.Sprintf("progress=%.2f", p.Progress)}
}

// SeekBar is a progress bar the user can drag. OnSeek receives the new
// position in the range 0..100.
type SeekBar struct {
	Base
	Progress float64
	OnSeek   *Handler[int]
}

// SeekBarOf returns a seek bar widget.
func SeekBarOf(key any, progress float64, onSeek *Handler[int]) SeekBar {
	return SeekBar{Base: Base{Key: key}, Progress: progress, OnSeek: onSeek}
}

func (s SeekBar) Equal(other Widget) bool { return EqualValue(s, other) }

func (s SeekBar) WithCallbacks(fn CallbackMapper) Widget {
	s.Base = s.Base.MapCallbacks(fn)
	s.OnSeek = MapHandler(fn, "seek", s.OnSeek)
	return s
}

func (s SeekBar) Describe() []string {
	return []string{fmt.Sprintf("progress=%.2f", s.Progress)}
}

// Image shows a drawable resource.
type Image struct {
	Base
	Drawable string
}

func (im Image) Equal(other Widget) bool { return EqualValue(im, other) }

func (im Image) WithCallbacks(fn CallbackMapper) Widget {
	im.Base = im.Base.MapCallbacks(fn)
	return im
}

func (im Image) Describe() []string {
	return []string{"drawable=" + im.Drawable}
}

// ImageButton is a clickable drawable.
type ImageButton struct {
	Base
	Drawable string
}

func (ib ImageButton) Equal(other Widget) bool { return EqualValue(ib, other) }

func (ib ImageButton) WithCallbacks(fn CallbackMapper) Widget {
	ib.Base = ib.Base.MapCallbacks(fn)
	return ib
}

func (ib ImageButton) Describe() []string {
	return []string{"drawable=" + ib.Drawable}
}

// Toolbar shows a screen title.
type Toolbar struct {
	Base
	Title string
}

func (tb Toolbar) Equal(other Widget) bool { return EqualValue(tb, other) }

func (tb Toolbar) WithCallbacks(fn CallbackMapper) Widget {
	tb.Base = tb.Base.MapCallbacks(fn)
	return tb
}

func (tb Toolbar) Describe() []string {
	return []string{"title=" + strconv.Quote(tb.Title)}
}

// RadioGroup selects one of several options by id.
type RadioGroup struct {
	Base
	CheckedID       int
	OnCheckedChange *Handler[int]
}

func (r RadioGroup) Equal(other Widget) bool { return EqualValue(r, other) }

func (r RadioGroup) WithCallbacks(fn CallbackMapper) Widget {
	r.Base = r.Base.MapCallbacks(fn)
	r.OnCheckedChange = MapHandler(fn, "checkedChange", r.OnCheckedChange)
	return r
}

func (r RadioGroup) Describe() []string {
	return []string{"checkedId=" + strconv.Itoa(r.CheckedID)}
}
