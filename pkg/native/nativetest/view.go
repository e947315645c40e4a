// Package nativetest provides an in-memory native view for tests.
package nativetest

import (
	"sync"

	"github.com/go-drift/conduit/pkg/native"
)

// View is an in-memory view implementing every capability of package
// native. User interaction is simulated with Click, TypeText, Check and Seek.
type View struct {
	ID   int64
	Type string
	Name string
	Kids []native.View

	mu        sync.Mutex
	enabled   bool
	visible   bool
	text      string
	hint      string
	maxLength int
	checked   bool
	progress  float64
	drawable  string

	onClick   func()
	onText    func(string)
	onChecked func(bool)
	onSeek    func(int)

	// Sets counts the property writes performed on the view.
	Sets int
}

// New returns an enabled, visible view.
func New(id int64, viewType string) *View {
	return &View{ID: id, Type: viewType, enabled: true, visible: true}
}

// Named returns an enabled, visible view with a name.
func Named(id int64, name string) *View {
	v := New(id, "view")
	v.Name = name
	return v
}

func (v *View) ViewID() int64           { return v.ID }
func (v *View) ViewType() string        { return v.Type }
func (v *View) ViewName() string        { return v.Name }
func (v *View) Children() []native.View { return v.Kids }

func (v *View) Enabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enabled
}

func (v *View) SetEnabled(enabled bool) {
	v.mu.Lock()
	v.enabled = enabled
	v.Sets++
	v.mu.Unlock()
}

func (v *View) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

func (v *View) SetVisible(visible bool) {
	v.mu.Lock()
	v.visible = visible
	v.Sets++
	v.mu.Unlock()
}

func (v *View) Clickable() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.onClick != nil
}

func (v *View) SetOnClick(fn func()) {
	v.mu.Lock()
	v.onClick = fn
	v.mu.Unlock()
}

func (v *View) Text() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.text
}

// SetText sets the text and notifies the text watcher, like a toolkit
// would.
func (v *View) SetText(text string) {
	v.mu.Lock()
	v.text = text
	v.Sets++
	fn := v.onText
	v.mu.Unlock()
	if fn != nil {
		fn(text)
	}
}

func (v *View) Hint() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.hint
}

func (v *View) SetHint(hint string) {
	v.mu.Lock()
	v.hint = hint
	v.Sets++
	v.mu.Unlock()
}

func (v *View) MaxLength() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.maxLength
}

func (v *View) SetMaxLength(n int) {
	v.mu.Lock()
	v.maxLength = n
	v.Sets++
	v.mu.Unlock()
}

func (v *View) SetOnTextChanged(fn func(string)) {
	v.mu.Lock()
	v.onText = fn
	v.mu.Unlock()
}

func (v *View) Checked() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.checked
}

// SetChecked sets the state and notifies the listener.
func (v *View) SetChecked(checked bool) {
	v.mu.Lock()
	v.checked = checked
	v.Sets++
	fn := v.onChecked
	v.mu.Unlock()
	if fn != nil {
		fn(checked)
	}
}

func (v *View) SetOnCheckedChanged(fn func(bool)) {
	v.mu.Lock()
	v.onChecked = fn
	v.mu.Unlock()
}

func (v *View) Progress() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.progress
}

func (v *View) SetProgress(progress float64) {
	v.mu.Lock()
	v.progress = progress
	v.Sets++
	v.mu.Unlock()
}

func (v *View) SetOnSeek(fn func(int)) {
	v.mu.Lock()
	v.onSeek = fn
	v.mu.Unlock()
}

func (v *View) Drawable() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.drawable
}

func (v *View) SetDrawable(name string) {
	v.mu.Lock()
	v.drawable = name
	v.Sets++
	v.mu.Unlock()
}

// Click simulates a click. It reports whether a listener ran; disabled
// views ignore clicks.
func (v *View) Click() bool {
	v.mu.Lock()
	fn := v.onClick
	enabled := v.enabled
	v.mu.Unlock()
	if fn == nil || !enabled {
		return false
	}
	fn()
	return true
}

// TypeText simulates the user replacing the text.
func (v *View) TypeText(text string) {
	v.SetText(text)
}

// Check simulates the user toggling the view.
func (v *View) Check(checked bool) {
	v.SetChecked(checked)
}

// Seek simulates the user dragging to position (0..100).
func (v *View) Seek(position int) {
	v.mu.Lock()
	v.progress = float64(position) / 100
	fn := v.onSeek
	v.mu.Unlock()
	if fn != nil {
		fn(position)
	}
}

var (
	_ native.Parent        = (*View)(nil)
	_ native.Enabler       = (*View)(nil)
	_ native.Shower        = (*View)(nil)
	_ native.Clicker       = (*View)(nil)
	_ native.TextView      = (*View)(nil)
	_ native.HintView      = (*View)(nil)
	_ native.TextWatcher   = (*View)(nil)
	_ native.LengthLimiter = (*View)(nil)
	_ native.Checkable     = (*View)(nil)
	_ native.Seekable      = (*View)(nil)
	_ native.ImageView     = (*View)(nil)
	_ native.Named         = (*View)(nil)
)
