package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/conduit/pkg/native"
)

// element is a native view the Screen can lay out and focus. All methods
// run on the bubbletea event loop.
type element interface {
	native.View
	native.Named
	native.Shower
	focusable() bool
	handleKey(msg tea.KeyMsg) bool
	render(st *styles, focused bool) string
}

// base implements the capabilities every terminal view has.
type base struct {
	id      int64
	typ     string
	name    string
	enabled bool
	visible bool
	onClick func()
}

func newBase(id int64, typ, name string) base {
	return base{id: id, typ: typ, name: name, enabled: true, visible: true}
}

func (b *base) ViewID() int64           { return b.id }
func (b *base) ViewType() string        { return b.typ }
func (b *base) ViewName() string        { return b.name }
func (b *base) Enabled() bool           { return b.enabled }
func (b *base) SetEnabled(enabled bool) { b.enabled = enabled }
func (b *base) Visible() bool           { return b.visible }
func (b *base) SetVisible(visible bool) { b.visible = visible }
func (b *base) Clickable() bool         { return b.onClick != nil }
func (b *base) SetOnClick(fn func())    { b.onClick = fn }
func (b *base) interactive() bool       { return b.enabled && b.visible }
func (b *base) focusable() bool         { return b.interactive() && b.onClick != nil }

// click runs the click listener for enter and space.
func (b *base) click(msg tea.KeyMsg) bool {
	if !isPress(msg) || !b.interactive() || b.onClick == nil {
		return false
	}
	b.onClick()
	return true
}

func (b *base) handleKey(msg tea.KeyMsg) bool { return b.click(msg) }

func isPress(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace
}

func marker(focused bool) string {
	if focused {
		return "› "
	}
	return "  "
}

// Label shows text.
type Label struct {
	base
	text      string
	maxLength int
}

func (l *Label) Text() string        { return l.text }
func (l *Label) SetText(text string) { l.text = truncate(text, l.maxLength) }
func (l *Label) MaxLength() int      { return l.maxLength }
func (l *Label) SetMaxLength(n int) {
	l.maxLength = n
	l.text = truncate(l.text, n)
}

func (l *Label) render(st *styles, focused bool) string {
	s := st.label
	if focused {
		s = st.focused
	}
	return marker(focused) + s.Render(l.text)
}

// Button is a clickable label.
type Button struct {
	base
	text string
}

func (b *Button) Text() string        { return b.text }
func (b *Button) SetText(text string) { b.text = text }

func (b *Button) render(st *styles, focused bool) string {
	s := st.button
	switch {
	case !b.enabled:
		s = s.Foreground(colorOverlay0)
	case focused:
		s = s.Foreground(colorLavender).Bold(true)
	}
	return marker(focused) + s.Render(b.text)
}

// Input is an editable single line of text. Typing notifies the text
// watcher; SetText does not.
type Input struct {
	base
	text      string
	hint      string
	maxLength int
	onText    func(string)
}

func (in *Input) Text() string        { return in.text }
func (in *Input) SetText(text string) { in.text = truncate(text, in.maxLength) }
func (in *Input) Hint() string        { return in.hint }
func (in *Input) SetHint(hint string) { in.hint = hint }
func (in *Input) MaxLength() int      { return in.maxLength }
func (in *Input) SetMaxLength(n int) {
	in.maxLength = n
	in.text = truncate(in.text, n)
}
func (in *Input) SetOnTextChanged(fn func(string)) { in.onText = fn }
func (in *Input) focusable() bool                  { return in.interactive() }

func (in *Input) handleKey(msg tea.KeyMsg) bool {
	if !in.interactive() {
		return false
	}
	text := in.text
	switch msg.Type {
	case tea.KeyRunes:
		text += string(msg.Runes)
	case tea.KeySpace:
		text += " "
	case tea.KeyBackspace:
		if text == "" {
			return true
		}
		_, size := utf8.DecodeLastRuneInString(text)
		text = text[:len(text)-size]
	case tea.KeyEnter:
		return in.click(msg)
	default:
		return false
	}
	text = truncate(text, in.maxLength)
	if text != in.text {
		in.text = text
		if in.onText != nil {
			in.onText(text)
		}
	}
	return true
}

func (in *Input) render(st *styles, focused bool) string {
	var body string
	if in.text == "" {
		body = st.hint.Render(in.hint)
	} else {
		body = st.label.Render(in.text)
	}
	if focused {
		body += st.focused.Render("▏")
	}
	return marker(focused) + "[" + body + "]"
}

// Check is a switch or a check box.
type Check struct {
	base
	text      string
	checked   bool
	onChecked func(bool)
}

func (c *Check) Text() string                      { return c.text }
func (c *Check) SetText(text string)               { c.text = text }
func (c *Check) Checked() bool                     { return c.checked }
func (c *Check) SetChecked(checked bool)           { c.checked = checked }
func (c *Check) SetOnCheckedChanged(fn func(bool)) { c.onChecked = fn }
func (c *Check) focusable() bool                   { return c.interactive() }

func (c *Check) handleKey(msg tea.KeyMsg) bool {
	if !isPress(msg) || !c.interactive() {
		return false
	}
	c.checked = !c.checked
	if c.onChecked != nil {
		c.onChecked(c.checked)
	}
	if c.onClick != nil {
		c.onClick()
	}
	return true
}

func (c *Check) render(st *styles, focused bool) string {
	var box string
	switch {
	case c.typ == "switch" && c.checked:
		box = "(●  )"
	case c.typ == "switch":
		box = "(  ○)"
	case c.checked:
		box = "[x]"
	default:
		box = "[ ]"
	}
	s := st.label
	switch {
	case !c.enabled:
		s = st.disabled
	case focused:
		s = st.focused
	}
	return marker(focused) + s.Render(strings.TrimSpace(box+" "+c.text))
}

const barWidth = 20

// Bar shows a fraction as a progress bar.
type Bar struct {
	base
	progress float64
	onSeek   func(int)
}

func (p *Bar) Progress() float64 { return p.progress }

func (p *Bar) SetProgress(progress float64) {
	p.progress = math.Max(0, math.Min(1, progress))
}

func (p *Bar) render(st *styles, focused bool) string {
	filled := int(math.Round(p.progress * barWidth))
	bar := st.barFull.Render(strings.Repeat("█", filled)) +
		st.barEmpty.Render(strings.Repeat("░", barWidth-filled))
	return marker(focused) + bar + fmt.Sprintf(" %3d%%", int(math.Round(p.progress*100)))
}

// SeekBar is a Bar the user can move in steps of ten with the left and
// right keys.
type SeekBar struct {
	Bar
}

func (s *SeekBar) SetOnSeek(fn func(int)) { s.onSeek = fn }
func (s *SeekBar) focusable() bool        { return s.interactive() }

func (s *SeekBar) handleKey(msg tea.KeyMsg) bool {
	if !s.interactive() {
		return false
	}
	pos := int(math.Round(s.progress * 100))
	switch msg.String() {
	case "left", "h":
		pos = max(0, pos-10)
	case "right", "l":
		pos = min(100, pos+10)
	default:
		return s.click(msg)
	}
	s.progress = float64(pos) / 100
	if s.onSeek != nil {
		s.onSeek(pos)
	}
	return true
}

// Image shows a drawable as colored half blocks.
type Image struct {
	base
	drawable  string
	drawables *Drawables
}

func (im *Image) Drawable() string        { return im.drawable }
func (im *Image) SetDrawable(name string) { im.drawable = name }

func (im *Image) render(st *styles, focused bool) string {
	if im.drawable == "" {
		return ""
	}
	lines, err := im.drawables.Thumbnail(im.drawable)
	if err != nil {
		return marker(focused) + st.disabled.Render("[image: "+im.drawable+"]")
	}
	prefix := marker(focused)
	pad := strings.Repeat(" ", utf8.RuneCountInString(prefix))
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func truncate(text string, n int) string {
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n])
}

var (
	_ native.Clicker       = (*Button)(nil)
	_ native.TextView      = (*Button)(nil)
	_ native.TextView      = (*Label)(nil)
	_ native.LengthLimiter = (*Label)(nil)
	_ native.HintView      = (*Input)(nil)
	_ native.TextWatcher   = (*Input)(nil)
	_ native.LengthLimiter = (*Input)(nil)
	_ native.Checkable     = (*Check)(nil)
	_ native.Seekable      = (*SeekBar)(nil)
	_ native.ImageView     = (*Image)(nil)
	_ native.Enabler       = (*Image)(nil)

	_ element = (*Label)(nil)
	_ element = (*Button)(nil)
	_ element = (*Input)(nil)
	_ element = (*Check)(nil)
	_ element = (*Bar)(nil)
	_ element = (*SeekBar)(nil)
	_ element = (*Image)(nil)
)
