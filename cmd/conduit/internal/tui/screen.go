package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/conduit/pkg/native"
)

// Screen is the root native view. It lays out its children top to bottom,
// moves the focus between them and shows alerts and toasts above them.
// All methods must run on the bubbletea event loop.
type Screen struct {
	title    string
	elements []element
	focus    int
	width    int
	styles   styles

	alert     string
	showAlert bool
	onDismiss func()
	toast     string
}

var (
	_ native.View   = (*Screen)(nil)
	_ native.Parent = (*Screen)(nil)
)

// NewScreen returns an empty screen.
func NewScreen(title string) *Screen {
	return &Screen{title: title, focus: -1, styles: newStyles()}
}

// ViewID returns 0, which keeps the screen out of automatic binding.
func (s *Screen) ViewID() int64    { return 0 }
func (s *Screen) ViewType() string { return "screen" }

func (s *Screen) Children() []native.View {
	out := make([]native.View, len(s.elements))
	for i, e := range s.elements {
		out[i] = e
	}
	return out
}

// Add appends v. Only views created by this package's factories can be
// added.
func (s *Screen) Add(v native.View) error {
	e, ok := v.(element)
	if !ok {
		return fmt.Errorf("screen: %s view %d is not a terminal view", v.ViewType(), v.ViewID())
	}
	s.elements = append(s.elements, e)
	return nil
}

// SetWidth sets the width the screen renders at.
func (s *Screen) SetWidth(width int) { s.width = width }

// Focused returns the focused view, or nil.
func (s *Screen) Focused() native.View {
	if e := s.focused(); e != nil {
		return e
	}
	return nil
}

func (s *Screen) focused() element {
	if s.focus < 0 || s.focus >= len(s.elements) {
		return nil
	}
	e := s.elements[s.focus]
	if !e.focusable() {
		return nil
	}
	return e
}

// Editing reports whether an input has the focus, so plain keys are text.
func (s *Screen) Editing() bool {
	_, ok := s.focused().(*Input)
	return ok && !s.showAlert
}

// FocusNext moves the focus forward (dir > 0) or backward to the next
// focusable view, wrapping around.
func (s *Screen) FocusNext(dir int) {
	n := len(s.elements)
	if n == 0 {
		return
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	i := s.focus
	if i < 0 && step < 0 {
		i = n
	}
	for range n {
		i = ((i+step)%n + n) % n
		if s.elements[i].focusable() {
			s.focus = i
			return
		}
	}
	s.focus = -1
}

// HandleKey routes msg to the alert or the focused view and reports
// whether it was consumed.
func (s *Screen) HandleKey(msg tea.KeyMsg) bool {
	s.toast = ""
	if s.showAlert {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc, tea.KeySpace:
			onDismiss := s.onDismiss
			s.DismissAlert()
			if onDismiss != nil {
				onDismiss()
			}
		}
		return true
	}
	switch msg.String() {
	case "tab", "down":
		s.FocusNext(1)
		return true
	case "shift+tab", "up":
		s.FocusNext(-1)
		return true
	}
	if e := s.focused(); e != nil {
		return e.handleKey(msg)
	}
	return false
}

// ShowAlert shows message above the views. Enter or escape dismisses it
// and calls onDismiss.
func (s *Screen) ShowAlert(message string, onDismiss func()) {
	s.alert = message
	s.showAlert = true
	s.onDismiss = onDismiss
}

// DismissAlert hides the alert without calling its dismiss listener.
func (s *Screen) DismissAlert() {
	s.alert = ""
	s.showAlert = false
	s.onDismiss = nil
}

// AlertShown returns the message of the alert on screen.
func (s *Screen) AlertShown() (string, bool) { return s.alert, s.showAlert }

// Toast shows message until the next key press.
func (s *Screen) Toast(message string) { s.toast = message }

// Render draws the screen.
func (s *Screen) Render() string {
	var b strings.Builder
	if s.title != "" {
		b.WriteString(s.styles.title.Render(s.title))
		b.WriteString("\n")
	}
	focused := s.focused()
	for _, e := range s.elements {
		if !e.Visible() {
			continue
		}
		line := e.render(&s.styles, e == focused && !s.showAlert)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if s.showAlert {
		box := s.styles.alert
		if s.width > 4 {
			box = box.MaxWidth(s.width)
		}
		b.WriteString("\n")
		b.WriteString(box.Render(s.alert + "\n\n" + s.styles.hint.Render("enter: ok")))
		b.WriteString("\n")
	}
	if s.toast != "" {
		b.WriteString(s.styles.toast.Render(s.toast))
		b.WriteString("\n")
	}
	b.WriteString(s.styles.help.Render("tab: next • enter: press • ←/→: seek • ctrl+c: quit"))
	out := b.String()
	if s.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(s.width).Render(out)
	}
	return out
}
