package tui

import (
	"github.com/go-drift/conduit/cmd/conduit/internal/sample"
	"github.com/go-drift/conduit/pkg/native"
	"github.com/go-drift/conduit/pkg/presenter"
	"github.com/go-drift/conduit/pkg/render"
)

// View is the presenter view of the terminal host. It renders through a
// Renderer and shows toasts on the Screen.
type View struct {
	*render.Renderer
	screen *Screen
	looper native.Looper
}

var (
	_ presenter.View     = (*View)(nil)
	_ presenter.Detacher = (*View)(nil)
	_ sample.Toaster     = (*View)(nil)
	_ sample.Host        = (*Screen)(nil)
)

// NewView returns a view rendering through r. Toasts are posted to looper.
func NewView(r *render.Renderer, screen *Screen, looper native.Looper) *View {
	return &View{Renderer: r, screen: screen, looper: looper}
}

// Toast shows message on the screen. It may be called from any goroutine.
func (v *View) Toast(message string) {
	v.looper.Post(func() { v.screen.Toast(message) })
}
