package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/conduit/pkg/native"
)

// taskMsg carries a posted task to the bubbletea event loop.
type taskMsg struct {
	run func()
}

// Looper posts tasks to the bubbletea event loop, which is the UI thread
// of the terminal host.
type Looper struct {
	send   func(tea.Msg)
	closed atomic.Bool
}

var _ native.Looper = (*Looper)(nil)

// NewLooper returns a looper delivering tasks through send, usually
// (*tea.Program).Send.
func NewLooper(send func(tea.Msg)) *Looper {
	return &Looper{send: send}
}

// Post schedules task. It returns false after Close.
func (l *Looper) Post(task func()) bool {
	if task == nil || l.closed.Load() {
		return false
	}
	l.send(taskMsg{run: task})
	return true
}

// Close makes later Post calls fail.
func (l *Looper) Close() { l.closed.Store(true) }
