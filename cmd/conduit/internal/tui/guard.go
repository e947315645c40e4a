package tui

import (
	"sync"

	"github.com/go-drift/conduit/pkg/presenter"
)

// Guard runs rebuild tasks on another executor. A task that panics stops
// the program through stop instead of killing the process with the
// terminal still in raw mode; Raise panics again once the program has
// exited.
type Guard struct {
	exec presenter.Executor
	stop func()

	mu      sync.Mutex
	failure any
	failed  bool
}

var _ presenter.Executor = (*Guard)(nil)

// NewGuard wraps exec. stop is called once, from the executor, after the
// first failed task.
func NewGuard(exec presenter.Executor, stop func()) *Guard {
	return &Guard{exec: exec, stop: stop}
}

// Execute schedules task on the wrapped executor.
func (g *Guard) Execute(task func()) {
	if task == nil {
		return
	}
	g.exec.Execute(func() {
		defer func() {
			if r := recover(); r != nil {
				g.fail(r)
			}
		}()
		task()
	})
}

// Concurrency returns the concurrency of the wrapped executor.
func (g *Guard) Concurrency() int { return g.exec.Concurrency() }

func (g *Guard) fail(r any) {
	g.mu.Lock()
	first := !g.failed
	if first {
		g.failed = true
		g.failure = r
	}
	g.mu.Unlock()
	if first && g.stop != nil {
		g.stop()
	}
}

// Raise panics with the value of the first failed task, if any.
func (g *Guard) Raise() {
	g.mu.Lock()
	failed, failure := g.failed, g.failure
	g.mu.Unlock()
	if failed {
		panic(failure)
	}
}
