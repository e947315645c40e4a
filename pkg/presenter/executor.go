package presenter

import "sync"

// Executor runs rebuild tasks. A presenter requires an executor that runs
// one task at a time, in submission order.
type Executor interface {
	// Execute schedules task. It must not block until task has run unless
	// it runs task inline.
	Execute(task func())

	// Concurrency returns the number of tasks the executor may run at the
	// same time.
	Concurrency() int
}

// SerialExecutor runs tasks one after another on a dedicated goroutine.
type SerialExecutor struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []func()
	closed bool
	done   chan struct{}
}

// NewSerialExecutor starts a SerialExecutor. Call Close to stop its
// goroutine.
func NewSerialExecutor() *SerialExecutor {
	e := &SerialExecutor{done: make(chan struct{})}
	e.cond = sync.NewCond(&e.mu)
	go e.loop()
	return e
}

// Execute appends task to the queue. Tasks submitted after Close are
// dropped.
func (e *SerialExecutor) Execute(task func()) {
	if task == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.tasks = append(e.tasks, task)
	e.cond.Signal()
}

// Concurrency returns 1.
func (e *SerialExecutor) Concurrency() int { return 1 }

// Close stops the executor after the running task finishes. Pending tasks
// are dropped. Close waits for the goroutine to exit and is safe to call
// more than once, but not from a task.
func (e *SerialExecutor) Close() {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		e.tasks = nil
		e.cond.Broadcast()
	}
	e.mu.Unlock()
	<-e.done
}

func (e *SerialExecutor) loop() {
	defer close(e.done)
	for {
		e.mu.Lock()
		for len(e.tasks) == 0 && !e.closed {
			e.cond.Wait()
		}
		if e.closed {
			e.mu.Unlock()
			return
		}
		task := e.tasks[0]
		e.tasks[0] = nil
		e.tasks = e.tasks[1:]
		e.mu.Unlock()

		task()
	}
}

type immediateExecutor struct{}

func (immediateExecutor) Execute(task func()) {
	if task != nil {
		task()
	}
}

func (immediateExecutor) Concurrency() int { return 1 }

// ImmediateExecutor runs each task inline on the goroutine that submits it.
// Renders then complete before SetState returns, which makes presenters
// deterministic in tests.
var ImmediateExecutor Executor = immediateExecutor{}
