package native

import "sync"

// Looper runs tasks on a host's UI thread. Every native view mutation
// performed by conduit goes through a Looper.
type Looper interface {
	// Post schedules task to run on the UI thread. It returns false if the
	// task cannot be scheduled, for example after the host shut down.
	Post(task func()) bool
}

// LooperFunc adapts a function to the Looper interface.
type LooperFunc func(task func()) bool

// Post calls f(task).
func (f LooperFunc) Post(task func()) bool {
	return f(task)
}

// Immediate runs tasks inline on the posting goroutine. It suits tests and
// hosts that call Render from their UI thread.
var Immediate Looper = LooperFunc(func(task func()) bool {
	if task == nil {
		return false
	}
	task()
	return true
})

// Queue is a Looper that holds tasks until Drain runs them. Tests use it to
// observe a render before it is applied.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// Post appends task to the queue.
func (q *Queue) Post(task func()) bool {
	if task == nil {
		return false
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()
	return true
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Drain runs pending tasks in order, including tasks posted while
// draining, and returns how many ran.
func (q *Queue) Drain() int {
	ran := 0
	for {
		q.mu.Lock()
		tasks := q.tasks
		q.tasks = nil
		q.mu.Unlock()
		if len(tasks) == 0 {
			return ran
		}
		for _, task := range tasks {
			task()
			ran++
		}
	}
}
