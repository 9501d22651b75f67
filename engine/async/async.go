// Package async runs background work for collaborators that must not block
// the frame thread.
//
// Tasks execute on worker goroutines. Completion is observed by polling a
// Result from the frame thread; the executor never calls back into engine
// state on its own, so frame-thread ownership of game data is preserved.
package async

import "sync"

// FailureHandler receives errors the engine considers fatal.
type FailureHandler func(error)

// Outcome is the finished value of a task.
type Outcome struct {
	Value any
	Err   error
}

// Result is the frame-thread handle for a submitted task.
type Result struct {
	done chan Outcome

	mu   sync.Mutex
	out  Outcome
	read bool
}

// Poll reports whether the task has finished, without blocking.
// Once it returns true it keeps returning the same outcome.
func (r *Result) Poll() (Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.read {
		return r.out, true
	}
	select {
	case out := <-r.done:
		r.out = out
		r.read = true
		return out, true
	default:
		return Outcome{}, false
	}
}

// Executor owns a fixed pool of worker goroutines.
type Executor struct {
	tasks chan func()
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewExecutor starts an executor with the given number of workers.
func NewExecutor(workers int) *Executor {
	if workers <= 0 {
		workers = 2
	}
	e := &Executor{tasks: make(chan func(), 16)}
	e.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go e.worker()
	}
	return e
}

func (e *Executor) worker() {
	defer e.wg.Done()
	for fn := range e.tasks {
		fn()
	}
}

// Submit schedules fn on a worker and returns a pollable Result.
// After Shutdown the task runs inline on the caller.
func (e *Executor) Submit(fn func() (any, error)) *Result {
	r := &Result{done: make(chan Outcome, 1)}
	run := func() {
		v, err := fn()
		r.done <- Outcome{Value: v, Err: err}
	}

	e.mu.Lock()
	closed := e.closed
	if !closed {
		e.tasks <- run
	}
	e.mu.Unlock()

	if closed {
		run()
	}
	return r
}

// Shutdown stops accepting work and waits for in-flight tasks.
func (e *Executor) Shutdown() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.tasks)
	e.mu.Unlock()

	e.wg.Wait()
}
