// Package mainthread provides the single main-thread executor the rest
// of this service requires: every accessibility-tree read/write, every
// input-event post, and every screen-capture call must appear to the OS
// as originating from one consistent thread. This is built from the
// standard runtime.LockOSThread + unbuffered-channel idiom; see
// DESIGN.md.
package mainthread

import "runtime"

// Executor runs submitted work on one dedicated, locked OS thread,
// serializing every call into the platform adapters that require it.
type Executor struct {
	work chan func()
	done chan struct{}
}

// New starts the executor's dedicated goroutine and locks it to its OS
// thread until Stop is called.
func New() *Executor {
	e := &Executor{
		work: make(chan func()),
		done: make(chan struct{}),
	}
	go e.run()
	return e
}

func (e *Executor) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		select {
		case fn := <-e.work:
			fn()
		case <-e.done:
			return
		}
	}
}

// Do submits fn and blocks until it has run on the main thread, returning
// whatever error fn produced.
func (e *Executor) Do(fn func() error) error {
	errCh := make(chan error, 1)
	e.work <- func() {
		errCh <- fn()
	}
	return <-errCh
}

// Stop terminates the executor's goroutine. It does not wait for
// in-flight Do calls; callers should not invoke Do concurrently with
// Stop.
func (e *Executor) Stop() {
	close(e.done)
}
