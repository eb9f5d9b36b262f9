// SPDX-License-Identifier: Unlicense OR MIT

/*
Package runloop coalesces deferred work until a checkpoint.

A Task is committed to a Scheduler any number of times and runs once
at the next checkpoint. Loop runs tasks when its owner calls Flush,
typically right before rendering a frame; Immediate runs tasks
synchronously and suits tests and hosts without a frame loop.
*/
package runloop

import (
	"sync"
	"sync/atomic"
)

// Scheduler runs committed tasks at a checkpoint.
type Scheduler interface {
	// Commit schedules t. Committing a task that has not run yet
	// is a no-op.
	Commit(t *Task)
}

// Task is a unit of deferred work.
type Task struct {
	fn func()

	queued  atomic.Bool
	running bool
	again   bool
}

// Loop is a Scheduler that runs tasks in commit order when Flush is
// called. Commit and Queued are safe to call from other goroutines;
// Flush must be called from the goroutine that owns the committed
// tasks.
type Loop struct {
	// Wakeup, if set, is called when the first task of an empty
	// queue is committed. Hosts use it to schedule a Flush.
	Wakeup func()

	mu    sync.Mutex
	queue []*Task
}

// Immediate is a Scheduler that runs tasks during Commit. A task
// committed while it runs is run again after it returns. Tasks
// committed to Immediate must stay on a single goroutine.
type Immediate struct{}

// NewTask returns a task running fn.
func NewTask(fn func()) *Task {
	return &Task{fn: fn}
}

// Queued reports whether t is waiting for a checkpoint.
func (t *Task) Queued() bool {
	return t.queued.Load()
}

func (l *Loop) Commit(t *Task) {
	l.mu.Lock()
	if t.queued.Load() {
		l.mu.Unlock()
		return
	}
	t.queued.Store(true)
	l.queue = append(l.queue, t)
	wake := len(l.queue) == 1 && l.Wakeup != nil
	l.mu.Unlock()
	if wake {
		l.Wakeup()
	}
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Flush runs the queued tasks, including tasks committed while
// flushing, and returns how many ran.
func (l *Loop) Flush() int {
	n := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return n
		}
		t := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		t.queued.Store(false)
		l.mu.Unlock()
		t.fn()
		n++
	}
}

func (Immediate) Commit(t *Task) {
	if t.running {
		t.again = true
		return
	}
	t.running = true
	defer func() { t.running = false }()
	for {
		t.again = false
		t.fn()
		if !t.again {
			return
		}
	}
}
