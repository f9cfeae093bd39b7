// Package schedule provides the simulation clock of one playthrough.
//
// Every periodic or delayed callback of a playthrough is registered here and
// runs on the game loop's goroutine when the clock is advanced. Stop cancels
// all of them at once, so no callback survives the playthrough that created it.
package schedule

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled task. The zero Handle is never issued.
type Handle uint64

type task struct {
	id       Handle
	due      time.Duration
	period   time.Duration
	fn       func()
	canceled bool
	index    int
}

// Scheduler runs tasks against a simulated clock.
// Tasks due at the same instant run in registration order.
type Scheduler struct {
	now     time.Duration
	queue   taskQueue
	tasks   map[Handle]*task
	next    Handle
	stopped bool
}

// New creates a scheduler with its clock at zero
func New() *Scheduler {
	return &Scheduler{tasks: make(map[Handle]*task)}
}

// Now returns the simulated time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every runs fn each period, first one period from now.
// A non-positive period panics.
func (s *Scheduler) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		panic("schedule: non-positive period")
	}
	return s.add(period, period, fn)
}

// After runs fn once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

func (s *Scheduler) add(delay, period time.Duration, fn func()) Handle {
	if s.stopped {
		return 0
	}
	s.next++
	t := &task{id: s.next, due: s.now + delay, period: period, fn: fn}
	s.tasks[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

// Cancel removes a task. Canceling an unknown or finished task is a no-op.
func (s *Scheduler) Cancel(h Handle) {
	t, ok := s.tasks[h]
	if !ok {
		return
	}
	t.canceled = true
	delete(s.tasks, h)
	if t.index >= 0 && t.index < len(s.queue) && s.queue[t.index] == t {
		heap.Remove(&s.queue, t.index)
	}
}

// Pending returns the number of live tasks
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Stopped reports whether Stop was called
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Advance moves the clock forward by d and runs every task that falls due,
// each with the clock set to its due time.
func (s *Scheduler) Advance(d time.Duration) {
	if s.stopped {
		return
	}
	target := s.now + d
	for !s.stopped && s.queue.Len() > 0 {
		t := s.queue[0]
		if t.canceled {
			heap.Pop(&s.queue)
			continue
		}
		if t.due > target {
			break
		}
		s.now = t.due
		if t.period > 0 {
			t.due += t.period
			heap.Fix(&s.queue, 0)
		} else {
			heap.Pop(&s.queue)
			delete(s.tasks, t.id)
		}
		t.fn()
	}
	if !s.stopped {
		s.now = target
	}
}

// Stop cancels every task exactly once and freezes the clock.
// Later registrations are ignored.
func (s *Scheduler) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	for id, t := range s.tasks {
		t.canceled = true
		delete(s.tasks, id)
	}
	s.queue = nil
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].id < q[j].id
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
