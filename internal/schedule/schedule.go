// SPDX-License-Identifier: MIT

// Package schedule runs delayed callbacks that can be cancelled by their owner.
package schedule

import (
	"sort"
	"sync"
	"time"
)

// Task is a pending delayed callback
type Task interface {
	// Cancel stops the task. It reports whether the call prevented the
	// callback from running.
	Cancel() bool
}

// Scheduler runs fn once after d has elapsed
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// Real schedules on the runtime timer. Callbacks run on their own goroutine.
type Real struct{}

// After implements Scheduler
func (Real) After(d time.Duration, fn func()) Task {
	return realTask{timer: time.AfterFunc(d, fn)}
}

type realTask struct {
	timer *time.Timer
}

func (t realTask) Cancel() bool {
	return t.timer.Stop()
}

// Manual is a Scheduler driven by Advance. Callbacks run synchronously on the
// goroutine calling Advance, in due-time order.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	owner    *Manual
	due      time.Duration
	seq      int
	fn       func()
	finished bool
}

// NewManual creates a manual scheduler at time zero
func NewManual() *Manual {
	return &Manual{}
}

// After implements Scheduler
func (m *Manual) After(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTask{owner: m, due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward and runs every task that became due,
// including tasks scheduled by callbacks within the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		next.finished = true
		m.removeLocked(next)
		m.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of tasks that have neither run nor been cancelled
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (m *Manual) nextDueLocked(target time.Duration) *manualTask {
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due == m.tasks[j].due {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].due < m.tasks[j].due
	})
	if m.tasks[0].due > target {
		return nil
	}
	return m.tasks[0]
}

func (m *Manual) removeLocked(t *manualTask) {
	for i, task := range m.tasks {
		if task == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

func (t *manualTask) Cancel() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.finished {
		return false
	}
	t.finished = true
	t.owner.removeLocked(t)
	return true
}
