package marquee

import (
	"sort"
	"time"
)

// Clock is the time source used for timers and auto-scroll pacing.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to. Useful for driving a
// Document deterministically in tests and scripted runs.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a ManualClock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// --- Timers ---

type timer struct {
	id       uint32
	due      time.Time
	fn       func()
	canceled bool
}

// timerQueue holds pending one-shot callbacks. Timers only fire from
// fireDue, which the Document calls once per frame on the loop goroutine.
type timerQueue struct {
	pending []*timer
	firing  []*timer
	nextID  uint32
}

func (q *timerQueue) schedule(due time.Time, fn func()) TimerHandle {
	q.nextID++
	t := &timer{id: q.nextID, due: due, fn: fn}
	q.pending = append(q.pending, t)
	return TimerHandle{id: t.id, q: q}
}

func (q *timerQueue) cancel(id uint32) bool {
	for i, t := range q.pending {
		if t.id == id {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = nil
			q.pending = q.pending[:len(q.pending)-1]
			return true
		}
	}
	// A timer due in the batch being fired can still be canceled by an
	// earlier callback of the same batch.
	for _, t := range q.firing {
		if t.id == id && !t.canceled {
			t.canceled = true
			return true
		}
	}
	return false
}

// fireDue runs every timer due at or before now, earliest first. Timers
// scheduled by a callback are not considered until the next call.
func (q *timerQueue) fireDue(now time.Time) int {
	var due []*timer
	kept := q.pending[:0]
	for _, t := range q.pending {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(q.pending); i++ {
		q.pending[i] = nil
	}
	q.pending = kept
	sort.SliceStable(due, func(a, b int) bool { return due[a].due.Before(due[b].due) })
	q.firing = due
	fired := 0
	for _, t := range due {
		if t.canceled {
			continue
		}
		t.canceled = true
		t.fn()
		fired++
	}
	q.firing = nil
	return fired
}

func (q *timerQueue) has(id uint32) bool {
	for _, t := range q.pending {
		if t.id == id {
			return true
		}
	}
	return false
}

func (q *timerQueue) len() int {
	return len(q.pending)
}

// TimerHandle is the cancellation token for a scheduled callback. The zero
// value is an inactive handle.
type TimerHandle struct {
	id uint32
	q  *timerQueue
}

// Cancel removes the timer if it has not fired yet. Reports whether a
// pending timer was removed.
func (h TimerHandle) Cancel() bool {
	if h.q == nil {
		return false
	}
	return h.q.cancel(h.id)
}

// Active reports whether the timer is still waiting to fire.
func (h TimerHandle) Active() bool {
	return h.q != nil && h.q.has(h.id)
}
