// Package sched provides a deterministic timer loop for the simulation.
//
// A Loop keeps a virtual clock that only moves when the host calls Advance.
// Periodic and one-shot callbacks registered on the loop run synchronously
// inside Advance, one at a time, in due-time order. Nothing runs between
// calls to Advance, so callback bodies never overlap and state touched only
// from callbacks needs no locking. A Loop must be used from one goroutine.
package sched

import (
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the
	// timer; stopping an already stopped or fired one-shot timer is a no-op
	// that returns false.
	Stop() bool
}

// Scheduler registers callbacks against a clock.
type Scheduler interface {
	// Every runs fn each time interval elapses, first after one interval.
	Every(interval time.Duration, fn func()) Timer
	// After runs fn once when delay elapses.
	After(delay time.Duration, fn func()) Timer
}

// Loop is a Scheduler driven by a virtual clock.
type Loop struct {
	now       time.Duration
	seq       uint64
	timers    []*timer
	fired     uint64
	advancing bool
}

var _ Scheduler = (*Loop)(nil)

type timer struct {
	loop     *Loop
	seq      uint64        // Registration order, breaks ties between equal due times
	due      time.Duration // Virtual time of the next firing
	interval time.Duration // Zero for one-shot timers
	fn       func()
	stopped  bool
}

// NewLoop creates a loop with its clock at zero.
func NewLoop() *Loop {
	return &Loop{
		timers: make([]*timer, 0, 4),
	}
}

// Now returns the virtual time elapsed since the loop was created.
func (l *Loop) Now() time.Duration {
	return l.now
}

// Pending returns the number of live timers.
func (l *Loop) Pending() int {
	return len(l.timers)
}

// Fired returns the total number of callbacks run so far.
func (l *Loop) Fired() uint64 {
	return l.fired
}

// Every schedules fn to run every interval. Panics on a non-positive
// interval, like time.NewTicker.
func (l *Loop) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		panic("sched: non-positive interval for Every")
	}
	return l.add(interval, interval, fn)
}

// After schedules fn to run once after delay. A negative delay is treated
// as zero; the callback still waits for the next Advance.
func (l *Loop) After(delay time.Duration, fn func()) Timer {
	if delay < 0 {
		delay = 0
	}
	return l.add(delay, 0, fn)
}

func (l *Loop) add(delay, interval time.Duration, fn func()) *timer {
	l.seq++
	t := &timer{
		loop:     l,
		seq:      l.seq,
		due:      l.now + delay,
		interval: interval,
		fn:       fn,
	}
	l.timers = append(l.timers, t)
	return t
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way. Callbacks may register or stop timers; a timer that
// becomes due within the window runs in the same call. Advance must not be
// called from inside a callback.
func (l *Loop) Advance(d time.Duration) {
	if l.advancing {
		panic("sched: Advance called from a callback")
	}
	if d < 0 {
		d = 0
	}

	l.advancing = true
	defer func() { l.advancing = false }()

	target := l.now + d
	for {
		t := l.next(target)
		if t == nil {
			break
		}

		l.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			t.stopped = true
			l.remove(t)
		}

		l.fired++
		t.fn()
	}
	l.now = target
}

// next returns the earliest live timer due at or before target.
func (l *Loop) next(target time.Duration) *timer {
	var best *timer
	for _, t := range l.timers {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// remove drops a timer while preserving the order of the others.
func (l *Loop) remove(target *timer) {
	kept := l.timers[:0]
	for _, t := range l.timers {
		if t != target {
			kept = append(kept, t)
		}
	}
	// Clear the tail so dropped timers can be collected
	for i := len(kept); i < len(l.timers); i++ {
		l.timers[i] = nil
	}
	l.timers = kept
}

// Stop cancels the timer.
func (t *timer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.loop.remove(t)
	return true
}

// StopTimer stops t if it is non-nil. Convenience for optional handles.
func StopTimer(t Timer) {
	if t != nil {
		t.Stop()
	}
}
