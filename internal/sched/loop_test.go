package sched

import (
	"reflect"
	"testing"
	"time"
)

func TestEveryFiresOnCadence(t *testing.T) {
	l := NewLoop()
	count := 0
	l.Every(16*time.Millisecond, func() { count++ })

	l.Advance(15 * time.Millisecond)
	if count != 0 {
		t.Fatalf("periodic timer should not fire before one interval, fired %d", count)
	}

	l.Advance(1 * time.Millisecond)
	if count != 1 {
		t.Fatalf("periodic timer should fire at one interval, fired %d", count)
	}

	l.Advance(160 * time.Millisecond)
	if count != 11 {
		t.Errorf("expected 11 firings after 176ms, got %d", count)
	}
	if l.Now() != 176*time.Millisecond {
		t.Errorf("Now() = %v, expected 176ms", l.Now())
	}
}

func TestAfterFiresOnce(t *testing.T) {
	l := NewLoop()
	count := 0
	l.After(time.Second, func() { count++ })

	l.Advance(999 * time.Millisecond)
	if count != 0 {
		t.Fatal("one-shot should not fire early")
	}
	l.Advance(5 * time.Second)
	if count != 1 {
		t.Errorf("one-shot should fire exactly once, fired %d", count)
	}
	if l.Pending() != 0 {
		t.Errorf("fired one-shot should be removed, pending %d", l.Pending())
	}
}

func TestCallbacksRunInDueOrder(t *testing.T) {
	l := NewLoop()
	var order []string

	l.Every(30*time.Millisecond, func() { order = append(order, "every30") })
	l.After(45*time.Millisecond, func() { order = append(order, "after45") })
	l.After(30*time.Millisecond, func() { order = append(order, "after30") })

	l.Advance(60 * time.Millisecond)

	expected := []string{"every30", "after30", "after45", "every30"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("order = %v, expected %v", order, expected)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	l := NewLoop()
	count := 0
	timer := l.Every(10*time.Millisecond, func() { count++ })

	if !timer.Stop() {
		t.Error("first Stop should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}

	l.Advance(100 * time.Millisecond)
	if count != 0 {
		t.Errorf("stopped timer fired %d times", count)
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", l.Pending())
	}
}

func TestStopAfterFiredOneShot(t *testing.T) {
	l := NewLoop()
	timer := l.After(time.Millisecond, func() {})
	l.Advance(time.Millisecond)

	if timer.Stop() {
		t.Error("Stop on a fired one-shot should report false")
	}
}

func TestCallbackCanStopOtherTimer(t *testing.T) {
	l := NewLoop()
	fired := false
	var victim Timer
	l.After(5*time.Millisecond, func() { victim.Stop() })
	victim = l.After(10*time.Millisecond, func() { fired = true })

	l.Advance(20 * time.Millisecond)
	if fired {
		t.Error("timer stopped by an earlier callback should not fire")
	}
}

func TestCallbackCanStopItself(t *testing.T) {
	l := NewLoop()
	count := 0
	var self Timer
	self = l.Every(10*time.Millisecond, func() {
		count++
		if count == 3 {
			self.Stop()
		}
	})

	l.Advance(time.Second)
	if count != 3 {
		t.Errorf("self-stopping timer fired %d times, expected 3", count)
	}
}

func TestTimerRegisteredInCallbackRunsInSameAdvance(t *testing.T) {
	l := NewLoop()
	var order []time.Duration
	l.After(10*time.Millisecond, func() {
		order = append(order, l.Now())
		l.After(5*time.Millisecond, func() { order = append(order, l.Now()) })
	})

	l.Advance(20 * time.Millisecond)

	expected := []time.Duration{10 * time.Millisecond, 15 * time.Millisecond}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("fired at %v, expected %v", order, expected)
	}
}

func TestAdvanceFromCallbackPanics(t *testing.T) {
	l := NewLoop()
	l.After(time.Millisecond, func() { l.Advance(time.Millisecond) })

	defer func() {
		if recover() == nil {
			t.Error("re-entrant Advance should panic")
		}
	}()
	l.Advance(time.Millisecond)
}

func TestEveryRejectsNonPositiveInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every(0) should panic")
		}
	}()
	NewLoop().Every(0, func() {})
}

func TestStopTimerNil(t *testing.T) {
	StopTimer(nil) // Should not panic

	l := NewLoop()
	timer := l.After(time.Millisecond, func() {})
	StopTimer(timer)
	if l.Pending() != 0 {
		t.Error("StopTimer should stop the timer")
	}
}

func TestFiredCounter(t *testing.T) {
	l := NewLoop()
	l.Every(10*time.Millisecond, func() {})
	l.After(5*time.Millisecond, func() {})

	l.Advance(30 * time.Millisecond)
	if l.Fired() != 4 {
		t.Errorf("Fired() = %d, expected 4", l.Fired())
	}
}
