package shooter

import (
	"slices"
	"testing"
	"time"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()
	var fired []string
	s.Every("a", 30*time.Millisecond, func() { fired = append(fired, "a") })
	s.Every("b", 20*time.Millisecond, func() { fired = append(fired, "b") })

	s.Advance(60 * time.Millisecond)

	// b@20 a@30 b@40 a@60 b@60; ties go to the timer armed first
	want := []string{"b", "a", "b", "a", "b"}
	if !slices.Equal(fired, want) {
		t.Errorf("fired %v, expected %v", fired, want)
	}
	if s.Now() != 60*time.Millisecond {
		t.Errorf("Now() = %v, expected 60ms", s.Now())
	}
}

func TestSchedulerClockInsideCallback(t *testing.T) {
	s := NewScheduler()
	var seen []time.Duration
	s.Every("t", 100*time.Millisecond, func() { seen = append(seen, s.Now()) })

	s.Advance(250 * time.Millisecond)
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	if !slices.Equal(seen, want) {
		t.Errorf("callback saw %v, expected %v", seen, want)
	}
	if r := s.Remaining("t"); r != 50*time.Millisecond {
		t.Errorf("Remaining() = %v, expected 50ms", r)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Every("t", 10*time.Millisecond, func() {
		count++
		if count == 3 {
			s.Cancel("t")
		}
	})

	s.Advance(time.Second)
	if count != 3 {
		t.Errorf("timer fired %d times, expected 3", count)
	}
	if s.Pending("t") {
		t.Error("cancelled timer still pending")
	}
	if s.Cancel("t") {
		t.Error("second Cancel should report false")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Every("a", time.Millisecond, func() { fired = true })
	s.Every("b", time.Millisecond, func() { fired = true })

	s.CancelAll()
	s.Advance(time.Second)
	if fired || s.Len() != 0 {
		t.Error("CancelAll should leave nothing able to fire")
	}
}

func TestSchedulerEveryReplaces(t *testing.T) {
	s := NewScheduler()
	first, second := 0, 0
	s.Every("t", 10*time.Millisecond, func() { first++ })
	s.Advance(5 * time.Millisecond)
	s.Every("t", 10*time.Millisecond, func() { second++ })

	s.Advance(9 * time.Millisecond)
	if first != 0 || second != 0 {
		t.Errorf("re-armed timer should restart its period, got first=%d second=%d", first, second)
	}
	s.Advance(time.Millisecond)
	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d, expected 0 and 1", first, second)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestSchedulerIgnoresBadInput(t *testing.T) {
	s := NewScheduler()
	s.Every("zero", 0, func() {})
	s.Every("neg", -time.Second, func() {})
	s.Every("nil", time.Second, nil)
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}

	s.Advance(-time.Second)
	if s.Now() != 0 {
		t.Error("negative Advance should not move the clock")
	}
}

func TestSchedulerStatesRestore(t *testing.T) {
	s := NewScheduler()
	s.Every("slow", 300*time.Millisecond, func() {})
	s.Every("fast", 100*time.Millisecond, func() {})
	s.Advance(150 * time.Millisecond)

	states := s.States()
	if len(states) != 2 || states[0].Name != "fast" || states[1].Name != "slow" {
		t.Fatalf("States() = %+v", states)
	}

	r := NewScheduler()
	hits := 0
	r.restore(s.Now(), states, func(name string) func() {
		if name == "fast" {
			return func() { hits++ }
		}
		return nil
	})
	if r.Len() != 1 {
		t.Errorf("unknown callbacks should be dropped, Len() = %d", r.Len())
	}
	r.Advance(50 * time.Millisecond)
	if hits != 1 {
		t.Errorf("restored timer fired %d times, expected 1", hits)
	}
}
