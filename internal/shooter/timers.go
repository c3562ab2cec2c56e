package shooter

import (
	"sort"
	"time"
)

// Timer names used by the engine.
const (
	TimerEnemyWave       = "enemy-wave"
	TimerPowerUpRoll     = "powerup-roll"
	TimerWeaponCountdown = "weapon-countdown"
	TimerAutoFire        = "auto-fire"
)

// TimerState describes a pending timer for save games.
type TimerState struct {
	Name   string        `msgpack:"name"`
	Due    time.Duration `msgpack:"due"` // Absolute scheduler time of the next firing
	Period time.Duration `msgpack:"period"`
}

type timer struct {
	name   string
	due    time.Duration
	period time.Duration
	seq    uint64 // Registration order, breaks ties between equal due times
	fn     func()
}

// Scheduler runs named, cancellable, repeating timers on a simulated clock.
// Nothing happens until Advance is called, so the engine stays deterministic.
// Callbacks run synchronously inside Advance and may cancel or register timers.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers map[string]*timer
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[string]*timer)}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers fn to run every period, first one period from now.
// An existing timer with the same name is cancelled first.
// Non-positive periods are ignored.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) {
	s.schedule(name, s.now+period, period, fn)
}

func (s *Scheduler) schedule(name string, due, period time.Duration, fn func()) {
	s.Cancel(name)
	if period <= 0 || fn == nil {
		return
	}
	s.seq++
	s.timers[name] = &timer{name: name, due: due, period: period, seq: s.seq, fn: fn}
}

// Cancel removes the named timer. Returns false if it was not pending.
func (s *Scheduler) Cancel(name string) bool {
	if _, ok := s.timers[name]; !ok {
		return false
	}
	delete(s.timers, name)
	return true
}

// CancelAll removes every pending timer.
func (s *Scheduler) CancelAll() {
	clear(s.timers)
}

// Pending reports whether the named timer is armed.
func (s *Scheduler) Pending(name string) bool {
	_, ok := s.timers[name]
	return ok
}

// Len returns the number of armed timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Remaining returns the time until the named timer next fires, or 0.
func (s *Scheduler) Remaining(name string) time.Duration {
	t, ok := s.timers[name]
	if !ok {
		return 0
	}
	return t.due - s.now
}

// Advance moves the clock forward by elapsed, firing every timer that comes
// due in chronological order. A timer whose period fits several times into
// elapsed fires several times.
func (s *Scheduler) Advance(elapsed time.Duration) {
	if elapsed < 0 {
		return
	}
	target := s.now + elapsed
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.due += next.period
		next.fn()
	}
	s.now = target
}

// nextDue returns the earliest timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// States returns the pending timers in firing order.
func (s *Scheduler) States() []TimerState {
	ordered := make([]*timer, 0, len(s.timers))
	for _, t := range s.timers {
		ordered = append(ordered, t)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].due != ordered[j].due {
			return ordered[i].due < ordered[j].due
		}
		return ordered[i].seq < ordered[j].seq
	})

	states := make([]TimerState, len(ordered))
	for i, t := range ordered {
		states[i] = TimerState{Name: t.name, Due: t.due, Period: t.period}
	}
	return states
}

// restore resets the clock and re-arms saved timers. lookup maps a timer
// name to its callback; names it does not know are dropped.
func (s *Scheduler) restore(now time.Duration, states []TimerState, lookup func(string) func()) {
	s.CancelAll()
	s.now = now
	for _, st := range states {
		due := st.Due
		if due < now {
			due = now
		}
		s.schedule(st.Name, due, st.Period, lookup(st.Name))
	}
}
