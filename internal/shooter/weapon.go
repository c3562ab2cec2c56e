package shooter

import (
	"time"

	"github.com/vovakirdan/spacebattle/internal/config"
)

// WeaponState is the saved state of the weapon system.
type WeaponState struct {
	Active    WeaponKind    `msgpack:"active"`
	Remaining time.Duration `msgpack:"remaining"`
	LastFire  time.Duration `msgpack:"last_fire"`
	HasFired  bool          `msgpack:"has_fired"`
}

// Weapons fires the active pattern and runs the power-up countdown.
type Weapons struct {
	cfg   config.WeaponsConfig
	step  time.Duration // Countdown granularity
	sched *Scheduler
	state WeaponState
}

// NewWeapons creates a weapon system whose countdown runs on sched.
func NewWeapons(cfg config.WeaponsConfig, step time.Duration, sched *Scheduler) *Weapons {
	if step <= 0 {
		step = 100 * time.Millisecond
	}
	return &Weapons{cfg: cfg, step: step, sched: sched}
}

// Active returns the weapon currently equipped.
func (w *Weapons) Active() WeaponKind {
	return w.state.Active
}

// Remaining returns how long the current power-up weapon stays equipped.
func (w *Weapons) Remaining() time.Duration {
	return w.state.Remaining
}

// State returns a copy of the weapon state.
func (w *Weapons) State() WeaponState {
	return w.state
}

// Reset equips the default weapon and stops any countdown.
func (w *Weapons) Reset() {
	w.sched.Cancel(TimerWeaponCountdown)
	w.state = WeaponState{Active: WeaponDefault}
}

// ready reports whether the cooldown of the active weapon has elapsed.
func (w *Weapons) ready(now time.Duration) bool {
	if !w.state.HasFired {
		return true
	}
	return now-w.state.LastFire >= w.state.Active.Pattern(w.cfg).Cooldown()
}

// Fire shoots the active pattern from the player's center. Requests inside
// the cooldown are dropped. Returns the number of bullets fired.
func (w *Weapons) Fire(p *Player, now time.Duration) int {
	if !w.ready(now) {
		return 0
	}
	pattern := w.state.Active.Pattern(w.cfg)
	cx := p.X + p.W/2
	for _, off := range pattern.Offsets {
		p.Bullets = append(p.Bullets, Bullet{
			X:      cx + off - pattern.Bullet.Width/2,
			Y:      p.Y,
			W:      pattern.Bullet.Width,
			H:      pattern.Bullet.Height,
			Speed:  pattern.Bullet.Speed,
			Drift:  off * pattern.DriftFactor,
			Damage: pattern.Bullet.Damage,
		})
	}
	w.state.LastFire = now
	w.state.HasFired = true
	return len(pattern.Offsets)
}

// Activate equips kind for duration. Any running countdown is cancelled and
// the remaining time is reset, so a new power-up always overrides the old one.
func (w *Weapons) Activate(kind WeaponKind, duration time.Duration) {
	w.sched.Cancel(TimerWeaponCountdown)
	if kind == WeaponDefault || duration <= 0 {
		w.state.Active = WeaponDefault
		w.state.Remaining = 0
		return
	}
	w.state.Active = kind
	w.state.Remaining = duration
	w.sched.Every(TimerWeaponCountdown, w.step, w.countdown)
}

// countdown runs once per step while a power-up weapon is equipped.
func (w *Weapons) countdown() {
	w.state.Remaining -= w.step
	if w.state.Remaining > 0 {
		return
	}
	w.state.Remaining = 0
	w.state.Active = WeaponDefault
	w.sched.Cancel(TimerWeaponCountdown)
}

// restore replaces the weapon state. The countdown timer is re-armed by the
// scheduler restore.
func (w *Weapons) restore(st WeaponState) {
	w.state = st
}
