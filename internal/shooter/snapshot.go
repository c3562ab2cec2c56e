package shooter

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/spacebattle/internal/core"
)

// SaveVersion is the layout version written into save states.
const SaveVersion = 2

// ErrBadState is returned when a save state cannot be restored.
var ErrBadState = errors.New("shooter: invalid save state")

// Snapshot is a read-only view of the engine for renderers. It owns copies of
// every slice, so later ticks never change it.
type Snapshot struct {
	Tick  uint64
	Phase Phase

	FieldW float64
	FieldH float64

	Player   core.Box
	Bullets  []Bullet
	Enemies  []Enemy
	PowerUps []PowerUp

	Score     int
	Lives     int
	Level     int
	HighScore int

	Weapon          string
	WeaponRemaining time.Duration
}

// Snapshot returns the current state for rendering. It is available in every
// phase.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:            e.tick,
		Phase:           e.phase,
		FieldW:          e.world.Width,
		FieldH:          e.world.Height,
		Player:          e.world.Player.Box(),
		Bullets:         slices.Clone(e.world.Player.Bullets),
		Enemies:         slices.Clone(e.world.Enemies),
		PowerUps:        slices.Clone(e.world.PowerUps),
		Score:           e.session.Score,
		Lives:           e.session.Lives,
		Level:           e.session.Level,
		HighScore:       e.session.HighScore,
		Weapon:          e.weapons.Active().String(),
		WeaponRemaining: e.weapons.Remaining(),
	}
}

// Hash returns a simple hash of the snapshot for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(f float64) {
		mix(math.Float64bits(f))
	}

	mix(s.Tick)
	mix(uint64(s.Phase))     //#nosec G115 -- small enum
	mix(uint64(s.Score))     //#nosec G115 -- score is never negative
	mix(uint64(s.Lives))     //#nosec G115 -- lives are clamped at zero
	mix(uint64(s.Level))     //#nosec G115 -- level starts at one
	mix(uint64(s.HighScore)) //#nosec G115 -- high score is never negative
	mixF(s.Player.X)
	mixF(s.Player.Y)
	for _, b := range s.Bullets {
		mixF(b.X)
		mixF(b.Y)
		mixF(b.Damage)
	}
	for _, en := range s.Enemies {
		mix(uint64(en.Kind)) //#nosec G115 -- small enum
		mixF(en.X)
		mixF(en.Y)
		mixF(en.Health)
	}
	for _, p := range s.PowerUps {
		mix(uint64(p.Kind)) //#nosec G115 -- small enum
		mixF(p.X)
		mixF(p.Y)
	}
	for _, r := range s.Weapon {
		mix(uint64(r)) //#nosec G115 -- runes are non-negative
	}
	mix(uint64(s.WeaponRemaining)) //#nosec G115 -- remaining time is never negative
	return h
}

// SaveState is everything needed to resume a session exactly where it was
// left: entities, session, weapon, RNG and pending timers.
type SaveState struct {
	Version  int           `msgpack:"version"`
	Tick     uint64        `msgpack:"tick"`
	Phase    Phase         `msgpack:"phase"`
	Clock    time.Duration `msgpack:"clock"`
	RNG      uint64        `msgpack:"rng"`
	AutoFire bool          `msgpack:"auto_fire"`
	FieldW   float64       `msgpack:"field_w"`
	FieldH   float64       `msgpack:"field_h"`

	Player   Player    `msgpack:"player"`
	Enemies  []Enemy   `msgpack:"enemies"`
	PowerUps []PowerUp `msgpack:"powerups"`

	Session Session      `msgpack:"session"`
	Weapon  WeaponState  `msgpack:"weapon"`
	Timers  []TimerState `msgpack:"timers"`
}

// SaveState captures the engine for a later Restore.
func (e *Engine) SaveState() SaveState {
	player := e.world.Player
	player.Bullets = slices.Clone(player.Bullets)
	return SaveState{
		Version:  SaveVersion,
		Tick:     e.tick,
		Phase:    e.phase,
		Clock:    e.sched.Now(),
		RNG:      e.rng.State(),
		AutoFire: e.opts.AutoFire,
		FieldW:   e.world.Width,
		FieldH:   e.world.Height,
		Player:   player,
		Enemies:  slices.Clone(e.world.Enemies),
		PowerUps: slices.Clone(e.world.PowerUps),
		Session:  e.session,
		Weapon:   e.weapons.State(),
		Timers:   e.sched.States(),
	}
}

// Restore replaces the engine state with st. The engine is left untouched
// when st is rejected. A save only resumes on an engine with the same
// auto-fire mode and field size.
func (e *Engine) Restore(st SaveState) error {
	if err := e.validateSave(st); err != nil {
		return err
	}

	player := st.Player
	player.Bullets = slices.Clone(player.Bullets)
	if player.Bullets == nil {
		player.Bullets = make([]Bullet, 0, 32)
	}

	e.world.Player = player
	e.world.Enemies = slices.Clone(st.Enemies)
	e.world.PowerUps = slices.Clone(st.PowerUps)
	e.session = st.Session
	e.tick = st.Tick
	e.phase = st.Phase
	e.rng.state = st.RNG
	e.weapons.restore(st.Weapon)
	e.sched.restore(st.Clock, st.Timers, e.timerFunc)
	return nil
}

func (e *Engine) validateSave(st SaveState) error {
	if st.Version != SaveVersion {
		return fmt.Errorf("%w: version %d, expected %d", ErrBadState, st.Version, SaveVersion)
	}
	if st.AutoFire != e.opts.AutoFire {
		return fmt.Errorf("%w: saved with auto-fire %t", ErrBadState, st.AutoFire)
	}
	if st.FieldW != e.world.Width || st.FieldH != e.world.Height {
		return fmt.Errorf("%w: field %gx%g, expected %gx%g",
			ErrBadState, st.FieldW, st.FieldH, e.world.Width, e.world.Height)
	}
	if st.Phase < PhaseIdle || st.Phase > PhaseGameOver {
		return fmt.Errorf("%w: unknown phase %d", ErrBadState, st.Phase)
	}
	if st.Session.Score < 0 || st.Session.Lives < 0 || st.Session.HighScore < 0 {
		return fmt.Errorf("%w: negative session counters", ErrBadState)
	}
	if !st.Player.Box().Valid() {
		return fmt.Errorf("%w: player has no geometry", ErrBadState)
	}
	for i := range st.Player.Bullets {
		if !st.Player.Bullets[i].Box().Valid() {
			return fmt.Errorf("%w: bullet %d has no geometry", ErrBadState, i)
		}
	}
	for i := range st.Enemies {
		en := &st.Enemies[i]
		if !en.Kind.valid() {
			return fmt.Errorf("%w: enemy %d has unknown kind %d", ErrBadState, i, en.Kind)
		}
		if !en.Box().Valid() {
			return fmt.Errorf("%w: enemy %d has no geometry", ErrBadState, i)
		}
		if !(en.Health > 0) || math.IsInf(en.Health, 0) {
			return fmt.Errorf("%w: enemy %d has health %v", ErrBadState, i, en.Health)
		}
	}
	for i := range st.PowerUps {
		p := &st.PowerUps[i]
		if !p.Kind.valid() {
			return fmt.Errorf("%w: power-up %d has unknown kind %d", ErrBadState, i, p.Kind)
		}
		if !p.Box().Valid() {
			return fmt.Errorf("%w: power-up %d has no geometry", ErrBadState, i)
		}
	}
	if st.Weapon.Active < WeaponDefault || st.Weapon.Active > WeaponRapidFire {
		return fmt.Errorf("%w: unknown weapon %d", ErrBadState, st.Weapon.Active)
	}
	if st.Clock < 0 {
		return fmt.Errorf("%w: negative clock", ErrBadState)
	}
	return nil
}
