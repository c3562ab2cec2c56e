// Package shooter implements the Space Battle simulation engine: a vertically
// scrolling field where the player's ship shoots descending enemies, collects
// power-ups and loses lives when enemies reach the bottom.
//
// The engine is deterministic. It never reads the wall clock for simulation;
// time only moves when the caller passes an elapsed duration to Tick.
package shooter

import (
	"time"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/core"
)

// Input is the set of intents sampled for one tick.
type Input struct {
	Move Move // Held direction, applied every tick it is set
	Fire bool // Fire request, dropped while the weapon cools down
}

// Options tune an engine beyond its game config.
type Options struct {
	Seed      int64            // RNG seed for spawns and drops
	AutoFire  bool             // Fire on a timer, for touch play
	HighScore int              // Stored high score to start from
	Clock     func() time.Time // Event timestamps; defaults to time.Now
}

// Engine runs one game session. Engines share no state, so any number of
// them can run side by side.
type Engine struct {
	cfg   config.ShooterConfig
	opts  Options
	clock func() time.Time

	rng         *SimpleRNG
	sched       *Scheduler
	spawner     *Spawner
	weapons     *Weapons
	resolver    *Resolver
	progression *Progression

	world   World
	session Session
	phase   Phase
	tick    uint64
	events  []core.Event
}

// New creates an engine in the Idle phase.
func New(cfg config.ShooterConfig, opts Options) *Engine {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	rng := NewSimpleRNG(opts.Seed)
	sched := NewScheduler()
	spawner := NewSpawner(cfg, rng)
	weapons := NewWeapons(cfg.Weapons, cfg.PowerUps.CountdownStep(), sched)

	e := &Engine{
		cfg:         cfg,
		opts:        opts,
		clock:       clock,
		rng:         rng,
		sched:       sched,
		spawner:     spawner,
		weapons:     weapons,
		resolver:    NewResolver(spawner, weapons),
		progression: NewProgression(cfg.Gameplay.PointsPerLevel),
		world:       newWorld(cfg),
		phase:       PhaseIdle,
	}
	e.session.HighScore = opts.HighScore
	e.progression.Reset(&e.session, cfg.Gameplay.Lives)
	return e
}

// Start begins the first session. It does nothing unless the engine is Idle.
func (e *Engine) Start() {
	if e.phase != PhaseIdle {
		return
	}
	e.reset()
}

// Restart throws away the current session and starts a fresh one. Every
// pending timer is cancelled before new ones are armed. The high score is kept.
func (e *Engine) Restart() {
	e.reset()
}

func (e *Engine) reset() {
	e.sched.CancelAll()
	e.world = newWorld(e.cfg)
	e.progression.Reset(&e.session, e.cfg.Gameplay.Lives)
	e.weapons.Reset()
	e.tick = 0
	e.phase = PhasePlaying
	e.armTimers()
}

func (e *Engine) armTimers() {
	e.sched.Every(TimerEnemyWave, e.cfg.Spawn.EnemyPeriod(), e.onEnemyWave)
	e.sched.Every(TimerPowerUpRoll, e.cfg.Spawn.PowerUpPeriod(), e.onPowerUpRoll)
	if e.opts.AutoFire {
		e.sched.Every(TimerAutoFire, e.cfg.Gameplay.AutoFireInterval(), e.onAutoFire)
	}
}

// timerFunc maps a timer name to its callback, for restoring saved timers.
func (e *Engine) timerFunc(name string) func() {
	switch name {
	case TimerEnemyWave:
		return e.onEnemyWave
	case TimerPowerUpRoll:
		return e.onPowerUpRoll
	case TimerWeaponCountdown:
		return e.weapons.countdown
	case TimerAutoFire:
		return e.onAutoFire
	default:
		return nil
	}
}

func (e *Engine) onEnemyWave() {
	e.spawner.SpawnWave(&e.world, e.session.Level)
}

func (e *Engine) onPowerUpRoll() {
	e.spawner.RollPowerUp(&e.world)
}

func (e *Engine) onAutoFire() {
	e.weapons.Fire(&e.world.Player, e.sched.Now())
}

// Tick advances the simulation by one step of elapsed time. Outside the
// Playing phase it does nothing.
func (e *Engine) Tick(elapsed time.Duration, in Input) {
	if e.phase != PhasePlaying {
		return
	}
	e.tick++

	e.world.Player.Steer(in.Move, e.world.Width)
	if in.Fire {
		e.weapons.Fire(&e.world.Player, e.sched.Now())
	}

	e.world.advance()
	e.sched.Advance(elapsed)

	out := e.resolver.Resolve(&e.world)
	e.progression.Award(&e.session, out.Points)

	e.session.Lives -= out.Escaped
	if e.session.Lives <= 0 {
		e.session.Lives = 0
		e.gameOver()
	}
}

// gameOver freezes the session and reports the result.
func (e *Engine) gameOver() {
	e.phase = PhaseGameOver
	e.session.Over = true
	e.sched.CancelAll()

	now := e.clock()
	e.events = append(e.events, core.GameResultEvent{Score: e.session.Score, Timestamp: now})
	if e.progression.FinalizeHighScore(&e.session) {
		e.events = append(e.events, core.HighScoreUpdatedEvent{Score: e.session.HighScore, Timestamp: now})
	}
}

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Session returns a copy of the score-keeping state.
func (e *Engine) Session() Session {
	return e.session
}

// Now returns the simulated time of the scheduler.
func (e *Engine) Now() time.Duration {
	return e.sched.Now()
}

// PendingTimers returns the names of the armed timers in firing order.
func (e *Engine) PendingTimers() []string {
	states := e.sched.States()
	names := make([]string, len(states))
	for i, st := range states {
		names[i] = st.Name
	}
	return names
}

// SetHighScore raises the stored high score. Lower values are ignored.
func (e *Engine) SetHighScore(score int) {
	if score > e.session.HighScore {
		e.session.HighScore = score
	}
}

// DrainEvents returns the events emitted since the last call.
func (e *Engine) DrainEvents() []core.Event {
	if len(e.events) == 0 {
		return nil
	}
	events := e.events
	e.events = nil
	return events
}
