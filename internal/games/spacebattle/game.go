// Package spacebattle adapts the shooter engine to the arcade platform.
package spacebattle

import (
	"time"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/registry"
	"github.com/vovakirdan/spacebattle/internal/savegame"
	"github.com/vovakirdan/spacebattle/internal/shooter"
)

// Game IDs.
const (
	ID      = "shooter"
	TouchID = "shooter_touch"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the shooter config the way Reset does: the custom path or
// search order, then the difficulty preset.
func LoadConfig() config.ShooterConfig {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game implements registry.Game for Space Battle.
type Game struct {
	touch     bool
	engine    *shooter.Engine
	dt        time.Duration
	paused    bool
	highScore int
}

// New creates a keyboard-controlled game.
func New() *Game {
	return &Game{}
}

// NewTouch creates a game that fires automatically, as on touch screens.
func NewTouch() *Game {
	return &Game{touch: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.touch {
		return TouchID
	}
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.touch {
		return "Space Battle (Auto-fire)"
	}
	return "Space Battle"
}

// Reset builds a fresh engine and starts it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = time.Second / time.Duration(tickRate)
	g.paused = false

	if g.engine != nil {
		g.highScore = max(g.highScore, g.engine.Session().HighScore)
	}
	g.engine = shooter.New(LoadConfig(), shooter.Options{
		Seed:      runtime.Seed,
		AutoFire:  g.touch,
		HighScore: g.highScore,
	})
	g.engine.Start()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.Phase() == shooter.PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.engine.Restart()
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.engine.Tick(g.dt, intents(in))
	return core.StepResult{State: g.State(), Events: g.engine.DrainEvents()}
}

// intents maps platform actions to engine input. Opposite directions cancel.
func intents(in core.InputFrame) shooter.Input {
	var input shooter.Input
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		input.Move = shooter.MoveLeft
	case right && !left:
		input.Move = shooter.MoveRight
	}
	input.Fire = in.Has(core.ActionFire)
	return input
}

// Render draws the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	shooter.Render(g.engine.Snapshot(), dst, g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.engine.Session()
	return core.GameState{
		Score:    s.Score,
		Lives:    s.Lives,
		Level:    s.Level,
		GameOver: s.Over,
		Paused:   g.paused,
	}
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() shooter.Snapshot {
	return g.engine.Snapshot()
}

// SetHighScore raises the stored high score of the running session.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
	g.engine.SetHighScore(score)
}

// SaveGame encodes the running session.
func (g *Game) SaveGame() ([]byte, error) {
	return savegame.Encode(g.engine.SaveState())
}

// LoadGame replaces the running session with a saved one. The game is paused
// afterwards so the player can get ready.
func (g *Game) LoadGame(data []byte) error {
	st, err := savegame.Decode(data)
	if err != nil {
		return err
	}
	if err := g.engine.Restore(st); err != nil {
		return err
	}
	g.paused = true
	return nil
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(TouchID, func() registry.Game {
		return NewTouch()
	})
}
