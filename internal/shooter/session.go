package shooter

// Phase is the lifecycle state of an engine.
type Phase int

const (
	PhaseIdle     Phase = iota // Constructed, not started
	PhasePlaying               // Simulation running
	PhaseGameOver              // Frozen until restart
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session holds the score-keeping state of one game.
// Only HighScore survives a restart.
type Session struct {
	Score     int  `msgpack:"score"`
	Lives     int  `msgpack:"lives"`
	Level     int  `msgpack:"level"`
	HighScore int  `msgpack:"high_score"`
	Over      bool `msgpack:"over"`
}
