package core

import "time"

// Event is something a game reports to the platform bridge.
// The set of events is closed; every implementation lives in this file.
type Event interface {
	platformEvent()
}

// GameResultEvent is emitted once when a game transitions to game over.
type GameResultEvent struct {
	Score     int
	Timestamp time.Time
}

func (GameResultEvent) platformEvent() {}

// HighScoreUpdatedEvent is emitted at game over when the final score beats
// the stored high score.
type HighScoreUpdatedEvent struct {
	Score     int
	Timestamp time.Time
}

func (HighScoreUpdatedEvent) platformEvent() {}
