package shooter

// Progression derives the level from the score and maintains the high score.
type Progression struct {
	pointsPerLevel int
}

// NewProgression creates a tracker that advances one level per pointsPerLevel.
func NewProgression(pointsPerLevel int) *Progression {
	if pointsPerLevel <= 0 {
		pointsPerLevel = 1000
	}
	return &Progression{pointsPerLevel: pointsPerLevel}
}

// Level returns the level for a score: floor(score / pointsPerLevel) + 1.
func (p *Progression) Level(score int) int {
	if score < 0 {
		score = 0
	}
	return score/p.pointsPerLevel + 1
}

// Award adds points to the session and recomputes its level.
// Negative awards are ignored so the score and level never decrease.
func (p *Progression) Award(s *Session, points int) {
	if points > 0 {
		s.Score += points
	}
	s.Level = p.Level(s.Score)
}

// Reset starts a new session with the given lives, keeping the high score.
func (p *Progression) Reset(s *Session, lives int) {
	*s = Session{
		Lives:     lives,
		Level:     p.Level(0),
		HighScore: s.HighScore,
	}
}

// FinalizeHighScore records the final score as the high score if it beats the
// stored one. Returns true when the high score changed.
func (p *Progression) FinalizeHighScore(s *Session) bool {
	if s.Score <= s.HighScore {
		return false
	}
	s.HighScore = s.Score
	return true
}
