package shooter

import "github.com/vovakirdan/spacebattle/internal/core"

// Collides reports whether two boxes overlap. The check is symmetric and a
// box with missing or degenerate geometry never collides.
func Collides(a, b core.Box) bool {
	return a.Intersects(b)
}

// pastBottom reports whether an enemy has left the field through the bottom.
func pastBottom(e *Enemy, fieldH float64) bool {
	return e.Y > fieldH
}
