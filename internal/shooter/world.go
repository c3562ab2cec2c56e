package shooter

import "github.com/vovakirdan/spacebattle/internal/config"

// World holds every entity of a session. The engine owns it; entities never
// point back at the collection holding them.
type World struct {
	Width           float64
	Height          float64
	ReferenceHeight float64

	Player   Player
	Enemies  []Enemy
	PowerUps []PowerUp
}

func newWorld(cfg config.ShooterConfig) World {
	return World{
		Width:           cfg.Field.Width,
		Height:          cfg.Field.Height,
		ReferenceHeight: cfg.Field.ReferenceHeight,
		Player:          newPlayer(cfg),
		Enemies:         make([]Enemy, 0, 16),
		PowerUps:        make([]PowerUp, 0, 4),
	}
}

// verticalScale converts reference-height speeds to this field's height.
func (w *World) verticalScale() float64 {
	if w.ReferenceHeight <= 0 {
		return 1
	}
	return w.Height / w.ReferenceHeight
}

// advance moves every entity one tick. Bullets that leave the top or either
// side and power-ups that fall past the bottom are dropped here; enemies past
// the bottom are left for the resolver, which charges a life for them.
func (w *World) advance() {
	bullets := w.Player.Bullets[:0]
	for _, b := range w.Player.Bullets {
		b.Y -= b.Speed
		b.X += b.Drift
		if b.Y < 0 || b.X+b.W < 0 || b.X > w.Width {
			continue
		}
		bullets = append(bullets, b)
	}
	w.Player.Bullets = bullets

	scale := w.verticalScale()
	for i := range w.Enemies {
		w.Enemies[i].Y += w.Enemies[i].Speed * scale
	}

	powerUps := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		p.Y += p.FallSpeed
		if p.Y > w.Height {
			continue
		}
		powerUps = append(powerUps, p)
	}
	w.PowerUps = powerUps
}
