package shooter

// Outcome summarises what one resolver pass changed.
type Outcome struct {
	Points    int           // Points earned by destroyed enemies
	Destroyed int           // Enemies destroyed by bullets
	Escaped   int           // Enemies that crossed the bottom edge
	Collected []PowerUpKind // Power-ups consumed, in collection order
	Dropped   int           // Power-ups dropped by destroyed enemies
}

// Resolver applies collision results to the world.
type Resolver struct {
	spawner *Spawner
	weapons *Weapons
}

// NewResolver creates a resolver that activates weapons on pickup and rolls
// drops through spawner.
func NewResolver(spawner *Spawner, weapons *Weapons) *Resolver {
	return &Resolver{spawner: spawner, weapons: weapons}
}

// Resolve runs one collision pass. Each bullet is spent on at most one target:
// the first overlapping power-up, or failing that the first live enemy.
// Removals are marked during the pass and compacted at its end, and drops are
// appended afterwards so they cannot be hit by the bullets of the same pass.
func (r *Resolver) Resolve(w *World) Outcome {
	var out Outcome

	spentBullets := make([]bool, len(w.Player.Bullets))
	takenPowerUps := make([]bool, len(w.PowerUps))
	deadEnemies := make([]bool, len(w.Enemies))

	type drop struct{ x, y float64 }
	var drops []drop

	for bi := range w.Player.Bullets {
		b := &w.Player.Bullets[bi]
		bbox := b.Box()

		hitPowerUp := false
		for pi := range w.PowerUps {
			if takenPowerUps[pi] {
				continue
			}
			p := &w.PowerUps[pi]
			if !Collides(bbox, p.Box()) {
				continue
			}
			takenPowerUps[pi] = true
			spentBullets[bi] = true
			r.weapons.Activate(p.Kind.Weapon(), p.Duration)
			out.Collected = append(out.Collected, p.Kind)
			hitPowerUp = true
			break
		}
		if hitPowerUp {
			continue
		}

		for ei := range w.Enemies {
			if deadEnemies[ei] {
				continue
			}
			e := &w.Enemies[ei]
			if !Collides(bbox, e.Box()) {
				continue
			}
			spentBullets[bi] = true
			e.Health -= b.Damage
			if e.Health <= 0 {
				deadEnemies[ei] = true
				out.Points += e.Points
				out.Destroyed++
				drops = append(drops, drop{e.X, e.Y})
			}
			break
		}
	}

	for ei := range w.Enemies {
		if deadEnemies[ei] {
			continue
		}
		if pastBottom(&w.Enemies[ei], w.Height) {
			deadEnemies[ei] = true
			out.Escaped++
		}
	}

	w.Player.Bullets = compact(w.Player.Bullets, spentBullets)
	w.PowerUps = compact(w.PowerUps, takenPowerUps)
	w.Enemies = compact(w.Enemies, deadEnemies)

	for _, d := range drops {
		if r.spawner.RollDrop(w, d.x, d.y) {
			out.Dropped++
		}
	}
	return out
}

// compact removes the marked entries in place, keeping order.
func compact[T any](items []T, removed []bool) []T {
	kept := items[:0]
	for i, it := range items {
		if removed[i] {
			continue
		}
		kept = append(kept, it)
	}
	clear(items[len(kept):])
	return kept
}
