package shooter

import (
	"github.com/vovakirdan/spacebattle/internal/config"
)

// Spawner generates enemies and power-ups. Timing is owned by the engine's
// scheduler; the spawner only decides what appears and where.
type Spawner struct {
	spawn    config.SpawnConfig
	enemies  config.EnemiesConfig
	powerUps config.PowerUpsConfig
	rng      *SimpleRNG
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.ShooterConfig, rng *SimpleRNG) *Spawner {
	return &Spawner{
		spawn:    cfg.Spawn,
		enemies:  cfg.Enemies,
		powerUps: cfg.PowerUps,
		rng:      rng,
	}
}

// WaveSize returns how many enemies a wave holds at the given level:
// min(maxExtra, floor(level / levelsPerExtra)) + 1.
func (s *Spawner) WaveSize(level int) int {
	if s.spawn.LevelsPerExtraEnemy <= 0 || level <= 0 {
		return 1
	}
	extra := level / s.spawn.LevelsPerExtraEnemy
	if extra > s.spawn.MaxExtraEnemies {
		extra = s.spawn.MaxExtraEnemies
	}
	return extra + 1
}

// RollEnemyKind picks a variant with two independent uniform draws. The first
// draw decides "fast"; only if it does not, the second decides "tank". Both
// draws are always taken so the random stream does not depend on the outcome.
func (s *Spawner) RollEnemyKind() EnemyKind {
	first := s.rng.Float64()
	second := s.rng.Float64()
	switch {
	case first > s.spawn.FastThreshold:
		return EnemyFast
	case second > s.spawn.TankThreshold:
		return EnemyTank
	default:
		return EnemyBasic
	}
}

// RollPowerUpKind picks a power-up kind uniformly.
func (s *Spawner) RollPowerUpKind() PowerUpKind {
	return PowerUpKind(s.rng.Intn(int(powerUpKindCount)))
}

// SpawnWave adds one wave of enemies just above the top edge.
func (s *Spawner) SpawnWave(w *World, level int) int {
	n := s.WaveSize(level)
	for range n {
		kind := s.RollEnemyKind()
		stats := kind.Stats(s.enemies)
		w.Enemies = append(w.Enemies, newEnemy(kind, stats, s.spawnX(w.Width, stats.Width)))
	}
	return n
}

// RollPowerUp spawns one power-up above the top edge with the configured
// chance. Returns true if one was spawned.
func (s *Spawner) RollPowerUp(w *World) bool {
	if s.rng.Float64() >= s.spawn.PowerUpChance {
		return false
	}
	kind := s.RollPowerUpKind()
	x := s.spawnX(w.Width, s.powerUps.Width)
	w.PowerUps = append(w.PowerUps, newPowerUp(kind, s.powerUps, x, -s.powerUps.Height))
	return true
}

// RollDrop spawns a power-up at a destroyed enemy's position with the
// configured drop chance. Returns true if one was dropped.
func (s *Spawner) RollDrop(w *World, x, y float64) bool {
	if s.rng.Float64() >= s.spawn.DropChance {
		return false
	}
	kind := s.RollPowerUpKind()
	w.PowerUps = append(w.PowerUps, newPowerUp(kind, s.powerUps, x, y))
	return true
}

// spawnX returns a uniform position in [0, fieldW - entityW).
func (s *Spawner) spawnX(fieldW, entityW float64) float64 {
	span := fieldW - entityW
	if span <= 0 {
		return 0
	}
	return s.rng.Float64() * span
}
