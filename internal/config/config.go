// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "time"

// ShooterConfig contains all configuration for Space Battle.
type ShooterConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Player   PlayerConfig   `yaml:"player"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Enemies  EnemiesConfig  `yaml:"enemies"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Weapons  WeaponsConfig  `yaml:"weapons"`
}

// FieldConfig defines the logical playfield. The renderer scales it to
// whatever terminal size is available.
type FieldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	ReferenceHeight float64 `yaml:"reference_height"` // Enemy speeds are tuned for this height
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Field units per tick
	StartY float64 `yaml:"start_y"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives          int `yaml:"lives"`
	PointsPerLevel int `yaml:"points_per_level"`
	AutoFireMS     int `yaml:"auto_fire_ms"` // Touch mode fire interval
}

// AutoFireInterval returns the touch-mode fire interval.
func (g GameplayConfig) AutoFireInterval() time.Duration {
	return msToDuration(g.AutoFireMS)
}

// SpawnConfig defines enemy waves and power-up rolls.
type SpawnConfig struct {
	EnemyPeriodMS       int     `yaml:"enemy_period_ms"`
	PowerUpPeriodMS     int     `yaml:"powerup_period_ms"`
	PowerUpChance       float64 `yaml:"powerup_chance"`         // Chance per power-up tick
	DropChance          float64 `yaml:"drop_chance"`            // Chance per destroyed enemy
	MaxExtraEnemies     int     `yaml:"max_extra_enemies"`      // Cap on enemies added by level
	LevelsPerExtraEnemy int     `yaml:"levels_per_extra_enemy"` // 0 disables growth
	FastThreshold       float64 `yaml:"fast_threshold"`         // First draw above this -> fast
	TankThreshold       float64 `yaml:"tank_threshold"`         // Second draw above this -> tank
}

// EnemyPeriod returns the enemy wave interval.
func (s SpawnConfig) EnemyPeriod() time.Duration {
	return msToDuration(s.EnemyPeriodMS)
}

// PowerUpPeriod returns the power-up roll interval.
func (s SpawnConfig) PowerUpPeriod() time.Duration {
	return msToDuration(s.PowerUpPeriodMS)
}

// EnemyStats is the fixed stat bundle of one enemy variant.
type EnemyStats struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Points int     `yaml:"points"`
	Health float64 `yaml:"health"`
}

// EnemiesConfig holds the stat bundle of every enemy variant.
type EnemiesConfig struct {
	Basic EnemyStats `yaml:"basic"`
	Fast  EnemyStats `yaml:"fast"`
	Tank  EnemyStats `yaml:"tank"`
}

// PowerUpsConfig defines falling power-ups.
type PowerUpsConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	FallSpeed       float64 `yaml:"fall_speed"`
	DurationMS      int     `yaml:"duration_ms"`
	CountdownStepMS int     `yaml:"countdown_step_ms"`
}

// Duration returns how long a collected power-up stays active.
func (p PowerUpsConfig) Duration() time.Duration {
	return msToDuration(p.DurationMS)
}

// CountdownStep returns the granularity of the weapon countdown.
func (p PowerUpsConfig) CountdownStep() time.Duration {
	return msToDuration(p.CountdownStepMS)
}

// BulletConfig defines the projectile a weapon fires.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
}

// WeaponConfig defines one firing pattern.
type WeaponConfig struct {
	CooldownMS  int          `yaml:"cooldown_ms"`
	Offsets     []float64    `yaml:"offsets"`      // Horizontal offsets from the ship center
	DriftFactor float64      `yaml:"drift_factor"` // Horizontal drift = offset * factor
	Bullet      BulletConfig `yaml:"bullet"`
}

// Cooldown returns the minimum time between two shots.
func (w WeaponConfig) Cooldown() time.Duration {
	return msToDuration(w.CooldownMS)
}

// WeaponsConfig holds every firing pattern.
type WeaponsConfig struct {
	Default     WeaponConfig `yaml:"default"`
	DoubleLaser WeaponConfig `yaml:"double_laser"`
	SpreadShot  WeaponConfig `yaml:"spread_shot"`
	RapidFire   WeaponConfig `yaml:"rapid_fire"`
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
