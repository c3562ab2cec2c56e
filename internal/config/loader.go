package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid shooter config")

// LoadShooter loads Space Battle configuration.
// Search order: customPath -> ~/.spacebattle/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
// Files are overlaid on the defaults, so a partial file only overrides the keys it names.
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath("shooter.yaml"), filepath.Join("configs", "shooter.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		overlay := DefaultShooterConfig()
		if err := yaml.Unmarshal(data, &overlay); err == nil && overlay.Validate() == nil {
			return overlay, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacebattle", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with. Sections
// are checked in a fixed order, so the first problem reported is stable.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0 || c.Field.ReferenceHeight <= 0:
		return fmt.Errorf("%w: field dimensions must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.Field.Width:
		return fmt.Errorf("%w: player must fit in the field", ErrInvalidConfig)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive", ErrInvalidConfig)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidConfig)
	case c.Gameplay.PointsPerLevel <= 0:
		return fmt.Errorf("%w: points_per_level must be positive", ErrInvalidConfig)
	case c.Gameplay.AutoFireMS <= 0:
		return fmt.Errorf("%w: auto_fire_ms must be positive", ErrInvalidConfig)
	case c.Spawn.EnemyPeriodMS <= 0 || c.Spawn.PowerUpPeriodMS <= 0:
		return fmt.Errorf("%w: spawn periods must be positive", ErrInvalidConfig)
	case c.Spawn.MaxExtraEnemies < 0 || c.Spawn.LevelsPerExtraEnemy < 0:
		return fmt.Errorf("%w: wave growth must not be negative", ErrInvalidConfig)
	case c.PowerUps.Width <= 0 || c.PowerUps.Height <= 0 || c.PowerUps.FallSpeed <= 0:
		return fmt.Errorf("%w: power-ups need a positive size and fall speed", ErrInvalidConfig)
	case c.PowerUps.DurationMS <= 0 || c.PowerUps.CountdownStepMS <= 0:
		return fmt.Errorf("%w: power-up timings must be positive", ErrInvalidConfig)
	}

	probabilities := []struct {
		name  string
		value float64
	}{
		{"powerup_chance", c.Spawn.PowerUpChance},
		{"drop_chance", c.Spawn.DropChance},
		{"fast_threshold", c.Spawn.FastThreshold},
		{"tank_threshold", c.Spawn.TankThreshold},
	}
	for _, p := range probabilities {
		if !(p.value >= 0 && p.value <= 1) {
			return fmt.Errorf("%w: %s must be within [0, 1]", ErrInvalidConfig, p.name)
		}
	}

	enemies := []struct {
		name  string
		stats EnemyStats
	}{
		{"basic", c.Enemies.Basic},
		{"fast", c.Enemies.Fast},
		{"tank", c.Enemies.Tank},
	}
	for _, e := range enemies {
		if e.stats.Width <= 0 || e.stats.Height <= 0 || e.stats.Health <= 0 || e.stats.Width >= c.Field.Width {
			return fmt.Errorf("%w: enemy %q needs positive size and health", ErrInvalidConfig, e.name)
		}
		if e.stats.Speed <= 0 {
			return fmt.Errorf("%w: enemy %q speed must be positive", ErrInvalidConfig, e.name)
		}
	}

	weapons := []struct {
		name   string
		weapon WeaponConfig
	}{
		{"default", c.Weapons.Default},
		{"double_laser", c.Weapons.DoubleLaser},
		{"spread_shot", c.Weapons.SpreadShot},
		{"rapid_fire", c.Weapons.RapidFire},
	}
	for _, w := range weapons {
		b := w.weapon.Bullet
		if len(w.weapon.Offsets) == 0 || b.Width <= 0 || b.Height <= 0 || b.Damage <= 0 {
			return fmt.Errorf("%w: weapon %q needs offsets and a positive bullet", ErrInvalidConfig, w.name)
		}
		if b.Speed <= 0 {
			return fmt.Errorf("%w: weapon %q bullet speed must be positive", ErrInvalidConfig, w.name)
		}
		if w.weapon.CooldownMS < 0 {
			return fmt.Errorf("%w: weapon %q cooldown_ms must not be negative", ErrInvalidConfig, w.name)
		}
	}
	return nil
}
