package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default Space Battle configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:           800,
			Height:          600,
			ReferenceHeight: 600,
		},
		Player: PlayerConfig{
			Width:  50,
			Height: 50,
			Speed:  5,
			StartY: 500,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			PointsPerLevel: 1000,
			AutoFireMS:     500,
		},
		Spawn: SpawnConfig{
			EnemyPeriodMS:       2000,
			PowerUpPeriodMS:     10000,
			PowerUpChance:       0.3,
			DropChance:          0.2,
			MaxExtraEnemies:     3,
			LevelsPerExtraEnemy: 5,
			FastThreshold:       0.7,
			TankThreshold:       0.8,
		},
		Enemies: EnemiesConfig{
			Basic: EnemyStats{Width: 40, Height: 40, Speed: 1.2, Points: 100, Health: 1},
			Fast:  EnemyStats{Width: 40, Height: 40, Speed: 2, Points: 200, Health: 1},
			Tank:  EnemyStats{Width: 40, Height: 40, Speed: 0.7, Points: 300, Health: 3},
		},
		PowerUps: PowerUpsConfig{
			Width:           30,
			Height:          30,
			FallSpeed:       2,
			DurationMS:      10000,
			CountdownStepMS: 100,
		},
		Weapons: WeaponsConfig{
			Default: WeaponConfig{
				CooldownMS: 500,
				Offsets:    []float64{0},
				Bullet:     BulletConfig{Width: 5, Height: 10, Speed: 7, Damage: 1},
			},
			DoubleLaser: WeaponConfig{
				CooldownMS: 400,
				Offsets:    []float64{-10, 10},
				Bullet:     BulletConfig{Width: 5, Height: 10, Speed: 7, Damage: 1},
			},
			SpreadShot: WeaponConfig{
				CooldownMS:  600,
				Offsets:     []float64{-20, 0, 20},
				DriftFactor: 0.1,
				Bullet:      BulletConfig{Width: 5, Height: 10, Speed: 7, Damage: 1},
			},
			RapidFire: WeaponConfig{
				CooldownMS: 200,
				Offsets:    []float64{0},
				Bullet:     BulletConfig{Width: 3, Height: 10, Speed: 10, Damage: 0.5},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter", "shooter_touch":
		return defaultShooterYAML
	default:
		return nil
	}
}
