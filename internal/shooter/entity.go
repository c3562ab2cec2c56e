package shooter

import (
	"time"

	"github.com/vovakirdan/spacebattle/internal/config"
	"github.com/vovakirdan/spacebattle/internal/core"
)

// EnemyKind is the variant of an enemy. Each kind has a fixed stat bundle.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyTank
)

// String returns the name of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	default:
		return "unknown"
	}
}

func (k EnemyKind) valid() bool {
	return k >= EnemyBasic && k <= EnemyTank
}

// Stats returns the stat bundle for this kind. Unknown kinds get basic stats.
func (k EnemyKind) Stats(cfg config.EnemiesConfig) config.EnemyStats {
	switch k {
	case EnemyFast:
		return cfg.Fast
	case EnemyTank:
		return cfg.Tank
	default:
		return cfg.Basic
	}
}

// PowerUpKind is the variant of a falling power-up.
type PowerUpKind int

const (
	PowerUpDoubleLaser PowerUpKind = iota
	PowerUpSpreadShot
	PowerUpRapidFire
	powerUpKindCount // Sentinel for uniform rolls
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	return k.Weapon().String()
}

func (k PowerUpKind) valid() bool {
	return k >= PowerUpDoubleLaser && k < powerUpKindCount
}

// Weapon returns the weapon granted by collecting this power-up.
func (k PowerUpKind) Weapon() WeaponKind {
	switch k {
	case PowerUpDoubleLaser:
		return WeaponDoubleLaser
	case PowerUpSpreadShot:
		return WeaponSpreadShot
	case PowerUpRapidFire:
		return WeaponRapidFire
	default:
		return WeaponDefault
	}
}

// WeaponKind identifies a firing pattern.
type WeaponKind int

const (
	WeaponDefault WeaponKind = iota
	WeaponDoubleLaser
	WeaponSpreadShot
	WeaponRapidFire
)

// String returns the name of the weapon.
func (k WeaponKind) String() string {
	switch k {
	case WeaponDefault:
		return "default"
	case WeaponDoubleLaser:
		return "doubleLaser"
	case WeaponSpreadShot:
		return "spreadShot"
	case WeaponRapidFire:
		return "rapidFire"
	default:
		return "unknown"
	}
}

// Pattern returns the firing pattern for this weapon.
func (k WeaponKind) Pattern(cfg config.WeaponsConfig) config.WeaponConfig {
	switch k {
	case WeaponDoubleLaser:
		return cfg.DoubleLaser
	case WeaponSpreadShot:
		return cfg.SpreadShot
	case WeaponRapidFire:
		return cfg.RapidFire
	default:
		return cfg.Default
	}
}

// Move is a horizontal steering intent.
type Move int

const (
	MoveNone Move = iota
	MoveLeft
	MoveRight
)

// Player is the ship controlled by the user.
type Player struct {
	X       float64  `msgpack:"x"`
	Y       float64  `msgpack:"y"`
	W       float64  `msgpack:"w"`
	H       float64  `msgpack:"h"`
	Speed   float64  `msgpack:"speed"`
	Bullets []Bullet `msgpack:"bullets"`
}

func newPlayer(cfg config.ShooterConfig) Player {
	return Player{
		X:       (cfg.Field.Width - cfg.Player.Width) / 2,
		Y:       cfg.Player.StartY,
		W:       cfg.Player.Width,
		H:       cfg.Player.Height,
		Speed:   cfg.Player.Speed,
		Bullets: make([]Bullet, 0, 32),
	}
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Steer moves the ship one tick in the given direction, clamped to the field.
// Unrecognised moves are ignored.
func (p *Player) Steer(m Move, fieldW float64) {
	var dx float64
	switch m {
	case MoveLeft:
		dx = -p.Speed
	case MoveRight:
		dx = p.Speed
	default:
		return
	}
	p.X = core.ClampF(p.X+dx, 0, fieldW-p.W)
}

// Enemy is a descending hostile ship.
type Enemy struct {
	X      float64   `msgpack:"x"`
	Y      float64   `msgpack:"y"`
	W      float64   `msgpack:"w"`
	H      float64   `msgpack:"h"`
	Speed  float64   `msgpack:"speed"`
	Health float64   `msgpack:"health"`
	Points int       `msgpack:"points"`
	Kind   EnemyKind `msgpack:"kind"`
}

func newEnemy(kind EnemyKind, stats config.EnemyStats, x float64) Enemy {
	return Enemy{
		X:      x,
		Y:      -stats.Height,
		W:      stats.Width,
		H:      stats.Height,
		Speed:  stats.Speed,
		Health: stats.Health,
		Points: stats.Points,
		Kind:   kind,
	}
}

// Box returns the enemy's bounding box.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Bullet is a projectile fired by the player.
type Bullet struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	W      float64 `msgpack:"w"`
	H      float64 `msgpack:"h"`
	Speed  float64 `msgpack:"speed"` // Upward speed per tick
	Drift  float64 `msgpack:"drift"` // Horizontal speed per tick
	Damage float64 `msgpack:"damage"`
}

// Box returns the bullet's bounding box.
func (b *Bullet) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// PowerUp is a falling pickup that swaps the active weapon when shot.
type PowerUp struct {
	X         float64       `msgpack:"x"`
	Y         float64       `msgpack:"y"`
	W         float64       `msgpack:"w"`
	H         float64       `msgpack:"h"`
	FallSpeed float64       `msgpack:"fall_speed"`
	Kind      PowerUpKind   `msgpack:"kind"`
	Duration  time.Duration `msgpack:"duration"`
}

func newPowerUp(kind PowerUpKind, cfg config.PowerUpsConfig, x, y float64) PowerUp {
	return PowerUp{
		X:         x,
		Y:         y,
		W:         cfg.Width,
		H:         cfg.Height,
		FallSpeed: cfg.FallSpeed,
		Kind:      kind,
		Duration:  cfg.Duration(),
	}
}

// Box returns the power-up's bounding box.
func (p *PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}
