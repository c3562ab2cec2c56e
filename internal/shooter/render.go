package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/spacebattle/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	PlayerChar  = '▲'
	BulletChar  = '|'
	BasicChar   = '▼'
	FastChar    = '◆'
	TankChar    = '█'
	PowerUpChar = '◎'
)

var enemyStyle = map[EnemyKind]struct {
	glyph rune
	color core.Color
}{
	EnemyBasic: {BasicChar, core.ColorRed},
	EnemyFast:  {FastChar, core.ColorOrange},
	EnemyTank:  {TankChar, core.ColorMagenta},
}

var powerUpColor = map[PowerUpKind]core.Color{
	PowerUpDoubleLaser: core.ColorBrightCyan,
	PowerUpSpreadShot:  core.ColorBrightGreen,
	PowerUpRapidFire:   core.ColorBrightYellow,
}

// viewport maps field coordinates onto the bordered area of a screen.
type viewport struct {
	inner  core.Rect
	sx, sy float64
}

func newViewport(s Snapshot, dst *core.Screen) viewport {
	// Row 0 is the HUD, the rest is a bordered field.
	inner := core.NewRect(1, 2, dst.Width()-2, dst.Height()-3)
	v := viewport{inner: inner}
	if s.FieldW > 0 {
		v.sx = float64(inner.W) / s.FieldW
	}
	if s.FieldH > 0 {
		v.sy = float64(inner.H) / s.FieldH
	}
	return v
}

// rect converts a field box to screen cells. Anything visible is at least one
// cell large so small bullets never vanish.
func (v viewport) rect(b core.Box) core.Rect {
	x := v.inner.X + int(math.Floor(b.X*v.sx))
	y := v.inner.Y + int(math.Floor(b.Y*v.sy))
	w := core.Max(1, int(math.Round(b.W*v.sx)))
	h := core.Max(1, int(math.Round(b.H*v.sy)))
	return core.NewRect(x, y, w, h)
}

// fill draws r clipped to the field area.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	for y := core.Max(r.Y, v.inner.Y); y < core.Min(r.Bottom(), v.inner.Bottom()); y++ {
		for x := core.Max(r.X, v.inner.X); x < core.Min(r.Right(), v.inner.Right()); x++ {
			dst.SetColored(x, y, glyph, c)
		}
	}
}

// Render draws a snapshot to the screen, scaling the field to fit.
func Render(s Snapshot, dst *core.Screen, paused bool) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 10 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	drawHUD(s, dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1))

	v := newViewport(s, dst)
	for _, p := range s.PowerUps {
		v.fill(dst, v.rect(p.Box()), PowerUpChar, powerUpColor[p.Kind])
	}
	for _, e := range s.Enemies {
		st := enemyStyle[e.Kind]
		v.fill(dst, v.rect(e.Box()), st.glyph, st.color)
	}
	for _, b := range s.Bullets {
		v.fill(dst, v.rect(b.Box()), BulletChar, core.ColorBrightYellow)
	}
	v.fill(dst, v.rect(s.Player), PlayerChar, core.ColorBrightBlue)

	switch {
	case s.Phase == PhaseGameOver:
		drawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	case paused:
		drawMessage(dst, "PAUSED", "Press P to resume")
	case s.Phase == PhaseIdle:
		drawMessage(dst, "SPACE BATTLE", "Press Space to start")
	}
}

func drawHUD(s Snapshot, dst *core.Screen) {
	left := fmt.Sprintf(" Score: %d  Lives: %d  Level: %d ", s.Score, s.Lives, s.Level)
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	right := fmt.Sprintf(" Best: %d ", s.HighScore)
	if s.Weapon != WeaponDefault.String() {
		secs := s.WeaponRemaining.Seconds()
		right = fmt.Sprintf(" %s %.1fs %s", s.Weapon, secs, right)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightCyan)
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r)
	dst.DrawTextColored(r.X+(boxW-len(title))/2, r.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(r.X+(boxW-len(subtitle))/2, r.Y+3, subtitle)
}
