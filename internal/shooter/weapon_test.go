package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/spacebattle/internal/config"
)

func newTestWeapons() (*Weapons, *Scheduler) {
	cfg := config.DefaultShooterConfig()
	sched := NewScheduler()
	return NewWeapons(cfg.Weapons, cfg.PowerUps.CountdownStep(), sched), sched
}

func testPlayer() Player {
	return newPlayer(config.DefaultShooterConfig())
}

func TestWeaponPatterns(t *testing.T) {
	tests := []struct {
		kind   WeaponKind
		xs     []float64 // Bullet left edges for a ship centered at 400
		drift  []float64
		damage float64
		width  float64
	}{
		{WeaponDefault, []float64{397.5}, []float64{0}, 1, 5},
		{WeaponDoubleLaser, []float64{387.5, 407.5}, []float64{0, 0}, 1, 5},
		{WeaponSpreadShot, []float64{377.5, 397.5, 417.5}, []float64{-2, 0, 2}, 1, 5},
		{WeaponRapidFire, []float64{398.5}, []float64{0}, 0.5, 3},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w, _ := newTestWeapons()
			w.Activate(tc.kind, 10*time.Second)
			p := testPlayer()

			if n := w.Fire(&p, 0); n != len(tc.xs) {
				t.Fatalf("Fire() = %d bullets, expected %d", n, len(tc.xs))
			}
			for i, b := range p.Bullets {
				if b.X != tc.xs[i] {
					t.Errorf("bullet %d x = %v, expected %v", i, b.X, tc.xs[i])
				}
				if b.Drift != tc.drift[i] {
					t.Errorf("bullet %d drift = %v, expected %v", i, b.Drift, tc.drift[i])
				}
				if b.Damage != tc.damage || b.W != tc.width {
					t.Errorf("bullet %d damage=%v width=%v", i, b.Damage, b.W)
				}
				if b.Y != p.Y {
					t.Errorf("bullet %d y = %v, expected ship top %v", i, b.Y, p.Y)
				}
			}
		})
	}
}

func TestWeaponCooldowns(t *testing.T) {
	tests := []struct {
		kind     WeaponKind
		cooldown time.Duration
	}{
		{WeaponDefault, 500 * time.Millisecond},
		{WeaponDoubleLaser, 400 * time.Millisecond},
		{WeaponSpreadShot, 600 * time.Millisecond},
		{WeaponRapidFire, 200 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w, _ := newTestWeapons()
			w.Activate(tc.kind, time.Minute)
			p := testPlayer()

			start := time.Second
			if w.Fire(&p, start) == 0 {
				t.Fatal("first shot should fire")
			}
			if w.Fire(&p, start+tc.cooldown-time.Millisecond) != 0 {
				t.Error("shot inside cooldown should be dropped")
			}
			if w.Fire(&p, start+tc.cooldown) == 0 {
				t.Error("shot after cooldown should fire")
			}
		})
	}
}

func TestRapidFireCountdown(t *testing.T) {
	w, sched := newTestWeapons()
	w.Activate(WeaponRapidFire, 10*time.Second)
	if w.Active() != WeaponRapidFire || w.Remaining() != 10*time.Second {
		t.Fatalf("after activate: %s %v", w.Active(), w.Remaining())
	}

	// Step in 100ms countdown intervals; the weapon holds while time remains
	for elapsed := 100 * time.Millisecond; elapsed < 10*time.Second; elapsed += 100 * time.Millisecond {
		sched.Advance(100 * time.Millisecond)
		if w.Active() != WeaponRapidFire {
			t.Fatalf("reverted early at %v with %v remaining", elapsed, w.Remaining())
		}
		if w.Remaining() != 10*time.Second-elapsed {
			t.Fatalf("remaining at %v = %v", elapsed, w.Remaining())
		}
	}

	sched.Advance(99 * time.Millisecond)
	if w.Active() != WeaponRapidFire {
		t.Fatal("still active at 9999ms")
	}
	sched.Advance(time.Millisecond)
	if w.Active() != WeaponDefault || w.Remaining() != 0 {
		t.Errorf("at 10000ms: %s %v, expected default", w.Active(), w.Remaining())
	}
	if sched.Pending(TimerWeaponCountdown) {
		t.Error("countdown should stop after reverting")
	}
}

func TestActivateOverrides(t *testing.T) {
	w, sched := newTestWeapons()
	w.Activate(WeaponDoubleLaser, 10*time.Second)
	sched.Advance(6 * time.Second)

	w.Activate(WeaponSpreadShot, 10*time.Second)
	if w.Active() != WeaponSpreadShot || w.Remaining() != 10*time.Second {
		t.Errorf("new power-up should override: %s %v", w.Active(), w.Remaining())
	}

	sched.Advance(9 * time.Second)
	if w.Active() != WeaponSpreadShot {
		t.Error("durations must not stack or leak from the old countdown")
	}
	sched.Advance(time.Second)
	if w.Active() != WeaponDefault {
		t.Error("expected revert 10s after the second pickup")
	}
}

func TestWeaponReset(t *testing.T) {
	w, sched := newTestWeapons()
	p := testPlayer()
	w.Activate(WeaponRapidFire, 10*time.Second)
	w.Fire(&p, 0)

	w.Reset()
	if w.Active() != WeaponDefault || sched.Pending(TimerWeaponCountdown) {
		t.Error("Reset should restore the default weapon and stop the countdown")
	}
	if w.Fire(&p, time.Millisecond) == 0 {
		t.Error("Reset should clear the cooldown")
	}
}
