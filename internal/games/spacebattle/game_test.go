package spacebattle

import (
	"errors"
	"testing"

	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/registry"
	"github.com/vovakirdan/spacebattle/internal/shooter"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{ID, TouchID} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if _, ok := g.(registry.Saver); !ok {
			t.Errorf("%s should implement registry.Saver", id)
		}
		if _, ok := g.(registry.HighScorer); !ok {
			t.Errorf("%s should implement registry.HighScorer", id)
		}
	}
}

func TestStepMapsActions(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	for range 10 {
		g.Step(frame(core.ActionLeft))
	}
	if x := g.Snapshot().Player.X; x != 325 {
		t.Errorf("x = %v, expected 325", x)
	}

	// Opposite directions cancel out
	g.Step(frame(core.ActionLeft, core.ActionRight))
	if x := g.Snapshot().Player.X; x != 325 {
		t.Errorf("x = %v after conflicting input, expected 325", x)
	}

	g.Step(frame(core.ActionFire))
	if n := len(g.Snapshot().Bullets); n != 1 {
		t.Errorf("bullets = %d, expected 1", n)
	}
}

func TestPauseFreezes(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	tick := g.Snapshot().Tick
	for range 10 {
		g.Step(frame(core.ActionLeft))
	}
	if g.Snapshot().Tick != tick {
		t.Error("paused game should not tick")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame())
	if g.Snapshot().Tick != tick+1 {
		t.Error("unpaused game should tick again")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	for range 5 {
		g.Step(frame(core.ActionRight))
	}

	g.Step(frame(core.ActionRestart))
	if g.Snapshot().Tick != 6 {
		t.Error("restart should be ignored while playing")
	}
}

func TestTouchModeFiresAutomatically(t *testing.T) {
	g := NewTouch()
	g.Reset(testRuntime())
	for range 40 {
		g.Step(frame())
	}
	if len(g.Snapshot().Bullets) == 0 {
		t.Error("touch mode should fire without input")
	}
}

func TestSaveAndLoad(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	for i := range 300 {
		g.Step(frame(core.ActionFire, []core.Action{core.ActionLeft, core.ActionRight}[i/50%2]))
	}
	data, err := g.SaveGame()
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	want := g.Snapshot().Hash()

	other := New()
	other.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if err := other.LoadGame(data); err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if other.Snapshot().Hash() != want {
		t.Error("loaded game differs from saved game")
	}
	if !other.State().Paused {
		t.Error("loaded game should start paused")
	}

	if err := other.LoadGame([]byte("nope")); err == nil {
		t.Error("garbage save should fail")
	}
}

func TestLoadKeepsMode(t *testing.T) {
	keyboard := New()
	keyboard.Reset(testRuntime())
	for range 30 {
		keyboard.Step(frame(core.ActionFire))
	}
	keyboardSave, err := keyboard.SaveGame()
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	touch := NewTouch()
	touch.Reset(testRuntime())
	touchSave, err := touch.SaveGame()
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	if err := touch.LoadGame(keyboardSave); !errors.Is(err, shooter.ErrBadState) {
		t.Errorf("touch game loaded a keyboard save: %v", err)
	}
	if err := keyboard.LoadGame(touchSave); !errors.Is(err, shooter.ErrBadState) {
		t.Errorf("keyboard game loaded a touch save: %v", err)
	}

	// The rejected load leaves auto-fire running
	for range 120 {
		touch.Step(frame())
	}
	if len(touch.Snapshot().Bullets) == 0 {
		t.Error("touch game stopped firing after a rejected load")
	}
}

func TestHighScoreSurvivesReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.SetHighScore(1234)
	g.Reset(testRuntime())
	if hs := g.Snapshot().HighScore; hs != 1234 {
		t.Errorf("high score = %d, expected 1234", hs)
	}
}

func TestPresetApplied(t *testing.T) {
	SetDifficultyPreset("easy")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(testRuntime())
	if lives := g.Snapshot().Lives; lives != 5 {
		t.Errorf("easy lives = %d, expected 5", lives)
	}
	if g.Snapshot().Phase != shooter.PhasePlaying {
		t.Error("Reset should start the game")
	}
}
