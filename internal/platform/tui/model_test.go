package tui

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacebattle/internal/bridge"
	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
	"github.com/vovakirdan/spacebattle/internal/savegame"
	"github.com/vovakirdan/spacebattle/internal/storage"
)

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

var quietLogger = log.New(io.Discard)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m, _ = send(t, m, TickMsg(time.Time{}))
	}
	return m
}

func playerX(t *testing.T, m Model) float64 {
	t.Helper()
	g, ok := m.game.(*spacebattle.Game)
	if !ok {
		t.Fatalf("game is %T", m.game)
	}
	return g.Snapshot().Player.X
}

func TestModelHoldsMovementBetweenRepeats(t *testing.T) {
	m := NewModel(spacebattle.New(), nil, testConfig, ModelOptions{Logger: quietLogger})
	start := playerX(t, m)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, defaultHoldTicks)
	held := playerX(t, m)
	if held >= start {
		t.Fatalf("player should move left while held: %v -> %v", start, held)
	}

	m = tick(t, m, 5)
	if got := playerX(t, m); got != held {
		t.Errorf("player kept moving after the hold expired: %v -> %v", held, got)
	}
}

func TestModelBackPausesThenLeaves(t *testing.T) {
	m := NewModel(spacebattle.New(), nil, testConfig, ModelOptions{Logger: quietLogger})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m, 1)
	if !m.gameState.Paused {
		t.Fatal("back while playing should pause")
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should leave the game")
	}
	if cmd == nil {
		t.Error("standalone model should quit the program when leaving")
	}
}

func TestModelEmbeddedLeaveKeepsProgram(t *testing.T) {
	m := NewModel(spacebattle.New(), nil, testConfig, ModelOptions{Embedded: true, Logger: quietLogger})

	m, _ = send(t, m, runeKey('p'))
	m = tick(t, m, 1)
	m, cmd := send(t, m, runeKey('b'))

	if !m.BackToMenu() {
		t.Error("expected back to menu")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(spacebattle.New(), nil, testConfig, ModelOptions{Logger: quietLogger})
	m, cmd := send(t, m, runeKey('q'))
	if !m.Quitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := NewModel(spacebattle.New(), nil, testConfig, ModelOptions{Logger: quietLogger})
	m = tick(t, m, 30)
	before := m.game.(*spacebattle.Game).Snapshot().Tick

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if got := m.game.(*spacebattle.Game).Snapshot().Tick; got != before {
		t.Errorf("resize restarted the game: tick %d -> %d", before, got)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSaveAndResume(t *testing.T) {
	store := openStore(t)
	b := bridge.New(store, quietLogger, spacebattle.ID, "ada")

	m := NewModel(spacebattle.New(), b, testConfig, ModelOptions{Logger: quietLogger})
	m = tick(t, m, 90)
	saved := m.game.(*spacebattle.Game).Snapshot()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.status, "Game saved") {
		t.Fatalf("status = %q", m.status)
	}
	if _, err := store.Get(savegame.SaveKey(spacebattle.ID, "ada")); err != nil {
		t.Fatalf("saved game not stored: %v", err)
	}

	resumed := NewModel(spacebattle.New(), b, testConfig, ModelOptions{Resume: true, Logger: quietLogger})
	got := resumed.game.(*spacebattle.Game).Snapshot()
	if got.Hash() != saved.Hash() {
		t.Error("resumed game differs from the saved one")
	}
	if !resumed.gameState.Paused {
		t.Error("resumed game should start paused")
	}
	if !strings.Contains(resumed.View(), "Game resumed") {
		t.Error("view should show the resume status")
	}
}

func TestModelResumeWithoutSave(t *testing.T) {
	b := bridge.New(openStore(t), quietLogger, spacebattle.ID, "bob")
	m := NewModel(spacebattle.New(), b, testConfig, ModelOptions{Resume: true, Logger: quietLogger})
	if m.status != "No saved game, starting fresh" {
		t.Errorf("status = %q", m.status)
	}
	if m.gameState.Paused {
		t.Error("fresh game should not be paused")
	}
}

func TestModelSaveWithoutStore(t *testing.T) {
	m := NewModel(spacebattle.New(), nil, testConfig, ModelOptions{Logger: quietLogger})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status != "Saving is not available" {
		t.Errorf("status = %q", m.status)
	}
}

// scriptedGame ends after a fixed number of steps.
type scriptedGame struct {
	steps int
	endAt int
	score int
	over  bool
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.steps, g.over = 0, false }
func (g *scriptedGame) Render(dst *core.Screen) { dst.Clear() }
func (g *scriptedGame) State() core.GameState { return core.GameState{Score: g.score, GameOver: g.over} }
func (g *scriptedGame) SaveGame() ([]byte, error) { return []byte("scripted"), nil }
func (g *scriptedGame) LoadGame(data []byte) error { return errors.New("not supported") }

func (g *scriptedGame) Step(core.InputFrame) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	var events []core.Event
	if g.steps == g.endAt {
		g.over = true
		events = append(events,
			core.GameResultEvent{Score: g.score, Timestamp: time.Now()},
			core.HighScoreUpdatedEvent{Score: g.score, Timestamp: time.Now()},
		)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func TestModelRecordsGameOver(t *testing.T) {
	store := openStore(t)
	b := bridge.New(store, quietLogger, "scripted", "cy")
	g := &scriptedGame{endAt: 5, score: 1200}

	m := NewModel(g, b, testConfig, ModelOptions{Logger: quietLogger})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if _, err := store.Get(savegame.SaveKey("scripted", "cy")); err != nil {
		t.Fatalf("saved game not stored: %v", err)
	}

	m = tick(t, m, 10)
	if !m.gameState.GameOver {
		t.Fatal("game should be over")
	}

	best, err := store.PlayerHighScore("scripted", "cy")
	if err != nil || best != 1200 {
		t.Errorf("PlayerHighScore = %d, %v; want 1200", best, err)
	}
	if _, err := store.Get(savegame.SaveKey("scripted", "cy")); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("saved game should be discarded after game over, got %v", err)
	}
	if _, err := store.Get(savegame.ProfileKey("cy")); err != nil {
		t.Errorf("profile should be written on a new high score: %v", err)
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(2, 1, "HELLO", core.ColorBrightCyan)
	s.DrawText(0, 2, "plain")

	out := RenderScreen(s)
	if !strings.Contains(out, "HELLO") || !strings.Contains(out, "plain") {
		t.Errorf("RenderScreen lost text:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("RenderScreen rows = %d, want 3", got+1)
	}
}
