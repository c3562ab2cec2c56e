package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacebattle/internal/bridge"
	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/registry"
)

// statusTicks is how long a status line stays on screen.
const statusTicks = 120

// ModelOptions tune how a game model starts.
type ModelOptions struct {
	Resume   bool        // Load the player's suspended game, if any
	Embedded bool        // Leave the game without quitting the program
	Logger   *log.Logger // Defaults to log.Default()
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	bridge     *bridge.Bridge
	config     core.RuntimeConfig
	opts       ModelOptions
	logger     *log.Logger
	keys       *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	status     string
	statusLeft int
}

// NewModel creates a model for game and starts it. b may be nil when scores
// are not kept.
func NewModel(game registry.Game, b *bridge.Bridge, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		bridge:     b,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       NewKeyMapper(),
		held:       NewHeldKeys(defaultHoldTicks),
		inputFrame: core.NewInputFrame(),
	}
	m.start()
	return m
}

// start resets the game, restores a suspended one if asked and loads the
// player's high score. The high score goes last so a restored session cannot
// lower it.
func (m *Model) start() {
	m.game.Reset(m.config)
	if m.bridge == nil {
		m.gameState = m.game.State()
		return
	}

	if m.opts.Resume {
		m.resume()
	}

	if hs, ok := m.game.(registry.HighScorer); ok {
		best, err := m.bridge.HighScore()
		if err != nil {
			m.logger.Warn("cannot load high score", "error", err)
		} else {
			hs.SetHighScore(best)
		}
	}
	m.gameState = m.game.State()
}

func (m *Model) resume() {
	saver, ok := m.game.(registry.Saver)
	if !ok {
		m.setStatus("This game cannot be resumed")
		return
	}
	data, found, err := m.bridge.Resume()
	switch {
	case err != nil:
		m.logger.Warn("cannot resume game", "error", err)
		m.setStatus("Saved game unavailable")
	case !found:
		m.setStatus("No saved game, starting fresh")
	default:
		if err := saver.LoadGame(data); err != nil {
			m.logger.Warn("cannot load saved game", "error", err)
			m.setStatus("Saved game is damaged, starting fresh")
			return
		}
		m.setStatus("Game resumed, press P to continue")
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case action == core.ActionSave:
		m.saveGame()
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			return m.leave()
		}
		// Back while playing pauses first
		m.inputFrame.Set(core.ActionPause)
	case Holdable(action):
		m.held.Press(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// leave ends the game: the program quits when standalone, the host model
// takes over when embedded.
func (m Model) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.opts.Embedded {
		return m, nil
	}
	return m, tea.Quit
}

// saveGame suspends the running game for the player.
func (m *Model) saveGame() {
	saver, ok := m.game.(registry.Saver)
	if !ok || m.bridge == nil {
		m.setStatus("Saving is not available")
		return
	}
	if m.gameState.GameOver {
		m.setStatus("Nothing to save")
		return
	}
	data, err := saver.SaveGame()
	if err == nil {
		err = m.bridge.Suspend(data)
	}
	if err != nil {
		m.logger.Error("cannot save game", "error", err)
		m.setStatus("Save failed")
		return
	}
	m.setStatus("Game saved, resume with --resume")
}

// handleResize processes window resize events. The field scales to the
// screen, so the running game is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	m.held.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.record(result.Events)

	switch {
	case m.gameState.GameOver && !wasOver:
		m.held.Release()
		m.logger.Debug("game finished", "game", m.game.ID(), "score", m.gameState.Score, "level", m.gameState.Level)
	case !m.gameState.GameOver && wasOver:
		m.held.Release()
		m.setStatus("")
	}

	// Clear input for next frame
	m.inputFrame.Clear()
	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// record forwards game events to the bridge. A finished game also drops the
// player's suspended copy so it cannot be replayed.
func (m *Model) record(events []core.Event) {
	if m.bridge == nil || len(events) == 0 {
		return
	}
	if err := m.bridge.HandleAll(events); err != nil {
		m.logger.Error("cannot record game events", "error", err)
	}
	for _, ev := range events {
		if _, ok := ev.(core.GameResultEvent); !ok {
			continue
		}
		if err := m.bridge.Discard(); err != nil {
			m.logger.Warn("cannot discard saved game", "error", err)
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
	if s == "" {
		m.statusLeft = 0
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 2 {
		m.screen.DrawTextCentered(m.screen.Height()-1, " "+m.status+" ")
	}
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for game. It returns true when the
// player left for the menu rather than quitting.
func Run(game registry.Game, b *bridge.Bridge, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	model := NewModel(game, b, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
