package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacebattle/internal/bridge"
	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
	"github.com/vovakirdan/spacebattle/internal/platform/tui"
	"github.com/vovakirdan/spacebattle/internal/registry"
	"github.com/vovakirdan/spacebattle/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTouch      bool
	flagResume     bool
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Space Battle",
	Long: `Start playing. The mode defaults to "shooter".

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Fire
  P                - Pause
  Esc/B            - Pause, or leave when paused or game over
  R                - Restart (after game over)
  Ctrl+S           - Save the game for --resume
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, slower waves
  normal - Config as loaded
  hard   - 2 lives, faster waves
  fixed  - Waves never grow with the level

Examples:
  spacebattle play
  spacebattle play --touch
  spacebattle play --difficulty hard
  spacebattle play --resume --player ada
  spacebattle play --config ./my-shooter.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagTouch, "touch", false, "Fire automatically, as on touch screens")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the player's saved game")
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name scores are kept under")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := spacebattle.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	if flagTouch {
		gameID = spacebattle.TouchID
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'spacebattle list' to see available modes.")
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Set config path and difficulty before creation
	spacebattle.SetConfigPath(flagConfig)
	spacebattle.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := fileLogger()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	var b *bridge.Bridge
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		b = bridge.New(store, logger, gameID, flagPlayer)
	}

	_, runErr := tui.Run(game, b, cfg, tui.ModelOptions{Resume: flagResume, Logger: logger})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
