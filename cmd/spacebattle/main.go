// spacebattle is a terminal arcade shooter: fly a ship along the bottom of the
// field, shoot descending enemies and pick up power-ups.
//
// Usage:
//
//	spacebattle list              - List game modes
//	spacebattle play [mode]       - Play (default: shooter)
//	spacebattle menu              - Start menu to pick a mode interactively
//	spacebattle serve             - Start SSH server for remote play
//	spacebattle scores [mode]     - Show high scores
//	spacebattle sim               - Run a headless autopilot game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.spacebattle/scores.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacebattle/internal/bridge"
	// Import games to register them
	_ "github.com/vovakirdan/spacebattle/internal/games/spacebattle"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacebattle",
	Short: "Space Battle - an arcade shooter in your terminal",
	Long: `Space Battle is a vertically scrolling shooter for the terminal.
Move with A/D or the arrow keys, fire with Space, collect power-ups for
double lasers, spread shots and rapid fire.

Available commands:
  list     - Show game modes
  play     - Play directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless game with the autopilot

Examples:
  spacebattle play
  spacebattle play --touch --difficulty easy
  spacebattle menu
  spacebattle serve --ssh :2222
  spacebattle scores --players
  spacebattle sim --ticks 3600 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacebattle/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// defaultPlayer returns the login name, the name scores are kept under when
// --player is not given.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return bridge.DefaultPlayer
}

// fileLogger returns a logger writing to ~/.spacebattle/spacebattle.log.
// The terminal belongs to the game while it runs, so nothing is logged there.
// The returned closer must be called on exit.
func fileLogger() (*log.Logger, io.Closer) {
	discard := log.New(io.Discard)
	home, err := os.UserHomeDir()
	if err != nil {
		return discard, io.NopCloser(nil)
	}
	dir := filepath.Join(home, ".spacebattle")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, io.NopCloser(nil)
	}
	f, err := os.OpenFile(filepath.Join(dir, "spacebattle.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, io.NopCloser(nil)
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacebattle",
	}), f
}
