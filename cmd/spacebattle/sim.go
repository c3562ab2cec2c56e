package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
	"github.com/vovakirdan/spacebattle/internal/shooter"
)

var (
	flagTicks    int
	flagSimTouch bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Run the engine without a terminal. The autopilot chases the lowest enemy
and fires continuously until the game ends or --ticks have run. The final
state is logged, including a hash that is identical for identical seeds.

Examples:
  spacebattle sim
  spacebattle sim --ticks 36000 --seed 42
  spacebattle sim --difficulty hard --touch`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimTouch, "touch", false, "Enable auto-fire")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacebattle-sim",
	})

	if flagTicks <= 0 {
		logger.Error("ticks must be positive", "ticks", flagTicks)
		os.Exit(1)
	}
	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = 60
	}
	dt := time.Second / time.Duration(tickRate)

	spacebattle.SetConfigPath(flagConfig)
	spacebattle.SetDifficultyPreset(flagDifficulty)

	e := shooter.New(spacebattle.LoadConfig(), shooter.Options{
		Seed:     flagSeed,
		AutoFire: flagSimTouch,
	})
	e.Start()

	logger.Info("simulation started", "seed", flagSeed, "ticks", flagTicks, "fps", tickRate)
	for range flagTicks {
		if e.Phase() != shooter.PhasePlaying {
			break
		}
		e.Tick(dt, shooter.Autopilot(e.Snapshot()))
		for _, ev := range e.DrainEvents() {
			switch ev := ev.(type) {
			case core.GameResultEvent:
				logger.Info("game over", "score", ev.Score)
			case core.HighScoreUpdatedEvent:
				logger.Info("new high score", "score", ev.Score)
			}
		}
	}

	s := e.Snapshot()
	logger.Info("simulation finished",
		"phase", s.Phase,
		"tick", s.Tick,
		"sim_time", e.Now(),
		"score", s.Score,
		"lives", s.Lives,
		"level", s.Level,
		"enemies", len(s.Enemies),
		"powerups", len(s.PowerUps),
		"weapon", s.Weapon,
		"hash", fmt.Sprintf("%016x", s.Hash()),
	)
}
