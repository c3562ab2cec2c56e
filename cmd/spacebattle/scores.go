package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacebattle/internal/games/spacebattle"
	"github.com/vovakirdan/spacebattle/internal/registry"
	"github.com/vovakirdan/spacebattle/internal/storage"
)

var flagPlayers bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 games for a mode, or with --players each player's best.

Examples:
  spacebattle scores
  spacebattle scores shooter_touch
  spacebattle scores --players`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlayers, "players", false, "Rank players by their best game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := spacebattle.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'spacebattle list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlayers {
		printPlayers(store, gameID, title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		printNoScores(gameID)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Players: %d\n", stats.HighScore, stats.GamesCount, stats.PlayerCount)
	}
}

func printPlayers(store *storage.Store, gameID, title string) {
	players, err := store.TopPlayers(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving players: %v\n", err)
		return
	}

	fmt.Printf("Top Players - %s\n", title)
	fmt.Println()

	if len(players) == 0 {
		printNoScores(gameID)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Best", "Games")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "----", "-----")
	for i, p := range players {
		fmt.Printf("  %-4d  %-16s  %-10d  %d\n", i+1, p.Player, p.Score, p.GamesCount)
	}
}

func printNoScores(gameID string) {
	fmt.Println("No scores recorded yet.")
	fmt.Println()
	fmt.Printf("Play 'spacebattle play %s' to set the first high score!\n", gameID)
}
