package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybird/internal/core"
	"github.com/vovakirdan/skybird/internal/leaderboard"
	"github.com/vovakirdan/skybird/internal/platform/tui"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the leaderboard and a summary of past runs.

Examples:
  skybird scores
  skybird scores --store sqlite
  skybird scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores and run history in a table")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, "skybird")

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	board, err := openBoard(cfg, store, logger)
	if err != nil {
		return err
	}

	if flagInteractive {
		def := core.DefaultConfig()
		width, height := terminalSize(def.ScreenW, def.ScreenH)

		var history tui.RunHistory
		if store != nil {
			history = store
		}
		return tui.RunScoreboard(board, history, width, height)
	}

	entries := board.Entries()

	fmt.Println("High Scores - Skybird")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skybird play' to set the first high score!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
		fmt.Printf("  %-4s  %-12s  %-8s  %s\n", "----", "----", "-----", "----")

		for i, e := range entries {
			fmt.Printf("  %-4s  %-12s  %-8d  %s\n", rank(i), e.Name, e.Score, e.Date)
		}
	}

	if store == nil {
		return nil
	}
	stats, err := store.Stats()
	if err != nil || stats.Runs == 0 {
		return nil
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Played: %s\n",
		stats.Runs, stats.BestScore, stats.AvgScore, stats.TotalPlayed.Round(time.Second))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// rank returns the medal for the top three or the position.
func rank(i int) string {
	if m := leaderboard.Medal(i); m != "" {
		return m
	}
	return fmt.Sprintf("%d", i+1)
}
