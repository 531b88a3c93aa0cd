// skybird is a side-scrolling bird game for the terminal.
//
// Usage:
//
//	skybird play     - Play a game
//	skybird scores   - Show the leaderboard and run history
//	skybird serve    - Start SSH server for remote play
//	skybird config   - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skybird/skybird.db)
//	--store <backend>    - Leaderboard backend: gdata, sqlite or memory
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "skybird",
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error
	Short: "Skybird - dodge your way through the sky in your terminal",
	Long: `Skybird is a side-scrolling avoidance game. Hold SPACE to climb,
let go to fall, and keep clear of clouds, hawks, flocks, lightning
and the spikes below.

Available commands:
  play     - Play a game
  scores   - View the leaderboard and run history
  serve    - Start SSH server for remote play
  config   - Print the default game config

Examples:
  skybird play
  skybird play --difficulty hard
  skybird scores -i
  skybird serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skybird/skybird.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeGdata, "Leaderboard backend: gdata, sqlite, memory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the level chosen by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
