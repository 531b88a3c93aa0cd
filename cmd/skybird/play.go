package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skybird/internal/audio"
	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
	"github.com/vovakirdan/skybird/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagName       string
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing skybird.

Controls:
  Space/Up/W  - Hold to climb (also starts and restarts)
  Enter       - Save your name on the leaderboard after a run
  Esc         - Skip saving
  Ctrl+S      - Save a screenshot
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Difficulty options (how fast obstacles speed up every 30 seconds):
  easy   - 5% per step
  normal - 10% per step
  hard   - 20% per step
  fixed  - No speed up

Examples:
  skybird play
  skybird play --difficulty hard
  skybird play --mute --store memory
  skybird play --config ./my-skybird.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name pre-filled in the high score dialog")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 1, "Sound volume from 0 to 1")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	rt.ScreenW, rt.ScreenH = terminalSize(rt.ScreenW, rt.ScreenH)

	// The alternate screen owns stdout, so log to a file
	var logOut io.Writer = io.Discard
	if logFile := openLogFile(); logFile != nil {
		defer logFile.Close()
		logOut = logFile
	}
	logger := newLogger(logOut, "skybird")

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	board, err := openBoard(cfg, store, logger)
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(cfg.Audio)
	sound.SetVolume(flagVolume)
	if !flagMute {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing without sound", "error", err)
		}
	}
	defer sound.Close()

	opts := tui.Options{
		Board:  board,
		Sound:  sound,
		Logger: logger,
		Player: playerName(),
	}
	// Avoid a typed nil in the interface
	if store != nil {
		opts.History = store
	}

	if err := tui.Run(cfg, rt, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadGameConfig loads the YAML config and applies --difficulty.
func loadGameConfig() (config.SkybirdConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SkybirdConfig{}, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.SkybirdConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openLogFile opens ~/.skybird/skybird.log for appending.
func openLogFile() *os.File {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".skybird")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "skybird.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil
	}
	return f
}

// terminalSize returns the size of stdout, or the given defaults when it is not a terminal.
func terminalSize(defW, defH int) (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return defW, defH
}

// playerName returns --name, or the login name when none was given.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
