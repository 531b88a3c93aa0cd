package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative override checked after the user config.
const LocalConfigPath = "configs/skybird.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.skybird/configs/skybird.yaml -> ./configs/skybird.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides the keys it sets.
func Load(customPath string) (SkybirdConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkybirdConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SkybirdConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("skybird.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(nil)
	if err != nil {
		return DefaultSkybirdConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the embedded defaults and validates the result.
func Parse(data []byte) (SkybirdConfig, error) {
	cfg := DefaultSkybirdConfig()
	if err := yaml.Unmarshal(defaultSkybirdYAML, &cfg); err != nil {
		return SkybirdConfig{}, fmt.Errorf("embedded defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SkybirdConfig{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return SkybirdConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c SkybirdConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Bird.Size <= 0 || c.Bird.Size >= c.World.Height:
		return fmt.Errorf("bird size %v does not fit a world of height %v", c.Bird.Size, c.World.Height)
	case c.Spawn.BaseSpeed < 0 || c.Spawn.SpeedJitter < 0:
		return fmt.Errorf("obstacle speeds must be non-negative")
	case c.Events.Flock.Speed < 0 || c.Events.Lightning.Speed < 0:
		return fmt.Errorf("formation speeds must be non-negative")
	case c.Events.Flock.Lanes < 0:
		return fmt.Errorf("flock lanes must not be negative, got %d", c.Events.Flock.Lanes)
	case c.Events.Flock.GapLane < 0 || c.Events.Flock.GapLane >= c.Events.Flock.Lanes:
		return fmt.Errorf("flock gap lane %d is not one of %d lanes", c.Events.Flock.GapLane, c.Events.Flock.Lanes)
	case c.Events.Lightning.Count < 0:
		return fmt.Errorf("lightning count must not be negative, got %d", c.Events.Lightning.Count)
	case c.Spawn.TopBand >= c.World.Height:
		return fmt.Errorf("spawn top band %v leaves no room in a world of height %v", c.Spawn.TopBand, c.World.Height)
	case c.Difficulty.Growth < 1:
		return fmt.Errorf("difficulty growth must be at least 1, got %v", c.Difficulty.Growth)
	case c.Leaderboard.Size <= 0:
		return fmt.Errorf("leaderboard size must be positive, got %d", c.Leaderboard.Size)
	case c.Leaderboard.Key == "":
		return fmt.Errorf("leaderboard key must not be empty")
	case c.Score.TickInterval <= 0:
		return fmt.Errorf("score tick interval must be positive")
	}
	return nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skybird", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset keeps the configured growth.
func ApplyPreset(cfg *SkybirdConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Growth = GrowthForPreset(preset)
}
