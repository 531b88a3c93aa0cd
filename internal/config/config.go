// Package config provides YAML-based game configuration loading and
// difficulty management for skybird.
package config

import "time"

// SkybirdConfig contains all configuration for the game.
type SkybirdConfig struct {
	World       WorldConfig       `yaml:"world"`
	Bird        BirdConfig        `yaml:"bird"`
	Score       ScoreConfig       `yaml:"score"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Events      EventConfig       `yaml:"events"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Input       InputConfig       `yaml:"input"`
	Audio       AudioConfig       `yaml:"audio"`
}

// WorldConfig defines the playfield in world units (pixels).
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HazardHeight float64 `yaml:"hazard_height"` // Spike strip along the bottom edge
}

// BirdConfig defines the controlled entity.
type BirdConfig struct {
	X           float64 `yaml:"x"`
	Size        float64 `yaml:"size"`
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every frame
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on flap (negative = up)
}

// ScoreConfig defines how the score accumulates.
type ScoreConfig struct {
	Initial      int           `yaml:"initial"`
	PassBonus    int           `yaml:"pass_bonus"`    // Credited per obstacle leaving the screen
	TickInterval time.Duration `yaml:"tick_interval"` // Wall-clock cadence of the +1 tick
}

// SizeRange is a base size plus a uniform random extra.
type SizeRange struct {
	MinWidth     float64 `yaml:"min_width"`
	WidthJitter  float64 `yaml:"width_jitter"`
	MinHeight    float64 `yaml:"min_height"`
	HeightJitter float64 `yaml:"height_jitter"`
}

// SpawnConfig defines regular obstacle spawning.
type SpawnConfig struct {
	Interval    Ramp          `yaml:"interval"`     // Frames between spawns
	TopBand     float64       `yaml:"top_band"`     // Height excluded from the bottom of the spawn range
	BaseSpeed   float64       `yaml:"base_speed"`   // Speed before jitter and multiplier
	SpeedJitter float64       `yaml:"speed_jitter"` // Uniform extra speed
	StackAfter  time.Duration `yaml:"stack_after"`  // Elapsed time after which double spawns may happen
	StackChance float64       `yaml:"stack_chance"` // Probability of a double spawn
	Cloud       SizeRange     `yaml:"cloud"`
	Hawk        SizeRange     `yaml:"hawk"`
}

// EventConfig defines special formation spawning.
type EventConfig struct {
	Interval  Ramp            `yaml:"interval"` // Frames between event rolls
	Chance    float64         `yaml:"chance"`   // Probability per frame once the interval has passed
	Flock     FlockConfig     `yaml:"flock"`
	Lightning LightningConfig `yaml:"lightning"`
}

// FlockConfig defines the lane formation with a guaranteed gap.
type FlockConfig struct {
	Lanes      int     `yaml:"lanes"`
	GapLane    int     `yaml:"gap_lane"` // Lane index left empty
	LaneOffset float64 `yaml:"lane_offset"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
}

// LightningConfig defines the staggered hazard line.
type LightningConfig struct {
	Count        int     `yaml:"count"`
	Spacing      float64 `yaml:"spacing"`
	BottomMargin float64 `yaml:"bottom_margin"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
}

// DifficultyConfig defines the speed multiplier growth.
type DifficultyConfig struct {
	Growth    float64       `yaml:"growth"`     // Multiplier applied per step
	StepEvery time.Duration `yaml:"step_every"` // Elapsed time per step
}

// LeaderboardConfig defines the persisted high score table.
type LeaderboardConfig struct {
	Size int    `yaml:"size"`
	Key  string `yaml:"key"`
}

// InputConfig defines key handling.
type InputConfig struct {
	ReleaseAfter time.Duration `yaml:"release_after"`
}

// AudioConfig defines sound cue timing.
type AudioConfig struct {
	NoteInterval     time.Duration `yaml:"note_interval"`      // Background melody cadence
	GameOverInterval time.Duration `yaml:"game_over_interval"` // Game over melody cadence
	LongJumpAfter    time.Duration `yaml:"long_jump_after"`
	LongJumpRepeat   time.Duration `yaml:"long_jump_repeat"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// GrowthForPreset returns the speed growth factor for a difficulty preset.
func GrowthForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.05
	case DifficultyHard:
		return 1.2
	case DifficultyFixed:
		return 1.0
	default:
		return 1.1
	}
}

// ParsePreset converts a CLI string into a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
