package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/skybird.yaml
var defaultSkybirdYAML []byte

// DefaultSkybirdConfig returns the hardcoded default configuration.
// It mirrors defaults/skybird.yaml and is used when the embedded file cannot be parsed.
func DefaultSkybirdConfig() SkybirdConfig {
	return SkybirdConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			HazardHeight: 30,
		},
		Bird: BirdConfig{
			X:           100,
			Size:        20,
			Gravity:     0.05,
			JumpImpulse: -1.6,
		},
		Score: ScoreConfig{
			Initial:      100,
			PassBonus:    10,
			TickInterval: 100 * time.Millisecond,
		},
		Spawn: SpawnConfig{
			Interval:    Ramp{Base: 90, Min: 30, Step: 5, Every: 5 * time.Second},
			TopBand:     130,
			BaseSpeed:   2,
			SpeedJitter: 1,
			StackAfter:  30 * time.Second,
			StackChance: 0.3,
			Cloud:       SizeRange{MinWidth: 70, WidthJitter: 20, MinHeight: 30, HeightJitter: 10},
			Hawk:        SizeRange{MinWidth: 25, WidthJitter: 10, MinHeight: 15, HeightJitter: 5},
		},
		Events: EventConfig{
			Interval: Ramp{Base: 600, Min: 300, Step: 50, Every: 20 * time.Second},
			Chance:   0.05,
			Flock: FlockConfig{
				Lanes:      3,
				GapLane:    1,
				LaneOffset: 50,
				Width:      75,
				Height:     45,
				Speed:      3,
			},
			Lightning: LightningConfig{
				Count:        7,
				Spacing:      80,
				BottomMargin: 100,
				Width:        15,
				Height:       60,
				Speed:        4,
			},
		},
		Difficulty: DifficultyConfig{
			Growth:    1.1,
			StepEvery: 30 * time.Second,
		},
		Leaderboard: LeaderboardConfig{
			Size: 7,
			Key:  "birdGameHighScores",
		},
		Input: InputConfig{
			ReleaseAfter: 120 * time.Millisecond,
		},
		Audio: AudioConfig{
			NoteInterval:     600 * time.Millisecond,
			GameOverInterval: 300 * time.Millisecond,
			LongJumpAfter:    200 * time.Millisecond,
			LongJumpRepeat:   500 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSkybirdYAML
}
