package config

import (
	"math"
	"time"
)

// Ramp is a frame count that shrinks in fixed steps as time passes, down to a floor.
type Ramp struct {
	Base  int           `yaml:"base"`  // Frames at elapsed = 0
	Min   int           `yaml:"min"`   // Floor
	Step  int           `yaml:"step"`  // Frames removed per step
	Every time.Duration `yaml:"every"` // Elapsed time per step
}

// At returns max(Min, Base - floor(elapsed/Every)*Step).
func (r Ramp) At(elapsed time.Duration) int {
	frames := r.Base - steps(elapsed, r.Every)*r.Step
	if frames < r.Min {
		return r.Min
	}
	return frames
}

// DifficultyCurve derives time-based game parameters from elapsed play time.
type DifficultyCurve struct {
	cfg    DifficultyConfig
	spawn  Ramp
	events Ramp
}

// NewDifficultyCurve creates a curve from the game config.
func NewDifficultyCurve(cfg SkybirdConfig) *DifficultyCurve {
	return &DifficultyCurve{
		cfg:    cfg.Difficulty,
		spawn:  cfg.Spawn.Interval,
		events: cfg.Events.Interval,
	}
}

// Multiplier returns growth^floor(elapsed/step). It is 1 before the first step
// and never decreases as elapsed grows (for growth >= 1).
func (d *DifficultyCurve) Multiplier(elapsed time.Duration) float64 {
	return math.Pow(d.cfg.Growth, float64(steps(elapsed, d.cfg.StepEvery)))
}

// SpawnInterval returns the number of frames between regular spawns.
func (d *DifficultyCurve) SpawnInterval(elapsed time.Duration) int {
	return d.spawn.At(elapsed)
}

// EventInterval returns the number of frames between formation rolls.
func (d *DifficultyCurve) EventInterval(elapsed time.Duration) int {
	return d.events.At(elapsed)
}

// steps returns floor(elapsed/every), treating negative elapsed as zero.
func steps(elapsed, every time.Duration) int {
	if every <= 0 || elapsed <= 0 {
		return 0
	}
	return int(elapsed / every)
}
