package skybird

import "time"

// Phase is the run state of the engine.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	Bird         Bird
	Obstacles    []Obstacle
	Score        int
	Phase        Phase
	Multiplier   float64
	Elapsed      time.Duration
	WorldW       float64
	WorldH       float64
	HazardHeight float64
}
