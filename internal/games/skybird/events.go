package skybird

// Event is a presentation signal emitted by the engine.
// The platform drains events after each call into the engine.
type Event interface {
	skybirdEvent()
}

// StartedEvent is emitted when the first run begins. Overlays should be hidden.
type StartedEvent struct{}

func (StartedEvent) skybirdEvent() {}

// RestartedEvent is emitted when a new run replaces a finished one.
type RestartedEvent struct{}

func (RestartedEvent) skybirdEvent() {}

// JumpedEvent is emitted when a discrete activation makes the bird jump.
// Per-frame impulses while held do not emit it.
type JumpedEvent struct{}

func (JumpedEvent) skybirdEvent() {}

// GameOverEvent is emitted once per run with the final score.
type GameOverEvent struct {
	Score   int
	Reason  OverReason
	Elapsed float64 // Seconds since the run started
}

func (GameOverEvent) skybirdEvent() {}

// OverReason describes what ended a run.
type OverReason int

const (
	OverHazard    OverReason = iota // Touched the spike strip
	OverCollision                   // Hit an obstacle
)

func (r OverReason) String() string {
	switch r {
	case OverHazard:
		return "hazard"
	case OverCollision:
		return "collision"
	default:
		return "unknown"
	}
}
