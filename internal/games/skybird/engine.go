// Package skybird implements the side-scrolling avoidance game.
// The player keeps a bird in the air while clouds, hawks and special
// formations scroll in from the right. The score grows with time and with
// every obstacle that leaves the screen.
package skybird

import (
	"time"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// Engine owns the whole game state. It is driven by one Update call per frame
// and is not safe for concurrent use.
type Engine struct {
	cfg     config.SkybirdConfig
	curve   *config.DifficultyCurve
	spawner *spawner

	bird       Bird
	obstacles  []Obstacle
	score      int
	phase      Phase
	held       bool
	spawnTimer int
	eventTimer int
	startedAt  time.Time
	elapsed    time.Duration
	multiplier float64
	lastBucket int64

	overReason OverReason
	overSent   bool
	events     []Event
}

// New creates an engine waiting for its first activation.
func New(cfg config.SkybirdConfig, seed int64) *Engine {
	e := &Engine{
		cfg:     cfg,
		curve:   config.NewDifficultyCurve(cfg),
		spawner: newSpawner(cfg, seed),
	}
	e.reset()
	e.phase = PhaseNotStarted
	return e
}

// reset restores the per-run state. Phase and held input are left to the caller.
func (e *Engine) reset() {
	e.bird = newBird(e.cfg)
	e.obstacles = nil
	e.score = e.cfg.Score.Initial
	e.spawnTimer = 0
	e.eventTimer = 0
	e.elapsed = 0
	e.multiplier = 1
	e.overSent = false
}

// Reseed replaces the random source used for spawning.
func (e *Engine) Reseed(seed int64) {
	e.spawner.reseed(seed)
}

// Activate handles the discrete activation action.
// It starts the first run or makes the bird jump. When the run is over it does
// nothing: the caller acknowledges the game over and calls Restart.
func (e *Engine) Activate(now time.Time) {
	switch e.phase {
	case PhaseNotStarted:
		e.start(now)
		e.events = append(e.events, StartedEvent{})
	case PhaseRunning:
		e.bird.Jump()
		e.events = append(e.events, JumpedEvent{})
	}
}

// ActivateDown is the key-down edge of the activation input.
// Repeated calls while already held are ignored.
func (e *Engine) ActivateDown(now time.Time) {
	if e.held {
		return
	}
	e.held = true
	e.Activate(now)
}

// ActivateUp is the key-up edge of the activation input.
func (e *Engine) ActivateUp() {
	e.held = false
}

// Held reports whether the activation input is down.
func (e *Engine) Held() bool {
	return e.held
}

// Restart discards the current run and immediately begins a new one.
// In-flight obstacles are dropped wholesale.
func (e *Engine) Restart(now time.Time) {
	e.reset()
	e.start(now)
	e.events = append(e.events, RestartedEvent{})
}

func (e *Engine) start(now time.Time) {
	e.phase = PhaseRunning
	e.startedAt = now
	e.lastBucket = e.bucket(now)
}

// Update advances the simulation by one frame. It does nothing unless a run is in progress.
func (e *Engine) Update(now time.Time) {
	if e.phase != PhaseRunning {
		return
	}

	e.elapsed = now.Sub(e.startedAt)
	e.multiplier = e.curve.Multiplier(e.elapsed)

	// Held input re-applies the impulse every frame
	if e.held {
		e.bird.Jump()
	}

	worldH := e.cfg.World.Height
	e.bird.Step(worldH)

	// Spike strip along the bottom, above the floor clamp
	if e.bird.Y > worldH-e.bird.Size-e.cfg.World.HazardHeight {
		e.over(OverHazard)
	}

	e.spawnTimer++
	if e.spawnTimer > e.curve.SpawnInterval(e.elapsed) {
		e.obstacles = append(e.obstacles, e.spawner.obstacle(e.multiplier))
		e.spawnTimer = 0

		if e.elapsed > e.cfg.Spawn.StackAfter && e.spawner.roll(e.cfg.Spawn.StackChance) {
			e.obstacles = append(e.obstacles, e.spawner.obstacle(e.multiplier))
		}
	}

	e.eventTimer++
	if e.eventTimer > e.curve.EventInterval(e.elapsed) && e.spawner.roll(e.cfg.Events.Chance) {
		e.obstacles = append(e.obstacles, e.spawner.formation(e.multiplier)...)
		e.eventTimer = 0
	}

	e.advanceObstacles()

	if bucket := e.bucket(now); bucket != e.lastBucket {
		e.lastBucket = bucket
		e.score++
	}

	if e.phase == PhaseOver && !e.overSent {
		e.overSent = true
		e.events = append(e.events, GameOverEvent{
			Score:   e.score,
			Reason:  e.overReason,
			Elapsed: e.elapsed.Seconds(),
		})
	}
}

// advanceObstacles moves every obstacle once, tests it against the bird and
// keeps only the ones still on screen. Each dropped obstacle credits the pass bonus.
func (e *Engine) advanceObstacles() {
	birdBox := e.bird.Box()

	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		o.X -= o.Speed

		if birdBox.Intersects(o.Box()) {
			e.over(OverCollision)
		}

		if o.Gone() {
			e.score += e.cfg.Score.PassBonus
			continue
		}
		kept = append(kept, o)
	}

	// Clear the tail so dropped obstacles are not retained by the backing array
	clear(e.obstacles[len(kept):])
	e.obstacles = kept
}

// over ends the run. The first reason wins.
func (e *Engine) over(reason OverReason) {
	if e.phase == PhaseOver {
		return
	}
	e.phase = PhaseOver
	e.overReason = reason
}

// bucket returns the score tick bucket containing now.
func (e *Engine) bucket(now time.Time) int64 {
	return now.UnixNano() / int64(e.cfg.Score.TickInterval)
}

// Events drains the pending presentation events.
func (e *Engine) Events() []Event {
	out := e.events
	e.events = nil
	return out
}

// Phase returns the current run phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Snapshot returns a copy of the state for rendering.
func (e *Engine) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(e.obstacles))
	copy(obstacles, e.obstacles)

	return Snapshot{
		Bird:         e.bird,
		Obstacles:    obstacles,
		Score:        e.score,
		Phase:        e.phase,
		Multiplier:   e.multiplier,
		Elapsed:      e.elapsed,
		WorldW:       e.cfg.World.Width,
		WorldH:       e.cfg.World.Height,
		HazardHeight: e.cfg.World.HazardHeight,
	}
}

// Collides reports whether two boxes overlap using the engine's strict test.
func Collides(a, b core.Box) bool {
	return a.Intersects(b)
}
