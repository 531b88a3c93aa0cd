package skybird

import (
	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// Bird is the player-controlled entity. X is fixed; only Y moves.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64
	Size     float64

	gravity     float64
	jumpImpulse float64
}

// newBird places a bird at its configured column, vertically centred.
func newBird(cfg config.SkybirdConfig) Bird {
	return Bird{
		X:           cfg.Bird.X,
		Y:           cfg.World.Height / 2,
		Size:        cfg.Bird.Size,
		gravity:     cfg.Bird.Gravity,
		jumpImpulse: cfg.Bird.JumpImpulse,
	}
}

// Jump sets the velocity to the jump impulse. It does not accumulate.
func (b *Bird) Jump() {
	b.Velocity = b.jumpImpulse
}

// Step integrates one frame of motion and clamps the bird to [0, worldH-Size].
// Velocity is zeroed whenever a clamp fires.
func (b *Bird) Step(worldH float64) {
	b.Velocity += b.gravity
	b.Y += b.Velocity

	if b.Y < 0 {
		b.Y = 0
		b.Velocity = 0
	}
	if floor := worldH - b.Size; b.Y > floor {
		b.Y = floor
		b.Velocity = 0
	}
}

// Box returns the bird's collision box.
func (b Bird) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Size, b.Size)
}
