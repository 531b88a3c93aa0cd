package skybird

import (
	"math/rand"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/core"
)

// Variant tags an obstacle. It only affects rendering; every variant collides the same way.
type Variant int

const (
	VariantCloud     Variant = iota // Passive, large and slow
	VariantHawk                     // Passive, small
	VariantFlock                    // Lane formation with a gap
	VariantLightning                // Staggered hazard line
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantCloud:
		return "cloud"
	case VariantHawk:
		return "hawk"
	case VariantFlock:
		return "flock"
	case VariantLightning:
		return "lightning"
	default:
		return "unknown"
	}
}

// Obstacle is a box moving leftwards at a constant speed.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Variant Variant
	Speed   float64 // Never negative
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Gone reports whether the obstacle has fully left the screen on the left.
func (o Obstacle) Gone() bool {
	return o.X+o.W < 0
}

// spawner creates obstacles and formations at the right edge of the world.
type spawner struct {
	cfg config.SkybirdConfig
	rng *rand.Rand
}

func newSpawner(cfg config.SkybirdConfig, seed int64) *spawner {
	return &spawner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// reseed restarts the random sequence.
func (s *spawner) reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// roll returns true with probability p.
func (s *spawner) roll(p float64) bool {
	return s.rng.Float64() < p
}

// obstacle spawns one passive obstacle, choosing cloud or hawk uniformly.
func (s *spawner) obstacle(multiplier float64) Obstacle {
	variant := VariantCloud
	size := s.cfg.Spawn.Cloud
	if s.rng.Intn(2) == 1 {
		variant = VariantHawk
		size = s.cfg.Spawn.Hawk
	}

	y := s.rng.Float64() * (s.cfg.World.Height - s.cfg.Spawn.TopBand)
	w := size.MinWidth + s.rng.Float64()*size.WidthJitter
	h := size.MinHeight + s.rng.Float64()*size.HeightJitter
	speed := (s.cfg.Spawn.BaseSpeed + s.rng.Float64()*s.cfg.Spawn.SpeedJitter) * multiplier

	return Obstacle{
		X:       s.cfg.World.Width,
		Y:       y,
		W:       w,
		H:       h,
		Variant: variant,
		Speed:   speed,
	}
}

// formation spawns a flock or a lightning line, chosen uniformly.
func (s *spawner) formation(multiplier float64) []Obstacle {
	if s.rng.Intn(2) == 0 {
		return s.flock(multiplier)
	}
	return s.lightning(multiplier)
}

// flock fills every lane except the gap lane.
func (s *spawner) flock(multiplier float64) []Obstacle {
	f := s.cfg.Events.Flock
	laneH := s.cfg.World.Height / float64(f.Lanes+1)

	out := make([]Obstacle, 0, f.Lanes)
	for i := 0; i < f.Lanes; i++ {
		if i == f.GapLane {
			continue
		}
		out = append(out, Obstacle{
			X:       s.cfg.World.Width,
			Y:       laneH*float64(i+1) - f.LaneOffset,
			W:       f.Width,
			H:       f.Height,
			Variant: VariantFlock,
			Speed:   f.Speed * multiplier,
		})
	}
	return out
}

// lightning lays out a horizontally staggered line of bolts at random heights.
func (s *spawner) lightning(multiplier float64) []Obstacle {
	l := s.cfg.Events.Lightning

	out := make([]Obstacle, 0, l.Count)
	for i := 0; i < l.Count; i++ {
		out = append(out, Obstacle{
			X:       s.cfg.World.Width + float64(i)*l.Spacing,
			Y:       s.rng.Float64() * (s.cfg.World.Height - l.BottomMargin),
			W:       l.Width,
			H:       l.Height,
			Variant: VariantLightning,
			Speed:   l.Speed * multiplier,
		})
	}
	return out
}
