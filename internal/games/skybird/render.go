package skybird

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skybird/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdBeakChar  = '▶'
	CloudChar     = '░'
	HawkChar      = 'v'
	FlockChar     = 'w'
	BoltLeftChar  = '╲'
	BoltRightChar = '╱'
	SpikeChar     = '▲'
)

// Render draws the current game state to the screen.
func (e *Engine) Render(dst *core.Screen) {
	RenderSnapshot(dst, e.Snapshot())
}

// RenderSnapshot draws a snapshot scaled to the screen size.
// The top row is reserved for the HUD.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 || snap.WorldW <= 0 || snap.WorldH <= 0 {
		return
	}

	v := viewport{
		sx:  float64(dst.Width()) / snap.WorldW,
		sy:  float64(dst.Height()-1) / snap.WorldH,
		top: 1,
	}

	// Spike strip
	spikeRows := max(1, int(math.Round(snap.HazardHeight*v.sy)))
	for y := dst.Height() - spikeRows; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SpikeChar, core.ColorBrown)
	}

	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o)
	}

	drawBird(dst, v, snap.Bird)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	speedText := fmt.Sprintf(" Speed x%.2f ", snap.Multiplier)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText, core.ColorGray)
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy float64
	top    int // First row of the playfield
}

// cells returns the cell span covered by a world box, at least one cell in each direction.
func (v viewport) cells(b core.Box) (x, y, w, h int) {
	x = int(math.Floor(b.X * v.sx))
	y = v.top + int(math.Floor(b.Y*v.sy))
	w = max(1, int(math.Ceil(b.Right()*v.sx))-x)
	h = max(1, v.top+int(math.Ceil(b.Bottom()*v.sy))-y)
	return x, y, w, h
}

func drawBird(dst *core.Screen, v viewport, b Bird) {
	x, y, w, h := v.cells(b.Box())
	dst.FillRect(x, y, w, h, BirdChar, core.ColorBrightYellow)
	dst.Set(x+w-1, y, BirdBeakChar, core.ColorOrange)
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	x, y, w, h := v.cells(o.Box())

	switch o.Variant {
	case VariantCloud:
		dst.FillRect(x, y, w, h, CloudChar, core.ColorBrightWhite)
	case VariantHawk:
		dst.FillRect(x, y, w, h, HawkChar, core.ColorBrown)
	case VariantFlock:
		// Sparse grid of birds
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				if (dx+dy)%2 == 0 {
					dst.Set(x+dx, y+dy, FlockChar, core.ColorSlate)
				}
			}
		}
	case VariantLightning:
		for dy := 0; dy < h; dy++ {
			ch := BoltLeftChar
			if dy%2 == 1 {
				ch = BoltRightChar
			}
			dst.DrawHLine(x, y+dy, w, ch, core.ColorYellow)
		}
	}
}
