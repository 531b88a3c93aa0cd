package skybird

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skybird/internal/core"
)

func TestRenderLayout(t *testing.T) {
	e := newTestEngine(t)
	screen := core.NewScreen(80, 31)

	e.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 100") {
		t.Errorf("HUD row = %q, expected the score", screen.Row(0))
	}
	for _, y := range []int{29, 30} {
		if got := screen.Get(0, y); got != SpikeChar {
			t.Errorf("row %d starts with %q, expected spikes", y, got)
		}
	}
	if got := screen.Get(0, 28); got == SpikeChar {
		t.Error("spike strip is taller than the hazard height")
	}

	// Bird at world (100, 300) maps to cell (10, 16)
	if got := screen.Get(10, 16); got != BirdChar {
		t.Errorf("cell (10,16) = %q, expected the bird", got)
	}
	if got := screen.Get(11, 16); got != BirdBeakChar {
		t.Errorf("cell (11,16) = %q, expected the beak", got)
	}
}

func TestRenderVariants(t *testing.T) {
	tests := []struct {
		variant Variant
		want    rune
	}{
		{VariantCloud, CloudChar},
		{VariantHawk, HawkChar},
		{VariantFlock, FlockChar},
		{VariantLightning, BoltLeftChar},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			e := newTestEngine(t)
			e.obstacles = []Obstacle{{X: 400, Y: 100, W: 40, H: 60, Variant: tt.variant}}
			screen := core.NewScreen(80, 31)

			e.Render(screen)

			// Top-left cell of the obstacle: (40, 1+5)
			if got := screen.Get(40, 6); got != tt.want {
				t.Errorf("cell (40,6) = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestRenderTinyScreen(t *testing.T) {
	e := newTestEngine(t)
	screen := core.NewScreen(10, 1)

	e.Render(screen)

	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("expected an empty screen, got %q", screen.String())
	}
}
