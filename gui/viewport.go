package gui

import (
	"fmt"
	"math"

	"github.com/lixenwraith/cart-chase/engine"
)

// viewport fits the square arena into the window, +y up
type viewport struct {
	scale   float64
	offsetX float64
	offsetY float64
}

func newViewport(width, height int, radius float64) viewport {
	scale := 1.0
	if radius > 0 {
		scale = (math.Min(float64(width), float64(height)) - 2*padding) / (2 * radius)
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return viewport{
		scale:   scale,
		offsetX: float64(width) / 2,
		offsetY: float64(height) / 2,
	}
}

// toScreen converts world coordinates; screen y grows downward
func (v viewport) toScreen(x, y float64) (float32, float32) {
	return float32(x*v.scale + v.offsetX), float32(-y*v.scale + v.offsetY)
}

func chaseTimer(s engine.Snapshot) string {
	return fmt.Sprintf("CHASE %.1f/%.1f", s.ChaseElapsed, s.SurvivalTime)
}
