package render

import (
	"math"

	"github.com/lixenwraith/cart-chase/vmath"
)

// cellAspect is how many columns match one row in world units
const cellAspect = 2

// projection maps the square arena onto a block of terminal cells
type projection struct {
	x, y       int // top-left inner cell
	cols, rows int
	radius     float64
}

// newProjection fits the arena inside a width x height area with a one cell border
// ok is false when the area cannot hold a playable field
func newProjection(x, y, width, height int, radius float64) (p projection, ok bool) {
	innerW, innerH := width-2, height-2
	rows := min(innerH, innerW/cellAspect)
	if rows < 3 || radius <= 0 {
		return projection{}, false
	}
	cols := rows * cellAspect
	return projection{
		x:      x + 1 + (innerW-cols)/2,
		y:      y + 1 + (innerH-rows)/2,
		cols:   cols,
		rows:   rows,
		radius: radius,
	}, true
}

// cell returns the screen cell for a world position, +y pointing up the screen
func (p projection) cell(pos vmath.Vec3) (x, y int) {
	span := 2 * p.radius
	cx := int(math.Floor((pos.X + p.radius) / span * float64(p.cols)))
	cy := int(math.Floor((p.radius - pos.Y) / span * float64(p.rows)))
	cx = max(0, min(p.cols-1, cx))
	cy = max(0, min(p.rows-1, cy))
	return p.x + cx, p.y + cy
}
