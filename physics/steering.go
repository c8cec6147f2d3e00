package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/cart-chase/vmath"
)

// Wander returns the displacement along heading orientation for one tick
func Wander(orientation, speed, dt float64) vmath.Vec2 {
	return r2.Scale(speed*dt, vmath.Heading(orientation))
}

// PerturbHeading applies the zero-mean random walk (u1 - u2) * noise to a heading
// u1, u2 are independent uniform samples in [0, 1)
func PerturbHeading(orientation, u1, u2, noise float64) float64 {
	return orientation + (u1-u2)*noise
}

// Seek returns the displacement from pos toward target at speed for one tick
// ok=false when pos sits exactly on target; the caller skips the move
func Seek(pos, target vmath.Vec3, speed, dt float64) (delta vmath.Vec2, ok bool) {
	dir, ok := vmath.Normalize2(r2.Sub(vmath.Planar(target), vmath.Planar(pos)))
	if !ok {
		return vmath.Vec2{}, false
	}
	return r2.Scale(speed*dt, dir), true
}

// ScaleToSpeed converts a raw input direction into a velocity of fixed magnitude
// Diagonals are normalized so they are never faster than a single axis
func ScaleToSpeed(dir vmath.Vec2, speed float64) vmath.Vec2 {
	unit, ok := vmath.Normalize2(dir)
	if !ok {
		return vmath.Vec2{}
	}
	return r2.Scale(speed, unit)
}
