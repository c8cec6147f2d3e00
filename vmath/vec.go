package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec2 is a planar vector, x/y authoritative for all simulation
type Vec2 = r2.Vec

// Vec3 carries a body position; Z is visual layering only
type Vec3 = r3.Vec

// Planar drops Z
func Planar(v Vec3) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Lift returns v at height z
func Lift(v Vec2, z float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// AddPlanar offsets the x/y of p by d, keeping Z
func AddPlanar(p Vec3, d Vec2) Vec3 {
	return Vec3{X: p.X + d.X, Y: p.Y + d.Y, Z: p.Z}
}

// DistSq2 returns squared planar distance, no sqrt
func DistSq2(a, b Vec3) float64 {
	return r2.Norm2(r2.Sub(Planar(a), Planar(b)))
}

// Normalize2 returns the unit vector of v, ok=false for the zero vector
func Normalize2(v Vec2) (Vec2, bool) {
	if v.X == 0 && v.Y == 0 {
		return Vec2{}, false
	}
	return r2.Unit(v), true
}

// Heading returns the unit vector for an angle in radians
func Heading(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// IsFinite2 reports whether both components are neither NaN nor Inf
func IsFinite2(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
