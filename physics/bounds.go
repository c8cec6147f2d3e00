package physics

import "github.com/lixenwraith/cart-chase/vmath"

// Clamp keeps a body of radius bodyRadius inside the square [-arenaRadius, arenaRadius]²
// Each axis is corrected independently; Z passes through untouched
func Clamp(p vmath.Vec3, bodyRadius, arenaRadius float64) vmath.Vec3 {
	p.X = clampAxis(p.X, bodyRadius, arenaRadius)
	p.Y = clampAxis(p.Y, bodyRadius, arenaRadius)
	return p
}

func clampAxis(v, bodyRadius, arenaRadius float64) float64 {
	if v-bodyRadius < -arenaRadius {
		return -arenaRadius + bodyRadius
	}
	if v+bodyRadius > arenaRadius {
		return arenaRadius - bodyRadius
	}
	return v
}

// Contained reports whether p already satisfies Clamp
func Contained(p vmath.Vec3, bodyRadius, arenaRadius float64) bool {
	limit := arenaRadius - bodyRadius
	return p.X >= -limit && p.X <= limit && p.Y >= -limit && p.Y <= limit
}
