package physics

import "github.com/lixenwraith/cart-chase/vmath"

// Within reports whether a and b are strictly closer than threshold in the x/y plane
// Z is ignored; comparison is on squared distance
func Within(a, b vmath.Vec3, threshold float64) bool {
	return vmath.DistSq2(a, b) < threshold*threshold
}
