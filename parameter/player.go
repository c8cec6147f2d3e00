package parameter

// Cart
const (
	// CartSpeed is cart velocity magnitude in units/sec, diagonal included
	CartSpeed = 10.0

	// CartRadius is the cart's containment radius
	CartRadius = 0.5
)
