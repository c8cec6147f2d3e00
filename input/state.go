package input

import "github.com/lixenwraith/cart-chase/vmath"

// Button tracks one held direction
type Button struct {
	Downs   uint8 // presses since last tick
	Pressed bool
}

// State is the held-input snapshot consumed once per tick
type State struct {
	// Direction holds -1/0/+1 per axis, not normalized
	Direction vmath.Vec2

	Left, Right, Up, Down Button
}
