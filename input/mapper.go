package input

import (
	"github.com/lixenwraith/cart-chase/physics"
	"github.com/lixenwraith/cart-chase/vmath"
)

// Mapper turns key transitions into a cart direction and provoke triggers
type Mapper struct {
	keys  KeyTable
	state State
}

// NewMapper creates a mapper over keys; nil uses the defaults
func NewMapper(keys KeyTable) *Mapper {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Mapper{keys: keys}
}

// Handle applies ev and returns the resolved gameplay action
// consumed is false for unbound keys and frontend-level actions
// ActionProvoke is only returned for key-down, once per press
func (m *Mapper) Handle(ev Event) (action Action, consumed bool) {
	action = m.keys.Lookup(ev.Key)
	if !action.IsGameplay() {
		return ActionNone, false
	}

	switch ev.Type {
	case EventKeyDown:
		m.press(action)
		return action, true
	case EventKeyUp:
		if action == ActionProvoke {
			return ActionNone, false
		}
		m.release(action)
		return action, true
	}
	return ActionNone, false
}

func (m *Mapper) press(a Action) {
	switch a {
	case ActionLeft:
		m.state.Direction.X = -1
		m.state.Left.Downs++
		m.state.Left.Pressed = true
	case ActionRight:
		m.state.Direction.X = 1
		m.state.Right.Downs++
		m.state.Right.Pressed = true
	case ActionUp:
		m.state.Direction.Y = 1
		m.state.Up.Downs++
		m.state.Up.Pressed = true
	case ActionDown:
		m.state.Direction.Y = -1
		m.state.Down.Downs++
		m.state.Down.Pressed = true
	}
}

// release zeroes an axis only if it is still held toward the released key
// so a stale key-up never cancels the opposite direction
func (m *Mapper) release(a Action) {
	switch a {
	case ActionLeft:
		if m.state.Direction.X < 0 {
			m.state.Direction.X = 0
		}
		m.state.Left.Pressed = false
	case ActionRight:
		if m.state.Direction.X > 0 {
			m.state.Direction.X = 0
		}
		m.state.Right.Pressed = false
	case ActionUp:
		if m.state.Direction.Y > 0 {
			m.state.Direction.Y = 0
		}
		m.state.Up.Pressed = false
	case ActionDown:
		if m.state.Direction.Y < 0 {
			m.state.Direction.Y = 0
		}
		m.state.Down.Pressed = false
	}
}

// Velocity returns the cart velocity: normalized direction scaled to speed
func (m *Mapper) Velocity(speed float64) vmath.Vec2 {
	return physics.ScaleToSpeed(m.state.Direction, speed)
}

// State returns a copy of the held-input state
func (m *Mapper) State() State {
	return m.state
}

// EndTick resets per-tick press counters
func (m *Mapper) EndTick() {
	m.state.Left.Downs = 0
	m.state.Right.Downs = 0
	m.state.Up.Downs = 0
	m.state.Down.Downs = 0
}
