package input

// Action is the semantic meaning of a bound key
type Action uint8

const (
	ActionNone Action = iota

	// Held directions, contribute to cart direction
	ActionLeft
	ActionRight
	ActionUp
	ActionDown

	// Discrete, fires once per press
	ActionProvoke

	// Frontend-level, never consumed by the game
	ActionQuit
	ActionRestart
)

// IsDirection reports whether a is one of the four held directions
func (a Action) IsDirection() bool {
	return a >= ActionLeft && a <= ActionDown
}

// IsGameplay reports whether the game consumes a
func (a Action) IsGameplay() bool {
	return a.IsDirection() || a == ActionProvoke
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// EventType discriminates key transitions
type EventType uint8

const (
	EventKeyDown EventType = iota
	EventKeyUp
)

// Event is a frontend-neutral key transition
// Key is a lowercase key name: single characters, or names like "space", "escape", "left"
type Event struct {
	Type EventType
	Key  string
}

// KeyDown builds a press event
func KeyDown(key string) Event {
	return Event{Type: EventKeyDown, Key: key}
}

// KeyUp builds a release event
func KeyUp(key string) Event {
	return Event{Type: EventKeyUp, Key: key}
}
