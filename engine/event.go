package engine

// EventType classifies gameplay notifications for presentation
type EventType uint8

const (
	EventChaseStarted  EventType = iota // provoke succeeded
	EventProvokeMissed                  // provoke outside catch radius
	EventChaseSurvived                  // chase outlasted, point scored
	EventCaught                         // agent reached the cart, game over
)

func (t EventType) String() string {
	switch t {
	case EventChaseStarted:
		return "chase_started"
	case EventProvokeMissed:
		return "provoke_missed"
	case EventChaseSurvived:
		return "chase_survived"
	case EventCaught:
		return "caught"
	default:
		return "unknown"
	}
}

// Event is emitted on transitions; Tick is the update count when it happened
type Event struct {
	Type       EventType
	Tick       uint64
	Score      int
	EnemyIndex int
}

// Events returns and clears pending events in emission order
func (g *Game) Events() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := g.events
	g.events = nil
	return out
}

// maxPendingEvents bounds the queue when no frontend drains it; oldest are dropped
const maxPendingEvents = 64

func (g *Game) emit(t EventType) {
	if len(g.events) >= maxPendingEvents {
		g.events = g.events[1:]
	}
	g.events = append(g.events, Event{
		Type:       t,
		Tick:       g.ticks,
		Score:      g.score,
		EnemyIndex: g.reg.EnemyIndex,
	})
}
