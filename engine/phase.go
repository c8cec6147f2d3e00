package engine

// Phase is the gameplay state
type Phase uint8

const (
	PhaseWander   Phase = iota // initial, agents roam, enemy disguised
	PhaseChase                 // enemy revealed, every agent seeks the cart
	PhaseGameOver              // terminal, Update is a no-op
)

func (p Phase) String() string {
	switch p {
	case PhaseWander:
		return "wander"
	case PhaseChase:
		return "chase"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
