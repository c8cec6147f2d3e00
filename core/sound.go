package core

// Sample identifies a looping sound the game starts and stops
type Sample int

const (
	SampleAmbient Sample = iota // Wander background loop
	SampleChase                 // Chase background loop
	SampleEnemy                 // Positional loop hanging on the disguised enemy
	SampleCount
)

func (s Sample) String() string {
	switch s {
	case SampleAmbient:
		return "ambient"
	case SampleChase:
		return "chase"
	case SampleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
