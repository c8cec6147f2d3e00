package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Loop Volumes
const (
	AudioMasterVolume = 1.0

	// AudioAmbientVolume is the wander background loop volume
	AudioAmbientVolume = 0.03

	// AudioChaseVolume is the chase background loop volume
	AudioChaseVolume = 0.2

	// AudioEnemyVolume is the base volume of the positional enemy loop
	AudioEnemyVolume = 1.0

	// AudioEnemyFalloff is the distance at which the enemy loop drops to half volume
	AudioEnemyFalloff = 0.1

	// AudioPositionSmoothing is the ramp applied to emitter and listener moves
	AudioPositionSmoothing = time.Second / 60
)

// Sample Lengths
const (
	AmbientSampleDuration = 2400 * time.Millisecond
	ChaseSampleDuration   = 1600 * time.Millisecond
	EnemySampleDuration   = 800 * time.Millisecond
)
