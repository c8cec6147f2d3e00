package parameter

import "time"

// Frame Timing
const (
	// FrameUpdateInterval is the frontend tick, one Game.Update per frame
	FrameUpdateInterval = time.Second / 60
)

// Terminal Key Hold
// Terminals report presses and auto-repeat only, release is inferred from silence
const (
	// KeyHoldInitial is the wait after a first press before inferring release
	// Must exceed the typical auto-repeat delay (250-500ms)
	KeyHoldInitial = 550 * time.Millisecond

	// KeyHoldRepeat is the wait after an auto-repeat before inferring release
	KeyHoldRepeat = 120 * time.Millisecond
)

// HUD
const (
	StatusPlaying  = "WASD moves player; points: %d"
	StatusGameOver = "You lose; points: %d"

	// ProvokeMissFlash is how long the status bar flashes after a failed provoke
	ProvokeMissFlash = 300 * time.Millisecond
)

// Window
const (
	WindowWidth  = 640
	WindowHeight = 640
	WindowTitle  = "cart-chase"
)
