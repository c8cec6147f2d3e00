package engine

import (
	"github.com/lixenwraith/cart-chase/core"
	"github.com/lixenwraith/cart-chase/vmath"
)

// Loop is a playing sound handle
// The game stops each handle exactly once, on the transition that invalidates it
type Loop interface {
	Stop()
	// SetPosition moves a positional loop, ramping over smoothing seconds
	SetPosition(pos vmath.Vec3, smoothing float64)
}

// Audio is the sound subsystem the game drives
type Audio interface {
	// Loop starts a flat loop; pan in [-1, 1]
	Loop(sample core.Sample, volume, pan float64) Loop
	// Loop3D starts a positional loop; falloff is the half-volume distance
	Loop3D(sample core.Sample, volume float64, pos vmath.Vec3, falloff float64) Loop
	// SetListener places the ear; right is the listener's +x axis
	SetListener(pos, right vmath.Vec3, smoothing float64)
}

// NopAudio discards everything, for headless runs
type NopAudio struct{}

func (NopAudio) Loop(core.Sample, float64, float64) Loop                { return nopLoop{} }
func (NopAudio) Loop3D(core.Sample, float64, vmath.Vec3, float64) Loop { return nopLoop{} }
func (NopAudio) SetListener(vmath.Vec3, vmath.Vec3, float64)           {}

type nopLoop struct{}

func (nopLoop) Stop()                            {}
func (nopLoop) SetPosition(vmath.Vec3, float64) {}
