package audio

import (
	"math"

	"github.com/gopxl/beep"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/cart-chase/vmath"
)

// ramp glides a position toward its target over a number of samples
// Accessed only by the speaker goroutine or under speaker.Lock
type ramp struct {
	cur    vmath.Vec3
	target vmath.Vec3
	steps  int
}

func newRamp(p vmath.Vec3) ramp {
	return ramp{cur: p, target: p}
}

// set retargets; steps <= 0 jumps immediately
func (r *ramp) set(target vmath.Vec3, steps int) {
	r.target = target
	if steps <= 0 {
		r.cur = target
		r.steps = 0
		return
	}
	r.steps = steps
}

// advance moves n samples along the ramp and returns the new position
func (r *ramp) advance(n int) vmath.Vec3 {
	if r.steps <= 0 || n >= r.steps {
		r.cur = r.target
		r.steps = 0
		return r.cur
	}
	frac := float64(n) / float64(r.steps)
	r.cur = r3.Add(r.cur, r3.Scale(frac, r3.Sub(r.target, r.cur)))
	r.steps -= n
	return r.cur
}

// ear is the shared listener state
type ear struct {
	pos   ramp
	right vmath.Vec3
}

// earClock advances the listener after every mixed block
type earClock struct {
	beep.Streamer
	ear *ear
}

func (c *earClock) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = c.Streamer.Stream(samples)
	c.ear.pos.advance(n)
	return n, ok
}

// attenuate returns gain and pan for an emitter heard from the listener
// Gain halves at distance falloff; pan is the projection on the listener's right axis
func attenuate(emitter, listener, right vmath.Vec3, volume, falloff float64) (gain, pan float64) {
	offset := r3.Sub(emitter, listener)
	dist := r3.Norm(offset)

	gain = volume
	if falloff > 0 {
		gain = volume * falloff / (falloff + dist)
	}

	if dist > 0 {
		if rn := r3.Norm(right); rn > 0 {
			pan = r3.Dot(offset, right) / (dist * rn)
		}
	}
	return gain, math.Max(-1, math.Min(1, pan))
}

// channelGains attenuates the channel facing away from pan
func channelGains(gain, pan float64) (left, right float64) {
	left, right = gain, gain
	if pan < 0 {
		right *= 1 + pan
	} else {
		left *= 1 - pan
	}
	return left, right
}

// spatialStreamer applies distance gain and pan, interpolated across each block
type spatialStreamer struct {
	src     beep.Streamer
	volume  float64
	falloff float64
	emitter ramp
	ear     *ear
}

func (s *spatialStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	g0, p0 := attenuate(s.emitter.cur, s.ear.pos.cur, s.ear.right, s.volume, s.falloff)

	n, ok = s.src.Stream(samples)
	if n == 0 {
		return n, ok
	}

	// Listener advances after the mix, so project its position for the block end
	listenerEnd := s.ear.pos
	g1, p1 := attenuate(s.emitter.advance(n), listenerEnd.advance(n), s.ear.right, s.volume, s.falloff)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		l, r := channelGains(g0+(g1-g0)*t, p0+(p1-p0)*t)
		samples[i][0] *= l
		samples[i][1] *= r
	}
	return n, ok
}

func (s *spatialStreamer) Err() error {
	return s.src.Err()
}
