package audio

import (
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cart-chase/config"
	"github.com/lixenwraith/cart-chase/core"
	"github.com/lixenwraith/cart-chase/engine"
	"github.com/lixenwraith/cart-chase/vmath"
)

// SoundManager plays the game's looping samples through the speaker
// Calls are safe from any goroutine; streamer state is touched under speaker.Lock
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.Audio
	format      beep.Format
	buffers     [core.SampleCount]*beep.Buffer
	mixer       *beep.Mixer
	output      beep.Streamer
	ear         *ear
	initialized bool
}

// NewSoundManager creates a sound manager; nothing plays until Initialize
func NewSoundManager(cfg config.Audio) *SoundManager {
	return &SoundManager{
		cfg: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
		mixer: &beep.Mixer{},
		ear:   &ear{right: vmath.Vec3{X: 1}},
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled audio is not an error: the manager stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	sr := sm.format.SampleRate
	if err := speaker.Init(sr, sr.N(sm.cfg.BufferDuration())); err != nil {
		return err
	}

	sm.prepare()
	speaker.Play(sm.output)
	log.Printf("audio: speaker ready rate=%d buffer=%v", sr, sm.cfg.BufferDuration())
	return nil
}

// prepare renders the samples, builds the output chain and marks the manager ready
func (sm *SoundManager) prepare() {
	for s := core.Sample(0); s < core.SampleCount; s++ {
		sm.buffers[s] = renderBuffer(s, sm.format)
	}
	sm.output = newVolume(&earClock{Streamer: sm.mixer, ear: sm.ear}, sm.cfg.MasterVolume)
	sm.initialized = true
}

// Cleanup stops all sounds; the speaker itself stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Loop starts a flat loop of sample
func (sm *SoundManager) Loop(sample core.Sample, volume, pan float64) engine.Loop {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sample >= core.SampleCount {
		return engine.NopAudio{}.Loop(sample, volume, pan)
	}

	src := sm.loopStreamer(sample)
	panned := &effects.Pan{Streamer: src, Pan: math.Max(-1, math.Min(1, pan))}
	return sm.start(newVolume(panned, volume), nil)
}

// Loop3D starts a loop attenuated by distance to the listener
func (sm *SoundManager) Loop3D(sample core.Sample, volume float64, pos vmath.Vec3, falloff float64) engine.Loop {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sample >= core.SampleCount {
		return engine.NopAudio{}.Loop3D(sample, volume, pos, falloff)
	}

	sp := &spatialStreamer{
		src:     sm.loopStreamer(sample),
		volume:  volume,
		falloff: falloff,
		emitter: newRamp(pos),
		ear:     sm.ear,
	}
	return sm.start(sp, sp)
}

// SetListener moves the ear, gliding over smoothing seconds
func (sm *SoundManager) SetListener(pos, right vmath.Vec3, smoothing float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	steps := sm.steps(smoothing)
	speaker.Lock()
	sm.ear.pos.set(pos, steps)
	sm.ear.right = right
	speaker.Unlock()
}

func (sm *SoundManager) loopStreamer(sample core.Sample) beep.Streamer {
	buf := sm.buffers[sample]
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}

func (sm *SoundManager) steps(seconds float64) int {
	return int(seconds * float64(sm.format.SampleRate))
}

// start wraps s in a control and adds it to the mixer
func (sm *SoundManager) start(s beep.Streamer, sp *spatialStreamer) *loopHandle {
	h := &loopHandle{
		ctrl:    &beep.Ctrl{Streamer: s},
		spatial: sp,
		rate:    sm.format.SampleRate,
	}
	speaker.Lock()
	sm.mixer.Add(h.ctrl)
	speaker.Unlock()
	return h
}

// loopHandle controls one playing loop
type loopHandle struct {
	ctrl    *beep.Ctrl
	spatial *spatialStreamer
	rate    beep.SampleRate
	stopped bool
}

// Stop detaches the loop; the mixer drops it on its next pass
func (h *loopHandle) Stop() {
	speaker.Lock()
	defer speaker.Unlock()

	if h.stopped {
		return
	}
	h.ctrl.Streamer = nil
	h.stopped = true
}

// SetPosition retargets a positional loop; flat loops ignore it
func (h *loopHandle) SetPosition(pos vmath.Vec3, smoothing float64) {
	if h.spatial == nil {
		return
	}
	speaker.Lock()
	h.spatial.emitter.set(pos, int(smoothing*float64(h.rate)))
	speaker.Unlock()
}

// newVolume maps a linear gain onto effects.Volume
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
