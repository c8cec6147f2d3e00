package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/cart-chase/core"
	"github.com/lixenwraith/cart-chase/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
// Loop samples pick frequencies with a whole number of cycles so the seam is silent
func oscillator(waveType int, freq float64, samples, rate int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(rate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyTremolo modulates amplitude by a sine LFO in place
func applyTremolo(buf floatBuffer, hz, depth float64, rate int) {
	for i := range buf {
		t := float64(i) / float64(rate)
		buf[i] *= 1 - depth*(0.5+0.5*math.Sin(2*math.Pi*hz*t))
	}
}

// applyPulse gates buf into decaying hits every period seconds
func applyPulse(buf floatBuffer, period, decay float64, rate int) {
	periodSamples := int(period * float64(rate))
	if periodSamples <= 0 {
		return
	}
	for i := range buf {
		t := float64(i%periodSamples) / float64(rate)
		buf[i] *= math.Exp(-t * decay)
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// normalize scales buf so its peak is 1
func normalize(buf floatBuffer) {
	peak := 0.0
	for _, v := range buf {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		return
	}
	for i := range buf {
		buf[i] /= peak
	}
}

func durationToSamples(d time.Duration, rate int) int {
	return int(d.Seconds() * float64(rate))
}

// --- Loop generators (unity gain) ---

// generateAmbient is a low drone with a slow swell
func generateAmbient(rate int) floatBuffer {
	n := durationToSamples(parameter.AmbientSampleDuration, rate)
	buf := oscillator(waveSine, 55, n, rate)
	buf = mixFloatBuffers(buf, oscillator(waveSine, 82.5, n, rate), 0.5)
	applyTremolo(buf, 1.25, 0.4, rate)
	return buf
}

// generateChase is a driving saw bass pulsing five times a second
func generateChase(rate int) floatBuffer {
	n := durationToSamples(parameter.ChaseSampleDuration, rate)
	buf := oscillator(waveSaw, 110, n, rate)
	buf = mixFloatBuffers(buf, oscillator(waveSquare, 220, n, rate), 0.3)
	applyPulse(buf, 0.2, 12, rate)
	return buf
}

// generateEnemy is a double heartbeat thump
func generateEnemy(rate int) floatBuffer {
	n := durationToSamples(parameter.EnemySampleDuration, rate)
	buf := oscillator(waveSine, 70, n, rate)
	buf = mixFloatBuffers(buf, oscillator(waveSine, 140, n, rate), 0.25)
	applyPulse(buf, 0.4, 9, rate)
	return buf
}

// generateSample dispatches to the specific generator and normalizes the result
func generateSample(s core.Sample, rate int) floatBuffer {
	var buf floatBuffer
	switch s {
	case core.SampleAmbient:
		buf = generateAmbient(rate)
	case core.SampleChase:
		buf = generateChase(rate)
	case core.SampleEnemy:
		buf = generateEnemy(rate)
	default:
		return nil
	}
	normalize(buf)
	return buf
}

// monoStreamer plays a floatBuffer once on both channels
type monoStreamer struct {
	buf floatBuffer
	pos int
}

func (m *monoStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if m.pos >= len(m.buf) {
		return 0, false
	}
	for i := range samples {
		if m.pos >= len(m.buf) {
			return i, true
		}
		samples[i][0] = m.buf[m.pos]
		samples[i][1] = m.buf[m.pos]
		m.pos++
	}
	return len(samples), true
}

func (m *monoStreamer) Err() error {
	return nil
}

// renderBuffer turns a generated sample into a seekable beep buffer
func renderBuffer(s core.Sample, format beep.Format) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(&monoStreamer{buf: generateSample(s, int(format.SampleRate))})
	return buf
}
