package engine

import (
	"testing"

	"github.com/lixenwraith/cart-chase/config"
	"github.com/lixenwraith/cart-chase/core"
	"github.com/lixenwraith/cart-chase/scene"
	"github.com/lixenwraith/cart-chase/vmath"
)

// fakeLoop records what the game does with a handle
type fakeLoop struct {
	sample    core.Sample
	volume    float64
	pan       float64
	spatial   bool
	falloff   float64
	position  vmath.Vec3
	positions int
	stops     int
}

func (l *fakeLoop) Stop() { l.stops++ }

func (l *fakeLoop) SetPosition(pos vmath.Vec3, smoothing float64) {
	l.position = pos
	l.positions++
}

type fakeAudio struct {
	loops     []*fakeLoop
	listener  vmath.Vec3
	listeners int
}

func (a *fakeAudio) Loop(sample core.Sample, volume, pan float64) Loop {
	l := &fakeLoop{sample: sample, volume: volume, pan: pan}
	a.loops = append(a.loops, l)
	return l
}

func (a *fakeAudio) Loop3D(sample core.Sample, volume float64, pos vmath.Vec3, falloff float64) Loop {
	l := &fakeLoop{sample: sample, volume: volume, spatial: true, position: pos, falloff: falloff}
	a.loops = append(a.loops, l)
	return l
}

func (a *fakeAudio) SetListener(pos, right vmath.Vec3, smoothing float64) {
	a.listener = pos
	a.listeners++
}

// playing returns loops of sample not yet stopped
func (a *fakeAudio) playing(sample core.Sample) []*fakeLoop {
	var out []*fakeLoop
	for _, l := range a.loops {
		if l.sample == sample && l.stops == 0 {
			out = append(out, l)
		}
	}
	return out
}

func testConfig(seed uint64) *config.Config {
	cfg := config.Default()
	cfg.Seed = seed
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config) (*Game, *fakeAudio) {
	t.Helper()
	audio := &fakeAudio{}
	g, err := New(cfg, scene.Default(cfg.Agents.Count, cfg.Arena.Radius), audio, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g, audio
}

// place puts the cart at the origin, the enemy at (enemyX, 0) and every other agent far away
func place(g *Game, enemyX float64) {
	g.reg.Cart.Position = vmath.Vec3{}
	far := g.cfg.Arena.Radius - g.cfg.Agents.Radius
	for i := range g.reg.Agents {
		g.reg.Agents[i].Position = vmath.Vec3{X: -far, Y: far}
	}
	g.reg.Enemy().Position = vmath.Vec3{X: enemyX}
}
