package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/lixenwraith/cart-chase/config"
	"github.com/lixenwraith/cart-chase/core"
	"github.com/lixenwraith/cart-chase/input"
	"github.com/lixenwraith/cart-chase/scene"
	"github.com/lixenwraith/cart-chase/vmath"
)

// TestNewInitialState verifies a fresh game starts wandering with ambient and enemy loops
func TestNewInitialState(t *testing.T) {
	g, audio := newTestGame(t, testConfig(7))

	if g.Phase() != PhaseWander {
		t.Errorf("Expected phase wander, got %s", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if idx := g.EnemyIndex(); idx < 0 || idx >= 5 {
		t.Errorf("Expected enemy index in [0,5), got %d", idx)
	}
	if g.AgentSpeed() != 2 {
		t.Errorf("Expected wander speed 2, got %v", g.AgentSpeed())
	}

	if n := len(audio.playing(core.SampleAmbient)); n != 1 {
		t.Fatalf("Expected 1 ambient loop, got %d", n)
	}
	ambient := audio.playing(core.SampleAmbient)[0]
	if ambient.volume != 0.03 || ambient.pan != 0 {
		t.Errorf("Expected ambient volume 0.03 pan 0, got %v pan %v", ambient.volume, ambient.pan)
	}

	enemy := audio.playing(core.SampleEnemy)
	if len(enemy) != 1 {
		t.Fatalf("Expected 1 enemy loop, got %d", len(enemy))
	}
	if !enemy[0].spatial || enemy[0].volume != 1 || enemy[0].falloff != 0.1 {
		t.Errorf("Expected spatial enemy loop volume 1 falloff 0.1, got %+v", enemy[0])
	}

	for i, a := range g.reg.Agents {
		if a.Orientation < 0 || a.Orientation >= 2*math.Pi {
			t.Errorf("Agent %d: expected heading in [0, 2π), got %v", i, a.Orientation)
		}
	}
}

func TestNewSetupErrors(t *testing.T) {
	cfg := testConfig(1)

	sc := scene.Default(cfg.Agents.Count, cfg.Arena.Radius)
	sc.Bodies = sc.Bodies[:len(sc.Bodies)-1] // drop AI5
	if _, err := New(cfg, sc, nil, nil); !errors.Is(err, scene.ErrBodyNotFound) {
		t.Errorf("Expected ErrBodyNotFound, got %v", err)
	}

	sc = scene.Default(cfg.Agents.Count, cfg.Arena.Radius)
	sc.Cameras = append(sc.Cameras, sc.Cameras[0])
	if _, err := New(cfg, sc, nil, nil); !errors.Is(err, scene.ErrCameraCount) {
		t.Errorf("Expected ErrCameraCount, got %v", err)
	}

	bad := testConfig(1)
	bad.Arena.Radius = 0
	if _, err := New(bad, scene.Default(5, 20), nil, nil); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

// TestProvokeWithinCatchRadius covers the reveal: chase speed, loop swap, event
func TestProvokeWithinCatchRadius(t *testing.T) {
	g, audio := newTestGame(t, testConfig(3))
	place(g, 4)

	ambient := audio.playing(core.SampleAmbient)[0]
	enemy := audio.playing(core.SampleEnemy)[0]

	if !g.Provoke() {
		t.Fatal("Expected provoke at distance 4 to succeed")
	}
	if g.Phase() != PhaseChase {
		t.Errorf("Expected phase chase, got %s", g.Phase())
	}
	if g.AgentSpeed() != 8 {
		t.Errorf("Expected chase speed 8, got %v", g.AgentSpeed())
	}
	if g.ChaseElapsed() != 0 {
		t.Errorf("Expected chase elapsed 0, got %v", g.ChaseElapsed())
	}
	if ambient.stops != 1 || enemy.stops != 1 {
		t.Errorf("Expected ambient and enemy loops stopped once, got %d and %d", ambient.stops, enemy.stops)
	}
	chase := audio.playing(core.SampleChase)
	if len(chase) != 1 || chase[0].volume != 0.2 {
		t.Fatalf("Expected one chase loop at volume 0.2, got %+v", chase)
	}

	events := g.Events()
	if len(events) != 1 || events[0].Type != EventChaseStarted {
		t.Errorf("Expected [chase_started], got %v", events)
	}

	// A second provoke while chasing does nothing
	if g.Provoke() {
		t.Error("Expected provoke during chase to fail")
	}
	if len(audio.playing(core.SampleChase)) != 1 {
		t.Error("Expected chase loop untouched by second provoke")
	}
}

func TestProvokeOutsideCatchRadius(t *testing.T) {
	g, audio := newTestGame(t, testConfig(3))

	for _, d := range []float64{6, 5} { // 5 is on the boundary, strict compare misses
		place(g, d)
		if g.Provoke() {
			t.Errorf("Expected provoke at distance %v to fail", d)
		}
	}
	if g.Phase() != PhaseWander {
		t.Errorf("Expected phase wander, got %s", g.Phase())
	}
	if len(audio.playing(core.SampleChase)) != 0 {
		t.Error("Expected no chase loop")
	}
	events := g.Events()
	if len(events) != 2 || events[0].Type != EventProvokeMissed {
		t.Errorf("Expected two provoke_missed events, got %v", events)
	}
}

// TestProvokeIgnoresHeight verifies the catch check is planar
func TestProvokeIgnoresHeight(t *testing.T) {
	g, _ := newTestGame(t, testConfig(3))
	place(g, 4)
	g.reg.Enemy().Position.Z = 100

	if !g.Provoke() {
		t.Error("Expected provoke to ignore z")
	}
}

func TestHandleEventProvoke(t *testing.T) {
	g, _ := newTestGame(t, testConfig(3))
	place(g, 2)

	if consumed := g.HandleEvent(input.KeyDown("space")); !consumed {
		t.Error("Expected space key-down consumed")
	}
	if g.Phase() != PhaseChase {
		t.Errorf("Expected phase chase after space, got %s", g.Phase())
	}
	if consumed := g.HandleEvent(input.KeyUp("space")); consumed {
		t.Error("Expected space key-up not consumed")
	}
	if consumed := g.HandleEvent(input.KeyDown("escape")); consumed {
		t.Error("Expected escape left to the frontend")
	}
}

// TestSurviveChase runs a chase past the survival time with motionless agents
func TestSurviveChase(t *testing.T) {
	cfg := testConfig(11)
	cfg.Agents.ChaseSpeed = 0
	g, audio := newTestGame(t, cfg)
	place(g, 3)

	if !g.Provoke() {
		t.Fatal("Expected provoke to succeed")
	}
	chase := audio.playing(core.SampleChase)[0]
	g.Events()

	for i := 0; i < 5; i++ {
		g.Update(1)
	}
	if g.Phase() != PhaseChase {
		t.Fatalf("Expected still chasing at elapsed exactly 5, got %s", g.Phase())
	}

	g.Update(1)
	if g.Phase() != PhaseWander {
		t.Fatalf("Expected wander after surviving, got %s", g.Phase())
	}
	if g.Score() != 1 {
		t.Errorf("Expected score 1, got %d", g.Score())
	}
	if g.ChaseElapsed() != 0 {
		t.Errorf("Expected chase elapsed reset, got %v", g.ChaseElapsed())
	}
	if g.AgentSpeed() != cfg.Agents.WanderSpeed {
		t.Errorf("Expected wander speed restored, got %v", g.AgentSpeed())
	}
	if idx := g.EnemyIndex(); idx < 0 || idx >= cfg.Agents.Count {
		t.Errorf("Expected new enemy index in range, got %d", idx)
	}
	if chase.stops != 1 {
		t.Errorf("Expected chase loop stopped once, got %d", chase.stops)
	}
	if len(audio.playing(core.SampleAmbient)) != 1 {
		t.Error("Expected ambient loop restarted")
	}
	enemy := audio.playing(core.SampleEnemy)
	if len(enemy) != 1 {
		t.Fatalf("Expected one enemy loop, got %d", len(enemy))
	}
	if enemy[0].position != g.reg.Enemy().Position {
		t.Errorf("Expected enemy loop at new enemy %v, got %v", g.reg.Enemy().Position, enemy[0].position)
	}

	events := g.Events()
	if len(events) != 1 || events[0].Type != EventChaseSurvived || events[0].Score != 1 {
		t.Errorf("Expected [chase_survived score 1], got %v", events)
	}
}

// TestCaughtSameTick verifies an agent within attack radius ends the game on that tick
func TestCaughtSameTick(t *testing.T) {
	g, audio := newTestGame(t, testConfig(5))
	place(g, 3)
	g.Provoke()
	chase := audio.playing(core.SampleChase)[0]

	// A non-enemy agent wanders into reach
	other := (g.EnemyIndex() + 1) % len(g.reg.Agents)
	g.reg.Agents[other].Position = vmath.Vec3{X: -0.5}

	g.Update(0.01)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over, got %s", g.Phase())
	}
	if chase.stops != 1 {
		t.Errorf("Expected chase loop stopped once, got %d", chase.stops)
	}
	if g.Status() != "You lose; points: 0" {
		t.Errorf("Expected lose status, got %q", g.Status())
	}
}

// TestCaughtBeatsSurvival checks the attack test runs before the survival test
func TestCaughtBeatsSurvival(t *testing.T) {
	g, _ := newTestGame(t, testConfig(5))
	place(g, 0.5)
	g.Provoke()
	g.chaseElapsed = 4.99

	g.Update(0.1)
	if g.Phase() != PhaseGameOver {
		t.Errorf("Expected game over, got %s", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
}

// TestGameOverAbsorbing verifies nothing moves or changes once caught
func TestGameOverAbsorbing(t *testing.T) {
	g, audio := newTestGame(t, testConfig(5))
	place(g, 0.5)
	g.Provoke()
	g.Update(0.01)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over, got %s", g.Phase())
	}
	g.Events()

	before := g.Snapshot()
	loops := len(audio.loops)
	listeners := audio.listeners

	g.HandleEvent(input.KeyDown("d"))
	for i := 0; i < 10; i++ {
		g.Update(0.1)
	}
	g.Provoke()

	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("Expected frozen snapshot, got %+v then %+v", before, after)
	}
	if len(audio.loops) != loops || audio.listeners != listeners {
		t.Error("Expected no audio activity after game over")
	}
	if events := g.Events(); len(events) != 0 {
		t.Errorf("Expected no events after game over, got %v", events)
	}
}

// TestCartDisplacement verifies diagonal input is normalized to cart speed
func TestCartDisplacement(t *testing.T) {
	g, _ := newTestGame(t, testConfig(9))
	g.HandleEvent(input.KeyDown("w"))
	g.HandleEvent(input.KeyDown("d"))

	const dt = 0.1
	start := g.reg.Cart.Position
	g.Update(dt)
	end := g.reg.Cart.Position

	d := math.Hypot(end.X-start.X, end.Y-start.Y)
	limit := g.cfg.Cart.Speed * dt
	if d > limit+1e-9 {
		t.Errorf("Expected displacement <= %v, got %v", limit, d)
	}
	if math.Abs(d-limit) > 1e-9 {
		t.Errorf("Expected full speed displacement %v, got %v", limit, d)
	}
	if end.X <= 0 || end.Y <= 0 {
		t.Errorf("Expected movement up and right, got %v", end)
	}

	// Release both: cart stops
	g.HandleEvent(input.KeyUp("w"))
	g.HandleEvent(input.KeyUp("d"))
	g.Update(dt)
	if g.reg.Cart.Position != end {
		t.Errorf("Expected cart at rest %v, got %v", end, g.reg.Cart.Position)
	}
}

// TestBoundsHold drives the cart into a wall and lets agents wander for a while
func TestBoundsHold(t *testing.T) {
	g, _ := newTestGame(t, testConfig(13))
	g.HandleEvent(input.KeyDown("a"))
	g.HandleEvent(input.KeyDown("s"))

	R := g.cfg.Arena.Radius
	for i := 0; i < 2000; i++ {
		g.Update(1.0 / 60)
		s := g.Snapshot()
		limit := R - s.Cart.Radius
		if math.Abs(s.Cart.Position.X) > limit+1e-9 || math.Abs(s.Cart.Position.Y) > limit+1e-9 {
			t.Fatalf("Tick %d: cart %v escaped bounds %v", i, s.Cart.Position, limit)
		}
		for j, a := range s.Agents {
			limit := R - a.Radius
			if math.Abs(a.Position.X) > limit+1e-9 || math.Abs(a.Position.Y) > limit+1e-9 {
				t.Fatalf("Tick %d: agent %d at %v escaped bounds %v", i, j, a.Position, limit)
			}
		}
	}

	want := -(R - g.cfg.Cart.Radius)
	if g.reg.Cart.Position.X != want || g.reg.Cart.Position.Y != want {
		t.Errorf("Expected cart pinned at (%v, %v), got %v", want, want, g.reg.Cart.Position)
	}
}

// TestChaseSeeksCart verifies every agent closes in during a chase
func TestChaseSeeksCart(t *testing.T) {
	g, _ := newTestGame(t, testConfig(17))
	place(g, 4)
	g.reg.Cart.Position = vmath.Vec3{X: 0.1} // keep the cart off the agents' path
	g.Provoke()

	before := g.Snapshot()
	g.Update(0.1)
	after := g.Snapshot()

	for i := range after.Agents {
		d0 := vmath.DistSq2(before.Agents[i].Position, before.Cart.Position)
		d1 := vmath.DistSq2(after.Agents[i].Position, after.Cart.Position)
		if d1 >= d0 {
			t.Errorf("Agent %d: expected closer to cart, distance² %v -> %v", i, d0, d1)
		}
	}
}

// TestSeekDegenerateSkipsMove covers an agent exactly on the cart
func TestSeekDegenerateSkipsMove(t *testing.T) {
	g, _ := newTestGame(t, testConfig(17))
	place(g, 4)
	g.Provoke()

	g.steerAgents(0.1)
	n := len(g.moves)
	g.moves = g.moves[:0]

	g.reg.Enemy().Position = g.reg.Cart.Position
	g.steerAgents(0.1)
	if len(g.moves) != n-1 {
		t.Errorf("Expected %d moves with one degenerate agent, got %d", n-1, len(g.moves))
	}
	g.moves = g.moves[:0]
}

func TestDisguiseAndReveal(t *testing.T) {
	g, _ := newTestGame(t, testConfig(21))
	place(g, 2)

	for i, a := range g.Snapshot().Agents {
		if a.Hostile {
			t.Errorf("Agent %d: expected hidden while wandering", i)
		}
	}

	g.Provoke()
	for i, a := range g.Snapshot().Agents {
		if a.Hostile != (i == g.EnemyIndex()) {
			t.Errorf("Agent %d: expected hostile=%v, got %v", i, i == g.EnemyIndex(), a.Hostile)
		}
	}
}

// TestAudioFollowsBodies verifies listener and enemy loop track positions each tick
func TestAudioFollowsBodies(t *testing.T) {
	g, audio := newTestGame(t, testConfig(23))
	enemy := audio.playing(core.SampleEnemy)[0]
	g.HandleEvent(input.KeyDown("d"))

	for i := 0; i < 3; i++ {
		g.Update(0.1)
	}
	if enemy.positions != 3 {
		t.Errorf("Expected 3 enemy position updates, got %d", enemy.positions)
	}
	if audio.listeners != 3 {
		t.Errorf("Expected 3 listener updates, got %d", audio.listeners)
	}
	if audio.listener != g.reg.Cart.Position {
		t.Errorf("Expected listener at cart %v, got %v", g.reg.Cart.Position, audio.listener)
	}
}

// TestLoopsStoppedOnce walks through every transition and closes the game twice
func TestLoopsStoppedOnce(t *testing.T) {
	cfg := testConfig(29)
	cfg.Agents.ChaseSpeed = 0
	g, audio := newTestGame(t, cfg)

	place(g, 1)
	g.Provoke()
	for g.Phase() == PhaseChase {
		g.Update(1)
	}

	place(g, 0.5)
	g.Provoke()
	g.Update(0.01)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected game over, got %s", g.Phase())
	}

	g.Close()
	g.Close()

	for i, l := range audio.loops {
		if l.stops != 1 {
			t.Errorf("Loop %d (%s): expected 1 stop, got %d", i, l.sample, l.stops)
		}
	}
}

// TestDeterministicSeed verifies identical seeds and inputs replay identically
func TestDeterministicSeed(t *testing.T) {
	run := func() Snapshot {
		g, _ := newTestGame(t, testConfig(99))
		g.HandleEvent(input.KeyDown("w"))
		for i := 0; i < 120; i++ {
			if i == 60 {
				g.HandleEvent(input.KeyUp("w"))
				g.HandleEvent(input.KeyDown("a"))
			}
			g.Update(1.0 / 60)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Expected identical snapshots, got %+v and %+v", a, b)
	}
}

func TestSnapshotFramesCamera(t *testing.T) {
	cfg := testConfig(3)
	sc := scene.Default(cfg.Agents.Count, cfg.Arena.Radius)
	sc.Cameras[0].Span = 30

	g, err := New(cfg, sc, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	snap := g.Snapshot()
	if snap.ViewSpan != 30 {
		t.Errorf("Expected view span 30, got %v", snap.ViewSpan)
	}
	if r := snap.ViewRadius(); r != 15 {
		t.Errorf("Expected view radius 15, got %v", r)
	}

	// No span on the camera falls back to the arena
	snap.ViewSpan = 0
	if r := snap.ViewRadius(); r != cfg.Arena.Radius {
		t.Errorf("Expected arena radius %v, got %v", cfg.Arena.Radius, r)
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		phase Phase
		score int
		want  string
	}{
		{PhaseWander, 0, "WASD moves player; points: 0"},
		{PhaseChase, 3, "WASD moves player; points: 3"},
		{PhaseGameOver, 2, "You lose; points: 2"},
	}
	for _, tt := range tests {
		if got := StatusText(tt.phase, tt.score); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestEventQueueBounded(t *testing.T) {
	g, _ := newTestGame(t, testConfig(31))
	place(g, 10)
	for i := 0; i < maxPendingEvents+10; i++ {
		g.Provoke()
	}
	if n := len(g.Events()); n != maxPendingEvents {
		t.Errorf("Expected %d events, got %d", maxPendingEvents, n)
	}
	if g.Events() != nil {
		t.Error("Expected drained queue")
	}
}
