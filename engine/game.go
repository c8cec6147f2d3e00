package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/cart-chase/config"
	"github.com/lixenwraith/cart-chase/core"
	"github.com/lixenwraith/cart-chase/input"
	"github.com/lixenwraith/cart-chase/physics"
	"github.com/lixenwraith/cart-chase/scene"
	"github.com/lixenwraith/cart-chase/vmath"
)

// listenerRight is the listener's +x axis; the cart never rotates
var listenerRight = vmath.Vec3{X: 1}

// Game is the chase state machine
// Single-threaded: Update, HandleEvent, Provoke and Snapshot must not run concurrently
type Game struct {
	cfg   *config.Config
	rng   *vmath.FastRand
	audio Audio
	input *input.Mapper

	reg          Registry
	camera       scene.Camera
	phase        Phase
	agentSpeed   float64
	chaseElapsed float64
	score        int
	ticks        uint64

	// Loop handles; nil once stopped
	ambientLoop Loop
	chaseLoop   Loop
	enemyLoop   Loop

	moves  []Move
	events []Event
}

// New builds a game in PhaseWander from cfg and sc
// Setup failures (invalid config, missing bodies, camera count) are returned, nothing is started
func New(cfg *config.Config, sc *scene.Scene, audio Audio, keys input.KeyTable) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := sc.Validate(cfg.Agents.Count); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	camera, err := sc.Camera()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	reg, err := newRegistry(sc, cfg.Agents.Count, cfg.Cart.Radius, cfg.Agents.Radius)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if audio == nil {
		audio = NopAudio{}
	}

	g := &Game{
		cfg:        cfg,
		rng:        vmath.NewFastRand(cfg.Seed),
		audio:      audio,
		input:      input.NewMapper(keys),
		reg:        reg,
		camera:     camera,
		phase:      PhaseWander,
		agentSpeed: cfg.Agents.WanderSpeed,
		moves:      make([]Move, 0, len(reg.Agents)+1),
	}

	for i := range g.reg.Agents {
		g.reg.Agents[i].Orientation = g.rng.Angle()
	}

	g.ambientLoop = g.audio.Loop(core.SampleAmbient, cfg.Audio.AmbientVolume, 0)
	g.reg.EnemyIndex = g.rng.Intn(len(g.reg.Agents))
	g.enemyLoop = g.audio.Loop3D(core.SampleEnemy, cfg.Audio.EnemyVolume, g.reg.Enemy().Position, cfg.Audio.EnemyFalloff)

	log.Printf("game: start seed=%d agents=%d enemy=%d", cfg.Seed, len(g.reg.Agents), g.reg.EnemyIndex)
	return g, nil
}

// HandleEvent feeds a key transition to the input mapper
// A provoke key-down runs the catch check immediately
func (g *Game) HandleEvent(ev input.Event) bool {
	action, consumed := g.input.Handle(ev)
	if action == input.ActionProvoke {
		g.Provoke()
	}
	return consumed
}

// Provoke attempts to reveal the enemy; succeeds only in PhaseWander within catch radius
func (g *Game) Provoke() bool {
	if g.phase != PhaseWander {
		return false
	}
	if !physics.Within(g.reg.Cart.Position, g.reg.Enemy().Position, g.cfg.Rules.CatchRadius) {
		g.emit(EventProvokeMissed)
		return false
	}
	g.startChase()
	return true
}

// Update advances the simulation by dt seconds
func (g *Game) Update(dt float64) {
	if g.phase == PhaseGameOver {
		return
	}

	smoothing := g.cfg.Audio.Smoothing()
	if g.enemyLoop != nil {
		g.enemyLoop.SetPosition(g.reg.Enemy().Position, smoothing)
	}

	g.steerCart(dt)
	g.steerAgents(dt)
	g.integrate()

	g.audio.SetListener(g.reg.Cart.Position, listenerRight, smoothing)

	if g.phase == PhaseChase {
		g.chaseElapsed += dt
		switch {
		case g.caught():
			g.endGame()
		case g.chaseElapsed > g.cfg.Rules.SurvivalTime:
			g.survive()
		}
	}

	g.input.EndTick()
	g.ticks++
}

func (g *Game) steerCart(dt float64) {
	v := g.input.Velocity(g.cfg.Cart.Speed)
	if v.X == 0 && v.Y == 0 {
		return
	}
	g.moves = append(g.moves, Move{Body: CartRef, Delta: vmath.Vec2{X: v.X * dt, Y: v.Y * dt}})
}

func (g *Game) steerAgents(dt float64) {
	switch g.phase {
	case PhaseWander:
		noise := g.cfg.Agents.HeadingNoise
		for i := range g.reg.Agents {
			a := &g.reg.Agents[i]
			g.moves = append(g.moves, Move{Body: i, Delta: physics.Wander(a.Orientation, g.agentSpeed, dt)})
			a.Orientation = physics.PerturbHeading(a.Orientation, g.rng.Float64(), g.rng.Float64(), noise)
		}
	case PhaseChase:
		target := g.reg.Cart.Position
		for i := range g.reg.Agents {
			delta, ok := physics.Seek(g.reg.Agents[i].Position, target, g.agentSpeed, dt)
			if !ok {
				continue
			}
			g.moves = append(g.moves, Move{Body: i, Delta: delta})
		}
	}
}

// caught reports whether any agent, the enemy included, reached the cart
func (g *Game) caught() bool {
	for i := range g.reg.Agents {
		if physics.Within(g.reg.Agents[i].Position, g.reg.Cart.Position, g.cfg.Rules.AttackRadius) {
			return true
		}
	}
	return false
}

// Close stops every loop still playing; safe to call more than once
func (g *Game) Close() {
	g.stop(&g.ambientLoop)
	g.stop(&g.chaseLoop)
	g.stop(&g.enemyLoop)
}

// stop ends a loop and forgets the handle so it is never stopped twice
func (g *Game) stop(l *Loop) {
	if *l == nil {
		return
	}
	(*l).Stop()
	*l = nil
}

// Accessors

func (g *Game) Phase() Phase           { return g.phase }
func (g *Game) Score() int             { return g.score }
func (g *Game) ChaseElapsed() float64  { return g.chaseElapsed }
func (g *Game) EnemyIndex() int        { return g.reg.EnemyIndex }
func (g *Game) AgentSpeed() float64    { return g.agentSpeed }
func (g *Game) Config() *config.Config { return g.cfg }
