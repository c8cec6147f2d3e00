package engine

import (
	"fmt"

	"github.com/lixenwraith/cart-chase/parameter"
	"github.com/lixenwraith/cart-chase/vmath"
)

// AgentView is a read-only agent for presentation
type AgentView struct {
	Position vmath.Vec3
	Radius   float64
	// Hostile is set only for the revealed enemy
	Hostile bool
}

// Snapshot is a copy of everything presentation may read
type Snapshot struct {
	Phase        Phase
	Score        int
	ChaseElapsed float64
	SurvivalTime float64
	ArenaRadius  float64
	// ViewSpan is the world width the scene camera frames
	ViewSpan     float64
	Cart         Body
	Agents       []AgentView
	Tick         uint64
}

// Snapshot copies the current state; the disguised enemy is indistinguishable
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        g.phase,
		Score:        g.score,
		ChaseElapsed: g.chaseElapsed,
		SurvivalTime: g.cfg.Rules.SurvivalTime,
		ArenaRadius:  g.cfg.Arena.Radius,
		ViewSpan:     g.camera.Span,
		Cart:         g.reg.Cart,
		Agents:       make([]AgentView, len(g.reg.Agents)),
		Tick:         g.ticks,
	}
	revealed := g.phase != PhaseWander
	for i, a := range g.reg.Agents {
		s.Agents[i] = AgentView{
			Position: a.Position,
			Radius:   a.Radius,
			Hostile:  revealed && i == g.reg.EnemyIndex,
		}
	}
	return s
}

// ViewRadius is half the framed width, the arena radius when the camera sets no span
func (s Snapshot) ViewRadius() float64 {
	if s.ViewSpan > 0 {
		return s.ViewSpan / 2
	}
	return s.ArenaRadius
}

// Status returns the HUD line
func (g *Game) Status() string {
	return StatusText(g.phase, g.score)
}

// StatusText formats the HUD line for a phase and score
func StatusText(phase Phase, score int) string {
	if phase == PhaseGameOver {
		return fmt.Sprintf(parameter.StatusGameOver, score)
	}
	return fmt.Sprintf(parameter.StatusPlaying, score)
}
