package engine

import (
	"fmt"

	"github.com/lixenwraith/cart-chase/scene"
	"github.com/lixenwraith/cart-chase/vmath"
)

// Body is a movable circle; Position.Z is visual layering only
type Body struct {
	Position vmath.Vec3
	Radius   float64
}

// Agent is a wandering body with its steering heading
type Agent struct {
	Body
	Orientation float64 // radians
}

// Registry is the canonical set of movable bodies
// The enemy is an index into Agents, never a separate body
type Registry struct {
	Cart       Body
	Agents     []Agent
	EnemyIndex int
}

// Enemy returns the agent currently designated enemy
func (r *Registry) Enemy() *Agent {
	return &r.Agents[r.EnemyIndex]
}

// newRegistry pulls cart and agent placements out of a validated scene
func newRegistry(sc *scene.Scene, agentCount int, cartRadius, agentRadius float64) (Registry, error) {
	cart, ok := sc.Find(scene.CartName)
	if !ok {
		return Registry{}, fmt.Errorf("%s: %w", scene.CartName, scene.ErrBodyNotFound)
	}

	reg := Registry{
		Cart:   Body{Position: cart.Position, Radius: cartRadius},
		Agents: make([]Agent, agentCount),
	}
	for i := range reg.Agents {
		b, ok := sc.Find(scene.AgentName(i))
		if !ok {
			return Registry{}, fmt.Errorf("%s: %w", scene.AgentName(i), scene.ErrBodyNotFound)
		}
		reg.Agents[i].Body = Body{Position: b.Position, Radius: agentRadius}
	}
	return reg, nil
}
