package engine

import (
	"github.com/lixenwraith/cart-chase/physics"
	"github.com/lixenwraith/cart-chase/vmath"
)

// CartRef addresses the cart in a Move; agents use their index
const CartRef = -1

// Move is a displacement intent produced by steering and applied by integrate
type Move struct {
	Body  int
	Delta vmath.Vec2
}

// integrate applies queued moves then clamps every body into the arena
func (g *Game) integrate() {
	for _, m := range g.moves {
		if m.Body == CartRef {
			g.reg.Cart.Position = vmath.AddPlanar(g.reg.Cart.Position, m.Delta)
			continue
		}
		a := &g.reg.Agents[m.Body]
		a.Position = vmath.AddPlanar(a.Position, m.Delta)
	}
	g.moves = g.moves[:0]

	arena := g.cfg.Arena.Radius
	g.reg.Cart.Position = physics.Clamp(g.reg.Cart.Position, g.reg.Cart.Radius, arena)
	for i := range g.reg.Agents {
		a := &g.reg.Agents[i]
		a.Position = physics.Clamp(a.Position, a.Radius, arena)
	}
}
