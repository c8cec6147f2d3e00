package modes

import (
	"github.com/lixenwraith/cart-chase/config"
	"github.com/lixenwraith/cart-chase/engine"
	"github.com/lixenwraith/cart-chase/input"
	"github.com/lixenwraith/cart-chase/scene"
)

// NewFactory builds rounds on the default arena layout from cfg
// Each round gets its own copy of cfg with the round seed
func NewFactory(cfg *config.Config, audio engine.Audio, keys input.KeyTable) Factory {
	return func(seed uint64) (*engine.Game, error) {
		round := *cfg
		round.Seed = seed
		sc := scene.Default(round.Agents.Count, round.Arena.Radius)
		return engine.New(&round, sc, audio, keys)
	}
}
