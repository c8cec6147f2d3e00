// Package modes routes frontend input into a running chase and rebuilds it on restart
package modes

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/cart-chase/engine"
	"github.com/lixenwraith/cart-chase/input"
	"github.com/lixenwraith/cart-chase/parameter"
)

// Command tells the frontend what to do after an event
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
)

// Factory builds a fresh game from a seed
type Factory func(seed uint64) (*engine.Game, error)

// seedStride spreads restart seeds apart (golden ratio increment)
const seedStride = 0x9E3779B97F4A7C15

// PlayMode owns the running game for one frontend session
// Not safe for concurrent use; frontends call it from their frame loop only
type PlayMode struct {
	id      string
	keys    input.KeyTable
	factory Factory
	seed    uint64
	round   uint64

	game       *engine.Game
	flashUntil time.Time
}

// NewPlayMode starts the first round
func NewPlayMode(seed uint64, keys input.KeyTable, factory Factory) (*PlayMode, error) {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	m := &PlayMode{
		id:      uuid.NewString(),
		keys:    keys,
		factory: factory,
		seed:    seed,
	}
	game, err := factory(m.seedFor(0))
	if err != nil {
		return nil, err
	}
	m.game = game
	log.Printf("session %s: round 1 seed=%d", m.id, m.seedFor(0))
	return m, nil
}

func (m *PlayMode) seedFor(round uint64) uint64 {
	return m.seed + round*seedStride
}

// Game returns the current round
func (m *PlayMode) Game() *engine.Game { return m.game }

// HandleEvent routes frontend actions and passes the rest to the game
func (m *PlayMode) HandleEvent(ev input.Event, now time.Time) Command {
	if ev.Type == input.EventKeyDown {
		switch m.keys.Lookup(ev.Key) {
		case input.ActionQuit:
			return CommandQuit
		case input.ActionRestart:
			if m.game.Phase() != engine.PhaseGameOver {
				return CommandNone
			}
			if err := m.Restart(); err != nil {
				log.Printf("session %s: restart failed: %v", m.id, err)
				return CommandNone
			}
			return CommandRestart
		}
	}

	m.game.HandleEvent(ev)
	m.collect(now)
	return CommandNone
}

// Tick advances the game by dt seconds
func (m *PlayMode) Tick(dt float64, now time.Time) {
	m.game.Update(dt)
	m.collect(now)
}

// collect drains game events into session state
func (m *PlayMode) collect(now time.Time) {
	for _, ev := range m.game.Events() {
		log.Printf("session %s: %s tick=%d score=%d", m.id, ev.Type, ev.Tick, ev.Score)
		if ev.Type == engine.EventProvokeMissed {
			m.flashUntil = now.Add(parameter.ProvokeMissFlash)
		}
	}
}

// Restart replaces the current round with a fresh one; the old round's sounds stop
func (m *PlayMode) Restart() error {
	game, err := m.factory(m.seedFor(m.round + 1))
	if err != nil {
		return err
	}
	m.game.Close()
	m.round++
	m.game = game
	m.flashUntil = time.Time{}
	log.Printf("session %s: round %d seed=%d", m.id, m.round+1, m.seedFor(m.round))
	return nil
}

// Flash reports whether the status bar should highlight a missed provoke
func (m *PlayMode) Flash(now time.Time) bool {
	return now.Before(m.flashUntil)
}

// Title is the header line: session prefix and round number
func (m *PlayMode) Title() string {
	return fmt.Sprintf("%s  session %s  round %d", parameter.WindowTitle, m.id[:8], m.round+1)
}

// Close stops the current round
func (m *PlayMode) Close() {
	m.game.Close()
}
