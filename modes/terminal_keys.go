package modes

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cart-chase/input"
)

// TerminalKey names a tcell key event in key table terms
// Ctrl+C is reported as escape; unnamed keys return ""
func TerminalKey(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return "escape"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyRune:
		return input.NormalizeKey(string(ev.Rune()))
	}
	return ""
}

// TerminalInput turns terminal presses into key transitions
// Direction keys stay down until their auto-repeat stops; every other bound key fires on each press
type TerminalInput struct {
	keys  input.KeyTable
	holds *input.HoldTracker
}

func NewTerminalInput(keys input.KeyTable, initial, repeat time.Duration) *TerminalInput {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &TerminalInput{
		keys:  keys,
		holds: input.NewHoldTracker(initial, repeat),
	}
}

// Press returns the key-down to forward, ok=false for an auto-repeat of a held direction
func (ti *TerminalInput) Press(key string, now time.Time) (input.Event, bool) {
	if !ti.keys.Lookup(key).IsDirection() {
		return input.KeyDown(input.NormalizeKey(key)), true
	}
	return ti.holds.Press(key, now)
}

// Expire returns synthesized key-ups for directions whose repeat stopped
func (ti *TerminalInput) Expire(now time.Time) []input.Event {
	return ti.holds.Expire(now)
}

// ReleaseAll forgets every held direction
func (ti *TerminalInput) ReleaseAll() []input.Event {
	return ti.holds.ReleaseAll()
}
