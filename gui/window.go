// Package gui is the windowed frontend drawn with ebiten
package gui

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/cart-chase/engine"
	"github.com/lixenwraith/cart-chase/input"
	"github.com/lixenwraith/cart-chase/modes"
	"github.com/lixenwraith/cart-chase/parameter"
)

const padding = 40.0

var (
	backgroundColor = color.RGBA{26, 27, 38, 255}
	borderColor     = color.RGBA{86, 95, 137, 255}
	cartColor       = color.RGBA{255, 200, 60, 255}
	agentColor      = color.RGBA{180, 180, 180, 255}
	enemyColor      = color.RGBA{255, 80, 80, 255}
	flashColor      = color.RGBA{120, 30, 30, 255}
)

// Window implements ebiten.Game over a play mode
type Window struct {
	play *modes.PlayMode
	now  func() time.Time

	width  int
	height int

	keys []ebiten.Key
}

// NewWindow creates the window frontend
func NewWindow(play *modes.PlayMode) *Window {
	return &Window{
		play:   play,
		now:    time.Now,
		width:  parameter.WindowWidth,
		height: parameter.WindowHeight,
	}
}

// Update reads this tick's key transitions and advances the game
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	pressed := make([]string, 0, len(w.keys))
	for _, k := range w.keys {
		pressed = append(pressed, keyName(k))
	}

	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	released := make([]string, 0, len(w.keys))
	for _, k := range w.keys {
		released = append(released, keyName(k))
	}

	return w.step(pressed, released, 1/float64(ebiten.TPS()))
}

// step applies key transitions then ticks; releases go first so a tap within one tick still registers
func (w *Window) step(pressed, released []string, dt float64) error {
	now := w.now()
	for _, key := range released {
		w.play.HandleEvent(input.KeyUp(key), now)
	}
	for _, key := range pressed {
		if w.play.HandleEvent(input.KeyDown(key), now) == modes.CommandQuit {
			return ebiten.Termination
		}
	}
	w.play.Tick(dt, now)
	return nil
}

// Draw renders the arena and HUD
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := w.play.Game().Snapshot()
	v := newViewport(w.width, w.height, snap.ViewRadius())

	x0, y0 := v.toScreen(-snap.ArenaRadius, snap.ArenaRadius)
	side := float32(2 * snap.ArenaRadius * v.scale)
	vector.StrokeRect(screen, x0, y0, side, side, 2, borderColor, true)

	for _, a := range snap.Agents {
		if a.Hostile {
			continue
		}
		x, y := v.toScreen(a.Position.X, a.Position.Y)
		vector.DrawFilledCircle(screen, x, y, float32(a.Radius*v.scale), agentColor, true)
	}
	for _, a := range snap.Agents {
		if !a.Hostile {
			continue
		}
		x, y := v.toScreen(a.Position.X, a.Position.Y)
		vector.DrawFilledCircle(screen, x, y, float32(a.Radius*v.scale), enemyColor, true)
	}

	cx, cy := v.toScreen(snap.Cart.Position.X, snap.Cart.Position.Y)
	vector.DrawFilledCircle(screen, cx, cy, float32(snap.Cart.Radius*v.scale), cartColor, true)

	w.drawHUD(screen, snap)
}

func (w *Window) drawHUD(screen *ebiten.Image, snap engine.Snapshot) {
	ebitenutil.DebugPrintAt(screen, w.play.Title(), 8, 4)

	if snap.Phase == engine.PhaseChase {
		ebitenutil.DebugPrintAt(screen, chaseTimer(snap), w.width-120, 4)
	}

	statusY := w.height - 22
	if w.play.Flash(w.now()) {
		vector.DrawFilledRect(screen, 0, float32(statusY-2), float32(w.width), 20, flashColor, false)
	}
	ebitenutil.DebugPrintAt(screen, engine.StatusText(snap.Phase, snap.Score), 8, statusY)
}

// Layout keeps a fixed logical size; ebiten scales it to the window
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed or quit
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.play.Title())
	ebiten.SetTPS(int(time.Second / parameter.FrameUpdateInterval))
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
