package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cart-chase/engine"
)

// Frame is everything drawn in one pass
type Frame struct {
	Snapshot engine.Snapshot
	Status   string
	Title    string
	// Flash highlights the status bar after a missed provoke
	Flash bool
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize updates the drawable area
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(f Frame) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawTitle(f, defaultStyle)

	// Field between title row and status row
	if p, ok := newProjection(0, 1, r.width, r.height-2, f.Snapshot.ViewRadius()); ok {
		r.drawArena(p, defaultStyle)
		r.drawBodies(p, f.Snapshot, defaultStyle)
	} else {
		r.drawText(0, r.height/2, "terminal too small", defaultStyle.Foreground(RgbStatusBar))
	}

	r.drawStatusBar(f, defaultStyle)
	r.screen.Show()
}

func (r *TerminalRenderer) drawTitle(f Frame, style tcell.Style) {
	r.drawText(0, 0, f.Title, style.Foreground(RgbBorder))

	if f.Snapshot.Phase != engine.PhaseChase {
		return
	}
	timer := fmt.Sprintf("CHASE %.1f/%.1f", f.Snapshot.ChaseElapsed, f.Snapshot.SurvivalTime)
	r.drawText(r.width-len(timer), 0, timer, style.Foreground(RgbChaseTimer).Bold(true))
}

func (r *TerminalRenderer) drawArena(p projection, style tcell.Style) {
	border := style.Foreground(RgbBorder)
	for x := p.x - 1; x <= p.x+p.cols; x++ {
		r.screen.SetContent(x, p.y-1, GlyphBorder, nil, border)
		r.screen.SetContent(x, p.y+p.rows, GlyphBorder, nil, border)
	}
	for y := p.y; y < p.y+p.rows; y++ {
		r.screen.SetContent(p.x-1, y, GlyphBorder, nil, border)
		r.screen.SetContent(p.x+p.cols, y, GlyphBorder, nil, border)
	}

	floor := style.Foreground(RgbFloor)
	for y := p.y; y < p.y+p.rows; y += 2 {
		for x := p.x; x < p.x+p.cols; x += 4 {
			r.screen.SetContent(x, y, GlyphFloor, nil, floor)
		}
	}
}

// drawBodies draws agents first so the cart stays visible when overlapping
func (r *TerminalRenderer) drawBodies(p projection, s engine.Snapshot, style tcell.Style) {
	agent := style.Foreground(RgbAgent)
	enemy := style.Foreground(RgbEnemy).Bold(true)

	for _, a := range s.Agents {
		if a.Hostile {
			continue
		}
		x, y := p.cell(a.Position)
		r.screen.SetContent(x, y, GlyphAgent, nil, agent)
	}
	for _, a := range s.Agents {
		if !a.Hostile {
			continue
		}
		x, y := p.cell(a.Position)
		r.screen.SetContent(x, y, GlyphEnemy, nil, enemy)
	}

	x, y := p.cell(s.Cart.Position)
	r.screen.SetContent(x, y, GlyphCart, nil, style.Foreground(RgbCart).Bold(true))
}

func (r *TerminalRenderer) drawStatusBar(f Frame, style tcell.Style) {
	st := style.Foreground(RgbStatusBar)
	switch {
	case f.Snapshot.Phase == engine.PhaseGameOver:
		st = style.Foreground(RgbStatusLose).Bold(true)
	case f.Flash:
		st = st.Background(RgbFlashBg)
	}

	y := r.height - 1
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, st)
	}
	r.drawText(0, y, f.Status, st)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}
