package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbFloor      = tcell.NewRGBColor(41, 46, 66)    // Dim dots
	RgbCart       = tcell.NewRGBColor(255, 200, 60)  // Amber
	RgbAgent      = tcell.NewRGBColor(180, 180, 180) // Gray, the disguise
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)   // Revealed enemy
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusLose = tcell.NewRGBColor(255, 120, 120)
	RgbFlashBg    = tcell.NewRGBColor(120, 30, 30)
	RgbChaseTimer = tcell.NewRGBColor(255, 255, 0)
)

// Glyphs
const (
	GlyphCart   = '@'
	GlyphAgent  = 'o'
	GlyphEnemy  = 'X'
	GlyphFloor  = '·'
	GlyphBorder = '█'
)
