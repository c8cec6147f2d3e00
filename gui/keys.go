package gui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyName maps an ebiten key onto key table names
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowLeft:
		return "left"
	case ebiten.KeyArrowRight:
		return "right"
	case ebiten.KeyArrowUp:
		return "up"
	case ebiten.KeyArrowDown:
		return "down"
	case ebiten.KeySpace:
		return "space"
	case ebiten.KeyEscape:
		return "escape"
	}
	return strings.ToLower(strings.TrimPrefix(k.String(), "Key"))
}
