//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Status draws the mode indicator and the transient saved notice in the
// top-left corner of the board.
type Status struct {
	face font.Face
}

// NewStatus constructs a status overlay.
func NewStatus() *Status {
	return &Status{face: basicfont.Face7x13}
}

// Draw paints the mode label and, while saved is set, the SAVED notice.
func (s *Status) Draw(screen *ebiten.Image, mode string, saved bool) {
	text.Draw(screen, mode, s.face, 4, 14, color.RGBA{R: 120, G: 220, B: 120, A: 255})
	if saved {
		text.Draw(screen, "SAVED", s.face, 4, 28, color.RGBA{R: 240, G: 220, B: 90, A: 255})
	}
}
