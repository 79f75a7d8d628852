//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Marker paints the editing cursor as a hollow square over one cell.
type Marker struct {
	pixel *ebiten.Image
}

// NewMarker constructs a marker painter with the given outline color.
func NewMarker(col color.Color) *Marker {
	m := &Marker{}
	m.pixel = ebiten.NewImage(1, 1)
	m.pixel.Fill(col)
	return m
}

// Draw outlines the cell at grid position (x, y) scaled to scale pixels
// per cell.
func (m *Marker) Draw(dst *ebiten.Image, x, y, scale int) {
	px := float64(x * scale)
	py := float64(y * scale)
	s := float64(scale)
	m.bar(dst, px, py, s, 1)
	m.bar(dst, px, py+s-1, s, 1)
	m.bar(dst, px, py, 1, s)
	m.bar(dst, px+s-1, py, 1, s)
}

func (m *Marker) bar(dst *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	dst.DrawImage(m.pixel, op)
}
