// Package rendertest provides in-memory render implementations for tests
// that must not open a window.
package rendertest

import (
	"image/color"

	"chosenoffset.com/shooter/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// Image is a render.Image that only remembers what was done to it.
type Image struct {
	W, H     int
	Draws    int
	Disposed bool
}

// NewImage creates an image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

func (i *Image) Size() (width, height int) { return i.W, i.H }
func (i *Image) Fill(clr color.Color)      {}
func (i *Image) Dispose()                  { i.Disposed = true }
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.Draws++
}

// GeoM records transformations without applying them.
type GeoM struct {
	Ops int
}

func (g *GeoM) Translate(tx, ty float64) { g.Ops++ }
func (g *GeoM) Rotate(angle float64)     { g.Ops++ }

// Renderer counts text and shape calls.
type Renderer struct {
	Texts   []string
	Circles int
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Circles++
}
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.Circles++
}
func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	r.Texts = append(r.Texts, text)
}
func (r *Renderer) MeasureText(text string) (width, height int) {
	return len(text) * 6, 16
}
