// Package canvas backs fx.Surface with an offscreen ebiten image.
package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-fx/internal/fx"
)

const lineWidth = 1

// Canvas is an fx.Surface. Until it has a positive size every draw call is dropped.
type Canvas struct {
	img       *ebiten.Image
	antialias bool
}

var _ fx.Surface = (*Canvas)(nil)

func New(antialias bool) *Canvas {
	return &Canvas{antialias: antialias}
}

// Resize reallocates the backing image. Contents are discarded.
func (c *Canvas) Resize(w, h int) {
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
		c.img = nil
	}
	if w <= 0 || h <= 0 {
		return
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	if c.img == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, c.antialias)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, clr, c.antialias)
}

// DrawTo composites the canvas onto dst with its top-left corner at (x, y).
func (c *Canvas) DrawTo(dst *ebiten.Image, x, y float64) {
	if c.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(c.img, op)
}
