package surface

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

var _ Surface = (*Raster)(nil)

// Raster is a Surface drawing into an in-memory RGBA image through gg.Context.
//
// A zero sized raster keeps a 1×1 backing image so that it can still be
// cleared and encoded, while Width and Height report the logical size.
type Raster struct {
	*gg.Context

	width, height int
}

// NewRaster creates a raster surface of width×height pixels.
func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

// Resize replaces the backing image, like resizing an HTML canvas it drops
// all content and drawing state.
func (r *Raster) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.width, r.height = width, height
	r.Context = gg.NewContext(max(width, 1), max(height, 1))
}

func (r *Raster) Width() int {
	return r.width
}

func (r *Raster) Height() int {
	return r.height
}

func (r *Raster) SetColor(c color.Color) {
	r.Context.SetColor(c)
}

func (r *Raster) Clear() {
	r.Context.Clear()
}

func (r *Raster) DrawRectangle(x, y, w, h float64) {
	r.Context.DrawRectangle(x, y, w, h)
}

// DrawRoundedRectangle traces the rectangle clockwise from the top edge.
// gg only knows a single radius, so each corner arc is drawn separately.
func (r *Raster) DrawRoundedRectangle(x, y, w, h float64, radii CornerRadii) {
	radii = radii.Normalize(w, h)
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]

	r.Context.NewSubPath()
	r.Context.MoveTo(x+tl, y)
	r.Context.LineTo(x+w-tr, y)
	r.corner(x+w-tr, y+tr, tr, 270, 360)
	r.Context.LineTo(x+w, y+h-br)
	r.corner(x+w-br, y+h-br, br, 0, 90)
	r.Context.LineTo(x+bl, y+h)
	r.corner(x+bl, y+h-bl, bl, 90, 180)
	r.Context.LineTo(x, y+tl)
	r.corner(x+tl, y+tl, tl, 180, 270)
	r.Context.ClosePath()
}

func (r *Raster) corner(cx, cy, radius, from, to float64) {
	if radius <= 0 {
		return
	}
	r.Context.DrawArc(cx, cy, radius, gg.Radians(from), gg.Radians(to))
}

func (r *Raster) DrawCircle(cx, cy, radius float64) {
	r.Context.DrawCircle(cx, cy, radius)
}

func (r *Raster) NewSubPath() {
	r.Context.NewSubPath()
}

func (r *Raster) MoveTo(x, y float64) {
	r.Context.MoveTo(x, y)
}

func (r *Raster) LineTo(x, y float64) {
	r.Context.LineTo(x, y)
}

func (r *Raster) ClosePath() {
	r.Context.ClosePath()
}

func (r *Raster) SetFillRuleEvenOdd() {
	r.Context.SetFillRuleEvenOdd()
}

func (r *Raster) SetFillRuleWinding() {
	r.Context.SetFillRuleWinding()
}

func (r *Raster) Fill() {
	r.Context.Fill()
}

// Image returns the backing image. It is only valid until the next Resize.
func (r *Raster) Image() image.Image {
	return r.Context.Image()
}
