package qrstyle

import (
	"image/color"

	"github.com/Mictilt/qrstyle/surface"
)

// DrawContext is a rectangle area on a surface.
type DrawContext struct {
	surface.Surface

	x, y float64
	w, h int

	color color.Color
}

// UpperLeft returns the point which indicates the upper left position.
func (dc *DrawContext) UpperLeft() (dx, dy float64) {
	return dc.x, dc.y
}

// Edge returns width and height of each shape could take at most.
func (dc *DrawContext) Edge() (width, height int) {
	return dc.w, dc.h
}

// Color returns the fill color of the area.
func (dc *DrawContext) Color() color.Color {
	return dc.color
}

// eyeContext is the area of one finder pattern.
type eyeContext struct {
	DrawContext

	// module is the width of a single module in pixels.
	module float64
	// region is the index of the finder: 0 top-left, 1 top-right,
	// 2 bottom-left.
	region int

	inner color.Color
}

// pointRenderer adds the shape of one dark data module to the current path.
// The painter fills all of them at once.
type pointRenderer func(dc *DrawContext)

// eyeRenderer draws a finder pattern, the ring in the outer color and then
// the central 3×3 block in the inner color.
type eyeRenderer struct {
	ring  func(ec *eyeContext)
	inner func(ec *eyeContext)
}

func (r eyeRenderer) draw(ec *eyeContext) {
	ec.SetColor(ec.color)
	r.ring(ec)

	ec.SetColor(ec.inner)
	r.inner(ec)
}
