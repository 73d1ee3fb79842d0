package qrstyle

import (
	"github.com/Mictilt/qrstyle/surface"
)

// cornerRadius is the radius of a rounded corner of the Bubble, Eye and
// SingleRadius eyes, in modules.
const cornerRadius = 1.2

// Rounded corners of each finder in the order top-left, top-right,
// bottom-right, bottom-left. Rows are indexed by region.
var (
	bubbleCorners = [3][4]bool{
		{true, false, true, true},
		{false, true, true, true},
		{true, true, true, false},
	}
	eyeCorners = [3][4]bool{
		{false, true, false, true},
		{true, false, true, false},
		{true, false, true, false},
	}
	singleRadiusCorners = [3][4]bool{
		{true, false, false, false},
		{false, true, false, false},
		{false, false, true, false},
	}
)

var eyeRenderers = map[EyeShape]eyeRenderer{
	EyeSquare:       {ring: rectRing(1, 0), inner: squareInner},
	EyeRadius:       {ring: rectRing(1, 1), inner: circleInner},
	EyeThickRadius:  {ring: rectRing(1, 1), inner: roundedInner(1)},
	EyeMiddleRadius: {ring: rectRing(1/1.5, 1/1.5), inner: roundedInner(1 / 1.5)},
	EyeThinsRadius:  {ring: rectRing(0.5, 0.5), inner: roundedInner(0.5)},
	EyeThickCircle:  {ring: circleRing(1), inner: circleInner},
	EyeThinsCircle:  {ring: circleRing(0.5), inner: circleInner},
	EyeBubble:       cornerEye(bubbleCorners),
	EyeEye:          cornerEye(eyeCorners),
	EyeSingleRadius: cornerEye(singleRadiusCorners),
}

// rectRing is a square ring of lineWidth modules. radius is the corner
// radius of the ring center line, in modules.
func rectRing(lineWidth, radius float64) func(ec *eyeContext) {
	return func(ec *eyeContext) {
		fillRing(ec, lineWidth*ec.module, surface.Uniform(radius*ec.module))
	}
}

func circleRing(lineWidth float64) func(ec *eyeContext) {
	return func(ec *eyeContext) {
		x, y := ec.UpperLeft()
		w, _ := ec.Edge()
		r := float64(w) / 2
		lw := lineWidth * ec.module

		ec.SetFillRuleEvenOdd()
		ec.DrawCircle(x+r, y+r, r)
		ec.DrawCircle(x+r, y+r, r-lw)
		ec.Fill()
		ec.SetFillRuleWinding()
	}
}

// fillRing fills the band between the region border and the same contour
// inset by lw, the shape a stroke of width lw with miter joins would give.
// radii are the corner radii of the band center line.
func fillRing(ec *eyeContext, lw float64, radii surface.CornerRadii) {
	x, y := ec.UpperLeft()
	w, _ := ec.Edge()
	edge := float64(w)

	var outer, inner surface.CornerRadii
	for i, r := range radii {
		if r > 0 {
			outer[i] = r + lw/2
			inner[i] = max(r-lw/2, 0)
		}
	}

	ec.SetFillRuleEvenOdd()
	drawBox(ec, x, y, edge, outer)
	drawBox(ec, x+lw, y+lw, edge-2*lw, inner)
	ec.Fill()
	ec.SetFillRuleWinding()
}

// innerBox returns the position and size of the central 3×3 block.
func innerBox(ec *eyeContext) (x, y, size float64) {
	x, y = ec.UpperLeft()
	return x + 2*ec.module, y + 2*ec.module, 3 * ec.module
}

func squareInner(ec *eyeContext) {
	x, y, size := innerBox(ec)
	ec.DrawRectangle(x, y, size, size)
	ec.Fill()
}

func circleInner(ec *eyeContext) {
	x, y, size := innerBox(ec)
	ec.DrawCircle(x+size/2, y+size/2, size/2)
	ec.Fill()
}

func roundedInner(radius float64) func(ec *eyeContext) {
	return func(ec *eyeContext) {
		x, y, size := innerBox(ec)
		ec.DrawRoundedRectangle(x, y, size, size, surface.Uniform(radius*ec.module))
		ec.Fill()
	}
}

// cornerEye rounds the corners selected by table for both the ring and the
// inner block.
func cornerEye(table [3][4]bool) eyeRenderer {
	radii := func(ec *eyeContext) surface.CornerRadii {
		var cr surface.CornerRadii
		for i, rounded := range table[ec.region] {
			if rounded {
				cr[i] = cornerRadius * ec.module
			}
		}
		return cr
	}

	return eyeRenderer{
		ring: func(ec *eyeContext) {
			fillRing(ec, ec.module, radii(ec))
		},
		inner: func(ec *eyeContext) {
			x, y, size := innerBox(ec)
			drawBox(ec, x, y, size, radii(ec))
			ec.Fill()
		},
	}
}

// drawBox adds a size×size square, rounded where radii say so.
func drawBox(s surface.Surface, x, y, size float64, radii surface.CornerRadii) {
	if radii.IsZero() {
		s.DrawRectangle(x, y, size, size)
		return
	}
	s.DrawRoundedRectangle(x, y, size, size, radii)
}
