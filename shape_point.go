package qrstyle

import (
	"github.com/Mictilt/qrstyle/surface"
)

var pointRenderers = map[PointStyle]pointRenderer{
	PointNormal:     drawNormalPoint,
	PointBigSquare:  roundedPoint(1),
	PointMiniSquare: roundedPoint(2),
	PointBigCircle:  circlePoint(1),
	PointMiniCircle: circlePoint(2),
	PointRhombic:    drawRhombicPoint,
}

func drawNormalPoint(dc *DrawContext) {
	x, y := dc.UpperLeft()
	w, h := dc.Edge()
	dc.DrawRectangle(x, y, float64(w), float64(h))
}

// roundedPoint is a square inset by inset pixels with corner radius w/5.
func roundedPoint(inset float64) pointRenderer {
	return func(dc *DrawContext) {
		x, y := dc.UpperLeft()
		w, _ := dc.Edge()

		size := float64(w) - 2*inset
		if size <= 0 {
			return
		}
		dc.DrawRoundedRectangle(x+inset, y+inset, size, size, surface.Uniform(float64(w)/5))
	}
}

// circlePoint is a centered circle with radius w/2-inset.
func circlePoint(inset float64) pointRenderer {
	return func(dc *DrawContext) {
		x, y := dc.UpperLeft()
		w, _ := dc.Edge()

		half := float64(w) / 2
		r := half - inset
		if r <= 0 {
			return
		}
		dc.DrawCircle(x+half, y+half, r)
	}
}

// drawRhombicPoint draws a diamond through the midpoints of the cell edges.
func drawRhombicPoint(dc *DrawContext) {
	x, y := dc.UpperLeft()
	w, h := dc.Edge()
	if w <= 0 || h <= 0 {
		return
	}

	cx, cy := x+float64(w)/2, y+float64(h)/2
	dc.NewSubPath()
	dc.MoveTo(cx, y)
	dc.LineTo(x+float64(w), cy)
	dc.LineTo(cx, y+float64(h))
	dc.LineTo(x, cy)
	dc.ClosePath()
}
