// Package surface provides the drawable targets a styled QR code is painted on:
// a raster surface backed by fogleman/gg and a vector surface which emits SVG.
package surface

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// Surface defines the drawing operations the painter relies on. Coordinates are
// pixels, x grows to the right and y grows downwards.
type Surface interface {
	// Resize discards the current content and sets the surface size.
	Resize(width, height int)
	Width() int
	Height() int

	SetColor(c color.Color)
	// Clear fills the whole surface with the current color.
	Clear()

	// DrawRectangle, DrawRoundedRectangle and DrawCircle each start a new
	// sub path, so several of them may be combined into one Fill.
	DrawRectangle(x, y, w, h float64)
	DrawRoundedRectangle(x, y, w, h float64, radii CornerRadii)
	DrawCircle(cx, cy, r float64)

	NewSubPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	SetFillRuleEvenOdd()
	SetFillRuleWinding()
	// Fill paints the current path with the current color and clears it.
	Fill()
}

// MaxSize is the largest width or height a surface is exported at.
// 16384² RGBA pixels take 1 GiB.
const MaxSize = 16384

// ErrTooLarge is returned when an export would exceed MaxSize.
var ErrTooLarge = errors.New("size too large")

// Kind identifies a surface implementation.
type Kind uint8

const (
	// KindRaster is a pixel surface, see Raster.
	KindRaster Kind = iota
	// KindVector is an SVG surface, see Vector.
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindRaster:
		return "raster"
	case KindVector:
		return "vector"
	}
	return "unknown"
}

// New creates an empty surface of the given kind.
func New(kind Kind, width, height int) Surface {
	if kind == KindVector {
		return NewVector(width, height)
	}
	return NewRaster(width, height)
}

// CornerRadii holds one radius per corner in the order
// top-left, top-right, bottom-right, bottom-left.
type CornerRadii [4]float64

// Uniform returns radii with all four corners set to r.
func Uniform(r float64) CornerRadii {
	return CornerRadii{r, r, r, r}
}

// Normalize clamps negative radii to zero and scales all radii down
// proportionally when two adjacent corners would not fit on a side of
// a w×h rectangle.
func (cr CornerRadii) Normalize(w, h float64) CornerRadii {
	for i, r := range cr {
		if r < 0 || math.IsNaN(r) {
			cr[i] = 0
		}
	}

	scale := 1.0
	fit := func(side, a, b float64) {
		if sum := a + b; sum > 0 && side/sum < scale {
			scale = side / sum
		}
	}
	fit(w, cr[0], cr[1])
	fit(h, cr[1], cr[2])
	fit(w, cr[2], cr[3])
	fit(h, cr[3], cr[0])

	if scale < 1 {
		if scale < 0 {
			scale = 0
		}
		for i := range cr {
			cr[i] *= scale
		}
	}

	return cr
}

// IsZero reports whether all corners are sharp.
func (cr CornerRadii) IsZero() bool {
	return cr == CornerRadii{}
}
