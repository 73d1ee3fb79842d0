// Package imgkit contains small image helpers used when exporting surfaces.
package imgkit

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resamples src into a new image with bounds rect. A nil scaler means
// nearest neighbour, which keeps module edges sharp.
func Scale(src image.Image, rect image.Rectangle, scale draw.Scaler) image.Image {
	if scale == nil {
		scale = draw.NearestNeighbor
	}

	dst := image.NewRGBA(rect)
	scale.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
