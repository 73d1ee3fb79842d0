package qrstyle

// EyeSize is the width of a finder pattern in modules.
const EyeSize = 7

// EyeRegion is a block of modules in padded grid coordinates, bounds are
// inclusive.
type EyeRegion struct {
	RowStart, ColStart int
	RowEnd, ColEnd     int
}

// Contains reports whether (row, col) lies inside the region.
func (r EyeRegion) Contains(row, col int) bool {
	return row >= r.RowStart && row <= r.RowEnd &&
		col >= r.ColStart && col <= r.ColEnd
}

// Origin returns the pixel position of the upper left corner of the region
// for a module width of w.
func (r EyeRegion) Origin(w int) (x, y float64) {
	return float64(r.ColStart * w), float64(r.RowStart * w)
}

// TotalGridSize is the number of modules on a side including the margin.
func TotalGridSize(n, margin int) int {
	return n + 2*margin
}

// ScaleFactor returns the pixels per module, floor(pixelWidth / total). It is
// 0 when the grid does not fit into pixelWidth at all.
func ScaleFactor(pixelWidth, total int) int {
	if pixelWidth <= 0 || total <= 0 {
		return 0
	}
	return pixelWidth / total
}

// ComputeEyeRegions returns the top-left, top-right and bottom-left finder
// regions of a grid with total modules on a side, margin included.
func ComputeEyeRegions(total, margin int) [3]EyeRegion {
	far := total - margin - EyeSize
	return [3]EyeRegion{
		{RowStart: margin, ColStart: margin, RowEnd: margin + EyeSize - 1, ColEnd: margin + EyeSize - 1},
		{RowStart: margin, ColStart: far, RowEnd: margin + EyeSize - 1, ColEnd: far + EyeSize - 1},
		{RowStart: far, ColStart: margin, RowEnd: far + EyeSize - 1, ColEnd: margin + EyeSize - 1},
	}
}

// IsInsideAnyRegion reports whether (row, col) lies in one of regions.
func IsInsideAnyRegion(regions []EyeRegion, row, col int) bool {
	for _, r := range regions {
		if r.Contains(row, col) {
			return true
		}
	}
	return false
}
