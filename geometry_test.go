package qrstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeEyeRegions(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		margin int
		want   [3]EyeRegion
	}{
		{
			name:   "version 1 without margin",
			total:  21,
			margin: 0,
			want: [3]EyeRegion{
				{RowStart: 0, ColStart: 0, RowEnd: 6, ColEnd: 6},
				{RowStart: 0, ColStart: 14, RowEnd: 6, ColEnd: 20},
				{RowStart: 14, ColStart: 0, RowEnd: 20, ColEnd: 6},
			},
		},
		{
			name:   "version 1 with margin 4",
			total:  29,
			margin: 4,
			want: [3]EyeRegion{
				{RowStart: 4, ColStart: 4, RowEnd: 10, ColEnd: 10},
				{RowStart: 4, ColStart: 18, RowEnd: 10, ColEnd: 24},
				{RowStart: 18, ColStart: 4, RowEnd: 24, ColEnd: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeEyeRegions(tt.total, tt.margin))
		})
	}
}

func TestComputeEyeRegions_SizeAndOverlap(t *testing.T) {
	overlap := func(a, b EyeRegion) bool {
		return a.RowStart <= b.RowEnd && b.RowStart <= a.RowEnd &&
			a.ColStart <= b.ColEnd && b.ColStart <= a.ColEnd
	}

	for version := 1; version <= MaxVersion; version++ {
		n := SymbolSize(version)
		for margin := 0; margin <= 4; margin++ {
			total := TotalGridSize(n, margin)
			regions := ComputeEyeRegions(total, margin)

			for i, r := range regions {
				assert.Equal(t, EyeSize-1, r.RowEnd-r.RowStart, "version %d region %d", version, i)
				assert.Equal(t, EyeSize-1, r.ColEnd-r.ColStart, "version %d region %d", version, i)
				assert.GreaterOrEqual(t, r.RowStart, margin)
				assert.GreaterOrEqual(t, r.ColStart, margin)
				assert.Less(t, r.RowEnd, total-margin)
				assert.Less(t, r.ColEnd, total-margin)
			}

			assert.False(t, overlap(regions[0], regions[1]))
			assert.False(t, overlap(regions[0], regions[2]))
			assert.False(t, overlap(regions[1], regions[2]))
		}
	}
}

func TestIsInsideAnyRegion(t *testing.T) {
	// total 25, margin 2: top-right cols 16..22, bottom-left rows 16..22
	regions := ComputeEyeRegions(25, 2)

	tests := []struct {
		row, col int
		want     bool
	}{
		{row: 2, col: 2, want: true},
		{row: 8, col: 8, want: true},
		{row: 9, col: 8, want: false},
		{row: 1, col: 1, want: false},
		{row: 2, col: 20, want: true},
		{row: 2, col: 22, want: true},
		{row: 2, col: 23, want: false},
		{row: 20, col: 2, want: true},
		{row: 22, col: 8, want: true},
		{row: 20, col: 20, want: false},
		{row: 12, col: 12, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsInsideAnyRegion(regions[:], tt.row, tt.col), "(%d, %d)", tt.row, tt.col)
	}
}

func TestScaleFactor(t *testing.T) {
	assert.Equal(t, 14, ScaleFactor(300, 21))
	assert.Equal(t, 1, ScaleFactor(21, 21))
	assert.Equal(t, 0, ScaleFactor(20, 21))
	assert.Equal(t, 0, ScaleFactor(0, 21))
	assert.Equal(t, 0, ScaleFactor(300, 0))
	assert.Equal(t, 0, ScaleFactor(-1, 21))
}

func TestEyeRegion_Origin(t *testing.T) {
	r := EyeRegion{RowStart: 18, ColStart: 4, RowEnd: 24, ColEnd: 10}
	x, y := r.Origin(10)
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 180.0, y)
}
