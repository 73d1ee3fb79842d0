package surface

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestCornerRadii_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		radii CornerRadii
		w, h  float64
		want  CornerRadii
	}{
		{
			name:  "fits",
			radii: CornerRadii{1, 2, 3, 4},
			w:     10, h: 10,
			want: CornerRadii{1, 2, 3, 4},
		},
		{
			name:  "negative clamped",
			radii: CornerRadii{-1, 2, -3, 4},
			w:     10, h: 10,
			want: CornerRadii{0, 2, 0, 4},
		},
		{
			name:  "scaled down",
			radii: Uniform(10),
			w:     10, h: 10,
			want: Uniform(5),
		},
		{
			name:  "one oversized corner",
			radii: CornerRadii{20, 0, 0, 0},
			w:     10, h: 10,
			want: CornerRadii{10, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.radii.Normalize(tt.w, tt.h)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestRaster_ResizeAndClear(t *testing.T) {
	r := NewRaster(10, 10)
	r.SetColor(red)
	r.Clear()
	assert.Equal(t, red, rgbaAt(r.Image(), 5, 5))

	r.Resize(20, 30)
	assert.Equal(t, 20, r.Width())
	assert.Equal(t, 30, r.Height())
	assert.Equal(t, image.Rect(0, 0, 20, 30), r.Image().Bounds())
	// resize drops the content
	assert.Equal(t, color.RGBA{}, rgbaAt(r.Image(), 5, 5))
}

func TestRaster_ZeroSize(t *testing.T) {
	r := NewRaster(0, 0)
	assert.Equal(t, 0, r.Width())
	assert.Equal(t, 0, r.Height())

	r.SetColor(white)
	r.Clear()
	assert.Equal(t, image.Rect(0, 0, 1, 1), r.Image().Bounds())

	data, err := Export(r, ExportOptions{Format: PNG_FORMAT})
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, white, rgbaAt(img, 0, 0))
}

func TestRaster_FillRectangle(t *testing.T) {
	r := NewRaster(10, 10)
	r.SetColor(white)
	r.Clear()

	r.SetColor(red)
	r.DrawRectangle(2, 2, 4, 4)
	r.Fill()

	img := r.Image()
	assert.Equal(t, red, rgbaAt(img, 2, 2))
	assert.Equal(t, red, rgbaAt(img, 5, 5))
	assert.Equal(t, white, rgbaAt(img, 6, 6))
	assert.Equal(t, white, rgbaAt(img, 1, 1))
}

func TestRaster_RoundedRectangleCorners(t *testing.T) {
	r := NewRaster(40, 40)
	r.SetColor(white)
	r.Clear()

	// only the top-left corner is rounded
	r.SetColor(red)
	r.DrawRoundedRectangle(0, 0, 40, 40, CornerRadii{20, 0, 0, 0})
	r.Fill()

	img := r.Image()
	assert.Equal(t, white, rgbaAt(img, 0, 0))
	assert.Equal(t, red, rgbaAt(img, 39, 0))
	assert.Equal(t, red, rgbaAt(img, 39, 39))
	assert.Equal(t, red, rgbaAt(img, 0, 39))
	assert.Equal(t, red, rgbaAt(img, 20, 20))
}

func TestRaster_EvenOddRing(t *testing.T) {
	r := NewRaster(30, 30)
	r.SetColor(white)
	r.Clear()

	r.SetColor(red)
	r.SetFillRuleEvenOdd()
	r.DrawRectangle(0, 0, 30, 30)
	r.DrawRectangle(10, 10, 10, 10)
	r.Fill()

	img := r.Image()
	assert.Equal(t, red, rgbaAt(img, 5, 5))
	assert.Equal(t, white, rgbaAt(img, 15, 15))
}

func TestVector_WriteSVG(t *testing.T) {
	v := NewVector(50, 50)
	v.SetColor(white)
	v.Clear()

	v.SetColor(red)
	v.DrawRoundedRectangle(5, 5, 20, 20, CornerRadii{4, 0, 4, 0})
	v.Fill()

	v.SetFillRuleEvenOdd()
	v.DrawCircle(25, 25, 10)
	v.DrawCircle(25, 25, 5)
	v.Fill()

	assert.Equal(t, 3, v.Elements())

	var buf bytes.Buffer
	require.NoError(t, v.WriteSVG(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `viewBox="0 0 50 50"`)
	assert.Contains(t, out, "fill:#ffffff")
	assert.Contains(t, out, "fill:#ff0000")
	assert.Contains(t, out, "fill-rule:evenodd")
	assert.Contains(t, out, "A4.00 4.00 0 0 1")
	assert.Equal(t, 2, strings.Count(out, "<path"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestVector_ClearDropsPreviousElements(t *testing.T) {
	v := NewVector(10, 10)
	v.SetColor(red)
	v.DrawRectangle(0, 0, 5, 5)
	v.Fill()
	require.Equal(t, 1, v.Elements())

	v.SetColor(white)
	v.Clear()
	assert.Equal(t, 1, v.Elements())

	// Fill without a path draws nothing
	v.Fill()
	assert.Equal(t, 1, v.Elements())
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	s, err := reg.GetOrCreate("", KindRaster)
	require.NoError(t, err)
	assert.IsType(t, &Raster{}, s)
	assert.Equal(t, DefaultWidth, s.Width())

	s, err = reg.GetOrCreate("", KindVector)
	require.NoError(t, err)
	assert.IsType(t, &Vector{}, s)

	_, err = reg.GetOrCreate("missing", KindRaster)
	assert.True(t, errors.Is(err, ErrUnavailable))

	mine := NewRaster(64, 64)
	require.NoError(t, reg.Register("mine", mine))
	got, err := reg.GetOrCreate("mine", KindVector)
	require.NoError(t, err)
	assert.Same(t, mine, got)

	reg.Remove("mine")
	_, err = reg.Lookup("mine")
	assert.True(t, errors.Is(err, ErrUnavailable))

	assert.Error(t, reg.Register("", mine))
	assert.Error(t, reg.Register("nil", nil))
}

func TestExport_Formats(t *testing.T) {
	r := NewRaster(8, 8)
	r.SetColor(red)
	r.Clear()

	data, err := Export(r, ExportOptions{Format: PNG_FORMAT})
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	data, err = Export(r, ExportOptions{Format: JPEG_FORMAT})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8}, data[:2])

	data, err = Export(r, ExportOptions{Format: SVG_FORMAT})
	require.NoError(t, err)
	assert.Contains(t, string(data), "data:image/png;base64,")

	data, err = Export(r, ExportOptions{Format: PNG_FORMAT, Resolution: 32})
	require.NoError(t, err)
	img, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	assert.Equal(t, red, rgbaAt(img, 31, 31))
}

func TestExport_ResolutionTooLarge(t *testing.T) {
	for _, s := range []Surface{NewRaster(8, 8), NewVector(8, 8)} {
		_, err := Export(s, ExportOptions{Format: SVG_FORMAT, Resolution: MaxSize + 1})
		assert.True(t, errors.Is(err, ErrTooLarge))
	}
}

func TestExport_VectorResolution(t *testing.T) {
	v := NewVector(50, 50)
	v.SetColor(red)
	v.DrawRectangle(0, 0, 10, 10)
	v.Fill()

	data, err := Export(v, ExportOptions{Format: SVG_FORMAT, Resolution: 600})
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `width="600"`)
	assert.Contains(t, out, `height="600"`)
	assert.Contains(t, out, `viewBox="0 0 50 50"`)
	assert.Contains(t, out, "M0.00 0.00 L10.00 0.00")

	// without a resolution the document keeps the drawing size
	data, err = Export(v, ExportOptions{Format: SVG_FORMAT})
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="50"`)
}

func TestExport_VectorOnlySVG(t *testing.T) {
	v := NewVector(8, 8)

	_, err := Export(v, ExportOptions{Format: PNG_FORMAT})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	data, err := Export(v, ExportOptions{Format: SVG_FORMAT})
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":     PNG_FORMAT,
		"png":  PNG_FORMAT,
		".PNG": PNG_FORMAT,
		"jpg":  JPEG_FORMAT,
		"jpeg": JPEG_FORMAT,
		"svg":  SVG_FORMAT,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("gif")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AQID", DataURL(PNG_FORMAT, []byte{1, 2, 3}))
	assert.Equal(t, "data:image/svg+xml;base64,", DataURL(SVG_FORMAT, nil))
}
