package surface

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"github.com/Mictilt/qrstyle/surface/imgkit"
)

// Format is the encoded image format of an exported surface.
type Format uint8

const (
	// PNG_FORMAT as default output format.
	PNG_FORMAT Format = iota
	// JPEG_FORMAT .
	JPEG_FORMAT
	// SVG_FORMAT .
	SVG_FORMAT
)

// ErrUnsupportedFormat is returned when a surface cannot be encoded in the
// requested format.
var ErrUnsupportedFormat = errors.New("unsupported format")

func (f Format) String() string {
	switch f {
	case PNG_FORMAT:
		return "png"
	case JPEG_FORMAT:
		return "jpeg"
	case SVG_FORMAT:
		return "svg"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// MIMEType returns the media type of the format.
func (f Format) MIMEType() string {
	switch f {
	case JPEG_FORMAT:
		return "image/jpeg"
	case SVG_FORMAT:
		return "image/svg+xml"
	}
	return "image/png"
}

// Kind returns the surface kind which encodes natively into f.
func (f Format) Kind() Kind {
	if f == SVG_FORMAT {
		return KindVector
	}
	return KindRaster
}

// ParseFormat parses a format name like "png", "jpg" or "svg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "png":
		return PNG_FORMAT, nil
	case "jpg", "jpeg":
		return JPEG_FORMAT, nil
	case "svg":
		return SVG_FORMAT, nil
	}
	return PNG_FORMAT, errors.Wrapf(ErrUnsupportedFormat, "format(%s)", s)
}

// ImageEncoder is an interface which describes the rule how to encode image.Image into io.Writer
type ImageEncoder interface {
	// Encode specify which format to encode image into io.Writer.
	Encode(w io.Writer, img image.Image) error
}

type jpegEncoder struct{}

func (j jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

type pngEncoder struct{}

func (p pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// svgoEncoder wraps a raster image into an SVG document as an embedded PNG.
type svgoEncoder struct{}

func (s svgoEncoder) Encode(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrap(err, "encode embedded png")
	}

	ew := &errWriter{w: w}
	canvas := svgo.New(ew)
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Image(0, 0, width, height, DataURL(PNG_FORMAT, buf.Bytes()))
	canvas.End()

	return ew.err
}

// BuiltinImageEncoder returns the encoder for a raster image in format f.
func BuiltinImageEncoder(f Format) (ImageEncoder, error) {
	switch f {
	case PNG_FORMAT:
		return pngEncoder{}, nil
	case JPEG_FORMAT:
		return jpegEncoder{}, nil
	case SVG_FORMAT:
		return svgoEncoder{}, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "format(%s)", f)
}

// ExportOptions controls Export.
type ExportOptions struct {
	Format Format
	// Resolution, when positive, resamples a raster surface to exactly
	// Resolution×Resolution pixels before encoding. A vector surface keeps
	// its drawing and only changes the width and height of the document.
	// It must not exceed MaxSize.
	Resolution int
}

// CanExport reports whether s can be encoded in format f.
func CanExport(s Surface, f Format) bool {
	switch s.(type) {
	case *Vector:
		return f == SVG_FORMAT
	case interface{ Image() image.Image }:
		return f <= SVG_FORMAT
	}
	return false
}

// Export encodes the content of s. Vector surfaces only encode as SVG,
// raster surfaces encode as any format (SVG embeds the raster).
func Export(s Surface, opts ExportOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := ExportTo(&buf, s, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportTo is like Export but writes into w.
func ExportTo(w io.Writer, s Surface, opts ExportOptions) error {
	if opts.Resolution > MaxSize {
		return errors.Wrapf(ErrTooLarge, "resolution(%d) exceeds %d", opts.Resolution, MaxSize)
	}

	switch v := s.(type) {
	case *Vector:
		if opts.Format != SVG_FORMAT {
			return errors.Wrapf(ErrUnsupportedFormat, "vector surface as %s", opts.Format)
		}
		if opts.Resolution > 0 {
			return errors.Wrap(v.writeSVG(w, opts.Resolution, opts.Resolution), "write svg")
		}
		return errors.Wrap(v.WriteSVG(w), "write svg")
	case interface{ Image() image.Image }:
		encoder, err := BuiltinImageEncoder(opts.Format)
		if err != nil {
			return err
		}

		img := v.Image()
		if opts.Resolution > 0 {
			img = imgkit.Scale(img, image.Rect(0, 0, opts.Resolution, opts.Resolution), nil)
		}

		return errors.Wrapf(encoder.Encode(w, img), "encode %s", opts.Format)
	}

	return errors.Wrapf(ErrUnsupportedFormat, "surface %T", s)
}

// DataURL formats data as a data URL, e.g. "data:image/png;base64,...".
func DataURL(f Format, data []byte) string {
	return "data:" + f.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(data)
}
