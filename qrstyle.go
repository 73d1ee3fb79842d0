// Package qrstyle renders styled QR codes: the data modules and the three
// finder patterns ("eyes") are painted with configurable colors and shapes
// onto a raster or vector surface, which is then exported as PNG, JPEG or
// SVG.
//
// Basic usage:
//
//	cfg := qrstyle.NewConfig("https://example.com",
//		qrstyle.WithVersion(3),
//		qrstyle.WithPointStyle(qrstyle.PointBigCircle),
//		qrstyle.WithEyeShape(qrstyle.EyeBubble),
//		qrstyle.WithPixelWidth(600),
//	)
//	err := qrstyle.CreateQrcode(cfg, func(png []byte, width int) {
//		_ = os.WriteFile("qr.png", png, 0o644)
//	})
package qrstyle

import (
	"github.com/pkg/errors"

	"github.com/Mictilt/qrstyle/surface"
)

// Renderer encodes, paints and exports QR codes, taking target surfaces from
// its registry.
type Renderer struct {
	registry *surface.Registry
}

// NewRenderer creates a renderer using reg, surface.DefaultRegistry when reg
// is nil.
func NewRenderer(reg *surface.Registry) *Renderer {
	if reg == nil {
		reg = surface.DefaultRegistry
	}
	return &Renderer{registry: reg}
}

var defaultRenderer = NewRenderer(nil)

// CreateQrcode renders rc with the default renderer, see Renderer.Create.
func CreateQrcode(rc RenderConfig, cb func(encoded []byte, width int)) error {
	return defaultRenderer.Create(rc, cb)
}

// Create renders rc and hands the encoded image and its pixel width to cb.
// cb is called exactly once, before Create returns, and only on success.
// Nothing is drawn when rc is invalid or the target surface is missing.
func (r *Renderer) Create(rc RenderConfig, cb func(encoded []byte, width int)) error {
	cfg, err := ResolveConfig(rc)
	if err != nil {
		return err
	}

	s, err := r.registry.GetOrCreate(cfg.TargetSurfaceID, cfg.Format.Kind())
	if err != nil {
		return errors.Wrap(err, "acquire surface")
	}
	if !surface.CanExport(s, cfg.Format) {
		return errors.Wrapf(surface.ErrUnsupportedFormat, "surface(%s) as %s", cfg.TargetSurfaceID, cfg.Format)
	}

	grid, err := cfg.Encoder.Encode(cfg.Content, EncodeOptions{
		ErrorCorrection: cfg.ErrorCorrection,
		Version:         cfg.Version,
	})
	if err != nil {
		return errors.Wrap(err, "encode content")
	}

	width, err := Render(grid, cfg, s)
	if err != nil {
		return errors.Wrap(err, "render")
	}

	data, err := surface.Export(s, surface.ExportOptions{Format: cfg.Format})
	if err != nil {
		return errors.Wrap(err, "export")
	}

	if cb != nil {
		cb(data, width)
	}

	return nil
}
