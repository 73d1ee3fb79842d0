package qrstyle

import (
	"image/color"

	"github.com/Mictilt/qrstyle/surface"
)

// Option configures a RenderConfig.
type Option interface {
	apply(rc *RenderConfig)
}

// funcOption wraps a function that modifies RenderConfig into an
// implementation of the Option interface.
type funcOption struct {
	f func(rc *RenderConfig)
}

func (fo *funcOption) apply(rc *RenderConfig) {
	fo.f(rc)
}

func newFuncOption(f func(rc *RenderConfig)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// NewConfig creates a RenderConfig for content with opts applied in order.
// Option errors, like a malformed hex color, are reported by ResolveConfig.
func NewConfig(content string, opts ...Option) RenderConfig {
	rc := RenderConfig{Content: content}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&rc)
	}
	return rc
}

func (rc *RenderConfig) setErr(err error) {
	if rc.err == nil {
		rc.err = err
	}
}

// parseColorOption parses s and hands the color to set, any error is kept
// in rc.
func parseColorOption(s string, set func(rc *RenderConfig, c color.Color)) Option {
	return newFuncOption(func(rc *RenderConfig) {
		if s == "" {
			return
		}

		c, err := ParseColor(s)
		if err != nil {
			rc.setErr(err)
			return
		}
		set(rc, c)
	})
}

// WithCodeColor data module color
func WithCodeColor(c color.Color) Option {
	return newFuncOption(func(rc *RenderConfig) {
		if c == nil {
			return
		}

		rc.CodeColor = c
	})
}

// WithCodeColorRGBHex Hex string (or a color name) to set the data module color
func WithCodeColorRGBHex(hex string) Option {
	return parseColorOption(hex, func(rc *RenderConfig, c color.Color) {
		rc.CodeColor = c
	})
}

// WithBgColor background color
func WithBgColor(c color.Color) Option {
	return newFuncOption(func(rc *RenderConfig) {
		if c == nil {
			return
		}

		rc.CodeBgColor = c
	})
}

// WithBgColorRGBHex background color
func WithBgColorRGBHex(hex string) Option {
	return parseColorOption(hex, func(rc *RenderConfig, c color.Color) {
		rc.CodeBgColor = c
	})
}

// WithEyeOuterColor sets the color of the finder rings
func WithEyeOuterColor(c color.Color) Option {
	return newFuncOption(func(rc *RenderConfig) {
		if c == nil {
			return
		}

		rc.EyeOuterColor = c
	})
}

// WithEyeOuterColorRGBHex sets the color of the finder rings
func WithEyeOuterColorRGBHex(hex string) Option {
	return parseColorOption(hex, func(rc *RenderConfig, c color.Color) {
		rc.EyeOuterColor = c
	})
}

// WithEyeInnerColor sets the color of the finder centers
func WithEyeInnerColor(c color.Color) Option {
	return newFuncOption(func(rc *RenderConfig) {
		if c == nil {
			return
		}

		rc.EyeInnerColor = c
	})
}

// WithEyeInnerColorRGBHex sets the color of the finder centers
func WithEyeInnerColorRGBHex(hex string) Option {
	return parseColorOption(hex, func(rc *RenderConfig, c color.Color) {
		rc.EyeInnerColor = c
	})
}

// WithMargin quiet zone width in modules.
func WithMargin(modules int) Option {
	return newFuncOption(func(rc *RenderConfig) {
		rc.Margin = modules
	})
}

// WithErrorCorrection sets the error correction level.
func WithErrorCorrection(ec ErrorCorrection) Option {
	return newFuncOption(func(rc *RenderConfig) {
		rc.ErrorCorrection = ec
	})
}

// WithVersion sets the QR version, 1..40.
func WithVersion(version int) Option {
	return newFuncOption(func(rc *RenderConfig) {
		rc.Version = version
	})
}

// WithPointStyle sets the data module shape.
func WithPointStyle(p PointStyle) Option {
	return newFuncOption(func(rc *RenderConfig) {
		rc.PointStyle = p
	})
}

// WithEyeShape sets the finder pattern shape.
func WithEyeShape(e EyeShape) Option {
	return newFuncOption(func(rc *RenderConfig) {
		rc.EyeShape = e
	})
}

// WithTargetSurface renders into the surface registered under id.
func WithTargetSurface(id string) Option {
	return newFuncOption(func(rc *RenderConfig) {
		rc.TargetSurfaceID = id
	})
}

// WithPixelWidth sets the desired output width in pixels. The actual width
// is rounded down to a multiple of the module count.
func WithPixelWidth(width int) Option {
	return newFuncOption(func(rc *RenderConfig) {
		rc.PixelWidth = width
	})
}

// WithFormat option includes: PNG_FORMAT as default, JPEG_FORMAT, SVG_FORMAT.
func WithFormat(f surface.Format) Option {
	return newFuncOption(func(rc *RenderConfig) {
		rc.Format = f
	})
}

// WithEncoder replaces the encoding backend.
func WithEncoder(enc Encoder) Option {
	return newFuncOption(func(rc *RenderConfig) {
		if enc == nil {
			return
		}

		rc.Encoder = enc
	})
}
