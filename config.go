package qrstyle

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/Mictilt/qrstyle/surface"
)

const (
	// DefaultVersion is the QR version used when none is set.
	DefaultVersion = 1
	// MaxVersion is the largest QR version.
	MaxVersion = 40
	// DefaultErrorCorrection is used when no level is set.
	DefaultErrorCorrection = ErrorCorrectionQuart
	// MaxPixelWidth is the largest PixelWidth a config accepts.
	MaxPixelWidth = surface.MaxSize
)

var (
	defaultCodeColor   color.Color = color.Black
	defaultCodeBgColor color.Color = color.White
)

// RenderConfig is the caller facing render configuration. Every field except
// Content is optional, zero values take the defaults. Build one directly or
// with NewConfig and the With* options.
type RenderConfig struct {
	// Content is the text encoded into the symbol. Required.
	Content string

	// CodeColor paints data modules, black by default.
	CodeColor color.Color
	// CodeBgColor fills the whole surface, white by default.
	CodeBgColor color.Color
	// Margin is the quiet zone around the symbol in modules.
	Margin int

	ErrorCorrection ErrorCorrection
	// Version of the symbol, 1..40, 1 by default.
	Version int

	PointStyle PointStyle
	EyeShape   EyeShape
	// EyeOuterColor and EyeInnerColor default to CodeColor.
	EyeOuterColor color.Color
	EyeInnerColor color.Color

	// TargetSurfaceID selects a surface from the registry. A new surface is
	// created when it is empty.
	TargetSurfaceID string
	// PixelWidth is the desired output width. When it is 0 the current width
	// of the target surface is used.
	PixelWidth int

	// Format of the encoded output, PNG by default.
	Format surface.Format
	// Encoder turns Content into modules, DefaultEncoder when nil.
	Encoder Encoder

	// err keeps the first error reported by an option.
	err error
}

// Config is a fully resolved RenderConfig, every field holds a usable value.
type Config struct {
	Content string

	CodeColor     color.Color
	CodeBgColor   color.Color
	EyeOuterColor color.Color
	EyeInnerColor color.Color

	Margin          int
	ErrorCorrection ErrorCorrection
	Version         int
	PointStyle      PointStyle
	EyeShape        EyeShape

	TargetSurfaceID string
	PixelWidth      int
	Format          surface.Format
	Encoder         Encoder
}

// ResolveConfig validates partial and fills in the defaults. partial is not
// modified.
//
// Unknown point styles and eye shapes are replaced by PointNormal and
// EyeSquare, with a warning logged.
func ResolveConfig(partial RenderConfig) (Config, error) {
	if partial.err != nil {
		return Config{}, partial.err
	}
	if partial.Content == "" {
		return Config{}, invalidf("content is required")
	}
	if partial.Margin < 0 {
		return Config{}, invalidf("margin(%d) must not be negative", partial.Margin)
	}
	if partial.PixelWidth < 0 {
		return Config{}, invalidf("pixel width(%d) must not be negative", partial.PixelWidth)
	}
	if partial.PixelWidth > MaxPixelWidth {
		return Config{}, invalidf("pixel width(%d) exceeds %d", partial.PixelWidth, MaxPixelWidth)
	}

	cfg := Config{
		Content:         partial.Content,
		CodeColor:       orColor(partial.CodeColor, defaultCodeColor),
		CodeBgColor:     orColor(partial.CodeBgColor, defaultCodeBgColor),
		Margin:          partial.Margin,
		ErrorCorrection: partial.ErrorCorrection,
		Version:         partial.Version,
		PointStyle:      partial.PointStyle,
		EyeShape:        partial.EyeShape,
		TargetSurfaceID: partial.TargetSurfaceID,
		PixelWidth:      partial.PixelWidth,
		Format:          partial.Format,
		Encoder:         partial.Encoder,
	}
	cfg.EyeOuterColor = orColor(partial.EyeOuterColor, cfg.CodeColor)
	cfg.EyeInnerColor = orColor(partial.EyeInnerColor, cfg.CodeColor)

	switch {
	case cfg.ErrorCorrection == ErrorCorrectionUnset:
		cfg.ErrorCorrection = DefaultErrorCorrection
	case !cfg.ErrorCorrection.valid():
		return Config{}, invalidf("unknown error correction %s", cfg.ErrorCorrection)
	}

	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}
	if cfg.Version < 1 || cfg.Version > MaxVersion {
		return Config{}, invalidf("version(%d) out of range [1, %d]", cfg.Version, MaxVersion)
	}

	if cfg.Format > surface.SVG_FORMAT {
		return Config{}, errors.Wrapf(surface.ErrUnsupportedFormat, "format(%d)", cfg.Format)
	}

	if _, ok := pointRenderers[cfg.PointStyle]; !ok {
		logger().WithField("pointStyle", cfg.PointStyle).
			Warnf("unknown point style, using %s", PointNormal)
		cfg.PointStyle = PointNormal
	}
	if _, ok := eyeRenderers[cfg.EyeShape]; !ok {
		logger().WithField("eyeShape", cfg.EyeShape).
			Warnf("unknown eye shape, using %s", EyeSquare)
		cfg.EyeShape = EyeSquare
	}

	if cfg.Encoder == nil {
		cfg.Encoder = DefaultEncoder
	}

	return cfg, nil
}

func orColor(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
