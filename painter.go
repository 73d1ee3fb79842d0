package qrstyle

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Mictilt/qrstyle/surface"
)

// Render paints grid onto s as configured by cfg and returns the final pixel
// width of the square image.
//
// The surface is resized to w×T pixels on each side, where T is the module
// count including the margin and w = floor(width/T). width is cfg.PixelWidth,
// or the current width of s when that is 0. When the grid does not fit (w is
// 0) only the background is painted and 0 is returned.
//
// Eyes are drawn first, then every dark data module. Cells of the margin are
// never painted. s must not be used by anyone else during Render.
func Render(grid *ModuleGrid, cfg Config, s surface.Surface) (int, error) {
	if grid == nil {
		return 0, invalidf("nil module grid")
	}
	if s == nil {
		return 0, errors.Wrap(ErrResourceUnavailable, "nil surface")
	}
	if minSize := SymbolSize(1); grid.Size() < minSize {
		return 0, invalidf("module grid of %d modules is smaller than %d", grid.Size(), minSize)
	}
	if cfg.CodeColor == nil || cfg.CodeBgColor == nil || cfg.EyeOuterColor == nil || cfg.EyeInnerColor == nil {
		return 0, invalidf("config has unresolved colors, use ResolveConfig")
	}

	point, ok := pointRenderers[cfg.PointStyle]
	if !ok {
		point = pointRenderers[PointNormal]
	}
	eye, ok := eyeRenderers[cfg.EyeShape]
	if !ok {
		eye = eyeRenderers[EyeSquare]
	}

	pixelWidth := cfg.PixelWidth
	if pixelWidth == 0 {
		pixelWidth = s.Width()
	}
	if pixelWidth < 0 || pixelWidth > MaxPixelWidth {
		return 0, invalidf("pixel width(%d) out of range [0, %d]", pixelWidth, MaxPixelWidth)
	}

	total := TotalGridSize(grid.Size(), cfg.Margin)
	w := ScaleFactor(pixelWidth, total)
	width := w * total

	logger().WithFields(logrus.Fields{
		"modules": grid.Size(),
		"margin":  cfg.Margin,
		"scale":   w,
		"width":   width,
	}).Debug("render")

	s.Resize(width, width)
	s.SetColor(cfg.CodeBgColor)
	s.Clear()

	if w == 0 {
		logger().WithField("pixelWidth", pixelWidth).
			Debugf("%d modules do not fit, drawing the background only", total)
		return 0, nil
	}

	p := &painter{
		grid:   grid,
		cfg:    cfg,
		s:      s,
		w:      w,
		point:  point,
		eye:    eye,
		region: ComputeEyeRegions(total, cfg.Margin),
	}
	p.drawEyes()
	p.drawPoints()

	return width, nil
}

type painter struct {
	grid *ModuleGrid
	cfg  Config
	s    surface.Surface
	w    int

	point  pointRenderer
	eye    eyeRenderer
	region [3]EyeRegion
}

func (p *painter) drawEyes() {
	for i, r := range p.region {
		x, y := r.Origin(p.w)
		ec := &eyeContext{
			DrawContext: DrawContext{
				Surface: p.s,
				x:       x,
				y:       y,
				w:       EyeSize * p.w,
				h:       EyeSize * p.w,
				color:   p.cfg.EyeOuterColor,
			},
			module: float64(p.w),
			region: i,
			inner:  p.cfg.EyeInnerColor,
		}
		p.eye.draw(ec)
	}
}

// drawPoints collects every dark data module into one path and fills it.
func (p *painter) drawPoints() {
	n, m := p.grid.Size(), p.cfg.Margin
	dc := &DrawContext{
		Surface: p.s,
		w:       p.w,
		h:       p.w,
		color:   p.cfg.CodeColor,
	}

	p.s.SetColor(dc.color)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			pr, pc := row+m, col+m
			if IsInsideAnyRegion(p.region[:], pr, pc) || !p.grid.Dark(row, col) {
				continue
			}

			dc.x, dc.y = float64(pc*p.w), float64(pr*p.w)
			p.point(dc)
		}
	}
	p.s.Fill()
}
