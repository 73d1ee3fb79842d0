package qrstyle

import (
	"image/color"

	"github.com/Mictilt/qrstyle/surface"
)

// op is one recorded drawing call.
type op struct {
	name  string
	args  []float64
	radii surface.CornerRadii
	color color.Color
}

// spySurface records every call made on it.
type spySurface struct {
	width, height int
	ops           []op
}

var _ surface.Surface = (*spySurface)(nil)

func newSpySurface(width int) *spySurface {
	return &spySurface{width: width, height: width}
}

func (s *spySurface) record(name string, args ...float64) {
	s.ops = append(s.ops, op{name: name, args: args})
}

func (s *spySurface) Resize(width, height int) {
	s.width, s.height = width, height
	s.record("Resize", float64(width), float64(height))
}

func (s *spySurface) Width() int  { return s.width }
func (s *spySurface) Height() int { return s.height }

func (s *spySurface) SetColor(c color.Color) {
	s.ops = append(s.ops, op{name: "SetColor", color: c})
}

func (s *spySurface) Clear() { s.record("Clear") }

func (s *spySurface) DrawRectangle(x, y, w, h float64) {
	s.record("DrawRectangle", x, y, w, h)
}

func (s *spySurface) DrawRoundedRectangle(x, y, w, h float64, radii surface.CornerRadii) {
	s.ops = append(s.ops, op{name: "DrawRoundedRectangle", args: []float64{x, y, w, h}, radii: radii})
}

func (s *spySurface) DrawCircle(cx, cy, r float64) {
	s.record("DrawCircle", cx, cy, r)
}

func (s *spySurface) NewSubPath()         { s.record("NewSubPath") }
func (s *spySurface) MoveTo(x, y float64) { s.record("MoveTo", x, y) }
func (s *spySurface) LineTo(x, y float64) { s.record("LineTo", x, y) }
func (s *spySurface) ClosePath()          { s.record("ClosePath") }
func (s *spySurface) SetFillRuleEvenOdd() { s.record("SetFillRuleEvenOdd") }
func (s *spySurface) SetFillRuleWinding() { s.record("SetFillRuleWinding") }
func (s *spySurface) Fill()               { s.record("Fill") }

// named returns the recorded calls of the given name.
func (s *spySurface) named(name string) []op {
	var out []op
	for _, o := range s.ops {
		if o.name == name {
			out = append(out, o)
		}
	}
	return out
}

// indexes returns the positions of the recorded calls of the given name.
func (s *spySurface) indexes(name string) []int {
	var out []int
	for i, o := range s.ops {
		if o.name == name {
			out = append(out, i)
		}
	}
	return out
}

func (s *spySurface) reset() {
	s.ops = nil
}

// fullGrid returns an n×n grid with every module dark.
func fullGrid(n int) *ModuleGrid {
	g := newModuleGrid(n)
	for i := range g.cells {
		g.cells[i] = true
	}
	return g
}

// singleGrid returns an n×n grid with only (row, col) dark.
func singleGrid(n, row, col int) *ModuleGrid {
	g := newModuleGrid(n)
	g.set(row, col, true)
	return g
}

// mustResolve resolves rc or panics, for test setup.
func mustResolve(rc RenderConfig) Config {
	cfg, err := ResolveConfig(rc)
	if err != nil {
		panic(err)
	}
	return cfg
}
