package surface

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"
)

var _ Surface = (*Vector)(nil)

// Vector is a Surface recording drawing operations as SVG elements.
// Every Fill turns the current path into one <path> element.
type Vector struct {
	width, height int

	elements []svgElement

	// current path and drawing state
	commands []string
	color    color.Color
	fillRule string
}

type svgElement struct {
	background bool
	pathData   string
	style      string
}

// NewVector creates a vector surface of width×height pixels.
func NewVector(width, height int) *Vector {
	v := &Vector{}
	v.Resize(width, height)
	return v
}

func (v *Vector) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	v.width, v.height = width, height
	v.elements = nil
	v.commands = nil
	v.color = color.Transparent
	v.fillRule = ""
}

func (v *Vector) Width() int {
	return v.width
}

func (v *Vector) Height() int {
	return v.height
}

func (v *Vector) SetColor(c color.Color) {
	v.color = c
}

// Clear replaces everything drawn so far with a single background rectangle.
func (v *Vector) Clear() {
	v.elements = []svgElement{{
		background: true,
		style:      fillStyle(v.color, ""),
	}}
}

func (v *Vector) DrawRectangle(x, y, w, h float64) {
	v.commands = append(v.commands,
		fmt.Sprintf("M%.2f %.2f L%.2f %.2f L%.2f %.2f L%.2f %.2f Z",
			x, y, x+w, y, x+w, y+h, x, y+h))
}

func (v *Vector) DrawRoundedRectangle(x, y, w, h float64, radii CornerRadii) {
	radii = radii.Normalize(w, h)
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]

	var sb strings.Builder
	fmt.Fprintf(&sb, "M%.2f %.2f L%.2f %.2f", x+tl, y, x+w-tr, y)
	writeArc(&sb, tr, x+w, y+tr)
	fmt.Fprintf(&sb, " L%.2f %.2f", x+w, y+h-br)
	writeArc(&sb, br, x+w-br, y+h)
	fmt.Fprintf(&sb, " L%.2f %.2f", x+bl, y+h)
	writeArc(&sb, bl, x, y+h-bl)
	fmt.Fprintf(&sb, " L%.2f %.2f", x, y+tl)
	writeArc(&sb, tl, x+tl, y)
	sb.WriteString(" Z")

	v.commands = append(v.commands, sb.String())
}

// writeArc appends a clockwise quarter arc ending at (x, y).
func writeArc(sb *strings.Builder, r, x, y float64) {
	if r <= 0 {
		return
	}
	fmt.Fprintf(sb, " A%.2f %.2f 0 0 1 %.2f %.2f", r, r, x, y)
}

func (v *Vector) DrawCircle(cx, cy, r float64) {
	v.commands = append(v.commands,
		fmt.Sprintf("M%.2f %.2f A%.2f %.2f 0 1 1 %.2f %.2f A%.2f %.2f 0 1 1 %.2f %.2f Z",
			cx+r, cy, r, r, cx-r, cy, r, r, cx+r, cy))
}

func (v *Vector) NewSubPath() {}

func (v *Vector) MoveTo(x, y float64) {
	v.commands = append(v.commands, fmt.Sprintf("M%.2f %.2f", x, y))
}

func (v *Vector) LineTo(x, y float64) {
	v.commands = append(v.commands, fmt.Sprintf("L%.2f %.2f", x, y))
}

func (v *Vector) ClosePath() {
	v.commands = append(v.commands, "Z")
}

func (v *Vector) SetFillRuleEvenOdd() {
	v.fillRule = "evenodd"
}

func (v *Vector) SetFillRuleWinding() {
	v.fillRule = "nonzero"
}

func (v *Vector) Fill() {
	if len(v.commands) == 0 {
		return
	}

	v.elements = append(v.elements, svgElement{
		pathData: strings.Join(v.commands, " "),
		style:    fillStyle(v.color, v.fillRule),
	})
	v.commands = nil
}

// Elements returns the number of elements drawn since the last Resize.
func (v *Vector) Elements() int {
	return len(v.elements)
}

// WriteSVG writes the recorded drawing as an SVG document.
func (v *Vector) WriteSVG(w io.Writer) error {
	return v.writeSVG(w, v.width, v.height)
}

// writeSVG writes the document at width×height, the viewBox stays at the
// drawing size so the content is scaled.
func (v *Vector) writeSVG(w io.Writer, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)
	canvas.Startview(width, height, 0, 0, v.width, v.height)
	for _, el := range v.elements {
		if el.background {
			canvas.Rect(0, 0, v.width, v.height, el.style)
			continue
		}
		canvas.Path(el.pathData, el.style)
	}
	canvas.End()

	return ew.err
}

func fillStyle(c color.Color, fillRule string) string {
	if c == nil {
		c = color.Transparent
	}
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)

	style := fmt.Sprintf("fill:#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	if rgba.A != 0xff {
		style += fmt.Sprintf(";fill-opacity:%.3f", float64(rgba.A)/255.0)
	}
	if fillRule != "" {
		style += ";fill-rule:" + fillRule
	}

	return style
}

// errWriter keeps the first write error, svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
