package qrstyle

import (
	"github.com/pkg/errors"
	qrcode "github.com/yeqown/go-qrcode/v2"
	"rsc.io/qr/coding"
)

// EncodeOptions selects the symbol an Encoder produces.
type EncodeOptions struct {
	ErrorCorrection ErrorCorrection
	Version         int
}

// Encoder turns content into the module grid of a QR symbol with exactly the
// requested version, so Size() is 17 + 4*Version.
type Encoder interface {
	Encode(content string, opts EncodeOptions) (*ModuleGrid, error)
}

// DefaultEncoder is used when RenderConfig.Encoder is nil.
var DefaultEncoder Encoder = MatrixEncoder{}

// SymbolSize returns the number of modules on a side of a version v symbol.
func SymbolSize(version int) int {
	return 17 + 4*version
}

// MatrixEncoder encodes content in byte mode with github.com/yeqown/go-qrcode.
type MatrixEncoder struct{}

func (MatrixEncoder) Encode(content string, opts EncodeOptions) (*ModuleGrid, error) {
	level, err := checkCapacity(content, opts)
	if err != nil {
		return nil, err
	}

	qrc, err := qrcode.NewWith(content,
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		matrixLevels[level],
		qrcode.WithVersion(opts.Version),
	)
	if err != nil {
		return nil, errors.Wrap(err, "qrcode.NewWith")
	}

	w := &gridWriter{}
	if err = qrc.Save(w); err != nil {
		return nil, errors.Wrap(err, "save matrix")
	}

	if w.grid == nil {
		return nil, errors.New("no matrix written")
	}
	if want := SymbolSize(opts.Version); w.grid.Size() != want {
		return nil, errors.Errorf("encoder produced a grid of %d modules, want %d", w.grid.Size(), want)
	}

	return w.grid, nil
}

var matrixLevels = map[coding.Level]qrcode.EncodeOption{
	coding.L: qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow),
	coding.M: qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium),
	coding.Q: qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart),
	coding.H: qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest),
}

// gridWriter implements qrcode.Writer and keeps the matrix as a ModuleGrid.
type gridWriter struct {
	grid *ModuleGrid
}

func (w *gridWriter) Write(mat qrcode.Matrix) error {
	g := newModuleGrid(mat.Width())
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		g.set(y, x, v.IsSet())
	})
	w.grid = g

	return nil
}

func (w *gridWriter) Close() error {
	return nil
}

// PlanEncoder encodes content in byte mode with rsc.io/qr/coding, using a
// fixed mask pattern.
type PlanEncoder struct{}

func (PlanEncoder) Encode(content string, opts EncodeOptions) (*ModuleGrid, error) {
	level, err := checkCapacity(content, opts)
	if err != nil {
		return nil, err
	}

	plan, err := coding.NewPlan(coding.Version(opts.Version), level, coding.Mask(0))
	if err != nil {
		return nil, errors.Wrap(err, "coding.NewPlan")
	}

	code, err := plan.Encode(coding.String(content))
	if err != nil {
		return nil, errors.Wrap(err, "plan.Encode")
	}

	g := newModuleGrid(code.Size)
	for row := 0; row < code.Size; row++ {
		for col := 0; col < code.Size; col++ {
			g.set(row, col, code.Black(col, row))
		}
	}

	return g, nil
}

// checkCapacity validates the input of an encoder and returns the coding
// level matching opts.ErrorCorrection.
func checkCapacity(content string, opts EncodeOptions) (coding.Level, error) {
	if content == "" {
		return 0, invalidf("content is required")
	}
	if opts.Version < 1 || opts.Version > MaxVersion {
		return 0, invalidf("version(%d) out of range [1, %d]", opts.Version, MaxVersion)
	}

	var level coding.Level
	switch opts.ErrorCorrection {
	case ErrorCorrectionLow:
		level = coding.L
	case ErrorCorrectionMedium:
		level = coding.M
	case ErrorCorrectionQuart:
		level = coding.Q
	case ErrorCorrectionHighest:
		level = coding.H
	default:
		return 0, invalidf("unknown error correction %s", opts.ErrorCorrection)
	}

	v := coding.Version(opts.Version)
	if bits, capacity := coding.String(content).Bits(v), v.DataBytes(level)*8; bits > capacity {
		return 0, invalidf("content needs %d bits, version %d-%s holds %d", bits, opts.Version, level, capacity)
	}

	return level, nil
}
