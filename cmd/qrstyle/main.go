// Command qrstyle renders a styled QR code into a PNG, JPEG or SVG file.
//
//	qrstyle -o code.png --point bigCircle --eye bubble --color "#1f3a93" "https://example.com"
//	echo -n "hello" | qrstyle --format svg > code.svg
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	"github.com/Mictilt/qrstyle"
	"github.com/Mictilt/qrstyle/surface"
)

const surfaceID = "qrstyle-cli"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "qrstyle: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "qrstyle",
		Usage:     "render a styled QR code",
		ArgsUsage: "[content]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file, stdout when empty or -",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "png, jpeg or svg, taken from the output file extension when empty",
				EnvVars: []string{"QRSTYLE_FORMAT"},
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "output width in pixels, rounded down to a multiple of the module count",
				Value:   surface.DefaultWidth,
				EnvVars: []string{"QRSTYLE_WIDTH"},
			},
			&cli.IntFlag{
				Name:    "margin",
				Aliases: []string{"m"},
				Usage:   "quiet zone in modules",
				EnvVars: []string{"QRSTYLE_MARGIN"},
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "error correction level: L, M, Q or H",
				Value:   "Q",
				EnvVars: []string{"QRSTYLE_LEVEL"},
			},
			&cli.IntFlag{
				Name:    "qr-version",
				Usage:   "QR version, 1..40",
				Value:   qrstyle.DefaultVersion,
				EnvVars: []string{"QRSTYLE_VERSION"},
			},
			&cli.StringFlag{
				Name:    "point",
				Usage:   "data module shape: " + pointNames(),
				Value:   qrstyle.PointNormal.String(),
				EnvVars: []string{"QRSTYLE_POINT"},
			},
			&cli.StringFlag{
				Name:    "eye",
				Usage:   "finder pattern shape: " + eyeNames(),
				Value:   qrstyle.EyeSquare.String(),
				EnvVars: []string{"QRSTYLE_EYE"},
			},
			&cli.StringFlag{
				Name:    "color",
				Usage:   "data module color, hex or CSS name",
				Value:   "#000000",
				EnvVars: []string{"QRSTYLE_COLOR"},
			},
			&cli.StringFlag{
				Name:    "bg",
				Usage:   "background color, hex or CSS name",
				Value:   "#ffffff",
				EnvVars: []string{"QRSTYLE_BG"},
			},
			&cli.StringFlag{
				Name:  "eye-outer",
				Usage: "finder ring color, defaults to --color",
			},
			&cli.StringFlag{
				Name:  "eye-inner",
				Usage: "finder center color, defaults to --color",
			},
			&cli.StringFlag{
				Name:  "encoder",
				Usage: "encoding backend: matrix or plan",
				Value: "matrix",
			},
			&cli.StringFlag{
				Name:  "charset",
				Usage: "charset of the content: utf-8, latin1, sjis or eucjp",
				Value: "utf-8",
			},
			&cli.IntFlag{
				Name:  "resolution",
				Usage: "resize the output to exactly this many pixels on a side",
			},
			&cli.BoolFlag{
				Name:  "data-url",
				Usage: "print a data URL instead of the image",
			},
			&cli.BoolFlag{
				Name:  "preview",
				Usage: "show the symbol in the terminal instead of writing an image",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log render details to stderr",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
		qrstyle.SetLogger(logger)
	}

	content, err := readContent(c)
	if err != nil {
		return err
	}

	format, err := outputFormat(c.String("format"), c.String("output"))
	if err != nil {
		return err
	}

	opts, err := renderOptions(c)
	if err != nil {
		return err
	}

	if c.Bool("preview") {
		cfg, err := qrstyle.ResolveConfig(qrstyle.NewConfig(content, opts...))
		if err != nil {
			return err
		}
		return preview(cfg)
	}

	reg := surface.NewRegistry()
	target := surface.New(format.Kind(), 0, 0)
	if err = reg.Register(surfaceID, target); err != nil {
		return err
	}

	opts = append(opts,
		qrstyle.WithTargetSurface(surfaceID),
		qrstyle.WithFormat(format),
		qrstyle.WithPixelWidth(c.Int("width")),
	)

	var (
		data  []byte
		width int
	)
	err = qrstyle.NewRenderer(reg).Create(qrstyle.NewConfig(content, opts...), func(encoded []byte, w int) {
		data, width = encoded, w
	})
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"width": width, "format": format}).Debug("rendered")

	if res := c.Int("resolution"); res > 0 {
		if data, err = surface.Export(target, surface.ExportOptions{Format: format, Resolution: res}); err != nil {
			return err
		}
		logger.WithField("resolution", res).Debug("resampled")
	}

	if c.Bool("data-url") {
		data = []byte(surface.DataURL(format, data) + "\n")
	}

	return writeOutput(c.String("output"), data, format == surface.SVG_FORMAT || c.Bool("data-url"))
}

func renderOptions(c *cli.Context) ([]qrstyle.Option, error) {
	level, err := qrstyle.ParseErrorCorrection(c.String("level"))
	if err != nil {
		return nil, err
	}
	point, err := qrstyle.ParsePointStyle(c.String("point"))
	if err != nil {
		return nil, err
	}
	eye, err := qrstyle.ParseEyeShape(c.String("eye"))
	if err != nil {
		return nil, err
	}

	var enc qrstyle.Encoder
	switch strings.ToLower(c.String("encoder")) {
	case "", "matrix":
		enc = qrstyle.MatrixEncoder{}
	case "plan":
		enc = qrstyle.PlanEncoder{}
	default:
		return nil, errors.Errorf("unknown encoder(%s)", c.String("encoder"))
	}

	return []qrstyle.Option{
		qrstyle.WithErrorCorrection(level),
		qrstyle.WithVersion(c.Int("qr-version")),
		qrstyle.WithMargin(c.Int("margin")),
		qrstyle.WithPointStyle(point),
		qrstyle.WithEyeShape(eye),
		qrstyle.WithCodeColorRGBHex(c.String("color")),
		qrstyle.WithBgColorRGBHex(c.String("bg")),
		qrstyle.WithEyeOuterColorRGBHex(c.String("eye-outer")),
		qrstyle.WithEyeInnerColorRGBHex(c.String("eye-inner")),
		qrstyle.WithEncoder(enc),
	}, nil
}

// readContent takes the content from the first argument or from stdin and
// converts it from --charset to UTF-8.
func readContent(c *cli.Context) (string, error) {
	content := c.Args().First()
	if content == "" {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return "", errors.New("no content, pass it as an argument or on stdin")
		}

		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		content = strings.TrimSuffix(string(b), "\n")
	}

	dec, err := charsetDecoder(c.String("charset"))
	if err != nil {
		return "", err
	}
	if dec == nil {
		return content, nil
	}

	utf8, err := dec.String(content)
	return utf8, errors.Wrapf(err, "decode %s", c.String("charset"))
}

func charsetDecoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "sjis", "shift-jis", "shiftjis":
		return japanese.ShiftJIS.NewDecoder(), nil
	case "eucjp", "euc-jp":
		return japanese.EUCJP.NewDecoder(), nil
	}
	return nil, errors.Errorf("unsupported charset(%s)", name)
}

func outputFormat(format, output string) (surface.Format, error) {
	if format == "" && output != "" && output != "-" {
		format = filepath.Ext(output)
	}
	return surface.ParseFormat(format)
}

// writeOutput writes data to the output file or stdout. Binary images are
// not written to a terminal.
func writeOutput(output string, data []byte, text bool) error {
	if output != "" && output != "-" {
		return errors.Wrapf(os.WriteFile(output, data, 0o644), "write %s", output)
	}

	if !text && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		return errors.New("refusing to write a binary image to a terminal, use -o or --data-url")
	}

	_, err := io.Copy(os.Stdout, bytes.NewReader(data))
	return errors.Wrap(err, "write stdout")
}

func pointNames() string {
	var names []string
	for _, p := range qrstyle.PointStyles() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

func eyeNames() string {
	var names []string
	for _, e := range qrstyle.EyeShapes() {
		names = append(names, e.String())
	}
	return strings.Join(names, ", ")
}
