package main

import (
	"image/color"
	"os"

	"github.com/Mictilt/qrstyle"
)

func write(name string) func([]byte, int) {
	return func(png []byte, _ int) {
		if err := os.WriteFile(name, png, 0o644); err != nil {
			panic(err)
		}
	}
}

func main() {
	// Create a QR code with different colors for data and finder elements
	// - Data modules: Blue
	// - Finder rings: Red, finder centers: dark red
	cfg := qrstyle.NewConfig("https://github.com/Mictilt/qrstyle",
		qrstyle.WithVersion(3),
		qrstyle.WithMargin(2),
		qrstyle.WithPixelWidth(660),
		qrstyle.WithCodeColorRGBHex("#0066CC"),
		qrstyle.WithEyeOuterColorRGBHex("#CC0000"),
		qrstyle.WithEyeInnerColorRGBHex("#660000"),
	)
	if err := qrstyle.CreateQrcode(cfg, write("element-colors-qr.png")); err != nil {
		panic(err)
	}

	// You can also use color.Color types instead of hex strings, eye colors
	// not set follow the code color
	cfg = qrstyle.NewConfig("https://github.com/Mictilt/qrstyle/new-feature",
		qrstyle.WithVersion(4),
		qrstyle.WithCodeColor(color.RGBA{R: 0, G: 128, B: 0, A: 255}),
		qrstyle.WithEyeOuterColor(color.RGBA{R: 255, G: 0, B: 0, A: 255}),
		qrstyle.WithPointStyle(qrstyle.PointMiniSquare),
		qrstyle.WithEyeShape(qrstyle.EyeThickRadius),
	)
	if err := qrstyle.CreateQrcode(cfg, write("element-colors-qr-struct.png")); err != nil {
		panic(err)
	}
}
