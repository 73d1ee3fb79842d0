package main

import (
	"os"

	"github.com/Mictilt/qrstyle"
	"github.com/Mictilt/qrstyle/surface"
)

func save(name string, opts ...qrstyle.Option) {
	opts = append(opts, qrstyle.WithFormat(surface.SVG_FORMAT))
	cfg := qrstyle.NewConfig("https://github.com/Mictilt/qrstyle", opts...)

	err := qrstyle.CreateQrcode(cfg, func(svg []byte, _ int) {
		if err := os.WriteFile(name, svg, 0o644); err != nil {
			panic(err)
		}
	})
	if err != nil {
		panic(err)
	}
}

func main() {
	// save QR code as SVG file
	save("./qrcode.svg",
		qrstyle.WithVersion(3),
		qrstyle.WithPixelWidth(580),
	)

	// You can also customize colors for SVG output
	save("./qrcode_colored.svg",
		qrstyle.WithVersion(3),
		qrstyle.WithCodeColorRGBHex("#FF0000"), // Red QR code
		qrstyle.WithBgColorRGBHex("#FFFFFF"),   // White background
	)

	// circles and round eyes are written as paths, not as an embedded image
	save("./qrcode_circle.svg",
		qrstyle.WithVersion(3),
		qrstyle.WithMargin(2),
		qrstyle.WithPointStyle(qrstyle.PointBigCircle),
		qrstyle.WithEyeShape(qrstyle.EyeThickCircle),
	)

	save("./qrcode_rhombic.svg",
		qrstyle.WithVersion(3),
		qrstyle.WithMargin(2),
		qrstyle.WithPointStyle(qrstyle.PointRhombic),
		qrstyle.WithEyeShape(qrstyle.EyeEye),
		qrstyle.WithEyeOuterColorRGBHex("darkslateblue"),
	)

	println("SVG files created successfully!")
}
