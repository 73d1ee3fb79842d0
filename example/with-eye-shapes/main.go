package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Mictilt/qrstyle"
)

// Writes one PNG for every combination of eye shape and point style into
// ./eye-shapes.
func main() {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	qrstyle.SetLogger(l)

	dir := "eye-shapes"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	for _, eye := range qrstyle.EyeShapes() {
		for _, point := range qrstyle.PointStyles() {
			name := filepath.Join(dir, fmt.Sprintf("%s-%s.png", eye, point))

			cfg := qrstyle.NewConfig("https://github.com/Mictilt/qrstyle",
				qrstyle.WithVersion(3),
				qrstyle.WithMargin(2),
				qrstyle.WithPixelWidth(330),
				qrstyle.WithEyeShape(eye),
				qrstyle.WithPointStyle(point),
				qrstyle.WithEyeOuterColorRGBHex("#1f3a93"),
				qrstyle.WithEyeInnerColorRGBHex("#e74c3c"),
			)
			err := qrstyle.CreateQrcode(cfg, func(png []byte, width int) {
				if err := os.WriteFile(name, png, 0o644); err != nil {
					panic(err)
				}
				l.Infof("%s: %dpx", name, width)
			})
			if err != nil {
				panic(err)
			}
		}
	}
}
