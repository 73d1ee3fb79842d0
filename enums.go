package qrstyle

import (
	"fmt"
	"strings"
)

// ErrorCorrection is the QR error correction level. The zero value means
// "not set" and resolves to Quart.
type ErrorCorrection uint8

const (
	ErrorCorrectionUnset ErrorCorrection = iota
	// ErrorCorrectionLow recovers 7% of data.
	ErrorCorrectionLow
	// ErrorCorrectionMedium recovers 15% of data.
	ErrorCorrectionMedium
	// ErrorCorrectionQuart recovers 25% of data.
	ErrorCorrectionQuart
	// ErrorCorrectionHighest recovers 30% of data.
	ErrorCorrectionHighest
)

func (ec ErrorCorrection) String() string {
	switch ec {
	case ErrorCorrectionUnset:
		return "unset"
	case ErrorCorrectionLow:
		return "L"
	case ErrorCorrectionMedium:
		return "M"
	case ErrorCorrectionQuart:
		return "Q"
	case ErrorCorrectionHighest:
		return "H"
	}
	return fmt.Sprintf("ErrorCorrection(%d)", uint8(ec))
}

func (ec ErrorCorrection) valid() bool {
	return ec >= ErrorCorrectionLow && ec <= ErrorCorrectionHighest
}

// ParseErrorCorrection parses "L", "M", "Q" or "H" (case insensitive).
func ParseErrorCorrection(s string) (ErrorCorrection, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return ErrorCorrectionUnset, nil
	case "L", "LOW":
		return ErrorCorrectionLow, nil
	case "M", "MEDIUM":
		return ErrorCorrectionMedium, nil
	case "Q", "QUART":
		return ErrorCorrectionQuart, nil
	case "H", "HIGHEST", "HIGH":
		return ErrorCorrectionHighest, nil
	}
	return ErrorCorrectionUnset, invalidf("error correction(%s)", s)
}

// PointStyle is the shape of a dark data module.
type PointStyle uint8

const (
	// PointNormal fills the whole cell.
	PointNormal PointStyle = iota
	// PointBigSquare is a rounded square inset by 1px.
	PointBigSquare
	// PointMiniSquare is a rounded square inset by 2px.
	PointMiniSquare
	// PointBigCircle is a circle with radius w/2-1.
	PointBigCircle
	// PointMiniCircle is a circle with radius w/2-2.
	PointMiniCircle
	// PointRhombic is a diamond through the cell edge midpoints.
	PointRhombic
)

var pointStyleNames = []string{
	PointNormal:     "normal",
	PointBigSquare:  "bigSquare",
	PointMiniSquare: "miniSquare",
	PointBigCircle:  "bigCircle",
	PointMiniCircle: "miniCircle",
	PointRhombic:    "rhombic",
}

func (p PointStyle) String() string {
	if int(p) < len(pointStyleNames) {
		return pointStyleNames[p]
	}
	return fmt.Sprintf("PointStyle(%d)", uint8(p))
}

// ParsePointStyle parses a point style name like "bigCircle".
func ParsePointStyle(s string) (PointStyle, error) {
	if s == "" {
		return PointNormal, nil
	}
	for i, name := range pointStyleNames {
		if strings.EqualFold(name, s) {
			return PointStyle(i), nil
		}
	}
	return PointNormal, invalidf("point style(%s)", s)
}

// PointStyles returns every point style.
func PointStyles() []PointStyle {
	styles := make([]PointStyle, len(pointStyleNames))
	for i := range styles {
		styles[i] = PointStyle(i)
	}
	return styles
}

// EyeShape is the shape of the three finder patterns.
type EyeShape uint8

const (
	EyeSquare EyeShape = iota
	EyeRadius
	EyeThickRadius
	EyeMiddleRadius
	EyeThinsRadius
	EyeThickCircle
	EyeThinsCircle
	EyeBubble
	EyeEye
	EyeSingleRadius
)

var eyeShapeNames = []string{
	EyeSquare:       "square",
	EyeRadius:       "radius",
	EyeThickRadius:  "thickRadius",
	EyeMiddleRadius: "middleRadius",
	EyeThinsRadius:  "thinsRadius",
	EyeThickCircle:  "thickCircle",
	EyeThinsCircle:  "thinsCircle",
	EyeBubble:       "bubble",
	EyeEye:          "eye",
	EyeSingleRadius: "singleRadius",
}

func (e EyeShape) String() string {
	if int(e) < len(eyeShapeNames) {
		return eyeShapeNames[e]
	}
	return fmt.Sprintf("EyeShape(%d)", uint8(e))
}

// ParseEyeShape parses an eye shape name like "thinsCircle".
func ParseEyeShape(s string) (EyeShape, error) {
	if s == "" {
		return EyeSquare, nil
	}
	for i, name := range eyeShapeNames {
		if strings.EqualFold(name, s) {
			return EyeShape(i), nil
		}
	}
	return EyeSquare, invalidf("eye shape(%s)", s)
}

// EyeShapes returns every eye shape.
func EyeShapes() []EyeShape {
	shapes := make([]EyeShape, len(eyeShapeNames))
	for i := range shapes {
		shapes[i] = EyeShape(i)
	}
	return shapes
}
