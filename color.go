package qrstyle

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a hex color (#rgb, #rgba, #rrggbb or #rrggbbaa, the
// leading '#' is optional) or a CSS color name like "teal".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, invalidf("empty color")
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	rgba, err := parseFromHex(s)
	if err != nil {
		return nil, err
	}
	return rgba, nil
}

// parseFromHex parses hex color string like: #123456 or 123456 or #abc or #1234abcd.
func parseFromHex(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")

	switch len(s) {
	case 3, 4:
		// expand shorthand, "abc" means "aabbcc"
		var sb strings.Builder
		for _, r := range s {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		s = sb.String()
	case 6, 8:
	default:
		return color.RGBA{}, invalidf("color(%s) has an invalid length", hex)
	}

	if len(s) == 6 {
		s += "ff"
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, invalidf("color(%s) is not hex", hex)
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
