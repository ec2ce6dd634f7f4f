package alignplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// shortColors maps single-letter color codes to colors.
var shortColors = map[string]color.RGBA{
	"r": {R: 0xff, A: 0xff},
	"g": {G: 0x80, A: 0xff},
	"b": {B: 0xff, A: 0xff},
	"c": {G: 0xbf, B: 0xbf, A: 0xff},
	"m": {R: 0xbf, B: 0xbf, A: 0xff},
	"y": {R: 0xbf, G: 0xbf, A: 0xff},
	"k": {A: 0xff},
	"w": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ParseColor resolves a color identifier.
// Accepted forms: single-letter codes (r, g, b, c, m, y, k, w),
// SVG 1.1 color names (case-insensitive) and hex notation (#rgb, #rrggbb, #rrggbbaa).
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := shortColors[name]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		return parseHex(name[1:])
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

func parseHex(h string) (color.Color, error) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return nil, fmt.Errorf("invalid hex color #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color #%s", h[:len(h)-2])
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func resolveColors(ids []string) ([]color.Color, error) {
	colors := make([]color.Color, len(ids))
	for i, id := range ids {
		c, err := ParseColor(id)
		if err != nil {
			return nil, &ColorError{Index: i, Value: id}
		}
		colors[i] = c
	}
	return colors, nil
}
