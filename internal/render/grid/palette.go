package grid

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette is the fixed marker color cycle
var Palette = []color.RGBA{
	MustParseHex("#e74c3c"),
	MustParseHex("#3498db"),
	MustParseHex("#27ae60"),
	MustParseHex("#f39c12"),
	MustParseHex("#9b59b6"),
	MustParseHex("#16a085"),
	MustParseHex("#e67e22"),
	MustParseHex("#34495e"),
}

// ringShade is the percentage the marker ring is darkened by
const ringShade = 10

// PaletteColor returns the color for the i-th marker. Negative indexes wrap
// the same way positive ones do.
func PaletteColor(i int) color.RGBA {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}

// ParseHex parses "#rrggbb" or "#rgb"
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustParseHex is ParseHex for constants; it panics on bad input
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", ignoring alpha
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Shade moves each channel of c toward black (negative percent) or white
// (positive percent) by |percent| of the remaining distance.
func Shade(c color.RGBA, percent float64) color.RGBA {
	target, p := 255.0, percent
	if percent < 0 {
		target, p = 0, -percent
	}
	channel := func(v uint8) uint8 {
		f := float64(v)
		out := round((target-f)*p/100) + int(v)
		return uint8(max(0, min(255, out)))
	}
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: c.A}
}

// Darken darkens c by percent, e.g. Darken(c, 10)
func Darken(c color.RGBA, percent float64) color.RGBA {
	return Shade(c, -percent)
}
