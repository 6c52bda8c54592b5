package common

import (
	"image/color"
	"strconv"
)

// ParseHexColor parses a color in the form #rrggbb. ok is false when s is
// malformed, in which case fallback is returned.
func ParseHexColor(s string, fallback color.RGBA) (c color.RGBA, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return fallback, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fallback, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
