package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Pixel colors are packed 0xAARRGGBB, zero is an unlit pixel
const (
	PixelOff   uint32 = 0
	PixelWhite uint32 = 0xFFFFFFFF
)

// PackRGB packs 8-bit channels into an opaque pixel
func PackRGB(r, g, b uint8) uint32 {
	return 0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB returns the color channels of a pixel, alpha dropped
func UnpackRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// ParseColor accepts "white" or a #rrggbb hex string and returns an opaque pixel
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "white") {
		return PixelWhite, nil
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return PackRGB(r, g, b), nil
}

// TcellColor converts a pixel to a terminal truecolor value
func TcellColor(p uint32) tcell.Color {
	r, g, b := UnpackRGB(p)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
