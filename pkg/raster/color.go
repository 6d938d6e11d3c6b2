package raster

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Colors are packed 0xRRGGBB values, matching what Pixel and SetPixel
// exchange with the buffer.

// RGB packs three channel values into a 0xRRGGBB color.
func RGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// FromColor packs a color.Color, discarding alpha.
func FromColor(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ToColor unpacks a 0xRRGGBB color into an opaque color.RGBA.
func ToColor(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// Named colors used by the core and the default palette.
var (
	White   = FromColor(colornames.White)
	Black   = FromColor(colornames.Black)
	Red     = FromColor(colornames.Red)
	Green   = FromColor(colornames.Green)
	Blue    = FromColor(colornames.Blue)
	Yellow  = FromColor(colornames.Yellow)
	Orange  = FromColor(colornames.Orange)
	Magenta = FromColor(colornames.Magenta)
	Cyan    = FromColor(colornames.Cyan)
	Pink    = FromColor(colornames.Pink)
	Gray    = FromColor(colornames.Gray)
)
