// Package raster provides a software framebuffer and the pixel-level
// drawing primitives used by the paint canvas: Bresenham lines, midpoint
// circles, scanline polygon fill, flood fill and pixel erasing.
package raster

import (
	"image"
	"image/draw"
)

// Style selects how line-like strokes are rendered.
type Style int

const (
	StyleSolid Style = iota
	StyleDashed
	StyleDotted
)

// Surface is a width×height RGB framebuffer. All drawing operations are
// bounds-checked: out-of-range writes are dropped and out-of-range reads
// return 0. A Surface is not safe for concurrent use; the editor is its
// sole mutator.
type Surface struct {
	img        *image.RGBA
	width      int
	height     int
	clearColor uint32
}

// New creates a surface of the given size, cleared to white.
func New(width, height int) *Surface {
	s := &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		width:      width,
		height:     height,
		clearColor: White,
	}
	s.Clear()
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Image returns the underlying RGBA image for blitting to the display.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// ClearColor returns the current background color.
func (s *Surface) ClearColor() uint32 {
	return s.clearColor
}

// SetClearColor sets the background color used by Clear and the erasers.
func (s *Surface) SetClearColor(c uint32) {
	s.clearColor = c
}

// Clear resets the entire buffer to the background color.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(ToColor(s.clearColor)), image.Point{}, draw.Src)
}

// SetPixel writes a packed 0xRRGGBB color. Out-of-range coordinates are a
// no-op.
func (s *Surface) SetPixel(x, y int, c uint32) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := s.img.PixOffset(x, y)
	s.img.Pix[i+0] = uint8(c >> 16)
	s.img.Pix[i+1] = uint8(c >> 8)
	s.img.Pix[i+2] = uint8(c)
	s.img.Pix[i+3] = 0xff
}

// Pixel reads a packed 0xRRGGBB color. Out-of-range coordinates return 0.
func (s *Surface) Pixel(x, y int) uint32 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	i := s.img.PixOffset(x, y)
	return uint32(s.img.Pix[i+0])<<16 | uint32(s.img.Pix[i+1])<<8 | uint32(s.img.Pix[i+2])
}

// Blit copies src into s at the origin, without scaling. Pixels of src
// that fall outside s are dropped.
func (s *Surface) Blit(src *Surface) {
	draw.Draw(s.img, src.img.Bounds(), src.img, image.Point{}, draw.Src)
}

// DrawControlPoint draws a 9×9 selection handle: a blue outline ring with
// a white interior.
func (s *Surface) DrawControlPoint(x, y int) {
	const size = 4
	for i := -size; i <= size; i++ {
		for j := -size; j <= size; j++ {
			if abs(i) == size || abs(j) == size {
				s.SetPixel(x+i, y+j, Blue)
			} else if abs(i) <= size-2 && abs(j) <= size-2 {
				s.SetPixel(x+i, y+j, White)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
