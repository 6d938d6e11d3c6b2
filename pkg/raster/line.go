package raster

import "math"

// DrawLine draws a line between two points, dispatching on the stroke
// style. Thickness t widens the stroke to a block of side 2t-1 around
// each stepped pixel.
func (s *Surface) DrawLine(x1, y1, x2, y2 int, c uint32, style Style, thickness int) {
	switch style {
	case StyleDotted:
		s.drawDottedLine(x1, y1, x2, y2, c, thickness)
	case StyleDashed:
		s.drawDashedLine(x1, y1, x2, y2, c, thickness)
	default:
		s.drawSolidLine(x1, y1, x2, y2, c, thickness)
	}
}

func (s *Surface) drawSolidLine(x1, y1, x2, y2 int, c uint32, thickness int) {
	// Pure vertical and horizontal lines have dedicated fast paths.
	if x1 == x2 {
		for y := min(y1, y2); y <= max(y1, y2); y++ {
			for t := 0; t < thickness; t++ {
				for o := -t; o <= t; o++ {
					s.SetPixel(x1+o, y, c)
				}
			}
		}
		return
	}
	if y1 == y2 {
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			for t := 0; t < thickness; t++ {
				for o := -t; o <= t; o++ {
					s.SetPixel(x, y1+o, c)
				}
			}
		}
		return
	}

	// General case: octant-aware Bresenham. The helpers always step in
	// increasing primary coordinate, so endpoints are reordered here to
	// keep pixel selection independent of the original point order.
	if abs(y2-y1) < abs(x2-x1) {
		if x1 > x2 {
			s.drawLineLow(x2, y2, x1, y1, c, thickness)
		} else {
			s.drawLineLow(x1, y1, x2, y2, c, thickness)
		}
	} else {
		if y1 > y2 {
			s.drawLineHigh(x2, y2, x1, y1, c, thickness)
		} else {
			s.drawLineHigh(x1, y1, x2, y2, c, thickness)
		}
	}
}

// drawLineLow rasterizes a line with |dy| < dx, stepping x from x1 to x2.
func (s *Surface) drawLineLow(x1, y1, x2, y2 int, c uint32, thickness int) {
	dx := x2 - x1
	dy := y2 - y1
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}

	d := 2*dy - dx
	y := y1

	for x := x1; x <= x2; x++ {
		for t := 0; t < thickness; t++ {
			for o := -t; o <= t; o++ {
				s.SetPixel(x, y+o, c)
			}
		}
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

// drawLineHigh rasterizes a line with |dx| <= dy, stepping y from y1 to y2.
func (s *Surface) drawLineHigh(x1, y1, x2, y2 int, c uint32, thickness int) {
	dx := x2 - x1
	dy := y2 - y1
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}

	d := 2*dx - dy
	x := x1

	for y := y1; y <= y2; y++ {
		for t := 0; t < thickness; t++ {
			for o := -t; o <= t; o++ {
				s.SetPixel(x+o, y, c)
			}
		}
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
}

// stamp plots a filled square centered on (x, y), sized by the stroke
// thickness. Used by the sampled (dotted/dashed-arc) renderers.
func (s *Surface) stamp(x, y int, c uint32, thickness int) {
	for t := 0; t < thickness; t++ {
		for i := -t; i <= t; i++ {
			for j := -t; j <= t; j++ {
				s.SetPixel(x+i, y+j, c)
			}
		}
	}
}

func (s *Surface) drawDottedLine(x1, y1, x2, y2 int, c uint32, thickness int) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)

	const dotSpacing = 5
	numDots := int(length / dotSpacing)
	if numDots == 0 {
		s.stamp(x1, y1, c, thickness)
		return
	}

	for i := 0; i <= numDots; i++ {
		t := float64(i) / float64(numDots)
		x := int(math.Round(float64(x1) + t*dx))
		y := int(math.Round(float64(y1) + t*dy))
		s.stamp(x, y, c, thickness)
	}
}

func (s *Surface) drawDashedLine(x1, y1, x2, y2 int, c uint32, thickness int) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		s.stamp(x1, y1, c, thickness)
		return
	}

	const dashLength = 10
	const patternLength = dashLength * 2 // dash + gap
	numSegments := int(length/patternLength) + 1

	for i := 0; i < numSegments; i++ {
		startT := float64(i*patternLength) / length
		endT := float64(i*patternLength+dashLength) / length

		if startT > 1.0 {
			break
		}
		endT = math.Min(endT, 1.0)

		sx := int(math.Round(float64(x1) + startT*dx))
		sy := int(math.Round(float64(y1) + startT*dy))
		ex := int(math.Round(float64(x1) + endT*dx))
		ey := int(math.Round(float64(y1) + endT*dy))

		s.drawSolidLine(sx, sy, ex, ey, c, thickness)
	}
}
