package raster

import "math"

// DrawCircle draws a circle outline per the stroke style. If filled is
// true the disk is flooded with the same color first, independent of the
// outline style.
func (s *Surface) DrawCircle(cx, cy, r int, c uint32, style Style, thickness int, filled bool) {
	if filled {
		s.FillCircle(cx, cy, r, c)
	}

	switch style {
	case StyleDotted:
		s.drawDottedCircle(cx, cy, r, c, thickness)
	case StyleDashed:
		s.drawDashedCircle(cx, cy, r, c, thickness)
	default:
		s.drawSolidCircle(cx, cy, r, c, thickness)
	}
}

// FillCircle floods the disk of the given radius using a squared-distance
// test over its bounding box.
func (s *Surface) FillCircle(cx, cy, r int, c uint32) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				s.SetPixel(cx+x, cy+y, c)
			}
		}
	}
}

// drawSolidCircle uses the midpoint circle algorithm with 8-octant
// symmetry.
func (s *Surface) drawSolidCircle(cx, cy, r int, c uint32, thickness int) {
	x := 0
	y := r
	d := 3 - 2*r

	s.drawCirclePoints(cx, cy, x, y, c, thickness)

	for y >= x {
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
		s.drawCirclePoints(cx, cy, x, y, c, thickness)
	}
}

func (s *Surface) drawCirclePoints(cx, cy, x, y int, c uint32, thickness int) {
	for t := 0; t < thickness; t++ {
		for o := -t; o <= t; o++ {
			s.SetPixel(cx+x+o, cy+y, c)
			s.SetPixel(cx-x+o, cy+y, c)
			s.SetPixel(cx+x+o, cy-y, c)
			s.SetPixel(cx-x+o, cy-y, c)
			s.SetPixel(cx+y+o, cy+x, c)
			s.SetPixel(cx-y+o, cy+x, c)
			s.SetPixel(cx+y+o, cy-x, c)
			s.SetPixel(cx-y+o, cy-x, c)
		}
	}
}

func (s *Surface) drawDottedCircle(cx, cy, r int, c uint32, thickness int) {
	numDots := r * 6 // denser sampling for larger radii
	if numDots == 0 {
		s.stamp(cx, cy, c, thickness)
		return
	}

	for i := 0; i < numDots; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numDots)
		x := int(math.Round(float64(cx) + float64(r)*math.Cos(angle)))
		y := int(math.Round(float64(cy) + float64(r)*math.Sin(angle)))
		s.stamp(x, y, c, thickness)
	}
}

func (s *Surface) drawDashedCircle(cx, cy, r int, c uint32, thickness int) {
	const numSegments = 16

	// Render only even-indexed segments, leaving the odd ones as gaps.
	for i := 0; i < numSegments; i += 2 {
		startAngle := 2 * math.Pi * float64(i) / numSegments
		endAngle := 2 * math.Pi * float64(i+1) / numSegments
		s.drawCircleArc(cx, cy, r, startAngle, endAngle, c, thickness)
	}
}

func (s *Surface) drawCircleArc(cx, cy, r int, startAngle, endAngle float64, c uint32, thickness int) {
	steps := int(float64(r) * (endAngle - startAngle))
	if steps < 10 {
		steps = 10
	}

	for i := 0; i <= steps; i++ {
		angle := startAngle + (endAngle-startAngle)*float64(i)/float64(steps)
		x := int(math.Round(float64(cx) + float64(r)*math.Cos(angle)))
		y := int(math.Round(float64(cy) + float64(r)*math.Sin(angle)))
		s.stamp(x, y, c, thickness)
	}
}
