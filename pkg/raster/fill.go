package raster

import (
	"image"
	"math"
)

// DrawRectangle draws an axis-aligned rectangle between two opposite
// corners, optionally flooding its interior with the same color first.
func (s *Surface) DrawRectangle(x1, y1, x2, y2 int, c uint32, style Style, thickness int, filled bool) {
	left := min(x1, x2)
	top := min(y1, y2)
	right := max(x1, x2)
	bottom := max(y1, y2)

	if filled {
		s.FillRectangle(left, top, right, bottom, c)
	}

	s.DrawLine(left, top, right, top, c, style, thickness)
	s.DrawLine(left, bottom, right, bottom, c, style, thickness)
	s.DrawLine(left, top, left, bottom, c, style, thickness)
	s.DrawLine(right, top, right, bottom, c, style, thickness)
}

// FillRectangle floods the axis-aligned rectangle [left,right]×[top,bottom].
func (s *Surface) FillRectangle(left, top, right, bottom int, c uint32) {
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			s.SetPixel(x, y, c)
		}
	}
}

// FillPolygon floods a polygon by scanning its bounding box and testing
// each pixel with the even-odd rule. O(bbox area × vertex count), which is
// fine for interactively sized shapes.
func (s *Surface) FillPolygon(points []image.Point, c uint32) {
	if len(points) < 3 {
		return
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if PointInPolygon(x, y, points) {
				s.SetPixel(x, y, c)
			}
		}
	}
}

// PointInPolygon reports whether (x, y) is inside the polygon, using
// even-odd ray casting.
func PointInPolygon(x, y int, points []image.Point) bool {
	inside := false
	n := len(points)

	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi := points[i]
		pj := points[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}

	return inside
}

// FloodFill replaces the 4-connected region of the seed pixel's color with
// c. Iterative breadth-first with an explicit queue: recursion would blow
// the stack on large regions.
func (s *Surface) FloodFill(x, y int, c uint32) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}

	target := s.Pixel(x, y)
	if target == c {
		return
	}

	queue := []image.Point{{X: x, Y: y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.X < 0 || p.X >= s.width || p.Y < 0 || p.Y >= s.height {
			continue
		}
		// Recheck the color: the pixel may have been filled since it was
		// queued.
		if s.Pixel(p.X, p.Y) != target {
			continue
		}

		s.SetPixel(p.X, p.Y, c)
		queue = append(queue,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
	}
}

// ErasePixels clears a disk of the given radius to the background color.
func (s *Surface) ErasePixels(x, y, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				s.SetPixel(x+dx, y+dy, s.clearColor)
			}
		}
	}
}

// ErasePixelsLine erases along a segment, resampling at roughly one disk
// per pixel of length so fast drags leave no gaps.
func (s *Surface) ErasePixelsLine(x1, y1, x2, y2, radius int) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)

	steps := int(length)
	if steps < 1 {
		s.ErasePixels(x1, y1, radius)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(x1) + t*dx))
		y := int(math.Round(float64(y1) + t*dy))
		s.ErasePixels(x, y, radius)
	}
}
