package shape

import "pigment/pkg/raster"

// Line is a straight segment between two endpoints.
type Line struct {
	p1, p2    Point
	color     uint32
	thickness int
	style     raster.Style
}

// NewLine creates a line between the two endpoints.
func NewLine(p1, p2 Point, color uint32, thickness int, style raster.Style) *Line {
	return &Line{p1: p1, p2: p2, color: color, thickness: thickness, style: style}
}

func (l *Line) Draw(s *raster.Surface) {
	s.DrawLine(l.p1.X, l.p1.Y, l.p2.X, l.p2.Y, l.color, l.style, l.thickness)
}

func (l *Line) Contains(p Point) bool {
	if l.p1 == l.p2 {
		return p.Distance(l.p1) <= selectTolerance
	}
	return pointSegmentDistance(p, l.p1, l.p2) <= float64(selectTolerance+l.thickness)
}

func (l *Line) Move(dx, dy int) {
	l.p1 = l.p1.Add(dx, dy)
	l.p2 = l.p2.Add(dx, dy)
}

func (l *Line) SetEndPoint(p Point) {
	l.p2 = p
}

// CanBeFilled reports false: lines have no interior.
func (l *Line) CanBeFilled() bool { return false }

func (l *Line) SetFilled(bool)     {}
func (l *Line) SetFillColor(uint32) {}

func (l *Line) NearestControlPoint(p Point) (Point, bool) {
	if p.Distance(l.p1) <= controlPointRange {
		return l.p1, true
	}
	if p.Distance(l.p2) <= controlPointRange {
		return l.p2, true
	}
	return Point{}, false
}

func (l *Line) ResizeByPoint(cp Point, dx, dy int) {
	switch cp {
	case l.p1:
		l.p1 = l.p1.Add(dx, dy)
	case l.p2:
		l.p2 = l.p2.Add(dx, dy)
	}
}

func (l *Line) DrawControlPoints(s *raster.Surface) {
	s.DrawControlPoint(l.p1.X, l.p1.Y)
	s.DrawControlPoint(l.p2.X, l.p2.Y)
}

// Endpoints returns the two endpoints.
func (l *Line) Endpoints() (Point, Point) {
	return l.p1, l.p2
}
