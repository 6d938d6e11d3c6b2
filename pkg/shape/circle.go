package shape

import "pigment/pkg/raster"

// Circle is defined by a center point and a point on the circumference;
// the distance between them is the radius.
type Circle struct {
	center      Point
	radiusPoint Point
	color       uint32
	fillColor   uint32
	thickness   int
	style       raster.Style
	filled      bool
}

// NewCircle creates a circle from its center and a circumference point.
func NewCircle(center, radiusPoint Point, color uint32, thickness int, style raster.Style) *Circle {
	return &Circle{center: center, radiusPoint: radiusPoint, color: color, thickness: thickness, style: style}
}

// Radius returns the radius in pixels.
func (c *Circle) Radius() int {
	return int(c.center.Distance(c.radiusPoint))
}

func (c *Circle) Draw(s *raster.Surface) {
	r := c.Radius()
	if c.filled {
		s.FillCircle(c.center.X, c.center.Y, r, c.fillColor)
	}
	s.DrawCircle(c.center.X, c.center.Y, r, c.color, c.style, c.thickness, false)
}

func (c *Circle) Contains(p Point) bool {
	r := float64(c.Radius())
	dist := p.Distance(c.center)

	if c.filled {
		return dist <= r
	}
	d := dist - r
	if d < 0 {
		d = -d
	}
	return d <= float64(selectTolerance+c.thickness)
}

func (c *Circle) Move(dx, dy int) {
	c.center = c.center.Add(dx, dy)
	c.radiusPoint = c.radiusPoint.Add(dx, dy)
}

func (c *Circle) SetEndPoint(p Point) {
	c.radiusPoint = p
}

func (c *Circle) CanBeFilled() bool { return true }

func (c *Circle) SetFilled(filled bool) {
	c.filled = filled
}

func (c *Circle) SetFillColor(col uint32) {
	c.fillColor = col
}

func (c *Circle) NearestControlPoint(p Point) (Point, bool) {
	if p.Distance(c.center) <= controlPointRange {
		return c.center, true
	}
	if p.Distance(c.radiusPoint) <= controlPointRange {
		return c.radiusPoint, true
	}
	return Point{}, false
}

// ResizeByPoint changes the radius when the circumference point is
// dragged and moves the whole circle when the center is dragged.
func (c *Circle) ResizeByPoint(cp Point, dx, dy int) {
	if cp.Distance(c.radiusPoint) <= controlPointRange {
		c.radiusPoint = c.radiusPoint.Add(dx, dy)
		return
	}
	if cp.Distance(c.center) <= controlPointRange {
		c.Move(dx, dy)
	}
}

func (c *Circle) DrawControlPoints(s *raster.Surface) {
	s.DrawControlPoint(c.center.X, c.center.Y)
	s.DrawControlPoint(c.radiusPoint.X, c.radiusPoint.Y)
}
