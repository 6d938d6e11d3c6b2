package shape

import (
	"image"

	"pigment/pkg/raster"
)

// Polygon is an ordered sequence of vertices. With three or more vertices
// the chain is closed by an edge from the last vertex back to the first
// and the polygon becomes fillable.
type Polygon struct {
	points    []Point
	color     uint32
	fillColor uint32
	thickness int
	style     raster.Style
	filled    bool
}

// NewPolygon creates a polygon from a copy of the given vertices.
func NewPolygon(points []Point, color uint32, thickness int, style raster.Style) *Polygon {
	pg := &Polygon{color: color, thickness: thickness, style: style}
	pg.SetPoints(points)
	return pg
}

// SetPoints replaces the vertex list with a copy of points. Used by the
// editor to update the in-progress preview as vertices are clicked.
func (pg *Polygon) SetPoints(points []Point) {
	pg.points = make([]Point, len(points))
	copy(pg.points, points)
}

// Points returns the vertex list.
func (pg *Polygon) Points() []Point {
	return pg.points
}

func (pg *Polygon) imagePoints() []image.Point {
	pts := make([]image.Point, len(pg.points))
	for i, p := range pg.points {
		pts[i] = image.Point{X: p.X, Y: p.Y}
	}
	return pts
}

func (pg *Polygon) Draw(s *raster.Surface) {
	if len(pg.points) < 2 {
		return
	}

	if pg.filled && len(pg.points) >= 3 {
		s.FillPolygon(pg.imagePoints(), pg.fillColor)
	}

	for i := 0; i < len(pg.points)-1; i++ {
		a := pg.points[i]
		b := pg.points[i+1]
		s.DrawLine(a.X, a.Y, b.X, b.Y, pg.color, pg.style, pg.thickness)
	}

	// The closing edge exists only once the chain can form a shape.
	if len(pg.points) >= 3 {
		first := pg.points[0]
		last := pg.points[len(pg.points)-1]
		s.DrawLine(last.X, last.Y, first.X, first.Y, pg.color, pg.style, pg.thickness)
	}
}

func (pg *Polygon) Contains(p Point) bool {
	if len(pg.points) < 3 {
		return false
	}

	if pg.filled {
		return raster.PointInPolygon(p.X, p.Y, pg.imagePoints())
	}

	tol := float64(selectTolerance + pg.thickness)
	for i := range pg.points {
		a := pg.points[i]
		b := pg.points[(i+1)%len(pg.points)]
		if a == b {
			continue
		}
		if pointSegmentDistance(p, a, b) <= tol {
			return true
		}
	}
	return false
}

func (pg *Polygon) Move(dx, dy int) {
	for i := range pg.points {
		pg.points[i] = pg.points[i].Add(dx, dy)
	}
}

// SetEndPoint is a no-op: polygons grow vertex by vertex, not by drag.
func (pg *Polygon) SetEndPoint(Point) {}

// CanBeFilled reports true once the polygon can close.
func (pg *Polygon) CanBeFilled() bool {
	return len(pg.points) >= 3
}

func (pg *Polygon) SetFilled(filled bool) {
	pg.filled = filled
}

func (pg *Polygon) SetFillColor(c uint32) {
	pg.fillColor = c
}

func (pg *Polygon) NearestControlPoint(p Point) (Point, bool) {
	var best Point
	found := false
	minDist := float64(controlPointRange)
	for _, v := range pg.points {
		if d := p.Distance(v); d < minDist {
			minDist = d
			best = v
			found = true
		}
	}
	return best, found
}

// MovePoint translates the vertex matching cp: an exact match if there is
// one, otherwise the nearest vertex within pick-up range.
func (pg *Polygon) MovePoint(cp Point, dx, dy int) {
	for i, v := range pg.points {
		if v == cp {
			pg.points[i] = v.Add(dx, dy)
			return
		}
	}

	minDist := float64(controlPointRange)
	nearest := -1
	for i, v := range pg.points {
		if d := cp.Distance(v); d < minDist {
			minDist = d
			nearest = i
		}
	}
	if nearest >= 0 {
		pg.points[nearest] = pg.points[nearest].Add(dx, dy)
	}
}

// ResizeByPoint moves exactly the matched vertex.
func (pg *Polygon) ResizeByPoint(cp Point, dx, dy int) {
	pg.MovePoint(cp, dx, dy)
}

func (pg *Polygon) DrawControlPoints(s *raster.Surface) {
	for _, v := range pg.points {
		s.DrawControlPoint(v.X, v.Y)
	}
}
