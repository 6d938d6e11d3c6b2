package shape

import (
	"image"

	"pigment/pkg/raster"
)

// Square is a rectangle constrained to equal side lengths. It shares the
// four-corner representation with Rectangle; the constrained operations
// keep the bounding width and height equal, while MoveCorner (the
// unconstrained right-drag interaction) may deliberately break the
// constraint, leaving a free quadrilateral.
type Square struct {
	corners   [4]Point
	anchor    Point
	color     uint32
	fillColor uint32
	thickness int
	style     raster.Style
	filled    bool
}

// NewSquare creates a square anchored at anchor, sized by the drag point.
func NewSquare(anchor, end Point, color uint32, thickness int, style raster.Style) *Square {
	sq := &Square{anchor: anchor, color: color, thickness: thickness, style: style}
	sq.SetEndPoint(end)
	return sq
}

// SetEndPoint recomputes the corners from the anchor. The side is the
// larger of |dx| and |dy|, grown away from the anchor in the drag
// quadrant's direction.
func (sq *Square) SetEndPoint(p Point) {
	size := max(abs(p.X-sq.anchor.X), abs(p.Y-sq.anchor.Y))

	var left, top int
	if p.X >= sq.anchor.X {
		left = sq.anchor.X
	} else {
		left = sq.anchor.X - size
	}
	if p.Y >= sq.anchor.Y {
		top = sq.anchor.Y
	} else {
		top = sq.anchor.Y - size
	}

	sq.corners = [4]Point{
		{left, top}, {left + size, top}, {left + size, top + size}, {left, top + size},
	}
}

// Corners returns the four corner points in winding order.
func (sq *Square) Corners() [4]Point {
	return sq.corners
}

func (sq *Square) quad() []image.Point {
	pts := make([]image.Point, 4)
	for i, c := range sq.corners {
		pts[i] = image.Point{X: c.X, Y: c.Y}
	}
	return pts
}

// Draw renders the square as a closed quad so that a corner freed by
// MoveCorner still draws correctly.
func (sq *Square) Draw(s *raster.Surface) {
	if sq.filled {
		s.FillPolygon(sq.quad(), sq.fillColor)
	}
	for e := 0; e < 4; e++ {
		a := sq.corners[e]
		b := sq.corners[(e+1)%4]
		s.DrawLine(a.X, a.Y, b.X, b.Y, sq.color, sq.style, sq.thickness)
	}
}

func (sq *Square) Contains(p Point) bool {
	if sq.filled {
		return raster.PointInPolygon(p.X, p.Y, sq.quad())
	}
	tol := float64(selectTolerance + sq.thickness)
	for e := EdgeTop; e <= EdgeLeft; e++ {
		a, b := sq.EdgeEndpoints(e)
		if pointSegmentDistance(p, a, b) <= tol {
			return true
		}
	}
	return false
}

func (sq *Square) Move(dx, dy int) {
	for i := range sq.corners {
		sq.corners[i] = sq.corners[i].Add(dx, dy)
	}
	sq.anchor = sq.anchor.Add(dx, dy)
}

func (sq *Square) CanBeFilled() bool { return true }

func (sq *Square) SetFilled(filled bool) {
	sq.filled = filled
}

func (sq *Square) SetFillColor(c uint32) {
	sq.fillColor = c
}

func (sq *Square) controlPoints() [8]Point {
	var cps [8]Point
	copy(cps[:4], sq.corners[:])
	for e := 0; e < 4; e++ {
		a := sq.corners[e]
		b := sq.corners[(e+1)%4]
		cps[4+e] = Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	return cps
}

func (sq *Square) NearestControlPoint(p Point) (Point, bool) {
	return nearestOf(p, sq.controlPoints())
}

// cornerOutward gives the outward diagonal direction of corner i in the
// clockwise-from-top-left winding.
func cornerOutward(i int) (ox, oy int) {
	switch i {
	case cornerTL:
		return -1, -1
	case cornerTR:
		return 1, -1
	case cornerBR:
		return 1, 1
	default:
		return -1, 1
	}
}

// ResizeByPoint resizes under the square constraint. A corner drag
// applies the dominant-axis delta equally to width and height, growing or
// shrinking along the corner's diagonal; an edge-midpoint drag behaves
// like the corresponding edge resize.
func (sq *Square) ResizeByPoint(cp Point, dx, dy int) {
	cps := sq.controlPoints()
	for i := 0; i < 4; i++ {
		if cps[i] != cp {
			continue
		}
		dominant := dx
		ox, oy := cornerOutward(i)
		growth := dominant * ox
		if abs(dy) > abs(dx) {
			dominant = dy
			growth = dominant * oy
		}
		sq.dragCorner(i, ox*growth, oy*growth)
		return
	}
	for e := 0; e < 4; e++ {
		if cps[4+e] == cp {
			sq.ResizeByEdge(Edge(e), dx, dy)
			return
		}
	}
}

func (sq *Square) dragCorner(i, dx, dy int) {
	sq.corners[i] = sq.corners[i].Add(dx, dy)
	sq.corners[i^1].Y += dy
	sq.corners[i^3].X += dx
}

// NearestEdge returns the edge nearest to p within the pick-up range, or
// NoEdge.
func (sq *Square) NearestEdge(p Point) Edge {
	best := NoEdge
	bestDist := float64(controlPointRange + sq.thickness)
	for e := EdgeTop; e <= EdgeLeft; e++ {
		a, b := sq.EdgeEndpoints(e)
		if d := pointSegmentDistance(p, a, b); d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}

// ResizeByEdge recomputes all four corners from the centroid and an
// updated side length, so the shape stays a square.
func (sq *Square) ResizeByEdge(e Edge, dx, dy int) {
	if e < EdgeTop || e > EdgeLeft {
		return
	}

	left, top, right, bottom := sq.bounds()
	side := right - left

	switch e {
	case EdgeTop:
		side -= dy
	case EdgeBottom:
		side += dy
	case EdgeLeft:
		side -= dx
	case EdgeRight:
		side += dx
	}
	if side < 0 {
		side = 0
	}

	cx := (left + right) / 2
	cy := (top + bottom) / 2
	newLeft := cx - side/2
	newTop := cy - side/2
	sq.corners = [4]Point{
		{newLeft, newTop},
		{newLeft + side, newTop},
		{newLeft + side, newTop + side},
		{newLeft, newTop + side},
	}
}

// MoveCorner drags a handle with no constraint. A corner moves alone and
// the square degenerates into a free quadrilateral, which is the intended
// right-drag behavior; an edge midpoint handle shifts only that edge.
func (sq *Square) MoveCorner(corner Point, dx, dy int) {
	cps := sq.controlPoints()
	for i := range sq.corners {
		if cps[i] == corner {
			sq.corners[i] = sq.corners[i].Add(dx, dy)
			return
		}
	}
	for e := 0; e < 4; e++ {
		if cps[4+e] == corner {
			i, j := e, (e+1)%4
			switch Edge(e) {
			case EdgeTop, EdgeBottom:
				sq.corners[i].Y += dy
				sq.corners[j].Y += dy
			case EdgeRight, EdgeLeft:
				sq.corners[i].X += dx
				sq.corners[j].X += dx
			}
			return
		}
	}
}

// EdgeEndpoints returns the segment of edge e.
func (sq *Square) EdgeEndpoints(e Edge) (Point, Point) {
	i := int(e)
	return sq.corners[i], sq.corners[(i+1)%4]
}

func (sq *Square) bounds() (left, top, right, bottom int) {
	left, top = sq.corners[0].X, sq.corners[0].Y
	right, bottom = left, top
	for _, c := range sq.corners[1:] {
		left = min(left, c.X)
		top = min(top, c.Y)
		right = max(right, c.X)
		bottom = max(bottom, c.Y)
	}
	return
}

func (sq *Square) DrawControlPoints(s *raster.Surface) {
	for _, cp := range sq.controlPoints() {
		s.DrawControlPoint(cp.X, cp.Y)
	}
}
