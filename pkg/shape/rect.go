package shape

import "pigment/pkg/raster"

// Corner indices, clockwise from top-left. Corner i shares its Y
// coordinate with corner i^1 (horizontal edge) and its X coordinate with
// corner i^3 (vertical edge); edge e runs from corner e to corner
// (e+1)%4.
const (
	cornerTL = 0
	cornerTR = 1
	cornerBR = 2
	cornerBL = 3
)

// Rectangle is an axis-aligned rectangle stored as four corner points in
// clockwise winding from the top-left. All operations preserve the
// axis alignment; the anchor recorded at creation is the pivot for
// drag-to-create recomputation.
type Rectangle struct {
	corners   [4]Point
	anchor    Point
	color     uint32
	fillColor uint32
	thickness int
	style     raster.Style
	filled    bool
}

// NewRectangle creates a rectangle spanned by the anchor and end points.
func NewRectangle(anchor, end Point, color uint32, thickness int, style raster.Style) *Rectangle {
	r := &Rectangle{anchor: anchor, color: color, thickness: thickness, style: style}
	r.SetEndPoint(end)
	return r
}

// SetEndPoint recomputes all four corners from the fixed anchor and the
// new drag point.
func (r *Rectangle) SetEndPoint(p Point) {
	left := min(r.anchor.X, p.X)
	top := min(r.anchor.Y, p.Y)
	right := max(r.anchor.X, p.X)
	bottom := max(r.anchor.Y, p.Y)
	r.corners = [4]Point{
		{left, top}, {right, top}, {right, bottom}, {left, bottom},
	}
}

// Corners returns the four corner points in winding order.
func (r *Rectangle) Corners() [4]Point {
	return r.corners
}

func (r *Rectangle) bounds() (left, top, right, bottom int) {
	left, top = r.corners[0].X, r.corners[0].Y
	right, bottom = left, top
	for _, c := range r.corners[1:] {
		left = min(left, c.X)
		top = min(top, c.Y)
		right = max(right, c.X)
		bottom = max(bottom, c.Y)
	}
	return
}

func (r *Rectangle) Draw(s *raster.Surface) {
	left, top, right, bottom := r.bounds()
	if r.filled {
		s.FillRectangle(left, top, right, bottom, r.fillColor)
	}
	s.DrawRectangle(left, top, right, bottom, r.color, r.style, r.thickness, false)
}

func (r *Rectangle) Contains(p Point) bool {
	left, top, right, bottom := r.bounds()
	if r.filled {
		return p.X >= left && p.X <= right && p.Y >= top && p.Y <= bottom
	}
	tol := float64(selectTolerance + r.thickness)
	for e := EdgeTop; e <= EdgeLeft; e++ {
		a, b := r.EdgeEndpoints(e)
		if pointSegmentDistance(p, a, b) <= tol {
			return true
		}
	}
	return false
}

func (r *Rectangle) Move(dx, dy int) {
	for i := range r.corners {
		r.corners[i] = r.corners[i].Add(dx, dy)
	}
	r.anchor = r.anchor.Add(dx, dy)
}

func (r *Rectangle) CanBeFilled() bool { return true }

func (r *Rectangle) SetFilled(filled bool) {
	r.filled = filled
}

func (r *Rectangle) SetFillColor(c uint32) {
	r.fillColor = c
}

// controlPoints returns the four corners followed by the four edge
// midpoints.
func (r *Rectangle) controlPoints() [8]Point {
	var cps [8]Point
	copy(cps[:4], r.corners[:])
	for e := 0; e < 4; e++ {
		a := r.corners[e]
		b := r.corners[(e+1)%4]
		cps[4+e] = Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	return cps
}

func (r *Rectangle) NearestControlPoint(p Point) (Point, bool) {
	return nearestOf(p, r.controlPoints())
}

// ResizeByPoint resizes free-form: dragging a corner moves the adjacent
// corners' shared coordinates so the angles stay right and the opposite
// corner stays fixed; dragging an edge midpoint moves only that edge.
func (r *Rectangle) ResizeByPoint(cp Point, dx, dy int) {
	cps := r.controlPoints()
	for i := 0; i < 4; i++ {
		if cps[i] == cp {
			r.dragCorner(i, dx, dy)
			return
		}
	}
	for e := 0; e < 4; e++ {
		if cps[4+e] == cp {
			r.ResizeByEdge(Edge(e), dx, dy)
			return
		}
	}
}

// dragCorner moves corner i and the shared coordinates of its two
// neighbors.
func (r *Rectangle) dragCorner(i, dx, dy int) {
	r.corners[i] = r.corners[i].Add(dx, dy)
	r.corners[i^1].Y += dy
	r.corners[i^3].X += dx
}

// NearestEdge returns the edge nearest to p within the pick-up range, or
// NoEdge.
func (r *Rectangle) NearestEdge(p Point) Edge {
	best := NoEdge
	bestDist := float64(controlPointRange + r.thickness)
	for e := EdgeTop; e <= EdgeLeft; e++ {
		a, b := r.EdgeEndpoints(e)
		if d := pointSegmentDistance(p, a, b); d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}

// ResizeByEdge moves only the given edge's coordinate.
func (r *Rectangle) ResizeByEdge(e Edge, dx, dy int) {
	if e < EdgeTop || e > EdgeLeft {
		return
	}
	i, j := int(e), (int(e)+1)%4
	switch e {
	case EdgeTop, EdgeBottom:
		r.corners[i].Y += dy
		r.corners[j].Y += dy
	case EdgeRight, EdgeLeft:
		r.corners[i].X += dx
		r.corners[j].X += dx
	}
}

// MoveCorner drags a handle free-form. For a rectangle a corner drag is
// the same right-angle-preserving resize as ResizeByPoint; an edge
// midpoint handle moves that edge.
func (r *Rectangle) MoveCorner(corner Point, dx, dy int) {
	cps := r.controlPoints()
	for i := 0; i < 4; i++ {
		if cps[i] == corner {
			r.dragCorner(i, dx, dy)
			return
		}
	}
	for e := 0; e < 4; e++ {
		if cps[4+e] == corner {
			r.ResizeByEdge(Edge(e), dx, dy)
			return
		}
	}
}

// EdgeEndpoints returns the segment of edge e.
func (r *Rectangle) EdgeEndpoints(e Edge) (Point, Point) {
	i := int(e)
	return r.corners[i], r.corners[(i+1)%4]
}

func (r *Rectangle) DrawControlPoints(s *raster.Surface) {
	for _, cp := range r.controlPoints() {
		s.DrawControlPoint(cp.X, cp.Y)
	}
}

// nearestOf returns the control point nearest to p within range.
func nearestOf(p Point, cps [8]Point) (Point, bool) {
	var best Point
	found := false
	minDist := float64(controlPointRange)
	for _, cp := range cps {
		if d := p.Distance(cp); d < minDist {
			minDist = d
			best = cp
			found = true
		}
	}
	return best, found
}
