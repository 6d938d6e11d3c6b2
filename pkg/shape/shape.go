// Package shape defines the drawable shape variants of the paint canvas
// and the common contract they implement: drawing onto a raster surface,
// hit-testing, translation, fill toggling and control-point resizing.
package shape

import (
	"math"

	"pigment/pkg/raster"
)

// Hit-test tolerances, uniform across variants for consistent selection.
const (
	selectTolerance   = 5  // added to the stroke thickness for edge hits
	controlPointRange = 10 // pick-up radius for control points
)

// Point is a value-semantics 2D point with integer coordinates.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Edge identifies one side of a rectangle or square.
type Edge int

const (
	NoEdge Edge = iota - 1
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Shape is the contract shared by every canvas shape.
type Shape interface {
	// Draw renders the shape onto the surface. Filled shapes render their
	// fill before the outline so strokes stay crisp on top.
	Draw(s *raster.Surface)

	// Contains reports whether p hits the shape: near an edge for
	// unfilled shapes, inside for filled ones.
	Contains(p Point) bool

	// Move translates all owned geometry by a fixed offset.
	Move(dx, dy int)

	// SetEndPoint updates the live end point during drag-to-create.
	// Variants without a creation drag treat it as a no-op.
	SetEndPoint(p Point)

	// CanBeFilled reports whether the variant supports filling.
	CanBeFilled() bool

	// SetFilled toggles the fill.
	SetFilled(filled bool)

	// SetFillColor sets the interior color used when filled.
	SetFillColor(c uint32)

	// NearestControlPoint returns the closest owned control point within
	// range of p.
	NearestControlPoint(p Point) (Point, bool)

	// ResizeByPoint applies a drag delta to the given control point.
	ResizeByPoint(cp Point, dx, dy int)

	// DrawControlPoints draws a handle glyph at each owned control point.
	DrawControlPoints(s *raster.Surface)
}

// EdgeResizer is the capability interface for shapes with draggable edges
// and free-draggable corners (rectangles and squares). The controller
// type-asserts to it instead of inspecting concrete types.
type EdgeResizer interface {
	// NearestEdge returns the edge within range of p, or NoEdge.
	NearestEdge(p Point) Edge

	// ResizeByEdge applies a drag delta to one edge.
	ResizeByEdge(e Edge, dx, dy int)

	// MoveCorner drags a corner without the variant's usual constraints.
	MoveCorner(corner Point, dx, dy int)

	// EdgeEndpoints returns the segment of the given edge, for overlays.
	EdgeEndpoints(e Edge) (Point, Point)
}

// pointSegmentDistance returns the distance from p to the segment ab.
func pointSegmentDistance(p, a, b Point) float64 {
	length := a.Distance(b)
	if length == 0 {
		return p.Distance(a)
	}

	t := float64((p.X-a.X)*(b.X-a.X)+(p.Y-a.Y)*(b.Y-a.Y)) / (length * length)
	t = math.Max(0, math.Min(1, t))

	nearest := Point{
		X: a.X + int(t*float64(b.X-a.X)),
		Y: a.Y + int(t*float64(b.Y-a.Y)),
	}
	return p.Distance(nearest)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
