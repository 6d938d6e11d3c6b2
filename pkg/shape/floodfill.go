package shape

import "pigment/pkg/raster"

// FloodFillMarker records a flood-fill seed and color. Drawing it re-runs
// the fill against whatever the raster currently contains, so its effect
// follows the shapes drawn before it in the list. It has no outline of
// its own and cannot be hit-tested or filled.
type FloodFillMarker struct {
	seed Point
	fill uint32
}

// NewFloodFillMarker creates a marker at the seed point.
func NewFloodFillMarker(seed Point, fill uint32) *FloodFillMarker {
	return &FloodFillMarker{seed: seed, fill: fill}
}

// Seed returns the seed point.
func (f *FloodFillMarker) Seed() Point {
	return f.seed
}

func (f *FloodFillMarker) Draw(s *raster.Surface) {
	s.FloodFill(f.seed.X, f.seed.Y, f.fill)
}

// Contains reports false: the fill has no persistent outline to hit.
func (f *FloodFillMarker) Contains(Point) bool { return false }

func (f *FloodFillMarker) Move(dx, dy int) {
	f.seed = f.seed.Add(dx, dy)
}

func (f *FloodFillMarker) SetEndPoint(Point) {}

func (f *FloodFillMarker) CanBeFilled() bool { return false }

func (f *FloodFillMarker) SetFilled(bool) {}

func (f *FloodFillMarker) SetFillColor(c uint32) {
	f.fill = c
}

func (f *FloodFillMarker) NearestControlPoint(p Point) (Point, bool) {
	if p.Distance(f.seed) <= controlPointRange {
		return f.seed, true
	}
	return Point{}, false
}

func (f *FloodFillMarker) ResizeByPoint(cp Point, dx, dy int) {
	if cp == f.seed {
		f.seed = f.seed.Add(dx, dy)
	}
}

func (f *FloodFillMarker) DrawControlPoints(s *raster.Surface) {
	s.DrawControlPoint(f.seed.X, f.seed.Y)
}
