package shape

import "pigment/pkg/raster"

type eraserSegment struct {
	start, end Point
}

// EraserStroke records a freehand pixel-erase path as connected segments
// so the erasure replays on every redraw. It cannot be selected, moved by
// hit-test or filled.
type EraserStroke struct {
	segments []eraserSegment
	radius   int
}

// NewEraserStroke creates an empty stroke with the given eraser radius.
func NewEraserStroke(radius int) *EraserStroke {
	return &EraserStroke{radius: radius}
}

// AddPoint extends the stroke. The first point forms a degenerate
// segment; each later point connects to the previous segment's end.
func (es *EraserStroke) AddPoint(p Point) {
	if len(es.segments) == 0 {
		es.segments = append(es.segments, eraserSegment{start: p, end: p})
		return
	}
	last := es.segments[len(es.segments)-1].end
	es.segments = append(es.segments, eraserSegment{start: last, end: p})
}

// Len returns the number of recorded segments.
func (es *EraserStroke) Len() int {
	return len(es.segments)
}

func (es *EraserStroke) Draw(s *raster.Surface) {
	for _, seg := range es.segments {
		if seg.start == seg.end {
			s.ErasePixels(seg.start.X, seg.start.Y, es.radius)
		} else {
			s.ErasePixelsLine(seg.start.X, seg.start.Y, seg.end.X, seg.end.Y, es.radius)
		}
	}
}

// Contains reports false: eraser strokes are not selectable.
func (es *EraserStroke) Contains(Point) bool { return false }

func (es *EraserStroke) Move(dx, dy int) {
	for i := range es.segments {
		es.segments[i].start = es.segments[i].start.Add(dx, dy)
		es.segments[i].end = es.segments[i].end.Add(dx, dy)
	}
}

func (es *EraserStroke) SetEndPoint(Point) {}

func (es *EraserStroke) CanBeFilled() bool { return false }

func (es *EraserStroke) SetFilled(bool)      {}
func (es *EraserStroke) SetFillColor(uint32) {}

func (es *EraserStroke) NearestControlPoint(Point) (Point, bool) {
	return Point{}, false
}

func (es *EraserStroke) ResizeByPoint(Point, int, int) {}

func (es *EraserStroke) DrawControlPoints(*raster.Surface) {}
