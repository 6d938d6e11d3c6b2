package shape

import (
	"testing"

	"pigment/pkg/raster"
)

func TestFloodFillMarkerReplays(t *testing.T) {
	s := raster.New(30, 30)
	m := NewFloodFillMarker(Pt(15, 15), raster.Red)
	m.Draw(s)

	if got := s.Pixel(0, 0); got != raster.Red {
		t.Errorf("Pixel(0, 0) = %#06x after replaying the fill, want red", got)
	}
}

func TestFloodFillMarkerFollowsCanvasState(t *testing.T) {
	s := raster.New(40, 40)
	m := NewFloodFillMarker(Pt(20, 20), raster.Red)

	// A boundary drawn before the marker replays confines the fill.
	s.DrawRectangle(10, 10, 30, 30, raster.Black, raster.StyleSolid, 1, false)
	m.Draw(s)

	if got := s.Pixel(20, 20); got != raster.Red {
		t.Errorf("inside = %#06x, want red", got)
	}
	if got := s.Pixel(5, 5); got != raster.White {
		t.Errorf("outside = %#06x, want white", got)
	}
}

func TestFloodFillMarkerControlPoint(t *testing.T) {
	m := NewFloodFillMarker(Pt(50, 50), raster.Red)

	cp, ok := m.NearestControlPoint(Pt(53, 48))
	if !ok || cp != Pt(50, 50) {
		t.Fatalf("NearestControlPoint = %v, %v; want the seed", cp, ok)
	}

	m.ResizeByPoint(cp, 10, -10)
	if m.Seed() != Pt(60, 40) {
		t.Errorf("Seed() after drag = %v, want (60, 40)", m.Seed())
	}
}

func TestFloodFillMarkerNotHitTestable(t *testing.T) {
	m := NewFloodFillMarker(Pt(50, 50), raster.Red)
	if m.Contains(Pt(50, 50)) {
		t.Error("Contains on a fill marker = true, want false")
	}
	if m.CanBeFilled() {
		t.Error("CanBeFilled on a fill marker = true, want false")
	}
}
