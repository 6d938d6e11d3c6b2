package shape

import (
	"testing"

	"pigment/pkg/raster"
)

func TestEraserStrokeSegments(t *testing.T) {
	es := NewEraserStroke(4)
	es.AddPoint(Pt(10, 10))
	es.AddPoint(Pt(20, 10))
	es.AddPoint(Pt(20, 20))

	if got := es.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestEraserStrokeReplaysOnDraw(t *testing.T) {
	s := raster.New(40, 40)
	s.FillRectangle(0, 0, 39, 39, raster.Black)

	es := NewEraserStroke(3)
	es.AddPoint(Pt(10, 20))
	es.AddPoint(Pt(30, 20))
	es.Draw(s)

	for x := 10; x <= 30; x++ {
		if got := s.Pixel(x, 20); got != raster.White {
			t.Fatalf("Pixel(%d, 20) = %#06x, want erased", x, got)
		}
	}
	if got := s.Pixel(5, 5); got != raster.Black {
		t.Errorf("Pixel(5, 5) = %#06x away from the stroke, want black", got)
	}
}

func TestEraserStrokeNotSelectable(t *testing.T) {
	es := NewEraserStroke(4)
	es.AddPoint(Pt(10, 10))

	if es.Contains(Pt(10, 10)) {
		t.Error("Contains on an eraser stroke = true, want false")
	}
	if _, ok := es.NearestControlPoint(Pt(10, 10)); ok {
		t.Error("NearestControlPoint on an eraser stroke reported a hit")
	}
	if es.CanBeFilled() {
		t.Error("CanBeFilled on an eraser stroke = true, want false")
	}
}
