package shape

import (
	"testing"

	"pigment/pkg/raster"
)

func TestCircleRadius(t *testing.T) {
	c := NewCircle(Pt(100, 100), Pt(130, 140), raster.Black, 1, raster.StyleSolid)
	if got := c.Radius(); got != 50 {
		t.Errorf("Radius() = %d, want 50", got)
	}
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(Pt(100, 100), Pt(140, 100), raster.Black, 1, raster.StyleSolid)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"on the ring", Pt(140, 100), true},
		{"just inside the ring", Pt(136, 100), true},
		{"just outside the ring", Pt(145, 100), true},
		{"past tolerance", Pt(150, 100), false},
		{"center of an unfilled circle", Pt(100, 100), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	c.SetFilled(true)
	if !c.Contains(Pt(100, 100)) {
		t.Error("Contains at the center of a filled circle = false, want true")
	}
}

func TestCircleResizeByPoint(t *testing.T) {
	c := NewCircle(Pt(100, 100), Pt(140, 100), raster.Black, 1, raster.StyleSolid)

	// Dragging the circumference point changes only the radius.
	c.ResizeByPoint(Pt(140, 100), 10, 0)
	if got := c.Radius(); got != 50 {
		t.Errorf("Radius() after circumference drag = %d, want 50", got)
	}

	// Dragging the center moves the whole circle.
	c.ResizeByPoint(Pt(100, 100), 5, 5)
	if got := c.Radius(); got != 50 {
		t.Errorf("Radius() after center drag = %d, want 50", got)
	}
	if !c.Contains(Pt(155, 105)) {
		t.Error("ring did not follow the moved center")
	}
}

func TestCircleSetEndPoint(t *testing.T) {
	c := NewCircle(Pt(50, 50), Pt(50, 50), raster.Black, 1, raster.StyleSolid)
	c.SetEndPoint(Pt(80, 50))
	if got := c.Radius(); got != 30 {
		t.Errorf("Radius() after SetEndPoint = %d, want 30", got)
	}
}
