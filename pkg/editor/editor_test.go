package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pigment/pkg/raster"
	"pigment/pkg/shape"
)

func newTestEditor() *Editor {
	return New(200, 200)
}

func press(e *Editor, p shape.Point) {
	e.Press(p, ButtonPrimary)
}

func drag(e *Editor, points ...shape.Point) {
	for _, p := range points {
		e.Drag(p)
	}
}

func TestDragCreateRectangle(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolRectangle)

	press(e, shape.Pt(20, 20))
	drag(e, shape.Pt(50, 40), shape.Pt(80, 60))
	e.Release(shape.Pt(80, 60))

	require.Equal(t, 1, e.ShapeCount())

	r, ok := e.Shapes()[0].(*shape.Rectangle)
	require.True(t, ok)
	assert.Equal(t, [4]shape.Point{{X: 20, Y: 20}, {X: 80, Y: 20}, {X: 80, Y: 60}, {X: 20, Y: 60}}, r.Corners())

	// The committed outline is on the raster.
	assert.Equal(t, raster.Black, e.surface.Pixel(20, 20))
	assert.Equal(t, raster.Black, e.surface.Pixel(50, 60))
	assert.Equal(t, raster.White, e.surface.Pixel(50, 40))
}

func TestDragCreateLivePreview(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolLine)

	press(e, shape.Pt(10, 10))
	drag(e, shape.Pt(60, 10))

	// Mid-drag the preview is drawn but nothing is committed yet.
	assert.Equal(t, 0, e.ShapeCount())
	assert.Equal(t, raster.Black, e.surface.Pixel(30, 10))

	e.Release(shape.Pt(60, 10))
	assert.Equal(t, 1, e.ShapeCount())
}

func TestPolygonCommitOnRightClick(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolPolygon)

	press(e, shape.Pt(30, 30))
	press(e, shape.Pt(70, 30))
	press(e, shape.Pt(50, 60))
	assert.Equal(t, 0, e.ShapeCount())

	e.Press(shape.Pt(50, 60), ButtonSecondary)
	require.Equal(t, 1, e.ShapeCount())

	pg, ok := e.Shapes()[0].(*shape.Polygon)
	require.True(t, ok)
	assert.Equal(t, []shape.Point{{X: 30, Y: 30}, {X: 70, Y: 30}, {X: 50, Y: 60}}, pg.Points())
}

func TestPolygonRightClickNeedsThreeVertices(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolPolygon)

	press(e, shape.Pt(30, 30))
	press(e, shape.Pt(70, 30))
	e.Press(shape.Pt(70, 30), ButtonSecondary)

	// Two vertices cannot close; the chain stays pending.
	assert.Equal(t, 0, e.ShapeCount())

	press(e, shape.Pt(50, 60))
	e.Press(shape.Pt(50, 60), ButtonSecondary)
	assert.Equal(t, 1, e.ShapeCount())
}

func TestPolygonCommitOnToolSwitch(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolPolygon)

	press(e, shape.Pt(30, 30))
	press(e, shape.Pt(70, 30))
	press(e, shape.Pt(50, 60))

	e.SetTool(ToolSelect)
	assert.Equal(t, 1, e.ShapeCount())
}

func TestPolygonDiscardOnToolSwitch(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolPolygon)

	press(e, shape.Pt(30, 30))
	press(e, shape.Pt(70, 30))

	e.SetTool(ToolSelect)
	assert.Equal(t, 0, e.ShapeCount())
}

func TestSelectAndMoveBody(t *testing.T) {
	e := newTestEditor()
	press(e, shape.Pt(10, 10))
	drag(e, shape.Pt(90, 90))
	e.Release(shape.Pt(90, 90))

	e.SetTool(ToolSelect)
	press(e, shape.Pt(50, 50))
	require.Same(t, e.Shapes()[0], e.Selected())

	drag(e, shape.Pt(60, 50))
	e.Release(shape.Pt(60, 50))

	l := e.Shapes()[0].(*shape.Line)
	p1, p2 := l.Endpoints()
	assert.Equal(t, shape.Pt(20, 10), p1)
	assert.Equal(t, shape.Pt(100, 90), p2)
}

func TestSelectResizeEndpoint(t *testing.T) {
	e := newTestEditor()
	press(e, shape.Pt(10, 10))
	drag(e, shape.Pt(90, 90))
	e.Release(shape.Pt(90, 90))

	e.SetTool(ToolSelect)
	// First click selects the body; the second grabs the endpoint handle.
	press(e, shape.Pt(50, 50))
	e.Release(shape.Pt(50, 50))
	press(e, shape.Pt(90, 90))
	drag(e, shape.Pt(95, 95))
	e.Release(shape.Pt(95, 95))

	l := e.Shapes()[0].(*shape.Line)
	p1, p2 := l.Endpoints()
	assert.Equal(t, shape.Pt(10, 10), p1, "the untouched endpoint must not move")
	assert.Equal(t, shape.Pt(95, 95), p2)
}

func TestSelectEdgeResizeAndHighlight(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolRectangle)
	press(e, shape.Pt(20, 20))
	drag(e, shape.Pt(120, 80))
	e.Release(shape.Pt(120, 80))

	e.SetTool(ToolSelect)
	press(e, shape.Pt(45, 21))
	e.Release(shape.Pt(45, 21))
	// Near the top edge but out of range of the corner and midpoint
	// handles, so with the rectangle selected the edge check wins.
	press(e, shape.Pt(45, 21))
	drag(e, shape.Pt(45, 16))
	e.Release(shape.Pt(45, 16))

	r := e.Shapes()[0].(*shape.Rectangle)
	assert.Equal(t, [4]shape.Point{{X: 20, Y: 15}, {X: 120, Y: 15}, {X: 120, Y: 80}, {X: 20, Y: 80}}, r.Corners())

	// The dragged edge stays highlighted in dashed red after release.
	assert.Equal(t, raster.Red, e.surface.Pixel(20, 15))
}

func TestSelectRightDragBreaksSquare(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolSquare)
	press(e, shape.Pt(100, 100))
	drag(e, shape.Pt(150, 150))
	e.Release(shape.Pt(150, 150))

	e.SetTool(ToolSelect)
	press(e, shape.Pt(150, 150))
	e.Release(shape.Pt(150, 150))
	e.Press(shape.Pt(150, 150), ButtonSecondary)
	drag(e, shape.Pt(165, 155))
	e.Release(shape.Pt(165, 155))

	sq := e.Shapes()[0].(*shape.Square)
	corners := sq.Corners()
	assert.Equal(t, shape.Pt(165, 155), corners[2])
	assert.Equal(t, shape.Pt(100, 100), corners[0])
	assert.Equal(t, shape.Pt(150, 100), corners[1])
	assert.Equal(t, shape.Pt(100, 150), corners[3])
}

func TestSelectConstrainedSquareResize(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolSquare)
	press(e, shape.Pt(100, 100))
	drag(e, shape.Pt(150, 150))
	e.Release(shape.Pt(150, 150))

	e.SetTool(ToolSelect)
	press(e, shape.Pt(150, 150))
	e.Release(shape.Pt(150, 150))
	press(e, shape.Pt(150, 150))
	drag(e, shape.Pt(170, 155))
	e.Release(shape.Pt(170, 155))

	sq := e.Shapes()[0].(*shape.Square)
	corners := sq.Corners()
	width := corners[1].X - corners[0].X
	height := corners[3].Y - corners[0].Y
	assert.Equal(t, width, height, "the primary-button drag must keep the square constrained")
}

func TestObjectEraserRemovesTopmostOnly(t *testing.T) {
	e := newTestEditor()
	press(e, shape.Pt(10, 10))
	drag(e, shape.Pt(90, 10))
	e.Release(shape.Pt(90, 10))
	press(e, shape.Pt(10, 10))
	drag(e, shape.Pt(90, 10))
	e.Release(shape.Pt(90, 10))
	require.Equal(t, 2, e.ShapeCount())

	bottom := e.Shapes()[0]

	e.SetTool(ToolEraser)
	e.SetEraserMode(EraseObject)
	press(e, shape.Pt(50, 10))
	e.Release(shape.Pt(50, 10))

	require.Equal(t, 1, e.ShapeCount())
	assert.Same(t, bottom, e.Shapes()[0], "the topmost shape must be the one removed")
}

func TestObjectEraserMissesEmptySpace(t *testing.T) {
	e := newTestEditor()
	press(e, shape.Pt(10, 10))
	drag(e, shape.Pt(90, 10))
	e.Release(shape.Pt(90, 10))

	e.SetTool(ToolEraser)
	press(e, shape.Pt(150, 150))
	e.Release(shape.Pt(150, 150))

	assert.Equal(t, 1, e.ShapeCount())
}

func TestPixelEraserLiveAndCommitted(t *testing.T) {
	e := newTestEditor()
	press(e, shape.Pt(10, 20))
	drag(e, shape.Pt(80, 20))
	e.Release(shape.Pt(80, 20))
	require.Equal(t, raster.Black, e.surface.Pixel(40, 20))

	e.SetTool(ToolEraser)
	e.SetEraserMode(ErasePixel)
	press(e, shape.Pt(40, 20))

	// The erase lands on the live raster immediately, before release.
	assert.Equal(t, raster.White, e.surface.Pixel(40, 20))

	drag(e, shape.Pt(50, 20))
	e.Release(shape.Pt(50, 20))
	assert.Equal(t, 2, e.ShapeCount())

	// The stroke replays on a full repaint.
	e.Redraw()
	assert.Equal(t, raster.White, e.surface.Pixel(45, 20))
	assert.Equal(t, raster.Black, e.surface.Pixel(10, 20))
}

func TestFloodFillRecordsMarker(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolFill)
	e.SetFillMode(FillFlood)
	e.SetFillColor(raster.Green)

	press(e, shape.Pt(5, 5))
	e.Release(shape.Pt(5, 5))

	require.Equal(t, 1, e.ShapeCount())
	assert.Equal(t, raster.Green, e.surface.Pixel(100, 100))

	m, ok := e.Shapes()[0].(*shape.FloodFillMarker)
	require.True(t, ok)
	assert.Equal(t, shape.Pt(5, 5), m.Seed())
}

func TestFillObject(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolRectangle)
	press(e, shape.Pt(20, 20))
	drag(e, shape.Pt(80, 60))
	e.Release(shape.Pt(80, 60))

	e.SetTool(ToolFill)
	e.SetFillMode(FillObject)
	e.SetFillColor(raster.Red)

	// An unfilled rectangle is hit on its edges.
	press(e, shape.Pt(50, 20))
	e.Release(shape.Pt(50, 20))

	assert.Equal(t, raster.Red, e.surface.Pixel(50, 40))
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("300", "400")
	require.NoError(t, err)
	assert.Equal(t, 300, w)
	assert.Equal(t, 400, h)

	_, _, err = ParseSize("abc", "400")
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, _, err = ParseSize("300", "")
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, _, err = ParseSize("-5", "400")
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestResizeClampsAndRedraws(t *testing.T) {
	e := newTestEditor()
	press(e, shape.Pt(10, 20))
	drag(e, shape.Pt(80, 20))
	e.Release(shape.Pt(80, 20))

	e.Resize(50, 5000)
	assert.Equal(t, MinCanvasSize, e.Width())
	assert.Equal(t, MaxCanvasSize, e.Height())

	// Shapes survive the resize.
	assert.Equal(t, raster.Black, e.surface.Pixel(40, 20))
}

func TestClearCanvas(t *testing.T) {
	e := newTestEditor()
	press(e, shape.Pt(10, 20))
	drag(e, shape.Pt(80, 20))
	e.Release(shape.Pt(80, 20))

	e.ClearCanvas()
	assert.Equal(t, 0, e.ShapeCount())
	assert.Nil(t, e.Selected())
	assert.Equal(t, raster.White, e.surface.Pixel(40, 20))
}

func TestSetterClamping(t *testing.T) {
	e := newTestEditor()

	e.SetThickness(0)
	assert.Equal(t, 1, e.Thickness())
	e.SetThickness(5)
	assert.Equal(t, 5, e.Thickness())

	e.SetEraserRadius(-3)
	assert.Equal(t, 1, e.EraserRadius())
}

func TestSelectDeselectOnMiss(t *testing.T) {
	e := newTestEditor()
	press(e, shape.Pt(10, 10))
	drag(e, shape.Pt(90, 90))
	e.Release(shape.Pt(90, 90))

	e.SetTool(ToolSelect)
	press(e, shape.Pt(50, 50))
	e.Release(shape.Pt(50, 50))
	require.NotNil(t, e.Selected())

	press(e, shape.Pt(180, 20))
	e.Release(shape.Pt(180, 20))
	assert.Nil(t, e.Selected())
}

func TestSelectEdgeRightDragMovesWholeShape(t *testing.T) {
	e := newTestEditor()
	e.SetTool(ToolRectangle)
	press(e, shape.Pt(20, 20))
	drag(e, shape.Pt(120, 80))
	e.Release(shape.Pt(120, 80))

	e.SetTool(ToolSelect)
	press(e, shape.Pt(45, 21))
	e.Release(shape.Pt(45, 21))

	e.Press(shape.Pt(45, 21), ButtonSecondary)
	drag(e, shape.Pt(55, 31))
	e.Release(shape.Pt(55, 31))

	r := e.Shapes()[0].(*shape.Rectangle)
	assert.Equal(t, [4]shape.Point{{X: 30, Y: 30}, {X: 130, Y: 30}, {X: 130, Y: 90}, {X: 30, Y: 90}}, r.Corners())
}

func TestSelectionClearedOnToolSwitch(t *testing.T) {
	e := newTestEditor()
	press(e, shape.Pt(10, 10))
	drag(e, shape.Pt(90, 90))
	e.Release(shape.Pt(90, 90))

	e.SetTool(ToolSelect)
	press(e, shape.Pt(50, 50))
	e.Release(shape.Pt(50, 50))
	require.NotNil(t, e.Selected())

	e.SetTool(ToolLine)
	assert.Nil(t, e.Selected())
}
