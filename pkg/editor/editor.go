// Package editor owns the drawing state of the paint canvas: the raster
// surface, the ordered shape list and the pointer interaction state
// machine that turns press/drag/release events into shapes, selections
// and raster edits.
package editor

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"pigment/pkg/raster"
	"pigment/pkg/shape"
)

// Canvas size limits applied by Resize.
const (
	MinCanvasSize = 200
	MaxCanvasSize = 3000
)

// Default editor settings.
const (
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultThickness    = 2
	DefaultEraserRadius = 8
)

// ErrInvalidSize reports a canvas size that could not be parsed.
var ErrInvalidSize = errors.New("invalid canvas size")

// dragMode tracks what an in-progress pointer drag is doing.
type dragMode int

const (
	dragNone dragMode = iota
	dragCreate
	dragMove
	dragControlPoint
	dragEdge
	dragErase
)

// Editor is the single owner of the raster surface and the shape list.
// The GUI forwards pointer events and repaints from Image; it never
// touches the surface or the shapes directly. An Editor is not safe for
// concurrent use.
type Editor struct {
	surface *raster.Surface
	shapes  []shape.Shape

	tool       Tool
	fillMode   FillMode
	eraserMode EraserMode

	strokeColor  uint32
	fillColor    uint32
	thickness    int
	style        raster.Style
	eraserRadius int

	// Drag-to-create preview, not yet in the shape list.
	current shape.Shape

	// Polygon vertices collected click by click.
	polyPoints []shape.Point

	selected      shape.Shape
	activeControl shape.Point
	activeEdge    shape.Edge
	mode          dragMode
	button        Button
	lastPos       shape.Point

	// Edge highlight, kept until the next press.
	highlightShape shape.EdgeResizer
	highlightEdge  shape.Edge

	eraserStroke *shape.EraserStroke
}

// New creates an editor with a white canvas of the given size.
func New(width, height int) *Editor {
	return &Editor{
		surface:       raster.New(width, height),
		tool:          ToolLine,
		strokeColor:   raster.Black,
		fillColor:     raster.Yellow,
		thickness:     DefaultThickness,
		style:         raster.StyleSolid,
		eraserRadius:  DefaultEraserRadius,
		activeEdge:    shape.NoEdge,
		highlightEdge: shape.NoEdge,
	}
}

// Image returns the backing image for display. The editor redraws into
// it; callers must not write to it.
func (e *Editor) Image() *image.RGBA {
	return e.surface.Image()
}

// Width returns the canvas width in pixels.
func (e *Editor) Width() int { return e.surface.Width() }

// Height returns the canvas height in pixels.
func (e *Editor) Height() int { return e.surface.Height() }

// ShapeCount returns the number of committed shapes.
func (e *Editor) ShapeCount() int { return len(e.shapes) }

// Shapes returns the committed shapes in z-order, bottom first.
func (e *Editor) Shapes() []shape.Shape { return e.shapes }

// Selected returns the currently selected shape, or nil.
func (e *Editor) Selected() shape.Shape { return e.selected }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the active tool. Leaving the polygon tool commits a
// pending polygon with enough vertices and discards a shorter one;
// leaving the select tool drops the selection.
func (e *Editor) SetTool(t Tool) {
	if e.tool == ToolPolygon && t != ToolPolygon {
		e.commitPolygon()
	}
	if e.tool == ToolSelect && t != ToolSelect {
		e.clearSelection()
		e.Redraw()
	}
	e.tool = t
	Logger().Debug("tool changed", "tool", t.String())
}

// FillMode returns the active fill mode.
func (e *Editor) FillMode() FillMode { return e.fillMode }

// SetFillMode switches between object fill and flood fill.
func (e *Editor) SetFillMode(m FillMode) { e.fillMode = m }

// EraserMode returns the active eraser mode.
func (e *Editor) EraserMode() EraserMode { return e.eraserMode }

// SetEraserMode switches between object and pixel erasing.
func (e *Editor) SetEraserMode(m EraserMode) { e.eraserMode = m }

// StrokeColor returns the outline color for new shapes.
func (e *Editor) StrokeColor() uint32 { return e.strokeColor }

// SetStrokeColor sets the outline color for new shapes.
func (e *Editor) SetStrokeColor(c uint32) { e.strokeColor = c }

// FillColor returns the interior color used by the fill tool.
func (e *Editor) FillColor() uint32 { return e.fillColor }

// SetFillColor sets the interior color used by the fill tool.
func (e *Editor) SetFillColor(c uint32) { e.fillColor = c }

// Thickness returns the stroke thickness for new shapes.
func (e *Editor) Thickness() int { return e.thickness }

// SetThickness sets the stroke thickness, clamped to at least 1.
func (e *Editor) SetThickness(t int) {
	if t < 1 {
		t = 1
	}
	e.thickness = t
}

// Style returns the stroke style for new shapes.
func (e *Editor) Style() raster.Style { return e.style }

// SetStyle sets the stroke style for new shapes.
func (e *Editor) SetStyle(s raster.Style) { e.style = s }

// EraserRadius returns the pixel eraser radius.
func (e *Editor) EraserRadius() int { return e.eraserRadius }

// SetEraserRadius sets the pixel eraser radius, clamped to at least 1.
func (e *Editor) SetEraserRadius(r int) {
	if r < 1 {
		r = 1
	}
	e.eraserRadius = r
}

// ClearCanvas discards every shape and all interaction state and resets
// the raster to the background color.
func (e *Editor) ClearCanvas() {
	e.shapes = nil
	e.current = nil
	e.polyPoints = nil
	e.eraserStroke = nil
	e.mode = dragNone
	e.clearSelection()
	e.surface.Clear()
	Logger().Info("canvas cleared")
}

// Press begins a pointer interaction at p.
func (e *Editor) Press(p shape.Point, b Button) {
	e.button = b
	e.lastPos = p
	e.highlightShape = nil
	e.highlightEdge = shape.NoEdge

	switch e.tool {
	case ToolLine:
		e.current = shape.NewLine(p, p, e.strokeColor, e.thickness, e.style)
		e.mode = dragCreate
	case ToolRectangle:
		e.current = shape.NewRectangle(p, p, e.strokeColor, e.thickness, e.style)
		e.mode = dragCreate
	case ToolSquare:
		e.current = shape.NewSquare(p, p, e.strokeColor, e.thickness, e.style)
		e.mode = dragCreate
	case ToolCircle:
		e.current = shape.NewCircle(p, p, e.strokeColor, e.thickness, e.style)
		e.mode = dragCreate
	case ToolPolygon:
		e.pressPolygon(p, b)
	case ToolSelect:
		e.pressSelect(p)
	case ToolEraser:
		e.pressEraser(p)
	case ToolFill:
		e.pressFill(p)
	}
}

// pressPolygon collects vertices on primary clicks and commits on a
// secondary click once the chain can close.
func (e *Editor) pressPolygon(p shape.Point, b Button) {
	if b == ButtonSecondary {
		if len(e.polyPoints) >= 3 {
			e.commitPolygon()
		}
		return
	}
	e.polyPoints = append(e.polyPoints, p)
	Logger().Debug("polygon vertex", "count", len(e.polyPoints))
	e.Redraw()
}

// commitPolygon turns the collected vertices into a shape. Fewer than
// three vertices cannot close, so they are discarded.
func (e *Editor) commitPolygon() {
	if len(e.polyPoints) >= 3 {
		pg := shape.NewPolygon(e.polyPoints, e.strokeColor, e.thickness, e.style)
		e.shapes = append(e.shapes, pg)
		Logger().Debug("polygon committed", "vertices", len(e.polyPoints))
	}
	e.polyPoints = nil
	e.Redraw()
}

// pressSelect picks what the drag will manipulate. With no selection,
// the press picks the topmost shape under the pointer. A press with a
// shape already selected checks that shape's handles in priority order,
// control point before edge before body, and deselects on a miss.
func (e *Editor) pressSelect(p shape.Point) {
	if e.selected != nil {
		if cp, ok := e.selected.NearestControlPoint(p); ok {
			e.activeControl = cp
			e.mode = dragControlPoint
			e.Redraw()
			return
		}

		if er, ok := e.selected.(shape.EdgeResizer); ok {
			if edge := er.NearestEdge(p); edge != shape.NoEdge {
				e.activeEdge = edge
				e.highlightShape = er
				e.highlightEdge = edge
				e.mode = dragEdge
				e.Redraw()
				return
			}
		}

		if e.selected.Contains(p) {
			e.mode = dragMove
			e.Redraw()
			return
		}

		e.clearSelection()
		e.Redraw()
		return
	}

	if s := e.shapeAt(p); s != nil {
		e.selected = s
		e.mode = dragMove
		e.Redraw()
		return
	}

	e.clearSelection()
	e.Redraw()
}

// pressEraser removes the topmost shape under p outright, or begins a
// freehand pixel-erase stroke on the live raster.
func (e *Editor) pressEraser(p shape.Point) {
	if e.eraserMode == EraseObject {
		if s := e.shapeAt(p); s != nil {
			e.removeShape(s)
			Logger().Debug("shape erased", "remaining", len(e.shapes))
			e.Redraw()
		}
		return
	}

	e.eraserStroke = shape.NewEraserStroke(e.eraserRadius)
	e.eraserStroke.AddPoint(p)
	e.surface.ErasePixels(p.X, p.Y, e.eraserRadius)
	e.mode = dragErase
}

// pressFill fills the topmost fillable shape under p, or flood-fills the
// raster and records a marker so the fill replays on redraw.
func (e *Editor) pressFill(p shape.Point) {
	if e.fillMode == FillObject {
		for i := len(e.shapes) - 1; i >= 0; i-- {
			s := e.shapes[i]
			if s.CanBeFilled() && s.Contains(p) {
				s.SetFillColor(e.fillColor)
				s.SetFilled(true)
				e.Redraw()
				return
			}
		}
		return
	}

	e.surface.FloodFill(p.X, p.Y, e.fillColor)
	e.shapes = append(e.shapes, shape.NewFloodFillMarker(p, e.fillColor))
	Logger().Debug("flood fill", "x", p.X, "y", p.Y)
}

// Drag continues the interaction at p.
func (e *Editor) Drag(p shape.Point) {
	dx := p.X - e.lastPos.X
	dy := p.Y - e.lastPos.Y

	switch e.mode {
	case dragCreate:
		e.current.SetEndPoint(p)
		e.Redraw()

	case dragMove:
		e.selected.Move(dx, dy)
		e.Redraw()

	case dragControlPoint:
		er, unconstrained := e.selected.(shape.EdgeResizer)
		if e.button == ButtonSecondary && unconstrained {
			er.MoveCorner(e.activeControl, dx, dy)
		} else {
			e.selected.ResizeByPoint(e.activeControl, dx, dy)
		}
		// The handle has moved; track it so the next delta applies to
		// the same handle even when the resize was not a pure translate.
		if cp, ok := e.selected.NearestControlPoint(p); ok {
			e.activeControl = cp
		} else {
			e.activeControl = e.activeControl.Add(dx, dy)
		}
		e.Redraw()

	case dragEdge:
		// A secondary-button drag from an edge moves the whole shape.
		if e.button == ButtonSecondary {
			e.selected.Move(dx, dy)
		} else if er, ok := e.selected.(shape.EdgeResizer); ok {
			er.ResizeByEdge(e.activeEdge, dx, dy)
		}
		e.Redraw()

	case dragErase:
		e.eraserStroke.AddPoint(p)
		e.surface.ErasePixelsLine(e.lastPos.X, e.lastPos.Y, p.X, p.Y, e.eraserRadius)
	}

	e.lastPos = p
}

// Release finishes the interaction at p. New shapes are committed to the
// end of the list, on top of everything drawn before them.
func (e *Editor) Release(p shape.Point) {
	switch e.mode {
	case dragCreate:
		e.current.SetEndPoint(p)
		e.shapes = append(e.shapes, e.current)
		e.current = nil
		Logger().Debug("shape committed", "count", len(e.shapes))
		e.Redraw()

	case dragErase:
		// The raster already carries the erasure; the stroke is kept so
		// it replays on later redraws.
		e.shapes = append(e.shapes, e.eraserStroke)
		e.eraserStroke = nil
	}

	e.mode = dragNone
	e.activeEdge = shape.NoEdge
}

// Redraw repaints the raster from scratch: background, committed shapes
// in z-order, the in-progress preview, then the selection overlays.
func (e *Editor) Redraw() {
	e.surface.Clear()

	for _, s := range e.shapes {
		s.Draw(e.surface)
	}

	if len(e.polyPoints) > 0 {
		preview := shape.NewPolygon(e.polyPoints, e.strokeColor, e.thickness, e.style)
		preview.Draw(e.surface)
		preview.DrawControlPoints(e.surface)
	}

	if e.current != nil {
		e.current.Draw(e.surface)
	}

	if e.selected != nil {
		e.selected.DrawControlPoints(e.surface)
	}

	if e.highlightShape != nil && e.highlightEdge != shape.NoEdge {
		a, b := e.highlightShape.EdgeEndpoints(e.highlightEdge)
		e.surface.DrawLine(a.X, a.Y, b.X, b.Y, raster.Red, raster.StyleDashed, 1)
	}
}

// Resize changes the canvas size, clamped to the supported range. The
// old content is copied into the top-left corner and the shapes are then
// redrawn at their recorded positions.
func (e *Editor) Resize(width, height int) {
	width = clamp(width, MinCanvasSize, MaxCanvasSize)
	height = clamp(height, MinCanvasSize, MaxCanvasSize)

	old := e.surface
	e.surface = raster.New(width, height)
	e.surface.SetClearColor(old.ClearColor())
	e.surface.Clear()
	e.surface.Blit(old)
	e.Redraw()
	Logger().Info("canvas resized", "width", width, "height", height)
}

// ParseSize parses width and height strings for a canvas resize. It
// returns ErrInvalidSize, without touching any state, when either value
// is not a positive integer.
func ParseSize(ws, hs string) (width, height int, err error) {
	width, err = strconv.Atoi(ws)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: width %q", ErrInvalidSize, ws)
	}
	height, err = strconv.Atoi(hs)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: height %q", ErrInvalidSize, hs)
	}
	return width, height, nil
}

// shapeAt returns the topmost shape whose hit-test covers p, or nil.
func (e *Editor) shapeAt(p shape.Point) shape.Shape {
	for i := len(e.shapes) - 1; i >= 0; i-- {
		if e.shapes[i].Contains(p) {
			return e.shapes[i]
		}
	}
	return nil
}

func (e *Editor) removeShape(target shape.Shape) {
	for i, s := range e.shapes {
		if s == target {
			e.shapes = append(e.shapes[:i], e.shapes[i+1:]...)
			return
		}
	}
}

func (e *Editor) clearSelection() {
	e.selected = nil
	e.activeEdge = shape.NoEdge
	e.highlightShape = nil
	e.highlightEdge = shape.NoEdge
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
