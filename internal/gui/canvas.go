package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"pigment/pkg/editor"
	"pigment/pkg/shape"
)

// CanvasWidget displays the editor's raster and forwards pointer events
// to it. The widget never draws anything itself; every visual change
// goes through the editor and comes back as a repainted raster.
type CanvasWidget struct {
	widget.BaseWidget

	editor *editor.Editor
	img    *canvas.Image

	// Pressed button, carried from MouseDown through the drag since
	// fyne.DragEvent does not identify the button.
	button  Button
	pressed bool

	// OnChanged fires after any pointer interaction so the surrounding
	// UI can update labels.
	OnChanged func()
}

type Button = editor.Button

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)

// NewCanvasWidget creates a canvas widget over the editor.
func NewCanvasWidget(ed *editor.Editor) *CanvasWidget {
	w := &CanvasWidget{editor: ed}
	w.img = canvas.NewImageFromImage(ed.Image())
	w.img.FillMode = canvas.ImageFillOriginal
	w.img.ScaleMode = canvas.ImageScalePixels
	w.ExtendBaseWidget(w)
	return w
}

// Refresh re-blits the editor's raster. Call after any editor mutation
// made outside a pointer event (tool changes, clear, resize).
func (w *CanvasWidget) Refresh() {
	w.img.Image = w.editor.Image()
	w.img.Refresh()
	w.BaseWidget.Refresh()
}

func (w *CanvasWidget) position(p fyne.Position) shape.Point {
	return shape.Pt(int(p.X), int(p.Y))
}

func (w *CanvasWidget) notify() {
	if w.OnChanged != nil {
		w.OnChanged()
	}
}

func (w *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	w.button = editor.ButtonPrimary
	if e.Button == desktop.MouseButtonSecondary {
		w.button = editor.ButtonSecondary
	}
	w.pressed = true
	w.editor.Press(w.position(e.Position), w.button)
	w.Refresh()
	w.notify()
}

func (w *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	if !w.pressed {
		return
	}
	w.pressed = false
	w.editor.Release(w.position(e.Position))
	w.Refresh()
	w.notify()
}

func (w *CanvasWidget) Dragged(e *fyne.DragEvent) {
	if !w.pressed {
		return
	}
	w.editor.Drag(w.position(e.Position))
	w.Refresh()
}

// DragEnd is a no-op: Release runs on MouseUp, which carries the final
// pointer position.
func (w *CanvasWidget) DragEnd() {}

func (w *CanvasWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *CanvasWidget) MouseOut()                      {}
func (w *CanvasWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	return &canvasRenderer{widget: w}
}

type canvasRenderer struct {
	widget *CanvasWidget
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.img}
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.widget.img.Resize(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.widget.editor.Width()), float32(r.widget.editor.Height()))
}

func (r *canvasRenderer) Refresh() {
	canvas.Refresh(r.widget)
}

func (r *canvasRenderer) Destroy() {}
