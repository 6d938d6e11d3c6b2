package gui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pigment/pkg/editor"
	"pigment/pkg/raster"
)

// colorSwatch is a tappable square of a single color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// paletteColors is the set offered by the stroke and fill swatches.
var paletteColors = []uint32{
	raster.Black,
	raster.Red,
	raster.Green,
	raster.Blue,
	raster.Yellow,
	raster.Orange,
	raster.Magenta,
	raster.Cyan,
	raster.Pink,
	raster.Gray,
}

// Toolbar provides the tool, style and canvas controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnTool         func(t editor.Tool)
	OnFillMode     func(m editor.FillMode)
	OnEraserMode   func(m editor.EraserMode)
	OnStrokeColor  func(c uint32)
	OnFillColor    func(c uint32)
	OnThickness    func(t int)
	OnStyle        func(s raster.Style)
	OnEraserRadius func(r int)
	OnCanvasSize   func(ws, hs string)
	OnClear        func()
	OnExportPNG    func()
	OnExportPDF    func()

	// Components
	toolSelect  *widget.Select
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
}

var toolNames = []string{"Line", "Rectangle", "Square", "Circle", "Polygon", "Select", "Eraser", "Fill"}

var toolByName = map[string]editor.Tool{
	"Line":      editor.ToolLine,
	"Rectangle": editor.ToolRectangle,
	"Square":    editor.ToolSquare,
	"Circle":    editor.ToolCircle,
	"Polygon":   editor.ToolPolygon,
	"Select":    editor.ToolSelect,
	"Eraser":    editor.ToolEraser,
	"Fill":      editor.ToolFill,
}

// NewToolbar creates the toolbar with default selections.
func NewToolbar(defaultWidth, defaultHeight int) *Toolbar {
	t := &Toolbar{}
	t.build(defaultWidth, defaultHeight)
	return t
}

func (t *Toolbar) build(defaultWidth, defaultHeight int) {
	t.toolSelect = widget.NewSelect(toolNames, func(name string) {
		if t.OnTool != nil {
			t.OnTool(toolByName[name])
		}
	})
	t.toolSelect.SetSelected("Line")

	styleSelect := widget.NewSelect([]string{"Solid", "Dashed", "Dotted"}, func(name string) {
		if t.OnStyle == nil {
			return
		}
		switch name {
		case "Dashed":
			t.OnStyle(raster.StyleDashed)
		case "Dotted":
			t.OnStyle(raster.StyleDotted)
		default:
			t.OnStyle(raster.StyleSolid)
		}
	})
	styleSelect.SetSelected("Solid")

	fillModeSelect := widget.NewSelect([]string{"Fill object", "Flood fill"}, func(name string) {
		if t.OnFillMode == nil {
			return
		}
		if name == "Flood fill" {
			t.OnFillMode(editor.FillFlood)
		} else {
			t.OnFillMode(editor.FillObject)
		}
	})
	fillModeSelect.SetSelected("Fill object")

	eraserModeSelect := widget.NewSelect([]string{"Erase object", "Erase pixels"}, func(name string) {
		if t.OnEraserMode == nil {
			return
		}
		if name == "Erase pixels" {
			t.OnEraserMode(editor.ErasePixel)
		} else {
			t.OnEraserMode(editor.EraseObject)
		}
	})
	eraserModeSelect.SetSelected("Erase object")

	strokeSwatches := t.swatchRow(func(c uint32) {
		if t.OnStrokeColor != nil {
			t.OnStrokeColor(c)
		}
	})
	fillSwatches := t.swatchRow(func(c uint32) {
		if t.OnFillColor != nil {
			t.OnFillColor(c)
		}
	})

	thicknessSlider := widget.NewSlider(1, 10)
	thicknessSlider.SetValue(editor.DefaultThickness)
	thicknessSlider.OnChanged = func(v float64) {
		if t.OnThickness != nil {
			t.OnThickness(int(v))
		}
	}

	radiusSlider := widget.NewSlider(5, 50)
	radiusSlider.SetValue(editor.DefaultEraserRadius)
	radiusSlider.OnChanged = func(v float64) {
		if t.OnEraserRadius != nil {
			t.OnEraserRadius(int(v))
		}
	}

	t.widthEntry = widget.NewEntry()
	t.widthEntry.SetText(strconv.Itoa(defaultWidth))
	t.heightEntry = widget.NewEntry()
	t.heightEntry.SetText(strconv.Itoa(defaultHeight))

	presets := map[string][2]int{
		"800 × 600":   {800, 600},
		"1024 × 768":  {1024, 768},
		"1280 × 1024": {1280, 1024},
	}
	presetSelect := widget.NewSelect([]string{"800 × 600", "1024 × 768", "1280 × 1024", "Custom"}, func(name string) {
		size, ok := presets[name]
		if !ok {
			return // Custom: type into the entries instead
		}
		t.widthEntry.SetText(strconv.Itoa(size[0]))
		t.heightEntry.SetText(strconv.Itoa(size[1]))
		if t.OnCanvasSize != nil {
			t.OnCanvasSize(t.widthEntry.Text, t.heightEntry.Text)
		}
	})
	presetSelect.PlaceHolder = "Preset"
	applyBtn := widget.NewButton("Apply", func() {
		if t.OnCanvasSize != nil {
			t.OnCanvasSize(t.widthEntry.Text, t.heightEntry.Text)
		}
	})

	clearBtn := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() {
		if t.OnClear != nil {
			t.OnClear()
		}
	})

	pngBtn := widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() {
		if t.OnExportPNG != nil {
			t.OnExportPNG()
		}
	})
	pdfBtn := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
		if t.OnExportPDF != nil {
			t.OnExportPDF()
		}
	})

	sliderBox := func(s *widget.Slider) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 35)), s)
	}

	topRow := container.NewHBox(
		widget.NewLabel("Tool:"),
		t.toolSelect,
		widget.NewSeparator(),
		widget.NewLabel("Style:"),
		styleSelect,
		widget.NewLabel("Width:"),
		sliderBox(thicknessSlider),
		widget.NewSeparator(),
		fillModeSelect,
		eraserModeSelect,
		widget.NewLabel("Radius:"),
		sliderBox(radiusSlider),
	)

	sizeBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(60, 36)), t.widthEntry, t.heightEntry)

	bottomRow := container.NewHBox(
		widget.NewLabel("Stroke:"),
		strokeSwatches,
		widget.NewSeparator(),
		widget.NewLabel("Fill:"),
		fillSwatches,
		widget.NewSeparator(),
		widget.NewLabel("Canvas:"),
		presetSelect,
		sizeBox,
		applyBtn,
		widget.NewSeparator(),
		clearBtn,
		pngBtn,
		pdfBtn,
	)

	t.container = container.NewVBox(topRow, bottomRow)
}

func (t *Toolbar) swatchRow(tapped func(uint32)) *fyne.Container {
	row := container.NewHBox()
	for _, c := range paletteColors {
		packed := c
		row.Add(newColorSwatch(raster.ToColor(packed), func(color.Color) {
			tapped(packed)
		}))
	}
	return row
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// SetCanvasSize updates the size entries, e.g. after a clamped resize.
func (t *Toolbar) SetCanvasSize(width, height int) {
	t.widthEntry.SetText(strconv.Itoa(width))
	t.heightEntry.SetText(strconv.Itoa(height))
}

// StatusBar shows the active tool and canvas dimensions.
type StatusBar struct {
	container *fyne.Container
	toolLabel *widget.Label
	sizeLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		toolLabel: widget.NewLabel("Line"),
		sizeLabel: widget.NewLabel(""),
	}

	s.container = container.NewHBox(
		s.toolLabel,
		widget.NewSeparator(),
		s.sizeLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetTool updates the tool display.
func (s *StatusBar) SetTool(name string) {
	s.toolLabel.SetText(name)
}

// SetSize updates the canvas size display.
func (s *StatusBar) SetSize(width, height int) {
	s.sizeLabel.SetText(strconv.Itoa(width) + " × " + strconv.Itoa(height))
}
