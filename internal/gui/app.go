// Package gui provides the native desktop paint window using Fyne.
package gui

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"pigment/internal/export"
	"pigment/pkg/editor"
	"pigment/pkg/raster"
)

// App represents the paint application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	editor     *editor.Editor

	// UI components
	canvasWidget *CanvasWidget
	toolbar      *Toolbar
	statusBar    *StatusBar
	scroll       *container.Scroll
}

// NewApp creates the application around an editor.
func NewApp(ed *editor.Editor) *App {
	a := &App{
		fyneApp: app.New(),
		editor:  ed,
	}

	a.mainWindow = a.fyneApp.NewWindow("Pigment")
	a.mainWindow.Resize(fyne.NewSize(1200, 800))

	return a
}

// Run starts the application.
func (a *App) Run() {
	a.buildUI()
	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.canvasWidget = NewCanvasWidget(a.editor)
	a.toolbar = NewToolbar(a.editor.Width(), a.editor.Height())
	a.statusBar = NewStatusBar()
	a.statusBar.SetSize(a.editor.Width(), a.editor.Height())

	a.toolbar.OnTool = func(t editor.Tool) {
		a.editor.SetTool(t)
		a.statusBar.SetTool(t.String())
		a.canvasWidget.Refresh()
	}
	a.toolbar.OnFillMode = func(m editor.FillMode) {
		a.editor.SetFillMode(m)
	}
	a.toolbar.OnEraserMode = func(m editor.EraserMode) {
		a.editor.SetEraserMode(m)
	}
	a.toolbar.OnStrokeColor = func(c uint32) {
		a.editor.SetStrokeColor(c)
	}
	a.toolbar.OnFillColor = func(c uint32) {
		a.editor.SetFillColor(c)
	}
	a.toolbar.OnThickness = func(t int) {
		a.editor.SetThickness(t)
	}
	a.toolbar.OnStyle = func(s raster.Style) {
		a.editor.SetStyle(s)
	}
	a.toolbar.OnEraserRadius = func(r int) {
		a.editor.SetEraserRadius(r)
	}
	a.toolbar.OnCanvasSize = a.applyCanvasSize
	a.toolbar.OnClear = func() {
		a.editor.ClearCanvas()
		a.canvasWidget.Refresh()
	}
	a.toolbar.OnExportPNG = func() {
		a.exportFile("png", export.PNG)
	}
	a.toolbar.OnExportPDF = func() {
		a.exportFile("pdf", export.PDF)
	}

	a.scroll = container.NewScroll(a.canvasWidget)

	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		a.statusBar.Container(),                    // Bottom
		nil,                                        // Left
		nil,                                        // Right
		a.scroll,                                   // Center
	)

	a.mainWindow.SetContent(content)
}

// applyCanvasSize validates the entered size and resizes the canvas.
// Invalid input is reported without touching the canvas.
func (a *App) applyCanvasSize(ws, hs string) {
	width, height, err := editor.ParseSize(ws, hs)
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	a.editor.Resize(width, height)
	// Resize clamps; reflect the size actually applied.
	a.toolbar.SetCanvasSize(a.editor.Width(), a.editor.Height())
	a.statusBar.SetSize(a.editor.Width(), a.editor.Height())
	a.canvasWidget.Refresh()
}

// exportFile saves the canvas snapshot via a file dialog.
func (a *App) exportFile(ext string, write func(path string, img image.Image) error) {
	dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if writer == nil {
			return // Cancelled
		}
		path := writer.URI().Path()
		writer.Close()

		if err := write(path, a.editor.Image()); err != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", err), a.mainWindow)
		}
	}, a.mainWindow)
	dlg.SetFileName(export.DefaultName(ext))
	dlg.Show()
}
