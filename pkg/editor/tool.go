package editor

// Tool identifies the active drawing or manipulation tool.
type Tool int

const (
	ToolLine Tool = iota
	ToolRectangle
	ToolSquare
	ToolCircle
	ToolPolygon
	ToolSelect
	ToolEraser
	ToolFill
)

func (t Tool) String() string {
	switch t {
	case ToolLine:
		return "Line"
	case ToolRectangle:
		return "Rectangle"
	case ToolSquare:
		return "Square"
	case ToolCircle:
		return "Circle"
	case ToolPolygon:
		return "Polygon"
	case ToolSelect:
		return "Select"
	case ToolEraser:
		return "Eraser"
	case ToolFill:
		return "Fill"
	default:
		return "Unknown"
	}
}

// FillMode selects how the fill tool applies color.
type FillMode int

const (
	// FillObject fills the topmost fillable shape under the click.
	FillObject FillMode = iota
	// FillFlood records a flood-fill marker at the click point.
	FillFlood
)

// EraserMode selects how the eraser tool removes content.
type EraserMode int

const (
	// EraseObject removes the topmost shape under the click outright.
	EraseObject EraserMode = iota
	// ErasePixel erases raster pixels freehand along the drag path.
	ErasePixel
)

// Button identifies which pointer button started an interaction.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)
