// Package record provides a Canvas implementation that captures drawing
// calls as typed commands instead of touching pixels.
//
// The command list doubles as a replayable display list and as the
// instrument the package tests use to assert exact call sequences out
// of the render pipeline: which paths were begun, how styles were
// applied, and how many fill and stroke passes a repaint issued.
//
// # Example
//
//	rec := record.New()
//	layer := easel.NewLayer(board, rec)
//	layer.AddShape("rect")
//	layer.Refresh()
//	fmt.Println(rec.Count(record.OpFill)) // fill passes issued
//
// Commands can be replayed onto any other Canvas, e.g. a raster one:
//
//	rec.Replay(rasterCanvas)
package record

import "image/color"

// Op identifies the kind of a recorded command, one per Canvas method.
type Op uint8

const (
	// Paint state
	OpSetFillColor Op = iota
	OpSetStrokeColor
	OpSetLineWidth
	OpSetFont

	// Surface
	OpClearRect
	OpTranslate

	// Path accumulation
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClosePath

	// Realization
	OpFill
	OpStroke
)

// opNames maps Op values to their string representation.
var opNames = [...]string{
	OpSetFillColor:   "SetFillColor",
	OpSetStrokeColor: "SetStrokeColor",
	OpSetLineWidth:   "SetLineWidth",
	OpSetFont:        "SetFont",
	OpClearRect:      "ClearRect",
	OpTranslate:      "Translate",
	OpBeginPath:      "BeginPath",
	OpMoveTo:         "MoveTo",
	OpLineTo:         "LineTo",
	OpQuadTo:         "QuadTo",
	OpCubicTo:        "CubicTo",
	OpClosePath:      "ClosePath",
	OpFill:           "Fill",
	OpStroke:         "Stroke",
}

// String returns the string representation of an Op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands.
type Command interface {
	// Op returns the Op for this command.
	Op() Op
}

// SetFillColorCommand sets the fill paint color.
type SetFillColorCommand struct {
	Color color.Color
}

// Op implements Command.
func (SetFillColorCommand) Op() Op { return OpSetFillColor }

// SetStrokeColorCommand sets the stroke paint color.
type SetStrokeColorCommand struct {
	Color color.Color
}

// Op implements Command.
func (SetStrokeColorCommand) Op() Op { return OpSetStrokeColor }

// SetLineWidthCommand sets the stroke line width.
type SetLineWidthCommand struct {
	Width float64
}

// Op implements Command.
func (SetLineWidthCommand) Op() Op { return OpSetLineWidth }

// SetFontCommand sets the font specification.
type SetFontCommand struct {
	Font string
}

// Op implements Command.
func (SetFontCommand) Op() Op { return OpSetFont }

// ClearRectCommand resets a rectangle to transparent.
type ClearRectCommand struct {
	X, Y, Width, Height float64
}

// Op implements Command.
func (ClearRectCommand) Op() Op { return OpClearRect }

// TranslateCommand shifts the drawing origin.
type TranslateCommand struct {
	Dx, Dy float64
}

// Op implements Command.
func (TranslateCommand) Op() Op { return OpTranslate }

// BeginPathCommand starts a fresh path accumulator.
type BeginPathCommand struct{}

// Op implements Command.
func (BeginPathCommand) Op() Op { return OpBeginPath }

// MoveToCommand starts a new subpath.
type MoveToCommand struct {
	X, Y float64
}

// Op implements Command.
func (MoveToCommand) Op() Op { return OpMoveTo }

// LineToCommand adds a line segment.
type LineToCommand struct {
	X, Y float64
}

// Op implements Command.
func (LineToCommand) Op() Op { return OpLineTo }

// QuadToCommand adds a quadratic Bezier segment.
type QuadToCommand struct {
	CX, CY, X, Y float64
}

// Op implements Command.
func (QuadToCommand) Op() Op { return OpQuadTo }

// CubicToCommand adds a cubic Bezier segment.
type CubicToCommand struct {
	C1X, C1Y, C2X, C2Y, X, Y float64
}

// Op implements Command.
func (CubicToCommand) Op() Op { return OpCubicTo }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Op implements Command.
func (ClosePathCommand) Op() Op { return OpClosePath }

// FillCommand fills the accumulated path.
type FillCommand struct{}

// Op implements Command.
func (FillCommand) Op() Op { return OpFill }

// StrokeCommand strokes the accumulated path.
type StrokeCommand struct{}

// Op implements Command.
func (StrokeCommand) Op() Op { return OpStroke }
