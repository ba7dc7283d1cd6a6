package record

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/easel"
)

var _ easel.Canvas = (*Canvas)(nil)

// Canvas records every call made to it as a Command, in call order. It
// implements easel.Canvas and never touches pixels, so the "empty path"
// no-op contract for Fill and Stroke holds trivially; the calls are
// still recorded verbatim.
//
// The Canvas is not safe for concurrent use.
type Canvas struct {
	commands []Command
}

// New returns an empty recording canvas.
func New() *Canvas {
	return &Canvas{commands: make([]Command, 0, 64)}
}

// Commands returns the recorded commands in call order. The slice is the
// live backing store; Reset invalidates it.
func (c *Canvas) Commands() []Command {
	return c.commands
}

// Len returns the number of recorded commands.
func (c *Canvas) Len() int {
	return len(c.commands)
}

// At returns the i-th recorded command, or nil when i is out of range.
func (c *Canvas) At(i int) Command {
	if i < 0 || i >= len(c.commands) {
		return nil
	}
	return c.commands[i]
}

// Ops returns just the Op of each recorded command, in call order.
// Convenient for order assertions.
func (c *Canvas) Ops() []Op {
	ops := make([]Op, len(c.commands))
	for i, cmd := range c.commands {
		ops[i] = cmd.Op()
	}
	return ops
}

// Count returns how many recorded commands have the given Op.
func (c *Canvas) Count(op Op) int {
	n := 0
	for _, cmd := range c.commands {
		if cmd.Op() == op {
			n++
		}
	}
	return n
}

// Reset discards all recorded commands.
func (c *Canvas) Reset() {
	c.commands = c.commands[:0]
}

// String renders the command list one call per line, for debugging and
// test failure output.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, cmd := range c.commands {
		switch v := cmd.(type) {
		case SetFillColorCommand:
			fmt.Fprintf(&b, "SetFillColor(%v)\n", v.Color)
		case SetStrokeColorCommand:
			fmt.Fprintf(&b, "SetStrokeColor(%v)\n", v.Color)
		case SetLineWidthCommand:
			fmt.Fprintf(&b, "SetLineWidth(%g)\n", v.Width)
		case SetFontCommand:
			fmt.Fprintf(&b, "SetFont(%q)\n", v.Font)
		case ClearRectCommand:
			fmt.Fprintf(&b, "ClearRect(%g, %g, %g, %g)\n", v.X, v.Y, v.Width, v.Height)
		case TranslateCommand:
			fmt.Fprintf(&b, "Translate(%g, %g)\n", v.Dx, v.Dy)
		case MoveToCommand:
			fmt.Fprintf(&b, "MoveTo(%g, %g)\n", v.X, v.Y)
		case LineToCommand:
			fmt.Fprintf(&b, "LineTo(%g, %g)\n", v.X, v.Y)
		case QuadToCommand:
			fmt.Fprintf(&b, "QuadTo(%g, %g, %g, %g)\n", v.CX, v.CY, v.X, v.Y)
		case CubicToCommand:
			fmt.Fprintf(&b, "CubicTo(%g, %g, %g, %g, %g, %g)\n",
				v.C1X, v.C1Y, v.C2X, v.C2Y, v.X, v.Y)
		default:
			fmt.Fprintf(&b, "%s\n", cmd.Op())
		}
	}
	return b.String()
}

// Replay issues every recorded command against dst in order.
func (c *Canvas) Replay(dst easel.Canvas) {
	for _, cmd := range c.commands {
		switch v := cmd.(type) {
		case SetFillColorCommand:
			dst.SetFillColor(v.Color)
		case SetStrokeColorCommand:
			dst.SetStrokeColor(v.Color)
		case SetLineWidthCommand:
			dst.SetLineWidth(v.Width)
		case SetFontCommand:
			dst.SetFont(v.Font)
		case ClearRectCommand:
			dst.ClearRect(v.X, v.Y, v.Width, v.Height)
		case TranslateCommand:
			dst.Translate(v.Dx, v.Dy)
		case BeginPathCommand:
			dst.BeginPath()
		case MoveToCommand:
			dst.MoveTo(v.X, v.Y)
		case LineToCommand:
			dst.LineTo(v.X, v.Y)
		case QuadToCommand:
			dst.QuadTo(v.CX, v.CY, v.X, v.Y)
		case CubicToCommand:
			dst.CubicTo(v.C1X, v.C1Y, v.C2X, v.C2Y, v.X, v.Y)
		case ClosePathCommand:
			dst.ClosePath()
		case FillCommand:
			dst.Fill()
		case StrokeCommand:
			dst.Stroke()
		}
	}
}

// SetFillColor implements easel.Canvas.
func (c *Canvas) SetFillColor(col color.Color) {
	c.commands = append(c.commands, SetFillColorCommand{Color: col})
}

// SetStrokeColor implements easel.Canvas.
func (c *Canvas) SetStrokeColor(col color.Color) {
	c.commands = append(c.commands, SetStrokeColorCommand{Color: col})
}

// SetLineWidth implements easel.Canvas.
func (c *Canvas) SetLineWidth(w float64) {
	c.commands = append(c.commands, SetLineWidthCommand{Width: w})
}

// SetFont implements easel.Canvas.
func (c *Canvas) SetFont(font string) {
	c.commands = append(c.commands, SetFontCommand{Font: font})
}

// ClearRect implements easel.Canvas.
func (c *Canvas) ClearRect(x, y, width, height float64) {
	c.commands = append(c.commands, ClearRectCommand{X: x, Y: y, Width: width, Height: height})
}

// Translate implements easel.Canvas.
func (c *Canvas) Translate(dx, dy float64) {
	c.commands = append(c.commands, TranslateCommand{Dx: dx, Dy: dy})
}

// BeginPath implements easel.Canvas.
func (c *Canvas) BeginPath() {
	c.commands = append(c.commands, BeginPathCommand{})
}

// MoveTo implements easel.Canvas.
func (c *Canvas) MoveTo(x, y float64) {
	c.commands = append(c.commands, MoveToCommand{X: x, Y: y})
}

// LineTo implements easel.Canvas.
func (c *Canvas) LineTo(x, y float64) {
	c.commands = append(c.commands, LineToCommand{X: x, Y: y})
}

// QuadTo implements easel.Canvas.
func (c *Canvas) QuadTo(cx, cy, x, y float64) {
	c.commands = append(c.commands, QuadToCommand{CX: cx, CY: cy, X: x, Y: y})
}

// CubicTo implements easel.Canvas.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.commands = append(c.commands, CubicToCommand{
		C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y,
	})
}

// ClosePath implements easel.Canvas.
func (c *Canvas) ClosePath() {
	c.commands = append(c.commands, ClosePathCommand{})
}

// Fill implements easel.Canvas.
func (c *Canvas) Fill() {
	c.commands = append(c.commands, FillCommand{})
}

// Stroke implements easel.Canvas.
func (c *Canvas) Stroke() {
	c.commands = append(c.commands, StrokeCommand{})
}
