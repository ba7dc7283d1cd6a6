package record

import (
	"image/color"
	"reflect"
	"slices"
	"strings"
	"testing"
)

// drawAll issues one call of every kind against the canvas.
func drawAll(c *Canvas) {
	c.SetFillColor(color.White)
	c.SetStrokeColor(color.Black)
	c.SetLineWidth(2)
	c.SetFont("normal 10px arial")
	c.ClearRect(0, 0, 100, 50)
	c.Translate(-0.5, -0.5)
	c.BeginPath()
	c.MoveTo(1, 2)
	c.LineTo(3, 4)
	c.QuadTo(5, 6, 7, 8)
	c.CubicTo(9, 10, 11, 12, 13, 14)
	c.ClosePath()
	c.Fill()
	c.Stroke()
}

func TestCanvasRecordsEveryCall(t *testing.T) {
	c := New()
	drawAll(c)

	want := []Op{
		OpSetFillColor, OpSetStrokeColor, OpSetLineWidth, OpSetFont,
		OpClearRect, OpTranslate, OpBeginPath, OpMoveTo, OpLineTo,
		OpQuadTo, OpCubicTo, OpClosePath, OpFill, OpStroke,
	}
	if got := c.Ops(); !slices.Equal(got, want) {
		t.Errorf("Ops() = %v, want %v", got, want)
	}
	if c.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(want))
	}
}

func TestCanvasAt(t *testing.T) {
	c := New()
	c.MoveTo(1, 2)

	got, ok := c.At(0).(MoveToCommand)
	if !ok || got.X != 1 || got.Y != 2 {
		t.Errorf("At(0) = %v, want MoveTo(1, 2)", c.At(0))
	}
	if c.At(-1) != nil {
		t.Errorf("At(-1) = %v, want nil", c.At(-1))
	}
	if c.At(1) != nil {
		t.Errorf("At(1) = %v, want nil", c.At(1))
	}
}

func TestCanvasCount(t *testing.T) {
	c := New()
	c.Fill()
	c.Stroke()
	c.Fill()

	if got := c.Count(OpFill); got != 2 {
		t.Errorf("Count(OpFill) = %d, want 2", got)
	}
	if got := c.Count(OpStroke); got != 1 {
		t.Errorf("Count(OpStroke) = %d, want 1", got)
	}
	if got := c.Count(OpClearRect); got != 0 {
		t.Errorf("Count(OpClearRect) = %d, want 0", got)
	}
}

func TestCanvasReset(t *testing.T) {
	c := New()
	drawAll(c)

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", c.Len())
	}

	c.Fill()
	if c.Len() != 1 {
		t.Errorf("Len() after recording again = %d, want 1", c.Len())
	}
}

func TestCanvasString(t *testing.T) {
	c := New()
	c.ClearRect(0, 0, 100, 50)
	c.BeginPath()
	c.MoveTo(1.5, 2)
	c.SetFont("bold 12px mono")
	c.Fill()

	got := c.String()
	want := []string{
		"ClearRect(0, 0, 100, 50)",
		"BeginPath",
		"MoveTo(1.5, 2)",
		`SetFont("bold 12px mono")`,
		"Fill",
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != len(want) {
		t.Fatalf("String() = %q, want %d lines", got, len(want))
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

// TestReplay tests that replaying onto a second recorder reproduces the
// command list exactly.
func TestReplay(t *testing.T) {
	src := New()
	drawAll(src)

	dst := New()
	src.Replay(dst)

	if !reflect.DeepEqual(src.Commands(), dst.Commands()) {
		t.Errorf("replayed commands differ:\nsrc:\n%sdst:\n%s", src, dst)
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpSetFillColor, "SetFillColor"},
		{OpClearRect, "ClearRect"},
		{OpBeginPath, "BeginPath"},
		{OpCubicTo, "CubicTo"},
		{OpStroke, "Stroke"},
		{Op(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
