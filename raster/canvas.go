// Package raster implements a software easel.Canvas over an RGBA image,
// by wrapping rasterx.
//
// Path verbs accumulate in surface coordinates; Fill and Stroke replay
// the accumulator into a rasterx filler or dasher and scan it onto the
// image. The accumulator survives realization, so a Fill followed by a
// Stroke paints the same path twice, which is exactly what the layer
// render pipeline issues for batched shapes.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/easel"
)

var _ easel.Canvas = (*Canvas)(nil)

// pathOp identifies one accumulated path verb.
type pathOp uint8

const (
	opMove pathOp = iota
	opLine
	opQuad
	opCubic
	opClose
)

// pathVerb is one accumulated verb with its coordinates, already in
// translated surface space.
type pathVerb struct {
	op   pathOp
	args [6]float64
}

// Canvas rasterizes onto an *image.RGBA. One scanner is shared between
// the fill and stroke rasterizers; the paint color is pushed into it
// right before each realization.
//
// The Canvas is not safe for concurrent use.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher

	fillColor   color.Color
	strokeColor color.Color
	lineWidth   float64
	font        string

	dx, dy float64
	verbs  []pathVerb
}

// New returns a canvas over a fresh transparent image of the given
// dimensions.
func New(width, height int) *Canvas {
	return NewForRGBA(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewForRGBA returns a canvas that rasterizes into an existing image.
func NewForRGBA(img *image.RGBA) *Canvas {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Canvas{
		img:         img,
		width:       w,
		height:      h,
		scanner:     scanner,
		filler:      rasterx.NewFiller(w, h, scanner),
		dasher:      rasterx.NewDasher(w, h, scanner),
		fillColor:   color.Black,
		strokeColor: color.Black,
		lineWidth:   1,
		font:        easel.DefaultFont,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Image returns the backing image. The canvas keeps rasterizing into it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// SetFillColor implements easel.Canvas. A nil color disables filling.
func (c *Canvas) SetFillColor(col color.Color) { c.fillColor = col }

// SetStrokeColor implements easel.Canvas. A nil color disables stroking.
func (c *Canvas) SetStrokeColor(col color.Color) { c.strokeColor = col }

// SetLineWidth implements easel.Canvas.
func (c *Canvas) SetLineWidth(w float64) { c.lineWidth = w }

// SetFont implements easel.Canvas. The canvas itself draws no text; the
// specification is held for drivers that do.
func (c *Canvas) SetFont(font string) { c.font = font }

// Font returns the current font specification.
func (c *Canvas) Font() string { return c.font }

// ClearRect implements easel.Canvas, resetting the covered pixels to
// transparent. Fractional edges clear the whole pixels they touch.
func (c *Canvas) ClearRect(x, y, width, height float64) {
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height)),
	)
	draw.Draw(c.img, rect, image.Transparent, image.Point{}, draw.Src)
}

// Translate implements easel.Canvas. The offset applies to verbs
// appended afterwards; already accumulated verbs keep their coordinates.
func (c *Canvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}

// BeginPath implements easel.Canvas.
func (c *Canvas) BeginPath() {
	c.verbs = c.verbs[:0]
}

// MoveTo implements easel.Canvas.
func (c *Canvas) MoveTo(x, y float64) {
	c.push(opMove, x+c.dx, y+c.dy)
}

// LineTo implements easel.Canvas.
func (c *Canvas) LineTo(x, y float64) {
	c.push(opLine, x+c.dx, y+c.dy)
}

// QuadTo implements easel.Canvas.
func (c *Canvas) QuadTo(cx, cy, x, y float64) {
	c.push(opQuad, cx+c.dx, cy+c.dy, x+c.dx, y+c.dy)
}

// CubicTo implements easel.Canvas.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.push(opCubic, c1x+c.dx, c1y+c.dy, c2x+c.dx, c2y+c.dy, x+c.dx, y+c.dy)
}

// ClosePath implements easel.Canvas.
func (c *Canvas) ClosePath() {
	c.push(opClose)
}

func (c *Canvas) push(op pathOp, args ...float64) {
	v := pathVerb{op: op}
	copy(v.args[:], args)
	c.verbs = append(c.verbs, v)
}

// Fill implements easel.Canvas, painting the interior of the
// accumulated path with the fill color. An empty accumulator or a nil
// fill color leaves the pixels untouched.
func (c *Canvas) Fill() {
	if len(c.verbs) == 0 || c.fillColor == nil {
		return
	}
	c.filler.Clear()
	c.replay(c.filler)
	c.filler.Stop(false)
	c.scanner.SetColor(c.fillColor)
	c.filler.Draw()
}

// Stroke implements easel.Canvas, outlining the accumulated path with
// the stroke color and line width. An empty accumulator, a nil stroke
// color or a non-positive width leaves the pixels untouched.
func (c *Canvas) Stroke() {
	if len(c.verbs) == 0 || c.strokeColor == nil || c.lineWidth <= 0 {
		return
	}
	c.dasher.Clear()
	c.dasher.SetStroke(
		fixed.Int26_6(c.lineWidth*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap,
		rasterx.Miter, nil, 0,
	)
	c.replay(c.dasher)
	c.dasher.Stop(false)
	c.scanner.SetColor(c.strokeColor)
	c.dasher.Draw()
}

// replay feeds the accumulated verbs to a rasterizer. A MoveTo ends any
// open subpath first; ClosePath joins the subpath back to its start.
func (c *Canvas) replay(a rasterx.Adder) {
	for _, v := range c.verbs {
		switch v.op {
		case opMove:
			a.Stop(false)
			a.Start(toFixedPoint(v.args[0], v.args[1]))
		case opLine:
			a.Line(toFixedPoint(v.args[0], v.args[1]))
		case opQuad:
			a.QuadBezier(
				toFixedPoint(v.args[0], v.args[1]),
				toFixedPoint(v.args[2], v.args[3]),
			)
		case opCubic:
			a.CubeBezier(
				toFixedPoint(v.args[0], v.args[1]),
				toFixedPoint(v.args[2], v.args[3]),
				toFixedPoint(v.args[4], v.args[5]),
			)
		case opClose:
			a.Stop(true)
		}
	}
}

// toFixedPoint converts surface coordinates to rasterx fixed-point.
func toFixedPoint(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return p
}

// EncodePNG encodes the backing image as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the backing image to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, c.img)
}

// Composite paints each canvas's image over dst in argument order.
// Pass one canvas per layer, in ascending level order, to merge a
// board's layer stack into a single image.
func Composite(dst draw.Image, canvases ...*Canvas) {
	for _, c := range canvases {
		if c == nil {
			continue
		}
		draw.Draw(dst, c.img.Bounds(), c.img, image.Point{}, draw.Over)
	}
}
