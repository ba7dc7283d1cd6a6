package easel

import "image/color"

// Canvas is the rendering-surface contract consumed by a Layer and by
// shape drivers.
//
// A Canvas keeps two kinds of mutable state: paint state (fill color,
// stroke color, line width, font) and a path accumulator. Path verbs
// append to the accumulator; Fill and Stroke realize the accumulated
// path with the current paint state. Filling or stroking an empty
// accumulator must leave the pixels untouched.
//
// Canvases are NOT thread-safe. Each canvas should be used from a single
// goroutine, matching the single-threaded Layer model.
//
// Implementations in this module: raster.Canvas (software rasterizer)
// and record.Canvas (command capture for tests and replay).
type Canvas interface {
	// SetFillColor sets the paint color used by Fill.
	SetFillColor(c color.Color)

	// SetStrokeColor sets the paint color used by Stroke.
	SetStrokeColor(c color.Color)

	// SetLineWidth sets the stroke width in surface units.
	SetLineWidth(w float64)

	// SetFont sets the font specification used for text, e.g.
	// "normal 10px arial". The canvas stores it as paint state; text
	// drivers interpret it.
	SetFont(font string)

	// ClearRect resets the pixels of the given rectangle to transparent.
	ClearRect(x, y, width, height float64)

	// Translate shifts the origin of subsequent path coordinates by
	// (dx, dy). Translations accumulate.
	Translate(dx, dy float64)

	// BeginPath discards the path accumulator and starts a new one.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a line from the current point to (x, y).
	LineTo(x, y float64)

	// QuadTo adds a quadratic Bezier curve with control point (cx, cy)
	// ending at (x, y).
	QuadTo(cx, cy, x, y float64)

	// CubicTo adds a cubic Bezier curve with control points (c1x, c1y)
	// and (c2x, c2y) ending at (x, y).
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)

	// ClosePath closes the current subpath.
	ClosePath()

	// Fill paints the interior of the accumulated path with the fill
	// color. The accumulator is preserved so a Stroke may follow.
	Fill()

	// Stroke outlines the accumulated path with the stroke color and
	// line width. The accumulator is preserved.
	Stroke()
}
