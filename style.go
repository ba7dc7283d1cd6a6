package easel

import "image/color"

// Built-in paint defaults, used when neither the shape nor its layer
// overrides a field.
const (
	// DefaultLineWidth is the stroke width applied when no style sets
	// one.
	DefaultLineWidth = 1.0

	// DefaultFont is the font specification applied when no style sets
	// one.
	DefaultFont = "normal 10px arial"
)

// Style carries the paint overrides a shape or layer may declare. The
// zero value of every field means "unset": nil colors, zero width and
// the empty font string resolve to the built-in defaults (black fill,
// black stroke, width 1, DefaultFont) when the style is applied.
type Style struct {
	// Fill is the interior paint color.
	Fill color.Color

	// Stroke is the outline paint color.
	Stroke color.Color

	// LineWidth is the outline width in surface units. Values <= 0
	// inherit.
	LineWidth float64

	// Font is the text font specification, e.g. "normal 10px arial".
	Font string
}

// IsZero reports whether no field of the style is set, i.e. the style
// overrides nothing.
func (s Style) IsZero() bool {
	return s.Fill == nil && s.Stroke == nil && s.LineWidth <= 0 && s.Font == ""
}

// overlay returns s with every unset field filled from next.
func (s Style) overlay(next Style) Style {
	if s.Fill == nil {
		s.Fill = next.Fill
	}
	if s.Stroke == nil {
		s.Stroke = next.Stroke
	}
	if s.LineWidth <= 0 {
		s.LineWidth = next.LineWidth
	}
	if s.Font == "" {
		s.Font = next.Font
	}
	return s
}

// resolveStyle fills the unset fields of a style with the built-in
// defaults. A nil style resolves to the defaults alone. The result
// always has non-nil colors, a positive width and a non-empty font.
//
// Resolution is single-tier: a shape override's absent fields fall back
// to the built-in defaults directly, never to the layer default style.
func resolveStyle(s *Style) Style {
	var eff Style
	if s != nil {
		eff = *s
	}
	return eff.overlay(Style{
		Fill:      color.Black,
		Stroke:    color.Black,
		LineWidth: DefaultLineWidth,
		Font:      DefaultFont,
	})
}

// applyStyle pushes a resolved style into the canvas paint state.
func applyStyle(c Canvas, s Style) {
	c.SetFillColor(s.Fill)
	c.SetStrokeColor(s.Stroke)
	c.SetLineWidth(s.LineWidth)
	c.SetFont(s.Font)
}
