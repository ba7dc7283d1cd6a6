package easel

import "github.com/gogpu/easel/geom"

// LayerOption configures a Layer during creation.
// Use functional options to customize layer behavior.
//
// Example:
//
//	// Default layer: fill, stroke and thin correction enabled
//	layer := easel.NewLayer(host, canvas)
//
//	// Outline-only overlay above the default level
//	layer := easel.NewLayer(host, canvas,
//		easel.WithFill(false),
//		easel.WithLevel(10),
//	)
type LayerOption func(*layerOptions)

// layerOptions holds optional configuration for Layer creation.
type layerOptions struct {
	id       string
	level    int
	fill     bool
	stroke   bool
	thin     bool
	disabled bool
	style    Style
	ids      IDSource
}

// defaultLayerOptions returns the default layer options: fill, stroke
// and thin sub-pixel correction all enabled, UUID identifiers.
func defaultLayerOptions() layerOptions {
	return layerOptions{
		fill:   true,
		stroke: true,
		thin:   true,
		ids:    uuidSource{},
	}
}

// WithID sets the layer identifier. When absent, the layer generates one
// from its ID source.
func WithID(id string) LayerOption {
	return func(o *layerOptions) {
		o.id = id
	}
}

// WithLevel sets the layer's z-ordering hint. Orchestrators paint layers
// in ascending level order; the layer itself does not interpret it.
func WithLevel(level int) LayerOption {
	return func(o *layerOptions) {
		o.level = level
	}
}

// WithFill controls whether repaints fill batched paths. Enabled by
// default.
func WithFill(fill bool) LayerOption {
	return func(o *layerOptions) {
		o.fill = fill
	}
}

// WithStroke controls whether repaints stroke batched paths. Enabled by
// default.
func WithStroke(stroke bool) LayerOption {
	return func(o *layerOptions) {
		o.stroke = stroke
	}
}

// WithThin controls the half-pixel origin translation that keeps
// one-unit strokes crisp on pixel boundaries. Enabled by default.
func WithThin(thin bool) LayerOption {
	return func(o *layerOptions) {
		o.thin = thin
	}
}

// WithDisabled sets the layer's disabled gate. Orchestrators skip
// disabled layers when compositing.
func WithDisabled(disabled bool) LayerOption {
	return func(o *layerOptions) {
		o.disabled = disabled
	}
}

// WithStyle sets the layer default style, used for every shape that
// carries no override of its own.
//
// Example:
//
//	layer := easel.NewLayer(host, canvas,
//		easel.WithStyle(easel.Style{Stroke: color.White, LineWidth: 2}),
//	)
func WithStyle(style Style) LayerOption {
	return func(o *layerOptions) {
		o.style = style
	}
}

// WithIDSource sets the generator for shape and layer identifiers.
// Tests inject a deterministic source here.
func WithIDSource(ids IDSource) LayerOption {
	return func(o *layerOptions) {
		if ids != nil {
			o.ids = ids
		}
	}
}

// ShapeOption configures a Shape record built by CreateShape or
// AddShape.
//
// Example:
//
//	layer.AddShape("rect",
//		easel.ShapeAt(40, 25),
//		easel.ShapeStyle(easel.Style{Fill: color.White}),
//	)
type ShapeOption func(*Shape)

// ShapeID sets the shape identifier. When absent, the layer generates
// one from its ID source.
func ShapeID(id string) ShapeOption {
	return func(s *Shape) {
		s.ID = id
	}
}

// ShapeType sets the driver key. CreateShape falls back to
// DefaultShapeType when no type is set.
func ShapeType(typ string) ShapeOption {
	return func(s *Shape) {
		s.Type = typ
	}
}

// ShapeStyle attaches a per-shape paint override. A non-zero style takes
// the shape out of the layer's shared render batch.
func ShapeStyle(style Style) ShapeOption {
	return func(s *Shape) {
		s.Style = &style
	}
}

// ShapeAt sets the shape's anchor point.
func ShapeAt(x, y float64) ShapeOption {
	return func(s *Shape) {
		s.Point = &geom.Point{X: x, Y: y}
	}
}

// ShapeGeom sets the driver-owned geometry payload.
func ShapeGeom(g any) ShapeOption {
	return func(s *Shape) {
		s.Geom = g
	}
}

// ShapeLocked excludes the shape from hit-testing while leaving it
// rendered.
func ShapeLocked() ShapeOption {
	return func(s *Shape) {
		s.Locked = true
	}
}

// ShapeDisabled excludes the shape from rendering and hit-testing.
func ShapeDisabled() ShapeOption {
	return func(s *Shape) {
		s.Disabled = true
	}
}
