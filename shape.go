package easel

import "github.com/gogpu/easel/geom"

// DefaultShapeType is the driver key assigned to shapes created without
// an explicit type.
const DefaultShapeType = "circle"

// Shape is one drawable record owned by a Layer. It is data-only: every
// behavior (drawing, hit-testing, geometry math) lives in the Driver
// registered for its Type.
//
// Shapes render and hit-test in insertion order; later shapes paint over
// earlier ones. A record belongs to exactly one layer at a time.
type Shape struct {
	// ID uniquely identifies the shape within its layer. Layers assign
	// one at creation when the caller leaves it empty.
	ID string

	// Type selects the driver that interprets this shape. Empty types
	// are replaced with DefaultShapeType at creation. A type with no
	// registered driver makes the shape unrenderable and unhittable,
	// which is not an error.
	Type string

	// LayerID is a non-owning back-reference to the layer that created
	// the shape. It is set once and never mutated afterward.
	LayerID string

	// Disabled excludes the shape from rendering and hit-testing.
	Disabled bool

	// Locked excludes the shape from hit-testing only. A locked shape
	// still renders.
	Locked bool

	// Style carries per-shape paint overrides. nil, or a style that
	// overrides nothing, means the layer default style applies and the
	// shape joins the shared render batch.
	Style *Style

	// Point is an optional anchor position. Bounds aggregation prefers
	// it over the driver rectangle when present.
	Point *geom.Point

	// Geom is the driver-owned geometry payload. The layer core never
	// interprets it.
	Geom any
}

// styled reports whether the shape carries an effective style override
// and therefore interrupts the default-style render batch.
func (s *Shape) styled() bool {
	return s.Style != nil && !s.Style.IsZero()
}
