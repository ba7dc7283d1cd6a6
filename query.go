package easel

import "github.com/gogpu/easel/geom"

// ShapesAt returns the shapes containing point p, in sequence order.
//
// Disabled shapes, locked shapes and shapes of unregistered types never
// hit, even when their geometry contains p. A nil result is the "none"
// sentinel; callers distinguish "no hit" from "hits" by nilness alone.
func (l *Layer) ShapesAt(p geom.Point) []*Shape {
	l.mustLive("ShapesAt")
	drivers := l.host.Drivers()
	var hits []*Shape
	for _, s := range l.shapes {
		if s.Disabled || s.Locked {
			continue
		}
		d, ok := drivers.Get(s.Type)
		if !ok {
			continue
		}
		if d.Contains(s, p.X, p.Y) {
			hits = append(hits, s)
		}
	}
	return hits
}

// targets resolves refs to shape records, skipping unresolvable
// references. No refs means every shape in the layer.
func (l *Layer) targets(refs []ShapeRef) []*Shape {
	if len(refs) == 0 {
		return l.shapes
	}
	ts := make([]*Shape, 0, len(refs))
	for _, ref := range refs {
		if s := l.GetShape(ref); s != nil {
			ts = append(ts, s)
		}
	}
	return ts
}

// Adjust rescales the cached geometry of the referenced shapes (all
// shapes when no refs are given) for the current camera ratio. At ratio
// 1 no correction is needed and no driver is called.
func (l *Layer) Adjust(refs ...ShapeRef) {
	l.mustLive("Adjust")
	cam := l.host.Camera()
	if cam.Ratio == 1 {
		return
	}
	drivers := l.host.Drivers()
	for _, s := range l.targets(refs) {
		if d, ok := drivers.Get(s.Type); ok {
			d.Adjust(s, cam)
		}
	}
}

// Move translates the referenced shapes (all shapes when no refs are
// given) by (dx, dy) surface units. Shapes of unregistered types stay
// put.
func (l *Layer) Move(dx, dy float64, refs ...ShapeRef) {
	l.mustLive("Move")
	drivers := l.host.Drivers()
	for _, s := range l.targets(refs) {
		if d, ok := drivers.Get(s.Type); ok {
			d.Move(s, dx, dy)
		}
	}
}

// MoveTo translates the referenced shapes (all shapes when no refs are
// given) as one rigid group so that the center of their aggregate
// bounding box lands on (x, y). Every target receives the same delta, so
// relative offsets inside the group are preserved and a repeated call
// with the same arguments moves nothing. Without an aggregate bound
// (empty target set, or no target with a registered driver) MoveTo is a
// no-op.
func (l *Layer) MoveTo(x, y float64, refs ...ShapeRef) {
	l.mustLive("MoveTo")
	ts := l.targets(refs)
	bound, ok := l.boundsOf(ts)
	if !ok {
		return
	}
	center := bound.Center()
	dx, dy := x-center.X, y-center.Y
	drivers := l.host.Drivers()
	for _, s := range ts {
		if d, ok := drivers.Get(s.Type); ok {
			d.Move(s, dx, dy)
		}
	}
}

// Bounds returns the aggregate bounding box of the whole shape sequence.
// ok is false when no shape contributed a point, e.g. an empty layer or
// one whose shape types all lack drivers.
func (l *Layer) Bounds() (geom.Rect, bool) {
	l.mustLive("Bounds")
	return l.boundsOf(l.shapes)
}

// BoundsOf returns the aggregate bounding box of an explicit subset of
// shapes. An empty subset yields ok == false; use Bounds for the whole
// layer.
func (l *Layer) BoundsOf(shapes []*Shape) (geom.Rect, bool) {
	l.mustLive("BoundsOf")
	return l.boundsOf(shapes)
}

// boundsOf collects, per shape with a registered driver, the anchor
// point when present or else both corners of the driver rectangle, and
// reduces them to the minimal enclosing rectangle.
func (l *Layer) boundsOf(shapes []*Shape) (geom.Rect, bool) {
	drivers := l.host.Drivers()
	var pts []geom.Point
	for _, s := range shapes {
		d, ok := drivers.Get(s.Type)
		if !ok {
			continue
		}
		if s.Point != nil {
			pts = append(pts, *s.Point)
			continue
		}
		r, ok := d.Rect(s)
		if !ok {
			continue
		}
		pts = append(pts, r.Min(), r.Max())
	}
	return geom.BoundsOf(pts)
}
