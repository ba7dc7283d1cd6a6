package easel

import (
	"fmt"
	"slices"
)

// Layer is an ordered, owned collection of shapes plus the logic to
// render and query them. It is the unit of composition a board stacks by
// level.
//
// A layer holds its host and canvas as non-owning references supplied at
// construction; both must outlive the layer. All methods assume a single
// logical thread of control (the host UI loop): the layer takes no
// locks, and mutating the shape sequence while Refresh is in progress is
// undefined behavior.
//
// After Dispose every method panics. Use-after-dispose is a bug in the
// caller and fails loudly rather than silently no-oping.
type Layer struct {
	id       string
	level    int
	disabled bool

	fill   bool
	stroke bool
	thin   bool
	style  Style

	shapes []*Shape

	host   Host
	canvas Canvas
	ids    IDSource

	disposed bool
}

// NewLayer builds a layer bound to host and drawing onto canvas. Both
// must be non-nil. Options default to fill, stroke and thin correction
// enabled; see LayerOption.
func NewLayer(host Host, canvas Canvas, opts ...LayerOption) *Layer {
	if host == nil {
		panic("easel: NewLayer requires a non-nil host")
	}
	if canvas == nil {
		panic("easel: NewLayer requires a non-nil canvas")
	}
	o := defaultLayerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = o.ids.NewID()
	}
	return &Layer{
		id:       o.id,
		level:    o.level,
		disabled: o.disabled,
		fill:     o.fill,
		stroke:   o.stroke,
		thin:     o.thin,
		style:    o.style,
		host:     host,
		canvas:   canvas,
		ids:      o.ids,
	}
}

// mustLive panics when the layer has been disposed.
func (l *Layer) mustLive(op string) {
	if l.disposed {
		panic("easel: " + op + " on disposed layer " + l.id)
	}
}

// ID returns the layer identifier.
func (l *Layer) ID() string {
	l.mustLive("ID")
	return l.id
}

// Level returns the z-ordering hint consumed by the board.
func (l *Layer) Level() int {
	l.mustLive("Level")
	return l.level
}

// SetLevel changes the z-ordering hint. The board re-sorts on its next
// repaint.
func (l *Layer) SetLevel(level int) {
	l.mustLive("SetLevel")
	l.level = level
}

// Disabled reports whether the board should skip this layer entirely.
func (l *Layer) Disabled() bool {
	l.mustLive("Disabled")
	return l.disabled
}

// SetDisabled sets the skip gate read by the board.
func (l *Layer) SetDisabled(disabled bool) {
	l.mustLive("SetDisabled")
	l.disabled = disabled
}

// Shapes returns the layer's shape sequence in paint order. The slice is
// the live backing store; callers must not insert or remove through it.
func (l *Layer) Shapes() []*Shape {
	l.mustLive("Shapes")
	return l.shapes
}

// CreateShape builds a completed shape record without inserting it:
// missing ID, Type and the LayerID back-reference are filled in. Use
// AddShapeRecord to insert it later, possibly after driver-specific
// setup.
func (l *Layer) CreateShape(opts ...ShapeOption) *Shape {
	l.mustLive("CreateShape")
	s := &Shape{}
	for _, opt := range opts {
		opt(s)
	}
	if s.ID == "" {
		s.ID = l.ids.NewID()
	}
	if s.Type == "" {
		s.Type = DefaultShapeType
	}
	s.LayerID = l.id
	return s
}

// AddShape creates a shape of the given type and appends it to the end
// of the sequence. An empty type falls back to DefaultShapeType. A
// ShapeType option, when present, wins over typ.
func (l *Layer) AddShape(typ string, opts ...ShapeOption) *Shape {
	l.mustLive("AddShape")
	s := l.CreateShape(append([]ShapeOption{ShapeType(typ)}, opts...)...)
	l.shapes = append(l.shapes, s)
	return s
}

// AddShapeRecord appends an existing record as-is to the end of the
// sequence. The record should come from CreateShape so its ID and
// LayerID are consistent with this layer. A nil record is rejected with
// ErrInvalidArgument.
func (l *Layer) AddShapeRecord(rec *Shape) (*Shape, error) {
	l.mustLive("AddShapeRecord")
	if rec == nil {
		return nil, fmt.Errorf("%w: add shape failed: nil record", ErrInvalidArgument)
	}
	l.shapes = append(l.shapes, rec)
	return rec, nil
}

// RemoveShape removes exactly one shape named by ref. It reports true
// when a shape was removed and false when the reference resolved to
// nothing; absence is a normal outcome, not an error. The zero ShapeRef
// is rejected with ErrInvalidArgument.
func (l *Layer) RemoveShape(ref ShapeRef) (bool, error) {
	l.mustLive("RemoveShape")
	if !ref.Valid() {
		return false, fmt.Errorf("%w: remove shape failed: %s", ErrInvalidArgument, ref)
	}
	i := l.indexOf(ref)
	if i < 0 {
		return false, nil
	}
	l.shapes = slices.Delete(l.shapes, i, i+1)
	return true, nil
}

// GetShape resolves a reference to a record: ByID returns the first
// shape with a matching ID, ByIndex the shape at that position, and
// ByValue passes the record through unchanged so call sites can treat
// "a shape I hold" and "a shape the layer holds" uniformly. Unresolvable
// references return nil.
func (l *Layer) GetShape(ref ShapeRef) *Shape {
	l.mustLive("GetShape")
	switch ref.kind {
	case refID:
		for _, s := range l.shapes {
			if s.ID == ref.id {
				return s
			}
		}
	case refIndex:
		if ref.index >= 0 && ref.index < len(l.shapes) {
			return l.shapes[ref.index]
		}
	case refValue:
		return ref.shape
	}
	return nil
}

// indexOf resolves a reference to a position in the sequence, or -1.
// Unlike GetShape, ByValue requires the record to actually be present.
func (l *Layer) indexOf(ref ShapeRef) int {
	switch ref.kind {
	case refID:
		for i, s := range l.shapes {
			if s.ID == ref.id {
				return i
			}
		}
	case refIndex:
		if ref.index >= 0 && ref.index < len(l.shapes) {
			return ref.index
		}
	case refValue:
		for i, s := range l.shapes {
			if s == ref.shape {
				return i
			}
		}
	}
	return -1
}

// ClearShapes empties the shape sequence. Idempotent.
func (l *Layer) ClearShapes() {
	l.mustLive("ClearShapes")
	l.shapes = nil
}

// Dispose releases the layer's external references and empties the
// shape sequence. This is terminal: every later method call on the
// layer, Dispose included, panics.
func (l *Layer) Dispose() {
	l.mustLive("Dispose")
	Logger().Info("layer disposed", "layer", l.id, "shapes", len(l.shapes))
	l.host = nil
	l.canvas = nil
	l.ids = nil
	l.shapes = nil
	l.style = Style{}
	l.disposed = true
}
