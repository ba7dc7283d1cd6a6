package easel

import (
	"cmp"
	"slices"
)

// BoardOption configures a Board during creation.
type BoardOption func(*boardOptions)

// boardOptions holds optional configuration for Board creation.
type boardOptions struct {
	id      string
	camera  *Camera
	drivers *DriverRegistry
	ids     IDSource
}

func defaultBoardOptions() boardOptions {
	return boardOptions{
		camera:  NewCamera(),
		drivers: NewDriverRegistry(),
		ids:     uuidSource{},
	}
}

// WithBoardID sets the board identifier. When absent, the board
// generates one from its ID source.
func WithBoardID(id string) BoardOption {
	return func(o *boardOptions) {
		o.id = id
	}
}

// WithCamera shares an existing camera with the board instead of the
// default identity camera.
func WithCamera(cam *Camera) BoardOption {
	return func(o *boardOptions) {
		if cam != nil {
			o.camera = cam
		}
	}
}

// WithDrivers shares an existing driver registry with the board instead
// of a fresh empty one. Useful when several boards interpret shape types
// identically.
func WithDrivers(reg *DriverRegistry) BoardOption {
	return func(o *boardOptions) {
		if reg != nil {
			o.drivers = reg
		}
	}
}

// WithBoardIDSource sets the identifier generator handed to the board
// and, by default, to every layer it creates.
func WithBoardIDSource(ids IDSource) BoardOption {
	return func(o *boardOptions) {
		if ids != nil {
			o.ids = ids
		}
	}
}

// Board is the orchestrator that owns what layers only borrow: the
// driver registry, the camera and the surface dimensions. It implements
// Host and stacks any number of layers, composited in ascending level
// order.
//
// Like Layer, a board assumes a single logical thread of control and
// panics on every method once disposed.
type Board struct {
	id      string
	width   int
	height  int
	camera  *Camera
	drivers *DriverRegistry
	ids     IDSource

	layers []*Layer

	disposed bool
}

// NewBoard builds a board with the given surface dimensions. The default
// configuration carries an identity camera, an empty driver registry and
// UUID identifiers.
func NewBoard(width, height int, opts ...BoardOption) *Board {
	o := defaultBoardOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = o.ids.NewID()
	}
	return &Board{
		id:      o.id,
		width:   width,
		height:  height,
		camera:  o.camera,
		drivers: o.drivers,
		ids:     o.ids,
	}
}

func (b *Board) mustLive(op string) {
	if b.disposed {
		panic("easel: " + op + " on disposed board " + b.id)
	}
}

// ID returns the board identifier.
func (b *Board) ID() string {
	b.mustLive("ID")
	return b.id
}

// Drivers returns the board's driver registry.
func (b *Board) Drivers() *DriverRegistry {
	b.mustLive("Drivers")
	return b.drivers
}

// Camera returns the board's live view transform.
func (b *Board) Camera() *Camera {
	b.mustLive("Camera")
	return b.camera
}

// Size returns the surface dimensions layers clear to.
func (b *Board) Size() (width, height int) {
	b.mustLive("Size")
	return b.width, b.height
}

// Resize updates the surface dimensions. Layers pick the new size up on
// their next repaint; canvases are the caller's to reallocate.
func (b *Board) Resize(width, height int) {
	b.mustLive("Resize")
	b.width = width
	b.height = height
}

// AddLayer builds a layer bound to this board, drawing onto canvas, and
// attaches it. Layers inherit the board's ID source unless an option
// overrides it.
func (b *Board) AddLayer(canvas Canvas, opts ...LayerOption) *Layer {
	b.mustLive("AddLayer")
	l := NewLayer(b, canvas, append([]LayerOption{WithIDSource(b.ids)}, opts...)...)
	b.layers = append(b.layers, l)
	return l
}

// Layers returns the attached layers sorted by ascending level. Layers
// sharing a level keep their attachment order.
func (b *Board) Layers() []*Layer {
	b.mustLive("Layers")
	out := slices.Clone(b.layers)
	slices.SortStableFunc(out, func(x, y *Layer) int {
		return cmp.Compare(x.level, y.level)
	})
	return out
}

// Layer returns the attached layer with the given ID, or nil.
func (b *Board) Layer(id string) *Layer {
	b.mustLive("Layer")
	for _, l := range b.layers {
		if l.id == id {
			return l
		}
	}
	return nil
}

// RemoveLayer detaches the layer with the given ID and reports whether
// one was found. The layer itself stays usable; dispose it separately
// when it is done for good.
func (b *Board) RemoveLayer(id string) bool {
	b.mustLive("RemoveLayer")
	for i, l := range b.layers {
		if l.id == id {
			b.layers = slices.Delete(b.layers, i, i+1)
			return true
		}
	}
	return false
}

// Refresh repaints every enabled layer in ascending level order and
// returns the board for chaining. Disabled layers keep their previous
// canvas contents.
func (b *Board) Refresh() *Board {
	b.mustLive("Refresh")
	for _, l := range b.Layers() {
		if l.disabled {
			continue
		}
		l.Refresh()
	}
	return b
}

// Dispose disposes every attached layer and releases the board's
// references. Terminal, like Layer.Dispose: every later call panics.
func (b *Board) Dispose() {
	b.mustLive("Dispose")
	Logger().Info("board disposed", "board", b.id, "layers", len(b.layers))
	for _, l := range b.layers {
		l.Dispose()
	}
	b.layers = nil
	b.camera = nil
	b.drivers = nil
	b.ids = nil
	b.disposed = true
}
