package easel

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/easel/geom"
)

// Driver implements the drawing and geometry behavior for one shape
// type. The layer core is geometry-agnostic: every per-type concern is
// delegated through this interface.
//
// Drivers receive the full Shape record and may read any of its fields.
// Draw must not mutate the shape; Adjust and Move mutate geometry in
// place and are called with the layer's coordination already applied, so
// implementations need no locking of their own.
type Driver interface {
	// Draw appends the shape's outline to the canvas path accumulator.
	// The canvas arrives with paint state already configured and a path
	// begun; Draw only emits path verbs. Fill/Stroke are issued by the
	// caller, which batches shapes sharing a style.
	Draw(c Canvas, s *Shape, cam *Camera)

	// Adjust rescales the shape's geometry for the camera ratio the
	// shape was authored under versus the camera's current ratio. The
	// layer calls it lazily, only when the ratio has drifted.
	Adjust(s *Shape, cam *Camera)

	// Move translates the shape's geometry by (dx, dy) surface units,
	// including the Point anchor when the shape carries one. Bounds
	// aggregation reads the anchor, so a stale anchor skews every group
	// operation built on it.
	Move(s *Shape, dx, dy float64)

	// Rect reports the shape's axis-aligned bounding box. ok is false
	// when the shape has no meaningful extent (for example, no geometry
	// yet), in which case the shape is skipped during aggregation.
	Rect(s *Shape) (bounds geom.Rect, ok bool)

	// Contains reports whether the surface point (x, y) hits the shape.
	Contains(s *Shape, x, y float64) bool
}

// DriverRegistry maps shape-type names to drivers. Each registry is an
// independent instance; hosts own one and hand it to their layers, so
// two hosts can interpret the same type name differently. The zero
// value is an empty registry ready to use.
//
// All methods are safe for concurrent use.
type DriverRegistry struct {
	mu      sync.RWMutex
	drivers map[string]Driver
}

// NewDriverRegistry returns an empty registry.
func NewDriverRegistry() *DriverRegistry {
	return &DriverRegistry{drivers: make(map[string]Driver)}
}

// Register associates a driver with a shape-type name, replacing any
// previous driver for that name. An empty name or nil driver is an
// error.
func (r *DriverRegistry) Register(name string, d Driver) error {
	if name == "" {
		return fmt.Errorf("%w: empty driver name", ErrInvalidArgument)
	}
	if d == nil {
		return fmt.Errorf("%w: nil driver for %q", ErrInvalidArgument, name)
	}
	r.mu.Lock()
	if r.drivers == nil {
		r.drivers = make(map[string]Driver)
	}
	r.drivers[name] = d
	r.mu.Unlock()
	Logger().Debug("driver registered", "type", name)
	return nil
}

// Unregister removes the driver for name. Removing an unknown name is a
// no-op.
func (r *DriverRegistry) Unregister(name string) {
	r.mu.Lock()
	delete(r.drivers, name)
	r.mu.Unlock()
}

// Get returns the driver for name. ok is false when no driver is
// registered under that name.
func (r *DriverRegistry) Get(name string) (d Driver, ok bool) {
	r.mu.RLock()
	d, ok = r.drivers[name]
	r.mu.RUnlock()
	return d, ok
}

// Types returns the registered shape-type names in sorted order.
func (r *DriverRegistry) Types() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
