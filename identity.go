package easel

import "github.com/google/uuid"

// IDSource produces identifiers for shapes created by a layer. The
// default source generates random UUIDs; tests substitute a
// deterministic source through WithIDSource.
type IDSource interface {
	// NewID returns a fresh identifier. Implementations must never
	// return the same value twice for one layer.
	NewID() string
}

// uuidSource is the default IDSource, backed by random (version 4)
// UUIDs.
type uuidSource struct{}

func (uuidSource) NewID() string { return uuid.NewString() }
