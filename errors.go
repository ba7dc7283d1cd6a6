package easel

import "errors"

// Errors.
var (
	// ErrInvalidArgument is returned when a registry operation receives a
	// reference or record it cannot interpret, such as the zero ShapeRef
	// or a nil shape record. It is always wrapped with the failing
	// operation; test with errors.Is.
	ErrInvalidArgument = errors.New("easel: invalid argument")
)
