package easel

import "github.com/gogpu/easel/geom"

// Camera describes the view transform a host applies to its layers.
//
// Ratio is the zoom factor: geometry authored at ratio r1 is rescaled by
// r2/r1 when the camera moves to ratio r2. Offset is the translation of
// the view origin in surface units.
type Camera struct {
	// Ratio is the current zoom factor. A ratio of 1 means geometry is
	// rendered at its authored scale.
	Ratio float64

	// Offset is the view origin translation.
	Offset geom.Point
}

// NewCamera returns a camera at the identity view: ratio 1, zero offset.
func NewCamera() *Camera {
	return &Camera{Ratio: 1}
}

// Host is the environment a Layer runs inside. It supplies the driver
// registry used to interpret shape types, the camera describing the
// current view, and the pixel size of the rendering surface.
//
// The layer holds its host as a non-owning reference: disposing a layer
// never tears down the host, and one host may serve several layers.
type Host interface {
	// Drivers returns the registry mapping shape-type names to drivers.
	Drivers() *DriverRegistry

	// Camera returns the current view transform. The returned pointer is
	// live; hosts mutate it as the view pans and zooms.
	Camera() *Camera

	// Size returns the width and height of the rendering surface in
	// pixels.
	Size() (width, height int)
}
