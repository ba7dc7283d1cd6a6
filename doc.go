// Package easel provides a retained-mode 2D drawing layer for Go.
//
// # Overview
//
// easel is the layer-management and rendering-orchestration core of a 2D
// editing application, designed to integrate with the GoGPU ecosystem. A
// Layer owns an ordered collection of lightweight Shape records and knows
// how to repaint and query them; everything type-specific (how a circle
// is drawn, hit-tested, or measured) is delegated to externally supplied
// Driver implementations registered per shape type. easel is not a
// general graphics engine: it coordinates shapes, styles, and drivers on
// top of any Canvas implementation.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/easel"
//	    "github.com/gogpu/easel/raster"
//	)
//
//	board := easel.NewBoard(800, 600)
//	board.Drivers().Register("circle", circleDriver)
//
//	layer := board.AddLayer(raster.New(800, 600))
//	layer.AddShape("circle", easel.ShapeAt(400, 300))
//	layer.Refresh()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Board, Layer, Shape, Style, Driver, Canvas
//   - geom: points, rectangles, bounds aggregation
//   - raster: a software Canvas backed by rasterx
//   - record: a command-recording Canvas for testing and replay
//
// # Rendering model
//
// Refresh walks the shape sequence in insertion order, batching
// consecutive default-styled shapes into a single path so that one fill
// and one stroke cover the whole run. Shapes carrying a style override
// interrupt the batch and are painted in their own path. Later shapes
// paint over earlier ones.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// A Layer is single-threaded by design: it is meant to be driven by one
// UI event loop, and none of its methods lock. The DriverRegistry is safe
// for concurrent use so drivers may be registered from init functions.
package easel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
