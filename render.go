package easel

// Refresh repaints the whole layer onto its canvas and returns the layer
// for chaining.
//
// The pass clears the canvas to the host dimensions, applies the layer
// default style and, unless thin correction is disabled, shifts the
// origin by half a unit so one-unit strokes land crisply on pixel
// boundaries (shifted back at the end).
//
// Shapes render in sequence order. Disabled shapes are skipped, and so
// are shapes whose type has no registered driver: an unknown type is
// unrenderable, not an error, so the rest of the layer still paints.
// When the camera ratio is not 1 the driver first adjusts the shape's
// cached geometry for the current ratio.
//
// Consecutive default-styled shapes accumulate into one shared path that
// is filled and stroked once, per the layer's fill and stroke options. A
// shape carrying a style override interrupts the batch: the shared path
// is flushed, the shape draws in its own path under its own style, is
// filled when the layer default enables fill or the override sets a fill
// color, stroked likewise, and then the default style and a fresh
// accumulator are restored for the shapes after it.
//
// Refresh mutates canvas pixels and transient paint state only; shape
// records change only through driver Adjust calls. It must not be
// reentered from a driver callback, and the shape sequence must not be
// mutated while a pass is in progress.
func (l *Layer) Refresh() *Layer {
	l.mustLive("Refresh")

	c := l.canvas
	cam := l.host.Camera()
	drivers := l.host.Drivers()

	w, h := l.host.Size()
	c.ClearRect(0, 0, float64(w), float64(h))

	defaultStyle := resolveStyle(&l.style)
	applyStyle(c, defaultStyle)

	if l.thin {
		c.Translate(-0.5, -0.5)
	}

	c.BeginPath()
	for _, s := range l.shapes {
		if s.Disabled {
			continue
		}
		d, ok := drivers.Get(s.Type)
		if !ok {
			Logger().Debug("shape type has no driver, skipping",
				"type", s.Type, "shape", s.ID, "layer", l.id)
			continue
		}
		if cam.Ratio != 1 {
			d.Adjust(s, cam)
		}

		if !s.styled() {
			d.Draw(c, s, cam)
			continue
		}

		// Styled shape: flush the shared batch, paint this shape in
		// its own path, then restore the batch state.
		l.flush(c)
		c.BeginPath()
		applyStyle(c, resolveStyle(s.Style))
		d.Draw(c, s, cam)
		if l.fill || s.Style.Fill != nil {
			c.Fill()
		}
		if l.stroke || s.Style.Stroke != nil {
			c.Stroke()
		}
		applyStyle(c, defaultStyle)
		c.BeginPath()
	}
	l.flush(c)

	if l.thin {
		c.Translate(0.5, 0.5)
	}
	return l
}

// flush realizes the shared accumulator path according to the layer's
// fill and stroke options. Canvases treat an empty accumulator as a
// pixel no-op, so flushing unconditionally is safe.
func (l *Layer) flush(c Canvas) {
	if l.fill {
		c.Fill()
	}
	if l.stroke {
		c.Stroke()
	}
}
