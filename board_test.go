package easel_test

import (
	"testing"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/geom"
	"github.com/gogpu/easel/record"
)

func TestNewBoardDefaults(t *testing.T) {
	b := easel.NewBoard(320, 240)

	if b.ID() == "" {
		t.Error("default board ID is empty")
	}
	w, h := b.Size()
	if w != 320 || h != 240 {
		t.Errorf("Size() = %d x %d, want 320 x 240", w, h)
	}
	if b.Camera() == nil || b.Camera().Ratio != 1 {
		t.Errorf("Camera() = %+v, want ratio 1", b.Camera())
	}
	if b.Drivers() == nil {
		t.Fatal("Drivers() = nil")
	}
	if got := b.Drivers().Types(); len(got) != 0 {
		t.Errorf("Types() = %v, want empty", got)
	}
}

func TestBoardOptions(t *testing.T) {
	cam := easel.NewCamera()
	cam.Ratio = 2
	reg := easel.NewDriverRegistry()

	b := easel.NewBoard(100, 100,
		easel.WithBoardID("b-1"),
		easel.WithCamera(cam),
		easel.WithDrivers(reg),
		easel.WithBoardIDSource(&serialIDs{prefix: "q"}),
	)

	if b.ID() != "b-1" {
		t.Errorf("ID() = %q, want %q", b.ID(), "b-1")
	}
	if b.Camera() != cam {
		t.Error("Camera() is not the injected camera")
	}
	if b.Drivers() != reg {
		t.Error("Drivers() is not the injected registry")
	}
	if got := b.AddLayer(record.New()).ID(); got != "q1" {
		t.Errorf("first layer ID = %q, want %q", got, "q1")
	}
}

// TestBoardOptionNilGuards tests that nil injections keep the defaults.
func TestBoardOptionNilGuards(t *testing.T) {
	b := easel.NewBoard(100, 100,
		easel.WithCamera(nil),
		easel.WithDrivers(nil),
		easel.WithBoardIDSource(nil),
	)

	if b.Camera() == nil {
		t.Error("WithCamera(nil) cleared the camera")
	}
	if b.Drivers() == nil {
		t.Error("WithDrivers(nil) cleared the registry")
	}
	if b.AddLayer(record.New()).ID() == "" {
		t.Error("WithBoardIDSource(nil) cleared the ID source")
	}
}

// TestAddLayerBindsBoard tests that a new layer refreshes against the
// board's dimensions and drivers.
func TestAddLayerBindsBoard(t *testing.T) {
	b, _, box := newTestBoard(t)
	rec := record.New()
	l := b.AddLayer(rec)
	l.AddShape("box", easel.ShapeGeom(geom.R(0, 0, 10, 10)))

	l.Refresh()

	clear, ok := rec.At(0).(record.ClearRectCommand)
	if !ok || clear.Width != 200 || clear.Height != 100 {
		t.Errorf("ClearRect = %+v, want board dimensions 200 x 100", rec.At(0))
	}
	if box.draws != 1 {
		t.Errorf("draws = %d, want 1", box.draws)
	}
	if got := b.Layers(); len(got) != 1 || got[0] != l {
		t.Errorf("Layers() = %v, want the new layer", got)
	}
}

// TestLayersSortedByLevel tests level ordering with stable ties.
func TestLayersSortedByLevel(t *testing.T) {
	b, _, _ := newTestBoard(t)
	b.AddLayer(record.New(), easel.WithID("high"), easel.WithLevel(5))
	b.AddLayer(record.New(), easel.WithID("tieA"), easel.WithLevel(1))
	b.AddLayer(record.New(), easel.WithID("low"), easel.WithLevel(-1))
	b.AddLayer(record.New(), easel.WithID("tieB"), easel.WithLevel(1))

	want := []string{"low", "tieA", "tieB", "high"}
	got := b.Layers()
	if len(got) != len(want) {
		t.Fatalf("len(Layers()) = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID() != id {
			t.Errorf("Layers()[%d].ID() = %q, want %q", i, got[i].ID(), id)
		}
	}
}

func TestBoardLayerLookup(t *testing.T) {
	b, _, _ := newTestBoard(t)
	l := b.AddLayer(record.New(), easel.WithID("ink"))

	if got := b.Layer("ink"); got != l {
		t.Errorf("Layer(%q) = %v, want %v", "ink", got, l)
	}
	if got := b.Layer("ghost"); got != nil {
		t.Errorf("Layer(unknown) = %v, want nil", got)
	}
}

// TestRemoveLayerDetaches tests that removal detaches without
// disposing: the layer stays usable on its own.
func TestRemoveLayerDetaches(t *testing.T) {
	b, _, _ := newTestBoard(t)
	l := b.AddLayer(record.New(), easel.WithID("ink"))

	if !b.RemoveLayer("ink") {
		t.Fatal("RemoveLayer() = false, want true")
	}
	if b.Layer("ink") != nil {
		t.Error("Layer() after removal is not nil")
	}
	if b.RemoveLayer("ink") {
		t.Error("second RemoveLayer() = true, want false")
	}

	// The detached layer was not disposed.
	if s := l.AddShape("box"); s == nil {
		t.Error("detached layer rejected AddShape")
	}
}

// TestBoardRefreshOrder tests that layers repaint lowest level first so
// higher levels overprint, and disabled layers are skipped.
func TestBoardRefreshOrder(t *testing.T) {
	b, _, _ := newTestBoard(t)
	shared := record.New()
	top := b.AddLayer(shared, easel.WithLevel(5))
	low := b.AddLayer(shared, easel.WithLevel(1))
	top.AddShape("box", easel.ShapeGeom(geom.R(50, 50, 10, 10)))
	low.AddShape("box", easel.ShapeGeom(geom.R(10, 10, 10, 10)))

	if got := b.Refresh(); got != b {
		t.Error("Refresh() did not return the board for chaining")
	}

	lowAt, topAt := -1, -1
	for i, cmd := range shared.Commands() {
		mt, ok := cmd.(record.MoveToCommand)
		if !ok {
			continue
		}
		switch {
		case mt.X == 10 && mt.Y == 10:
			lowAt = i
		case mt.X == 50 && mt.Y == 50:
			topAt = i
		}
	}
	if lowAt == -1 || topAt == -1 {
		t.Fatalf("missing layer paints: low at %d, top at %d", lowAt, topAt)
	}
	if lowAt > topAt {
		t.Errorf("low level painted at %d after top level at %d", lowAt, topAt)
	}
}

func TestBoardRefreshSkipsDisabledLayers(t *testing.T) {
	b, _, _ := newTestBoard(t)
	recOn := record.New()
	recOff := record.New()
	b.AddLayer(recOn)
	b.AddLayer(recOff, easel.WithDisabled(true))

	b.Refresh()

	if recOn.Len() == 0 {
		t.Error("enabled layer was not painted")
	}
	if recOff.Len() != 0 {
		t.Errorf("disabled layer recorded %d commands, want 0", recOff.Len())
	}
}

// TestDisabledLayerDirectRefresh tests that the disabled flag gates the
// board pass only; a direct call still paints.
func TestDisabledLayerDirectRefresh(t *testing.T) {
	b, _, _ := newTestBoard(t)
	rec := record.New()
	l := b.AddLayer(rec, easel.WithDisabled(true))

	l.Refresh()

	if rec.Len() == 0 {
		t.Error("direct Refresh on a disabled layer painted nothing")
	}
}

func TestBoardResize(t *testing.T) {
	b, _, _ := newTestBoard(t)
	rec := record.New()
	l := b.AddLayer(rec)

	b.Resize(400, 300)

	w, h := b.Size()
	if w != 400 || h != 300 {
		t.Errorf("Size() after Resize = %d x %d, want 400 x 300", w, h)
	}

	l.Refresh()
	clear, ok := rec.At(0).(record.ClearRectCommand)
	if !ok || clear.Width != 400 || clear.Height != 300 {
		t.Errorf("ClearRect = %+v, want resized dimensions 400 x 300", rec.At(0))
	}
}

func TestBoardDisposeCascades(t *testing.T) {
	b, _, _ := newTestBoard(t)
	l := b.AddLayer(record.New())

	b.Dispose()

	t.Run("layer disposed", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("layer survived board Dispose")
			}
		}()
		l.AddShape("box")
	})

	calls := []struct {
		name string
		fn   func()
	}{
		{"ID", func() { b.ID() }},
		{"Drivers", func() { b.Drivers() }},
		{"Camera", func() { b.Camera() }},
		{"Size", func() { _, _ = b.Size() }},
		{"Resize", func() { b.Resize(1, 1) }},
		{"AddLayer", func() { b.AddLayer(record.New()) }},
		{"Layers", func() { b.Layers() }},
		{"Layer", func() { b.Layer("x") }},
		{"RemoveLayer", func() { b.RemoveLayer("x") }},
		{"Refresh", func() { b.Refresh() }},
		{"Dispose", func() { b.Dispose() }},
	}
	for _, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on disposed board did not panic", c.name)
				}
			}()
			c.fn()
		})
	}
}
