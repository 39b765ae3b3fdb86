package fbrender

import (
	"testing"

	"github.com/go-scope/scopeui/pkg/builder"
	"github.com/go-scope/scopeui/pkg/defs"
	"github.com/go-scope/scopeui/pkg/display"
	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/render"
	"github.com/go-scope/scopeui/pkg/screen"
	"github.com/go-scope/scopeui/pkg/widget"
)

func newTestDriver(t *testing.T) *display.Framebuffer {
	t.Helper()
	fb := display.NewFramebuffer(480, 384, graphics.ColorLightGrey)
	if err := fb.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return fb
}

func TestCreateObjectAssignsDistinctIDs(t *testing.T) {
	r := New(newTestDriver(t))

	a, err := r.CreateObject(render.ObjectBasic, r.Root())
	if err != nil {
		t.Fatalf("CreateObject: %v", err)
	}
	b, err := r.CreateObject(render.ObjectLabel, r.Root())
	if err != nil {
		t.Fatalf("CreateObject: %v", err)
	}
	if a == b || a == r.Root() || b == r.Root() {
		t.Fatalf("ids not distinct: root=%d a=%d b=%d", r.Root(), a, b)
	}
}

func TestCreateObjectTableFull(t *testing.T) {
	r := New(newTestDriver(t))
	var err error
	for i := 0; i < maxObjects; i++ {
		_, err = r.CreateObject(render.ObjectBasic, r.Root())
		if err != nil {
			break
		}
	}
	if err == nil {
		t.Fatal("object table never filled up")
	}
}

func TestBackgroundFillAndAlignment(t *testing.T) {
	fb := newTestDriver(t)
	r := New(fb)

	obj, err := r.CreateObject(render.ObjectBasic, r.Root())
	if err != nil {
		t.Fatalf("CreateObject: %v", err)
	}
	r.SetSize(obj, 100, 50)
	r.SetPosition(obj, render.AlignBottomRight, 0, 0)
	r.SetBackground(obj, graphics.ColorBlue, 255, render.PartMain)
	r.Invalidate(obj)

	flushed := false
	r.Refresh(func() { flushed = true })
	if !flushed {
		t.Fatal("flush completion never ran")
	}

	// Bottom-right 100x50 occupies (380,334)-(479,383).
	if got := fb.Pixel(380, 334); got != graphics.ColorBlue {
		t.Fatalf("pixel (380,334) = %04x, want blue", uint16(got))
	}
	if got := fb.Pixel(479, 383); got != graphics.ColorBlue {
		t.Fatalf("pixel (479,383) = %04x, want blue", uint16(got))
	}
	if got := fb.Pixel(379, 334); got != graphics.ColorLightGrey {
		t.Fatalf("pixel (379,334) = %04x, want untouched fill", uint16(got))
	}
}

func TestRefreshWithoutDirtyObjectsSkipsRepaint(t *testing.T) {
	fb := newTestDriver(t)
	r := New(fb)

	obj, err := r.CreateObject(render.ObjectBasic, r.Root())
	if err != nil {
		t.Fatalf("CreateObject: %v", err)
	}
	r.SetSize(obj, 10, 10)
	r.SetBackground(obj, graphics.ColorGreen, 255, render.PartMain)
	r.Refresh(nil)

	// Everything is clean now; a second refresh must still signal done.
	done := false
	r.Refresh(func() { done = true })
	if !done {
		t.Fatal("completion not signalled on clean refresh")
	}
}

// TestPipelinePaintsDefaultWidgets drives the whole configuration pipeline
// against the software backend and checks the flushed pixels.
func TestPipelinePaintsDefaultWidgets(t *testing.T) {
	fb := newTestDriver(t)
	r := New(fb)

	registry, pool := widget.NewRegistry(), widget.NewPool()
	if err := defs.Register(registry, pool, defs.Defaults()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	coord := screen.New(r, fb)
	coord.SetServices(registry, pool)
	if got := coord.ResolveGeometry(); got != screen.StateWidgetsRegistered {
		t.Fatalf("ResolveGeometry = %v (err %v)", got, coord.Err())
	}
	if got := coord.Materialize(); got != screen.StateAttributesSet {
		t.Fatalf("Materialize = %v (err %v)", got, coord.Err())
	}

	b := builder.New()
	b.SetServices(registry, pool)
	if got := b.Build(); got != builder.StateComplete {
		t.Fatalf("Build = %v (err %v)", got, b.Err())
	}

	if got := coord.DrawWidgets(); got != screen.StateComplete {
		t.Fatalf("DrawWidgets = %v (err %v)", got, coord.Err())
	}
	r.Refresh(nil)

	// The graticule covers 70% of the panel area anchored top-left:
	// 401x321 pixels, 10 time divisions of step 40. The origin line at
	// index 5 lands on x=200 and is 2px thick and red.
	grat := pool.Get(widget.TypeGraph).(*widget.Graticules)
	if got := grat.Boundary(); got != geometry.FromSize(401, 321) {
		t.Fatalf("graticule boundary = %+v, want 401x321 at origin", got)
	}
	if got := fb.Pixel(200, 0); got != graphics.ColorRed {
		t.Fatalf("origin line pixel = %04x, want red", uint16(got))
	}
	if got := fb.Pixel(201, 160); got != graphics.ColorRed {
		t.Fatalf("origin thickness pixel = %04x, want red", uint16(got))
	}
	// Gridline at index 1, x=40, black on the light-grey fill.
	if got := fb.Pixel(40, 100); got != graphics.ColorBlack {
		t.Fatalf("gridline pixel = %04x, want black", uint16(got))
	}
	// The voltage origin at index 4 of 8 divisions (step 40) is y=160.
	if got := fb.Pixel(10, 160); got != graphics.ColorRed {
		t.Fatalf("voltage origin pixel = %04x, want red", uint16(got))
	}

	// The label sits bottom-left, 150x25, white background with a 2px
	// black border.
	if got := fb.Pixel(0, 383); got != graphics.ColorBlack {
		t.Fatalf("label border pixel = %04x, want black", uint16(got))
	}
	if got := fb.Pixel(5, 371); got != graphics.ColorWhite {
		t.Fatalf("label background pixel = %04x, want white", uint16(got))
	}
	// Outside the label and graticule the fill shows through.
	if got := fb.Pixel(470, 350); got != graphics.ColorLightGrey {
		t.Fatalf("fill pixel = %04x, want light grey", uint16(got))
	}
}
