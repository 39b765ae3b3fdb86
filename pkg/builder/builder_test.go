package builder

import (
	"errors"
	"testing"

	scopeerrors "github.com/go-scope/scopeui/pkg/errors"
	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/widget"
)

func graphRecord() *widget.Attributes {
	return &widget.Attributes{
		Custom: true,
		Type:   widget.TypeGraph,
		Geometry: widget.Geometry{
			Mode:     widget.SizingAbsolute,
			Width:    480,
			Height:   384,
			Boundary: geometry.FromSize(480, 384),
		},
		Payload: widget.GraphPayload{
			OriginColor:       graphics.ColorRed,
			OriginThickness:   2,
			GridlineColor:     graphics.ColorLightGrey,
			GridlineThickness: 1,
			TimeDivisions:     10,
			VoltageDivisions:  8,
			XOriginIndex:      5,
			YOriginIndex:      4,
		},
	}
}

func TestSetServicesValid(t *testing.T) {
	b := New()
	if got := b.SetServices(widget.NewRegistry(), widget.NewPool()); got != StateServicesSet {
		t.Fatalf("SetServices = %v, want %v", got, StateServicesSet)
	}
	if b.Err() != nil {
		t.Fatalf("Err = %v, want nil", b.Err())
	}
}

func TestSetServicesNilRegistryIsTerminal(t *testing.T) {
	b := New()
	pool := widget.NewPool()
	if got := b.SetServices(nil, pool); got != StateErrorServices {
		t.Fatalf("SetServices = %v, want %v", got, StateErrorServices)
	}
	var serr *scopeerrors.Error
	if !errors.As(b.Err(), &serr) || serr.Kind != scopeerrors.KindService {
		t.Fatalf("Err = %v, want kind %v", b.Err(), scopeerrors.KindService)
	}

	if got := b.SetServices(widget.NewRegistry(), pool); got != StateErrorServices {
		t.Fatalf("SetServices after error = %v, want %v", got, StateErrorServices)
	}
	if got := b.Build(); got != StateErrorServices {
		t.Fatalf("Build after error = %v, want %v", got, StateErrorServices)
	}
}

func TestBuildBeforeServicesStaysUninitialized(t *testing.T) {
	b := New()
	if got := b.Build(); got != StateUninitialized {
		t.Fatalf("Build = %v, want %v", got, StateUninitialized)
	}
	if b.Err() != nil {
		t.Fatalf("Err = %v, want nil", b.Err())
	}
}

func TestBuildConfiguresGraticules(t *testing.T) {
	registry, pool := widget.NewRegistry(), widget.NewPool()
	if err := registry.Register(widget.TypeGraph, graphRecord()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	grat := widget.NewGraticules()
	if err := pool.Add(widget.TypeGraph, grat); err != nil {
		t.Fatalf("Add: %v", err)
	}

	b := New()
	b.SetServices(registry, pool)
	if got := b.Build(); got != StateComplete {
		t.Fatalf("Build = %v, want %v", got, StateComplete)
	}

	if got := grat.StepSize(widget.AxisTime); got != 48 {
		t.Fatalf("time step = %d, want 48", got)
	}
	if got := grat.StepSize(widget.AxisVoltage); got != 48 {
		t.Fatalf("voltage step = %d, want 48", got)
	}
	if got := grat.Color(widget.LineOrigin); got != graphics.ColorRed {
		t.Fatalf("origin color = %v, want %v", got, graphics.ColorRed)
	}
}

func TestBuildSkipsRecordsWithoutPayload(t *testing.T) {
	registry, pool := widget.NewRegistry(), widget.NewPool()
	if err := registry.Register(widget.TypeLabel, &widget.Attributes{Type: widget.TypeLabel}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := pool.Add(widget.TypeLabel, &widget.Base{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	b := New()
	b.SetServices(registry, pool)
	if got := b.Build(); got != StateComplete {
		t.Fatalf("Build = %v, want %v", got, StateComplete)
	}
}

func TestBuildMissingInstanceWithoutPayload(t *testing.T) {
	registry, pool := widget.NewRegistry(), widget.NewPool()
	if err := registry.Register(widget.TypeLabel, &widget.Attributes{Type: widget.TypeLabel}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	b := New()
	b.SetServices(registry, pool)
	if got := b.Build(); got != StateErrorBuilding {
		t.Fatalf("Build = %v, want %v", got, StateErrorBuilding)
	}
	var serr *scopeerrors.Error
	if !errors.As(b.Err(), &serr) || serr.Kind != scopeerrors.KindBuild {
		t.Fatalf("Err = %v, want kind %v", b.Err(), scopeerrors.KindBuild)
	}
}

func TestBuildMissingInstance(t *testing.T) {
	registry, pool := widget.NewRegistry(), widget.NewPool()
	if err := registry.Register(widget.TypeGraph, graphRecord()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	b := New()
	b.SetServices(registry, pool)
	if got := b.Build(); got != StateErrorBuilding {
		t.Fatalf("Build = %v, want %v", got, StateErrorBuilding)
	}
	var serr *scopeerrors.Error
	if !errors.As(b.Err(), &serr) || serr.Kind != scopeerrors.KindBuild {
		t.Fatalf("Err = %v, want kind %v", b.Err(), scopeerrors.KindBuild)
	}
}

func TestBuildInstanceTypeMismatch(t *testing.T) {
	registry, pool := widget.NewRegistry(), widget.NewPool()
	if err := registry.Register(widget.TypeGraph, graphRecord()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// A plain base instance cannot take a graph payload.
	if err := pool.Add(widget.TypeGraph, &widget.Base{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	b := New()
	b.SetServices(registry, pool)
	if got := b.Build(); got != StateErrorBuilding {
		t.Fatalf("Build = %v, want %v", got, StateErrorBuilding)
	}
}

func TestBuildConfigureFailure(t *testing.T) {
	registry, pool := widget.NewRegistry(), widget.NewPool()
	record := graphRecord()
	payload := record.Payload.(widget.GraphPayload)
	payload.TimeDivisions = widget.MaxDivisions + 1
	record.Payload = payload
	if err := registry.Register(widget.TypeGraph, record); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := pool.Add(widget.TypeGraph, widget.NewGraticules()); err != nil {
		t.Fatalf("Add: %v", err)
	}

	b := New()
	b.SetServices(registry, pool)
	if got := b.Build(); got != StateErrorBuilding {
		t.Fatalf("Build = %v, want %v", got, StateErrorBuilding)
	}
	if b.Err() == nil {
		t.Fatal("Err = nil after configure failure")
	}
}

func TestBuildNilRecord(t *testing.T) {
	registry, pool := widget.NewRegistry(), widget.NewPool()
	if err := registry.Register(widget.TypeGraph, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}

	b := New()
	b.SetServices(registry, pool)
	if got := b.Build(); got != StateErrorBuilding {
		t.Fatalf("Build = %v, want %v", got, StateErrorBuilding)
	}
}

func TestStateStrings(t *testing.T) {
	for state, want := range map[State]string{
		StateUninitialized: "uninitialized",
		StateServicesSet:   "services-set",
		StateErrorServices: "error-services",
		StateBuilding:      "building",
		StateComplete:      "complete",
		StateErrorBuilding: "error-building",
		State(42):          "invalid",
	} {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}
