// Package defs is the central definition point for the widget set. It
// carries the built-in attribute records, optionally overlays them from a
// scope.yaml file, and installs records plus fresh instances into the
// registry and pool.
package defs

import (
	"fmt"

	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/render"
	"github.com/go-scope/scopeui/pkg/widget"
)

func graticulesRecord() *widget.Attributes {
	return &widget.Attributes{
		Custom: true,
		Type:   widget.TypeGraph,
		Role:   widget.RoleInformative,
		Name:   "Graticule",

		Geometry: widget.Geometry{
			Mode:    widget.SizingAreaPercent,
			Percent: 70,
		},

		Payload: widget.GraphPayload{
			OriginColor:       graphics.ColorRed,
			OriginThickness:   2,
			GridlineColor:     graphics.ColorBlack,
			GridlineThickness: 1,
			TimeDivisions:     10,
			VoltageDivisions:  8,
			XOriginIndex:      5,
			YOriginIndex:      4,
		},
	}
}

func labelRecord() *widget.Attributes {
	return &widget.Attributes{
		Type: widget.TypeLabel,
		Role: widget.RoleFunctional,
		Name: "Label",

		Geometry: widget.Geometry{
			Mode:   widget.SizingAbsolute,
			Width:  150,
			Height: 25,
		},
		Position: widget.Position{
			Alignment: render.AlignBottomLeft,
		},

		Label: widget.Label{Text: "A Label!"},
		Text: widget.Text{
			Color:         graphics.ColorBlack,
			Align:         render.TextAlignCenter,
			LetterSpacing: 5,
			LineSpacing:   10,
		},

		Background: widget.Background{
			Color:   graphics.ColorWhite,
			Opacity: 255,
		},
		Border: widget.Border{
			Width:   2,
			Color:   graphics.ColorBlack,
			Opacity: 255,
		},
	}
}

// Defaults returns the built-in widget set: the oscilloscope graticule and
// a status label. Each call returns fresh records, safe to mutate.
func Defaults() []*widget.Attributes {
	return []*widget.Attributes{
		graticulesRecord(),
		labelRecord(),
	}
}

// Register installs the given records and a fresh instance per record into
// the registry and pool. Records carrying a graph payload get a graticules
// instance; everything else gets a plain base instance.
func Register(registry *widget.Registry, pool *widget.Pool, records []*widget.Attributes) error {
	for _, rec := range records {
		if rec == nil {
			return fmt.Errorf("nil widget record")
		}
		if err := registry.Register(rec.Type, rec); err != nil {
			return fmt.Errorf("register %v: %w", rec.Type, err)
		}
		if err := pool.Add(rec.Type, instantiate(rec)); err != nil {
			return fmt.Errorf("pool %v: %w", rec.Type, err)
		}
	}
	return nil
}

func instantiate(rec *widget.Attributes) widget.Widget {
	if _, ok := rec.Payload.(widget.GraphPayload); ok {
		return widget.NewGraticules()
	}
	return &widget.Base{}
}
