// Package widget defines the declarative attribute records that describe
// on-screen widgets, the fixed-capacity registry and pool that hold them,
// and the custom widget implementations themselves.
//
// Attribute records are data only: they carry no reference to a live
// render object and can be built entirely before any backend exists. The
// screen coordinator resolves their geometry against the real display and
// materializes backing objects; the widget builder applies type-specific
// payloads onto pooled instances.
package widget

import (
	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/render"
)

// Type classifies a widget. It is the identity key in both the registry
// and the pool: at most one record and one instance exist per type.
type Type int

const (
	// TypeDefault is the fallback for unspecified widgets.
	TypeDefault Type = iota
	// TypeLabel is a backend-builtin text widget.
	TypeLabel
	// TypeGraph is the custom oscilloscope grid widget.
	TypeGraph
)

func (t Type) String() string {
	switch t {
	case TypeLabel:
		return "label"
	case TypeGraph:
		return "graph"
	default:
		return "default"
	}
}

// Role describes the functional purpose of a widget in the UI.
type Role int

const (
	RoleDefault Role = iota
	RoleDecorative
	RoleInformative
	RoleFunctional
	RoleFeedback
	RoleBranding
	RoleBackground
	RolePreview
)

// SizingMode is the policy for deriving a widget's pixel dimensions.
type SizingMode int

const (
	// SizingAbsolute uses the stored width and height verbatim.
	SizingAbsolute SizingMode = iota
	// SizingAreaPercent scales each dimension by sqrt(percent/100) so the
	// widget's area becomes percent of the screen area.
	SizingAreaPercent
	// SizingDimensionPercent scales each dimension linearly by percent.
	SizingDimensionPercent
)

// Spacing controls whitespace around widget content, in pixels.
type Spacing struct {
	Margin  int
	Padding int
}

// Position places a widget relative to an alignment anchor.
type Position struct {
	OffsetX   int
	OffsetY   int
	Alignment render.Align
}

// Background controls the fill behind widget content.
type Background struct {
	Color   graphics.Color
	Opacity uint8
}

// Border configures edge styling.
type Border struct {
	Width   int
	Color   graphics.Color
	Opacity uint8
	Side    render.BorderSide
}

// Outline configures the external outline effect.
type Outline struct {
	Width   int
	Color   graphics.Color
	Opacity uint8
}

// Geometry carries the sizing inputs and, after resolution, the absolute
// dimensions. For custom widgets the resolved Boundary is the coordinate
// frame their geometry engine computes in.
type Geometry struct {
	Mode     SizingMode
	Width    int
	Height   int
	Percent  int
	Boundary geometry.Boundary
}

// Text carries typography properties. An empty Font selects the backend
// default face.
type Text struct {
	Font          string
	Color         graphics.Color
	Opacity       uint8
	LetterSpacing int
	LineSpacing   int
	Align         render.TextAlign
	Decor         render.TextDecor
}

// Label carries text-widget content.
type Label struct {
	Text     string
	LongMode render.LongMode
	Recolor  bool
}

// Behavior holds interactive capability flags.
type Behavior struct {
	Clickable  bool
	Scrollable bool
	Focusable  bool
}

// Payload is the type-tagged extension point for widget-kind-specific
// configuration. Exactly one variant exists per custom widget kind; the
// builder dispatches on the concrete type. The interface is sealed so new
// kinds are added here, next to the dispatch sites.
type Payload interface {
	isPayload()
}

// GraphPayload configures the oscilloscope grid widget: division counts
// and origin indices for both axes, plus the style of origin versus
// ordinary grid lines.
type GraphPayload struct {
	OriginColor       graphics.Color
	OriginThickness   int
	GridlineColor     graphics.Color
	GridlineThickness int
	TimeDivisions     int
	VoltageDivisions  int
	XOriginIndex      int
	YOriginIndex      int
}

func (GraphPayload) isPayload() {}

// Attributes is the complete declarative description of one widget. A
// record is created once at startup, mutated in place when the screen
// coordinator resolves its geometry, and never destroyed.
type Attributes struct {
	// Custom marks widgets with their own geometry engine and draw
	// callback, as opposed to backend builtins.
	Custom bool
	Type   Type
	Role   Role
	Name   string

	Spacing    Spacing
	Position   Position
	Background Background
	Border     Border
	Outline    Outline
	Geometry   Geometry
	Text       Text
	Label      Label
	Part       render.Part
	Behavior   Behavior

	// Payload holds widget-kind-specific data; nil for widgets that need
	// none.
	Payload Payload
}
