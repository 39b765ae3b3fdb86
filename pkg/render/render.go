// Package render defines the contract between the widget configuration
// pipeline and the rendering collaborator. The pipeline never draws pixels
// itself: it asks a Renderer to materialize backing objects, applies style
// groups through it, and hands custom widgets a Layer to emit line-draw
// commands into during draw events.
package render

import (
	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
)

// ObjectID identifies a render object owned by the backend. The zero value
// never names a valid object.
type ObjectID uint32

// NoObject is the absent-object sentinel.
const NoObject ObjectID = 0

// ObjectKind selects which backend primitive backs a widget.
type ObjectKind int

const (
	// ObjectBasic is a plain rectangular object; custom widgets draw onto
	// it through their draw callback.
	ObjectBasic ObjectKind = iota
	// ObjectLabel is a backend-builtin text object.
	ObjectLabel
)

// Align anchors an object within its parent before offsets are applied.
type Align int

const (
	AlignDefault Align = iota
	AlignTopLeft
	AlignTopMid
	AlignTopRight
	AlignLeftMid
	AlignCenter
	AlignRightMid
	AlignBottomLeft
	AlignBottomMid
	AlignBottomRight
)

// BorderSide selects which edges of an object draw a border.
type BorderSide uint8

const (
	BorderSideNone   BorderSide = 0
	BorderSideBottom BorderSide = 1 << 0
	BorderSideTop    BorderSide = 1 << 1
	BorderSideLeft   BorderSide = 1 << 2
	BorderSideRight  BorderSide = 1 << 3
	BorderSideFull   BorderSide = BorderSideBottom | BorderSideTop | BorderSideLeft | BorderSideRight
)

// TextAlign positions text within an object's bounds.
type TextAlign int

const (
	TextAlignAuto TextAlign = iota
	TextAlignLeft
	TextAlignCenter
	TextAlignRight
)

// TextDecor applies a text decoration.
type TextDecor int

const (
	TextDecorNone TextDecor = iota
	TextDecorUnderline
	TextDecorStrikethrough
)

// LongMode controls label behavior when text exceeds the object width.
type LongMode int

const (
	LongWrap LongMode = iota
	LongDots
	LongScroll
	LongClip
)

// Part selects which region of an object a style targets.
type Part int

const (
	PartMain Part = iota
	PartIndicator
	PartKnob
	PartScrollbar
)

// Flag is a set of interactive behavior flags.
type Flag uint8

const (
	FlagClickable  Flag = 1 << 0
	FlagScrollable Flag = 1 << 1
	FlagFocusable  Flag = 1 << 2
)

// BorderStyle is the border style group passed to the backend.
type BorderStyle struct {
	Width   int
	Color   graphics.Color
	Opacity uint8
	Side    BorderSide
}

// OutlineStyle is the outline style group passed to the backend.
type OutlineStyle struct {
	Width   int
	Color   graphics.Color
	Opacity uint8
}

// TextStyle is the typography style group passed to the backend. An empty
// Font selects the backend's default face.
type TextStyle struct {
	Font          string
	Color         graphics.Color
	Opacity       uint8
	LetterSpacing int
	LineSpacing   int
	Align         TextAlign
	Decor         TextDecor
}

// LineStyle describes the stroke of a single draw command.
type LineStyle struct {
	Color     graphics.Color
	Thickness int
}

// Layer is the drawing surface handed to draw-event callbacks.
type Layer interface {
	// DrawLine strokes a line between two inclusive endpoints in absolute
	// pixel coordinates.
	DrawLine(seg geometry.LineSegment, style LineStyle)
}

// DrawEvent carries the context of a backend draw dispatch.
type DrawEvent struct {
	// Target is the object being drawn.
	Target ObjectID
	// Layer is the drawing surface for this dispatch.
	Layer Layer
	// UserData is the value bound with SetUserData, typically the widget
	// instance that owns the object.
	UserData any
}

// DrawFunc is a draw-event callback.
type DrawFunc func(DrawEvent)

// Renderer is the rendering collaborator. It owns object creation, style
// application and draw-event dispatch; the pipeline owns what to create
// and which styles to apply.
type Renderer interface {
	// Root returns the screen object new widgets are parented to.
	Root() ObjectID

	// CreateObject materializes a backing object of the given kind.
	CreateObject(kind ObjectKind, parent ObjectID) (ObjectID, error)

	// SetUserData binds an arbitrary value to the object, recoverable from
	// draw events.
	SetUserData(id ObjectID, data any)

	// OnDraw registers fn to be called when the object is drawn.
	OnDraw(id ObjectID, fn DrawFunc)

	SetPosition(id ObjectID, align Align, offsetX, offsetY int)
	SetSize(id ObjectID, width, height int)
	SetSpacing(id ObjectID, margin, padding int, part Part)
	SetBackground(id ObjectID, color graphics.Color, opacity uint8, part Part)
	SetBorder(id ObjectID, style BorderStyle, part Part)
	SetOutline(id ObjectID, style OutlineStyle, part Part)
	SetTypography(id ObjectID, style TextStyle, part Part)
	SetLabel(id ObjectID, text string, mode LongMode, recolor bool)
	AddFlags(id ObjectID, flags Flag)

	// Invalidate marks the object for redraw on the next refresh.
	Invalidate(id ObjectID)
}
