package widget

import (
	scopeerrors "github.com/go-scope/scopeui/pkg/errors"
	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/render"
)

// MaxDivisions is the per-axis capacity of the graticule segment arrays.
// Configure rejects division counts beyond it.
const MaxDivisions = 20

// Axis selects one of the two grid axes.
type Axis int

const (
	// AxisTime is the horizontal axis; its grid lines are vertical.
	AxisTime Axis = iota
	// AxisVoltage is the vertical axis; its grid lines are horizontal.
	AxisVoltage
)

// LineKind distinguishes the origin line of an axis from ordinary grid
// lines.
type LineKind int

const (
	LineOrigin LineKind = iota
	LineGridline
)

// Coord selects a single endpoint coordinate of a grid line.
type Coord int

const (
	CoordX1 Coord = iota
	CoordY1
	CoordX2
	CoordY2
)

// Graticules is the custom oscilloscope grid widget. It is a pure
// geometry provider: given a boundary and division counts it computes the
// vertical (time) and horizontal (voltage) grid lines, and its draw
// callback replays them as styled line commands. It never renders pixels
// itself.
//
// Inputs are stored and segments recomputed in place on every Configure
// call; only value copies of segments and the boundary cross the public
// surface.
type Graticules struct {
	Base

	boundary geometry.Boundary

	originColor       graphics.Color
	originThickness   int
	gridlineColor     graphics.Color
	gridlineThickness int

	timeDivisions    int
	voltageDivisions int
	xOriginIndex     int
	yOriginIndex     int

	timeStep    int
	voltageStep int

	time    [MaxDivisions]geometry.LineSegment
	voltage [MaxDivisions]geometry.LineSegment
}

// NewGraticules returns a graticules instance with its draw callback
// bound.
func NewGraticules() *Graticules {
	g := &Graticules{}
	g.SetDrawFunc(drawGraticules)
	return g
}

// Configure stores the boundary and grid parameters, then recomputes step
// sizes and line segments.
//
// The step size is inclusiveSpan/divisions with integer truncation; the
// remainder pixels are not redistributed, so the last division band is
// wider than the others by the truncated remainder. That approximation is
// part of the widget's contract.
//
// Division counts outside [0, MaxDivisions] are rejected. Zero divisions
// on an axis yields zero lines and a zero step.
func (g *Graticules) Configure(boundary geometry.Boundary, cfg GraphPayload) error {
	if cfg.TimeDivisions < 0 || cfg.TimeDivisions > MaxDivisions {
		return scopeerrors.Newf("graticules.Configure", scopeerrors.KindBuild,
			"time divisions %d outside [0,%d]", cfg.TimeDivisions, MaxDivisions)
	}
	if cfg.VoltageDivisions < 0 || cfg.VoltageDivisions > MaxDivisions {
		return scopeerrors.Newf("graticules.Configure", scopeerrors.KindBuild,
			"voltage divisions %d outside [0,%d]", cfg.VoltageDivisions, MaxDivisions)
	}

	g.boundary = boundary
	g.originColor = cfg.OriginColor
	g.originThickness = cfg.OriginThickness
	g.gridlineColor = cfg.GridlineColor
	g.gridlineThickness = cfg.GridlineThickness
	g.timeDivisions = cfg.TimeDivisions
	g.voltageDivisions = cfg.VoltageDivisions
	g.xOriginIndex = cfg.XOriginIndex
	g.yOriginIndex = cfg.YOriginIndex

	g.computeSteps()
	g.computeSegments()
	return nil
}

func (g *Graticules) computeSteps() {
	g.timeStep, g.voltageStep = 0, 0
	if g.timeDivisions > 0 {
		g.timeStep = g.boundary.Width() / g.timeDivisions
	}
	if g.voltageDivisions > 0 {
		g.voltageStep = g.boundary.Height() / g.voltageDivisions
	}
}

func (g *Graticules) computeSegments() {
	for i := 0; i < g.timeDivisions; i++ {
		x := g.boundary.X1 + i*g.timeStep
		g.time[i] = geometry.LineSegment{X1: x, Y1: g.boundary.Y1, X2: x, Y2: g.boundary.Y2}
	}
	for i := 0; i < g.voltageDivisions; i++ {
		y := g.boundary.Y1 + i*g.voltageStep
		g.voltage[i] = geometry.LineSegment{X1: g.boundary.X1, Y1: y, X2: g.boundary.X2, Y2: y}
	}
}

// LineSegment returns the grid line at index on the given axis. An
// out-of-range index returns the all-zero segment; callers must treat a
// zero segment on an axis with non-zero divisions as the invalid-index
// sentinel, not geometry at the origin.
func (g *Graticules) LineSegment(index int, axis Axis) geometry.LineSegment {
	if !g.validIndex(index, axis) {
		return geometry.LineSegment{}
	}
	switch axis {
	case AxisTime:
		return g.time[index]
	case AxisVoltage:
		return g.voltage[index]
	default:
		return geometry.LineSegment{}
	}
}

// Coordinate returns one endpoint coordinate of the grid line at index, or
// 0 for an out-of-range index or unknown selector.
func (g *Graticules) Coordinate(index int, axis Axis, coord Coord) int {
	seg := g.LineSegment(index, axis)
	switch coord {
	case CoordX1:
		return seg.X1
	case CoordY1:
		return seg.Y1
	case CoordX2:
		return seg.X2
	case CoordY2:
		return seg.Y2
	default:
		return 0
	}
}

func (g *Graticules) validIndex(index int, axis Axis) bool {
	return index >= 0 && index < g.Divisions(axis)
}

// Divisions returns the division count for the axis; unknown axes report 0.
func (g *Graticules) Divisions(axis Axis) int {
	switch axis {
	case AxisTime:
		return g.timeDivisions
	case AxisVoltage:
		return g.voltageDivisions
	default:
		return 0
	}
}

// StepSize returns the pixel step between grid lines on the axis.
func (g *Graticules) StepSize(axis Axis) int {
	switch axis {
	case AxisTime:
		return g.timeStep
	case AxisVoltage:
		return g.voltageStep
	default:
		return 0
	}
}

// OriginIndex returns the index of the axis's origin line.
func (g *Graticules) OriginIndex(axis Axis) int {
	switch axis {
	case AxisTime:
		return g.xOriginIndex
	case AxisVoltage:
		return g.yOriginIndex
	default:
		return 0
	}
}

// Color returns the configured color for the line kind; unknown kinds
// report 0.
func (g *Graticules) Color(kind LineKind) graphics.Color {
	switch kind {
	case LineOrigin:
		return g.originColor
	case LineGridline:
		return g.gridlineColor
	default:
		return 0
	}
}

// Thickness returns the configured thickness for the line kind; unknown
// kinds report 0.
func (g *Graticules) Thickness(kind LineKind) int {
	switch kind {
	case LineOrigin:
		return g.originThickness
	case LineGridline:
		return g.gridlineThickness
	default:
		return 0
	}
}

// Boundary returns a copy of the configured boundary.
func (g *Graticules) Boundary() geometry.Boundary {
	return g.boundary
}

// drawGraticules is the draw-event callback bound at construction. The
// backend dispatches it with the widget instance as user data; it replays
// every grid line of both axes into the event layer, styling the line at
// the configured origin index differently from the rest.
func drawGraticules(e render.DrawEvent) {
	g, ok := e.UserData.(*Graticules)
	if !ok || e.Layer == nil {
		return
	}
	g.drawAxis(e.Layer, AxisTime)
	g.drawAxis(e.Layer, AxisVoltage)
}

func (g *Graticules) drawAxis(layer render.Layer, axis Axis) {
	origin := render.LineStyle{Color: g.Color(LineOrigin), Thickness: g.Thickness(LineOrigin)}
	grid := render.LineStyle{Color: g.Color(LineGridline), Thickness: g.Thickness(LineGridline)}

	for i := 0; i < g.Divisions(axis); i++ {
		style := grid
		if i == g.OriginIndex(axis) {
			style = origin
		}
		layer.DrawLine(g.LineSegment(i, axis), style)
	}
}
