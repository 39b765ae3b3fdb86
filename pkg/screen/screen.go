// Package screen hosts the coordinator state machine that turns
// declarative attribute records into positioned, styled render objects.
//
// The coordinator is driven synchronously by an external orchestrator: it
// exposes one transition method per stage, each returning the new state.
// Error states are terminal; the coordinator never retries, never rolls
// back work applied before a failing entry, and never logs. The
// orchestrator observes the returned state (and Err) and owns all
// reporting.
package screen

import (
	"github.com/go-scope/scopeui/pkg/display"
	scopeerrors "github.com/go-scope/scopeui/pkg/errors"
	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/render"
	"github.com/go-scope/scopeui/pkg/widget"
)

// State enumerates the coordinator's configuration stages.
type State int

const (
	// StateUninitialized is the initial state; services are not set.
	StateUninitialized State = iota
	// StateServicesSet means registry and pool references are valid.
	StateServicesSet
	// StateErrorServices is terminal: a required service was nil.
	StateErrorServices
	// StateWidgetsRegistered means geometry resolution completed.
	StateWidgetsRegistered
	// StateErrorRegistration is terminal: geometry resolution aborted.
	StateErrorRegistration
	// StateAttributesSet means render objects exist and styles applied.
	StateAttributesSet
	// StateErrorAttributes is terminal: materialization aborted.
	StateErrorAttributes
	// StateComplete means all widgets are marked for redraw.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateServicesSet:
		return "services-set"
	case StateErrorServices:
		return "error-services"
	case StateWidgetsRegistered:
		return "widgets-registered"
	case StateErrorRegistration:
		return "error-registration"
	case StateAttributesSet:
		return "attributes-set"
	case StateErrorAttributes:
		return "error-attributes"
	case StateComplete:
		return "complete"
	default:
		return "invalid"
	}
}

// Failed reports whether s is one of the terminal error states.
func (s State) Failed() bool {
	return s == StateErrorServices || s == StateErrorRegistration || s == StateErrorAttributes
}

// Coordinator resolves declarative geometry against the real display
// resolution and instructs the rendering collaborator to materialize and
// style backing objects. A coordinator that reaches an error state must be
// discarded and reconstructed; there is no reset.
type Coordinator struct {
	state State
	err   error

	renderer render.Renderer
	driver   display.Driver
	registry *widget.Registry
	pool     *widget.Pool
}

// New returns a coordinator in StateUninitialized bound to its rendering
// and display collaborators.
func New(renderer render.Renderer, driver display.Driver) *Coordinator {
	return &Coordinator{renderer: renderer, driver: driver}
}

// State returns the current state.
func (c *Coordinator) State() State {
	return c.state
}

// Err returns the failure that moved the coordinator into an error state,
// or nil.
func (c *Coordinator) Err() error {
	return c.err
}

func (c *Coordinator) fail(state State, err error) State {
	c.state = state
	c.err = err
	return c.state
}

// SetServices stores the registry and pool references. Both must be
// non-nil to reach StateServicesSet; otherwise the coordinator fails to
// StateErrorServices.
func (c *Coordinator) SetServices(registry *widget.Registry, pool *widget.Pool) State {
	if c.state.Failed() {
		return c.state
	}
	c.registry = registry
	c.pool = pool
	if registry == nil || pool == nil {
		return c.fail(StateErrorServices,
			scopeerrors.Newf("screen.SetServices", scopeerrors.KindService, "registry or pool is nil"))
	}
	c.state = StateServicesSet
	return c.state
}

// ResolveGeometry computes absolute dimensions for every registered record
// from its sizing mode and the display resolution, storing percent-derived
// results back into the record. Custom records additionally get a resolved
// boundary spanning (0,0) to (width-1, height-1). A nil record aborts to
// StateErrorRegistration; records resolved before the failing entry keep
// their resolved values.
func (c *Coordinator) ResolveGeometry() State {
	// Transitions are lenient about call order except before SetServices,
	// where there is no registry to walk; stay put so a polling
	// orchestrator retries after providing services.
	if c.state.Failed() || c.state == StateUninitialized {
		return c.state
	}
	hres, vres := c.driver.Width(), c.driver.Height()

	for ty, attrs := range c.registry.All() {
		if attrs == nil {
			return c.fail(StateErrorRegistration,
				scopeerrors.Newf("screen.ResolveGeometry", scopeerrors.KindRegistration,
					"nil attribute record for type %v", ty))
		}

		width, height := attrs.Geometry.Width, attrs.Geometry.Height
		switch attrs.Geometry.Mode {
		case widget.SizingAreaPercent:
			width = geometry.AreaScaling(attrs.Geometry.Percent, hres)
			height = geometry.AreaScaling(attrs.Geometry.Percent, vres)
			attrs.Geometry.Width, attrs.Geometry.Height = width, height
		case widget.SizingDimensionPercent:
			width = geometry.DimensionScaling(attrs.Geometry.Percent, hres)
			height = geometry.DimensionScaling(attrs.Geometry.Percent, vres)
			attrs.Geometry.Width, attrs.Geometry.Height = width, height
		}

		if attrs.Custom {
			attrs.Geometry.Boundary = geometry.FromSize(width, height)
		}
	}

	c.state = StateWidgetsRegistered
	return c.state
}

// Materialize creates a backing render object for every pooled instance,
// binds draw callbacks for custom widgets and applies the matching
// record's style groups. Object creation failure or a missing record
// aborts to StateErrorAttributes.
func (c *Coordinator) Materialize() State {
	if c.state.Failed() || c.state == StateUninitialized {
		return c.state
	}

	for ty, inst := range c.pool.All() {
		obj, err := c.renderer.CreateObject(objectKind(ty), c.renderer.Root())
		if err != nil {
			return c.fail(StateErrorAttributes,
				scopeerrors.New("screen.Materialize", scopeerrors.KindAttribute, err))
		}
		inst.SetObject(obj)

		if fn := inst.DrawFunc(); fn != nil {
			c.renderer.SetUserData(obj, inst)
			c.renderer.OnDraw(obj, fn)
		}

		attrs := c.registry.Get(ty)
		if attrs == nil {
			return c.fail(StateErrorAttributes,
				scopeerrors.Newf("screen.Materialize", scopeerrors.KindAttribute,
					"no attribute record for pooled type %v", ty))
		}
		c.applyStyles(obj, attrs)
	}

	c.state = StateAttributesSet
	return c.state
}

// DrawWidgets marks every pooled widget for redraw.
func (c *Coordinator) DrawWidgets() State {
	if c.state.Failed() || c.state == StateUninitialized {
		return c.state
	}
	for _, inst := range c.pool.All() {
		c.renderer.Invalidate(inst.Object())
	}
	c.state = StateComplete
	return c.state
}

func objectKind(t widget.Type) render.ObjectKind {
	if t == widget.TypeLabel {
		return render.ObjectLabel
	}
	return render.ObjectBasic
}

// applyStyles pushes the record's style groups to the backend. A numeric
// group is applied only when at least one field differs from its zero
// default; an all-default group counts as "not configured" and the
// backend's own default stands. Zero is therefore indistinguishable from
// unset for these fields.
func (c *Coordinator) applyStyles(obj render.ObjectID, attrs *widget.Attributes) {
	part := attrs.Part

	if attrs.Spacing.Padding != 0 || attrs.Spacing.Margin != 0 {
		c.renderer.SetSpacing(obj, attrs.Spacing.Margin, attrs.Spacing.Padding, part)
	}

	c.renderer.SetPosition(obj, attrs.Position.Alignment, attrs.Position.OffsetX, attrs.Position.OffsetY)

	if attrs.Background.Color != graphics.ColorDefault || attrs.Background.Opacity != 0 {
		c.renderer.SetBackground(obj, attrs.Background.Color, attrs.Background.Opacity, part)
	}

	if attrs.Border.Width != 0 || attrs.Border.Opacity != 0 || attrs.Border.Color != graphics.ColorDefault {
		c.renderer.SetBorder(obj, render.BorderStyle{
			Width:   attrs.Border.Width,
			Color:   attrs.Border.Color,
			Opacity: attrs.Border.Opacity,
			Side:    attrs.Border.Side,
		}, part)
	}

	if attrs.Outline.Width != 0 || attrs.Outline.Opacity != 0 || attrs.Outline.Color != graphics.ColorDefault {
		c.renderer.SetOutline(obj, render.OutlineStyle{
			Width:   attrs.Outline.Width,
			Color:   attrs.Outline.Color,
			Opacity: attrs.Outline.Opacity,
		}, part)
	}

	c.renderer.SetSize(obj, attrs.Geometry.Width, attrs.Geometry.Height)

	if attrs.Text.Font != "" || attrs.Text.Color != graphics.ColorDefault ||
		attrs.Text.LetterSpacing != 0 || attrs.Text.LineSpacing != 0 {
		c.renderer.SetTypography(obj, render.TextStyle{
			Font:          attrs.Text.Font,
			Color:         attrs.Text.Color,
			Opacity:       attrs.Text.Opacity,
			LetterSpacing: attrs.Text.LetterSpacing,
			LineSpacing:   attrs.Text.LineSpacing,
			Align:         attrs.Text.Align,
			Decor:         attrs.Text.Decor,
		}, part)
	}

	if attrs.Label.Text != "" {
		c.renderer.SetLabel(obj, attrs.Label.Text, attrs.Label.LongMode, attrs.Label.Recolor)
	}

	var flags render.Flag
	if attrs.Behavior.Clickable {
		flags |= render.FlagClickable
	}
	if attrs.Behavior.Scrollable {
		flags |= render.FlagScrollable
	}
	if attrs.Behavior.Focusable {
		flags |= render.FlagFocusable
	}
	if flags != 0 {
		c.renderer.AddFlags(obj, flags)
	}
}
