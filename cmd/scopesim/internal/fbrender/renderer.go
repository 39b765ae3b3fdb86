// Package fbrender is a software rendering backend for the simulator. It
// implements the pipeline's renderer contract by painting objects into an
// offscreen canvas and flushing the result through a display driver, which
// is what the real firmware's backend does against display hardware.
package fbrender

import (
	"github.com/go-scope/scopeui/pkg/display"
	scopeerrors "github.com/go-scope/scopeui/pkg/errors"
	"github.com/go-scope/scopeui/pkg/geometry"
	"github.com/go-scope/scopeui/pkg/graphics"
	"github.com/go-scope/scopeui/pkg/render"
	"github.com/go-scope/scopeui/pkg/store"
)

// maxObjects bounds the object table. The widget set is small and static;
// a fixed table keeps the backend allocation-free after construction, like
// the rest of the pipeline.
const maxObjects = 32

type object struct {
	kind    render.ObjectKind
	parent  render.ObjectID
	align   render.Align
	offsetX int
	offsetY int
	width   int
	height  int

	background *backgroundStyle
	border     *render.BorderStyle
	outline    *render.OutlineStyle
	text       *render.TextStyle
	label      string
	hasLabel   bool
	longMode   render.LongMode
	flags      render.Flag

	userData any
	drawFn   render.DrawFunc
	dirty    bool
}

type backgroundStyle struct {
	color   graphics.Color
	opacity uint8
}

// Renderer paints objects into a canvas and flushes through a display
// driver. Objects form a flat tree rooted at a screen-sized root object;
// painting walks creation order, so later objects draw over earlier ones.
type Renderer struct {
	driver  display.Driver
	canvas  *Canvas
	objects *store.Map[render.ObjectID, *object]
	order   []render.ObjectID
	nextID  render.ObjectID
	root    render.ObjectID
}

// New builds a renderer over the given driver and creates the root object
// spanning the full panel.
func New(driver display.Driver) *Renderer {
	r := &Renderer{
		driver:  driver,
		canvas:  NewCanvas(driver.Width(), driver.Height(), driver.FillColor()),
		objects: store.New[render.ObjectID, *object](maxObjects),
	}

	r.nextID = 1
	r.root = r.nextID
	root := &object{
		kind:   render.ObjectBasic,
		width:  driver.Width(),
		height: driver.Height(),
	}
	// Capacity is positive, the table is empty: this cannot fail.
	_ = r.objects.Insert(r.root, root)
	r.order = append(r.order, r.root)

	return r
}

// Root returns the screen-sized root object.
func (r *Renderer) Root() render.ObjectID {
	return r.root
}

// CreateObject materializes a new object parented to parent.
func (r *Renderer) CreateObject(kind render.ObjectKind, parent render.ObjectID) (render.ObjectID, error) {
	id := r.nextID + 1
	o := &object{kind: kind, parent: parent, dirty: true}
	if err := r.objects.Insert(id, o); err != nil {
		return render.NoObject, scopeerrors.New("fbrender.CreateObject", scopeerrors.KindAttribute, err)
	}
	r.nextID = id
	r.order = append(r.order, id)
	return id, nil
}

func (r *Renderer) lookup(id render.ObjectID) *object {
	o, ok := r.objects.Find(id)
	if !ok {
		return nil
	}
	return *o
}

// SetUserData binds data to the object for draw-event recovery.
func (r *Renderer) SetUserData(id render.ObjectID, data any) {
	if o := r.lookup(id); o != nil {
		o.userData = data
	}
}

// OnDraw registers a draw callback invoked on every repaint of the object.
func (r *Renderer) OnDraw(id render.ObjectID, fn render.DrawFunc) {
	if o := r.lookup(id); o != nil {
		o.drawFn = fn
	}
}

func (r *Renderer) SetPosition(id render.ObjectID, align render.Align, offsetX, offsetY int) {
	if o := r.lookup(id); o != nil {
		o.align = align
		o.offsetX = offsetX
		o.offsetY = offsetY
	}
}

func (r *Renderer) SetSize(id render.ObjectID, width, height int) {
	if o := r.lookup(id); o != nil {
		o.width = width
		o.height = height
	}
}

// SetSpacing is accepted and ignored: the software backend has no layout
// engine, so margin and padding have nothing to push against.
func (r *Renderer) SetSpacing(id render.ObjectID, margin, padding int, part render.Part) {}

func (r *Renderer) SetBackground(id render.ObjectID, color graphics.Color, opacity uint8, part render.Part) {
	if o := r.lookup(id); o != nil {
		o.background = &backgroundStyle{color: color, opacity: opacity}
	}
}

func (r *Renderer) SetBorder(id render.ObjectID, style render.BorderStyle, part render.Part) {
	if o := r.lookup(id); o != nil {
		o.border = &style
	}
}

func (r *Renderer) SetOutline(id render.ObjectID, style render.OutlineStyle, part render.Part) {
	if o := r.lookup(id); o != nil {
		o.outline = &style
	}
}

func (r *Renderer) SetTypography(id render.ObjectID, style render.TextStyle, part render.Part) {
	if o := r.lookup(id); o != nil {
		o.text = &style
	}
}

func (r *Renderer) SetLabel(id render.ObjectID, text string, mode render.LongMode, recolor bool) {
	if o := r.lookup(id); o != nil {
		o.label = text
		o.hasLabel = true
		o.longMode = mode
	}
}

func (r *Renderer) AddFlags(id render.ObjectID, flags render.Flag) {
	if o := r.lookup(id); o != nil {
		o.flags |= flags
	}
}

// Invalidate marks the object for repaint on the next Refresh.
func (r *Renderer) Invalidate(id render.ObjectID) {
	if o := r.lookup(id); o != nil {
		o.dirty = true
	}
}

// Canvas exposes the offscreen buffer, primarily for presenters that blit
// it somewhere other than the driver.
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// Refresh repaints the object tree if anything is dirty and flushes the
// canvas through the driver. done, if non-nil, is forwarded to the
// driver's flush completion.
func (r *Renderer) Refresh(done func()) {
	if !r.anyDirty() {
		if done != nil {
			done()
		}
		return
	}

	r.canvas.Clear()
	for _, id := range r.order {
		o := r.lookup(id)
		if o == nil {
			continue
		}
		r.paint(id, o)
		o.dirty = false
	}

	r.driver.Flush(r.canvas.Bounds(), r.canvas.Pixels(), done)
}

func (r *Renderer) anyDirty() bool {
	for _, id := range r.order {
		if o := r.lookup(id); o != nil && o.dirty {
			return true
		}
	}
	return false
}

// rectOf resolves the object's absolute inclusive rectangle from its
// parent chain, alignment anchor and offsets.
func (r *Renderer) rectOf(o *object) geometry.Boundary {
	if o.parent == render.NoObject {
		return geometry.FromSize(o.width, o.height)
	}
	parent := r.lookup(o.parent)
	if parent == nil {
		return geometry.FromSize(o.width, o.height)
	}
	pr := r.rectOf(parent)

	pw, ph := pr.Width(), pr.Height()
	x, y := pr.X1, pr.Y1

	switch o.align {
	case render.AlignTopMid:
		x += (pw - o.width) / 2
	case render.AlignTopRight:
		x += pw - o.width
	case render.AlignLeftMid:
		y += (ph - o.height) / 2
	case render.AlignCenter:
		x += (pw - o.width) / 2
		y += (ph - o.height) / 2
	case render.AlignRightMid:
		x += pw - o.width
		y += (ph - o.height) / 2
	case render.AlignBottomLeft:
		y += ph - o.height
	case render.AlignBottomMid:
		x += (pw - o.width) / 2
		y += ph - o.height
	case render.AlignBottomRight:
		x += pw - o.width
		y += ph - o.height
	}

	x += o.offsetX
	y += o.offsetY
	return geometry.Boundary{X1: x, Y1: y, X2: x + o.width - 1, Y2: y + o.height - 1}
}

func (r *Renderer) paint(id render.ObjectID, o *object) {
	rect := r.rectOf(o)

	if o.background != nil && o.background.opacity > 0 {
		r.canvas.FillRect(rect, o.background.color)
	}

	if o.outline != nil && o.outline.Width > 0 {
		outer := geometry.Boundary{
			X1: rect.X1 - o.outline.Width,
			Y1: rect.Y1 - o.outline.Width,
			X2: rect.X2 + o.outline.Width,
			Y2: rect.Y2 + o.outline.Width,
		}
		r.canvas.StrokeRect(outer, o.outline.Width, o.outline.Color, render.BorderSideFull)
	}

	if o.border != nil && o.border.Width > 0 {
		side := o.border.Side
		if side == render.BorderSideNone {
			side = render.BorderSideFull
		}
		r.canvas.StrokeRect(rect, o.border.Width, o.border.Color, side)
	}

	if o.hasLabel {
		r.drawLabel(rect, o)
	}

	if o.drawFn != nil {
		o.drawFn(render.DrawEvent{
			Target:   id,
			Layer:    offsetLayer{canvas: r.canvas, dx: rect.X1, dy: rect.Y1},
			UserData: o.userData,
		})
	}
}
