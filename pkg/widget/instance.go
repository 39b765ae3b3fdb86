package widget

import "github.com/go-scope/scopeui/pkg/render"

// Widget is implemented by every pooled widget instance. An instance is an
// opaque handle: it carries a non-owning back-reference to its backing
// render object, set exactly once during materialization, and an optional
// draw-event callback for custom widgets.
type Widget interface {
	// Object returns the backing render object, or render.NoObject before
	// materialization.
	Object() render.ObjectID
	// SetObject records the backing render object.
	SetObject(id render.ObjectID)
	// DrawFunc returns the draw-event callback, or nil for builtins.
	DrawFunc() render.DrawFunc
}

// Base holds the instance state common to all widgets. Concrete widget
// types embed it.
type Base struct {
	object render.ObjectID
	drawFn render.DrawFunc
}

func (b *Base) Object() render.ObjectID {
	return b.object
}

func (b *Base) SetObject(id render.ObjectID) {
	b.object = id
}

func (b *Base) DrawFunc() render.DrawFunc {
	return b.drawFn
}

// SetDrawFunc registers the draw-event callback, or nil to clear it.
func (b *Base) SetDrawFunc(fn render.DrawFunc) {
	b.drawFn = fn
}
