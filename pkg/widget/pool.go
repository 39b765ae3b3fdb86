package widget

import (
	"iter"

	scopeerrors "github.com/go-scope/scopeui/pkg/errors"
	"github.com/go-scope/scopeui/pkg/store"
)

// Pool maps widget types to their live instances. Like the registry it
// stores non-owning references: instances are constructed by definition
// code at startup and live for the process lifetime.
type Pool struct {
	table *store.Map[Type, Widget]
}

// NewPool returns an empty pool with capacity for MaxWidgets instances.
func NewPool() *Pool {
	return &Pool{table: store.New[Type, Widget](MaxWidgets)}
}

// Add stores the instance for its type, replacing any existing instance
// for the same type. A capacity overflow surfaces as a storage error.
func (p *Pool) Add(t Type, w Widget) error {
	if err := p.table.Insert(t, w); err != nil {
		return scopeerrors.New("widget.Add", scopeerrors.KindStorage, err)
	}
	return nil
}

// Get returns the instance for the type, or nil if none is pooled.
func (p *Pool) Get(t Type) Widget {
	if v, ok := p.table.Find(t); ok {
		return *v
	}
	return nil
}

// Remove drops the instance for the type and reports whether it was
// present.
func (p *Pool) Remove(t Type) bool {
	return p.table.Remove(t)
}

// IsEmpty reports whether no instances are pooled.
func (p *Pool) IsEmpty() bool {
	return p.table.IsEmpty()
}

// All iterates the pooled instances in table order.
func (p *Pool) All() iter.Seq2[Type, Widget] {
	return func(yield func(Type, Widget) bool) {
		for t, w := range p.table.All() {
			if !yield(t, *w) {
				return
			}
		}
	}
}
