package widget

import (
	"iter"

	scopeerrors "github.com/go-scope/scopeui/pkg/errors"
	"github.com/go-scope/scopeui/pkg/store"
)

// MaxWidgets is the slot capacity of the registry and the pool. It is
// sized so a full product definition stays under the recommended 0.7 load
// factor of the backing map.
const MaxWidgets = 10

// Registry maps widget types to their declarative attribute records. It
// holds non-owning pointers to externally constructed records and has no
// lifecycle responsibility for them.
//
// A Registry is an explicit service: construct one per process (or per
// test) and pass it by reference to the stages that need it.
type Registry struct {
	table *store.Map[Type, *Attributes]
}

// NewRegistry returns an empty registry with capacity for MaxWidgets
// records.
func NewRegistry() *Registry {
	return &Registry{table: store.New[Type, *Attributes](MaxWidgets)}
}

// Register stores the record for its type, replacing any existing record
// for the same type. A capacity overflow surfaces as a storage error.
func (r *Registry) Register(t Type, attrs *Attributes) error {
	if err := r.table.Insert(t, attrs); err != nil {
		return scopeerrors.New("widget.Register", scopeerrors.KindStorage, err)
	}
	return nil
}

// Get returns the record for the type, or nil if the type is not
// registered. Absence is a legitimate lookup result, not an error.
func (r *Registry) Get(t Type) *Attributes {
	if p, ok := r.table.Find(t); ok {
		return *p
	}
	return nil
}

// Remove drops the record for the type and reports whether it was present.
func (r *Registry) Remove(t Type) bool {
	return r.table.Remove(t)
}

// IsEmpty reports whether no records are registered.
func (r *Registry) IsEmpty() bool {
	return r.table.IsEmpty()
}

// All iterates the registered records in table order.
func (r *Registry) All() iter.Seq2[Type, *Attributes] {
	return func(yield func(Type, *Attributes) bool) {
		for t, attrs := range r.table.All() {
			if !yield(t, *attrs) {
				return
			}
		}
	}
}
