// Package builder applies type-specific payloads onto pooled widget
// instances. It runs after the screen coordinator has resolved geometry,
// because custom widgets compute their internal layout from the resolved
// boundary stored in their attribute record.
package builder

import (
	scopeerrors "github.com/go-scope/scopeui/pkg/errors"
	"github.com/go-scope/scopeui/pkg/widget"
)

// State enumerates the builder's configuration stages.
type State int

const (
	// StateUninitialized is the initial state; services are not set.
	StateUninitialized State = iota
	// StateServicesSet means registry and pool references are valid.
	StateServicesSet
	// StateErrorServices is terminal: a required service was nil.
	StateErrorServices
	// StateBuilding is in effect while Build walks the registry.
	StateBuilding
	// StateComplete means every payload was applied.
	StateComplete
	// StateErrorBuilding is terminal: a payload could not be applied.
	StateErrorBuilding
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateServicesSet:
		return "services-set"
	case StateErrorServices:
		return "error-services"
	case StateBuilding:
		return "building"
	case StateComplete:
		return "complete"
	case StateErrorBuilding:
		return "error-building"
	default:
		return "invalid"
	}
}

// Failed reports whether s is one of the terminal error states.
func (s State) Failed() bool {
	return s == StateErrorServices || s == StateErrorBuilding
}

// Builder walks the attribute registry and dispatches each record's
// payload to the matching pooled instance. Like the screen coordinator it
// is a one-shot machine: error states are terminal and the builder never
// logs; the orchestrator reads the returned state and Err.
type Builder struct {
	state State
	err   error

	registry *widget.Registry
	pool     *widget.Pool
}

// New returns a builder in StateUninitialized.
func New() *Builder {
	return &Builder{}
}

// State returns the current state.
func (b *Builder) State() State {
	return b.state
}

// Err returns the failure that moved the builder into an error state, or
// nil.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(op string, kind scopeerrors.Kind, format string, args ...any) State {
	b.state = StateErrorBuilding
	b.err = scopeerrors.Newf(op, kind, format, args...)
	return b.state
}

// SetServices stores the registry and pool references. Both must be
// non-nil to reach StateServicesSet.
func (b *Builder) SetServices(registry *widget.Registry, pool *widget.Pool) State {
	if b.state.Failed() {
		return b.state
	}
	b.registry = registry
	b.pool = pool
	if registry == nil || pool == nil {
		b.state = StateErrorServices
		b.err = scopeerrors.Newf("builder.SetServices", scopeerrors.KindService, "registry or pool is nil")
		return b.state
	}
	b.state = StateServicesSet
	return b.state
}

// Build applies every registered record's payload to its pooled instance.
// Every record must have a pooled instance, payload or not; a missing
// instance aborts to StateErrorBuilding, as does a payload that does not
// match the instance's concrete type. Records without a payload need no
// further building once the instance check passes. Instances built before
// a failing entry keep their configuration.
func (b *Builder) Build() State {
	// Before SetServices there is nothing to walk; stay put so a polling
	// orchestrator retries after providing services.
	if b.state.Failed() || b.state == StateUninitialized {
		return b.state
	}
	b.state = StateBuilding

	for ty, attrs := range b.registry.All() {
		if attrs == nil {
			return b.fail("builder.Build", scopeerrors.KindBuild,
				"nil attribute record for type %v", ty)
		}
		inst := b.pool.Get(ty)
		if inst == nil {
			return b.fail("builder.Build", scopeerrors.KindBuild,
				"no pooled instance for type %v", ty)
		}

		switch payload := attrs.Payload.(type) {
		case widget.GraphPayload:
			grat, ok := inst.(*widget.Graticules)
			if !ok {
				return b.fail("builder.Build", scopeerrors.KindBuild,
					"graph payload for type %v but instance is %T", ty, inst)
			}
			if err := grat.Configure(attrs.Geometry.Boundary, payload); err != nil {
				b.state = StateErrorBuilding
				b.err = scopeerrors.New("builder.Build", scopeerrors.KindBuild, err)
				return b.state
			}
		}
	}

	b.state = StateComplete
	return b.state
}
