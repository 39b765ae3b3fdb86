// Package errors provides structured error values for the widget
// configuration pipeline. The pipeline's state machines never print;
// failures surface as a terminal state plus one of these values, and the
// orchestrator owns all user-visible reporting.
package errors

import "fmt"

// Kind categorizes a pipeline failure.
type Kind int

const (
	// KindUnknown indicates an error of unknown category.
	KindUnknown Kind = iota
	// KindService indicates a required collaborator was nil.
	KindService
	// KindRegistration indicates a registry entry failed geometry resolution.
	KindRegistration
	// KindAttribute indicates render object creation or style application failed.
	KindAttribute
	// KindBuild indicates a registry/pool mismatch or a failed widget configure.
	KindBuild
	// KindStorage indicates a fixed-capacity store rejected an insert.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindService:
		return "service"
	case KindRegistration:
		return "registration"
	case KindAttribute:
		return "attribute"
	case KindBuild:
		return "build"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is a structured pipeline error.
type Error struct {
	// Op is the operation that failed (e.g., "screen.Materialize").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an Error from an operation, kind and underlying error.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Newf constructs an Error with a formatted message as the underlying error.
func Newf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
