// Package errors provides structured error handling for the Roster framework.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidArgument indicates a nil or otherwise unusable argument,
	// such as a nil data sequence passed to Populate.
	KindInvalidArgument
	// KindIndexOutOfRange indicates an index outside the valid slot range.
	KindIndexOutOfRange
	// KindInvalidState indicates an operation that would violate pool
	// ordering, such as requesting a slot past the contiguous growth edge.
	KindInvalidState
	// KindNotFound indicates a slot lookup that matched nothing.
	KindNotFound
	// KindUnrecognizedVariant indicates a record the caller's selector
	// could not classify into a view type.
	KindUnrecognizedVariant
	// KindBind indicates a view's Populate call failed.
	KindBind
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindIndexOutOfRange:
		return "index out of range"
	case KindInvalidState:
		return "invalid state"
	case KindNotFound:
		return "not found"
	case KindUnrecognizedVariant:
		return "unrecognized variant"
	case KindBind:
		return "bind"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RosterError represents a structured error in the Roster framework.
type RosterError struct {
	// Op is the operation that failed (e.g., "pool.GetOrCreate").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Index is the slot or record index involved, or -1 when not applicable.
	Index int
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RosterError) Error() string {
	if e.Index >= 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s [%s] index=%d: %v", e.Op, e.Kind, e.Index, e.Err)
		}
		return fmt.Sprintf("%s [%s] index=%d", e.Op, e.Kind, e.Index)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
}

func (e *RosterError) Unwrap() error {
	return e.Err
}

// New constructs a RosterError without an index.
func New(op string, kind Kind, err error) *RosterError {
	return &RosterError{Op: op, Kind: kind, Index: -1, Err: err, Timestamp: time.Now()}
}

// NewAt constructs a RosterError tied to a slot or record index.
func NewAt(op string, kind Kind, index int, err error) *RosterError {
	return &RosterError{Op: op, Kind: kind, Index: index, Err: err, Timestamp: time.Now()}
}

// IsKind reports whether err is (or wraps) a RosterError of the given kind.
func IsKind(err error, kind Kind) bool {
	var re *RosterError
	if stderrors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "list.Populate").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BindError represents a failure to push a data record into a view instance.
type BindError struct {
	// View is the type name of the view instance whose Populate failed.
	View string
	// Record is the type name of the data record being bound.
	Record string
	// Index is the position of the record in the data sequence.
	Index int
	// Err is the underlying error (nil for panics).
	Err error
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic binding %s into %s at index %d: %v", e.Record, e.View, e.Index, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("failed to bind %s into %s at index %d: %v", e.Record, e.View, e.Index, e.Err)
	}
	return fmt.Sprintf("unknown bind failure for %s at index %d", e.View, e.Index)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Handler receives errors reported by the Roster framework.
type Handler interface {
	// HandleError is called when a RosterError occurs.
	HandleError(err *RosterError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBindError is called when a view bind fails.
	HandleBindError(err *BindError)
}
