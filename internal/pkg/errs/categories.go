package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conflict category.
var (
	ErrConflict          = errors.New("conflict")
	ErrIllegalTransition = errors.New("illegal transition")
)

// ConflictError indicates that the current stored state or a storage
// constraint forbids the requested change, e.g. deleting an order that is
// not cancelled, or a uniqueness violation on a client phone.
type ConflictError struct {
	Kind  string
	Cause error
}

// NewConflictError creates a ConflictError of the given kind.
// Kind is a short machine-readable tag such as "order_not_cancelled".
func NewConflictError(kind string) *ConflictError {
	return &ConflictError{Kind: kind}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(kind string, cause error) *ConflictError {
	return &ConflictError{Kind: kind, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Kind, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.Kind))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// IllegalTransitionError indicates a state machine guard violation: the
// requested event is not allowed from the current state.
type IllegalTransitionError struct {
	From  string
	Event string
}

// NewIllegalTransitionError creates an IllegalTransitionError describing the
// current state and the rejected event.
func NewIllegalTransitionError(from, event string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, Event: event}
}

func (e *IllegalTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is not allowed from %s", ErrIllegalTransition, e.Event, e.From))
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// IsValidation reports whether err belongs to the validation category:
// the caller's input is malformed and the operation is safe to retry after
// correcting it.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// IsConflict reports whether err belongs to the conflict category:
// stored state or a constraint forbids the operation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrIllegalTransition) ||
		errors.Is(err, ErrVersionIsInvalid)
}

// IsNotFound reports whether err indicates a missing object.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}
