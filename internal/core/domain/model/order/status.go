package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Issued ──assign──> Dispatched ──cancel──> Cancelled
//	   ^                  │    │
//	   └────unassign──────┘    └──assign (reassignment allowed)
//	   │
//	   └──────cancel────────────────────────> Cancelled
//
// Cancelled is terminal; a cancelled order can only be deleted.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Issued is the initial status when an order is created.
	// Orders in this status are waiting to be assigned to a driver.
	Issued

	// Dispatched indicates the order has been assigned to a driver.
	// Orders can be reassigned or unassigned while in this status.
	Dispatched

	// Cancelled indicates the order was cancelled.
	// This is a terminal state; only deletion is allowed afterwards.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Issued:     "issued",
		Dispatched: "dispatched",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Issued:     "issued",
		Dispatched: "dispatched",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Issued, Dispatched, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, e.g. "issued".
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a Status from its storage representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Assign transitions the status to Dispatched.
//
// Valid transitions:
//   - Issued -> Dispatched (initial assignment)
//   - Dispatched -> Dispatched (reassignment to a different driver)
//
// Any other source state fails with an IllegalTransitionError.
func (s Status) Assign() (Status, error) {
	if s != Issued && s != Dispatched {
		return 0, errs.NewIllegalTransitionError(s.String(), "assign")
	}
	return Dispatched, nil
}

// Unassign transitions the status back to Issued, clearing the assignment.
// Only valid from Dispatched.
func (s Status) Unassign() (Status, error) {
	if s != Dispatched {
		return 0, errs.NewIllegalTransitionError(s.String(), "unassign")
	}
	return Issued, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from Issued and Dispatched. Cancelling an already-cancelled order is
// an idempotent no-op, not an error.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Issued, Dispatched, Cancelled:
		return Cancelled, nil
	default:
		return 0, errs.NewIllegalTransitionError(s.String(), "cancel")
	}
}

// CanDelete reports whether an order in this status may be hard-deleted.
// Deletion is restricted to cancelled orders so live operational state is
// never destroyed.
func (s Status) CanDelete() bool {
	return s == Cancelled
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment: a driver reference is present if and only if the order
// is dispatched.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != Dispatched {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()))
	}
	if !hasDriver && s == Dispatched {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()))
	}
	return nil
}
