package loan

import "time"

// Status is the derived lifecycle state of a loan.
// It is never persisted; every read recomputes it from the loan's dates.
type Status string

const (
	// Active means the book is out and not yet due.
	Active Status = "active"
	// Overdue means the book is out past its stipulated return date.
	Overdue Status = "overdue"
	// Returned means the book came back.
	Returned Status = "returned"
)

// String returns the storage-free display representation of the status.
func (s Status) String() string {
	return string(s)
}

// DeriveStatus computes a loan's status from its dates.
//
// A recorded actual return date wins unconditionally, even when the return
// happened after the due date. Otherwise the reference day is compared to
// the stipulated return date at day granularity: the loan is overdue only
// from the day after the due date, the due date itself is still active.
func DeriveStatus(actualReturnDate *time.Time, stipulatedReturnDate, today time.Time) Status {
	if actualReturnDate != nil {
		return Returned
	}
	if truncateToDay(today).After(truncateToDay(stipulatedReturnDate)) {
		return Overdue
	}
	return Active
}

// truncateToDay zeroes the time-of-day so comparisons are date-only.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
