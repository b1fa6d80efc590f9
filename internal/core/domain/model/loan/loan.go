package loan

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// ErrLoanIsNotConstructed is returned when using an improperly initialized Loan.
var ErrLoanIsNotConstructed = errors.New("Loan must be created via NewLoan constructor")

// Loan is a book lent to a library member. It carries three dates: when the
// book left, when it is due back, and, once returned, when it actually came
// back. No status field is stored; Status derives it on every read.
type Loan struct {
	id                   kernel.UUID
	bookID               kernel.UUID
	memberID             kernel.UUID
	loanDate             time.Time
	stipulatedReturnDate time.Time
	actualReturnDate     *time.Time

	guard guard.ConstructorGuard
}

// NewLoan creates an open Loan with no actual return date.
// The stipulated return date must not precede the loan date.
func NewLoan(
	id kernel.UUID,
	bookID kernel.UUID,
	memberID kernel.UUID,
	loanDate time.Time,
	stipulatedReturnDate time.Time,
) (*Loan, error) {
	l := &Loan{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		bookID.Validate(),
		memberID.Validate(),
	); err != nil {
		return nil, err
	}

	if loanDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("loanDate")
	}
	if stipulatedReturnDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("stipulatedReturnDate")
	}
	if truncateToDay(stipulatedReturnDate).Before(truncateToDay(loanDate)) {
		return nil, errs.NewValueIsInvalidError("stipulatedReturnDate")
	}

	l.id = id
	l.bookID = bookID
	l.memberID = memberID
	l.loanDate = loanDate
	l.stipulatedReturnDate = stipulatedReturnDate
	return l, nil
}

// RestoreLoan reconstructs a Loan from persistent storage.
func RestoreLoan(
	id kernel.UUID,
	bookID kernel.UUID,
	memberID kernel.UUID,
	loanDate time.Time,
	stipulatedReturnDate time.Time,
	actualReturnDate *time.Time,
) (*Loan, error) {
	l, err := NewLoan(id, bookID, memberID, loanDate, stipulatedReturnDate)
	if err != nil {
		return nil, err
	}

	if actualReturnDate != nil {
		returned := *actualReturnDate
		l.actualReturnDate = &returned
	}
	return l, nil
}

// Validate ensures the Loan instance was properly constructed.
func (l *Loan) Validate() error {
	if l == nil {
		return ErrLoanIsNotConstructed
	}
	return l.guard.Validate(ErrLoanIsNotConstructed)
}

// IsEqual compares two loans by their unique identifiers.
func (l *Loan) IsEqual(other *Loan) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the loan's unique identifier.
func (l *Loan) ID() kernel.UUID {
	return l.id
}

// BookID returns the identifier of the lent book.
func (l *Loan) BookID() kernel.UUID {
	return l.bookID
}

// MemberID returns the identifier of the borrowing member.
func (l *Loan) MemberID() kernel.UUID {
	return l.memberID
}

// LoanDate returns the date the book was lent.
func (l *Loan) LoanDate() time.Time {
	return l.loanDate
}

// StipulatedReturnDate returns the agreed due date.
func (l *Loan) StipulatedReturnDate() time.Time {
	return l.stipulatedReturnDate
}

// ActualReturnDate returns when the book came back, or nil while it is out.
func (l *Loan) ActualReturnDate() *time.Time {
	return l.actualReturnDate
}

// MarkReturned records the actual return date.
// The return date may be recorded only once; a second attempt is a conflict.
func (l *Loan) MarkReturned(returnedAt time.Time) error {
	if l.actualReturnDate != nil {
		return errs.NewConflictError("loan_already_returned")
	}
	if returnedAt.IsZero() {
		return errs.NewValueIsRequiredError("actualReturnDate")
	}

	l.actualReturnDate = &returnedAt
	return nil
}

// Status derives the loan's display status for the given reference day.
// It is a pure computation; nothing is stored.
func (l *Loan) Status(today time.Time) Status {
	return DeriveStatus(l.actualReturnDate, l.stipulatedReturnDate, today)
}
