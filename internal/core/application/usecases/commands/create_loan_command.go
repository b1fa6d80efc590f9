package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateLoanCommandIsNotConstructed = errors.New(
		"CreateLoanCommand must be created via NewCreateLoanCommand constructor",
	)
	ErrLoanDateIsRequired             = errs.NewValueIsRequiredError("loanDate")
	ErrStipulatedReturnDateIsRequired = errs.NewValueIsRequiredError("stipulatedReturnDate")
)

// CreateLoanCommand represents a request to lend a book to a member.
type CreateLoanCommand struct { //nolint:recvcheck //using for validation
	loanID               kernel.UUID
	bookID               kernel.UUID
	memberID             kernel.UUID
	loanDate             time.Time
	stipulatedReturnDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateLoanCommand creates a command to register a new loan.
// The loan-date/due-date ordering rule is enforced by the Loan constructor
// in the handler.
func NewCreateLoanCommand(
	loanID kernel.UUID,
	bookID kernel.UUID,
	memberID kernel.UUID,
	loanDate time.Time,
	stipulatedReturnDate time.Time,
) (CreateLoanCommand, error) {
	command := CreateLoanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLoanID(loanID),
		command.setBookID(bookID),
		command.setMemberID(memberID),
		command.setDates(loanDate, stipulatedReturnDate),
	); err != nil {
		return CreateLoanCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoanCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoanCommandIsNotConstructed)
}

// LoanID returns the identifier for the new loan.
func (c CreateLoanCommand) LoanID() kernel.UUID {
	return c.loanID
}

// BookID returns the identifier of the lent book.
func (c CreateLoanCommand) BookID() kernel.UUID {
	return c.bookID
}

// MemberID returns the identifier of the borrowing member.
func (c CreateLoanCommand) MemberID() kernel.UUID {
	return c.memberID
}

// LoanDate returns the date the book leaves.
func (c CreateLoanCommand) LoanDate() time.Time {
	return c.loanDate
}

// StipulatedReturnDate returns the agreed due date.
func (c CreateLoanCommand) StipulatedReturnDate() time.Time {
	return c.stipulatedReturnDate
}

func (c *CreateLoanCommand) setLoanID(loanID kernel.UUID) error {
	if err := loanID.Validate(); err != nil {
		return err
	}

	c.loanID = loanID
	return nil
}

func (c *CreateLoanCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}

func (c *CreateLoanCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *CreateLoanCommand) setDates(loanDate, stipulatedReturnDate time.Time) error {
	if loanDate.IsZero() {
		return ErrLoanDateIsRequired
	}
	if stipulatedReturnDate.IsZero() {
		return ErrStipulatedReturnDateIsRequired
	}

	c.loanDate = loanDate
	c.stipulatedReturnDate = stipulatedReturnDate
	return nil
}
