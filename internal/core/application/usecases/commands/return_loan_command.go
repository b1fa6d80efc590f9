package commands

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrReturnLoanCommandIsNotConstructed = errors.New(
		"ReturnLoanCommand must be created via NewReturnLoanCommand constructor",
	)
	ErrReturnDateIsRequired = errs.NewValueIsRequiredError("returnDate")
)

// ReturnLoanCommand represents a request to record a book's return.
type ReturnLoanCommand struct { //nolint:recvcheck //using for validation
	loanID     kernel.UUID
	returnedAt time.Time

	guard guard.ConstructorGuard
}

// NewReturnLoanCommand creates a command to record a loan's return date.
func NewReturnLoanCommand(loanID kernel.UUID, returnedAt time.Time) (ReturnLoanCommand, error) {
	command := ReturnLoanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLoanID(loanID),
		command.setReturnedAt(returnedAt),
	); err != nil {
		return ReturnLoanCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnLoanCommand) Validate() error {
	return c.guard.Validate(ErrReturnLoanCommandIsNotConstructed)
}

// LoanID returns the identifier of the loan being returned.
func (c ReturnLoanCommand) LoanID() kernel.UUID {
	return c.loanID
}

// ReturnedAt returns the actual return date to record.
func (c ReturnLoanCommand) ReturnedAt() time.Time {
	return c.returnedAt
}

func (c *ReturnLoanCommand) setLoanID(loanID kernel.UUID) error {
	if err := loanID.Validate(); err != nil {
		return err
	}

	c.loanID = loanID
	return nil
}

func (c *ReturnLoanCommand) setReturnedAt(returnedAt time.Time) error {
	if returnedAt.IsZero() {
		return ErrReturnDateIsRequired
	}

	c.returnedAt = returnedAt
	return nil
}
