package commands

import (
	"context"
)

// ReturnLoanCommandHandler handles recording a book's return.
// The return date is write-once; recording it again is a conflict.
type ReturnLoanCommandHandler struct {
	uowFactory LoanUoWFactory
}

// NewReturnLoanCommandHandler creates a handler for loan return operations.
func NewReturnLoanCommandHandler(uowFactory LoanUoWFactory) ReturnLoanCommandHandler {
	return ReturnLoanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the loan return command.
func (h ReturnLoanCommandHandler) Handle(ctx context.Context, command ReturnLoanCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loanRepo := uow.LoanRepository()
	aggregate, err := loanRepo.Get(ctx, command.LoanID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkReturned(command.ReturnedAt()); err != nil {
		return err
	}

	if err = loanRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
