package commands

import (
	"context"

	"pedidos/internal/core/domain/model/loan"
)

// CreateLoanCommandHandler handles registering a new book loan.
type CreateLoanCommandHandler struct {
	uowFactory LoanUoWFactory
}

// NewCreateLoanCommandHandler creates a handler for loan registration.
func NewCreateLoanCommandHandler(uowFactory LoanUoWFactory) CreateLoanCommandHandler {
	return CreateLoanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the loan registration command.
func (h CreateLoanCommandHandler) Handle(ctx context.Context, command CreateLoanCommand) error {
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

	aggregate, err := loan.NewLoan(command.LoanID(), command.BookID(), command.MemberID(),
		command.LoanDate(), command.StipulatedReturnDate())
	if err != nil {
		return err
	}

	if err = uow.LoanRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
