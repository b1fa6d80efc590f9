package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/pkg/errs"
)

func TestReturnLoanCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testLoan := buildOpenLoan(t)
	returnedAt := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewReturnLoanCommand(testLoan.ID(), returnedAt)
	require.NoError(t, err)

	loanRepo := new(MockLoanRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoanRepository").Return(loanRepo).Once(),
		loanRepo.On("Get", ctx, testLoan.ID()).Return(testLoan, nil).Once(),
		loanRepo.On("Update", ctx, mock.AnythingOfType("*loan.Loan")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoanUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReturnLoanCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testLoan.ActualReturnDate())
	assert.Equal(t, returnedAt, *testLoan.ActualReturnDate())
	uow.AssertExpectations(t)
}

func TestReturnLoanCommandHandler_Handle_AlreadyReturned(t *testing.T) {
	ctx := t.Context()

	testLoan := buildOpenLoan(t)
	require.NoError(t, testLoan.MarkReturned(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)))

	cmd, err := commands.NewReturnLoanCommand(testLoan.ID(),
		time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	loanRepo := new(MockLoanRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoanRepository").Return(loanRepo).Once(),
		loanRepo.On("Get", ctx, testLoan.ID()).Return(testLoan, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoanUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReturnLoanCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
	loanRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
