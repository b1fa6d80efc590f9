package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := buildIssuedOrder(t)
	driverPhone := mustPhone(t, "5491166660000")
	testDriver := buildDriver(t, driverPhone)
	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), driverPhone)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverPhone).Return(testDriver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Dispatched, testOrder.Status())
	require.NotNil(t, testOrder.Driver())
	assert.True(t, testOrder.Driver().IsEqual(driverPhone))
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDriverCommand{} // not constructed properly

	factory := new(MockAssignUoWFactory)
	handler := commands.NewAssignDriverCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDriverCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()

	driverPhone := mustPhone(t, "5491166660000")
	cmd, err := commands.NewAssignDriverCommand(kernel.NewUUID(), driverPhone)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverPhone).Return(nil, errs.NewObjectNotFoundError("phone", driverPhone.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignDriverCommandHandler_Handle_ArchivedDriver(t *testing.T) {
	ctx := t.Context()

	driverPhone := mustPhone(t, "5491166660000")
	archivedDriver := buildDriver(t, driverPhone)
	archivedDriver.Archive()
	cmd, err := commands.NewAssignDriverCommand(kernel.NewUUID(), driverPhone)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverPhone).Return(archivedDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDriverIsArchived)
	assert.True(t, errs.IsConflict(err))
}

func TestAssignDriverCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := buildIssuedOrder(t)
	require.NoError(t, testOrder.Cancel(testOrder.CreatedAt()))

	driverPhone := mustPhone(t, "5491166660000")
	testDriver := buildDriver(t, driverPhone)
	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), driverPhone)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverPhone).Return(testDriver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()

	testOrder := buildIssuedOrder(t)
	driverPhone := mustPhone(t, "5491166660000")
	testDriver := buildDriver(t, driverPhone)
	cmd, err := commands.NewAssignDriverCommand(testOrder.ID(), driverPhone)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	// A concurrent update won the race; the optimistic check fails.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverPhone).Return(testDriver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewVersionIsInvalidError(testOrder.ID().String(), nil)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	assert.True(t, errs.IsConflict(err))
}

func TestAssignDriverCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAssignDriverCommand(kernel.NewUUID(), mustPhone(t, "5491166660000"))
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockAssignUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}
