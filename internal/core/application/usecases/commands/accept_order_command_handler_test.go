package commands_test

import (
	"errors"
	"testing"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := buildAssignedOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockBackendGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		gateway.On("ConfirmAccept", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, testOrder.Status())
	assert.Equal(t, int64(2), testOrder.Version())
	orderRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	gateway := new(MockBackendGateway)
	handler := commands.NewAcceptOrderCommandHandler(factory, gateway)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAcceptOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	testOrder := buildEnRouteOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockBackendGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	gateway.AssertNotCalled(t, "ConfirmAccept")
	uow.AssertNotCalled(t, "Commit")
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockBackendGateway)

	notFound := errors.New("order not found")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, notFound)
}

func TestAcceptOrderCommandHandler_Handle_GatewayRejection(t *testing.T) {
	ctx := t.Context()
	testOrder := buildAssignedOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockBackendGateway)

	rejection := ports.NewRequestRejectedError("accept", "order reassigned")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		gateway.On("ConfirmAccept", ctx, testOrder.ID()).Return(rejection).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var rejected *ports.RequestRejectedError
	require.ErrorAs(t, err, &rejected)
	uow.AssertNotCalled(t, "Commit")
}

func TestAcceptOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	testOrder := buildAssignedOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockBackendGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		gateway.On("ConfirmAccept", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
