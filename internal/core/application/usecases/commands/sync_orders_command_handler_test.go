package commands_test

import (
	"errors"
	"testing"
	"time"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncOrdersCommandHandler_Handle_AddsUnknownOrders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewSyncOrdersCommand()
	incoming := buildAssignedOrder(t)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockBackendGateway)

	mock.InOrder(
		gateway.On("FetchAssignedOrders", ctx).Return([]*order.Order{incoming}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, incoming.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		orderRepo.On("Add", ctx, incoming).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSyncOrdersCommandHandler(factory, gateway)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestSyncOrdersCommandHandler_Handle_IgnoresStaleSnapshots(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewSyncOrdersCommand()

	// local copy has progressed past the incoming snapshot
	local := buildAssignedOrder(t)
	require.NoError(t, local.Accept(time.Now()))

	snapshot, err := order.RestoreOrder(
		local.ID(), local.Number(), order.Assigned, local.Customer(),
		local.RestaurantName(), local.RestaurantAddress(), local.DeliveryAddress(),
		local.Items(), local.Pricing(), local.PaymentMethod(),
		local.Pickup(), local.Drop(), local.CreatedAt(),
		nil, nil, nil, "", nil, 1,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockBackendGateway)

	mock.InOrder(
		gateway.On("FetchAssignedOrders", ctx).Return([]*order.Order{snapshot}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, snapshot.ID()).Return(local, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSyncOrdersCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update")
	orderRepo.AssertNotCalled(t, "Add")
}

func TestSyncOrdersCommandHandler_Handle_NothingToSync(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewSyncOrdersCommand()

	gateway := new(MockBackendGateway)
	gateway.On("FetchAssignedOrders", ctx).Return([]*order.Order{}, nil).Once()

	factory := new(MockOrderUoWFactory)

	handler := commands.NewSyncOrdersCommandHandler(factory, gateway)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestSyncOrdersCommandHandler_Handle_GatewayError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewSyncOrdersCommand()

	gateway := new(MockBackendGateway)
	gateway.On("FetchAssignedOrders", ctx).Return(nil, errors.New("backend unreachable")).Once()

	factory := new(MockOrderUoWFactory)

	handler := commands.NewSyncOrdersCommandHandler(factory, gateway)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "backend unreachable")
	factory.AssertNotCalled(t, "Create")
}
