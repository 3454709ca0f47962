package commands_test

import (
	"testing"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/domain/model/ticket"
	"riderhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTicketCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTicketCommand(
		"Order was marked delivered twice",
		"The app shows the same order completed two times in history.",
		ticket.CategoryOrderIssue, ticket.PriorityHigh, nil, nil,
	)
	require.NoError(t, err)

	ticketRepo := new(MockTicketRepository)
	uow := new(MockTicketUoW)
	gateway := new(MockBackendGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		ticketRepo.On("Add", ctx, mock.AnythingOfType("*ticket.Ticket")).Return(nil).Once(),
		gateway.On("CreateTicket", ctx, mock.AnythingOfType("*ticket.Ticket")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTicketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTicketCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := ticketRepo.Calls[0].Arguments[1].(*ticket.Ticket)
	assert.Equal(t, ticket.StatusOpen, added.Status())
	assert.Equal(t, ticket.CategoryOrderIssue, added.Category())
	assert.Equal(t, ticket.PriorityHigh, added.Priority())
	uow.AssertExpectations(t)
}

func TestCreateTicketCommandHandler_Handle_GatewayRejection(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTicketCommand(
		"Payout stuck in pending",
		"My payout from last week still shows as pending in the wallet.",
		ticket.CategoryPayment, ticket.PriorityMedium, nil, nil,
	)
	require.NoError(t, err)

	ticketRepo := new(MockTicketRepository)
	uow := new(MockTicketUoW)
	gateway := new(MockBackendGateway)

	rejection := ports.NewRequestRejectedError("create ticket", "duplicate ticket")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(ticketRepo).Once(),
		ticketRepo.On("Add", ctx, mock.AnythingOfType("*ticket.Ticket")).Return(nil).Once(),
		gateway.On("CreateTicket", ctx, mock.AnythingOfType("*ticket.Ticket")).Return(rejection).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTicketUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTicketCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var rejected *ports.RequestRejectedError
	require.ErrorAs(t, err, &rejected)
	uow.AssertNotCalled(t, "Commit")
}

func TestNewCreateTicketCommand_InvalidCategory(t *testing.T) {
	_, err := commands.NewCreateTicketCommand(
		"Some title", "A long enough description here.",
		ticket.CategoryUnknown, ticket.PriorityLow, nil, nil,
	)

	require.Error(t, err)
}
