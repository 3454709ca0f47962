package commands_test

import (
	"errors"
	"testing"

	"riderhub/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewLogoutCommand()

	gateway := new(MockBackendGateway)
	secrets := new(MockSecretStore)

	mock.InOrder(
		gateway.On("Logout", ctx).Return(nil).Once(),
		secrets.On("ClearSession", ctx).Return(nil).Once(),
	)

	handler := commands.NewLogoutCommandHandler(gateway, secrets)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	gateway.AssertExpectations(t)
	secrets.AssertExpectations(t)
}

func TestLogoutCommandHandler_Handle_ClearsSessionWhenBackendFails(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewLogoutCommand()

	backendErr := errors.New("backend unreachable")

	gateway := new(MockBackendGateway)
	secrets := new(MockSecretStore)

	mock.InOrder(
		gateway.On("Logout", ctx).Return(backendErr).Once(),
		secrets.On("ClearSession", ctx).Return(nil).Once(),
	)

	handler := commands.NewLogoutCommandHandler(gateway, secrets)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, backendErr)
	secrets.AssertExpectations(t)
}
