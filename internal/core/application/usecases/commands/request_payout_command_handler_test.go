package commands_test

import (
	"testing"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"
	"riderhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredWallet(t *testing.T, balance float64) *wallet.Wallet {
	t.Helper()
	return wallet.RestoreWallet(
		money(t, balance), kernel.ZeroMoney(), money(t, balance), kernel.ZeroMoney(),
	)
}

func TestRequestPayoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testWallet := restoredWallet(t, 200)
	cmd, err := commands.NewRequestPayoutCommand(money(t, 150))
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockEarningsUoW)
	gateway := new(MockBackendGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("Get", ctx).Return(testWallet, nil).Once(),
		walletRepo.On("Update", ctx, mock.AnythingOfType("*wallet.Wallet")).Return(nil).Once(),
		gateway.On("RequestPayout", ctx, money(t, 150)).Return(ports.PayoutReceipt{PayoutID: "po-1"}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEarningsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestPayoutCommandHandler(factory, gateway, money(t, 100))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testWallet.Balance().IsEqual(money(t, 50)))
	assert.True(t, testWallet.PendingAmount().IsEqual(money(t, 150)))
	walletRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestRequestPayoutCommandHandler_Handle_BelowMinimum(t *testing.T) {
	ctx := t.Context()
	testWallet := restoredWallet(t, 200)
	cmd, err := commands.NewRequestPayoutCommand(money(t, 99))
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockEarningsUoW)
	gateway := new(MockBackendGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("Get", ctx).Return(testWallet, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEarningsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestPayoutCommandHandler(factory, gateway, money(t, 100))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, wallet.ErrBelowMinimumPayout)
	assert.True(t, testWallet.Balance().IsEqual(money(t, 200)))
	gateway.AssertNotCalled(t, "RequestPayout")
}

func TestRequestPayoutCommandHandler_Handle_InsufficientBalance(t *testing.T) {
	ctx := t.Context()
	testWallet := restoredWallet(t, 120)
	cmd, err := commands.NewRequestPayoutCommand(money(t, 150))
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockEarningsUoW)
	gateway := new(MockBackendGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("Get", ctx).Return(testWallet, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEarningsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestPayoutCommandHandler(factory, gateway, money(t, 100))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, wallet.ErrInsufficientBalance)
	gateway.AssertNotCalled(t, "RequestPayout")
}

func TestRequestPayoutCommandHandler_Handle_GatewayRejection(t *testing.T) {
	ctx := t.Context()
	testWallet := restoredWallet(t, 200)
	cmd, err := commands.NewRequestPayoutCommand(money(t, 150))
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockEarningsUoW)
	gateway := new(MockBackendGateway)

	rejection := ports.NewRequestRejectedError("payout", "bank account missing")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("Get", ctx).Return(testWallet, nil).Once(),
		walletRepo.On("Update", ctx, mock.AnythingOfType("*wallet.Wallet")).Return(nil).Once(),
		gateway.On("RequestPayout", ctx, money(t, 150)).Return(ports.PayoutReceipt{}, rejection).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEarningsUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRequestPayoutCommandHandler(factory, gateway, money(t, 100))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var rejected *ports.RequestRejectedError
	require.ErrorAs(t, err, &rejected)
	uow.AssertNotCalled(t, "Commit")
}

func TestNewRequestPayoutCommand_ZeroAmount(t *testing.T) {
	_, err := commands.NewRequestPayoutCommand(kernel.ZeroMoney())

	require.Error(t, err)
	assert.ErrorIs(t, err, wallet.ErrPayoutAmountIsInvalid)
}
