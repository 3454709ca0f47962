package wallet_test

import (
	"testing"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func buildTransaction(t *testing.T, amount float64, method wallet.Method) wallet.Transaction {
	t.Helper()
	return buildTypedTransaction(t, amount, wallet.TypeDeliveryFee, method)
}

func buildTypedTransaction(t *testing.T, amount float64, typ wallet.Type, method wallet.Method) wallet.Transaction {
	t.Helper()
	tx, err := wallet.NewTransaction(
		kernel.NewUUID(),
		kernel.NewUUID(),
		money(t, amount),
		typ,
		method,
		wallet.StatusPending,
		time.Now(),
	)
	require.NoError(t, err)
	return tx
}

func TestNewWallet(t *testing.T) {
	t.Run("should start with zero totals", func(t *testing.T) {
		w := wallet.NewWallet()

		require.NoError(t, w.Validate())
		assert.True(t, w.Balance().IsZero())
		assert.True(t, w.PendingAmount().IsZero())
		assert.True(t, w.TotalEarnings().IsZero())
		assert.True(t, w.CashInHand().IsZero())
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var w wallet.Wallet

		assert.Equal(t, wallet.ErrWalletIsNotConstructed, w.Validate())
	})
}

func TestWallet_PostEarning(t *testing.T) {
	t.Run("should route digital earnings to balance", func(t *testing.T) {
		w := wallet.NewWallet()

		err := w.PostEarning(buildTransaction(t, 50, wallet.MethodDigital))

		require.NoError(t, err)
		assert.True(t, w.Balance().IsEqual(money(t, 50)))
		assert.True(t, w.CashInHand().IsZero())
		assert.True(t, w.TotalEarnings().IsEqual(money(t, 50)))
	})

	t.Run("should route cash earnings to cash in hand", func(t *testing.T) {
		w := wallet.NewWallet()

		err := w.PostEarning(buildTransaction(t, 80, wallet.MethodCash))

		require.NoError(t, err)
		assert.True(t, w.Balance().IsZero())
		assert.True(t, w.CashInHand().IsEqual(money(t, 80)))
		assert.True(t, w.TotalEarnings().IsEqual(money(t, 80)))
	})

	t.Run("should be order-independent in total effect", func(t *testing.T) {
		t1 := buildTransaction(t, 35.25, wallet.MethodDigital)
		t2 := buildTransaction(t, 12.75, wallet.MethodCash)

		first := wallet.NewWallet()
		require.NoError(t, first.PostEarning(t1))
		require.NoError(t, first.PostEarning(t2))

		second := wallet.NewWallet()
		require.NoError(t, second.PostEarning(t2))
		require.NoError(t, second.PostEarning(t1))

		assert.True(t, first.Balance().IsEqual(second.Balance()))
		assert.True(t, first.CashInHand().IsEqual(second.CashInHand()))
		assert.True(t, first.TotalEarnings().IsEqual(second.TotalEarnings()))
		assert.True(t, first.TotalEarnings().IsEqual(money(t, 48)))
	})

	t.Run("should deduct digital penalties from balance and total earnings", func(t *testing.T) {
		w := wallet.NewWallet()
		require.NoError(t, w.PostEarning(buildTransaction(t, 100, wallet.MethodDigital)))

		err := w.PostEarning(buildTypedTransaction(t, 30, wallet.TypePenalty, wallet.MethodDigital))

		require.NoError(t, err)
		assert.True(t, w.Balance().IsEqual(money(t, 70)))
		assert.True(t, w.TotalEarnings().IsEqual(money(t, 70)))
		assert.True(t, w.CashInHand().IsZero())
	})

	t.Run("should deduct cash penalties from cash in hand", func(t *testing.T) {
		w := wallet.NewWallet()
		require.NoError(t, w.PostEarning(buildTransaction(t, 80, wallet.MethodCash)))

		err := w.PostEarning(buildTypedTransaction(t, 20, wallet.TypePenalty, wallet.MethodCash))

		require.NoError(t, err)
		assert.True(t, w.CashInHand().IsEqual(money(t, 60)))
		assert.True(t, w.TotalEarnings().IsEqual(money(t, 60)))
		assert.True(t, w.Balance().IsZero())
	})

	t.Run("should fail an oversized penalty and leave the wallet unchanged", func(t *testing.T) {
		w := wallet.NewWallet()
		require.NoError(t, w.PostEarning(buildTransaction(t, 50, wallet.MethodDigital)))

		err := w.PostEarning(buildTypedTransaction(t, 60, wallet.TypePenalty, wallet.MethodDigital))

		require.Error(t, err)
		assert.ErrorIs(t, err, wallet.ErrPenaltyExceedsBalance)
		assert.True(t, w.Balance().IsEqual(money(t, 50)))
		assert.True(t, w.TotalEarnings().IsEqual(money(t, 50)))
	})

	t.Run("should fail a cash penalty not covered by cash in hand", func(t *testing.T) {
		w := wallet.NewWallet()
		require.NoError(t, w.PostEarning(buildTransaction(t, 100, wallet.MethodDigital)))

		err := w.PostEarning(buildTypedTransaction(t, 10, wallet.TypePenalty, wallet.MethodCash))

		require.Error(t, err)
		assert.ErrorIs(t, err, wallet.ErrPenaltyExceedsBalance)
		assert.True(t, w.Balance().IsEqual(money(t, 100)))
		assert.True(t, w.TotalEarnings().IsEqual(money(t, 100)))
		assert.True(t, w.CashInHand().IsZero())
	})

	t.Run("should reject unconstructed transactions", func(t *testing.T) {
		w := wallet.NewWallet()
		var tx wallet.Transaction

		err := w.PostEarning(tx)

		require.Error(t, err)
		assert.Equal(t, wallet.ErrTransactionIsNotConstructed, err)
		assert.True(t, w.TotalEarnings().IsZero())
	})
}

func TestWallet_RequestPayout(t *testing.T) {
	minimum := func(t *testing.T) kernel.Money { return money(t, 100) }

	t.Run("should move the amount from balance to pending", func(t *testing.T) {
		w := wallet.RestoreWallet(money(t, 200), kernel.ZeroMoney(), money(t, 200), kernel.ZeroMoney())

		err := w.RequestPayout(money(t, 150), minimum(t))

		require.NoError(t, err)
		assert.True(t, w.Balance().IsEqual(money(t, 50)))
		assert.True(t, w.PendingAmount().IsEqual(money(t, 150)))
	})

	t.Run("should fail below the minimum payout", func(t *testing.T) {
		w := wallet.RestoreWallet(money(t, 200), kernel.ZeroMoney(), money(t, 200), kernel.ZeroMoney())

		err := w.RequestPayout(money(t, 99), minimum(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, wallet.ErrBelowMinimumPayout)
		assert.True(t, w.Balance().IsEqual(money(t, 200)))
		assert.True(t, w.PendingAmount().IsZero())
	})

	t.Run("should fail when the amount exceeds the balance", func(t *testing.T) {
		w := wallet.RestoreWallet(money(t, 120), kernel.ZeroMoney(), money(t, 120), kernel.ZeroMoney())

		err := w.RequestPayout(money(t, 120.01), minimum(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, wallet.ErrInsufficientBalance)
		assert.True(t, w.Balance().IsEqual(money(t, 120)))
	})

	t.Run("should fail for zero amount", func(t *testing.T) {
		w := wallet.RestoreWallet(money(t, 200), kernel.ZeroMoney(), money(t, 200), kernel.ZeroMoney())

		err := w.RequestPayout(kernel.ZeroMoney(), minimum(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, wallet.ErrPayoutAmountIsInvalid)
	})

	t.Run("should allow paying out the exact balance", func(t *testing.T) {
		w := wallet.RestoreWallet(money(t, 100), kernel.ZeroMoney(), money(t, 100), kernel.ZeroMoney())

		err := w.RequestPayout(money(t, 100), minimum(t))

		require.NoError(t, err)
		assert.True(t, w.Balance().IsZero())
		assert.True(t, w.PendingAmount().IsEqual(money(t, 100)))
	})
}

func TestWallet_SettlePayout(t *testing.T) {
	t.Run("should clear the settled amount from pending", func(t *testing.T) {
		w := wallet.RestoreWallet(money(t, 50), money(t, 150), money(t, 200), kernel.ZeroMoney())

		err := w.SettlePayout(money(t, 150))

		require.NoError(t, err)
		assert.True(t, w.PendingAmount().IsZero())
		assert.True(t, w.Balance().IsEqual(money(t, 50)), "balance must be untouched by settlement")
	})

	t.Run("should fail when settling more than pending", func(t *testing.T) {
		w := wallet.RestoreWallet(money(t, 50), money(t, 100), money(t, 150), kernel.ZeroMoney())

		err := w.SettlePayout(money(t, 100.01))

		require.Error(t, err)
		assert.ErrorIs(t, err, wallet.ErrSettlementExceedsPending)
		assert.True(t, w.PendingAmount().IsEqual(money(t, 100)))
	})
}

func TestNewTransaction(t *testing.T) {
	t.Run("should create a valid ledger entry", func(t *testing.T) {
		tx, err := wallet.NewTransaction(
			kernel.NewUUID(),
			kernel.NewUUID(),
			money(t, 50),
			wallet.TypeTip,
			wallet.MethodDigital,
			wallet.StatusPaid,
			time.Now(),
		)

		require.NoError(t, err)
		require.NoError(t, tx.Validate())
		assert.Equal(t, wallet.TypeTip, tx.Type())
		assert.Equal(t, wallet.MethodDigital, tx.Method())
		assert.Equal(t, wallet.StatusPaid, tx.Status())
	})

	t.Run("should reject invalid enums", func(t *testing.T) {
		_, err := wallet.NewTransaction(
			kernel.NewUUID(),
			kernel.NewUUID(),
			money(t, 50),
			wallet.TypeUnknown,
			wallet.MethodUnknown,
			wallet.StatusUnknown,
			time.Now(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "transaction type is invalid")
		assert.Contains(t, err.Error(), "settlement method is invalid")
		assert.Contains(t, err.Error(), "transaction status is invalid")
	})

	t.Run("should require ids and timestamp", func(t *testing.T) {
		var missing kernel.UUID

		_, err := wallet.NewTransaction(
			missing, missing, money(t, 10),
			wallet.TypeBonus, wallet.MethodDigital, wallet.StatusPending,
			time.Time{},
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "createdAt")
	})
}

func TestTransactionEnums_RoundTrip(t *testing.T) {
	t.Run("should round-trip types", func(t *testing.T) {
		for _, typ := range []wallet.Type{
			wallet.TypeDeliveryFee, wallet.TypeTip, wallet.TypeBonus, wallet.TypePenalty,
		} {
			parsed, err := wallet.TypeFromString(typ.String())
			require.NoError(t, err)
			assert.Equal(t, typ, parsed)
		}
	})

	t.Run("should round-trip methods and statuses", func(t *testing.T) {
		for _, m := range []wallet.Method{wallet.MethodCash, wallet.MethodDigital} {
			parsed, err := wallet.MethodFromString(m.String())
			require.NoError(t, err)
			assert.Equal(t, m, parsed)
		}
		for _, s := range []wallet.Status{wallet.StatusPending, wallet.StatusPaid} {
			parsed, err := wallet.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})
}
