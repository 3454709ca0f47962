package wallet

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
)

var (
	// ErrWalletIsNotConstructed is returned when a Wallet instance was not
	// created through NewWallet or RestoreWallet.
	ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet or RestoreWallet constructor")

	// ErrPayoutAmountIsInvalid is returned when a payout of zero is requested.
	ErrPayoutAmountIsInvalid = errors.New("payout amount must be greater than 0")

	// ErrBelowMinimumPayout is returned when the requested payout is below
	// the configured minimum.
	ErrBelowMinimumPayout = errors.New("payout amount is below the minimum payout")

	// ErrInsufficientBalance is returned when the requested payout exceeds
	// the available balance.
	ErrInsufficientBalance = errors.New("payout amount exceeds wallet balance")

	// ErrSettlementExceedsPending is returned when a settlement exceeds the
	// amount currently pending payout.
	ErrSettlementExceedsPending = errors.New("settlement amount exceeds pending payout amount")

	// ErrPenaltyExceedsBalance is returned when a penalty deduction would
	// drive a wallet field below zero.
	ErrPenaltyExceedsBalance = errors.New("penalty amount exceeds the available balance")
)

// Wallet is the aggregate monetary record of the partner's earnings.
//
// Fields:
//   - balance: digitally settled earnings available for payout
//   - pendingAmount: requested payouts awaiting settlement by the platform
//   - totalEarnings: lifetime sum of posted earnings
//   - cashInHand: cash collected on cash-on-delivery orders
//
// The wallet only changes through PostEarning, RequestPayout, and
// SettlePayout; each mutation validates its preconditions and applies
// atomically, so the wallet can never be observed half-updated.
type Wallet struct {
	balance       kernel.Money
	pendingAmount kernel.Money
	totalEarnings kernel.Money
	cashInHand    kernel.Money

	isConstructed bool
}

// NewWallet creates an empty wallet for a newly onboarded partner.
func NewWallet() *Wallet {
	return &Wallet{
		balance:       kernel.ZeroMoney(),
		pendingAmount: kernel.ZeroMoney(),
		totalEarnings: kernel.ZeroMoney(),
		cashInHand:    kernel.ZeroMoney(),

		isConstructed: true,
	}
}

// RestoreWallet reconstructs a wallet from persistence.
func RestoreWallet(balance, pendingAmount, totalEarnings, cashInHand kernel.Money) *Wallet {
	return &Wallet{
		balance:       balance,
		pendingAmount: pendingAmount,
		totalEarnings: totalEarnings,
		cashInHand:    cashInHand,

		isConstructed: true,
	}
}

// Validate ensures the Wallet was created through one of its constructors.
func (w *Wallet) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWalletIsNotConstructed
	}
	return nil
}

// Balance returns the digitally settled earnings available for payout.
func (w *Wallet) Balance() kernel.Money {
	return w.balance
}

// PendingAmount returns payouts requested but not yet settled.
func (w *Wallet) PendingAmount() kernel.Money {
	return w.pendingAmount
}

// TotalEarnings returns the lifetime sum of posted earnings.
func (w *Wallet) TotalEarnings() kernel.Money {
	return w.totalEarnings
}

// CashInHand returns cash collected on cash-on-delivery orders.
func (w *Wallet) CashInHand() kernel.Money {
	return w.cashInHand
}

// PostEarning applies a ledger entry to the wallet totals: the amount is
// added to totalEarnings and routed to cashInHand for cash settlements or to
// balance for digital ones. Penalty entries are deductions; amounts are
// stored non-negative and the transaction type carries the sign, so a
// penalty subtracts from totalEarnings and from the routed field instead.
//
// Posting is order-independent in total effect; posting the same set of
// transactions in any order yields identical totals. De-duplication is the
// caller's responsibility, as the ledger itself is append-only.
func (w *Wallet) PostEarning(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	if tx.Type() == TypePenalty {
		return w.applyPenalty(tx)
	}

	w.totalEarnings = w.totalEarnings.Add(tx.Amount())
	if tx.Method().IsCash() {
		w.cashInHand = w.cashInHand.Add(tx.Amount())
	} else {
		w.balance = w.balance.Add(tx.Amount())
	}
	return nil
}

// applyPenalty subtracts the amount from totalEarnings and from the routed
// field. A penalty larger than either fails with ErrPenaltyExceedsBalance
// and leaves the wallet unchanged.
func (w *Wallet) applyPenalty(tx Transaction) error {
	newTotal, err := w.totalEarnings.Sub(tx.Amount())
	if err != nil {
		return ErrPenaltyExceedsBalance
	}

	if tx.Method().IsCash() {
		newCash, cashErr := w.cashInHand.Sub(tx.Amount())
		if cashErr != nil {
			return ErrPenaltyExceedsBalance
		}
		w.totalEarnings = newTotal
		w.cashInHand = newCash
		return nil
	}

	newBalance, balanceErr := w.balance.Sub(tx.Amount())
	if balanceErr != nil {
		return ErrPenaltyExceedsBalance
	}
	w.totalEarnings = newTotal
	w.balance = newBalance
	return nil
}

// RequestPayout moves amount from balance to pendingAmount.
//
// Preconditions, checked in order:
//   - amount > 0, else ErrPayoutAmountIsInvalid
//   - amount >= minimum, else ErrBelowMinimumPayout
//   - amount <= balance, else ErrInsufficientBalance
//
// The caller must obtain backend confirmation before invoking this; on any
// error the wallet is unchanged.
func (w *Wallet) RequestPayout(amount, minimum kernel.Money) error {
	if !amount.IsPositive() {
		return ErrPayoutAmountIsInvalid
	}
	if amount.LessThan(minimum) {
		return ErrBelowMinimumPayout
	}
	if amount.GreaterThan(w.balance) {
		return ErrInsufficientBalance
	}

	newBalance, err := w.balance.Sub(amount)
	if err != nil {
		return err
	}

	w.balance = newBalance
	w.pendingAmount = w.pendingAmount.Add(amount)
	return nil
}

// SettlePayout clears amount from pendingAmount once the platform reports
// the payout as settled. Fails with ErrSettlementExceedsPending when the
// platform settles more than is pending.
func (w *Wallet) SettlePayout(amount kernel.Money) error {
	if amount.GreaterThan(w.pendingAmount) {
		return ErrSettlementExceedsPending
	}

	newPending, err := w.pendingAmount.Sub(amount)
	if err != nil {
		return err
	}

	w.pendingAmount = newPending
	return nil
}
