// Package walletrepo persists the partner's wallet and the append-only
// earnings ledger. The wallet is a single-row table since exactly one
// partner is signed in on a device.
package walletrepo

import (
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// walletRowID is the fixed primary key of the single wallet row.
const walletRowID = int16(1)

// WalletDTO represents the database structure for the wallet aggregate.
type WalletDTO struct {
	ID            int16           `gorm:"primaryKey"`
	Balance       decimal.Decimal `gorm:"type:numeric"`
	PendingAmount decimal.Decimal `gorm:"type:numeric"`
	TotalEarnings decimal.Decimal `gorm:"type:numeric"`
	CashInHand    decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for the wallet.
func (WalletDTO) TableName() string {
	return "wallets"
}

// TransactionDTO represents a single ledger entry.
type TransactionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index:idx_ledger_order_type"`
	TxType    string    `gorm:"index:idx_ledger_order_type"`
	Method    string
	Status    string          `gorm:"index"`
	Amount    decimal.Decimal `gorm:"type:numeric"`
	CreatedAt time.Time       `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
func (TransactionDTO) TableName() string {
	return "transactions"
}

func walletFromDomain(aggregate *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:            walletRowID,
		Balance:       aggregate.Balance().Decimal(),
		PendingAmount: aggregate.PendingAmount().Decimal(),
		TotalEarnings: aggregate.TotalEarnings().Decimal(),
		CashInHand:    aggregate.CashInHand().Decimal(),
	}
}

func walletToDomain(dto WalletDTO) (*wallet.Wallet, error) {
	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}
	pending, err := kernel.NewMoney(dto.PendingAmount)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalEarnings)
	if err != nil {
		return nil, err
	}
	cash, err := kernel.NewMoney(dto.CashInHand)
	if err != nil {
		return nil, err
	}

	return wallet.RestoreWallet(balance, pending, total, cash), nil
}

func transactionFromDomain(tx wallet.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:        tx.ID().Bytes(),
		OrderID:   tx.OrderID().Bytes(),
		TxType:    tx.Type().String(),
		Method:    tx.Method().String(),
		Status:    tx.Status().String(),
		Amount:    tx.Amount().Decimal(),
		CreatedAt: tx.CreatedAt(),
	}
}

func transactionToDomain(dto TransactionDTO) (wallet.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return wallet.Transaction{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return wallet.Transaction{}, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return wallet.Transaction{}, err
	}

	txType, err := wallet.TypeFromString(dto.TxType)
	if err != nil {
		return wallet.Transaction{}, err
	}

	method, err := wallet.MethodFromString(dto.Method)
	if err != nil {
		return wallet.Transaction{}, err
	}

	status, err := wallet.StatusFromString(dto.Status)
	if err != nil {
		return wallet.Transaction{}, err
	}

	return wallet.NewTransaction(id, orderID, amount, txType, method, status, dto.CreatedAt)
}
