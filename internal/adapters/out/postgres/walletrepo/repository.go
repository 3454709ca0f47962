package walletrepo

import (
	"context"
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"
	"riderhub/internal/core/ports"
	"riderhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWalletRepository implements WalletRepository using GORM.
type GormWalletRepository struct {
	db *gorm.DB
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB) *GormWalletRepository {
	return &GormWalletRepository{db: db}
}

// Add saves a freshly created wallet.
func (r *GormWalletRepository) Add(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := walletFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the wallet balances.
func (r *GormWalletRepository) Update(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := walletFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WalletDTO{}).
		Select("*").Omit("id").
		Where("id = ?", walletRowID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("wallet", walletRowID)
	}

	return nil
}

// Get retrieves the wallet.
func (r *GormWalletRepository) Get(ctx context.Context) (*wallet.Wallet, error) {
	var dto WalletDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", walletRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet", walletRowID)
		}
		return nil, err
	}

	return walletToDomain(dto)
}

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Add appends a ledger entry. Entries are never updated or deleted.
func (r *GormLedgerRepository) Add(ctx context.Context, tx wallet.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(tx)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a ledger entry by ID.
func (r *GormLedgerRepository) Get(ctx context.Context, id kernel.UUID) (wallet.Transaction, error) {
	if err := id.Validate(); err != nil {
		return wallet.Transaction{}, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return wallet.Transaction{}, errs.NewObjectNotFoundError("transaction", id.String())
		}
		return wallet.Transaction{}, err
	}

	return transactionToDomain(dto)
}

// GetAll retrieves entries matching the filter, newest first.
func (r *GormLedgerRepository) GetAll(ctx context.Context, filter ports.LedgerFilter) ([]wallet.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&TransactionDTO{})

	if filter.Type != wallet.TypeUnknown {
		query = query.Where("tx_type = ?", filter.Type.String())
	}
	if filter.Status != wallet.StatusUnknown {
		query = query.Where("status = ?", filter.Status.String())
	}
	if !filter.From.IsZero() {
		query = query.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("created_at <= ?", filter.To)
	}

	var dtos []TransactionDTO
	if err := query.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	transactions := make([]wallet.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		tx, err := transactionToDomain(dto)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// ExistsForOrder reports whether an entry of the given type has already
// been recorded for the order.
func (r *GormLedgerRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID, txType wallet.Type) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	if err := txType.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&TransactionDTO{}).
		Where("order_id = ? AND tx_type = ?", orderID.Bytes(), txType.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
