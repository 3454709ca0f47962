package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/core/ports"
	"riderhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, line items included.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The write only succeeds
// when the stored version is older than the aggregate's, so a stale
// confirmation arriving late can never overwrite newer local state. Line
// items are immutable after creation and are not touched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("*").Omit("id", "Items", "created_at").
		Where("id = ? AND version < ?", dto.ID, dto.Version).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError(
			"order",
			fmt.Errorf("no row with id %s and version below %d", aggregate.ID(), dto.Version),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves orders in a non-terminal status, oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status IN ?", activeStatusStrings()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetHistory retrieves terminal orders matching the filter, newest first.
func (r *GormOrderRepository) GetHistory(ctx context.Context, filter ports.OrderHistoryFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items").
		Where("status IN ?", terminalStatusStrings())

	if filter.Status != order.Unknown {
		query = query.Where("status = ?", filter.Status.String())
	}
	if !filter.From.IsZero() {
		query = query.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("created_at <= ?", filter.To)
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetDeliveredSince retrieves delivered orders created at or after the
// given instant.
func (r *GormOrderRepository) GetDeliveredSince(ctx context.Context, since time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ? AND created_at >= ?", order.Delivered.String(), since).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func activeStatusStrings() []string {
	return []string{
		order.Assigned.String(),
		order.Accepted.String(),
		order.Picked.String(),
		order.EnRoute.String(),
	}
}

func terminalStatusStrings() []string {
	return []string{
		order.Delivered.String(),
		order.Cancelled.String(),
	}
}
