package ticketrepo

import (
	"context"
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"
	"riderhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTicketRepository implements TicketRepository using GORM.
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GORM ticket repository.
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// Add saves a new ticket with its responses.
func (r *GormTicketRepository) Add(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing ticket. Responses are append-only, so upserting
// the full thread leaves existing rows untouched and inserts the new ones.
func (r *GormTicketRepository) Update(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&TicketDTO{}).
		Select("*").Omit("id", "Responses", "created_at").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ticket", aggregate.ID().String())
	}

	if len(dto.Responses) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto.Responses).Error
}

// Get retrieves a ticket by ID with its full response thread.
func (r *GormTicketRepository) Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	err := r.db.WithContext(ctx).
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("ticket_responses.created_at ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ticket", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all tickets, newest first.
func (r *GormTicketRepository) GetAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var dtos []TicketDTO
	err := r.db.WithContext(ctx).
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("ticket_responses.created_at ASC")
		}).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, aggregate)
	}

	return tickets, nil
}
