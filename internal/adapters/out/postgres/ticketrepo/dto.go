// Package ticketrepo persists support ticket aggregates. A ticket maps to
// a tickets row plus one ticket_responses row per message in the thread.
package ticketrepo

import (
	"strings"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"

	"github.com/google/uuid"
)

// TicketDTO represents the database structure for persisting tickets.
type TicketDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Description string
	Category    string
	Priority    string
	Status      string     `gorm:"index"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	Images      string
	Responses   []ResponseDTO `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time     `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName specifies the database table name for tickets.
func (TicketDTO) TableName() string {
	return "tickets"
}

// ResponseDTO represents a single message in a ticket thread.
type ResponseDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TicketID  uuid.UUID `gorm:"type:uuid;index"`
	Author    string
	Message   string
	CreatedAt time.Time
}

// TableName specifies the database table name for ticket responses.
func (ResponseDTO) TableName() string {
	return "ticket_responses"
}

// imageSeparator joins image references into a single column. References
// are URLs and never contain newlines.
const imageSeparator = "\n"

func fromDomain(aggregate *ticket.Ticket) TicketDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	responses := make([]ResponseDTO, 0, len(aggregate.Responses()))
	for _, response := range aggregate.Responses() {
		responses = append(responses, ResponseDTO{
			ID:        response.ID().Bytes(),
			TicketID:  aggregate.ID().Bytes(),
			Author:    response.Author().String(),
			Message:   response.Message(),
			CreatedAt: response.CreatedAt(),
		})
	}

	return TicketDTO{
		ID:          aggregate.ID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Category:    aggregate.Category().String(),
		Priority:    aggregate.Priority().String(),
		Status:      aggregate.Status().String(),
		OrderID:     orderID,
		Images:      strings.Join(aggregate.Images(), imageSeparator),
		Responses:   responses,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto TicketDTO) (*ticket.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := ticket.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	priority, err := ticket.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := ticket.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	var images []string
	if dto.Images != "" {
		images = strings.Split(dto.Images, imageSeparator)
	}

	responses := make([]ticket.Response, 0, len(dto.Responses))
	for _, responseDTO := range dto.Responses {
		responseID, responseErr := kernel.UUIDFromBytes(responseDTO.ID[:])
		if responseErr != nil {
			return nil, responseErr
		}

		author, responseErr := ticket.AuthorFromString(responseDTO.Author)
		if responseErr != nil {
			return nil, responseErr
		}

		response, responseErr := ticket.NewResponse(responseID, author, responseDTO.Message, responseDTO.CreatedAt)
		if responseErr != nil {
			return nil, responseErr
		}
		responses = append(responses, response)
	}

	return ticket.RestoreTicket(
		id, dto.Title, dto.Description, category, priority, status,
		orderID, images, responses, dto.CreatedAt, dto.UpdatedAt,
	)
}
