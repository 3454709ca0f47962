package http

import (
	"net/http"
	"time"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/application/usecases/queries"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"

	"github.com/labstack/echo/v4"
)

type ticketResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	OrderID       string    `json:"order_id,omitempty"`
	ResponseCount int       `json:"response_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GetTickets handles GET /api/v1/tickets. The optional status query param
// narrows the result.
func (s *Server) GetTickets(ctx echo.Context) error {
	status := ticket.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := ticket.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "invalid status filter")
		}
		status = parsed
	}

	query, err := queries.NewGetTicketsQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	tickets, err := s.ticketsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ticketResponse, len(tickets))
	for i, entry := range tickets {
		item := ticketResponse{
			ID:            entry.ID.String(),
			Title:         entry.Title,
			Category:      entry.Category,
			Priority:      entry.Priority,
			Status:        entry.Status,
			ResponseCount: entry.ResponseCount,
			CreatedAt:     entry.CreatedAt,
			UpdatedAt:     entry.UpdatedAt,
		}
		if entry.OrderID != nil {
			item.OrderID = entry.OrderID.String()
		}
		response[i] = item
	}

	return respondData(ctx, http.StatusOK, response)
}

type createTicketRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	OrderID     string   `json:"order_id"`
	Images      []string `json:"images"`
}

// CreateTicket handles POST /api/v1/tickets.
func (s *Server) CreateTicket(ctx echo.Context) error {
	var req createTicketRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	category, err := ticket.CategoryFromString(req.Category)
	if err != nil {
		return respondBadRequest(ctx, "invalid category")
	}

	priority, err := ticket.PriorityFromString(req.Priority)
	if err != nil {
		return respondBadRequest(ctx, "invalid priority")
	}

	var orderID *kernel.UUID
	if req.OrderID != "" {
		parsed, parseErr := kernel.UUIDFromString(req.OrderID)
		if parseErr != nil {
			return respondBadRequest(ctx, "invalid order id")
		}
		orderID = &parsed
	}

	cmd, err := commands.NewCreateTicketCommand(
		req.Title, req.Description, category, priority, orderID, req.Images)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createTicketHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusCreated, "ticket created")
}

type replyTicketRequest struct {
	Message string `json:"message"`
}

// ReplyTicket handles POST /api/v1/tickets/:id/responses.
func (s *Server) ReplyTicket(ctx echo.Context) error {
	ticketID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid ticket id")
	}

	var req replyTicketRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReplyTicketCommand(ticketID, req.Message)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.replyTicketHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusCreated, "response added")
}
