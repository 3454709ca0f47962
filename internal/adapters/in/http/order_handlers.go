package http

import (
	"net/http"
	"time"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/application/usecases/queries"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type orderSummary struct {
	ID              string       `json:"id"`
	Number          string       `json:"number"`
	Status          string       `json:"status"`
	RestaurantName  string       `json:"restaurant_name"`
	DeliveryAddress string       `json:"delivery_address"`
	Total           kernel.Money `json:"total"`
	DeliveryFee     kernel.Money `json:"delivery_fee"`
	PaymentMethod   string       `json:"payment_method"`
	CreatedAt       time.Time    `json:"created_at"`
	DeliveredAt     *time.Time   `json:"delivered_at,omitempty"`
	CancelReason    string       `json:"cancel_reason,omitempty"`
}

func toOrderSummaries(models []queries.OrderSummaryResponse) []orderSummary {
	response := make([]orderSummary, len(models))
	for i, model := range models {
		response[i] = orderSummary{
			ID:              model.ID.String(),
			Number:          model.Number,
			Status:          model.Status,
			RestaurantName:  model.RestaurantName,
			DeliveryAddress: model.DeliveryAddress,
			Total:           model.Total,
			DeliveryFee:     model.DeliveryFee,
			PaymentMethod:   model.PaymentMethod,
			CreatedAt:       model.CreatedAt,
			DeliveredAt:     model.DeliveredAt,
			CancelReason:    model.CancelReason,
		}
	}
	return response
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.activeOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toOrderSummaries(orders))
}

// GetOrderHistory handles GET /api/v1/orders/history. The optional status,
// from and to query params narrow the result.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "invalid status filter")
		}
		status = parsed
	}

	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return respondBadRequest(ctx, "invalid from filter")
	}
	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return respondBadRequest(ctx, "invalid to filter")
	}

	query, err := queries.NewGetOrderHistoryQuery(status, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toOrderSummaries(orders))
}

// SyncOrders handles POST /api/v1/orders/sync - pulls backend-assigned
// orders on demand, complementing the scheduled sync job.
func (s *Server) SyncOrders(ctx echo.Context) error {
	cmd := commands.NewSyncOrdersCommand()

	if err := s.syncOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "orders synchronized")
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "order accepted")
}

type rejectOrderRequest struct {
	Reason string `json:"reason"`
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req rejectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "order rejected")
}

type advanceOrderRequest struct {
	Status   string `json:"status"`
	Location *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

// AdvanceOrder handles POST /api/v1/orders/:id/status - moves the order to
// the next lifecycle status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req advanceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondBadRequest(ctx, "invalid status")
	}

	var location *kernel.GeoPoint
	if req.Location != nil {
		point, pointErr := kernel.NewGeoPoint(req.Location.Lat, req.Location.Lng)
		if pointErr != nil {
			return respondBadRequest(ctx, "invalid location")
		}
		location = &point
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, next, location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "order updated")
}

// parseTimeParam parses an optional RFC 3339 query parameter. An empty
// value yields the zero time, which the queries treat as "no filter".
func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
