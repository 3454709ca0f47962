package http

import (
	"net/http"
	"time"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/application/usecases/queries"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type walletResponse struct {
	Balance       kernel.Money `json:"balance"`
	PendingAmount kernel.Money `json:"pending_amount"`
	TotalEarnings kernel.Money `json:"total_earnings"`
	CashInHand    kernel.Money `json:"cash_in_hand"`
}

// GetWallet handles GET /api/v1/wallet.
func (s *Server) GetWallet(ctx echo.Context) error {
	query := queries.NewGetWalletQuery()

	balances, err := s.walletHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, walletResponse{
		Balance:       balances.Balance,
		PendingAmount: balances.PendingAmount,
		TotalEarnings: balances.TotalEarnings,
		CashInHand:    balances.CashInHand,
	})
}

type transactionResponse struct {
	ID        string       `json:"id"`
	OrderID   string       `json:"order_id"`
	Type      string       `json:"type"`
	Method    string       `json:"method"`
	Status    string       `json:"status"`
	Amount    kernel.Money `json:"amount"`
	CreatedAt time.Time    `json:"created_at"`
}

// GetTransactions handles GET /api/v1/wallet/transactions. The optional
// type, status, from and to query params narrow the result.
func (s *Server) GetTransactions(ctx echo.Context) error {
	txType := wallet.TypeUnknown
	if raw := ctx.QueryParam("type"); raw != "" {
		parsed, err := wallet.TypeFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "invalid type filter")
		}
		txType = parsed
	}

	status := wallet.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := wallet.StatusFromString(raw)
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

	query, err := queries.NewGetTransactionsQuery(txType, status, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.transactionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]transactionResponse, len(entries))
	for i, entry := range entries {
		response[i] = transactionResponse{
			ID:        entry.ID.String(),
			OrderID:   entry.OrderID.String(),
			Type:      entry.Type,
			Method:    entry.Method,
			Status:    entry.Status,
			Amount:    entry.Amount,
			CreatedAt: entry.CreatedAt,
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

type earningsSummaryResponse struct {
	Today kernel.Money `json:"today"`
	Week  kernel.Money `json:"week"`
	Month kernel.Money `json:"month"`
}

// GetEarningsSummary handles GET /api/v1/earnings/summary.
func (s *Server) GetEarningsSummary(ctx echo.Context) error {
	query := queries.NewGetEarningsSummaryQuery()

	summary, err := s.earningsSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, earningsSummaryResponse{
		Today: summary.Today,
		Week:  summary.Week,
		Month: summary.Month,
	})
}

type postEarningRequest struct {
	OrderID string          `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Type    string          `json:"type"`
	Method  string          `json:"method"`
}

// PostEarning handles POST /api/v1/wallet/earnings - records an earning
// reported by the backend (tip, bonus or penalty adjustments).
func (s *Server) PostEarning(ctx echo.Context) error {
	var req postEarningRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	txType, err := wallet.TypeFromString(req.Type)
	if err != nil {
		return respondBadRequest(ctx, "invalid type")
	}

	method, err := wallet.MethodFromString(req.Method)
	if err != nil {
		return respondBadRequest(ctx, "invalid method")
	}

	cmd, err := commands.NewPostEarningCommand(orderID, amount, txType, method)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.postEarningHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusCreated, "earning recorded")
}

type payoutRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// RequestPayout handles POST /api/v1/wallet/payouts.
func (s *Server) RequestPayout(ctx echo.Context) error {
	var req payoutRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRequestPayoutCommand(amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.requestPayoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "payout requested")
}

// SettlePayout handles POST /api/v1/wallet/payouts/settle - clears a
// pending payout once the backend reports settlement.
func (s *Server) SettlePayout(ctx echo.Context) error {
	var req payoutRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSettlePayoutCommand(amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.settlePayoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "payout settled")
}
