// Package http exposes the application to the mobile client over an echo
// server. Every response uses the uniform envelope {success, data, message,
// error}; domain failures map onto meaningful status codes so the client can
// distinguish retryable conflicts from rejected requests.
package http

import (
	"errors"
	"net/http"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/application/usecases/queries"
	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/core/domain/model/wallet"
	"riderhub/internal/core/ports"
	"riderhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to application use cases.
type Server struct {
	// Command handlers
	loginHandler          commands.LoginCommandHandler
	sendOTPHandler        commands.SendOTPCommandHandler
	loginWithOTPHandler   commands.LoginWithOTPCommandHandler
	refreshSessionHandler commands.RefreshSessionCommandHandler
	logoutHandler         commands.LogoutCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	rejectOrderHandler    commands.RejectOrderCommandHandler
	advanceOrderHandler   commands.AdvanceOrderCommandHandler
	syncOrdersHandler     commands.SyncOrdersCommandHandler
	postEarningHandler    commands.PostEarningCommandHandler
	requestPayoutHandler  commands.RequestPayoutCommandHandler
	settlePayoutHandler   commands.SettlePayoutCommandHandler
	createTicketHandler   commands.CreateTicketCommandHandler
	replyTicketHandler    commands.ReplyTicketCommandHandler
	updateProfileHandler  commands.UpdateProfileCommandHandler
	setAvailability       commands.SetAvailabilityCommandHandler
	uploadDocument        commands.UploadDocumentCommandHandler
	submitRatingHandler   commands.SubmitRatingCommandHandler

	// Query handlers
	activeOrdersHandler    queries.GetActiveOrdersQueryHandler
	orderHistoryHandler    queries.GetOrderHistoryQueryHandler
	walletHandler          queries.GetWalletQueryHandler
	transactionsHandler    queries.GetTransactionsQueryHandler
	earningsSummaryHandler queries.GetEarningsSummaryQueryHandler
	ticketsHandler         queries.GetTicketsQueryHandler
	profileHandler         queries.GetProfileQueryHandler
}

// Handlers bundles the use case handlers the server depends on.
type Handlers struct {
	Login           commands.LoginCommandHandler
	SendOTP         commands.SendOTPCommandHandler
	LoginWithOTP    commands.LoginWithOTPCommandHandler
	RefreshSession  commands.RefreshSessionCommandHandler
	Logout          commands.LogoutCommandHandler
	AcceptOrder     commands.AcceptOrderCommandHandler
	RejectOrder     commands.RejectOrderCommandHandler
	AdvanceOrder    commands.AdvanceOrderCommandHandler
	SyncOrders      commands.SyncOrdersCommandHandler
	PostEarning     commands.PostEarningCommandHandler
	RequestPayout   commands.RequestPayoutCommandHandler
	SettlePayout    commands.SettlePayoutCommandHandler
	CreateTicket    commands.CreateTicketCommandHandler
	ReplyTicket     commands.ReplyTicketCommandHandler
	UpdateProfile   commands.UpdateProfileCommandHandler
	SetAvailability commands.SetAvailabilityCommandHandler
	UploadDocument  commands.UploadDocumentCommandHandler
	SubmitRating    commands.SubmitRatingCommandHandler

	ActiveOrders    queries.GetActiveOrdersQueryHandler
	OrderHistory    queries.GetOrderHistoryQueryHandler
	Wallet          queries.GetWalletQueryHandler
	Transactions    queries.GetTransactionsQueryHandler
	EarningsSummary queries.GetEarningsSummaryQueryHandler
	Tickets         queries.GetTicketsQueryHandler
	Profile         queries.GetProfileQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		loginHandler:          h.Login,
		sendOTPHandler:        h.SendOTP,
		loginWithOTPHandler:   h.LoginWithOTP,
		refreshSessionHandler: h.RefreshSession,
		logoutHandler:         h.Logout,
		acceptOrderHandler:    h.AcceptOrder,
		rejectOrderHandler:    h.RejectOrder,
		advanceOrderHandler:   h.AdvanceOrder,
		syncOrdersHandler:     h.SyncOrders,
		postEarningHandler:    h.PostEarning,
		requestPayoutHandler:  h.RequestPayout,
		settlePayoutHandler:   h.SettlePayout,
		createTicketHandler:   h.CreateTicket,
		replyTicketHandler:    h.ReplyTicket,
		updateProfileHandler:  h.UpdateProfile,
		setAvailability:       h.SetAvailability,
		uploadDocument:        h.UploadDocument,
		submitRatingHandler:   h.SubmitRating,

		activeOrdersHandler:    h.ActiveOrders,
		orderHistoryHandler:    h.OrderHistory,
		walletHandler:          h.Wallet,
		transactionsHandler:    h.Transactions,
		earningsSummaryHandler: h.EarningsSummary,
		ticketsHandler:         h.Tickets,
		profileHandler:         h.Profile,
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", s.Login)
	auth.POST("/otp", s.SendOTP)
	auth.POST("/otp/verify", s.LoginWithOTP)
	auth.POST("/refresh", s.RefreshSession)
	auth.POST("/logout", s.Logout)

	ordersGroup := v1.Group("/orders")
	ordersGroup.GET("/active", s.GetActiveOrders)
	ordersGroup.GET("/history", s.GetOrderHistory)
	ordersGroup.POST("/sync", s.SyncOrders)
	ordersGroup.POST("/:id/accept", s.AcceptOrder)
	ordersGroup.POST("/:id/reject", s.RejectOrder)
	ordersGroup.POST("/:id/status", s.AdvanceOrder)

	walletGroup := v1.Group("/wallet")
	walletGroup.GET("", s.GetWallet)
	walletGroup.GET("/transactions", s.GetTransactions)
	walletGroup.POST("/earnings", s.PostEarning)
	walletGroup.POST("/payouts", s.RequestPayout)
	walletGroup.POST("/payouts/settle", s.SettlePayout)

	v1.GET("/earnings/summary", s.GetEarningsSummary)

	ticketsGroup := v1.Group("/tickets")
	ticketsGroup.GET("", s.GetTickets)
	ticketsGroup.POST("", s.CreateTicket)
	ticketsGroup.POST("/:id/responses", s.ReplyTicket)

	profileGroup := v1.Group("/profile")
	profileGroup.GET("", s.GetProfile)
	profileGroup.PUT("", s.UpdateProfile)
	profileGroup.PUT("/availability", s.SetAvailability)
	profileGroup.POST("/documents", s.UploadDocument)

	v1.POST("/ratings", s.SubmitRating)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return respondData(ctx, http.StatusOK, map[string]string{"status": "ok"})
}

// envelope is the uniform response wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, envelope{Success: true, Message: message})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, envelope{Error: message})
}

// respondError maps use case failures onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	var rejected *ports.RequestRejectedError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, envelope{Error: err.Error()})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, commands.ErrEarningAlreadyPosted),
		errors.Is(err, commands.ErrOrderAlreadyRated):
		return ctx.JSON(http.StatusConflict, envelope{Error: err.Error()})
	case errors.Is(err, wallet.ErrPayoutAmountIsInvalid),
		errors.Is(err, wallet.ErrBelowMinimumPayout),
		errors.Is(err, wallet.ErrInsufficientBalance),
		errors.Is(err, wallet.ErrPenaltyExceedsBalance):
		return ctx.JSON(http.StatusUnprocessableEntity, envelope{Error: err.Error()})
	case errors.Is(err, ports.ErrSessionNotFound):
		return ctx.JSON(http.StatusUnauthorized, envelope{Error: err.Error()})
	case errors.As(err, &rejected):
		return ctx.JSON(http.StatusBadGateway, envelope{Error: rejected.Message})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, envelope{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, envelope{Error: "internal error"})
	}
}
