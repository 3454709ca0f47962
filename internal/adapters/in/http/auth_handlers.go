package http

import (
	"net/http"

	"riderhub/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.loginHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "signed in")
}

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

// SendOTP handles POST /api/v1/auth/otp.
func (s *Server) SendOTP(ctx echo.Context) error {
	var req sendOTPRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSendOTPCommand(req.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.sendOTPHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "code sent")
}

type loginWithOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// LoginWithOTP handles POST /api/v1/auth/otp/verify.
func (s *Server) LoginWithOTP(ctx echo.Context) error {
	var req loginWithOTPRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewLoginWithOTPCommand(req.Phone, req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.loginWithOTPHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "signed in")
}

// RefreshSession handles POST /api/v1/auth/refresh.
func (s *Server) RefreshSession(ctx echo.Context) error {
	cmd := commands.NewRefreshSessionCommand()

	if err := s.refreshSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "session refreshed")
}

// Logout handles POST /api/v1/auth/logout.
func (s *Server) Logout(ctx echo.Context) error {
	cmd := commands.NewLogoutCommand()

	if err := s.logoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "signed out")
}
