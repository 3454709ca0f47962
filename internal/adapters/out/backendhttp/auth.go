package backendhttp

import (
	"context"
	"net/http"
	"time"

	"riderhub/internal/core/ports"
)

// sessionDTO is the wire representation of an issued session.
type sessionDTO struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	PartnerID    string    `json:"partner_id"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (d sessionDTO) toSession() ports.Session {
	return ports.Session{
		AccessToken:  d.AccessToken,
		RefreshToken: d.RefreshToken,
		PartnerID:    d.PartnerID,
		ExpiresAt:    d.ExpiresAt,
	}
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, credentials ports.Credentials) (ports.Session, error) {
	body := map[string]string{
		"email":    credentials.Email,
		"password": credentials.Password,
	}

	var dto sessionDTO
	if err := c.call(ctx, "login", http.MethodPost, "/v1/auth/login", false, body, &dto); err != nil {
		return ports.Session{}, err
	}

	return dto.toSession(), nil
}

// SendOTP asks the backend to send a one-time code to the phone.
func (c *Client) SendOTP(ctx context.Context, phone string) error {
	body := map[string]string{"phone": phone}
	return c.call(ctx, "send otp", http.MethodPost, "/v1/auth/otp", false, body, nil)
}

// LoginWithOTP exchanges a phone and one-time code for a session.
func (c *Client) LoginWithOTP(ctx context.Context, phone, code string) (ports.Session, error) {
	body := map[string]string{
		"phone": phone,
		"code":  code,
	}

	var dto sessionDTO
	if err := c.call(ctx, "otp login", http.MethodPost, "/v1/auth/otp/verify", false, body, &dto); err != nil {
		return ports.Session{}, err
	}

	return dto.toSession(), nil
}

// RefreshSession rotates an expiring session.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (ports.Session, error) {
	body := map[string]string{"refresh_token": refreshToken}

	var dto sessionDTO
	if err := c.call(ctx, "session refresh", http.MethodPost, "/v1/auth/refresh", false, body, &dto); err != nil {
		return ports.Session{}, err
	}

	return dto.toSession(), nil
}

// Logout invalidates the session on the backend.
func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, "logout", http.MethodPost, "/v1/auth/logout", true, nil, nil)
}
