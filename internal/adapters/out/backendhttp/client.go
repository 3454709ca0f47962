// Package backendhttp implements the BackendGateway port against the
// platform's partner API. Responses arrive in a uniform envelope; business
// refusals surface as ports.RequestRejectedError so command handlers can
// roll their tentative local changes back.
package backendhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"riderhub/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// envelope is the uniform response wrapper of the partner API.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e envelope) rejectionMessage() string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return "request refused"
}

// Client talks to the platform backend over HTTP. It implements
// ports.BackendGateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	secrets    ports.SecretStore
}

// NewClient creates a gateway client for the given base URL. The secret
// store supplies the bearer token for authenticated calls.
func NewClient(baseURL string, secrets ports.SecretStore) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		secrets:    secrets,
	}
}

// call performs a request against the partner API and decodes the
// envelope. A nil body sends no payload; a nil out discards the data
// field. When authorized is set the stored access token is attached.
func (c *Client) call(ctx context.Context, operation, method, path string, authorized bool, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	if authorized {
		session, err := c.secrets.LoadSession(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var wrapped envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&wrapped)

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
		if decodeErr != nil {
			return ports.NewRequestRejectedError(operation, resp.Status)
		}
		return ports.NewRequestRejectedError(operation, wrapped.rejectionMessage())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("backend %s failed with status %d", operation, resp.StatusCode)
	}

	if decodeErr != nil {
		return fmt.Errorf("backend %s returned malformed response: %w", operation, decodeErr)
	}

	if !wrapped.Success {
		return ports.NewRequestRejectedError(operation, wrapped.rejectionMessage())
	}

	if out != nil && len(wrapped.Data) > 0 {
		if err := json.Unmarshal(wrapped.Data, out); err != nil {
			return fmt.Errorf("backend %s returned malformed data: %w", operation, err)
		}
	}

	return nil
}
