package backendhttp

import (
	"context"
	"fmt"
	"net/http"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"
	"riderhub/internal/core/ports"
)

// RequestPayout asks the backend to initiate a payout.
func (c *Client) RequestPayout(ctx context.Context, amount kernel.Money) (ports.PayoutReceipt, error) {
	body := map[string]string{"amount": amount.String()}

	var receipt struct {
		PayoutID string `json:"payout_id"`
	}
	if err := c.call(ctx, "payout", http.MethodPost, "/v1/wallet/payouts", true, body, &receipt); err != nil {
		return ports.PayoutReceipt{}, err
	}

	return ports.PayoutReceipt{PayoutID: receipt.PayoutID}, nil
}

// CreateTicket registers a support ticket on the backend.
func (c *Client) CreateTicket(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	body := map[string]any{
		"id":          aggregate.ID().String(),
		"title":       aggregate.Title(),
		"description": aggregate.Description(),
		"category":    aggregate.Category().String(),
		"priority":    aggregate.Priority().String(),
		"images":      aggregate.Images(),
	}
	if orderID := aggregate.OrderID(); orderID != nil {
		body["order_id"] = orderID.String()
	}

	return c.call(ctx, "create ticket", http.MethodPost, "/v1/tickets", true, body, nil)
}

// ReplyTicket appends a partner response to a backend ticket.
func (c *Client) ReplyTicket(ctx context.Context, ticketID kernel.UUID, response ticket.Response) error {
	if err := response.Validate(); err != nil {
		return err
	}

	path := fmt.Sprintf("/v1/tickets/%s/responses", ticketID)
	body := map[string]string{
		"id":      response.ID().String(),
		"message": response.Message(),
	}

	return c.call(ctx, "ticket reply", http.MethodPost, path, true, body, nil)
}

// UpdateProfile pushes profile changes to the backend.
func (c *Client) UpdateProfile(ctx context.Context, profile *account.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	body := map[string]any{
		"name":           profile.Name(),
		"email":          profile.Email(),
		"phone":          profile.Phone(),
		"vehicle_type":   profile.VehicleType().String(),
		"vehicle_number": profile.VehicleNumber(),
		"is_online":      profile.IsOnline(),
	}

	return c.call(ctx, "profile update", http.MethodPut, "/v1/profile", true, body, nil)
}

// UploadDocument registers a document upload with the backend.
func (c *Client) UploadDocument(ctx context.Context, document *account.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}

	body := map[string]string{
		"id":       document.ID().String(),
		"doc_type": document.Type().String(),
		"file_url": document.FileURL(),
	}

	return c.call(ctx, "document upload", http.MethodPost, "/v1/profile/documents", true, body, nil)
}

// SubmitRating submits an order rating to the backend.
func (c *Client) SubmitRating(ctx context.Context, rating account.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	body := map[string]any{
		"id":       rating.ID().String(),
		"order_id": rating.OrderID().String(),
		"source":   rating.Source().String(),
		"score":    rating.Score(),
		"comment":  rating.Comment(),
	}

	return c.call(ctx, "rating", http.MethodPost, "/v1/ratings", true, body, nil)
}
