package ports

import (
	"context"
	"fmt"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/core/domain/model/ticket"
)

// RequestRejectedError is returned by the gateway when the backend refuses
// a request with a business error rather than failing technically. The
// calling handler rolls its tentative local change back.
type RequestRejectedError struct {
	Operation string
	Message   string
}

// NewRequestRejectedError creates a RequestRejectedError.
func NewRequestRejectedError(operation, message string) *RequestRejectedError {
	return &RequestRejectedError{Operation: operation, Message: message}
}

// Error implements the error interface.
func (e *RequestRejectedError) Error() string {
	return fmt.Sprintf("backend rejected %s: %s", e.Operation, e.Message)
}

// Credentials is a password login request.
type Credentials struct {
	Email    string
	Password string
}

// PayoutReceipt is the backend's acknowledgement of a payout request.
type PayoutReceipt struct {
	PayoutID string
}

// BackendGateway is the consumed contract of the platform backend. Every
// local state change that the platform must know about goes through here
// before the local transaction commits.
type BackendGateway interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, credentials Credentials) (Session, error)

	// SendOTP asks the backend to send a one-time code to the phone.
	SendOTP(ctx context.Context, phone string) error

	// LoginWithOTP exchanges a phone and one-time code for a session.
	LoginWithOTP(ctx context.Context, phone, code string) (Session, error)

	// RefreshSession rotates an expiring session.
	RefreshSession(ctx context.Context, refreshToken string) (Session, error)

	// Logout invalidates the session on the backend.
	Logout(ctx context.Context) error

	// FetchAssignedOrders retrieves orders newly assigned to the partner.
	FetchAssignedOrders(ctx context.Context) ([]*order.Order, error)

	// ConfirmAccept reports that the partner accepted the order.
	ConfirmAccept(ctx context.Context, orderID kernel.UUID) error

	// ConfirmReject reports that the partner rejected the order.
	ConfirmReject(ctx context.Context, orderID kernel.UUID, reason string) error

	// ConfirmStatus reports a lifecycle advance, with the partner's
	// location when available.
	ConfirmStatus(ctx context.Context, orderID kernel.UUID, status order.Status, location *kernel.GeoPoint) error

	// RequestPayout asks the backend to initiate a payout.
	RequestPayout(ctx context.Context, amount kernel.Money) (PayoutReceipt, error)

	// CreateTicket registers a support ticket on the backend.
	CreateTicket(ctx context.Context, aggregate *ticket.Ticket) error

	// ReplyTicket appends a partner response to a backend ticket.
	ReplyTicket(ctx context.Context, ticketID kernel.UUID, response ticket.Response) error

	// UpdateProfile pushes profile changes to the backend.
	UpdateProfile(ctx context.Context, profile *account.Profile) error

	// UploadDocument registers a document upload with the backend.
	UploadDocument(ctx context.Context, document *account.Document) error

	// SubmitRating submits an order rating to the backend.
	SubmitRating(ctx context.Context, rating account.Rating) error
}
