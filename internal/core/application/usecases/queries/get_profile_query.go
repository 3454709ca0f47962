package queries

import (
	"errors"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves the partner profile with its documents.
type GetProfileQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query to retrieve the profile.
func NewGetProfileQuery() GetProfileQuery {
	return GetProfileQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// DocumentResponse represents one uploaded compliance document.
type DocumentResponse struct {
	ID              kernel.UUID
	Type            string
	FileURL         string
	Status          string
	RejectionReason string
	UploadedAt      time.Time
	ReviewedAt      *time.Time
}

// GetProfileQueryResponse represents the partner profile screen.
type GetProfileQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Email           string
	Phone           string
	VehicleType     string
	VehicleNumber   string
	IsOnline        bool
	Rating          float64
	TotalDeliveries int64
	Documents       []DocumentResponse
}
