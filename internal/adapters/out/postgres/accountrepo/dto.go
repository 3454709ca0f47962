// Package accountrepo persists the partner profile with its documents and
// submitted ratings. A device holds exactly one profile row.
package accountrepo

import (
	"time"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for the partner profile.
type ProfileDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Email           string
	Phone           string
	VehicleType     string
	VehicleNumber   string
	IsOnline        bool
	RatingSum       int64
	RatingCount     int64
	TotalDeliveries int64
}

// TableName specifies the database table name for the profile.
func (ProfileDTO) TableName() string {
	return "profiles"
}

// DocumentDTO represents an uploaded compliance document.
type DocumentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocType         string
	FileURL         string
	Status          string
	RejectionReason string
	UploadedAt      time.Time `gorm:"index"`
	ReviewedAt      *time.Time
}

// TableName specifies the database table name for documents.
func (DocumentDTO) TableName() string {
	return "documents"
}

// RatingDTO represents a rating the partner submitted for an order. The
// unique index enforces one rating per order and source.
type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_rating_order_source"`
	Source    string    `gorm:"uniqueIndex:idx_rating_order_source"`
	Score     int
	Comment   string
	CreatedAt time.Time
}

// TableName specifies the database table name for ratings.
func (RatingDTO) TableName() string {
	return "ratings"
}

func profileFromDomain(aggregate *account.Profile) ProfileDTO {
	return ProfileDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		VehicleType:     aggregate.VehicleType().String(),
		VehicleNumber:   aggregate.VehicleNumber(),
		IsOnline:        aggregate.IsOnline(),
		RatingSum:       aggregate.RatingSum(),
		RatingCount:     aggregate.RatingCount(),
		TotalDeliveries: aggregate.TotalDeliveries(),
	}
}

func profileToDomain(dto ProfileDTO) (*account.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := account.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	return account.RestoreProfile(
		id, dto.Name, dto.Email, dto.Phone, vehicleType, dto.VehicleNumber,
		dto.IsOnline, dto.RatingSum, dto.RatingCount, dto.TotalDeliveries,
	)
}

func documentFromDomain(document *account.Document) DocumentDTO {
	return DocumentDTO{
		ID:              document.ID().Bytes(),
		DocType:         document.Type().String(),
		FileURL:         document.FileURL(),
		Status:          document.Status().String(),
		RejectionReason: document.RejectionReason(),
		UploadedAt:      document.UploadedAt(),
		ReviewedAt:      document.ReviewedAt(),
	}
}

func documentToDomain(dto DocumentDTO) (*account.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	docType, err := account.DocumentTypeFromString(dto.DocType)
	if err != nil {
		return nil, err
	}

	status, err := account.DocumentStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return account.RestoreDocument(
		id, docType, dto.FileURL, status, dto.RejectionReason,
		dto.UploadedAt, dto.ReviewedAt,
	)
}

func ratingFromDomain(rating account.Rating) RatingDTO {
	return RatingDTO{
		ID:        rating.ID().Bytes(),
		OrderID:   rating.OrderID().Bytes(),
		Source:    rating.Source().String(),
		Score:     rating.Score(),
		Comment:   rating.Comment(),
		CreatedAt: rating.CreatedAt(),
	}
}

func ratingToDomain(dto RatingDTO) (account.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return account.Rating{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return account.Rating{}, err
	}

	source, err := account.RatingSourceFromString(dto.Source)
	if err != nil {
		return account.Rating{}, err
	}

	return account.NewRating(id, orderID, source, dto.Score, dto.Comment, dto.CreatedAt)
}
