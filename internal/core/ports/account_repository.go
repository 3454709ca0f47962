package ports

import (
	"context"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for the partner
// profile and its satellites.
type AccountRepository interface {
	// AddProfile persists a freshly created profile.
	AddProfile(ctx context.Context, aggregate *account.Profile) error

	// UpdateProfile persists changes to the profile.
	UpdateProfile(ctx context.Context, aggregate *account.Profile) error

	// GetProfile retrieves the signed-in partner's profile.
	GetProfile(ctx context.Context) (*account.Profile, error)

	// AddDocument records a new document upload.
	AddDocument(ctx context.Context, document *account.Document) error

	// UpdateDocument persists a review outcome.
	UpdateDocument(ctx context.Context, document *account.Document) error

	// GetDocuments retrieves all uploaded documents, newest first.
	GetDocuments(ctx context.Context) ([]*account.Document, error)

	// AddRating records a submitted rating.
	AddRating(ctx context.Context, rating account.Rating) error

	// GetRatingForOrder retrieves the rating of the given source already
	// submitted for an order, or errs.ObjectNotFoundError when none exists.
	GetRatingForOrder(ctx context.Context, orderID kernel.UUID, source account.RatingSource) (account.Rating, error)
}
