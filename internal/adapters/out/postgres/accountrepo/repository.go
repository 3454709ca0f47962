package accountrepo

import (
	"context"
	"errors"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// AddProfile saves a freshly created profile.
func (r *GormAccountRepository) AddProfile(ctx context.Context, aggregate *account.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := profileFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateProfile saves changes to the profile.
func (r *GormAccountRepository) UpdateProfile(ctx context.Context, aggregate *account.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := profileFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProfileDTO{}).
		Select("*").Omit("id").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("profile", aggregate.ID().String())
	}

	return nil
}

// GetProfile retrieves the signed-in partner's profile.
func (r *GormAccountRepository) GetProfile(ctx context.Context) (*account.Profile, error) {
	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", "signed-in partner")
		}
		return nil, err
	}

	return profileToDomain(dto)
}

// AddDocument records a new document upload.
func (r *GormAccountRepository) AddDocument(ctx context.Context, document *account.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}

	dto := documentFromDomain(document)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateDocument saves a review outcome.
func (r *GormAccountRepository) UpdateDocument(ctx context.Context, document *account.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}

	dto := documentFromDomain(document)
	result := r.db.WithContext(ctx).Model(&DocumentDTO{}).
		Select("*").Omit("id", "uploaded_at").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("document", document.ID().String())
	}

	return nil
}

// GetDocuments retrieves all uploaded documents, newest first.
func (r *GormAccountRepository) GetDocuments(ctx context.Context) ([]*account.Document, error) {
	var dtos []DocumentDTO
	if err := r.db.WithContext(ctx).Order("uploaded_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	documents := make([]*account.Document, 0, len(dtos))
	for _, dto := range dtos {
		document, err := documentToDomain(dto)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}

	return documents, nil
}

// AddRating records a submitted rating.
func (r *GormAccountRepository) AddRating(ctx context.Context, rating account.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	dto := ratingFromDomain(rating)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetRatingForOrder retrieves the rating already submitted for an order by
// the given source.
func (r *GormAccountRepository) GetRatingForOrder(
	ctx context.Context,
	orderID kernel.UUID,
	source account.RatingSource,
) (account.Rating, error) {
	if err := orderID.Validate(); err != nil {
		return account.Rating{}, err
	}
	if err := source.Validate(); err != nil {
		return account.Rating{}, err
	}

	var dto RatingDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND source = ?", orderID.Bytes(), source.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Rating{}, errs.NewObjectNotFoundError("rating", orderID.String())
		}
		return account.Rating{}, err
	}

	return ratingToDomain(dto)
}
