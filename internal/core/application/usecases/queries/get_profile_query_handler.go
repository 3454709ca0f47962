package queries

import (
	"context"
	"database/sql"
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler reads the partner profile and its documents from
// the database.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile queries.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query. The rating is averaged here rather than
// stored, so the projection can never drift from the recorded scores.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	response, err := h.readProfile(ctx)
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	documents, err := h.readDocuments(ctx)
	if err != nil {
		return GetProfileQueryResponse{}, err
	}
	response.Documents = documents

	return response, nil
}

func (h GetProfileQueryHandler) readProfile(ctx context.Context) (GetProfileQueryResponse, error) {
	var response GetProfileQueryResponse
	var id uuid.UUID
	var ratingSum, ratingCount int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			vehicle_type,
			vehicle_number,
			is_online,
			rating_sum,
			rating_count,
			total_deliveries
		FROM profiles
		LIMIT 1
	`).Row()

	err := row.Scan(
		&id,
		&response.Name,
		&response.Email,
		&response.Phone,
		&response.VehicleType,
		&response.VehicleNumber,
		&response.IsOnline,
		&ratingSum,
		&ratingCount,
		&response.TotalDeliveries,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetProfileQueryResponse{}, errs.NewObjectNotFoundError("profile", "signed-in partner")
		}
		return GetProfileQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetProfileQueryResponse{}, err
	}

	if ratingCount > 0 {
		response.Rating = float64(ratingSum) / float64(ratingCount)
	}

	return response, nil
}

func (h GetProfileQueryHandler) readDocuments(ctx context.Context) ([]DocumentResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			doc_type,
			file_url,
			status,
			rejection_reason,
			uploaded_at,
			reviewed_at
		FROM documents
		ORDER BY uploaded_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]DocumentResponse, 0)

	for rows.Next() {
		var document DocumentResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&document.Type,
			&document.FileURL,
			&document.Status,
			&document.RejectionReason,
			&document.UploadedAt,
			&document.ReviewedAt,
		)
		if err != nil {
			return nil, err
		}

		if document.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		documents = append(documents, document)
	}

	return documents, rows.Err()
}
