package http

import (
	"net/http"
	"time"

	"riderhub/internal/core/application/usecases/commands"
	"riderhub/internal/core/application/usecases/queries"
	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type documentResponse struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	FileURL         string     `json:"file_url"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	UploadedAt      time.Time  `json:"uploaded_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
}

type profileResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	VehicleType     string             `json:"vehicle_type"`
	VehicleNumber   string             `json:"vehicle_number"`
	IsOnline        bool               `json:"is_online"`
	Rating          float64            `json:"rating"`
	TotalDeliveries int64              `json:"total_deliveries"`
	Documents       []documentResponse `json:"documents"`
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	query := queries.NewGetProfileQuery()

	profile, err := s.profileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	documents := make([]documentResponse, len(profile.Documents))
	for i, doc := range profile.Documents {
		documents[i] = documentResponse{
			ID:              doc.ID.String(),
			Type:            doc.Type,
			FileURL:         doc.FileURL,
			Status:          doc.Status,
			RejectionReason: doc.RejectionReason,
			UploadedAt:      doc.UploadedAt,
			ReviewedAt:      doc.ReviewedAt,
		}
	}

	return respondData(ctx, http.StatusOK, profileResponse{
		ID:              profile.ID.String(),
		Name:            profile.Name,
		Email:           profile.Email,
		Phone:           profile.Phone,
		VehicleType:     profile.VehicleType,
		VehicleNumber:   profile.VehicleNumber,
		IsOnline:        profile.IsOnline,
		Rating:          profile.Rating,
		TotalDeliveries: profile.TotalDeliveries,
		Documents:       documents,
	})
}

type updateProfileRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
}

// UpdateProfile handles PUT /api/v1/profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var req updateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	vehicleType, err := account.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return respondBadRequest(ctx, "invalid vehicle type")
	}

	cmd, err := commands.NewUpdateProfileCommand(
		req.Name, req.Email, req.Phone, vehicleType, req.VehicleNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "profile updated")
}

type setAvailabilityRequest struct {
	IsOnline bool `json:"is_online"`
}

// SetAvailability handles PUT /api/v1/profile/availability.
func (s *Server) SetAvailability(ctx echo.Context) error {
	var req setAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd := commands.NewSetAvailabilityCommand(req.IsOnline)

	if err := s.setAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "availability updated")
}

type uploadDocumentRequest struct {
	Type    string `json:"type"`
	FileURL string `json:"file_url"`
}

// UploadDocument handles POST /api/v1/profile/documents.
func (s *Server) UploadDocument(ctx echo.Context) error {
	var req uploadDocumentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	docType, err := account.DocumentTypeFromString(req.Type)
	if err != nil {
		return respondBadRequest(ctx, "invalid document type")
	}

	cmd, err := commands.NewUploadDocumentCommand(docType, req.FileURL)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.uploadDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusCreated, "document uploaded")
}

type submitRatingRequest struct {
	OrderID string `json:"order_id"`
	Source  string `json:"source"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// SubmitRating handles POST /api/v1/ratings.
func (s *Server) SubmitRating(ctx echo.Context) error {
	var req submitRatingRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	source, err := account.RatingSourceFromString(req.Source)
	if err != nil {
		return respondBadRequest(ctx, "invalid source")
	}

	cmd, err := commands.NewSubmitRatingCommand(orderID, source, req.Score, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusCreated, "rating submitted")
}
