// Package secretstore persists the session tokens of the signed-in
// partner. Tokens live in their own single-row table so logout can wipe
// them without touching any aggregate data.
package secretstore

import (
	"context"
	"errors"
	"time"

	"riderhub/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRowID is the fixed primary key of the single session row.
const sessionRowID = int16(1)

// SessionDTO represents the stored session tokens.
type SessionDTO struct {
	ID           int16 `gorm:"primaryKey"`
	AccessToken  string
	RefreshToken string
	PartnerID    string
	ExpiresAt    time.Time
}

// TableName specifies the database table name for the session.
func (SessionDTO) TableName() string {
	return "sessions"
}

// GormSecretStore implements SecretStore using GORM.
type GormSecretStore struct {
	db *gorm.DB
}

// NewGormSecretStore creates a new GORM secret store.
func NewGormSecretStore(db *gorm.DB) *GormSecretStore {
	return &GormSecretStore{db: db}
}

// SaveSession stores the session, replacing any previous one.
func (s *GormSecretStore) SaveSession(ctx context.Context, session ports.Session) error {
	dto := SessionDTO{
		ID:           sessionRowID,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		PartnerID:    session.PartnerID,
		ExpiresAt:    session.ExpiresAt,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// LoadSession retrieves the stored session or ErrSessionNotFound.
func (s *GormSecretStore) LoadSession(ctx context.Context) (ports.Session, error) {
	var dto SessionDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", sessionRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Session{}, ports.ErrSessionNotFound
		}
		return ports.Session{}, err
	}

	return ports.Session{
		AccessToken:  dto.AccessToken,
		RefreshToken: dto.RefreshToken,
		PartnerID:    dto.PartnerID,
		ExpiresAt:    dto.ExpiresAt,
	}, nil
}

// ClearSession removes the stored session. Clearing an empty store is not
// an error.
func (s *GormSecretStore) ClearSession(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("id = ?", sessionRowID).
		Delete(&SessionDTO{}).Error
}
