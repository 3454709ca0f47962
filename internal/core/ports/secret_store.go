package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when no session is stored.
var ErrSessionNotFound = errors.New("session not found")

// Session is the stored authentication state of the signed-in partner.
type Session struct {
	AccessToken  string
	RefreshToken string
	PartnerID    string
	ExpiresAt    time.Time
}

// IsExpired reports whether the access token has expired at the given
// instant.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// SecretStore persists the session tokens outside the regular aggregates,
// so credentials survive restarts and can be wiped independently on
// logout.
type SecretStore interface {
	// SaveSession stores the session, replacing any previous one.
	SaveSession(ctx context.Context, session Session) error

	// LoadSession retrieves the stored session or ErrSessionNotFound.
	LoadSession(ctx context.Context) (Session, error)

	// ClearSession removes the stored session. Clearing an empty store is
	// not an error.
	ClearSession(ctx context.Context) error
}
