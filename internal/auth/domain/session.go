// Package domain contains the core session models for authentication.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/invoices/internal/errors"
)

// Domain errors for session operations.
var (
	// ErrSessionNotFound is returned when a session cannot be found.
	ErrSessionNotFound = apperrors.Wrap(apperrors.ErrNotFound, "session not found")

	// ErrInvalidCredentials is returned when a session token is missing,
	// unknown, or expired. It is intentionally generic to prevent token
	// enumeration.
	ErrInvalidCredentials = apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials")
)

// Session represents an authenticated session bound to a user.
// Only the SHA-256 hash of the session token is stored.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session has passed its expiration time.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// Identity is the authenticated principal derived from a valid session.
// Handlers scope every read and write to Identity.UserID.
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}
