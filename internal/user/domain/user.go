// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/invoices/internal/errors"
)

// User represents an account holder. Users are created by the external
// authentication flow before this service ever sees them; the onboarding
// operation only fills in the profile fields (first name, last name, address).
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Onboarded reports whether the user has completed onboarding.
func (u *User) Onboarded() bool {
	return u.FirstName != "" && u.LastName != "" && u.Address != ""
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
