// Package usecase contains the business logic for session management.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/invoices/internal/auth/domain"
	"github.com/allisson/invoices/internal/auth/service"
	apperrors "github.com/allisson/invoices/internal/errors"
)

// SessionRepository defines persistence operations for sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *domain.Session) error

	// GetByTokenHash retrieves a session by its token hash.
	// Returns domain.ErrSessionNotFound if no session matches.
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)

	// DeleteExpired removes all sessions that expired before the given time.
	// Returns the number of sessions removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// SessionUseCase defines the session management operations.
type SessionUseCase interface {
	// CreateSession issues a new session for the given user and returns the
	// plain token. The plain token is never stored.
	CreateSession(ctx context.Context, userID uuid.UUID) (*domain.Session, string, error)

	// Authenticate validates a plain session token and returns the identity
	// bound to it. Missing, unknown, and expired tokens all map to
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, plainToken string) (*domain.Identity, error)

	// PurgeExpired removes sessions that have already expired.
	PurgeExpired(ctx context.Context) (int64, error)
}

// sessionUseCase implements SessionUseCase.
type sessionUseCase struct {
	sessionRepo  SessionRepository
	tokenService service.TokenService
	expiration   time.Duration
}

// NewSessionUseCase creates a new SessionUseCase with the configured session lifetime.
func NewSessionUseCase(
	sessionRepo SessionRepository,
	tokenService service.TokenService,
	expiration time.Duration,
) SessionUseCase {
	return &sessionUseCase{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		expiration:   expiration,
	}
}

func (s *sessionUseCase) CreateSession(ctx context.Context, userID uuid.UUID) (*domain.Session, string, error) {
	plainToken, tokenHash, err := s.tokenService.GenerateToken()
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: now.Add(s.expiration),
		CreatedAt: now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", err
	}

	return session, plainToken, nil
}

func (s *sessionUseCase) Authenticate(ctx context.Context, plainToken string) (*domain.Identity, error) {
	if plainToken == "" {
		return nil, domain.ErrInvalidCredentials
	}

	tokenHash := s.tokenService.HashToken(plainToken)

	session, err := s.sessionRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		// Unknown tokens map to the generic credentials error to prevent
		// token enumeration.
		if apperrors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if session.Expired(time.Now().UTC()) {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Identity{UserID: session.UserID, SessionID: session.ID}, nil
}

func (s *sessionUseCase) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx, time.Now().UTC())
}
