package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	authUseCase "github.com/allisson/invoices/internal/auth/usecase"
	userUseCase "github.com/allisson/invoices/internal/user/usecase"
)

// RunCreateSession creates a new API session for an existing user, identified
// either by ID or by email. Outputs the plain bearer token in either text or
// JSON format. The token is shown only once: the database stores its hash.
//
// Requirements: Database must be migrated and accessible.
func RunCreateSession(
	ctx context.Context,
	users userUseCase.UseCase,
	sessions authUseCase.SessionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	userID string,
	email string,
	format string,
) error {
	if userID == "" && email == "" {
		return fmt.Errorf("either --user-id or --email is required")
	}

	// Resolve the user
	var id uuid.UUID
	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			return fmt.Errorf("invalid user ID: %w", err)
		}
		id = parsed
	} else {
		user, err := users.GetUserByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to find user by email: %w", err)
		}
		id = user.ID
	}

	logger.Info("creating new session", slog.String("user_id", id.String()))

	session, plainToken, err := sessions.CreateSession(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputCreateSessionJSON(session.ID.String(), plainToken, session.ExpiresAt, writer)
	} else {
		outputCreateSessionText(session.ID.String(), plainToken, session.ExpiresAt, writer)
	}

	logger.Info("session created successfully",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", id.String()),
	)

	return nil
}

// outputCreateSessionText outputs the result in human-readable text format.
func outputCreateSessionText(id, token string, expiresAt time.Time, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nSession created successfully!")
	_, _ = fmt.Fprintf(writer, "Session ID: %s\n", id)
	_, _ = fmt.Fprintf(writer, "Token: %s\n", token)
	_, _ = fmt.Fprintf(writer, "Expires at: %s\n", expiresAt.Format(time.RFC3339))
	_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The token is shown only once. Store it securely.")
}

// outputCreateSessionJSON outputs the result in JSON format for machine consumption.
func outputCreateSessionJSON(id, token string, expiresAt time.Time, writer io.Writer) {
	result := map[string]string{
		"session_id": id,
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
