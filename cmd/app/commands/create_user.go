package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	userUseCase "github.com/allisson/invoices/internal/user/usecase"
)

// RunCreateUser registers a new user with the given email. The user starts
// with an empty profile and completes it through the onboarding endpoint.
// Outputs the user ID in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	email string,
	format string,
) error {
	logger.Info("creating new user", slog.String("email", email))

	user, err := useCase.CreateUser(ctx, userUseCase.CreateUserInput{Email: email})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputCreateUserJSON(user.ID.String(), user.Email, writer)
	} else {
		outputCreateUserText(user.ID.String(), user.Email, writer)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	return nil
}

// outputCreateUserText outputs the result in human-readable text format.
func outputCreateUserText(id, email string, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nUser created successfully!")
	_, _ = fmt.Fprintf(writer, "User ID: %s\n", id)
	_, _ = fmt.Fprintf(writer, "Email: %s\n", email)
}

// outputCreateUserJSON outputs the result in JSON format for machine consumption.
func outputCreateUserJSON(id, email string, writer io.Writer) {
	result := map[string]string{
		"user_id": id,
		"email":   email,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
