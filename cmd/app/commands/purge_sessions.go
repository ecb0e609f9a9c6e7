package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	authUseCase "github.com/allisson/invoices/internal/auth/usecase"
)

// RunPurgeSessions deletes sessions whose expiration time has passed.
// Outputs the number of removed sessions in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunPurgeSessions(
	ctx context.Context,
	sessions authUseCase.SessionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	logger.Info("purging expired sessions")

	count, err := sessions.PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired sessions: %w", err)
	}

	// Output result based on format
	if format == "json" {
		outputPurgeSessionsJSON(count, writer)
	} else {
		outputPurgeSessionsText(count, writer)
	}

	logger.Info("purge completed", slog.Int64("count", count))

	return nil
}

// outputPurgeSessionsText outputs the result in human-readable text format.
func outputPurgeSessionsText(count int64, writer io.Writer) {
	_, _ = fmt.Fprintf(writer, "Successfully deleted %d expired session(s)\n", count)
}

// outputPurgeSessionsJSON outputs the result in JSON format for machine consumption.
func outputPurgeSessionsJSON(count int64, writer io.Writer) {
	result := map[string]interface{}{
		"count": count,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
