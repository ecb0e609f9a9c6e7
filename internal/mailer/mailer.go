// Package mailer provides outbound email delivery.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	apperrors "github.com/allisson/invoices/internal/errors"
)

// Mailer delivers HTML emails.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

// SMTPConfig holds the SMTP server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer implements Mailer over plain SMTP with PLAIN auth.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers an HTML email to the given recipients.
func (m *SMTPMailer) Send(_ context.Context, to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return apperrors.New("no recipients")
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(addr, auth, m.cfg.From, to, []byte(msg.String())); err != nil {
		return apperrors.Wrap(err, "failed to send email")
	}

	return nil
}

// DisabledMailer is a no-op Mailer used when outbound email is turned off.
// Sends are logged at debug level and dropped.
type DisabledMailer struct {
	logger *slog.Logger
}

// NewDisabledMailer creates a new DisabledMailer.
func NewDisabledMailer(logger *slog.Logger) *DisabledMailer {
	return &DisabledMailer{logger: logger}
}

// Send drops the email.
func (m *DisabledMailer) Send(_ context.Context, to []string, subject, _ string) error {
	m.logger.Debug("mail delivery disabled, dropping email",
		slog.String("to", strings.Join(to, ", ")),
		slog.String("subject", subject),
	)
	return nil
}
