// Package service provides invoice notification delivery.
package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	apperrors "github.com/allisson/invoices/internal/errors"
	"github.com/allisson/invoices/internal/invoice/domain"
	"github.com/allisson/invoices/internal/invoice/format"
	"github.com/allisson/invoices/internal/mailer"
	"github.com/allisson/invoices/internal/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

var invoiceEmailTemplate = template.Must(template.ParseFS(templateFS, "templates/invoice_email.html"))

// invoiceEmailData is the payload rendered into the invoice email template.
type invoiceEmailData struct {
	Headline      string
	Intro         string
	ClientName    string
	FromName      string
	InvoiceName   string
	InvoiceNumber int
	Amount        string
	DueDate       string
	Link          string
}

// NotificationService sends invoice lifecycle emails to the invoice's client.
// It implements the invoice use case's Notifier interface.
type NotificationService struct {
	mailer  mailer.Mailer
	metrics metrics.BusinessMetrics
	baseURL string
}

// NewNotificationService creates a new NotificationService. baseURL is the
// externally reachable application URL used to build invoice links.
func NewNotificationService(m mailer.Mailer, bm metrics.BusinessMetrics, baseURL string) *NotificationService {
	return &NotificationService{
		mailer:  m,
		metrics: bm,
		baseURL: baseURL,
	}
}

// InvoiceCreated emails the client about a newly created invoice.
func (s *NotificationService) InvoiceCreated(ctx context.Context, invoice *domain.Invoice) error {
	return s.send(ctx, invoice, "New Invoice", "has sent you a new invoice:", "invoice_created")
}

// InvoiceUpdated emails the client about an edited invoice.
func (s *NotificationService) InvoiceUpdated(ctx context.Context, invoice *domain.Invoice) error {
	return s.send(ctx, invoice, "Updated Invoice", "has updated the invoice:", "invoice_updated")
}

func (s *NotificationService) send(
	ctx context.Context,
	invoice *domain.Invoice,
	subject, intro, operation string,
) error {
	data := invoiceEmailData{
		Headline:      subject,
		Intro:         intro,
		ClientName:    invoice.ClientName,
		FromName:      invoice.FromName,
		InvoiceName:   invoice.InvoiceName,
		InvoiceNumber: invoice.InvoiceNumber,
		Amount:        format.Amount(invoice.Currency, invoice.Total),
		DueDate:       format.LongDate(invoice.DueDate),
		Link:          fmt.Sprintf("%s/v1/invoices/%s", s.baseURL, invoice.ID),
	}

	var body bytes.Buffer
	if err := invoiceEmailTemplate.Execute(&body, data); err != nil {
		s.metrics.RecordOperation(ctx, "notification", operation, "error")
		return apperrors.Wrap(err, "failed to render invoice email")
	}

	if err := s.mailer.Send(ctx, []string{invoice.ClientEmail}, subject, body.String()); err != nil {
		s.metrics.RecordOperation(ctx, "notification", operation, "error")
		return err
	}

	s.metrics.RecordOperation(ctx, "notification", operation, "success")
	return nil
}
