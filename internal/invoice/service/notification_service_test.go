package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/invoices/internal/errors"
	"github.com/allisson/invoices/internal/invoice/domain"
	"github.com/allisson/invoices/internal/metrics"
)

// mockMailer is a mock implementation of mailer.Mailer
type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

func testInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        uuid.Must(uuid.NewV7()),
		InvoiceName:   "Website redesign",
		InvoiceNumber: 42,
		Status:        domain.StatusPending,
		Currency:      domain.CurrencyUSD,
		Date:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ClientName:    "Acme Corp",
		ClientEmail:   "billing@acme.test",
		FromName:      "Jan Marshall",
		Total:         100,
	}
}

func TestNotificationService_InvoiceCreated(t *testing.T) {
	m := &mockMailer{}
	svc := NewNotificationService(m, metrics.NewNoOpBusinessMetrics(), "http://localhost:8080")

	invoice := testInvoice()
	var sentBody string
	m.On("Send", mock.Anything, []string{"billing@acme.test"}, "New Invoice", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sentBody = args.String(3) }).
		Return(nil)

	err := svc.InvoiceCreated(context.Background(), invoice)

	require.NoError(t, err)
	// Amount and due date are rendered in en-US form
	assert.Contains(t, sentBody, "$100.00")
	assert.Contains(t, sentBody, "January 15, 2024")
	assert.Contains(t, sentBody, "Acme Corp")
	assert.Contains(t, sentBody, "Jan Marshall")
	assert.Contains(t, sentBody, "http://localhost:8080/v1/invoices/"+invoice.ID.String())
	m.AssertExpectations(t)
}

func TestNotificationService_InvoiceUpdated(t *testing.T) {
	m := &mockMailer{}
	svc := NewNotificationService(m, metrics.NewNoOpBusinessMetrics(), "http://localhost:8080")

	invoice := testInvoice()
	invoice.Currency = domain.CurrencyEUR
	invoice.Total = 1234.5

	var sentBody string
	m.On("Send", mock.Anything, []string{"billing@acme.test"}, "Updated Invoice", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { sentBody = args.String(3) }).
		Return(nil)

	err := svc.InvoiceUpdated(context.Background(), invoice)

	require.NoError(t, err)
	assert.Contains(t, sentBody, "€1,234.50")
	assert.Contains(t, sentBody, "has updated the invoice")
	m.AssertExpectations(t)
}

func TestNotificationService_MailerFailure(t *testing.T) {
	m := &mockMailer{}
	svc := NewNotificationService(m, metrics.NewNoOpBusinessMetrics(), "http://localhost:8080")

	m.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.New("smtp connection refused"))

	err := svc.InvoiceCreated(context.Background(), testInvoice())

	assert.Error(t, err)
}
