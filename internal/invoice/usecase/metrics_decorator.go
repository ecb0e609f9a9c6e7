package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	invoiceDomain "github.com/allisson/invoices/internal/invoice/domain"
	"github.com/allisson/invoices/internal/metrics"
)

// invoiceUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type invoiceUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewInvoiceUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewInvoiceUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &invoiceUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (i *invoiceUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "invoice", operation, status)
	i.metrics.RecordDuration(ctx, "invoice", operation, time.Since(start), status)
}

// CreateInvoice records metrics for invoice creation.
func (i *invoiceUseCaseWithMetrics) CreateInvoice(
	ctx context.Context,
	ownerID uuid.UUID,
	input InvoiceInput,
) (*invoiceDomain.Invoice, error) {
	start := time.Now()
	invoice, err := i.next.CreateInvoice(ctx, ownerID, input)
	i.record(ctx, "invoice_create", start, err)
	return invoice, err
}

// UpdateInvoice records metrics for invoice edits.
func (i *invoiceUseCaseWithMetrics) UpdateInvoice(
	ctx context.Context,
	ownerID, id uuid.UUID,
	input InvoiceInput,
) (*invoiceDomain.Invoice, error) {
	start := time.Now()
	invoice, err := i.next.UpdateInvoice(ctx, ownerID, id, input)
	i.record(ctx, "invoice_update", start, err)
	return invoice, err
}

// MarkInvoicePaid records metrics for mark-as-paid operations.
func (i *invoiceUseCaseWithMetrics) MarkInvoicePaid(
	ctx context.Context,
	ownerID, id uuid.UUID,
) (*invoiceDomain.Invoice, error) {
	start := time.Now()
	invoice, err := i.next.MarkInvoicePaid(ctx, ownerID, id)
	i.record(ctx, "invoice_mark_paid", start, err)
	return invoice, err
}

// DeleteInvoice records metrics for invoice deletion.
func (i *invoiceUseCaseWithMetrics) DeleteInvoice(ctx context.Context, ownerID, id uuid.UUID) error {
	start := time.Now()
	err := i.next.DeleteInvoice(ctx, ownerID, id)
	i.record(ctx, "invoice_delete", start, err)
	return err
}

// GetInvoice records metrics for invoice retrieval.
func (i *invoiceUseCaseWithMetrics) GetInvoice(
	ctx context.Context,
	ownerID, id uuid.UUID,
) (*invoiceDomain.Invoice, error) {
	start := time.Now()
	invoice, err := i.next.GetInvoice(ctx, ownerID, id)
	i.record(ctx, "invoice_get", start, err)
	return invoice, err
}

// ListInvoices records metrics for invoice listing.
func (i *invoiceUseCaseWithMetrics) ListInvoices(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*invoiceDomain.Invoice, error) {
	start := time.Now()
	invoices, err := i.next.ListInvoices(ctx, ownerID, offset, limit)
	i.record(ctx, "invoice_list", start, err)
	return invoices, err
}
