// Package usecase contains the business logic for invoice management.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/invoices/internal/database"
	"github.com/allisson/invoices/internal/invoice/domain"
	appValidation "github.com/allisson/invoices/internal/validation"
)

// InvoiceRepository defines persistence operations for invoices.
// Every read and write is scoped to the owning user: operations that take an
// ownerID must not observe or touch invoices owned by anyone else, and a
// mismatch surfaces as domain.ErrInvoiceNotFound.
type InvoiceRepository interface {
	// Create persists a new invoice.
	Create(ctx context.Context, invoice *domain.Invoice) error

	// Update overwrites an invoice's content fields. The invoice is matched
	// by ID and UserID. Returns domain.ErrInvoiceNotFound if no owned
	// invoice matches.
	Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)

	// SetStatus changes the status of an owned invoice.
	// Returns domain.ErrInvoiceNotFound if no owned invoice matches.
	SetStatus(ctx context.Context, ownerID, id uuid.UUID, status domain.Status) (*domain.Invoice, error)

	// Delete removes an owned invoice.
	// Returns domain.ErrInvoiceNotFound if no owned invoice matches.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// GetByID retrieves an owned invoice.
	// Returns domain.ErrInvoiceNotFound if no owned invoice matches.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Invoice, error)

	// ListByOwner retrieves invoices owned by the given user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Invoice, error)
}

// Notifier delivers invoice lifecycle notifications to the invoice's client.
// Delivery is best-effort: callers treat failures as non-fatal.
type Notifier interface {
	InvoiceCreated(ctx context.Context, invoice *domain.Invoice) error
	InvoiceUpdated(ctx context.Context, invoice *domain.Invoice) error
}

// InvoiceInput carries the client-submitted content of an invoice. The same
// shape is used for creation and for full-overwrite edits.
type InvoiceInput struct {
	InvoiceName            string          `json:"invoiceName"`
	InvoiceNumber          int             `json:"invoiceNumber"`
	Status                 domain.Status   `json:"status"`
	Currency               domain.Currency `json:"currency"`
	Date                   time.Time       `json:"date"`
	DueDate                time.Time       `json:"dueDate"`
	ClientName             string          `json:"clientName"`
	ClientEmail            string          `json:"clientEmail"`
	ClientAddress          string          `json:"clientAddress"`
	FromName               string          `json:"fromName"`
	FromEmail              string          `json:"fromEmail"`
	FromAddress            string          `json:"fromAddress"`
	InvoiceItemDescription string          `json:"invoiceItemDescription"`
	InvoiceItemQuantity    int             `json:"invoiceItemQuantity"`
	InvoiceItemRate        float64         `json:"invoiceItemRate"`
	Total                  float64         `json:"total"`
	Note                   string          `json:"note"`
}

// Validate checks the invoice content against the domain rules.
func (i InvoiceInput) Validate() error {
	err := validation.ValidateStruct(&i,
		validation.Field(&i.InvoiceName,
			validation.Required.Error("invoice name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("invoice name must be between 1 and 255 characters"),
		),
		validation.Field(&i.InvoiceNumber,
			validation.Required.Error("invoice number is required"),
			validation.Min(1).Error("invoice number must be a positive integer"),
		),
		validation.Field(&i.Status,
			validation.Required.Error("status is required"),
			validation.By(validStatus),
		),
		validation.Field(&i.Currency,
			validation.Required.Error("currency is required"),
			validation.By(validCurrency),
		),
		validation.Field(&i.Date,
			validation.Required.Error("date is required"),
		),
		validation.Field(&i.DueDate,
			validation.Required.Error("due date is required"),
		),
		validation.Field(&i.ClientName,
			validation.Required.Error("client name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("client name must be between 1 and 255 characters"),
		),
		validation.Field(&i.ClientEmail,
			validation.Required.Error("client email is required"),
			appValidation.Email,
		),
		validation.Field(&i.ClientAddress,
			validation.Required.Error("client address is required"),
			appValidation.NotBlank,
			validation.Length(1, 500).Error("client address must be between 1 and 500 characters"),
		),
		validation.Field(&i.FromName,
			validation.Required.Error("sender name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("sender name must be between 1 and 255 characters"),
		),
		validation.Field(&i.FromEmail,
			validation.Required.Error("sender email is required"),
			appValidation.Email,
		),
		validation.Field(&i.FromAddress,
			validation.Required.Error("sender address is required"),
			appValidation.NotBlank,
			validation.Length(1, 500).Error("sender address must be between 1 and 500 characters"),
		),
		validation.Field(&i.InvoiceItemDescription,
			validation.Required.Error("item description is required"),
			appValidation.NotBlank,
			validation.Length(1, 500).Error("item description must be between 1 and 500 characters"),
		),
		validation.Field(&i.InvoiceItemQuantity,
			validation.Required.Error("item quantity is required"),
			validation.Min(1).Error("item quantity must be a positive integer"),
		),
		validation.Field(&i.InvoiceItemRate,
			validation.Required.Error("item rate is required"),
			validation.Min(0.0).Exclusive().Error("item rate must be a positive number"),
		),
		// Required is skipped on purpose: it treats a zero total as absent,
		// and a zero total is a valid amount.
		validation.Field(&i.Total,
			validation.Min(0.0).Error("total must be zero or a positive number"),
		),
		validation.Field(&i.Note,
			validation.Length(0, 2000).Error("note must be at most 2000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func validStatus(value interface{}) error {
	status, _ := value.(domain.Status)
	if !status.Valid() {
		return validation.NewError("validation_invoice_status", "must be either PENDING or PAID")
	}
	return nil
}

func validCurrency(value interface{}) error {
	currency, _ := value.(domain.Currency)
	if !currency.Valid() {
		return validation.NewError("validation_invoice_currency", "must be either USD or EUR")
	}
	return nil
}

// UseCase defines the invoice management operations.
type UseCase interface {
	CreateInvoice(ctx context.Context, ownerID uuid.UUID, input InvoiceInput) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, ownerID, id uuid.UUID, input InvoiceInput) (*domain.Invoice, error)
	MarkInvoicePaid(ctx context.Context, ownerID, id uuid.UUID) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, ownerID, id uuid.UUID) error
	GetInvoice(ctx context.Context, ownerID, id uuid.UUID) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Invoice, error)
}

// invoiceUseCase implements UseCase.
type invoiceUseCase struct {
	txManager   database.TxManager
	invoiceRepo InvoiceRepository
	notifier    Notifier
	logger      *slog.Logger
}

// NewInvoiceUseCase creates a new invoice use case.
func NewInvoiceUseCase(
	txManager database.TxManager,
	invoiceRepo InvoiceRepository,
	notifier Notifier,
	logger *slog.Logger,
) UseCase {
	return &invoiceUseCase{
		txManager:   txManager,
		invoiceRepo: invoiceRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (u *invoiceUseCase) CreateInvoice(ctx context.Context, ownerID uuid.UUID, input InvoiceInput) (*domain.Invoice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	invoice := newInvoiceFromInput(ownerID, input)
	if err := u.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	// Notification delivery is best-effort: a failure is logged but never
	// fails the operation.
	if err := u.notifier.InvoiceCreated(ctx, invoice); err != nil {
		u.logger.Warn("failed to send invoice created notification",
			slog.String("invoice_id", invoice.ID.String()),
			slog.Any("error", err),
		)
	}

	return invoice, nil
}

func (u *invoiceUseCase) UpdateInvoice(ctx context.Context, ownerID, id uuid.UUID, input InvoiceInput) (*domain.Invoice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	invoice := newInvoiceFromInput(ownerID, input)
	invoice.ID = id

	// The update and the follow-up read run in one transaction so the
	// returned row reflects exactly this write.
	var updated *domain.Invoice
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = u.invoiceRepo.Update(ctx, invoice)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	if err := u.notifier.InvoiceUpdated(ctx, updated); err != nil {
		u.logger.Warn("failed to send invoice updated notification",
			slog.String("invoice_id", updated.ID.String()),
			slog.Any("error", err),
		)
	}

	return updated, nil
}

func (u *invoiceUseCase) MarkInvoicePaid(ctx context.Context, ownerID, id uuid.UUID) (*domain.Invoice, error) {
	var updated *domain.Invoice
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = u.invoiceRepo.SetStatus(ctx, ownerID, id, domain.StatusPaid)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *invoiceUseCase) DeleteInvoice(ctx context.Context, ownerID, id uuid.UUID) error {
	return u.invoiceRepo.Delete(ctx, ownerID, id)
}

func (u *invoiceUseCase) GetInvoice(ctx context.Context, ownerID, id uuid.UUID) (*domain.Invoice, error) {
	return u.invoiceRepo.GetByID(ctx, ownerID, id)
}

func (u *invoiceUseCase) ListInvoices(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Invoice, error) {
	return u.invoiceRepo.ListByOwner(ctx, ownerID, offset, limit)
}

// newInvoiceFromInput builds a domain invoice from validated content.
func newInvoiceFromInput(ownerID uuid.UUID, input InvoiceInput) *domain.Invoice {
	return &domain.Invoice{
		ID:                     uuid.Must(uuid.NewV7()),
		UserID:                 ownerID,
		InvoiceName:            strings.TrimSpace(input.InvoiceName),
		InvoiceNumber:          input.InvoiceNumber,
		Status:                 input.Status,
		Currency:               input.Currency,
		Date:                   input.Date,
		DueDate:                input.DueDate,
		ClientName:             strings.TrimSpace(input.ClientName),
		ClientEmail:            strings.ToLower(strings.TrimSpace(input.ClientEmail)),
		ClientAddress:          strings.TrimSpace(input.ClientAddress),
		FromName:               strings.TrimSpace(input.FromName),
		FromEmail:              strings.ToLower(strings.TrimSpace(input.FromEmail)),
		FromAddress:            strings.TrimSpace(input.FromAddress),
		InvoiceItemDescription: strings.TrimSpace(input.InvoiceItemDescription),
		InvoiceItemQuantity:    input.InvoiceItemQuantity,
		InvoiceItemRate:        input.InvoiceItemRate,
		Total:                  input.Total,
		Note:                   strings.TrimSpace(input.Note),
	}
}
