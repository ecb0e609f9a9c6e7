// Package domain defines the core invoice domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/invoices/internal/errors"
)

// Status represents the lifecycle state of an invoice. The machine has two
// states: PENDING and PAID. PENDING -> PAID is the only disciplined transition
// (via mark-as-paid); no transition out of PAID is exposed.
type Status string

// Invoice statuses.
const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Currency is an enumerated ISO 4217 currency code accepted on invoices.
type Currency string

// Supported currencies.
const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Valid reports whether the currency code is supported.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyEUR
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	default:
		return "$"
	}
}

// Invoice represents a billable record owned by a user.
//
// UserID scopes every read, update and delete: a lookup that does not match
// both the invoice id and the owner id behaves as if the invoice does not
// exist. Total is client-submitted and stored as-is; it is validated to be
// positive but not recomputed from quantity x rate.
type Invoice struct {
	ID     uuid.UUID
	UserID uuid.UUID

	InvoiceName   string
	InvoiceNumber int
	Status        Status
	Currency      Currency
	Date          time.Time
	DueDate       time.Time

	ClientName    string
	ClientEmail   string
	ClientAddress string
	FromName      string
	FromEmail     string
	FromAddress   string

	InvoiceItemDescription string
	InvoiceItemQuantity    int
	InvoiceItemRate        float64
	Total                  float64
	Note                   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for invoice operations.
var (
	// ErrInvoiceNotFound indicates the invoice does not exist for the given
	// owner. Ownership mismatches surface as this error on purpose so the
	// existence of other users' invoices is never leaked.
	ErrInvoiceNotFound = errors.Wrap(errors.ErrNotFound, "invoice not found")

	// ErrInvalidStatus indicates the status is not one of PENDING or PAID.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid invoice status")

	// ErrInvalidCurrency indicates the currency code is not supported.
	ErrInvalidCurrency = errors.Wrap(errors.ErrInvalidInput, "unsupported currency")
)
