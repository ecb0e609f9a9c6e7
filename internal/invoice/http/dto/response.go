// Package dto provides data transfer objects for the invoice HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceResponse represents the API response for an invoice.
// Date and DueDate use YYYY-MM-DD form to mirror the request shape.
type InvoiceResponse struct {
	ID                     uuid.UUID `json:"id"`
	InvoiceName            string    `json:"invoiceName"`
	InvoiceNumber          int       `json:"invoiceNumber"`
	Status                 string    `json:"status"`
	Currency               string    `json:"currency"`
	Date                   string    `json:"date"`
	DueDate                string    `json:"dueDate"`
	ClientName             string    `json:"clientName"`
	ClientEmail            string    `json:"clientEmail"`
	ClientAddress          string    `json:"clientAddress"`
	FromName               string    `json:"fromName"`
	FromEmail              string    `json:"fromEmail"`
	FromAddress            string    `json:"fromAddress"`
	InvoiceItemDescription string    `json:"invoiceItemDescription"`
	InvoiceItemQuantity    int       `json:"invoiceItemQuantity"`
	InvoiceItemRate        float64   `json:"invoiceItemRate"`
	Total                  float64   `json:"total"`
	Note                   string    `json:"note,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// InvoiceListResponse represents a page of invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
}
