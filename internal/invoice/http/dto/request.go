// Package dto provides data transfer objects for the invoice HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/invoices/internal/validation"
)

// dateLayout is the wire format for invoice dates.
const dateLayout = "2006-01-02"

// InvoiceRequest represents the API request for creating or fully overwriting
// an invoice. Numeric and date fields arrive as strings: clients submit form
// values, and a value that does not parse is a validation failure rather than
// a decoding failure.
type InvoiceRequest struct {
	InvoiceName            string `json:"invoiceName" form:"invoiceName"`
	InvoiceNumber          string `json:"invoiceNumber" form:"invoiceNumber"`
	Status                 string `json:"status" form:"status"`
	Currency               string `json:"currency" form:"currency"`
	Date                   string `json:"date" form:"date"`
	DueDate                string `json:"dueDate" form:"dueDate"`
	ClientName             string `json:"clientName" form:"clientName"`
	ClientEmail            string `json:"clientEmail" form:"clientEmail"`
	ClientAddress          string `json:"clientAddress" form:"clientAddress"`
	FromName               string `json:"fromName" form:"fromName"`
	FromEmail              string `json:"fromEmail" form:"fromEmail"`
	FromAddress            string `json:"fromAddress" form:"fromAddress"`
	InvoiceItemDescription string `json:"invoiceItemDescription" form:"invoiceItemDescription"`
	InvoiceItemQuantity    string `json:"invoiceItemQuantity" form:"invoiceItemQuantity"`
	InvoiceItemRate        string `json:"invoiceItemRate" form:"invoiceItemRate"`
	Total                  string `json:"total" form:"total"`
	Note                   string `json:"note" form:"note"`
}

// Validate validates the InvoiceRequest using the jellydator/validation library.
// InvoiceItemQuantity may be omitted; it defaults to one item.
func (r *InvoiceRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.InvoiceName,
			validation.Required.Error("invoice name is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.InvoiceNumber,
			validation.Required.Error("invoice number is required"),
			appValidation.PositiveInteger,
		),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In("PENDING", "PAID").Error("must be either PENDING or PAID"),
		),
		validation.Field(&r.Currency,
			validation.Required.Error("currency is required"),
			validation.In("USD", "EUR").Error("must be either USD or EUR"),
		),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.Date(dateLayout).Error("must be a date in YYYY-MM-DD form"),
		),
		validation.Field(&r.DueDate,
			validation.Required.Error("due date is required"),
			validation.Date(dateLayout).Error("must be a date in YYYY-MM-DD form"),
		),
		validation.Field(&r.ClientName,
			validation.Required.Error("client name is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.ClientEmail,
			validation.Required.Error("client email is required"),
			appValidation.Email,
		),
		validation.Field(&r.ClientAddress,
			validation.Required.Error("client address is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.FromName,
			validation.Required.Error("sender name is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.FromEmail,
			validation.Required.Error("sender email is required"),
			appValidation.Email,
		),
		validation.Field(&r.FromAddress,
			validation.Required.Error("sender address is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.InvoiceItemDescription,
			validation.Required.Error("item description is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.InvoiceItemQuantity,
			appValidation.PositiveInteger,
		),
		validation.Field(&r.InvoiceItemRate,
			validation.Required.Error("item rate is required"),
			appValidation.PositiveNumber,
		),
		validation.Field(&r.Total,
			validation.Required.Error("total is required"),
			appValidation.NonNegativeNumber,
		),
	)
}
