// Package dto provides data transfer objects for the invoice HTTP layer.
package dto

import (
	"strconv"
	"time"

	apperrors "github.com/allisson/invoices/internal/errors"
	"github.com/allisson/invoices/internal/invoice/domain"
	"github.com/allisson/invoices/internal/invoice/usecase"
)

// ToInvoiceInput converts a validated InvoiceRequest into a use case input.
// An omitted item quantity defaults to a single item.
func ToInvoiceInput(req InvoiceRequest) (usecase.InvoiceInput, error) {
	invoiceNumber, err := strconv.Atoi(req.InvoiceNumber)
	if err != nil {
		return usecase.InvoiceInput{}, apperrors.Wrap(err, "failed to parse invoice number")
	}

	quantity := 1
	if req.InvoiceItemQuantity != "" {
		if quantity, err = strconv.Atoi(req.InvoiceItemQuantity); err != nil {
			return usecase.InvoiceInput{}, apperrors.Wrap(err, "failed to parse item quantity")
		}
	}

	rate, err := strconv.ParseFloat(req.InvoiceItemRate, 64)
	if err != nil {
		return usecase.InvoiceInput{}, apperrors.Wrap(err, "failed to parse item rate")
	}

	total, err := strconv.ParseFloat(req.Total, 64)
	if err != nil {
		return usecase.InvoiceInput{}, apperrors.Wrap(err, "failed to parse total")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return usecase.InvoiceInput{}, apperrors.Wrap(err, "failed to parse date")
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return usecase.InvoiceInput{}, apperrors.Wrap(err, "failed to parse due date")
	}

	return usecase.InvoiceInput{
		InvoiceName:            req.InvoiceName,
		InvoiceNumber:          invoiceNumber,
		Status:                 domain.Status(req.Status),
		Currency:               domain.Currency(req.Currency),
		Date:                   date,
		DueDate:                dueDate,
		ClientName:             req.ClientName,
		ClientEmail:            req.ClientEmail,
		ClientAddress:          req.ClientAddress,
		FromName:               req.FromName,
		FromEmail:              req.FromEmail,
		FromAddress:            req.FromAddress,
		InvoiceItemDescription: req.InvoiceItemDescription,
		InvoiceItemQuantity:    quantity,
		InvoiceItemRate:        rate,
		Total:                  total,
		Note:                   req.Note,
	}, nil
}

// ToInvoiceResponse converts a domain Invoice model to an InvoiceResponse DTO.
func ToInvoiceResponse(invoice *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                     invoice.ID,
		InvoiceName:            invoice.InvoiceName,
		InvoiceNumber:          invoice.InvoiceNumber,
		Status:                 string(invoice.Status),
		Currency:               string(invoice.Currency),
		Date:                   invoice.Date.Format(dateLayout),
		DueDate:                invoice.DueDate.Format(dateLayout),
		ClientName:             invoice.ClientName,
		ClientEmail:            invoice.ClientEmail,
		ClientAddress:          invoice.ClientAddress,
		FromName:               invoice.FromName,
		FromEmail:              invoice.FromEmail,
		FromAddress:            invoice.FromAddress,
		InvoiceItemDescription: invoice.InvoiceItemDescription,
		InvoiceItemQuantity:    invoice.InvoiceItemQuantity,
		InvoiceItemRate:        invoice.InvoiceItemRate,
		Total:                  invoice.Total,
		Note:                   invoice.Note,
		CreatedAt:              invoice.CreatedAt,
		UpdatedAt:              invoice.UpdatedAt,
	}
}

// ToInvoiceListResponse converts a page of domain invoices to the list DTO.
func ToInvoiceListResponse(invoices []*domain.Invoice, offset, limit int) InvoiceListResponse {
	items := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		items = append(items, ToInvoiceResponse(invoice))
	}
	return InvoiceListResponse{
		Invoices: items,
		Offset:   offset,
		Limit:    limit,
	}
}
