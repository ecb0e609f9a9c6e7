// Package http provides HTTP handlers for invoice operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/invoices/internal/auth/domain"
	authHTTP "github.com/allisson/invoices/internal/auth/http"
	apperrors "github.com/allisson/invoices/internal/errors"
	"github.com/allisson/invoices/internal/httputil"
	"github.com/allisson/invoices/internal/invoice/http/dto"
	"github.com/allisson/invoices/internal/invoice/usecase"
	customValidation "github.com/allisson/invoices/internal/validation"
)

// InvoiceHandler handles HTTP requests for invoice operations. Every
// operation reads the owner from the authenticated identity; invoice IDs
// never cross user boundaries.
type InvoiceHandler struct {
	invoiceUseCase usecase.UseCase
	logger         *slog.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceUseCase usecase.UseCase, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUseCase: invoiceUseCase,
		logger:         logger,
	}
}

// identity resolves the authenticated identity or writes a 401 response.
func (h *InvoiceHandler) identity(c *gin.Context) (*authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return identity, true
}

// invoiceID parses the :id path parameter or writes a 422 response.
func (h *InvoiceHandler) invoiceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid invoice ID format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// bindInvoiceRequest decodes and validates the invoice payload.
func (h *InvoiceHandler) bindInvoiceRequest(c *gin.Context) (usecase.InvoiceInput, bool) {
	var req dto.InvoiceRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return usecase.InvoiceInput{}, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return usecase.InvoiceInput{}, false
	}

	input, err := dto.ToInvoiceInput(req)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return usecase.InvoiceInput{}, false
	}

	return input, true
}

// CreateHandler creates a new invoice and notifies the client.
// POST /v1/invoices - Returns 201 Created with the invoice.
func (h *InvoiceHandler) CreateHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	input, ok := h.bindInvoiceRequest(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceUseCase.CreateInvoice(c.Request.Context(), identity.UserID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// UpdateHandler overwrites an invoice's content and notifies the client.
// PUT /v1/invoices/:id - Returns 200 OK with the updated invoice.
func (h *InvoiceHandler) UpdateHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	input, ok := h.bindInvoiceRequest(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceUseCase.UpdateInvoice(c.Request.Context(), identity.UserID, id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// MarkPaidHandler marks an invoice as paid.
// POST /v1/invoices/:id/paid - Returns 200 OK with the updated invoice.
func (h *InvoiceHandler) MarkPaidHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceUseCase.MarkInvoicePaid(c.Request.Context(), identity.UserID, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// DeleteHandler removes an invoice.
// DELETE /v1/invoices/:id - Returns 204 No Content.
func (h *InvoiceHandler) DeleteHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	if err := h.invoiceUseCase.DeleteInvoice(c.Request.Context(), identity.UserID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetHandler retrieves an invoice.
// GET /v1/invoices/:id - Returns 200 OK with the invoice.
func (h *InvoiceHandler) GetHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	id, ok := h.invoiceID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceUseCase.GetInvoice(c.Request.Context(), identity.UserID, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// ListHandler retrieves the authenticated user's invoices, newest first.
// GET /v1/invoices - Returns 200 OK with a page of invoices.
func (h *InvoiceHandler) ListHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	invoices, err := h.invoiceUseCase.ListInvoices(c.Request.Context(), identity.UserID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceListResponse(invoices, offset, limit))
}
