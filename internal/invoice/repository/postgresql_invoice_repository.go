// Package repository provides data persistence implementations for invoices.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/invoices/internal/database"
	"github.com/allisson/invoices/internal/invoice/domain"

	apperrors "github.com/allisson/invoices/internal/errors"
)

// PostgreSQLInvoiceRepository handles invoice persistence for PostgreSQL
type PostgreSQLInvoiceRepository struct {
	db *sql.DB
}

// NewPostgreSQLInvoiceRepository creates a new PostgreSQLInvoiceRepository
func NewPostgreSQLInvoiceRepository(db *sql.DB) *PostgreSQLInvoiceRepository {
	return &PostgreSQLInvoiceRepository{
		db: db,
	}
}

const postgreSQLInvoiceColumns = `id, user_id, invoice_name, invoice_number, status, currency,
			  date, due_date, client_name, client_email, client_address,
			  from_name, from_email, from_address, invoice_item_description,
			  invoice_item_quantity, invoice_item_rate, total, note, created_at, updated_at`

func scanPostgreSQLInvoice(row *sql.Row) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := row.Scan(
		&invoice.ID,
		&invoice.UserID,
		&invoice.InvoiceName,
		&invoice.InvoiceNumber,
		&invoice.Status,
		&invoice.Currency,
		&invoice.Date,
		&invoice.DueDate,
		&invoice.ClientName,
		&invoice.ClientEmail,
		&invoice.ClientAddress,
		&invoice.FromName,
		&invoice.FromEmail,
		&invoice.FromAddress,
		&invoice.InvoiceItemDescription,
		&invoice.InvoiceItemQuantity,
		&invoice.InvoiceItemRate,
		&invoice.Total,
		&invoice.Note,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Create inserts a new invoice
func (r *PostgreSQLInvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO invoices (id, user_id, invoice_name, invoice_number, status, currency,
			  date, due_date, client_name, client_email, client_address,
			  from_name, from_email, from_address, invoice_item_description,
			  invoice_item_quantity, invoice_item_rate, total, note, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())`

	_, err := querier.ExecContext(
		ctx,
		query,
		invoice.ID,
		invoice.UserID,
		invoice.InvoiceName,
		invoice.InvoiceNumber,
		invoice.Status,
		invoice.Currency,
		invoice.Date,
		invoice.DueDate,
		invoice.ClientName,
		invoice.ClientEmail,
		invoice.ClientAddress,
		invoice.FromName,
		invoice.FromEmail,
		invoice.FromAddress,
		invoice.InvoiceItemDescription,
		invoice.InvoiceItemQuantity,
		invoice.InvoiceItemRate,
		invoice.Total,
		invoice.Note,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create invoice")
	}
	return nil
}

// Update overwrites an invoice's content. The row is matched by id and owner.
func (r *PostgreSQLInvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE invoices
			  SET invoice_name = $1, invoice_number = $2, status = $3, currency = $4,
			      date = $5, due_date = $6, client_name = $7, client_email = $8,
			      client_address = $9, from_name = $10, from_email = $11, from_address = $12,
			      invoice_item_description = $13, invoice_item_quantity = $14,
			      invoice_item_rate = $15, total = $16, note = $17, updated_at = NOW()
			  WHERE id = $18 AND user_id = $19
			  RETURNING ` + postgreSQLInvoiceColumns

	updated, err := scanPostgreSQLInvoice(querier.QueryRowContext(
		ctx,
		query,
		invoice.InvoiceName,
		invoice.InvoiceNumber,
		invoice.Status,
		invoice.Currency,
		invoice.Date,
		invoice.DueDate,
		invoice.ClientName,
		invoice.ClientEmail,
		invoice.ClientAddress,
		invoice.FromName,
		invoice.FromEmail,
		invoice.FromAddress,
		invoice.InvoiceItemDescription,
		invoice.InvoiceItemQuantity,
		invoice.InvoiceItemRate,
		invoice.Total,
		invoice.Note,
		invoice.ID,
		invoice.UserID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(err, "failed to update invoice")
	}

	return updated, nil
}

// SetStatus changes the status of an owned invoice
func (r *PostgreSQLInvoiceRepository) SetStatus(
	ctx context.Context,
	ownerID, id uuid.UUID,
	status domain.Status,
) (*domain.Invoice, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE invoices SET status = $1, updated_at = NOW()
			  WHERE id = $2 AND user_id = $3
			  RETURNING ` + postgreSQLInvoiceColumns

	updated, err := scanPostgreSQLInvoice(querier.QueryRowContext(ctx, query, status, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(err, "failed to set invoice status")
	}

	return updated, nil
}

// Delete removes an owned invoice
func (r *PostgreSQLInvoiceRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete invoice")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

// GetByID retrieves an owned invoice
func (r *PostgreSQLInvoiceRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Invoice, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgreSQLInvoiceColumns + `
			  FROM invoices WHERE id = $1 AND user_id = $2`

	invoice, err := scanPostgreSQLInvoice(querier.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get invoice by id")
	}

	return invoice, nil
}

// ListByOwner retrieves invoices owned by the given user, newest first
func (r *PostgreSQLInvoiceRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Invoice, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgreSQLInvoiceColumns + `
			  FROM invoices WHERE user_id = $1
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, ownerID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list invoices")
	}
	defer rows.Close()

	invoices := []*domain.Invoice{}
	for rows.Next() {
		var invoice domain.Invoice
		err := rows.Scan(
			&invoice.ID,
			&invoice.UserID,
			&invoice.InvoiceName,
			&invoice.InvoiceNumber,
			&invoice.Status,
			&invoice.Currency,
			&invoice.Date,
			&invoice.DueDate,
			&invoice.ClientName,
			&invoice.ClientEmail,
			&invoice.ClientAddress,
			&invoice.FromName,
			&invoice.FromEmail,
			&invoice.FromAddress,
			&invoice.InvoiceItemDescription,
			&invoice.InvoiceItemQuantity,
			&invoice.InvoiceItemRate,
			&invoice.Total,
			&invoice.Note,
			&invoice.CreatedAt,
			&invoice.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan invoice")
		}
		invoices = append(invoices, &invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate invoices")
	}

	return invoices, nil
}
