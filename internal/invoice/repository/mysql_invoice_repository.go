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

// MySQLInvoiceRepository handles invoice persistence for MySQL
type MySQLInvoiceRepository struct {
	db *sql.DB
}

// NewMySQLInvoiceRepository creates a new MySQLInvoiceRepository
func NewMySQLInvoiceRepository(db *sql.DB) *MySQLInvoiceRepository {
	return &MySQLInvoiceRepository{
		db: db,
	}
}

const mySQLInvoiceColumns = `id, user_id, invoice_name, invoice_number, status, currency,
			  date, due_date, client_name, client_email, client_address,
			  from_name, from_email, from_address, invoice_item_description,
			  invoice_item_quantity, invoice_item_rate, total, note, created_at, updated_at`

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMySQLInvoice(row rowScanner) (*domain.Invoice, error) {
	var (
		invoice     domain.Invoice
		idBytes     []byte
		userIDBytes []byte
	)
	err := row.Scan(
		&idBytes,
		&userIDBytes,
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

	if invoice.ID, err = uuid.FromBytes(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if invoice.UserID, err = uuid.FromBytes(userIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &invoice, nil
}

// Create inserts a new invoice
func (r *MySQLInvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO invoices (id, user_id, invoice_name, invoice_number, status, currency,
			  date, due_date, client_name, client_email, client_address,
			  from_name, from_email, from_address, invoice_item_description,
			  invoice_item_quantity, invoice_item_rate, total, note, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	idBytes, err := invoice.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	userIDBytes, err := invoice.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		idBytes,
		userIDBytes,
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
func (r *MySQLInvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE invoices
			  SET invoice_name = ?, invoice_number = ?, status = ?, currency = ?,
			      date = ?, due_date = ?, client_name = ?, client_email = ?,
			      client_address = ?, from_name = ?, from_email = ?, from_address = ?,
			      invoice_item_description = ?, invoice_item_quantity = ?,
			      invoice_item_rate = ?, total = ?, note = ?, updated_at = NOW()
			  WHERE id = ? AND user_id = ?`

	idBytes, err := invoice.ID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	userIDBytes, err := invoice.UserID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
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
		idBytes,
		userIDBytes,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to update invoice")
	}

	// RowsAffected is zero both for missing rows and for no-op overwrites,
	// so resolve the final state with a read.
	return r.GetByID(ctx, invoice.UserID, invoice.ID)
}

// SetStatus changes the status of an owned invoice
func (r *MySQLInvoiceRepository) SetStatus(
	ctx context.Context,
	ownerID, id uuid.UUID,
	status domain.Status,
) (*domain.Invoice, error) {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	ownerIDBytes, err := ownerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE invoices SET status = ?, updated_at = NOW()
			  WHERE id = ? AND user_id = ?`

	if _, err := querier.ExecContext(ctx, query, status, idBytes, ownerIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to set invoice status")
	}

	// RowsAffected is zero both for missing rows and for idempotent updates,
	// so resolve the final state with a read.
	return r.GetByID(ctx, ownerID, id)
}

// Delete removes an owned invoice
func (r *MySQLInvoiceRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	ownerIDBytes, err := ownerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM invoices WHERE id = ? AND user_id = ?`, idBytes, ownerIDBytes)
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
func (r *MySQLInvoiceRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Invoice, error) {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	ownerIDBytes, err := ownerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT ` + mySQLInvoiceColumns + `
			  FROM invoices WHERE id = ? AND user_id = ?`

	invoice, err := scanMySQLInvoice(querier.QueryRowContext(ctx, query, idBytes, ownerIDBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get invoice by id")
	}

	return invoice, nil
}

// ListByOwner retrieves invoices owned by the given user, newest first
func (r *MySQLInvoiceRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Invoice, error) {
	querier := database.GetTx(ctx, r.db)

	ownerIDBytes, err := ownerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT ` + mySQLInvoiceColumns + `
			  FROM invoices WHERE user_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, ownerIDBytes, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list invoices")
	}
	defer rows.Close()

	invoices := []*domain.Invoice{}
	for rows.Next() {
		invoice, err := scanMySQLInvoice(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan invoice")
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate invoices")
	}

	return invoices, nil
}
