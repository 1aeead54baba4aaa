package invoices

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Repository defines data access for invoices.
type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id int64) (Invoice, error)
	Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error)
	Update(ctx context.Context, input UpdateInvoiceInput) (Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	var addDate, paidDate pgtype.Date
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &addDate, &paidDate); err != nil {
		return Invoice{}, err
	}
	if addDate.Valid {
		inv.AddDate = addDate.Time
	}
	if paidDate.Valid {
		t := paidDate.Time
		inv.PaidDate = &t
	}
	return inv, nil
}

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("invoices: list: %w", httpx.StoreError(err))
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("invoices: list scan: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Invoice{}, fmt.Errorf("%w: there is no invoice with id %d", httpx.ErrNotFound, id)
		}
		return Invoice{}, fmt.Errorf("invoices: get: %w", httpx.StoreError(err))
	}
	return inv, nil
}

func (r *repository) Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error) {
	const query = `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + invoiceColumns

	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, input.CompCode, input.Amt))
	if err != nil {
		return Invoice{}, fmt.Errorf("invoices: create: %w", httpx.StoreError(err))
	}
	return inv, nil
}

// Update sets the amount and fires the one-way Unpaid→Paid transition in a
// single statement: an unpaid invoice gains paid=true and paid_date=today,
// an already paid invoice keeps its paid_date untouched.
func (r *repository) Update(ctx context.Context, input UpdateInvoiceInput) (Invoice, error) {
	const query = `
		UPDATE invoices
		SET amt = $1,
		    paid_date = CASE WHEN paid THEN paid_date ELSE CURRENT_DATE END,
		    paid = TRUE
		WHERE id = $2
		RETURNING ` + invoiceColumns

	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, input.Amt, input.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Invoice{}, fmt.Errorf("%w: there is no invoice with id %d", httpx.ErrNotFound, input.ID)
		}
		return Invoice{}, fmt.Errorf("invoices: update: %w", httpx.StoreError(err))
	}
	return inv, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM invoices WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: there is no invoice with id %d", httpx.ErrNotFound, id)
		}
		return fmt.Errorf("invoices: delete: %w", httpx.StoreError(err))
	}
	return nil
}
