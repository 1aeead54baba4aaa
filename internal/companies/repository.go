package companies

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Repository defines data access for companies.
type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, code string) (CompanyDetail, error)
	Create(ctx context.Context, input CreateCompanyInput) (Company, error)
	Update(ctx context.Context, code, name, description string) (Company, error)
	Delete(ctx context.Context, code string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name, description FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("companies: list: %w", httpx.StoreError(err))
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("companies: list scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get fetches a company and its industry names in a single join query.
func (r *repository) Get(ctx context.Context, code string) (CompanyDetail, error) {
	const query = `
		SELECT c.code, c.name, c.description, i.industry
		FROM companies c
		LEFT JOIN industries_and_companies ic ON ic.comp_code = c.code
		LEFT JOIN industries i ON i.code = ic.indus_code
		WHERE c.code = $1
		ORDER BY ic.indus_code`

	rows, err := r.pool.Query(ctx, query, code)
	if err != nil {
		return CompanyDetail{}, fmt.Errorf("companies: get: %w", httpx.StoreError(err))
	}
	defer rows.Close()

	detail := CompanyDetail{Industries: []string{}}
	found := false
	for rows.Next() {
		var industry pgtype.Text
		if err := rows.Scan(&detail.Company.Code, &detail.Company.Name, &detail.Company.Description, &industry); err != nil {
			return CompanyDetail{}, fmt.Errorf("companies: get scan: %w", err)
		}
		found = true
		if industry.Valid {
			detail.Industries = append(detail.Industries, industry.String)
		}
	}
	if err := rows.Err(); err != nil {
		return CompanyDetail{}, fmt.Errorf("companies: get rows: %w", httpx.StoreError(err))
	}
	if !found {
		return CompanyDetail{}, fmt.Errorf("%w: there is no company with code '%s'", httpx.ErrNotFound, code)
	}
	return detail, nil
}

func (r *repository) Create(ctx context.Context, input CreateCompanyInput) (Company, error) {
	const query = `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description`

	var c Company
	err := r.pool.QueryRow(ctx, query, input.Code, input.Name, input.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		return Company{}, fmt.Errorf("companies: create: %w", httpx.StoreError(err))
	}
	return c, nil
}

func (r *repository) Update(ctx context.Context, code, name, description string) (Company, error) {
	const query = `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description`

	var c Company
	err := r.pool.QueryRow(ctx, query, name, description, code).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Company{}, fmt.Errorf("%w: there is no company with code '%s'", httpx.ErrNotFound, code)
		}
		return Company{}, fmt.Errorf("companies: update: %w", httpx.StoreError(err))
	}
	return c, nil
}

func (r *repository) Delete(ctx context.Context, code string) error {
	var deleted string
	err := r.pool.QueryRow(ctx, `DELETE FROM companies WHERE code = $1 RETURNING code`, code).
		Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: there is no company with code '%s'", httpx.ErrNotFound, code)
		}
		return fmt.Errorf("companies: delete: %w", httpx.StoreError(err))
	}
	return nil
}
