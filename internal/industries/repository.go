package industries

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Repository defines data access for industries.
type Repository interface {
	List(ctx context.Context) (IndustryListing, error)
	Create(ctx context.Context, input CreateIndustryInput) (Industry, error)
	CreateRelationship(ctx context.Context, input CreateRelationshipInput) (Relationship, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// List returns every industry plus one associated company code per industry
// where a relationship exists, resolved in a single lateral join instead of
// a per-industry follow-up query.
func (r *repository) List(ctx context.Context) (IndustryListing, error) {
	const query = `
		SELECT i.code, i.industry, ic.comp_code
		FROM industries i
		LEFT JOIN LATERAL (
			SELECT comp_code
			FROM industries_and_companies
			WHERE indus_code = i.code
			ORDER BY comp_code
			LIMIT 1
		) ic ON true
		ORDER BY i.code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return IndustryListing{}, fmt.Errorf("industries: list: %w", httpx.StoreError(err))
	}
	defer rows.Close()

	listing := IndustryListing{Industries: []Industry{}, CompanyCodes: []string{}}
	for rows.Next() {
		var ind Industry
		var compCode pgtype.Text
		if err := rows.Scan(&ind.Code, &ind.Industry, &compCode); err != nil {
			return IndustryListing{}, fmt.Errorf("industries: list scan: %w", err)
		}
		listing.Industries = append(listing.Industries, ind)
		if compCode.Valid {
			listing.CompanyCodes = append(listing.CompanyCodes, compCode.String)
		}
	}
	return listing, rows.Err()
}

func (r *repository) Create(ctx context.Context, input CreateIndustryInput) (Industry, error) {
	const query = `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry`

	var ind Industry
	err := r.pool.QueryRow(ctx, query, input.Code, input.Industry).
		Scan(&ind.Code, &ind.Industry)
	if err != nil {
		return Industry{}, fmt.Errorf("industries: create: %w", httpx.StoreError(err))
	}
	return ind, nil
}

func (r *repository) CreateRelationship(ctx context.Context, input CreateRelationshipInput) (Relationship, error) {
	const query = `
		INSERT INTO industries_and_companies (indus_code, comp_code)
		VALUES ($1, $2)
		RETURNING indus_code, comp_code`

	var rel Relationship
	err := r.pool.QueryRow(ctx, query, input.IndusCode, input.CompCode).
		Scan(&rel.IndusCode, &rel.CompCode)
	if err != nil {
		return Relationship{}, fmt.Errorf("industries: create relationship: %w", httpx.StoreError(err))
	}
	return rel, nil
}
