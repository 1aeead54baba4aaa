package industries

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Service handles industry business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all industries with their flattened company-code side list.
func (s *Service) List(ctx context.Context) (IndustryListing, error) {
	return s.repo.List(ctx)
}

// Create inserts an industry.
func (s *Service) Create(ctx context.Context, input CreateIndustryInput) (Industry, error) {
	if err := s.validate.Struct(input); err != nil {
		return Industry{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return s.repo.Create(ctx, input)
}

// CreateRelationship associates an industry with a company. Pair uniqueness
// and referential integrity are enforced by the store constraints.
func (s *Service) CreateRelationship(ctx context.Context, input CreateRelationshipInput) (Relationship, error) {
	if err := s.validate.Struct(input); err != nil {
		return Relationship{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return s.repo.CreateRelationship(ctx, input)
}
