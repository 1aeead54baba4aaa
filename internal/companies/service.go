package companies

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Service handles company business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all companies in store order.
func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.repo.List(ctx)
}

// Get returns one company together with its industry names.
func (s *Service) Get(ctx context.Context, code string) (CompanyDetail, error) {
	return s.repo.Get(ctx, code)
}

// Create inserts a company. Code uniqueness is left to the store constraint.
func (s *Service) Create(ctx context.Context, input CreateCompanyInput) (Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return Company{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return s.repo.Create(ctx, input)
}

// Update modifies name and description. The target row is named by
// CurrentCode when provided, otherwise by slugifying the new name.
func (s *Service) Update(ctx context.Context, input UpdateCompanyInput) (Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return Company{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	code := input.CurrentCode
	if code == "" {
		code = Slugify(input.Name)
	}
	return s.repo.Update(ctx, code, input.Name, input.Description)
}

// Delete removes a company; its invoices and relationship rows cascade.
func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}
