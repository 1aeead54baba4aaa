package invoices

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Service handles invoice business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all invoices in store order.
func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

// Get returns one invoice by id.
func (s *Service) Get(ctx context.Context, id int64) (Invoice, error) {
	return s.repo.Get(ctx, id)
}

// Create inserts an invoice; the referenced company must exist, which the
// store's foreign key enforces.
func (s *Service) Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error) {
	if err := s.validate.Struct(input); err != nil {
		return Invoice{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return s.repo.Create(ctx, input)
}

// Update changes the amount and, on an unpaid invoice, marks it paid.
func (s *Service) Update(ctx context.Context, input UpdateInvoiceInput) (Invoice, error) {
	if err := s.validate.Struct(input); err != nil {
		return Invoice{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return s.repo.Update(ctx, input)
}

// Delete removes an invoice by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
