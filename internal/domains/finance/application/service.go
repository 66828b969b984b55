package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/autobatya/workshop-api/internal/domains/finance/domain"
	"github.com/autobatya/workshop-api/internal/domains/finance/ports"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid expense input")

// Service orchestrates expense CRUD.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense == nil {
		return nil, errors.New("expense is nil")
	}
	if err := expense.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Create(ctx, expense)
}

func (s *Service) GetExpense(ctx context.Context, id int64) (*domain.Expense, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListExpenses(ctx context.Context, filter ports.ListExpensesFilter) ([]*domain.Expense, error) {
	if filter.Category != nil && !domain.IsValidCategory(*filter.Category) {
		return nil, mapError(domain.ErrInvalidCategory)
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) UpdateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense == nil {
		return nil, errors.New("expense is nil")
	}
	if err := expense.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Update(ctx, expense)
}

func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidCategory) || errors.Is(err, domain.ErrMissingExpenseName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

var _ ports.Service = (*Service)(nil)
