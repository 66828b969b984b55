package ports

import (
	"context"

	"github.com/autobatya/workshop-api/internal/domains/finance/domain"
)

// Service exposes expense use cases to adapters.
type Service interface {
	CreateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	GetExpense(ctx context.Context, id int64) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter ListExpensesFilter) ([]*domain.Expense, error)
	UpdateExpense(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
}
