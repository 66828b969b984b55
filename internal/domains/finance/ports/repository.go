package ports

import (
	"context"
	"errors"

	"github.com/autobatya/workshop-api/internal/domains/finance/domain"
)

var ErrExpenseNotFound = errors.New("expense not found")

// ListExpensesFilter narrows and pages expense listings. A nil Category
// means no filter; Limit <= 0 means unbounded.
type ListExpensesFilter struct {
	Category *domain.Category
	Offset   int
	Limit    int
}

// Repository persists expenses.
type Repository interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)
	List(ctx context.Context, filter ListExpensesFilter) ([]*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	Delete(ctx context.Context, id int64) error
}
