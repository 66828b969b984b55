package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/autobatya/workshop-api/internal/domains/finance/domain"
	"github.com/autobatya/workshop-api/internal/domains/finance/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory expense persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	expenses map[int64]*domain.Expense
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{expenses: map[int64]*domain.Expense{}}
}

func (r *Repository) Create(_ context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense == nil {
		return nil, errors.New("expense is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *expense
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.expenses[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expense, ok := r.expenses[id]
	if !ok {
		return nil, ports.ErrExpenseNotFound
	}
	clone := *expense
	return &clone, nil
}

func (r *Repository) List(_ context.Context, filter ports.ListExpensesFilter) ([]*domain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Expense, 0, len(r.expenses))
	for _, expense := range r.expenses {
		if filter.Category != nil && expense.Category != *filter.Category {
			continue
		}
		clone := *expense
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	if filter.Offset > 0 {
		if filter.Offset >= len(list) {
			return []*domain.Expense{}, nil
		}
		list = list[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(list) {
		list = list[:filter.Limit]
	}
	return list, nil
}

func (r *Repository) Update(_ context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense == nil {
		return nil, errors.New("expense is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[expense.ID]; !ok {
		return nil, ports.ErrExpenseNotFound
	}
	clone := *expense
	r.expenses[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[id]; !ok {
		return ports.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}
