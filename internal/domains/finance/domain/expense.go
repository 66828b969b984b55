package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Category enumerates expense kinds.
type Category string

const (
	CategorySalary Category = "salary"
	CategoryParts  Category = "parts"
	CategoryRent   Category = "rent"
	CategoryOther  Category = "other"
)

var (
	ErrInvalidCategory    = errors.New("expense category is invalid")
	ErrMissingExpenseName = errors.New("expense name is required")
)

// Expense is a standalone outgoing payment.
type Expense struct {
	ID       int64
	Name     string
	Amount   decimal.Decimal
	Date     time.Time
	Category Category
}

func (e *Expense) Validate() error {
	if e.Name == "" {
		return ErrMissingExpenseName
	}
	if !IsValidCategory(e.Category) {
		return ErrInvalidCategory
	}
	return nil
}

func IsValidCategory(category Category) bool {
	switch category {
	case CategorySalary, CategoryParts, CategoryRent, CategoryOther:
		return true
	default:
		return false
	}
}
