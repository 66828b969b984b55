package ports

import (
	"context"
	"errors"

	"github.com/autobatya/workshop-api/internal/domains/workforce/domain"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPaymentNotFound  = errors.New("salary payment not found")
)

// EmployeeRepository persists employees. Limit <= 0 lists without bound.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// ListPaymentsFilter narrows and pages salary payment listings. A nil
// EmployeeID means no filter.
type ListPaymentsFilter struct {
	EmployeeID *int64
	Offset     int
	Limit      int
}

// PaymentRepository persists salary payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error)
	GetByID(ctx context.Context, id int64) (*domain.SalaryPayment, error)
	List(ctx context.Context, filter ListPaymentsFilter) ([]*domain.SalaryPayment, error)
	Update(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error)
	Delete(ctx context.Context, id int64) error
}
