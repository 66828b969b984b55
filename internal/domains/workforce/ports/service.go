package ports

import (
	"context"

	"github.com/autobatya/workshop-api/internal/domains/workforce/domain"
)

// Service exposes workforce use cases to adapters.
type Service interface {
	CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, offset, limit int) ([]*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error

	CreatePayment(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error)
	GetPayment(ctx context.Context, id int64) (*domain.SalaryPayment, error)
	ListPayments(ctx context.Context, filter ListPaymentsFilter) ([]*domain.SalaryPayment, error)
	UpdatePayment(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error)
	DeletePayment(ctx context.Context, id int64) error
}
