package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/autobatya/workshop-api/internal/domains/workforce/domain"
	"github.com/autobatya/workshop-api/internal/domains/workforce/ports"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid workforce input")

// Service orchestrates employee and salary payment CRUD.
type Service struct {
	employees ports.EmployeeRepository
	payments  ports.PaymentRepository
}

func NewService(employees ports.EmployeeRepository, payments ports.PaymentRepository) *Service {
	return &Service{employees: employees, payments: payments}
}

func (s *Service) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	if err := employee.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.employees.Create(ctx, employee)
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context, offset, limit int) ([]*domain.Employee, error) {
	return s.employees.List(ctx, offset, limit)
}

func (s *Service) UpdateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	if err := employee.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.employees.Update(ctx, employee)
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	return s.employees.Delete(ctx, id)
}

func (s *Service) CreatePayment(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error) {
	if payment == nil {
		return nil, errors.New("payment is nil")
	}
	if err := payment.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.payments.Create(ctx, payment)
}

func (s *Service) GetPayment(ctx context.Context, id int64) (*domain.SalaryPayment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *Service) ListPayments(ctx context.Context, filter ports.ListPaymentsFilter) ([]*domain.SalaryPayment, error) {
	return s.payments.List(ctx, filter)
}

func (s *Service) UpdatePayment(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error) {
	if payment == nil {
		return nil, errors.New("payment is nil")
	}
	if err := payment.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.payments.Update(ctx, payment)
}

func (s *Service) DeletePayment(ctx context.Context, id int64) error {
	return s.payments.Delete(ctx, id)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingEmployeeName) || errors.Is(err, domain.ErrInvalidEmployeeRef) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

var _ ports.Service = (*Service)(nil)
