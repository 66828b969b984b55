package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/autobatya/workshop-api/internal/domains/workforce/domain"
	"github.com/autobatya/workshop-api/internal/domains/workforce/ports"
)

var _ ports.EmployeeRepository = (*EmployeeRepository)(nil)

// EmployeeRepository is an in-memory employee persistence adapter.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[int64]*domain.Employee
	nextID    int64
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: map[int64]*domain.Employee{}}
}

func (r *EmployeeRepository) Create(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *employee
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.employees[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	employee, ok := r.employees[id]
	if !ok {
		return nil, ports.ErrEmployeeNotFound
	}
	clone := *employee
	return &clone, nil
}

func (r *EmployeeRepository) List(_ context.Context, offset, limit int) ([]*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		clone := *employee
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return page(list, offset, limit), nil
}

func (r *EmployeeRepository) Update(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[employee.ID]; !ok {
		return nil, ports.ErrEmployeeNotFound
	}
	clone := *employee
	r.employees[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return ports.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

var _ ports.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository is an in-memory salary payment persistence adapter.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[int64]*domain.SalaryPayment
	nextID   int64
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: map[int64]*domain.SalaryPayment{}}
}

func (r *PaymentRepository) Create(_ context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error) {
	if payment == nil {
		return nil, errors.New("payment is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *payment
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.payments[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id int64) (*domain.SalaryPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payment, ok := r.payments[id]
	if !ok {
		return nil, ports.ErrPaymentNotFound
	}
	clone := *payment
	return &clone, nil
}

func (r *PaymentRepository) List(_ context.Context, filter ports.ListPaymentsFilter) ([]*domain.SalaryPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.SalaryPayment, 0, len(r.payments))
	for _, payment := range r.payments {
		if filter.EmployeeID != nil && payment.EmployeeID != *filter.EmployeeID {
			continue
		}
		clone := *payment
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return page(list, filter.Offset, filter.Limit), nil
}

func (r *PaymentRepository) Update(_ context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error) {
	if payment == nil {
		return nil, errors.New("payment is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[payment.ID]; !ok {
		return nil, ports.ErrPaymentNotFound
	}
	clone := *payment
	r.payments[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *PaymentRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[id]; !ok {
		return ports.ErrPaymentNotFound
	}
	delete(r.payments, id)
	return nil
}

func page[T any](list []T, offset, limit int) []T {
	if offset > 0 {
		if offset >= len(list) {
			return []T{}
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
