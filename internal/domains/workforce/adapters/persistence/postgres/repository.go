package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autobatya/workshop-api/internal/domains/workforce/domain"
	"github.com/autobatya/workshop-api/internal/domains/workforce/ports"
)

var (
	_ ports.EmployeeRepository = (*EmployeeRepository)(nil)
	_ ports.PaymentRepository  = (*PaymentRepository)(nil)
)

type employeeRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name"`
	Position  string          `gorm:"column:position"`
	Salary    decimal.Decimal `gorm:"column:salary;type:numeric(12,2)"`
	HireDate  time.Time       `gorm:"column:hire_date;type:date"`
	Phone     string          `gorm:"column:phone"`
	Email     string          `gorm:"column:email"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (employeeRecord) TableName() string { return "employees" }

type paymentRecord struct {
	ID         int64           `gorm:"primaryKey;column:id"`
	EmployeeID int64           `gorm:"column:employee_id;index"`
	Amount     decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	Date       time.Time       `gorm:"column:date;type:date"`
	Bonus      decimal.Decimal `gorm:"column:bonus;type:numeric(12,2)"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (paymentRecord) TableName() string { return "salary_payments" }

// EmployeeRepository persists employees in PostgreSQL using GORM.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	record := toEmployeeRecord(employee)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var record employeeRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrEmployeeNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *EmployeeRepository) List(ctx context.Context, offset, limit int) ([]*domain.Employee, error) {
	var records []employeeRecord
	query := r.db.WithContext(ctx).Model(&employeeRecord{}).Order("id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	employees := make([]*domain.Employee, 0, len(records))
	for i := range records {
		employees = append(employees, records[i].toDomain())
	}
	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	updates := map[string]any{
		"name":      employee.Name,
		"position":  employee.Position,
		"salary":    employee.Salary,
		"hire_date": employee.HireDate,
		"phone":     employee.Phone,
		"email":     employee.Email,
	}
	if err := r.db.WithContext(ctx).Model(&employeeRecord{}).Where("id = ?", employee.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, employee.ID)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&employeeRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrEmployeeNotFound
	}
	return nil
}

// PaymentRepository persists salary payments in PostgreSQL using GORM.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error) {
	if payment == nil {
		return nil, errors.New("payment is nil")
	}
	record := toPaymentRecord(payment)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.SalaryPayment, error) {
	var record paymentRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrPaymentNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *PaymentRepository) List(ctx context.Context, filter ports.ListPaymentsFilter) ([]*domain.SalaryPayment, error) {
	query := r.db.WithContext(ctx).Model(&paymentRecord{}).Order("id")
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	var records []paymentRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	payments := make([]*domain.SalaryPayment, 0, len(records))
	for i := range records {
		payments = append(payments, records[i].toDomain())
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.SalaryPayment) (*domain.SalaryPayment, error) {
	if payment == nil {
		return nil, errors.New("payment is nil")
	}
	updates := map[string]any{
		"employee_id": payment.EmployeeID,
		"amount":      payment.Amount,
		"date":        payment.Date,
		"bonus":       payment.Bonus,
	}
	if err := r.db.WithContext(ctx).Model(&paymentRecord{}).Where("id = ?", payment.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, payment.ID)
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&paymentRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrPaymentNotFound
	}
	return nil
}

func toEmployeeRecord(employee *domain.Employee) employeeRecord {
	return employeeRecord{
		ID:       employee.ID,
		Name:     employee.Name,
		Position: employee.Position,
		Salary:   employee.Salary,
		HireDate: employee.HireDate,
		Phone:    employee.Phone,
		Email:    employee.Email,
	}
}

func (r employeeRecord) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:       r.ID,
		Name:     r.Name,
		Position: r.Position,
		Salary:   r.Salary,
		HireDate: r.HireDate,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}

func toPaymentRecord(payment *domain.SalaryPayment) paymentRecord {
	return paymentRecord{
		ID:         payment.ID,
		EmployeeID: payment.EmployeeID,
		Amount:     payment.Amount,
		Date:       payment.Date,
		Bonus:      payment.Bonus,
	}
}

func (r paymentRecord) toDomain() *domain.SalaryPayment {
	return &domain.SalaryPayment{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Amount:     r.Amount,
		Date:       r.Date,
		Bonus:      r.Bonus,
	}
}
