package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingEmployeeName = errors.New("employee name is required")
	ErrInvalidEmployeeRef  = errors.New("employee id must be greater than zero")
)

// Employee is a workshop staff member.
type Employee struct {
	ID       int64
	Name     string
	Position string
	Salary   decimal.Decimal
	HireDate time.Time
	Phone    string
	Email    string
}

func (e *Employee) Validate() error {
	if e.Name == "" {
		return ErrMissingEmployeeName
	}
	return nil
}

// SalaryPayment records a payout to an employee. Nothing recomputes from it;
// it only feeds the financial summary.
type SalaryPayment struct {
	ID         int64
	EmployeeID int64
	Amount     decimal.Decimal
	Date       time.Time
	Bonus      decimal.Decimal
}

func (p *SalaryPayment) Validate() error {
	if p.EmployeeID <= 0 {
		return ErrInvalidEmployeeRef
	}
	return nil
}
