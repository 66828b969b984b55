package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status enumerates order progression.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
)

var (
	ErrInvalidStatus     = errors.New("order status is invalid")
	ErrMissingClientName = errors.New("client name is required")
	ErrInvalidEmployeeID = errors.New("employee id must be greater than zero")
)

// Order models a repair order. TotalPrice is derived from line items and is
// overwritten by the ledger after every line-item mutation.
type Order struct {
	ID         int64
	ClientName string
	CarModel   string
	CarNumber  string
	Date       time.Time
	TotalPrice decimal.Decimal
	Status     Status
	EmployeeID int64
}

// NewOrder validates and constructs a new Order aggregate.
func NewOrder(id int64, clientName, carModel, carNumber string, date time.Time, total decimal.Decimal, status Status, employeeID int64) (*Order, error) {
	order := &Order{
		ID:         id,
		ClientName: clientName,
		CarModel:   carModel,
		CarNumber:  carNumber,
		Date:       date,
		TotalPrice: total,
		Status:     status,
		EmployeeID: employeeID,
	}
	if err := order.UpdateStatus(order.Status); err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.ClientName == "" {
		return ErrMissingClientName
	}
	if o.EmployeeID <= 0 {
		return ErrInvalidEmployeeID
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// UpdateStatus ensures only known states are accepted and defaults to in_progress.
// Any valid status may follow any other; there is no state machine.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusInProgress
	}
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}
