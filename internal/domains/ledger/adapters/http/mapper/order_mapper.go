package mapper

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	ledgerdomain "github.com/autobatya/workshop-api/internal/domains/ledger/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Order is the transport-layer shape of a repair order.
type Order struct {
	ID         int64           `json:"id"`
	ClientName string          `json:"client_name" binding:"required"`
	CarModel   string          `json:"car_model"`
	CarNumber  string          `json:"car_number"`
	Date       string          `json:"date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	EmployeeID int64           `json:"employee_id" binding:"required"`
}

// ToDomainOrder converts a transport order into the ledger domain model.
// An empty date defaults to today.
func ToDomainOrder(order Order) (*ledgerdomain.Order, error) {
	date, err := parseDate(order.Date)
	if err != nil {
		return nil, err
	}
	return ledgerdomain.NewOrder(
		order.ID,
		order.ClientName,
		order.CarModel,
		order.CarNumber,
		date,
		order.TotalPrice,
		ledgerdomain.Status(order.Status),
		order.EmployeeID,
	)
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ledgerdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:         order.ID,
		ClientName: order.ClientName,
		CarModel:   order.CarModel,
		CarNumber:  order.CarNumber,
		Date:       order.Date.Format(DateLayout),
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		EmployeeID: order.EmployeeID,
	}
}

// ParseDate parses a wire-format calendar date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
	}
	return date, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return ParseDate(value)
}
