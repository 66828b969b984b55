package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingOrderID   = errors.New("line item requires an order id")
	ErrInvalidServiceID = errors.New("service id must be greater than zero")
	ErrInvalidPartID    = errors.New("part id must be greater than zero")
)

// LineItem is a single priced entry within an order. It may reference a
// service and/or a part, independently. Price is the caller-supplied line
// total; it is never derived from unit prices. Quantity is not checked
// against stock here: availability is advisory only.
type LineItem struct {
	ID        int64
	OrderID   int64
	ServiceID *int64
	PartID    *int64
	Quantity  int
	Price     decimal.Decimal
}

// Validate enforces referential shape, nothing more.
func (li *LineItem) Validate() error {
	if li.OrderID <= 0 {
		return ErrMissingOrderID
	}
	if li.ServiceID != nil && *li.ServiceID <= 0 {
		return ErrInvalidServiceID
	}
	if li.PartID != nil && *li.PartID <= 0 {
		return ErrInvalidPartID
	}
	return nil
}

// ConsumesPart reports whether the line item charges stock against a part.
func (li *LineItem) ConsumesPart() bool {
	return li.PartID != nil
}
