package mapper

import (
	"github.com/shopspring/decimal"

	ledgerdomain "github.com/autobatya/workshop-api/internal/domains/ledger/domain"
)

// LineItem is the transport-layer shape of an order line item.
type LineItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id" binding:"required"`
	ServiceID *int64          `json:"service_id,omitempty"`
	PartID    *int64          `json:"part_id,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ToDomainLineItem converts a transport line item into the ledger domain model.
func ToDomainLineItem(item LineItem) *ledgerdomain.LineItem {
	return &ledgerdomain.LineItem{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ServiceID: item.ServiceID,
		PartID:    item.PartID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
}

// FromDomainLineItem converts a domain line item to the transport representation.
func FromDomainLineItem(item *ledgerdomain.LineItem) LineItem {
	if item == nil {
		return LineItem{}
	}
	return LineItem{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ServiceID: item.ServiceID,
		PartID:    item.PartID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
}
