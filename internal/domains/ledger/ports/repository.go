package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/autobatya/workshop-api/internal/domains/ledger/domain"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrLineItemNotFound = errors.New("line item not found")
)

// ListOrdersFilter narrows and pages order listings. A nil Status means no
// status filter; Limit <= 0 means unbounded.
type ListOrdersFilter struct {
	Status *domain.Status
	Offset int
	Limit  int
}

// Repository persists orders and line items and keeps part stock consistent
// with line-item mutations. Every multi-step mutation (insert/update/delete
// plus total recompute plus stock adjustment) runs as one atomic unit: a
// concurrent reader never observes a recalculated total without the matching
// stock change, or vice versa.
type Repository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// DeleteOrder removes the order row only: line items are not cascaded
	// and their stock effects are not reversed.
	DeleteOrder(ctx context.Context, id int64) error

	// RecalculateTotal sums line-item prices for the order (zero when none),
	// writes the sum back as the order total, and returns it. Idempotent.
	RecalculateTotal(ctx context.Context, orderID int64) (decimal.Decimal, error)

	CreateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error)
	GetLineItem(ctx context.Context, id int64) (*domain.LineItem, error)
	ListLineItems(ctx context.Context, orderID int64) ([]*domain.LineItem, error)
	UpdateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error)
	DeleteLineItem(ctx context.Context, id int64) error

	// PartQuantity reports the current on-hand quantity of a part and whether
	// the part exists. Used for advisory availability checks.
	PartQuantity(ctx context.Context, partID int64) (int, bool, error)
}

// StockStore adjusts part stock alongside line-item writes. The in-memory
// ledger adapter delegates here; the Postgres adapter updates the parts table
// inside its own transaction instead.
type StockStore interface {
	AdjustQuantity(ctx context.Context, partID int64, delta int) error
	Quantity(ctx context.Context, partID int64) (int, bool, error)
}
