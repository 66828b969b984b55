package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/autobatya/workshop-api/internal/domains/ledger/domain"
)

// Service exposes the order ledger use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	RecalculateTotal(ctx context.Context, orderID int64) (decimal.Decimal, error)

	CreateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error)
	GetLineItem(ctx context.Context, id int64) (*domain.LineItem, error)
	ListLineItems(ctx context.Context, orderID int64) ([]*domain.LineItem, error)
	UpdateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error)
	DeleteLineItem(ctx context.Context, id int64) error

	CheckAvailability(ctx context.Context, partID int64, quantity int) (bool, error)
}
