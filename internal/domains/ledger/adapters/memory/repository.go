package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	"github.com/autobatya/workshop-api/internal/domains/ledger/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory ledger adapter. The mutex plays the role of the
// database transaction: each multi-step mutation (write, total recompute,
// stock adjustment) completes under one lock acquisition.
type Repository struct {
	mu        sync.RWMutex
	stock     ports.StockStore
	orders    map[int64]*domain.Order
	items     map[int64]*domain.LineItem
	nextOrder int64
	nextItem  int64
}

// NewRepository builds a ledger over the given stock store (normally the
// catalog memory repository).
func NewRepository(stock ports.StockStore) *Repository {
	return &Repository{
		stock:  stock,
		orders: map[int64]*domain.Order{},
		items:  map[int64]*domain.LineItem{},
	}
}

func (r *Repository) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
	if clone.ID == 0 {
		r.nextOrder++
		clone.ID = r.nextOrder
	} else if clone.ID > r.nextOrder {
		r.nextOrder = clone.ID
	}
	r.orders[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetOrder(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *Repository) ListOrders(_ context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.orders))
	for id, order := range r.orders {
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		clone := *r.orders[id]
		list = append(list, &clone)
	}
	return page(list, filter.Offset, filter.Limit), nil
}

func (r *Repository) UpdateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return nil, ports.ErrOrderNotFound
	}
	clone := *order
	r.orders[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) DeleteOrder(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrOrderNotFound
	}
	// Line items stay behind and stock stays consumed; only the order row
	// goes away.
	delete(r.orders, id)
	return nil
}

func (r *Repository) RecalculateTotal(_ context.Context, orderID int64) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recalculateLocked(orderID), nil
}

func (r *Repository) CreateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	if item == nil {
		return nil, errors.New("line item is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *item
	if clone.ID == 0 {
		r.nextItem++
		clone.ID = r.nextItem
	} else if clone.ID > r.nextItem {
		r.nextItem = clone.ID
	}
	r.items[clone.ID] = &clone
	r.recalculateLocked(clone.OrderID)
	if clone.PartID != nil {
		if err := r.stock.AdjustQuantity(ctx, *clone.PartID, -clone.Quantity); err != nil {
			return nil, err
		}
	}
	result := clone
	return &result, nil
}

func (r *Repository) GetLineItem(_ context.Context, id int64) (*domain.LineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ports.ErrLineItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *Repository) ListLineItems(_ context.Context, orderID int64) ([]*domain.LineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0)
	for id, item := range r.items {
		if item.OrderID == orderID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	list := make([]*domain.LineItem, 0, len(ids))
	for _, id := range ids {
		clone := *r.items[id]
		list = append(list, &clone)
	}
	return list, nil
}

func (r *Repository) UpdateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	if item == nil {
		return nil, errors.New("line item is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.items[item.ID]
	if !ok {
		return nil, ports.ErrLineItemNotFound
	}
	oldOrderID, oldPartID, oldQuantity := old.OrderID, old.PartID, old.Quantity
	clone := *item
	r.items[clone.ID] = &clone
	r.recalculateLocked(clone.OrderID)
	if oldOrderID != clone.OrderID {
		r.recalculateLocked(oldOrderID)
	}
	if oldPartID != nil {
		if err := r.stock.AdjustQuantity(ctx, *oldPartID, oldQuantity); err != nil {
			return nil, err
		}
	}
	if clone.PartID != nil {
		if err := r.stock.AdjustQuantity(ctx, *clone.PartID, -clone.Quantity); err != nil {
			return nil, err
		}
	}
	result := clone
	return &result, nil
}

func (r *Repository) DeleteLineItem(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return ports.ErrLineItemNotFound
	}
	orderID, partID, quantity := item.OrderID, item.PartID, item.Quantity
	delete(r.items, id)
	r.recalculateLocked(orderID)
	if partID != nil {
		return r.stock.AdjustQuantity(ctx, *partID, quantity)
	}
	return nil
}

func (r *Repository) PartQuantity(ctx context.Context, partID int64) (int, bool, error) {
	return r.stock.Quantity(ctx, partID)
}

// recalculateLocked sums line-item prices for the order and writes the total
// back. A missing order is tolerated: the sum is simply dropped, matching the
// SQL UPDATE that affects zero rows.
func (r *Repository) recalculateLocked(orderID int64) decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.items {
		if item.OrderID == orderID {
			total = total.Add(item.Price)
		}
	}
	if order, ok := r.orders[orderID]; ok {
		order.TotalPrice = total
	}
	return total
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
