package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	"github.com/autobatya/workshop-api/internal/domains/ledger/ports"
)

type fakeLedgerRepo struct {
	orders map[int64]*domain.Order
	items  map[int64]*domain.LineItem
	stock  map[int64]int
	nextID int64
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		orders: map[int64]*domain.Order{},
		items:  map[int64]*domain.LineItem{},
		stock:  map[int64]int{},
	}
}

func (f *fakeLedgerRepo) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	clone := *order
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	f.orders[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (f *fakeLedgerRepo) GetOrder(_ context.Context, id int64) (*domain.Order, error) {
	if o, ok := f.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, ports.ErrOrderNotFound
}

func (f *fakeLedgerRepo) ListOrders(_ context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	var list []*domain.Order
	for _, o := range f.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		clone := *o
		list = append(list, &clone)
	}
	return list, nil
}

func (f *fakeLedgerRepo) UpdateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if _, ok := f.orders[order.ID]; !ok {
		return nil, ports.ErrOrderNotFound
	}
	clone := *order
	f.orders[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (f *fakeLedgerRepo) DeleteOrder(_ context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return ports.ErrOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeLedgerRepo) RecalculateTotal(_ context.Context, orderID int64) (decimal.Decimal, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return decimal.Zero, ports.ErrOrderNotFound
	}
	total := decimal.Zero
	for _, item := range f.items {
		if item.OrderID == orderID {
			total = total.Add(item.Price)
		}
	}
	order.TotalPrice = total
	return total, nil
}

func (f *fakeLedgerRepo) CreateLineItem(_ context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	clone := *item
	f.nextID++
	clone.ID = f.nextID
	f.items[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (f *fakeLedgerRepo) GetLineItem(_ context.Context, id int64) (*domain.LineItem, error) {
	if item, ok := f.items[id]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, ports.ErrLineItemNotFound
}

func (f *fakeLedgerRepo) ListLineItems(_ context.Context, orderID int64) ([]*domain.LineItem, error) {
	var list []*domain.LineItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			clone := *item
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (f *fakeLedgerRepo) UpdateLineItem(_ context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	if _, ok := f.items[item.ID]; !ok {
		return nil, ports.ErrLineItemNotFound
	}
	clone := *item
	f.items[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (f *fakeLedgerRepo) DeleteLineItem(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return ports.ErrLineItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeLedgerRepo) PartQuantity(_ context.Context, partID int64) (int, bool, error) {
	qty, ok := f.stock[partID]
	return qty, ok, nil
}

func validOrder() *domain.Order {
	return &domain.Order{
		ClientName: "Ivanov",
		CarModel:   "Toyota Corolla",
		CarNumber:  "A123BC",
		Date:       time.Now(),
		EmployeeID: 1,
	}
}

func TestCreateOrder_DefaultsStatusAndPersists(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo)

	created, err := svc.CreateOrder(context.Background(), validOrder())
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, created.Status)
	require.NotZero(t, created.ID)
}

func TestCreateOrder_InvalidInput(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo)

	order := validOrder()
	order.ClientName = ""
	_, err := svc.CreateOrder(context.Background(), order)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrMissingClientName)
}

func TestListOrders_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo)

	bogus := domain.Status("done")
	_, err := svc.ListOrders(context.Background(), ports.ListOrdersFilter{Status: &bogus})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateLineItem_ValidatesShape(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo)

	item := &domain.LineItem{Quantity: 1, Price: decimal.NewFromInt(10)}
	_, err := svc.CreateLineItem(context.Background(), item)
	require.ErrorIs(t, err, ErrInvalidInput)

	item.OrderID = 1
	created, err := svc.CreateLineItem(context.Background(), item)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
}

func TestRecalculateTotal_Idempotent(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := NewService(repo)

	order, err := svc.CreateOrder(context.Background(), validOrder())
	require.NoError(t, err)

	_, err = svc.CreateLineItem(context.Background(), &domain.LineItem{OrderID: order.ID, Quantity: 2, Price: decimal.NewFromInt(50)})
	require.NoError(t, err)

	first, err := svc.RecalculateTotal(context.Background(), order.ID)
	require.NoError(t, err)
	second, err := svc.RecalculateTotal(context.Background(), order.ID)
	require.NoError(t, err)
	require.True(t, first.Equal(second))
	require.True(t, first.Equal(decimal.NewFromInt(50)))
}

func TestCheckAvailability(t *testing.T) {
	repo := newFakeLedgerRepo()
	repo.stock[1] = 3
	svc := NewService(repo)

	ok, err := svc.CheckAvailability(context.Background(), 1, 3)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.CheckAvailability(context.Background(), 1, 4)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.CheckAvailability(context.Background(), 99, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

var _ ports.Repository = (*fakeLedgerRepo)(nil)
