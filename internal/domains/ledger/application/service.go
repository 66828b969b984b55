package application

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	"github.com/autobatya/workshop-api/internal/domains/ledger/ports"
)

// Service orchestrates the order ledger use cases. Consistency between order
// totals, line items, and part stock is enforced by the repository, which
// runs each multi-step mutation as one atomic unit.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.UpdateStatus(order.Status); err != nil {
		return nil, mapError(err)
	}
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}
	created, err := s.repo.CreateOrder(ctx, order)
	return created, mapError(err)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	if filter.Status != nil {
		probe := domain.Order{}
		if err := probe.UpdateStatus(*filter.Status); err != nil {
			return nil, mapError(err)
		}
	}
	return s.repo.ListOrders(ctx, filter)
}

func (s *Service) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.UpdateStatus(order.Status); err != nil {
		return nil, mapError(err)
	}
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}
	updated, err := s.repo.UpdateOrder(ctx, order)
	return updated, mapError(err)
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	return mapError(s.repo.DeleteOrder(ctx, id))
}

// RecalculateTotal recomputes and persists the order total from its line
// items. Safe to call repeatedly: with no intervening line-item change the
// result is the same.
func (s *Service) RecalculateTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	total, err := s.repo.RecalculateTotal(ctx, orderID)
	return total, mapError(err)
}

func (s *Service) CreateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	if item == nil {
		return nil, errors.New("line item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, mapError(err)
	}
	created, err := s.repo.CreateLineItem(ctx, item)
	return created, mapError(err)
}

func (s *Service) GetLineItem(ctx context.Context, id int64) (*domain.LineItem, error) {
	return s.repo.GetLineItem(ctx, id)
}

func (s *Service) ListLineItems(ctx context.Context, orderID int64) ([]*domain.LineItem, error) {
	return s.repo.ListLineItems(ctx, orderID)
}

func (s *Service) UpdateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	if item == nil {
		return nil, errors.New("line item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, mapError(err)
	}
	updated, err := s.repo.UpdateLineItem(ctx, item)
	return updated, mapError(err)
}

func (s *Service) DeleteLineItem(ctx context.Context, id int64) error {
	return mapError(s.repo.DeleteLineItem(ctx, id))
}

// CheckAvailability reports whether current stock covers the requested
// quantity. Advisory only: false for a missing part, never enforced by the
// line-item mutations.
func (s *Service) CheckAvailability(ctx context.Context, partID int64, quantity int) (bool, error) {
	onHand, exists, err := s.repo.PartQuantity(ctx, partID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	return onHand >= quantity, nil
}

var _ ports.Service = (*Service)(nil)
