package application

import (
	"context"
	"errors"

	"github.com/autobatya/workshop-api/internal/domains/catalog/domain"
	"github.com/autobatya/workshop-api/internal/domains/catalog/ports"
)

// Service orchestrates part and workshop-service CRUD. No side effects
// beyond the entity's own row: stock consumption belongs to the ledger.
type Service struct {
	parts    ports.PartRepository
	services ports.ServiceRepository
}

func NewService(parts ports.PartRepository, services ports.ServiceRepository) *Service {
	return &Service{parts: parts, services: services}
}

func (s *Service) CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	if part == nil {
		return nil, errors.New("part is nil")
	}
	if err := part.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.parts.Create(ctx, part)
}

func (s *Service) GetPart(ctx context.Context, id int64) (*domain.Part, error) {
	return s.parts.GetByID(ctx, id)
}

func (s *Service) ListParts(ctx context.Context, offset, limit int) ([]*domain.Part, error) {
	return s.parts.List(ctx, offset, limit)
}

func (s *Service) UpdatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	if part == nil {
		return nil, errors.New("part is nil")
	}
	if err := part.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.parts.Update(ctx, part)
}

func (s *Service) DeletePart(ctx context.Context, id int64) error {
	return s.parts.Delete(ctx, id)
}

func (s *Service) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc == nil {
		return nil, errors.New("service is nil")
	}
	if err := svc.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.services.Create(ctx, svc)
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *Service) ListServices(ctx context.Context, offset, limit int) ([]*domain.Service, error) {
	return s.services.List(ctx, offset, limit)
}

func (s *Service) UpdateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc == nil {
		return nil, errors.New("service is nil")
	}
	if err := svc.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.services.Update(ctx, svc)
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	return s.services.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
