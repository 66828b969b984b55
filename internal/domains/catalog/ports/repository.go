package ports

import (
	"context"
	"errors"

	"github.com/autobatya/workshop-api/internal/domains/catalog/domain"
)

var (
	ErrPartNotFound    = errors.New("part not found")
	ErrServiceNotFound = errors.New("service not found")
)

// PartRepository persists parts. Limit <= 0 lists without bound.
type PartRepository interface {
	Create(ctx context.Context, part *domain.Part) (*domain.Part, error)
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Part, error)
	Update(ctx context.Context, part *domain.Part) (*domain.Part, error)
	Delete(ctx context.Context, id int64) error
}

// ServiceRepository persists workshop services.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}
