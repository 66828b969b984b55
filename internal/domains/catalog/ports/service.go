package ports

import (
	"context"

	"github.com/autobatya/workshop-api/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error)
	GetPart(ctx context.Context, id int64) (*domain.Part, error)
	ListParts(ctx context.Context, offset, limit int) ([]*domain.Part, error)
	UpdatePart(ctx context.Context, part *domain.Part) (*domain.Part, error)
	DeletePart(ctx context.Context, id int64) error

	CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	ListServices(ctx context.Context, offset, limit int) ([]*domain.Service, error)
	UpdateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error
}
