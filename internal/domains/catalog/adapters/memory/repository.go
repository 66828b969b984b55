package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/autobatya/workshop-api/internal/domains/catalog/domain"
	"github.com/autobatya/workshop-api/internal/domains/catalog/ports"
)

var _ ports.PartRepository = (*PartRepository)(nil)

// PartRepository is an in-memory part persistence adapter. It doubles as the
// stock store for the in-memory ledger: AdjustQuantity and Quantity satisfy
// the ledger's StockStore port.
type PartRepository struct {
	mu     sync.RWMutex
	parts  map[int64]*domain.Part
	nextID int64
}

func NewPartRepository() *PartRepository {
	return &PartRepository{parts: map[int64]*domain.Part{}}
}

func (r *PartRepository) Create(_ context.Context, part *domain.Part) (*domain.Part, error) {
	if part == nil {
		return nil, errors.New("part is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *part
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.parts[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *PartRepository) GetByID(_ context.Context, id int64) (*domain.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	part, ok := r.parts[id]
	if !ok {
		return nil, ports.ErrPartNotFound
	}
	clone := *part
	return &clone, nil
}

func (r *PartRepository) List(_ context.Context, offset, limit int) ([]*domain.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Part, 0, len(r.parts))
	for _, part := range r.parts {
		clone := *part
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return page(list, offset, limit), nil
}

func (r *PartRepository) Update(_ context.Context, part *domain.Part) (*domain.Part, error) {
	if part == nil {
		return nil, errors.New("part is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parts[part.ID]; !ok {
		return nil, ports.ErrPartNotFound
	}
	clone := *part
	r.parts[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *PartRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parts[id]; !ok {
		return ports.ErrPartNotFound
	}
	delete(r.parts, id)
	return nil
}

// AdjustQuantity shifts a part's on-hand quantity by delta, unconditionally.
// A missing part is a no-op, matching the SQL UPDATE that affects zero rows.
func (r *PartRepository) AdjustQuantity(_ context.Context, partID int64, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if part, ok := r.parts[partID]; ok {
		part.Quantity += delta
	}
	return nil
}

// Quantity reports current stock and whether the part exists.
func (r *PartRepository) Quantity(_ context.Context, partID int64) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	part, ok := r.parts[partID]
	if !ok {
		return 0, false, nil
	}
	return part.Quantity, true, nil
}

var _ ports.ServiceRepository = (*ServiceRepository)(nil)

// ServiceRepository is an in-memory workshop-service persistence adapter.
type ServiceRepository struct {
	mu       sync.RWMutex
	services map[int64]*domain.Service
	nextID   int64
}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{services: map[int64]*domain.Service{}}
}

func (r *ServiceRepository) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc == nil {
		return nil, errors.New("service is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *svc
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.services[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *ServiceRepository) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	svc, ok := r.services[id]
	if !ok {
		return nil, ports.ErrServiceNotFound
	}
	clone := *svc
	return &clone, nil
}

func (r *ServiceRepository) List(_ context.Context, offset, limit int) ([]*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Service, 0, len(r.services))
	for _, svc := range r.services {
		clone := *svc
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return page(list, offset, limit), nil
}

func (r *ServiceRepository) Update(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc == nil {
		return nil, errors.New("service is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[svc.ID]; !ok {
		return nil, ports.ErrServiceNotFound
	}
	clone := *svc
	r.services[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *ServiceRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[id]; !ok {
		return ports.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
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
