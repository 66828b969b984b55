package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autobatya/workshop-api/internal/domains/catalog/domain"
	"github.com/autobatya/workshop-api/internal/domains/catalog/ports"
)

var (
	_ ports.PartRepository    = (*PartRepository)(nil)
	_ ports.ServiceRepository = (*ServiceRepository)(nil)
)

// partRecord maps a part to its relational table. The quantity column is
// also written by the ledger adapter inside line-item transactions.
type partRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Quantity  int             `gorm:"column:quantity"`
	Supplier  string          `gorm:"column:supplier"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (partRecord) TableName() string { return "parts" }

type serviceRecord struct {
	ID            int64           `gorm:"primaryKey;column:id"`
	Name          string          `gorm:"column:name"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	DurationHours float64         `gorm:"column:duration_hours"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (serviceRecord) TableName() string { return "services" }

// PartRepository persists parts in PostgreSQL using GORM.
type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

func (r *PartRepository) Create(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	if part == nil {
		return nil, errors.New("part is nil")
	}
	record := toPartRecord(part)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *PartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	var record partRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrPartNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *PartRepository) List(ctx context.Context, offset, limit int) ([]*domain.Part, error) {
	var records []partRecord
	query := r.db.WithContext(ctx).Model(&partRecord{}).Order("id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	parts := make([]*domain.Part, 0, len(records))
	for i := range records {
		parts = append(parts, records[i].toDomain())
	}
	return parts, nil
}

func (r *PartRepository) Update(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	if part == nil {
		return nil, errors.New("part is nil")
	}
	updates := map[string]any{
		"name":     part.Name,
		"price":    part.Price,
		"quantity": part.Quantity,
		"supplier": part.Supplier,
	}
	if err := r.db.WithContext(ctx).Model(&partRecord{}).Where("id = ?", part.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, part.ID)
}

func (r *PartRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&partRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrPartNotFound
	}
	return nil
}

// ServiceRepository persists workshop services in PostgreSQL using GORM.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc == nil {
		return nil, errors.New("service is nil")
	}
	record := toServiceRecord(svc)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var record serviceRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrServiceNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *ServiceRepository) List(ctx context.Context, offset, limit int) ([]*domain.Service, error) {
	var records []serviceRecord
	query := r.db.WithContext(ctx).Model(&serviceRecord{}).Order("id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	services := make([]*domain.Service, 0, len(records))
	for i := range records {
		services = append(services, records[i].toDomain())
	}
	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if svc == nil {
		return nil, errors.New("service is nil")
	}
	updates := map[string]any{
		"name":           svc.Name,
		"price":          svc.Price,
		"duration_hours": svc.DurationHours,
	}
	if err := r.db.WithContext(ctx).Model(&serviceRecord{}).Where("id = ?", svc.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, svc.ID)
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&serviceRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrServiceNotFound
	}
	return nil
}

func toPartRecord(part *domain.Part) partRecord {
	return partRecord{
		ID:       part.ID,
		Name:     part.Name,
		Price:    part.Price,
		Quantity: part.Quantity,
		Supplier: part.Supplier,
	}
}

func (r partRecord) toDomain() *domain.Part {
	return &domain.Part{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Quantity: r.Quantity,
		Supplier: r.Supplier,
	}
}

func toServiceRecord(svc *domain.Service) serviceRecord {
	return serviceRecord{
		ID:            svc.ID,
		Name:          svc.Name,
		Price:         svc.Price,
		DurationHours: svc.DurationHours,
	}
}

func (r serviceRecord) toDomain() *domain.Service {
	return &domain.Service{
		ID:            r.ID,
		Name:          r.Name,
		Price:         r.Price,
		DurationHours: r.DurationHours,
	}
}
