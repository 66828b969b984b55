package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autobatya/workshop-api/internal/domains/finance/domain"
	"github.com/autobatya/workshop-api/internal/domains/finance/ports"
)

var _ ports.Repository = (*Repository)(nil)

type expenseRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	Date      time.Time       `gorm:"column:date;type:date"`
	Category  string          `gorm:"column:category;type:varchar(16);index"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (expenseRecord) TableName() string { return "expenses" }

// Repository persists expenses in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense == nil {
		return nil, errors.New("expense is nil")
	}
	record := toRecord(expense)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	var record expenseRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrExpenseNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context, filter ports.ListExpensesFilter) ([]*domain.Expense, error) {
	query := r.db.WithContext(ctx).Model(&expenseRecord{}).Order("id")
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	var records []expenseRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	expenses := make([]*domain.Expense, 0, len(records))
	for i := range records {
		expenses = append(expenses, records[i].toDomain())
	}
	return expenses, nil
}

func (r *Repository) Update(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if expense == nil {
		return nil, errors.New("expense is nil")
	}
	updates := map[string]any{
		"name":     expense.Name,
		"amount":   expense.Amount,
		"date":     expense.Date,
		"category": string(expense.Category),
	}
	if err := r.db.WithContext(ctx).Model(&expenseRecord{}).Where("id = ?", expense.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, expense.ID)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&expenseRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrExpenseNotFound
	}
	return nil
}

func toRecord(expense *domain.Expense) expenseRecord {
	return expenseRecord{
		ID:       expense.ID,
		Name:     expense.Name,
		Amount:   expense.Amount,
		Date:     expense.Date,
		Category: string(expense.Category),
	}
}

func (r expenseRecord) toDomain() *domain.Expense {
	return &domain.Expense{
		ID:       r.ID,
		Name:     r.Name,
		Amount:   r.Amount,
		Date:     r.Date,
		Category: domain.Category(r.Category),
	}
}
