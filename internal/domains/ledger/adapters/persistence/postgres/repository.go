package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	"github.com/autobatya/workshop-api/internal/domains/ledger/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the order ledger in PostgreSQL using GORM. Every
// line-item mutation runs inside a single transaction together with the
// total recompute and the part stock adjustment, so partial application is
// never observable.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed ledger repository. Caller manages
// DB lifecycle; schema is owned by platform/migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order aggregate to a relational table.
type orderRecord struct {
	ID         int64           `gorm:"primaryKey;column:id"`
	ClientName string          `gorm:"column:client_name"`
	CarModel   string          `gorm:"column:car_model"`
	CarNumber  string          `gorm:"column:car_number"`
	Date       time.Time       `gorm:"column:date;type:date;index"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:numeric(12,2)"`
	Status     string          `gorm:"column:status;type:varchar(16);index"`
	EmployeeID int64           `gorm:"column:employee_id"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// lineItemRecord maps a single priced order entry.
type lineItemRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	OrderID   int64           `gorm:"column:order_id;index"`
	ServiceID *int64          `gorm:"column:service_id"`
	PartID    *int64          `gorm:"column:part_id"`
	Quantity  int             `gorm:"column:quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (lineItemRecord) TableName() string { return "order_items" }

// partStockRecord is a narrow view of the parts table. The ledger co-owns
// Part.quantity with the catalog domain and mutates it only here, inside the
// same transaction as the line-item write.
type partStockRecord struct {
	ID       int64 `gorm:"primaryKey;column:id"`
	Quantity int   `gorm:"column:quantity"`
}

func (partStockRecord) TableName() string { return "parts" }

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toOrderRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetOrder(ctx, record.ID)
}

func (r *Repository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrOrderNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ListOrders(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Model(&orderRecord{}).Order("id")
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// UpdateOrder writes the new field values and reads the row back. A missing
// row is not rejected by the write itself; the read-back reports it.
func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	updates := map[string]any{
		"client_name": order.ClientName,
		"car_model":   order.CarModel,
		"car_number":  order.CarNumber,
		"date":        order.Date,
		"total_price": order.TotalPrice,
		"status":      string(order.Status),
		"employee_id": order.EmployeeID,
	}
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetOrder(ctx, order.ID)
}

// DeleteOrder removes the order row only. Line items are not cascaded and
// their stock effects stay applied; the foreign key blocks the delete while
// line items still reference the order.
func (r *Repository) DeleteOrder(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) RecalculateTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	if err := r.ensureDB(); err != nil {
		return decimal.Zero, err
	}
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recalculated, err := recalculateTotal(tx, orderID)
		if err != nil {
			return err
		}
		total = recalculated
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// CreateLineItem inserts the line item, recomputes the parent order total,
// and decrements part stock when a part is referenced, as one transaction.
// Stock may go negative; availability is never enforced here.
func (r *Repository) CreateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("line item is nil")
	}
	record := toLineItemRecord(item)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		if _, err := recalculateTotal(tx, record.OrderID); err != nil {
			return err
		}
		if record.PartID != nil {
			return adjustStock(tx, *record.PartID, -record.Quantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetLineItem(ctx, record.ID)
}

func (r *Repository) GetLineItem(ctx context.Context, id int64) (*domain.LineItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record lineItemRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrLineItemNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ListLineItems(ctx context.Context, orderID int64) ([]*domain.LineItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []lineItemRecord
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	items := make([]*domain.LineItem, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDomain())
	}
	return items, nil
}

// UpdateLineItem applies the new values, recomputes affected order totals,
// then reconciles stock in two steps: the old part reference is returned to
// stock, the new one is charged. When old and new reference the same part
// this nets to the correct adjustment.
func (r *Repository) UpdateLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("line item is nil")
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old lineItemRecord
		if err := tx.First(&old, "id = ?", item.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ports.ErrLineItemNotFound
			}
			return err
		}
		updates := map[string]any{
			"order_id":   item.OrderID,
			"service_id": item.ServiceID,
			"part_id":    item.PartID,
			"quantity":   item.Quantity,
			"price":      item.Price,
		}
		if err := tx.Model(&lineItemRecord{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
			return err
		}
		if _, err := recalculateTotal(tx, item.OrderID); err != nil {
			return err
		}
		// A moved line item leaves the old order too; recompute its total
		// as well so no order's total drifts from its line items.
		if old.OrderID != item.OrderID {
			if _, err := recalculateTotal(tx, old.OrderID); err != nil {
				return err
			}
		}
		if old.PartID != nil {
			if err := adjustStock(tx, *old.PartID, old.Quantity); err != nil {
				return err
			}
		}
		if item.PartID != nil {
			if err := adjustStock(tx, *item.PartID, -item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetLineItem(ctx, item.ID)
}

// DeleteLineItem removes the row, recomputes the order total, and returns
// the consumed quantity to stock, as one transaction.
func (r *Repository) DeleteLineItem(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record lineItemRecord
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ports.ErrLineItemNotFound
			}
			return err
		}
		if err := tx.Delete(&lineItemRecord{}, id).Error; err != nil {
			return err
		}
		if _, err := recalculateTotal(tx, record.OrderID); err != nil {
			return err
		}
		if record.PartID != nil {
			return adjustStock(tx, *record.PartID, record.Quantity)
		}
		return nil
	})
}

func (r *Repository) PartQuantity(ctx context.Context, partID int64) (int, bool, error) {
	if err := r.ensureDB(); err != nil {
		return 0, false, err
	}
	var record partStockRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", partID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return record.Quantity, true, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres ledger repository not configured")
	}
	return nil
}

// recalculateTotal writes SUM(price) over the order's line items back to the
// order row. Runs inside the caller's transaction.
func recalculateTotal(tx *gorm.DB, orderID int64) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := tx.Model(&lineItemRecord{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	if total.Valid {
		sum = total.Decimal
	}
	if err := tx.Model(&orderRecord{}).Where("id = ?", orderID).Update("total_price", sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// adjustStock shifts a part's on-hand quantity by delta. Unconditional: the
// quantity may go negative.
func adjustStock(tx *gorm.DB, partID int64, delta int) error {
	return tx.Model(&partStockRecord{}).
		Where("id = ?", partID).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func toOrderRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:         order.ID,
		ClientName: order.ClientName,
		CarModel:   order.CarModel,
		CarNumber:  order.CarNumber,
		Date:       order.Date,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		EmployeeID: order.EmployeeID,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:         r.ID,
		ClientName: r.ClientName,
		CarModel:   r.CarModel,
		CarNumber:  r.CarNumber,
		Date:       r.Date,
		TotalPrice: r.TotalPrice,
		Status:     domain.Status(r.Status),
		EmployeeID: r.EmployeeID,
	}
}

func toLineItemRecord(item *domain.LineItem) lineItemRecord {
	return lineItemRecord{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ServiceID: item.ServiceID,
		PartID:    item.PartID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
}

func (r lineItemRecord) toDomain() *domain.LineItem {
	return &domain.LineItem{
		ID:        r.ID,
		OrderID:   r.OrderID,
		ServiceID: r.ServiceID,
		PartID:    r.PartID,
		Quantity:  r.Quantity,
		Price:     r.Price,
	}
}
