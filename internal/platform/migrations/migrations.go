package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate. Referenced tables are created first so the
// foreign keys resolve.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&employeeRecord{},
		&partRecord{},
		&serviceRecord{},
		&orderRecord{},
		&orderItemRecord{},
		&salaryPaymentRecord{},
		&expenseRecord{},
	)
}

// Employee schema mirrors the workforce Postgres adapter.
type employeeRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name;not null"`
	Position  string          `gorm:"column:position"`
	Salary    decimal.Decimal `gorm:"column:salary;type:numeric(12,2)"`
	HireDate  time.Time       `gorm:"column:hire_date;type:date"`
	Phone     string          `gorm:"column:phone"`
	Email     string          `gorm:"column:email"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (employeeRecord) TableName() string { return "employees" }

// Part schema mirrors the catalog Postgres adapter.
type partRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Quantity  int             `gorm:"column:quantity;not null;default:0"`
	Supplier  string          `gorm:"column:supplier"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (partRecord) TableName() string { return "parts" }

// Service schema mirrors the catalog Postgres adapter.
type serviceRecord struct {
	ID            int64           `gorm:"primaryKey;column:id"`
	Name          string          `gorm:"column:name;not null"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	DurationHours float64         `gorm:"column:duration_hours"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (serviceRecord) TableName() string { return "services" }

// Order schema mirrors the ledger Postgres adapter. Deleting an order is
// blocked while line items reference it; there is no cascade.
type orderRecord struct {
	ID         int64           `gorm:"primaryKey;column:id"`
	ClientName string          `gorm:"column:client_name;not null"`
	CarModel   string          `gorm:"column:car_model"`
	CarNumber  string          `gorm:"column:car_number"`
	Date       time.Time       `gorm:"column:date;type:date;index"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:numeric(12,2);not null;default:0"`
	Status     string          `gorm:"column:status;type:varchar(32);index;check:status IN ('in_progress','completed','canceled')"`
	EmployeeID int64           `gorm:"column:employee_id;index"`
	Employee   *employeeRecord `gorm:"foreignKey:EmployeeID;references:ID"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Order item schema mirrors the ledger Postgres adapter.
type orderItemRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	OrderID   int64           `gorm:"column:order_id;index;not null"`
	Order     *orderRecord    `gorm:"foreignKey:OrderID;references:ID"`
	ServiceID *int64          `gorm:"column:service_id"`
	Service   *serviceRecord  `gorm:"foreignKey:ServiceID;references:ID"`
	PartID    *int64          `gorm:"column:part_id"`
	Part      *partRecord     `gorm:"foreignKey:PartID;references:ID"`
	Quantity  int             `gorm:"column:quantity;not null;default:1"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null;default:0"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Salary payment schema mirrors the workforce Postgres adapter.
type salaryPaymentRecord struct {
	ID         int64           `gorm:"primaryKey;column:id"`
	EmployeeID int64           `gorm:"column:employee_id;index;not null"`
	Employee   *employeeRecord `gorm:"foreignKey:EmployeeID;references:ID"`
	Amount     decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Date       time.Time       `gorm:"column:date;type:date;index"`
	Bonus      decimal.Decimal `gorm:"column:bonus;type:numeric(12,2);not null;default:0"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (salaryPaymentRecord) TableName() string { return "salary_payments" }

// Expense schema mirrors the finance Postgres adapter.
type expenseRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name;not null"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Date      time.Time       `gorm:"column:date;type:date;index"`
	Category  string          `gorm:"column:category;type:varchar(32);index;check:category IN ('salary','parts','rent','other')"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (expenseRecord) TableName() string { return "expenses" }
