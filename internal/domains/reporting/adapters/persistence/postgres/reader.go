package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	ledgerdomain "github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	"github.com/autobatya/workshop-api/internal/domains/reporting/domain"
	"github.com/autobatya/workshop-api/internal/domains/reporting/ports"
)

var _ ports.Reader = (*Reader)(nil)

// Reader runs the aggregate report queries directly against the tables
// owned by the other domains.
type Reader struct {
	db *gorm.DB
}

func NewReader(db *gorm.DB) *Reader {
	return &Reader{db: db}
}

func (r *Reader) FinancialSummary(ctx context.Context, period domain.DateRange) (domain.FinancialSummary, error) {
	if err := r.ensureDB(); err != nil {
		return domain.FinancialSummary{}, err
	}
	income, err := r.sumDecimal(ctx,
		r.inRange(r.db.WithContext(ctx).Table("orders").Where("status = ?", string(ledgerdomain.StatusCompleted)), "date", period),
		"COALESCE(SUM(total_price), 0)")
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	expenses, err := r.sumDecimal(ctx,
		r.inRange(r.db.WithContext(ctx).Table("expenses"), "date", period),
		"COALESCE(SUM(amount), 0)")
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	salaries, err := r.sumDecimal(ctx,
		r.inRange(r.db.WithContext(ctx).Table("salary_payments"), "date", period),
		"COALESCE(SUM(amount + bonus), 0)")
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	return domain.FinancialSummary{
		Income:   income,
		Expenses: expenses,
		Salaries: salaries,
		// Salaries intentionally left out of profit.
		Profit: income.Sub(expenses),
	}, nil
}

func (r *Reader) EmployeeSummary(ctx context.Context) (domain.EmployeeSummary, error) {
	if err := r.ensureDB(); err != nil {
		return domain.EmployeeSummary{}, err
	}
	var row struct {
		Count         int64               `gorm:"column:count"`
		AverageSalary decimal.NullDecimal `gorm:"column:average_salary"`
	}
	if err := r.db.WithContext(ctx).Table("employees").
		Select("COUNT(*) AS count, COALESCE(AVG(salary), 0) AS average_salary").
		Scan(&row).Error; err != nil {
		return domain.EmployeeSummary{}, err
	}
	summary := domain.EmployeeSummary{Count: row.Count, AverageSalary: decimal.Zero}
	if row.AverageSalary.Valid {
		summary.AverageSalary = row.AverageSalary.Decimal
	}
	return summary, nil
}

func (r *Reader) LowStock(ctx context.Context, minQuantity int) ([]domain.LowStockItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rows []struct {
		Name     string          `gorm:"column:name"`
		Quantity int             `gorm:"column:quantity"`
		Price    decimal.Decimal `gorm:"column:price"`
	}
	if err := r.db.WithContext(ctx).Table("parts").
		Select("name, quantity, price").
		Where("quantity < ?", minQuantity).
		Order("quantity ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]domain.LowStockItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.LowStockItem{Name: row.Name, Quantity: row.Quantity, Price: row.Price})
	}
	return items, nil
}

func (r *Reader) OrdersReport(ctx context.Context, status ledgerdomain.Status, period domain.DateRange) ([]domain.OrderReportRow, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rows []struct {
		ID           int64           `gorm:"column:id"`
		ClientName   string          `gorm:"column:client_name"`
		TotalPrice   decimal.Decimal `gorm:"column:total_price"`
		EmployeeName string          `gorm:"column:employee_name"`
	}
	query := r.db.WithContext(ctx).Table("orders AS o").
		Select("o.id, o.client_name, o.total_price, e.name AS employee_name").
		Joins("JOIN employees e ON o.employee_id = e.id").
		Where("o.status = ?", string(status)).
		Order("o.date DESC")
	query = r.inRange(query, "o.date", period)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	report := make([]domain.OrderReportRow, 0, len(rows))
	for _, row := range rows {
		report = append(report, domain.OrderReportRow{
			ID:           row.ID,
			ClientName:   row.ClientName,
			TotalPrice:   row.TotalPrice,
			EmployeeName: row.EmployeeName,
		})
	}
	return report, nil
}

func (r *Reader) sumDecimal(_ context.Context, query *gorm.DB, selectExpr string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := query.Select(selectExpr).Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *Reader) inRange(query *gorm.DB, column string, period domain.DateRange) *gorm.DB {
	if period.Start != nil {
		query = query.Where(column+" >= ?", *period.Start)
	}
	if period.End != nil {
		query = query.Where(column+" <= ?", *period.End)
	}
	return query
}

func (r *Reader) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres report reader not configured")
	}
	return nil
}
