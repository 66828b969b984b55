package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange bounds a report by inclusive calendar dates. Either side may be
// nil for an open bound.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether the date falls inside the range.
func (r DateRange) Contains(date time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	if r.Start != nil && day.Before(r.Start.Truncate(24*time.Hour)) {
		return false
	}
	if r.End != nil && day.After(r.End.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

// FinancialSummary aggregates money flow over a period. Profit is
// income minus expenses; salaries are reported but deliberately not
// subtracted, matching the bookkeeping rules this system replaces.
type FinancialSummary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Salaries decimal.Decimal
	Profit   decimal.Decimal
}

// EmployeeSummary is headcount plus average salary, zero-valued when there
// are no employees.
type EmployeeSummary struct {
	Count         int64
	AverageSalary decimal.Decimal
}

// LowStockItem is a part whose quantity fell under the requested threshold.
type LowStockItem struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// OrderReportRow joins an order with its employee's name. Orders whose
// employee cannot be resolved are excluded.
type OrderReportRow struct {
	ID           int64
	ClientName   string
	TotalPrice   decimal.Decimal
	EmployeeName string
}
