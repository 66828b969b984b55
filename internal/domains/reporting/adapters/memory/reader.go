package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	catalogports "github.com/autobatya/workshop-api/internal/domains/catalog/ports"
	financeports "github.com/autobatya/workshop-api/internal/domains/finance/ports"
	ledgerdomain "github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	ledgerports "github.com/autobatya/workshop-api/internal/domains/ledger/ports"
	"github.com/autobatya/workshop-api/internal/domains/reporting/domain"
	"github.com/autobatya/workshop-api/internal/domains/reporting/ports"
	workforceports "github.com/autobatya/workshop-api/internal/domains/workforce/ports"
)

var _ ports.Reader = (*Reader)(nil)

// Reader computes reports by scanning the in-memory repositories of the other
// domains. It mirrors the SQL reader's semantics so tests can exercise the
// same queries without a database.
type Reader struct {
	orders    ledgerports.Repository
	parts     catalogports.PartRepository
	employees workforceports.EmployeeRepository
	payments  workforceports.PaymentRepository
	expenses  financeports.Repository
}

func NewReader(
	orders ledgerports.Repository,
	parts catalogports.PartRepository,
	employees workforceports.EmployeeRepository,
	payments workforceports.PaymentRepository,
	expenses financeports.Repository,
) *Reader {
	return &Reader{
		orders:    orders,
		parts:     parts,
		employees: employees,
		payments:  payments,
		expenses:  expenses,
	}
}

func (r *Reader) FinancialSummary(ctx context.Context, period domain.DateRange) (domain.FinancialSummary, error) {
	completed := ledgerdomain.StatusCompleted
	orders, err := r.orders.ListOrders(ctx, ledgerports.ListOrdersFilter{Status: &completed})
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	income := decimal.Zero
	for _, order := range orders {
		if period.Contains(order.Date) {
			income = income.Add(order.TotalPrice)
		}
	}

	expenseRows, err := r.expenses.List(ctx, financeports.ListExpensesFilter{})
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	expenses := decimal.Zero
	for _, expense := range expenseRows {
		if period.Contains(expense.Date) {
			expenses = expenses.Add(expense.Amount)
		}
	}

	payments, err := r.payments.List(ctx, workforceports.ListPaymentsFilter{})
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	salaries := decimal.Zero
	for _, payment := range payments {
		if period.Contains(payment.Date) {
			salaries = salaries.Add(payment.Amount).Add(payment.Bonus)
		}
	}

	return domain.FinancialSummary{
		Income:   income,
		Expenses: expenses,
		Salaries: salaries,
		Profit:   income.Sub(expenses),
	}, nil
}

func (r *Reader) EmployeeSummary(ctx context.Context) (domain.EmployeeSummary, error) {
	employees, err := r.employees.List(ctx, 0, 0)
	if err != nil {
		return domain.EmployeeSummary{}, err
	}
	summary := domain.EmployeeSummary{Count: int64(len(employees)), AverageSalary: decimal.Zero}
	if len(employees) == 0 {
		return summary, nil
	}
	total := decimal.Zero
	for _, employee := range employees {
		total = total.Add(employee.Salary)
	}
	summary.AverageSalary = total.Div(decimal.NewFromInt(int64(len(employees))))
	return summary, nil
}

func (r *Reader) LowStock(ctx context.Context, minQuantity int) ([]domain.LowStockItem, error) {
	parts, err := r.parts.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	items := make([]domain.LowStockItem, 0)
	for _, part := range parts {
		if part.Quantity < minQuantity {
			items = append(items, domain.LowStockItem{Name: part.Name, Quantity: part.Quantity, Price: part.Price})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Quantity < items[j].Quantity })
	return items, nil
}

func (r *Reader) OrdersReport(ctx context.Context, status ledgerdomain.Status, period domain.DateRange) ([]domain.OrderReportRow, error) {
	orders, err := r.orders.ListOrders(ctx, ledgerports.ListOrdersFilter{Status: &status})
	if err != nil {
		return nil, err
	}
	type dated struct {
		row  domain.OrderReportRow
		date time.Time
	}
	rows := make([]dated, 0, len(orders))
	for _, order := range orders {
		if !period.Contains(order.Date) {
			continue
		}
		employee, err := r.employees.GetByID(ctx, order.EmployeeID)
		if err != nil {
			// Inner join semantics: drop orders without a resolvable employee.
			continue
		}
		rows = append(rows, dated{
			row: domain.OrderReportRow{
				ID:           order.ID,
				ClientName:   order.ClientName,
				TotalPrice:   order.TotalPrice,
				EmployeeName: employee.Name,
			},
			date: order.Date,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].date.After(rows[j].date) })
	report := make([]domain.OrderReportRow, 0, len(rows))
	for _, entry := range rows {
		report = append(report, entry.row)
	}
	return report, nil
}
