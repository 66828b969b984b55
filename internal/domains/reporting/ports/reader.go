package ports

import (
	"context"

	ledgerdomain "github.com/autobatya/workshop-api/internal/domains/ledger/domain"
	"github.com/autobatya/workshop-api/internal/domains/reporting/domain"
)

// Reader exposes the read-only aggregate queries. All queries observe
// committed state only; the ledger's transactional writes guarantee a reader
// never sees totals and stock out of step.
type Reader interface {
	FinancialSummary(ctx context.Context, period domain.DateRange) (domain.FinancialSummary, error)
	EmployeeSummary(ctx context.Context) (domain.EmployeeSummary, error)
	LowStock(ctx context.Context, minQuantity int) ([]domain.LowStockItem, error)
	OrdersReport(ctx context.Context, status ledgerdomain.Status, period domain.DateRange) ([]domain.OrderReportRow, error)
}
